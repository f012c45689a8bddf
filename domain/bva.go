package domain

import "strings"

// ParamKind is the closed set of parameter kinds the boundary-value
// generator has an opinion about. Unrecognized declared types map to
// ParamKindUnknown, which contributes no base values but still receives
// constraint-derived probes.
type ParamKind string

const (
	ParamKindInt     ParamKind = "int"
	ParamKindString  ParamKind = "string"
	ParamKindBool    ParamKind = "boolean"
	ParamKindUnknown ParamKind = "unknown"
)

// Java 32-bit signed integer bounds used for numeric boundary probes
const (
	JavaIntMax = 2147483647
	JavaIntMin = -2147483648
)

// ParamKindOf classifies a declared Java parameter type
func ParamKindOf(paramType string) ParamKind {
	switch paramType {
	case "int", "long":
		return ParamKindInt
	case "String":
		return ParamKindString
	case "boolean":
		return ParamKindBool
	default:
		return ParamKindUnknown
	}
}

// BvaRequest describes the parameter to generate boundary values for
type BvaRequest struct {
	// ParamName is the declared parameter name
	ParamName string `json:"param_name" yaml:"param_name"`

	// ParamType is the declared Java type as written in source
	ParamType string `json:"param_type" yaml:"param_type"`

	// FunctionName is the enclosing method name
	FunctionName string `json:"function_name" yaml:"function_name"`

	// Constraints is free-text numeric hints, e.g. "max 100 items".
	// Every whole-number token n contributes probes at n-1, n, n+1.
	Constraints string `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// IsDefaultParam reports whether the parameter name marks a defaulted,
// low-risk value that is only probed near zero.
func (r BvaRequest) IsDefaultParam() bool {
	return strings.Contains(strings.ToLower(r.ParamName), "default")
}

// IsParseTarget reports whether a textual parameter feeds an integer
// parser, which gets the overflow-on-parse probe sequence.
func (r BvaRequest) IsParseTarget() bool {
	if ParamKindOf(r.ParamType) != ParamKindString {
		return false
	}
	fn := strings.ToLower(r.FunctionName)
	return strings.Contains(fn, "toint") || strings.Contains(fn, "parse")
}

// BvaResponse carries the ordered, duplicate-free value sequence.
// Values are numbers, strings, booleans, or nil (the absence-of-value
// sentinel), in first-occurrence order.
type BvaResponse struct {
	Request BvaRequest `json:"request" yaml:"request"`
	Values  []any      `json:"values" yaml:"values"`

	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// BoundaryValueService defines the boundary-value generation contract.
// Generation is deterministic and stateless.
type BoundaryValueService interface {
	Generate(req BvaRequest) *BvaResponse
}
