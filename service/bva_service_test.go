package service

import (
	"reflect"
	"strings"
	"testing"

	"github.com/buildquality/mvnqa/domain"
)

func generate(t *testing.T, paramName, paramType, functionName, constraints string) []any {
	t.Helper()
	svc := NewBoundaryValueService()
	resp := svc.Generate(domain.BvaRequest{
		ParamName:    paramName,
		ParamType:    paramType,
		FunctionName: functionName,
		Constraints:  constraints,
	})
	return resp.Values
}

func TestBoundaryValuesDefaultParam(t *testing.T) {
	got := generate(t, "someDefaultValue", "int", "foo", "")
	if want := []any{0, 1, -1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBoundaryValuesParseTarget(t *testing.T) {
	got := generate(t, "input", "String", "parseToInt", "")

	want := []any{
		nil, "", " ",
		"0", "1", "-1",
		"2147483647", "-2147483648",
		"2147483648", "-2147483649",
		"abc",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBoundaryValuesInt(t *testing.T) {
	got := generate(t, "count", "int", "setCount", "")
	want := []any{0, 1, -1, domain.JavaIntMax, domain.JavaIntMin}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBoundaryValuesLongSharesIntSet(t *testing.T) {
	if got, want := generate(t, "count", "long", "setCount", ""), generate(t, "count", "int", "setCount", ""); !reflect.DeepEqual(got, want) {
		t.Errorf("long must share the int boundary set: %v vs %v", got, want)
	}
}

func TestBoundaryValuesString(t *testing.T) {
	got := generate(t, "name", "String", "setName", "")

	want := []any{nil, "", " ", strings.Repeat("a", 1000)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBoundaryValuesBoolean(t *testing.T) {
	got := generate(t, "enabled", "boolean", "setEnabled", "")
	if want := []any{true, false}; !reflect.DeepEqual(got, want) {
		t.Errorf("Expected exactly %v, got %v", want, got)
	}
}

func TestBoundaryValuesConstraints(t *testing.T) {
	got := generate(t, "count", "int", "setCount", "max 10 items")

	want := []any{0, 1, -1, domain.JavaIntMax, domain.JavaIntMin, 9, 10, 11}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBoundaryValuesConstraintsDeduplicate(t *testing.T) {
	// 0 and 1 from the constraint probes already exist in the base set
	got := generate(t, "count", "int", "setCount", "between 1 and 1")

	want := []any{0, 1, -1, domain.JavaIntMax, domain.JavaIntMin, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBoundaryValuesUnknownType(t *testing.T) {
	got := generate(t, "payload", "CustomObject", "process", "size 3")

	// No base set for unrecognized types; constraint probes still apply
	if want := []any{2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBoundaryValuesUnknownTypeNoConstraints(t *testing.T) {
	if got := generate(t, "payload", "CustomObject", "process", ""); len(got) != 0 {
		t.Errorf("Expected empty sequence, got %v", got)
	}
}

func TestMineConstraints(t *testing.T) {
	tests := []struct {
		constraints string
		want        []int
	}{
		{"max 10 items", []int{10}},
		{"between 5 and 100", []int{5, 100}},
		{"no numbers here", nil},
		{"", nil},
		{"version1.2", []int{2}},
		{"max 99999999999999999999 items", nil},
	}

	for _, tt := range tests {
		t.Run(tt.constraints, func(t *testing.T) {
			if got := mineConstraints(tt.constraints); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mineConstraints(%q) = %v, want %v", tt.constraints, got, tt.want)
			}
		})
	}
}
