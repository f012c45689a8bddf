package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/version"
)

// BoundaryValueServiceImpl implements the BoundaryValueService interface
type BoundaryValueServiceImpl struct{}

// NewBoundaryValueService creates a new boundary value service implementation
func NewBoundaryValueService() *BoundaryValueServiceImpl {
	return &BoundaryValueServiceImpl{}
}

// Generate produces the deduplicated, order-preserving value sequence for
// the requested parameter. Role-specific sequences (default parameters,
// parse targets, booleans) are complete on their own and skip constraint
// probing.
func (s *BoundaryValueServiceImpl) Generate(req domain.BvaRequest) *domain.BvaResponse {
	return &domain.BvaResponse{
		Request:     req,
		Values:      boundaryValues(req),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}
}

func boundaryValues(req domain.BvaRequest) []any {
	if req.IsDefaultParam() {
		return []any{0, 1, -1}
	}

	if req.IsParseTarget() {
		return []any{
			nil, "", " ",
			"0", "1", "-1",
			strconv.Itoa(domain.JavaIntMax), strconv.Itoa(domain.JavaIntMin),
			strconv.FormatInt(domain.JavaIntMax+1, 10), strconv.FormatInt(domain.JavaIntMin-1, 10),
			"abc",
		}
	}

	var values []any
	switch domain.ParamKindOf(req.ParamType) {
	case domain.ParamKindInt:
		values = append(values, 0, 1, -1, domain.JavaIntMax, domain.JavaIntMin)
	case domain.ParamKindString:
		values = append(values, nil, "", " ", strings.Repeat("a", 1000))
	case domain.ParamKindBool:
		return []any{true, false}
	case domain.ParamKindUnknown:
		// No base set; constraint probes below still apply.
	}

	for _, n := range mineConstraints(req.Constraints) {
		values = append(values, n-1, n, n+1)
	}

	return dedupe(values)
}

var constraintNumber = regexp.MustCompile(`\b\d+\b`)

// mineConstraints extracts every whole-number token from the free-text
// constraint hints. Tokens that overflow int are skipped.
func mineConstraints(constraints string) []int {
	tokens := constraintNumber.FindAllString(strings.ToLower(constraints), -1)
	var numbers []int
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// dedupe keeps the first occurrence of each value. All produced values are
// comparable (ints, strings, bools, nil).
func dedupe(values []any) []any {
	seen := make(map[any]struct{}, len(values))
	result := make([]any, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
