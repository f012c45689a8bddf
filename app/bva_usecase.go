package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/javasrc"
)

// BvaUseCase orchestrates boundary value generation, either for a single
// explicitly described parameter or for every parameter mined from a Java
// source file.
type BvaUseCase struct {
	service domain.BoundaryValueService
}

// NewBvaUseCase creates a new boundary value use case
func NewBvaUseCase(service domain.BoundaryValueService) *BvaUseCase {
	return &BvaUseCase{service: service}
}

// Execute generates boundary values for one described parameter
func (uc *BvaUseCase) Execute(req domain.BvaRequest) (*domain.BvaResponse, error) {
	if req.ParamName == "" {
		return nil, domain.NewValidationError("no parameter name specified")
	}
	if req.ParamType == "" {
		return nil, domain.NewValidationError("no parameter type specified")
	}
	return uc.service.Generate(req), nil
}

// ExecuteFromSource parses a Java source file and generates boundary values
// for every parameter of every declared method. A non-empty functionName
// restricts generation to methods with that name (case-insensitive).
func (uc *BvaUseCase) ExecuteFromSource(sourcePath, functionName, constraints string) ([]*domain.BvaResponse, error) {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFileNotFoundError(sourcePath, err)
		}
		return nil, domain.NewAnalysisError(fmt.Sprintf("failed to read source file: %s", sourcePath), err)
	}

	parser := javasrc.NewParser()
	defer parser.Close()

	methods, err := parser.ParseFile(sourcePath, source)
	if err != nil {
		return nil, domain.NewParseError(sourcePath, err)
	}

	var responses []*domain.BvaResponse
	for _, method := range methods {
		if functionName != "" && !strings.EqualFold(method.Name, functionName) {
			continue
		}
		for _, param := range method.Parameters {
			responses = append(responses, uc.service.Generate(domain.BvaRequest{
				ParamName:    param.Name,
				ParamType:    param.Type,
				FunctionName: method.Name,
				Constraints:  constraints,
			}))
		}
	}

	if len(responses) == 0 {
		if functionName != "" {
			return nil, domain.NewValidationError(fmt.Sprintf("no parameters found for method %q in %s", functionName, sourcePath))
		}
		return nil, domain.NewValidationError(fmt.Sprintf("no method parameters found in %s", sourcePath))
	}
	return responses, nil
}
