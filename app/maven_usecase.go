package app

import (
	"context"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
)

// MavenTestUseCase runs the project build to refresh its report artifacts
type MavenTestUseCase struct {
	runner domain.BuildRunner
}

// NewMavenTestUseCase creates a new maven test use case
func NewMavenTestUseCase(runner domain.BuildRunner) *MavenTestUseCase {
	return &MavenTestUseCase{runner: runner}
}

// Execute runs the build and returns its one-line status
func (uc *MavenTestUseCase) Execute(ctx context.Context, projectPath string) (string, error) {
	if projectPath == "" {
		return "", domain.NewValidationError("no project path specified")
	}
	return uc.runner.RunVerify(ctx, projectPath)
}

// PMDAnalysisUseCase runs the static-analysis goal and aggregates the report
// it generates. The build's exit code is ignored; the report is the source
// of truth.
type PMDAnalysisUseCase struct {
	runner  domain.BuildRunner
	service domain.ViolationService
	config  *config.Config
}

// NewPMDAnalysisUseCase creates a new PMD analysis use case
func NewPMDAnalysisUseCase(runner domain.BuildRunner, service domain.ViolationService, cfg *config.Config) *PMDAnalysisUseCase {
	return &PMDAnalysisUseCase{runner: runner, service: service, config: cfg}
}

// Execute runs the analysis and returns the aggregated violations
func (uc *PMDAnalysisUseCase) Execute(ctx context.Context, projectPath string) (*domain.ViolationResponse, error) {
	if projectPath == "" {
		return nil, domain.NewValidationError("no project path specified")
	}
	if err := uc.runner.RunPMD(ctx, projectPath); err != nil {
		return nil, err
	}
	return uc.service.Analyze(ctx, domain.ViolationRequest{
		ReportPath: uc.config.PMDPath(projectPath),
	})
}
