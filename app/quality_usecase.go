package app

import (
	"context"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
)

// TestReportUseCase orchestrates the test report aggregation workflow
type TestReportUseCase struct {
	service domain.TestReportService
}

// NewTestReportUseCase creates a new test report use case
func NewTestReportUseCase(service domain.TestReportService) *TestReportUseCase {
	return &TestReportUseCase{service: service}
}

// Execute performs the complete test report aggregation workflow
func (uc *TestReportUseCase) Execute(ctx context.Context, req domain.TestReportRequest) (*domain.TestReportResponse, error) {
	if req.Path == "" {
		return nil, domain.NewValidationError("no project or report path specified")
	}
	return uc.service.Analyze(ctx, req)
}

// CoverageUseCase orchestrates the coverage aggregation workflow
type CoverageUseCase struct {
	config     *config.Config
	service    domain.CoverageService
	fileHelper *FileHelper
}

// NewCoverageUseCase creates a new coverage use case
func NewCoverageUseCase(cfg *config.Config, service domain.CoverageService) *CoverageUseCase {
	return &CoverageUseCase{
		config:     cfg,
		service:    service,
		fileHelper: NewFileHelper(),
	}
}

// Summary computes project-level coverage percentages for the report
func (uc *CoverageUseCase) Summary(ctx context.Context, req domain.CoverageRequest) (*domain.CoverageResponse, error) {
	if err := uc.resolveReportPath(&req); err != nil {
		return nil, err
	}
	return uc.service.Summary(ctx, req)
}

// UncoveredLines extracts per-class uncovered line numbers from the report
func (uc *CoverageUseCase) UncoveredLines(ctx context.Context, req domain.CoverageRequest) (*domain.UncoveredLinesResponse, error) {
	if err := uc.resolveReportPath(&req); err != nil {
		return nil, err
	}
	return uc.service.UncoveredLines(ctx, req)
}

// resolveReportPath accepts either a report file or a project directory; a
// directory is resolved to its configured coverage report location.
func (uc *CoverageUseCase) resolveReportPath(req *domain.CoverageRequest) error {
	if req.ReportPath == "" {
		return domain.NewValidationError("no coverage report path specified")
	}

	exists, err := uc.fileHelper.FileExists(req.ReportPath)
	if err != nil {
		return domain.NewAnalysisError("failed to resolve report path", err)
	}
	if !exists {
		return domain.NewReportNotFoundError(req.ReportPath, nil)
	}

	if isDir(req.ReportPath) {
		resolved := uc.config.JacocoPath(req.ReportPath)
		found, err := uc.fileHelper.FileExists(resolved)
		if err != nil {
			return domain.NewAnalysisError("failed to resolve report path", err)
		}
		if !found {
			return domain.NewReportNotFoundError(resolved, nil)
		}
		req.ReportPath = resolved
	}
	return nil
}

// ViolationUseCase orchestrates the static-analysis aggregation workflow
type ViolationUseCase struct {
	service domain.ViolationService
}

// NewViolationUseCase creates a new violation use case
func NewViolationUseCase(service domain.ViolationService) *ViolationUseCase {
	return &ViolationUseCase{service: service}
}

// Execute performs the complete static-analysis aggregation workflow
func (uc *ViolationUseCase) Execute(ctx context.Context, req domain.ViolationRequest) (*domain.ViolationResponse, error) {
	if req.ReportPath == "" {
		return nil, domain.NewValidationError("no static-analysis report path specified")
	}
	if req.MaxViolations < 0 {
		return nil, domain.NewValidationError("max violations must not be negative")
	}
	return uc.service.Analyze(ctx, req)
}

// DashboardUseCase orchestrates the quality snapshot workflow
type DashboardUseCase struct {
	service domain.DashboardService
}

// NewDashboardUseCase creates a new dashboard use case
func NewDashboardUseCase(service domain.DashboardService) *DashboardUseCase {
	return &DashboardUseCase{service: service}
}

// Execute assembles the quality snapshot for a project
func (uc *DashboardUseCase) Execute(ctx context.Context, req domain.DashboardRequest) (*domain.DashboardResponse, error) {
	if req.ProjectPath == "" {
		return nil, domain.NewValidationError("no project path specified")
	}
	return uc.service.Assemble(ctx, req)
}
