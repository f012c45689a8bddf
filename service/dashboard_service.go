package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
	"github.com/buildquality/mvnqa/internal/version"
)

// DashboardServiceImpl implements the DashboardService interface
type DashboardServiceImpl struct {
	config   *config.Config
	tests    domain.TestReportService
	coverage domain.CoverageService
}

// NewDashboardService creates a new dashboard service backed by the given
// aggregation services.
func NewDashboardService(cfg *config.Config, tests domain.TestReportService, coverage domain.CoverageService) *DashboardServiceImpl {
	return &DashboardServiceImpl{config: cfg, tests: tests, coverage: coverage}
}

// Assemble computes the test and coverage halves concurrently and merges
// them into a fresh snapshot. A missing or malformed report degrades its
// half to zero values rather than failing the assembly.
func (s *DashboardServiceImpl) Assemble(ctx context.Context, req domain.DashboardRequest) (*domain.DashboardResponse, error) {
	if req.ProjectPath == "" {
		return nil, domain.NewValidationError("no project path specified")
	}

	var dashboard domain.QualityDashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := s.tests.Analyze(ctx, domain.TestReportRequest{Path: req.ProjectPath})
		if err != nil {
			return degradable(err)
		}
		dashboard.TestRun = resp.Summary
		return nil
	})
	g.Go(func() error {
		resp, err := s.coverage.Summary(ctx, domain.CoverageRequest{
			ReportPath: s.config.JacocoPath(req.ProjectPath),
		})
		if err != nil {
			return degradable(err)
		}
		dashboard.Coverage = resp.Summary
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.DashboardResponse{
		Dashboard:   dashboard,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}, nil
}

// degradable absorbs per-half errors that mean "nothing to report": a
// missing or unreadable report leaves that half zero-valued. Anything else
// still fails the assembly.
func degradable(err error) error {
	switch domain.ErrorCode(err) {
	case domain.ErrCodeReportNotFound, domain.ErrCodeParseError, domain.ErrCodeFileNotFound:
		return nil
	}
	return err
}
