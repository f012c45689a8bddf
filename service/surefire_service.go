package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
	"github.com/buildquality/mvnqa/internal/constants"
	"github.com/buildquality/mvnqa/internal/report"
	"github.com/buildquality/mvnqa/internal/version"
)

// TestReportServiceImpl implements the TestReportService interface
type TestReportServiceImpl struct {
	config   *config.Config
	progress domain.ProgressManager
}

// NewTestReportService creates a new test report service implementation
func NewTestReportService(cfg *config.Config) *TestReportServiceImpl {
	return &TestReportServiceImpl{config: cfg}
}

// NewTestReportServiceWithProgress creates a new test report service with progress reporting
func NewTestReportServiceWithProgress(cfg *config.Config, pm domain.ProgressManager) *TestReportServiceImpl {
	return &TestReportServiceImpl{config: cfg, progress: pm}
}

// Analyze aggregates all discoverable test report files. Malformed files are
// recorded as skipped and excluded from the counts; they never abort the
// batch.
func (s *TestReportServiceImpl) Analyze(ctx context.Context, req domain.TestReportRequest) (*domain.TestReportResponse, error) {
	if req.Path == "" {
		return nil, domain.NewValidationError("no project or report path specified")
	}

	files, err := s.resolveReports(req.Path)
	if err != nil {
		return nil, err
	}

	var task domain.TaskProgress = &NoOpTaskProgress{}
	if s.progress != nil {
		task = s.progress.StartTask("Aggregating test reports", len(files))
	}
	defer task.Complete()

	var summary domain.TestSummary
	failures := make(map[string][]domain.TestFailure)
	var skipped []string

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("test report aggregation cancelled: %w", ctx.Err())
		default:
		}

		var suite report.TestSuite
		if err := report.DecodeFile(file, &suite); err != nil {
			skipped = append(skipped, file)
			task.Increment(1)
			continue
		}

		summary.Total += report.AttrInt(suite.Tests)
		summary.Failed += report.AttrInt(suite.Failures)
		summary.Errored += report.AttrInt(suite.Errors)
		summary.Skipped += report.AttrInt(suite.Skipped)

		collectFailures(&suite, failures)
		task.Increment(1)
	}

	// Passed is derived, clamped so aggregated counts never go negative
	summary.Passed = summary.Total - (summary.Failed + summary.Errored + summary.Skipped)
	if summary.Passed < 0 {
		summary.Passed = 0
	}

	resp := &domain.TestReportResponse{
		Summary:      summary,
		SkippedFiles: skipped,
		GeneratedAt:  time.Now().Format(time.RFC3339),
		Version:      version.Version,
	}

	if len(failures) == 0 {
		// Distinguishes "nothing failed" from "nothing was checked": the
		// latter never reaches this point (discovery errors out above).
		resp.Status = domain.StatusAllTestsPassed
	} else {
		resp.Failures = failures
	}

	return resp, nil
}

// resolveReports maps the request path to the set of report files: a direct
// .xml file is the sole report, otherwise the configured surefire directory
// under the project root is searched.
func (s *TestReportServiceImpl) resolveReports(path string) ([]string, error) {
	target := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		target = s.config.SurefirePath(path)
	} else if err == nil && !strings.HasSuffix(strings.ToLower(path), ".xml") {
		return nil, domain.NewValidationError(fmt.Sprintf("not an XML report: %s", path))
	}

	files, err := report.Discover(target, constants.SurefireReportGlob)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrNotFound):
			return nil, domain.NewReportNotFoundError(target, err)
		case errors.Is(err, report.ErrNoReports):
			return nil, domain.NewDomainError(domain.ErrCodeReportNotFound,
				fmt.Sprintf("no report files in: %s", target), err)
		}
		return nil, domain.NewAnalysisError("report discovery failed", err)
	}
	return files, nil
}

// collectFailures walks every test case, nested suites included, and records
// one entry per failure or error child. The class name falls back to the
// document root's suite name, then the unknown sentinel.
func collectFailures(suite *report.TestSuite, failures map[string][]domain.TestFailure) {
	for _, tc := range suite.AllTestCases() {
		className := tc.ClassName
		if className == "" {
			className = suite.Name
		}
		if className == "" {
			className = domain.UnknownClassName
		}

		for _, result := range tc.Results {
			failures[className] = append(failures[className], domain.TestFailure{
				ClassName: className,
				TestName:  tc.Name,
				Kind:      domain.FailureKind(result.Tag),
				Message:   result.Message,
				Details:   result.Details,
			})
		}
	}
}
