package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// FailureKind distinguishes assertion failures from runtime errors
type FailureKind string

const (
	FailureKindFailure FailureKind = "failure"
	FailureKindError   FailureKind = "error"
)

// UnknownClassName is the sentinel used when a test case carries no class
// attribute and its suite declares no name.
const UnknownClassName = "Unknown"

// Status messages reported when an aggregation finds nothing to flag.
// "Nothing failed" is deliberately distinguishable from "nothing was checked",
// which is reported as a REPORT_NOT_FOUND error instead.
const (
	StatusAllTestsPassed = "All tests passed!"
	StatusFullCoverage   = "100% Coverage!"
	StatusNoViolations   = "PMD analysis passed. No violations found."
)

// TestSummary holds aggregated test counts across all discovered report files.
// Passed is derived: total - (failed + errored + skipped), clamped at zero.
type TestSummary struct {
	Total   int `json:"total_tests" yaml:"total_tests"`
	Passed  int `json:"passed" yaml:"passed"`
	Failed  int `json:"failures" yaml:"failures"`
	Errored int `json:"errors" yaml:"errors"`
	Skipped int `json:"skipped" yaml:"skipped"`
}

// TestFailure represents one failing or erroring test case
type TestFailure struct {
	ClassName string      `json:"class_name" yaml:"class_name"`
	TestName  string      `json:"test" yaml:"test"`
	Kind      FailureKind `json:"type" yaml:"type"`
	Message   string      `json:"message" yaml:"message"`
	Details   string      `json:"details" yaml:"details"`
}

// TestReportRequest represents a request for test result aggregation
type TestReportRequest struct {
	// Path is a project root (reports resolved under the configured
	// surefire directory) or a direct path to a single XML report
	Path string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer

	// ConfigPath overrides configuration discovery
	ConfigPath string
}

// TestReportResponse represents the aggregated test results
type TestReportResponse struct {
	Summary TestSummary `json:"summary" yaml:"summary"`

	// Failures maps fully-qualified class names to their failing cases.
	// Empty when Status reports that all tests passed.
	Failures map[string][]TestFailure `json:"failures,omitempty" yaml:"failures,omitempty"`

	// Status carries the explicit all-passed marker when no failures exist
	Status string `json:"status,omitempty" yaml:"status,omitempty"`

	// SkippedFiles lists report files excluded due to parse errors
	SkippedFiles []string `json:"skipped_files,omitempty" yaml:"skipped_files,omitempty"`

	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// FailureCount returns the number of individual failure records
func (r *TestReportResponse) FailureCount() int {
	n := 0
	for _, fs := range r.Failures {
		n += len(fs)
	}
	return n
}

// CoverageSummary holds project-level coverage percentages in [0,100],
// rounded to 2 decimals. A counter with zero total instructions is
// vacuously fully covered (100.0).
type CoverageSummary struct {
	LinePercent   float64 `json:"line_coverage_percent" yaml:"line_coverage_percent"`
	BranchPercent float64 `json:"branch_coverage_percent" yaml:"branch_coverage_percent"`
	MethodPercent float64 `json:"method_coverage_percent" yaml:"method_coverage_percent"`
}

// CoverageRequest represents a request for coverage aggregation
type CoverageRequest struct {
	// ReportPath is the path to the coverage XML document
	ReportPath string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer

	ConfigPath string
}

// CoverageResponse represents the project-level coverage summary
type CoverageResponse struct {
	Summary     CoverageSummary `json:"summary" yaml:"summary"`
	GeneratedAt string          `json:"generated_at" yaml:"generated_at"`
	Version     string          `json:"version" yaml:"version"`
}

// UncoveredLinesResponse maps fully-qualified class names to the ascending,
// duplicate-free line numbers with at least one missed instruction. Classes
// with no such lines are omitted entirely.
type UncoveredLinesResponse struct {
	Classes map[string][]int `json:"classes,omitempty" yaml:"classes,omitempty"`

	// Status carries the explicit full-coverage marker when Classes is empty
	Status string `json:"status,omitempty" yaml:"status,omitempty"`

	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// Violation represents a single static-analysis rule violation
type Violation struct {
	File        string `json:"file" yaml:"file"`
	Line        int    `json:"line" yaml:"line"`
	Rule        string `json:"rule" yaml:"rule"`
	Priority    int    `json:"priority" yaml:"priority"`
	Description string `json:"description" yaml:"description"`
}

// ViolationRequest represents a request for static-analysis aggregation
type ViolationRequest struct {
	// ReportPath is the path to the static-analysis XML document
	ReportPath string

	// MaxViolations bounds the detailed list (0 means the configured default)
	MaxViolations int

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer

	ConfigPath string
}

// ViolationResponse represents the flattened violation list. Total always
// reflects the untruncated count even though Violations is bounded.
type ViolationResponse struct {
	Status     string      `json:"status" yaml:"status"`
	Total      int         `json:"total_violations" yaml:"total_violations"`
	Violations []Violation `json:"violations_summary,omitempty" yaml:"violations_summary,omitempty"`

	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// DashboardRequest represents a request for the combined quality snapshot
type DashboardRequest struct {
	// ProjectPath is the project root; report locations are resolved
	// against it using the configured defaults
	ProjectPath string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer

	ConfigPath string
}

// QualityDashboard composes the test and coverage halves. The halves are
// independent: a project with tests but no coverage report yields
// zero-valued percentages, not an error.
type QualityDashboard struct {
	TestRun  TestSummary     `json:"test_run_summary" yaml:"test_run_summary"`
	Coverage CoverageSummary `json:"code_coverage_summary" yaml:"code_coverage_summary"`
}

// DashboardResponse represents the assembled quality snapshot
type DashboardResponse struct {
	Dashboard   QualityDashboard `json:"dashboard" yaml:"dashboard"`
	GeneratedAt string           `json:"generated_at" yaml:"generated_at"`
	Version     string           `json:"version" yaml:"version"`
}

// TestReportService defines the test result aggregation contract
type TestReportService interface {
	// Analyze aggregates all discoverable test reports for the request path
	Analyze(ctx context.Context, req TestReportRequest) (*TestReportResponse, error)
}

// CoverageService defines the coverage aggregation contract
type CoverageService interface {
	// Summary computes project-level coverage percentages
	Summary(ctx context.Context, req CoverageRequest) (*CoverageResponse, error)

	// UncoveredLines extracts per-class uncovered line numbers
	UncoveredLines(ctx context.Context, req CoverageRequest) (*UncoveredLinesResponse, error)
}

// ViolationService defines the static-analysis aggregation contract
type ViolationService interface {
	// Analyze flattens the report into a bounded violation list
	Analyze(ctx context.Context, req ViolationRequest) (*ViolationResponse, error)
}

// DashboardService defines the quality snapshot assembly contract
type DashboardService interface {
	// Assemble merges test and coverage aggregation for a project
	Assemble(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

// BuildRunner invokes the project build to refresh the report artifacts the
// aggregation services read.
type BuildRunner interface {
	// RunVerify runs the full build and returns a one-line build status
	RunVerify(ctx context.Context, projectPath string) (string, error)

	// RunPMD runs the static-analysis goal, regenerating its report
	RunPMD(ctx context.Context, projectPath string) error
}

// OutputFormatter defines the interface for writing aggregation results
type OutputFormatter interface {
	WriteTestReport(response *TestReportResponse, format OutputFormat, writer io.Writer) error
	WriteCoverage(response *CoverageResponse, format OutputFormat, writer io.Writer) error
	WriteUncoveredLines(response *UncoveredLinesResponse, format OutputFormat, writer io.Writer) error
	WriteViolations(response *ViolationResponse, format OutputFormat, writer io.Writer) error
	WriteDashboard(response *DashboardResponse, format OutputFormat, writer io.Writer) error
	WriteBva(response *BvaResponse, format OutputFormat, writer io.Writer) error
}
