package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
	"github.com/buildquality/mvnqa/internal/report"
	"github.com/buildquality/mvnqa/internal/version"
)

// CoverageServiceImpl implements the CoverageService interface
type CoverageServiceImpl struct {
	config *config.Config
}

// NewCoverageService creates a new coverage service implementation
func NewCoverageService(cfg *config.Config) *CoverageServiceImpl {
	return &CoverageServiceImpl{config: cfg}
}

// Summary computes the project-level line/branch/method percentages from the
// document's top-level counters.
func (s *CoverageServiceImpl) Summary(ctx context.Context, req domain.CoverageRequest) (*domain.CoverageResponse, error) {
	doc, err := s.loadReport(req.ReportPath)
	if err != nil {
		return nil, err
	}

	summary := domain.CoverageSummary{
		LinePercent:   counterPercent(doc, report.CounterLine),
		BranchPercent: counterPercent(doc, report.CounterBranch),
		MethodPercent: counterPercent(doc, report.CounterMethod),
	}

	return &domain.CoverageResponse{
		Summary:     summary,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}, nil
}

// UncoveredLines extracts the per-class line numbers with at least one missed
// instruction. Classes with full coverage are omitted from the map.
func (s *CoverageServiceImpl) UncoveredLines(ctx context.Context, req domain.CoverageRequest) (*domain.UncoveredLinesResponse, error) {
	doc, err := s.loadReport(req.ReportPath)
	if err != nil {
		return nil, err
	}

	classes := make(map[string][]int)
	for _, pkg := range doc.Packages {
		pkgName := strings.ReplaceAll(pkg.Name, "/", ".")
		for _, class := range pkg.Classes {
			lines := uncoveredLines(class.Lines)
			if len(lines) == 0 {
				continue
			}
			classes[qualifiedClassName(pkgName, class.Name)] = lines
		}
	}

	resp := &domain.UncoveredLinesResponse{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}
	if len(classes) == 0 {
		resp.Status = domain.StatusFullCoverage
	} else {
		resp.Classes = classes
	}
	return resp, nil
}

func (s *CoverageServiceImpl) loadReport(path string) (*report.CoverageReport, error) {
	if path == "" {
		return nil, domain.NewValidationError("no coverage report path specified")
	}

	var doc report.CoverageReport
	if err := report.DecodeFile(path, &doc); err != nil {
		if errors.Is(err, report.ErrNotFound) {
			return nil, domain.NewReportNotFoundError(path, err)
		}
		return nil, domain.NewParseError(path, err)
	}
	return &doc, nil
}

// counterPercent computes covered/(missed+covered) from the first top-level
// counter of the given type. A present counter with a zero total counts as
// vacuously fully covered; an absent counter reads as zero coverage.
func counterPercent(doc *report.CoverageReport, counterType string) float64 {
	for _, c := range doc.Counters {
		if c.Type != counterType {
			continue
		}
		missed := report.AttrInt(c.Missed)
		covered := report.AttrInt(c.Covered)
		total := missed + covered
		if total == 0 {
			return 100.0
		}
		return round2(float64(covered) / float64(total) * 100.0)
	}
	return 0.0
}

// uncoveredLines collects the sorted, duplicate-free line numbers whose
// missed-instruction count is positive. Lines with absent or non-numeric
// attributes are non-executable and skipped.
func uncoveredLines(lines []report.CoverageLine) []int {
	seen := make(map[int]struct{})
	var result []int
	for _, line := range lines {
		nr, ok := report.OptionalInt(line.Nr)
		if !ok {
			continue
		}
		mi, ok := report.OptionalInt(line.Mi)
		if !ok || mi <= 0 {
			continue
		}
		if _, dup := seen[nr]; dup {
			continue
		}
		seen[nr] = struct{}{}
		result = append(result, nr)
	}
	sort.Ints(result)
	return result
}

// qualifiedClassName joins the dotted package with the class's simple name.
// Class names arrive as slash-separated paths; only the last segment is the
// simple name.
func qualifiedClassName(pkgName, className string) string {
	simple := className
	if idx := strings.LastIndex(className, "/"); idx >= 0 {
		simple = className[idx+1:]
	}
	if pkgName == "" {
		return simple
	}
	return pkgName + "." + simple
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
