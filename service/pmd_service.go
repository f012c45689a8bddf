package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
	"github.com/buildquality/mvnqa/internal/report"
	"github.com/buildquality/mvnqa/internal/version"
)

// ViolationServiceImpl implements the ViolationService interface
type ViolationServiceImpl struct {
	config *config.Config
}

// NewViolationService creates a new violation service implementation
func NewViolationService(cfg *config.Config) *ViolationServiceImpl {
	return &ViolationServiceImpl{config: cfg}
}

// Analyze flattens the report's violations in document order and truncates
// the detailed list. Total always reflects the untruncated count.
func (s *ViolationServiceImpl) Analyze(ctx context.Context, req domain.ViolationRequest) (*domain.ViolationResponse, error) {
	if req.ReportPath == "" {
		return nil, domain.NewValidationError("no static-analysis report path specified")
	}

	limit := req.MaxViolations
	if limit <= 0 {
		limit = s.config.Violations.MaxViolations
	}

	var doc report.AnalysisReport
	if err := report.DecodeFile(req.ReportPath, &doc); err != nil {
		if errors.Is(err, report.ErrNotFound) {
			return nil, domain.NewReportNotFoundError(req.ReportPath, err)
		}
		return nil, domain.NewParseError(req.ReportPath, err)
	}

	total := 0
	var violations []domain.Violation
	for _, file := range doc.Files {
		for _, v := range file.Violations {
			total++
			if len(violations) >= limit {
				continue
			}
			violations = append(violations, domain.Violation{
				File:        file.Name,
				Line:        report.AttrInt(v.BeginLine),
				Rule:        v.Rule,
				Priority:    report.AttrInt(v.Priority),
				Description: v.Description(),
			})
		}
	}

	resp := &domain.ViolationResponse{
		Total:       total,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}
	if total == 0 {
		resp.Status = domain.StatusNoViolations
	} else {
		resp.Status = fmt.Sprintf("PMD analysis found %d total violations.", total)
		resp.Violations = violations
	}
	return resp, nil
}
