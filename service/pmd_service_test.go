package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
	"github.com/buildquality/mvnqa/internal/testutil"
)

func writePMDReport(t *testing.T, content string) (*ViolationServiceImpl, string) {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteReport(t, dir, "pmd.xml", content)
	return NewViolationService(config.DefaultConfig()), filepath.Join(dir, "pmd.xml")
}

func pmdReport(perFile ...int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><pmd version="7.0.0">`)
	for i, count := range perFile {
		fmt.Fprintf(&b, `<file name="src/main/java/File%d.java">`, i)
		for j := 0; j < count; j++ {
			fmt.Fprintf(&b, `<violation beginline="%d" rule="Rule%d" priority="3">
				violation %d in file %d
			</violation>`, j+1, j, j, i)
		}
		b.WriteString(`</file>`)
	}
	b.WriteString(`</pmd>`)
	return b.String()
}

func TestViolationServiceAnalyze(t *testing.T) {
	svc, path := writePMDReport(t, pmdReport(2, 1))

	resp, err := svc.Analyze(context.Background(), domain.ViolationRequest{ReportPath: path})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if resp.Total != 3 {
		t.Errorf("Expected 3 violations, got %d", resp.Total)
	}
	if resp.Status != "PMD analysis found 3 total violations." {
		t.Errorf("Unexpected status: %q", resp.Status)
	}
	if len(resp.Violations) != 3 {
		t.Fatalf("Expected 3 detailed violations, got %d", len(resp.Violations))
	}

	// Document order: first file's violations before the second file's
	first := resp.Violations[0]
	if first.File != "src/main/java/File0.java" || first.Line != 1 || first.Rule != "Rule0" {
		t.Errorf("Unexpected first violation: %+v", first)
	}
	if first.Priority != 3 {
		t.Errorf("Expected priority 3, got %d", first.Priority)
	}
	if first.Description != "violation 0 in file 0" {
		t.Errorf("Description must be trimmed, got %q", first.Description)
	}
	if last := resp.Violations[2]; last.File != "src/main/java/File1.java" {
		t.Errorf("Unexpected last violation file: %s", last.File)
	}
}

func TestViolationServiceTruncation(t *testing.T) {
	svc, path := writePMDReport(t, pmdReport(15, 15))

	resp, err := svc.Analyze(context.Background(), domain.ViolationRequest{ReportPath: path})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if resp.Total != 30 {
		t.Errorf("Total must reflect the untruncated count, got %d", resp.Total)
	}
	if len(resp.Violations) != 20 {
		t.Errorf("Expected default limit of 20 violations, got %d", len(resp.Violations))
	}
	if resp.Status != "PMD analysis found 30 total violations." {
		t.Errorf("Unexpected status: %q", resp.Status)
	}
}

func TestViolationServiceCustomLimit(t *testing.T) {
	svc, path := writePMDReport(t, pmdReport(10))

	resp, err := svc.Analyze(context.Background(), domain.ViolationRequest{
		ReportPath:    path,
		MaxViolations: 5,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if resp.Total != 10 || len(resp.Violations) != 5 {
		t.Errorf("Expected total 10 with 5 detailed, got %d/%d", resp.Total, len(resp.Violations))
	}
}

func TestViolationServiceNoViolations(t *testing.T) {
	svc, path := writePMDReport(t, pmdReport())

	resp, err := svc.Analyze(context.Background(), domain.ViolationRequest{ReportPath: path})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if resp.Status != domain.StatusNoViolations {
		t.Errorf("Expected status %q, got %q", domain.StatusNoViolations, resp.Status)
	}
	if resp.Total != 0 || len(resp.Violations) != 0 {
		t.Errorf("Expected empty result, got %+v", resp)
	}
}

func TestViolationServiceMissingReport(t *testing.T) {
	svc := NewViolationService(config.DefaultConfig())

	_, err := svc.Analyze(context.Background(), domain.ViolationRequest{
		ReportPath: filepath.Join(t.TempDir(), "pmd.xml"),
	})
	if err == nil {
		t.Fatal("Expected error for missing report")
	}
	if domain.ErrorCode(err) != domain.ErrCodeReportNotFound {
		t.Errorf("Expected code %s, got %s", domain.ErrCodeReportNotFound, domain.ErrorCode(err))
	}
}
