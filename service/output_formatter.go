package service

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/buildquality/mvnqa/domain"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// WriteJSON writes data as indented JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteYAML writes data as YAML to the writer
func WriteYAML(writer io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	return encoder.Encode(data)
}

// WriteTestReport writes the test report response in the specified format
func (f *OutputFormatterImpl) WriteTestReport(response *domain.TestReportResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatText:
		return f.writeTestReportText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// WriteCoverage writes the coverage summary response in the specified format
func (f *OutputFormatterImpl) WriteCoverage(response *domain.CoverageResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatText:
		return f.writeCoverageText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// WriteUncoveredLines writes the uncovered lines response in the specified format
func (f *OutputFormatterImpl) WriteUncoveredLines(response *domain.UncoveredLinesResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatText:
		return f.writeUncoveredLinesText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// WriteViolations writes the violation response in the specified format
func (f *OutputFormatterImpl) WriteViolations(response *domain.ViolationResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatText:
		return f.writeViolationsText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// WriteDashboard writes the dashboard response in the specified format
func (f *OutputFormatterImpl) WriteDashboard(response *domain.DashboardResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatText:
		return f.writeDashboardText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// WriteBva writes the boundary value response in the specified format
func (f *OutputFormatterImpl) WriteBva(response *domain.BvaResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatText:
		return f.writeBvaText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// writeTestReportText writes the test report as plain text
func (f *OutputFormatterImpl) writeTestReportText(response *domain.TestReportResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Test Report ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)

	fmt.Fprintf(writer, "Summary:\n")
	fmt.Fprintf(writer, "  Total tests: %d\n", response.Summary.Total)
	fmt.Fprintf(writer, "  Passed: %d\n", response.Summary.Passed)
	fmt.Fprintf(writer, "  Failed: %d\n", response.Summary.Failed)
	fmt.Fprintf(writer, "  Errored: %d\n", response.Summary.Errored)
	fmt.Fprintf(writer, "  Skipped: %d\n", response.Summary.Skipped)
	fmt.Fprintf(writer, "\n")

	if response.Status != "" {
		fmt.Fprintf(writer, "%s\n", response.Status)
		return f.writeSkippedFiles(response.SkippedFiles, writer)
	}

	fmt.Fprintf(writer, "Failures:\n")
	for _, className := range sortedKeys(response.Failures) {
		fmt.Fprintf(writer, "  %s:\n", className)
		for _, failure := range response.Failures[className] {
			fmt.Fprintf(writer, "    [%s] %s", failure.Kind, failure.TestName)
			if failure.Message != "" {
				fmt.Fprintf(writer, ": %s", failure.Message)
			}
			fmt.Fprintf(writer, "\n")
		}
	}
	return f.writeSkippedFiles(response.SkippedFiles, writer)
}

func (f *OutputFormatterImpl) writeSkippedFiles(skipped []string, writer io.Writer) error {
	if len(skipped) == 0 {
		return nil
	}
	fmt.Fprintf(writer, "\nSkipped report files:\n")
	for _, file := range skipped {
		fmt.Fprintf(writer, "  %s\n", file)
	}
	return nil
}

// writeCoverageText writes the coverage summary as plain text
func (f *OutputFormatterImpl) writeCoverageText(response *domain.CoverageResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Coverage Summary ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)
	fmt.Fprintf(writer, "  Line coverage: %.2f%%\n", response.Summary.LinePercent)
	fmt.Fprintf(writer, "  Branch coverage: %.2f%%\n", response.Summary.BranchPercent)
	fmt.Fprintf(writer, "  Method coverage: %.2f%%\n", response.Summary.MethodPercent)
	return nil
}

// writeUncoveredLinesText writes the per-class uncovered lines as plain text
func (f *OutputFormatterImpl) writeUncoveredLinesText(response *domain.UncoveredLinesResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Uncovered Lines ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)

	if response.Status != "" {
		fmt.Fprintf(writer, "%s\n", response.Status)
		return nil
	}
	for _, className := range sortedKeys(response.Classes) {
		fmt.Fprintf(writer, "  %s: %v\n", className, response.Classes[className])
	}
	return nil
}

// writeViolationsText writes the violation list as plain text
func (f *OutputFormatterImpl) writeViolationsText(response *domain.ViolationResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Static Analysis ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)
	fmt.Fprintf(writer, "%s\n", response.Status)

	if len(response.Violations) == 0 {
		return nil
	}
	fmt.Fprintf(writer, "\n")
	for _, v := range response.Violations {
		fmt.Fprintf(writer, "  %s:%d [P%d] %s: %s\n", v.File, v.Line, v.Priority, v.Rule, v.Description)
	}
	if response.Total > len(response.Violations) {
		fmt.Fprintf(writer, "\n  (showing %d of %d violations)\n", len(response.Violations), response.Total)
	}
	return nil
}

// writeDashboardText writes the quality snapshot as plain text
func (f *OutputFormatterImpl) writeDashboardText(response *domain.DashboardResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Quality Dashboard ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)

	fmt.Fprintf(writer, "Test Run:\n")
	fmt.Fprintf(writer, "  Total tests: %d\n", response.Dashboard.TestRun.Total)
	fmt.Fprintf(writer, "  Passed: %d\n", response.Dashboard.TestRun.Passed)
	fmt.Fprintf(writer, "  Failed: %d\n", response.Dashboard.TestRun.Failed)
	fmt.Fprintf(writer, "  Errored: %d\n", response.Dashboard.TestRun.Errored)
	fmt.Fprintf(writer, "  Skipped: %d\n", response.Dashboard.TestRun.Skipped)
	fmt.Fprintf(writer, "\n")

	fmt.Fprintf(writer, "Coverage:\n")
	fmt.Fprintf(writer, "  Line: %.2f%%\n", response.Dashboard.Coverage.LinePercent)
	fmt.Fprintf(writer, "  Branch: %.2f%%\n", response.Dashboard.Coverage.BranchPercent)
	fmt.Fprintf(writer, "  Method: %.2f%%\n", response.Dashboard.Coverage.MethodPercent)
	return nil
}

// writeBvaText writes the boundary value sequence as plain text
func (f *OutputFormatterImpl) writeBvaText(response *domain.BvaResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Boundary Values ===\n\n")
	fmt.Fprintf(writer, "Parameter: %s %s\n", response.Request.ParamType, response.Request.ParamName)
	fmt.Fprintf(writer, "Function: %s\n", response.Request.FunctionName)
	if response.Request.Constraints != "" {
		fmt.Fprintf(writer, "Constraints: %s\n", response.Request.Constraints)
	}
	fmt.Fprintf(writer, "\nValues:\n")
	for _, v := range response.Values {
		if v == nil {
			fmt.Fprintf(writer, "  null\n")
			continue
		}
		fmt.Fprintf(writer, "  %#v\n", v)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
