package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/buildquality/mvnqa/domain"
)

type ProjectPathInput struct {
	ProjectPath string `json:"project_path" jsonschema:"Path to the maven project root"`
}

type ReportPathInput struct {
	ReportPath string `json:"report_path" jsonschema:"Path to the report XML file"`
}

type BvaInput struct {
	ParamName    string `json:"param_name" jsonschema:"Name of the method parameter"`
	ParamType    string `json:"param_type" jsonschema:"Declared Java type, e.g. int, long, String, boolean"`
	FunctionName string `json:"function_name" jsonschema:"Name of the enclosing method"`
	Constraints  string `json:"constraints,omitempty" jsonschema:"Optional free-text numeric constraints, e.g. 'max 10 items'"`
}

type FilePathInput struct {
	FilePath string `json:"file_path" jsonschema:"Path to the file"`
}

type WriteFileInput struct {
	FilePath string `json:"file_path" jsonschema:"Path to the file to write"`
	Content  string `json:"content" jsonschema:"Content that replaces the file's current content"`
}

func (s *MCPServer) registerReportTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "get_test_failures",
		Description: `Parse the project's Surefire XML reports and return aggregated test
counts plus every failing or erroring test case with its message and
stack trace detail. Malformed report files are skipped, not fatal.`,
	}, s.handleGetTestFailures)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "get_coverage_summary",
		Description: `Parse a JaCoCo XML report and return project-level line, branch, and
method coverage percentages rounded to two decimals.`,
	}, s.handleGetCoverageSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "get_missing_coverage",
		Description: `Parse a JaCoCo XML report and return, per fully-qualified class name,
the sorted line numbers that still have missed instructions. Returns a
100% coverage status when nothing is missing.`,
	}, s.handleGetMissingCoverage)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "get_quality_dashboard",
		Description: `Assemble the project's quality snapshot: aggregated test counts plus
coverage percentages. A missing report leaves its half zero-valued
instead of failing.`,
	}, s.handleGetQualityDashboard)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "generate_bva_test_cases",
		Description: `Generate boundary value test inputs for a Java method parameter.
Recognizes integer, String, and boolean types, default-value parameter
names, String parameters feeding integer parsers, and free-text numeric
constraints such as 'max 10 items'. Returns a deduplicated list in
first-occurrence order.`,
	}, s.handleGenerateBva)
}

func (s *MCPServer) registerBuildTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "run_maven_test",
		Description: `Run 'mvn clean verify' in the project directory, regenerating the
Surefire and JaCoCo reports. Returns a one-line build status.`,
	}, s.handleRunMavenTest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "run_pmd_analysis",
		Description: `Run the maven PMD goal and aggregate the pmd.xml report it generates.
The build's exit code is ignored; the report is parsed directly and the
first violations are returned along with the true total.`,
	}, s.handleRunPMDAnalysis)
}

func (s *MCPServer) registerWorkspaceTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_java_files",
		Description: `Find all Java source files under the project's src/main/java directory.`,
	}, s.handleFindJavaFiles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_java_test_files",
		Description: `Find all Java test files under the project's src/test/java directory.`,
	}, s.handleFindJavaTestFiles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "find_jacoco_report",
		Description: `Return the path of the project's JaCoCo XML report at its fixed maven
location, or an error if no build has generated it yet.`,
	}, s.handleFindJacocoReport)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_file_content",
		Description: `Read and return the full text content of a file.`,
	}, s.handleReadFileContent)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "write_file_content",
		Description: `Write content to a file, replacing what was there. Use
read_file_content first if you need to append.`,
	}, s.handleWriteFileContent)
}

func (s *MCPServer) handleGetTestFailures(ctx context.Context, _ *mcp.CallToolRequest, input ProjectPathInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: get_test_failures project=%q", input.ProjectPath)

	resp, err := s.tests.Analyze(ctx, domain.TestReportRequest{Path: input.ProjectPath})
	if err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(resp), nil, nil
}

func (s *MCPServer) handleGetCoverageSummary(ctx context.Context, _ *mcp.CallToolRequest, input ReportPathInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: get_coverage_summary report=%q", input.ReportPath)

	resp, err := s.coverage.Summary(ctx, domain.CoverageRequest{ReportPath: input.ReportPath})
	if err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(resp), nil, nil
}

func (s *MCPServer) handleGetMissingCoverage(ctx context.Context, _ *mcp.CallToolRequest, input ReportPathInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: get_missing_coverage report=%q", input.ReportPath)

	resp, err := s.coverage.UncoveredLines(ctx, domain.CoverageRequest{ReportPath: input.ReportPath})
	if err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(resp), nil, nil
}

func (s *MCPServer) handleGetQualityDashboard(ctx context.Context, _ *mcp.CallToolRequest, input ProjectPathInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: get_quality_dashboard project=%q", input.ProjectPath)

	resp, err := s.dashboard.Assemble(ctx, domain.DashboardRequest{ProjectPath: input.ProjectPath})
	if err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(resp), nil, nil
}

func (s *MCPServer) handleGenerateBva(_ context.Context, _ *mcp.CallToolRequest, input BvaInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: generate_bva_test_cases param=%q type=%q function=%q", input.ParamName, input.ParamType, input.FunctionName)

	if input.ParamName == "" || input.ParamType == "" {
		return errorResult("param_name and param_type are required"), nil, nil
	}

	resp := s.bva.Generate(domain.BvaRequest{
		ParamName:    input.ParamName,
		ParamType:    input.ParamType,
		FunctionName: input.FunctionName,
		Constraints:  input.Constraints,
	})
	return jsonResult(resp.Values), nil, nil
}

func (s *MCPServer) handleRunMavenTest(ctx context.Context, _ *mcp.CallToolRequest, input ProjectPathInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: run_maven_test project=%q", input.ProjectPath)

	status, err := s.runner.RunVerify(ctx, input.ProjectPath)
	if err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}
	mcpLog.Printf("  status: %s", status)
	return textResult(status), nil, nil
}

func (s *MCPServer) handleRunPMDAnalysis(ctx context.Context, _ *mcp.CallToolRequest, input ProjectPathInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: run_pmd_analysis project=%q", input.ProjectPath)

	if err := s.runner.RunPMD(ctx, input.ProjectPath); err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}

	resp, err := s.violations.Analyze(ctx, domain.ViolationRequest{
		ReportPath: s.config.PMDPath(input.ProjectPath),
	})
	if err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}
	return jsonResult(resp), nil, nil
}

func (s *MCPServer) handleFindJavaFiles(_ context.Context, _ *mcp.CallToolRequest, input ProjectPathInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: find_java_files project=%q", input.ProjectPath)

	files, err := s.files.FindJavaFiles(input.ProjectPath)
	if err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}
	mcpLog.Printf("  found: %d files", len(files))
	return jsonResult(files), nil, nil
}

func (s *MCPServer) handleFindJavaTestFiles(_ context.Context, _ *mcp.CallToolRequest, input ProjectPathInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: find_java_test_files project=%q", input.ProjectPath)

	files, err := s.files.FindJavaTestFiles(input.ProjectPath)
	if err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}
	mcpLog.Printf("  found: %d files", len(files))
	return jsonResult(files), nil, nil
}

func (s *MCPServer) handleFindJacocoReport(_ context.Context, _ *mcp.CallToolRequest, input ProjectPathInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: find_jacoco_report project=%q", input.ProjectPath)

	path, err := s.files.FindJacocoReport(input.ProjectPath)
	if err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(fmt.Sprintf("%v. Run 'mvn clean verify' first.", err)), nil, nil
	}
	return textResult(path), nil, nil
}

func (s *MCPServer) handleReadFileContent(_ context.Context, _ *mcp.CallToolRequest, input FilePathInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: read_file_content file=%q", input.FilePath)

	content, err := s.files.ReadFileContent(input.FilePath)
	if err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}
	return textResult(content), nil, nil
}

func (s *MCPServer) handleWriteFileContent(_ context.Context, _ *mcp.CallToolRequest, input WriteFileInput) (*mcp.CallToolResult, any, error) {
	mcpLog.Printf("tool: write_file_content file=%q bytes=%d", input.FilePath, len(input.Content))

	if strings.TrimSpace(input.FilePath) == "" {
		return errorResult("file_path is required"), nil, nil
	}
	if err := s.files.WriteFileContent(input.FilePath, input.Content); err != nil {
		mcpLog.Printf("  error: %v", err)
		return errorResult(err.Error()), nil, nil
	}
	return textResult(fmt.Sprintf("Successfully wrote content to %s", input.FilePath)), nil, nil
}
