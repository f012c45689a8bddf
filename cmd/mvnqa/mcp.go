package main

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/buildquality/mvnqa/app"
	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
	"github.com/buildquality/mvnqa/internal/version"
	"github.com/buildquality/mvnqa/service"
)

// mcpLog logs to stderr (stdout is reserved for MCP JSON-RPC protocol)
var mcpLog = log.New(os.Stderr, "[mvnqa-mcp] ", log.Ltime)

// MCPServer exposes the aggregation services as MCP tools over stdio
type MCPServer struct {
	config     *config.Config
	server     *mcp.Server
	tests      domain.TestReportService
	coverage   domain.CoverageService
	violations domain.ViolationService
	dashboard  domain.DashboardService
	bva        domain.BoundaryValueService
	runner     domain.BuildRunner
	files      *app.FileHelper
}

func mcpCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: `Run the MCP server, exposing report aggregation, boundary value
generation, build execution, and workspace file tools to MCP clients
over stdio.

Examples:
  mvnqa mcp
  mvnqa mcp --config .mvnqa.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			return newMCPServer(cfg).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	return cmd
}

func newMCPServer(cfg *config.Config) *MCPServer {
	tests := service.NewTestReportService(cfg)
	coverage := service.NewCoverageService(cfg)
	return &MCPServer{
		config:     cfg,
		tests:      tests,
		coverage:   coverage,
		violations: service.NewViolationService(cfg),
		dashboard:  service.NewDashboardService(cfg, tests, coverage),
		bva:        service.NewBoundaryValueService(),
		runner:     service.NewMavenRunner(cfg),
		files:      app.NewFileHelper(),
	}
}

// Run starts the MCP server and registers all tools
func (s *MCPServer) Run(ctx context.Context) error {
	srv := mcp.NewServer(
		&mcp.Implementation{
			Name:    "mvnqa",
			Version: version.Version,
		},
		nil,
	)
	s.server = srv

	s.registerReportTools()
	s.registerBuildTools()
	s.registerWorkspaceTools()

	mcpLog.Printf("MCP server ready, listening on stdio")
	return srv.Run(ctx, &mcp.StdioTransport{})
}
