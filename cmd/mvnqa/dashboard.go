package main

import (
	"github.com/spf13/cobra"

	"github.com/buildquality/mvnqa/app"
	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/service"
)

var (
	dashboardFormat string
	dashboardOutput string
	dashboardConfig string
	dashboardRun    bool
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard [path]",
		Short: "Show the combined quality snapshot for a project",
		Long: `Assemble test results and coverage into one quality snapshot.

Each half degrades independently: a project without a coverage report
still gets its test summary, with zero-valued percentages.

Examples:
  mvnqa dashboard ./my-project
  mvnqa dashboard --run --format json ./my-project`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDashboard,
	}

	cmd.Flags().StringVarP(&dashboardFormat, "format", "f", "text", "Output format: text, json, yaml")
	cmd.Flags().StringVarP(&dashboardOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&dashboardConfig, "config", "c", "", "Path to config file")
	cmd.Flags().BoolVar(&dashboardRun, "run", false, "Run the maven build first to refresh reports")

	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	path, err := argOrCwd(args)
	if err != nil {
		return err
	}

	format, err := parseOutputFormat(dashboardFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfigForTarget(dashboardConfig, path)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if dashboardRun {
		status, err := service.NewMavenRunner(cfg).RunVerify(ctx, path)
		if err != nil {
			return err
		}
		cmd.Printf("%s\n", status)
	}

	dashboardService := service.NewDashboardService(cfg,
		service.NewTestReportService(cfg),
		service.NewCoverageService(cfg))

	uc := app.NewDashboardUseCase(dashboardService)
	resp, err := uc.Execute(ctx, domain.DashboardRequest{
		ProjectPath:  path,
		OutputFormat: format,
		ConfigPath:   dashboardConfig,
	})
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(dashboardOutput)
	if err != nil {
		return err
	}
	defer closeOutput()

	return service.NewOutputFormatter().WriteDashboard(resp, format, writer)
}
