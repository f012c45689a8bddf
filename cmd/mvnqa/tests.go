package main

import (
	"github.com/spf13/cobra"

	"github.com/buildquality/mvnqa/app"
	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/service"
)

var (
	testsFormat  string
	testsOutput  string
	testsConfig  string
	testsRun     bool
	testsNoProgr bool
)

func testsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tests [path]",
		Short: "Aggregate test results from Surefire reports",
		Long: `Aggregate test results from the project's Surefire XML reports.

The path may be a project root, a report directory, or a single report
file. Without a path the current directory is used.

Examples:
  mvnqa tests
  mvnqa tests ./my-project
  mvnqa tests target/surefire-reports/TEST-com.example.FooTest.xml
  mvnqa tests --run --format json ./my-project`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTests,
	}

	cmd.Flags().StringVarP(&testsFormat, "format", "f", "text", "Output format: text, json, yaml")
	cmd.Flags().StringVarP(&testsOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&testsConfig, "config", "c", "", "Path to config file")
	cmd.Flags().BoolVar(&testsRun, "run", false, "Run the maven build first to refresh reports")
	cmd.Flags().BoolVar(&testsNoProgr, "no-progress", false, "Disable progress output")

	return cmd
}

func runTests(cmd *cobra.Command, args []string) error {
	path, err := argOrCwd(args)
	if err != nil {
		return err
	}

	format, err := parseOutputFormat(testsFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfigForTarget(testsConfig, path)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if testsRun {
		runner := service.NewMavenRunner(cfg)
		status, err := runner.RunVerify(ctx, path)
		if err != nil {
			return err
		}
		cmd.Printf("%s\n", status)
	}

	pm := service.NewProgressManager(!testsNoProgr && format == domain.OutputFormatText)
	defer pm.Close()

	uc := app.NewTestReportUseCase(service.NewTestReportServiceWithProgress(cfg, pm))
	resp, err := uc.Execute(ctx, domain.TestReportRequest{
		Path:         path,
		OutputFormat: format,
		ConfigPath:   testsConfig,
	})
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(testsOutput)
	if err != nil {
		return err
	}
	defer closeOutput()

	return service.NewOutputFormatter().WriteTestReport(resp, format, writer)
}
