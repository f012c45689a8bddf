package main

import (
	"github.com/spf13/cobra"

	"github.com/buildquality/mvnqa/app"
	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/service"
)

var (
	violationsFormat string
	violationsOutput string
	violationsConfig string
	violationsMax    int
	violationsRun    bool
)

func violationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "violations [path]",
		Short: "Aggregate static-analysis findings from the PMD report",
		Long: `Aggregate static-analysis findings from the PMD XML report.

The path may be a project root or the report file itself. With --run the
PMD goal is executed first to regenerate the report; its exit code is
ignored because the report is what gets aggregated.

Examples:
  mvnqa violations ./my-project
  mvnqa violations target/pmd.xml
  mvnqa violations --run --max 50 ./my-project`,
		Args: cobra.MaximumNArgs(1),
		RunE: runViolations,
	}

	cmd.Flags().StringVarP(&violationsFormat, "format", "f", "text", "Output format: text, json, yaml")
	cmd.Flags().StringVarP(&violationsOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&violationsConfig, "config", "c", "", "Path to config file")
	cmd.Flags().IntVar(&violationsMax, "max", 0, "Maximum violations to list (default: configured limit)")
	cmd.Flags().BoolVar(&violationsRun, "run", false, "Run the PMD goal first to refresh the report")

	return cmd
}

func runViolations(cmd *cobra.Command, args []string) error {
	path, err := argOrCwd(args)
	if err != nil {
		return err
	}

	format, err := parseOutputFormat(violationsFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfigForTarget(violationsConfig, path)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	violationService := service.NewViolationService(cfg)

	var resp *domain.ViolationResponse
	if violationsRun {
		uc := app.NewPMDAnalysisUseCase(service.NewMavenRunner(cfg), violationService, cfg)
		resp, err = uc.Execute(ctx, path)
	} else {
		reportPath := path
		if isDirectory(path) {
			reportPath = cfg.PMDPath(path)
		}
		uc := app.NewViolationUseCase(violationService)
		resp, err = uc.Execute(ctx, domain.ViolationRequest{
			ReportPath:    reportPath,
			MaxViolations: violationsMax,
			OutputFormat:  format,
			ConfigPath:    violationsConfig,
		})
	}
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(violationsOutput)
	if err != nil {
		return err
	}
	defer closeOutput()

	return service.NewOutputFormatter().WriteViolations(resp, format, writer)
}
