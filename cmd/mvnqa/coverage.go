package main

import (
	"github.com/spf13/cobra"

	"github.com/buildquality/mvnqa/app"
	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/service"
)

var (
	coverageFormat  string
	coverageOutput  string
	coverageConfig  string
	coverageMissing bool
)

func coverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage [path]",
		Short: "Aggregate coverage from the JaCoCo report",
		Long: `Aggregate project-level coverage percentages from the JaCoCo XML report.

The path may be a project root or the report file itself. With --missing
the per-class uncovered line numbers are reported instead of the summary.

Examples:
  mvnqa coverage ./my-project
  mvnqa coverage target/jacoco-report/jacoco.xml
  mvnqa coverage --missing --format json ./my-project`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCoverage,
	}

	cmd.Flags().StringVarP(&coverageFormat, "format", "f", "text", "Output format: text, json, yaml")
	cmd.Flags().StringVarP(&coverageOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&coverageConfig, "config", "c", "", "Path to config file")
	cmd.Flags().BoolVarP(&coverageMissing, "missing", "m", false, "Report uncovered lines per class")

	return cmd
}

func runCoverage(cmd *cobra.Command, args []string) error {
	path, err := argOrCwd(args)
	if err != nil {
		return err
	}

	format, err := parseOutputFormat(coverageFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfigForTarget(coverageConfig, path)
	if err != nil {
		return err
	}

	writer, closeOutput, err := openOutput(coverageOutput)
	if err != nil {
		return err
	}
	defer closeOutput()

	uc := app.NewCoverageUseCase(cfg, service.NewCoverageService(cfg))
	req := domain.CoverageRequest{
		ReportPath:   path,
		OutputFormat: format,
		ConfigPath:   coverageConfig,
	}

	formatter := service.NewOutputFormatter()
	if coverageMissing {
		resp, err := uc.UncoveredLines(cmd.Context(), req)
		if err != nil {
			return err
		}
		return formatter.WriteUncoveredLines(resp, format, writer)
	}

	resp, err := uc.Summary(cmd.Context(), req)
	if err != nil {
		return err
	}
	return formatter.WriteCoverage(resp, format, writer)
}
