package main

import (
	"fmt"
	"io"
	"os"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
)

// parseOutputFormat validates a format flag value
func parseOutputFormat(format string) (domain.OutputFormat, error) {
	switch format {
	case "", "text":
		return domain.OutputFormatText, nil
	case "json":
		return domain.OutputFormatJSON, nil
	case "yaml":
		return domain.OutputFormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (use text, json, or yaml)", format)
	}
}

// openOutput returns the writer for formatted results. An empty path means
// stdout; the returned closer is a no-op in that case.
func openOutput(outputPath string) (io.Writer, func(), error) {
	if outputPath == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}

// loadConfigForTarget loads configuration, searching upward from the target
// path when no explicit config file is given.
func loadConfigForTarget(configPath, targetPath string) (*config.Config, error) {
	cfg, err := config.LoadConfigWithTarget(configPath, targetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// isDirectory reports whether the path exists and is a directory
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// argOrCwd returns the single positional argument, or the working directory
// when none was given.
func argOrCwd(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return cwd, nil
}
