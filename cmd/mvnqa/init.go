package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/buildquality/mvnqa/internal/config"
	"github.com/buildquality/mvnqa/internal/constants"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a mvnqa configuration file",
		Long: `Generate a mvnqa configuration file with the default report
locations and limits. Use --interactive for a guided setup.

Examples:
  mvnqa init
  mvnqa init --config custom.yaml
  mvnqa init --force
  mvnqa init --interactive`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", constants.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	interactive, _ := cmd.Flags().GetBool("interactive")

	cfg := config.DefaultConfig()

	if interactive {
		var err error
		configPath, err = runInteractiveSetup(cfg, configPath)
		if err != nil {
			return err
		}
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	if err := config.SaveConfig(cfg, configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'mvnqa dashboard .' to see your project's quality snapshot.")

	return nil
}

func runInteractiveSetup(cfg *config.Config, defaultConfigPath string) (string, error) {
	fmt.Println()
	fmt.Println("mvnqa Configuration Setup")
	fmt.Println("=========================")
	fmt.Println()

	formats := []struct {
		Label       string
		Description string
		Value       string
	}{
		{"text", "Human-readable summaries", "text"},
		{"json", "Machine-readable, for tooling", "json"},
		{"yaml", "Machine-readable, for humans too", "yaml"},
	}

	formatTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	formatPrompt := promptui.Select{
		Label:     "Default output format?",
		Items:     formats,
		Templates: formatTemplates,
	}

	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("format selection cancelled: %w", err)
	}
	cfg.Output.Format = formats[formatIdx].Value

	fmt.Println()

	maxPrompt := promptui.Prompt{
		Label:   "Maximum violations to list",
		Default: strconv.Itoa(cfg.Violations.MaxViolations),
		Validate: func(input string) error {
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 {
				return fmt.Errorf("must be a positive integer")
			}
			return nil
		},
	}

	maxValue, err := maxPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("violation limit input cancelled: %w", err)
	}
	cfg.Violations.MaxViolations, _ = strconv.Atoi(maxValue)

	fmt.Println()

	mavenPrompt := promptui.Prompt{
		Label:   "Maven binary",
		Default: cfg.Maven.Binary,
	}

	mavenBinary, err := mavenPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("maven binary input cancelled: %w", err)
	}
	if mavenBinary != "" {
		cfg.Maven.Binary = mavenBinary
	}

	fmt.Println()

	outputPrompt := promptui.Prompt{
		Label:   "Config file path",
		Default: defaultConfigPath,
	}

	outputPath, err := outputPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("output path input cancelled: %w", err)
	}
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Println()
	fmt.Printf("Creating %s... ", outputPath)

	return outputPath, nil
}
