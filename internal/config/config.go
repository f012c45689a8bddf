package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/buildquality/mvnqa/internal/constants"
)

// Default report location and aggregation settings. Every silent default has
// a named constant here; nothing falls back implicitly.
const (
	// DefaultOutputFormat is used when no format is configured
	DefaultOutputFormat = "text"

	// DefaultMavenBinary is the build tool executable invoked by collaborators
	DefaultMavenBinary = "mvn"

	// DefaultMavenTimeout bounds a single external build invocation
	DefaultMavenTimeout = 15 * time.Minute

	// DefaultWatchDebounce is how long the watcher waits after the last
	// filesystem event before re-aggregating
	DefaultWatchDebounce = 2 * time.Second
)

// Config represents the main configuration structure
type Config struct {
	// Reports holds report location overrides
	Reports ReportsConfig `json:"reports" mapstructure:"reports" yaml:"reports"`

	// Violations holds static-analysis aggregation settings
	Violations ViolationsConfig `json:"violations" mapstructure:"violations" yaml:"violations"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Maven holds build-tool collaborator settings
	Maven MavenConfig `json:"maven" mapstructure:"maven" yaml:"maven"`

	// Watch holds watch-mode settings
	Watch WatchConfig `json:"watch" mapstructure:"watch" yaml:"watch"`
}

// ReportsConfig holds per-family report locations, relative to a project root
type ReportsConfig struct {
	// SurefireDir is the directory holding per-suite test result XML
	SurefireDir string `json:"surefire_dir" mapstructure:"surefire_dir" yaml:"surefire_dir"`

	// JacocoReport is the coverage XML document
	JacocoReport string `json:"jacoco_report" mapstructure:"jacoco_report" yaml:"jacoco_report"`

	// PMDReport is the static-analysis XML document
	PMDReport string `json:"pmd_report" mapstructure:"pmd_report" yaml:"pmd_report"`
}

// ViolationsConfig holds static-analysis aggregation settings
type ViolationsConfig struct {
	// MaxViolations bounds the detailed list in responses; the reported
	// total always reflects the untruncated count
	MaxViolations int `json:"max_violations" mapstructure:"max_violations" yaml:"max_violations"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`
}

// MavenConfig holds build-tool collaborator settings
type MavenConfig struct {
	// Binary is the executable name or path
	Binary string `json:"binary" mapstructure:"binary" yaml:"binary"`

	// Timeout bounds a single invocation
	Timeout time.Duration `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
}

// WatchConfig holds watch-mode settings
type WatchConfig struct {
	// Debounce is how long to wait after the last event before refreshing
	Debounce time.Duration `json:"debounce" mapstructure:"debounce" yaml:"debounce"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Reports: ReportsConfig{
			SurefireDir:  constants.DefaultSurefireDir,
			JacocoReport: constants.DefaultJacocoReport,
			PMDReport:    constants.DefaultPMDReport,
		},
		Violations: ViolationsConfig{
			MaxViolations: constants.DefaultMaxViolations,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
		Maven: MavenConfig{
			Binary:  DefaultMavenBinary,
			Timeout: DefaultMavenTimeout,
		},
		Watch: WatchConfig{
			Debounce: DefaultWatchDebounce,
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context: when no
// explicit path is given, config files are discovered starting from the
// target project upward.
func LoadConfigWithTarget(configPath, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// Create a new viper instance to avoid race conditions
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common locations
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		"mvnqa.yaml",
		"mvnqa.yml",
		constants.ConfigFileName,
		".mvnqa.yml",
		"mvnqa.json",
	}

	// Search from the target project upward
	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}
				if filepath.Dir(dir) == dir {
					break
				}
			}
		}
	}

	// Fallback to current directory
	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if config := searchConfigInDirectory(filepath.Join(home, ".config", constants.ToolName), candidates); config != "" {
			return config
		}
	}

	// Explicit env var fallback
	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml", c.Output.Format)
	}

	if c.Violations.MaxViolations < 1 {
		return fmt.Errorf("violations.max_violations must be >= 1, got %d", c.Violations.MaxViolations)
	}

	if c.Reports.SurefireDir == "" {
		return fmt.Errorf("reports.surefire_dir cannot be empty")
	}
	if c.Reports.JacocoReport == "" {
		return fmt.Errorf("reports.jacoco_report cannot be empty")
	}
	if c.Reports.PMDReport == "" {
		return fmt.Errorf("reports.pmd_report cannot be empty")
	}

	if c.Maven.Binary == "" {
		return fmt.Errorf("maven.binary cannot be empty")
	}
	if c.Maven.Timeout <= 0 {
		return fmt.Errorf("maven.timeout must be positive, got %s", c.Maven.Timeout)
	}

	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive, got %s", c.Watch.Debounce)
	}

	return nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	// Create a new viper instance to avoid race conditions
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("reports", config.Reports)
	v.Set("violations", config.Violations)
	v.Set("output", config.Output)
	v.Set("maven", map[string]any{
		"binary":  config.Maven.Binary,
		"timeout": config.Maven.Timeout.String(),
	})
	v.Set("watch", map[string]any{
		"debounce": config.Watch.Debounce.String(),
	})

	return v.WriteConfig()
}

// SurefirePath resolves the test report directory for a project root
func (c *Config) SurefirePath(projectPath string) string {
	return filepath.Join(projectPath, c.Reports.SurefireDir)
}

// JacocoPath resolves the coverage report for a project root
func (c *Config) JacocoPath(projectPath string) string {
	return filepath.Join(projectPath, c.Reports.JacocoReport)
}

// PMDPath resolves the static-analysis report for a project root
func (c *Config) PMDPath(projectPath string) string {
	return filepath.Join(projectPath, c.Reports.PMDReport)
}
