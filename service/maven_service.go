package service

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
)

// Build status lines reported by the maven runner
const (
	BuildSuccess           = "BUILD SUCCESS"
	BuildFailureCompile    = "BUILD FAILURE: Build failed to compile."
	BuildFailureIncomplete = "BUILD FAILURE: Build did not complete. Check logs."
)

// MavenRunner invokes the maven binary to refresh the report artifacts the
// aggregation services read. The build's exit code is deliberately ignored
// where the generated report is the source of truth.
type MavenRunner struct {
	config *config.Config
}

// NewMavenRunner creates a new maven runner
func NewMavenRunner(cfg *config.Config) *MavenRunner {
	return &MavenRunner{config: cfg}
}

// RunVerify runs "mvn clean verify" in the project directory, regenerating
// the test and coverage reports, and classifies the combined output into a
// one-line build status.
func (m *MavenRunner) RunVerify(ctx context.Context, projectPath string) (string, error) {
	if info, err := os.Stat(filepath.Join(projectPath, "src")); err != nil || !info.IsDir() {
		return "", domain.NewValidationError("not a maven project directory: missing src/")
	}

	output, err := m.run(ctx, projectPath, "clean", "verify")
	if ctx.Err() != nil {
		return "", domain.NewAnalysisError("maven build cancelled", ctx.Err())
	}
	if err != nil && len(output) == 0 {
		return "", domain.NewAnalysisError("failed to run maven", err)
	}
	return ClassifyBuildOutput(string(output)), nil
}

// RunPMD runs "mvn clean install pmd:check" to generate the pmd.xml report.
// A non-zero exit is expected when violations exist, so errors only surface
// when maven produced no output at all.
func (m *MavenRunner) RunPMD(ctx context.Context, projectPath string) error {
	output, err := m.run(ctx, projectPath, "clean", "install", "pmd:check")
	if ctx.Err() != nil {
		return domain.NewAnalysisError("pmd analysis cancelled", ctx.Err())
	}
	if err != nil && len(output) == 0 {
		return domain.NewAnalysisError("failed to run maven", err)
	}
	return nil
}

func (m *MavenRunner) run(ctx context.Context, projectPath string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, m.config.Maven.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, m.config.Maven.Binary, args...)
	cmd.Dir = projectPath
	return cmd.CombinedOutput()
}

// ClassifyBuildOutput maps maven's combined output to a build status line.
// The final status marker decides; its absence means the build never
// completed.
func ClassifyBuildOutput(output string) string {
	switch {
	case strings.Contains(output, "[INFO] BUILD SUCCESS"):
		return BuildSuccess
	case strings.Contains(output, "[INFO] BUILD FAILURE"):
		return BuildFailureCompile
	default:
		return BuildFailureIncomplete
	}
}
