package service

import (
	"context"
	"testing"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/config"
)

func TestClassifyBuildOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{
			name:   "success",
			output: "[INFO] Tests run: 10\n[INFO] BUILD SUCCESS\n[INFO] Total time: 3.2 s",
			want:   BuildSuccess,
		},
		{
			name:   "failure",
			output: "[ERROR] compilation error\n[INFO] BUILD FAILURE\n",
			want:   BuildFailureCompile,
		},
		{
			name:   "no final status",
			output: "[INFO] Scanning for projects...",
			want:   BuildFailureIncomplete,
		},
		{
			name:   "empty output",
			output: "",
			want:   BuildFailureIncomplete,
		},
		{
			name:   "success marker wins over earlier noise",
			output: "[WARNING] deprecated\n[INFO] BUILD SUCCESS",
			want:   BuildSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyBuildOutput(tt.output); got != tt.want {
				t.Errorf("ClassifyBuildOutput() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunVerifyRequiresMavenLayout(t *testing.T) {
	runner := NewMavenRunner(config.DefaultConfig())

	_, err := runner.RunVerify(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("Expected error for directory without src/")
	}
	if domain.ErrorCode(err) != domain.ErrCodeInvalidInput {
		t.Errorf("Expected code %s, got %s", domain.ErrCodeInvalidInput, domain.ErrorCode(err))
	}
}
