package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/buildquality/mvnqa/domain"
	"github.com/buildquality/mvnqa/internal/constants"
)

// FileHelper provides maven workspace file utilities
type FileHelper struct{}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// FindJavaFiles collects all Java source files under the project's main
// source directory, sorted by path.
func (h *FileHelper) FindJavaFiles(projectPath string) ([]string, error) {
	return h.collectJavaFiles(filepath.Join(projectPath, filepath.FromSlash(constants.MainSourceDir)))
}

// FindJavaTestFiles collects all Java test files under the project's test
// source directory, sorted by path.
func (h *FileHelper) FindJavaTestFiles(projectPath string) ([]string, error) {
	return h.collectJavaFiles(filepath.Join(projectPath, filepath.FromSlash(constants.TestSourceDir)))
}

func (h *FileHelper) collectJavaFiles(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewFileNotFoundError(root, err)
		}
		return nil, domain.NewAnalysisError(fmt.Sprintf("failed to read source directory: %s", root), err)
	}

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(info.Name(), ".java") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewAnalysisError(fmt.Sprintf("failed to walk source directory: %s", root), err)
	}

	sort.Strings(files)
	return files, nil
}

// FindJacocoReport returns the path of the project's coverage report at its
// fixed maven location. The report only exists after a verify build.
func (h *FileHelper) FindJacocoReport(projectPath string) (string, error) {
	reportPath := filepath.Join(projectPath, filepath.FromSlash(constants.DefaultJacocoReport))
	if _, err := os.Stat(reportPath); err != nil {
		if os.IsNotExist(err) {
			return "", domain.NewReportNotFoundError(reportPath, err)
		}
		return "", domain.NewAnalysisError(fmt.Sprintf("failed to stat report: %s", reportPath), err)
	}
	return reportPath, nil
}

// FileExists checks if a file exists
func (h *FileHelper) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadFileContent returns the full text content of a file
func (h *FileHelper) ReadFileContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.NewFileNotFoundError(path, err)
		}
		return "", domain.NewAnalysisError(fmt.Sprintf("failed to read file: %s", path), err)
	}
	return string(data), nil
}

// WriteFileContent writes content to a file, replacing what was there.
// Callers that need to append should read the current content first.
func (h *FileHelper) WriteFileContent(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return domain.NewOutputError(fmt.Sprintf("failed to write file: %s", path), err)
	}
	return nil
}
