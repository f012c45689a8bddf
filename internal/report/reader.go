// Package report locates and decodes build-tool XML report files. Discovery
// and malformed-file tolerance are shared across all report families; the
// family only determines which canonical glob is preferred.
package report

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/buildquality/mvnqa/internal/constants"
)

// Sentinel errors for discovery outcomes. A missing directory or file is
// distinguishable from a directory that exists but holds no reports.
var (
	// ErrNotFound means the report file or directory does not exist
	ErrNotFound = errors.New("report path not found")

	// ErrNoReports means the directory exists but contains no report files
	ErrNoReports = errors.New("no report files found")
)

// Discover resolves the set of report files to decode for a path. A direct
// path to an .xml file is treated as the sole report. For a directory, files
// matching canonicalGlob are preferred; if none match, any *.xml file is
// accepted.
func Discover(path, canonicalGlob string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, ErrNotFound
	}

	if !info.IsDir() {
		if strings.HasSuffix(strings.ToLower(path), ".xml") {
			return []string{path}, nil
		}
		return nil, ErrNoReports
	}

	files, err := filepath.Glob(filepath.Join(path, canonicalGlob))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		files, err = filepath.Glob(filepath.Join(path, constants.AnyXMLGlob))
		if err != nil {
			return nil, err
		}
	}
	if len(files) == 0 {
		return nil, ErrNoReports
	}

	return files, nil
}

// DecodeFile decodes a single XML report into v. A missing file yields
// ErrNotFound; a malformed document yields the decoder's error, which batch
// callers record as a skipped file rather than aborting.
func DecodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return xml.Unmarshal(data, v)
}

// AttrInt coerces a count attribute to an integer. Absent or non-numeric
// attributes yield the named default rather than an error: such values
// represent optional report fields, not corruption.
func AttrInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return constants.DefaultMissingCount
	}
	return n
}

// OptionalInt parses an attribute that must be present and numeric to count,
// reporting ok=false otherwise. Used for coverage line data where absence
// marks non-executable lines.
func OptionalInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
