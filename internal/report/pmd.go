package report

import (
	"encoding/xml"
	"strings"
)

// AnalysisReport is a PMD-style static-analysis document: per source file,
// zero or more rule violations.
type AnalysisReport struct {
	XMLName xml.Name `xml:"pmd"`

	Files []AnalysisFile `xml:"file"`
}

// AnalysisFile groups violations for one source file
type AnalysisFile struct {
	Name       string              `xml:"name,attr"`
	Violations []AnalysisViolation `xml:"violation"`
}

// AnalysisViolation is one rule violation in document order
type AnalysisViolation struct {
	BeginLine string `xml:"beginline,attr"`
	Rule      string `xml:"rule,attr"`
	Priority  string `xml:"priority,attr"`
	Text      string `xml:",chardata"`
}

// Description returns the trimmed violation body
func (v AnalysisViolation) Description() string {
	return strings.TrimSpace(v.Text)
}
