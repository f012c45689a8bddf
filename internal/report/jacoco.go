package report

import "encoding/xml"

// Counter type names of interest in a JaCoCo-style report
const (
	CounterLine   = "LINE"
	CounterBranch = "BRANCH"
	CounterMethod = "METHOD"
)

// CoverageReport is a JaCoCo-style coverage document: project-level counters
// plus a package/class/line breakdown of missed vs covered instructions.
type CoverageReport struct {
	XMLName xml.Name `xml:"report"`

	Name string `xml:"name,attr"`

	// Counters are the document's direct counter children, which carry the
	// project-level totals. Nested package/class counters are not selected.
	Counters []CoverageCounter `xml:"counter"`

	Packages []CoveragePackage `xml:"package"`
}

// CoverageCounter carries missed/covered instruction counts for one type
type CoverageCounter struct {
	Type    string `xml:"type,attr"`
	Missed  string `xml:"missed,attr"`
	Covered string `xml:"covered,attr"`
}

// CoveragePackage groups classes under a slash-separated package path
type CoveragePackage struct {
	Name    string          `xml:"name,attr"`
	Classes []CoverageClass `xml:"class"`
}

// CoverageClass is one class with its per-line instruction data
type CoverageClass struct {
	Name  string         `xml:"name,attr"`
	Lines []CoverageLine `xml:"sourcefile>line"`
}

// CoverageLine is one source line. Nr and Mi stay raw: a line qualifies as
// uncovered only when both parse as integers and Mi > 0; anything else is a
// non-executable or annotation-only line and is silently skipped.
type CoverageLine struct {
	Nr string `xml:"nr,attr"`
	Mi string `xml:"mi,attr"`
}
