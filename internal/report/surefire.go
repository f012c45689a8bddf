package report

import (
	"encoding/xml"
	"strings"
)

// TestSuite is one Surefire-style report document: suite-level counts plus
// the individual test cases.
type TestSuite struct {
	XMLName xml.Name `xml:"testsuite"`

	Name string `xml:"name,attr"`

	// Counts are kept as raw attribute text; AttrInt applies the
	// missing-attribute default during aggregation.
	Tests    string `xml:"tests,attr"`
	Failures string `xml:"failures,attr"`
	Errors   string `xml:"errors,attr"`
	Skipped  string `xml:"skipped,attr"`

	TestCases []TestCase `xml:"testcase"`

	// Suites are nested testsuite children, as written by suite-of-suites
	// runners. Counts are carried by the document root only.
	Suites []TestSuite `xml:"testsuite"`
}

// AllTestCases returns the suite's test cases including those of nested
// suites, direct cases before each nested suite's.
func (s *TestSuite) AllTestCases() []TestCase {
	cases := append([]TestCase(nil), s.TestCases...)
	for i := range s.Suites {
		cases = append(cases, s.Suites[i].AllTestCases()...)
	}
	return cases
}

// TestCase is a single executed test. Result children are matched
// case-insensitively since report producers disagree on tag casing.
type TestCase struct {
	Name      string
	ClassName string
	Results   []CaseResult
}

// CaseResult is a failure or error child of a test case
type CaseResult struct {
	// Tag is the lower-cased element name: "failure" or "error"
	Tag string

	// Message is the message attribute, empty when absent
	Message string

	// Details is the trimmed element body, empty when absent
	Details string
}

// UnmarshalXML decodes a testcase element, collecting failure/error children
// regardless of tag casing. Children with other tags (system-out, skipped)
// are ignored.
func (tc *TestCase) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "name":
			tc.Name = attr.Value
		case "classname":
			tc.ClassName = attr.Value
		}
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			tag := strings.ToLower(t.Name.Local)
			if tag != "failure" && tag != "error" {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}

			result := CaseResult{Tag: tag}
			for _, attr := range t.Attr {
				if attr.Name.Local == "message" {
					result.Message = attr.Value
				}
			}

			var body struct {
				Text string `xml:",chardata"`
			}
			if err := d.DecodeElement(&body, &t); err != nil {
				return err
			}
			result.Details = strings.TrimSpace(body.Text)
			tc.Results = append(tc.Results, result)

		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}
