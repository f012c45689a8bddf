package report

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDiscover_DirectFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "report.xml", "<testsuite/>")

	files, err := Discover(path, "TEST-*.xml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("Expected [%s], got %v", path, files)
	}
}

func TestDiscover_MissingPath(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), "TEST-*.xml")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDiscover_PrefersCanonicalGlob(t *testing.T) {
	dir := t.TempDir()
	canonical := writeFile(t, dir, "TEST-com.example.FooTest.xml", "<testsuite/>")
	writeFile(t, dir, "other.xml", "<testsuite/>")

	files, err := Discover(dir, "TEST-*.xml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != canonical {
		t.Errorf("Expected only canonical report, got %v", files)
	}
}

func TestDiscover_FallsBackToAnyXML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "results.xml", "<testsuite/>")

	files, err := Discover(dir, "TEST-*.xml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected 1 fallback report, got %v", files)
	}
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	// An existing but empty directory is distinguishable from a missing one
	_, err := Discover(t.TempDir(), "TEST-*.xml")
	if !errors.Is(err, ErrNoReports) {
		t.Errorf("Expected ErrNoReports, got %v", err)
	}
}

func TestDecodeFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.xml", "<testsuite><unclosed>")

	var suite TestSuite
	if err := DecodeFile(path, &suite); err == nil {
		t.Error("Expected decode error for malformed XML")
	}
}

func TestDecodeFile_Missing(t *testing.T) {
	var suite TestSuite
	err := DecodeFile(filepath.Join(t.TempDir(), "nope.xml"), &suite)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAttrInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{" 7 ", 7},
		{"", 0},
		{"abc", 0},
		{"-3", -3},
	}

	for _, tt := range tests {
		if got := AttrInt(tt.in); got != tt.want {
			t.Errorf("AttrInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestOptionalInt(t *testing.T) {
	if _, ok := OptionalInt(""); ok {
		t.Error("Empty attribute should not parse")
	}
	if _, ok := OptionalInt("n/a"); ok {
		t.Error("Non-numeric attribute should not parse")
	}
	if n, ok := OptionalInt("15"); !ok || n != 15 {
		t.Errorf("OptionalInt(\"15\") = %d, %v", n, ok)
	}
}

const surefireXML = `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="com.example.CalculatorTest" tests="4" failures="1" errors="1" skipped="1">
  <testcase name="testAdd" classname="com.example.CalculatorTest"/>
  <testcase name="testDivide" classname="com.example.CalculatorTest">
    <failure message="expected 2 but was 3">junit.framework.AssertionFailedError
	at com.example.CalculatorTest.testDivide(CalculatorTest.java:42)
</failure>
  </testcase>
  <testcase name="testOverflow">
    <ERROR>java.lang.ArithmeticException: / by zero</ERROR>
  </testcase>
  <testcase name="testIgnored" classname="com.example.CalculatorTest">
    <skipped/>
  </testcase>
</testsuite>`

func TestTestSuite_Unmarshal(t *testing.T) {
	var suite TestSuite
	if err := xml.Unmarshal([]byte(surefireXML), &suite); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if suite.Name != "com.example.CalculatorTest" {
		t.Errorf("Unexpected suite name: %s", suite.Name)
	}
	if AttrInt(suite.Tests) != 4 || AttrInt(suite.Failures) != 1 || AttrInt(suite.Errors) != 1 || AttrInt(suite.Skipped) != 1 {
		t.Errorf("Unexpected counts: tests=%s failures=%s errors=%s skipped=%s",
			suite.Tests, suite.Failures, suite.Errors, suite.Skipped)
	}
	if len(suite.TestCases) != 4 {
		t.Fatalf("Expected 4 test cases, got %d", len(suite.TestCases))
	}

	// Passing case has no result children
	if len(suite.TestCases[0].Results) != 0 {
		t.Error("Passing case should have no results")
	}

	// Failure child keeps message attribute and trimmed body
	failing := suite.TestCases[1]
	if len(failing.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(failing.Results))
	}
	if failing.Results[0].Tag != "failure" {
		t.Errorf("Expected failure tag, got %s", failing.Results[0].Tag)
	}
	if failing.Results[0].Message != "expected 2 but was 3" {
		t.Errorf("Unexpected message: %s", failing.Results[0].Message)
	}
	if failing.Results[0].Details == "" {
		t.Error("Details should keep the element body")
	}

	// Result tags match case-insensitively and are normalized to lower case
	erroring := suite.TestCases[2]
	if len(erroring.Results) != 1 || erroring.Results[0].Tag != "error" {
		t.Errorf("Expected lower-cased error result, got %+v", erroring.Results)
	}
	if erroring.ClassName != "" {
		t.Errorf("Case without classname should stay empty, got %s", erroring.ClassName)
	}

	// skipped children are not results
	if len(suite.TestCases[3].Results) != 0 {
		t.Error("Skipped case should have no results")
	}
}

func TestTestSuite_NestedSuites(t *testing.T) {
	const nested = `<testsuite name="Aggregate" tests="2" failures="1">
	  <testcase name="testOuter" classname="com.example.OuterTest"/>
	  <testsuite name="Inner">
	    <testcase name="testInner" classname="com.example.InnerTest">
	      <failure message="boom"/>
	    </testcase>
	  </testsuite>
	</testsuite>`

	var suite TestSuite
	if err := xml.Unmarshal([]byte(nested), &suite); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	cases := suite.AllTestCases()
	if len(cases) != 2 {
		t.Fatalf("Expected 2 test cases across suites, got %d", len(cases))
	}
	if cases[0].Name != "testOuter" || cases[1].Name != "testInner" {
		t.Errorf("Unexpected case order: %s, %s", cases[0].Name, cases[1].Name)
	}
	if len(cases[1].Results) != 1 || cases[1].Results[0].Message != "boom" {
		t.Errorf("Nested failure not collected: %+v", cases[1].Results)
	}
}

const jacocoXML = `<?xml version="1.0" encoding="UTF-8"?>
<report name="example">
  <package name="com/example">
    <class name="com/example/Calculator">
      <sourcefile name="Calculator.java">
        <line nr="10" mi="0" ci="4"/>
        <line nr="12" mi="3" ci="0"/>
        <line nr="15" mi="1" ci="1"/>
        <line nr="16"/>
        <line nr="x" mi="2"/>
      </sourcefile>
    </class>
  </package>
  <counter type="LINE" missed="3" covered="7"/>
  <counter type="BRANCH" missed="0" covered="0"/>
  <counter type="METHOD" missed="1" covered="3"/>
</report>`

func TestCoverageReport_Unmarshal(t *testing.T) {
	var rep CoverageReport
	if err := xml.Unmarshal([]byte(jacocoXML), &rep); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(rep.Counters) != 3 {
		t.Fatalf("Expected 3 project counters, got %d", len(rep.Counters))
	}
	if rep.Counters[0].Type != CounterLine || AttrInt(rep.Counters[0].Covered) != 7 {
		t.Errorf("Unexpected LINE counter: %+v", rep.Counters[0])
	}

	if len(rep.Packages) != 1 || len(rep.Packages[0].Classes) != 1 {
		t.Fatalf("Unexpected package/class structure: %+v", rep.Packages)
	}
	lines := rep.Packages[0].Classes[0].Lines
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d", len(lines))
	}
	if lines[1].Nr != "12" || lines[1].Mi != "3" {
		t.Errorf("Unexpected line data: %+v", lines[1])
	}
}

const pmdXML = `<?xml version="1.0" encoding="UTF-8"?>
<pmd xmlns="http://pmd.sourceforge.net/report/2.0.0" version="6.55.0">
  <file name="/project/src/main/java/com/example/Calculator.java">
    <violation beginline="12" endline="12" rule="UnusedLocalVariable" priority="3">
      Avoid unused local variables such as 'tmp'.
    </violation>
    <violation beginline="30" endline="40" rule="CyclomaticComplexity" priority="2">
      The method 'divide' has a cyclomatic complexity of 12.
    </violation>
  </file>
  <file name="/project/src/main/java/com/example/Parser.java"/>
</pmd>`

func TestAnalysisReport_Unmarshal(t *testing.T) {
	var rep AnalysisReport
	if err := xml.Unmarshal([]byte(pmdXML), &rep); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(rep.Files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(rep.Files))
	}

	violations := rep.Files[0].Violations
	if len(violations) != 2 {
		t.Fatalf("Expected 2 violations, got %d", len(violations))
	}
	if violations[0].Rule != "UnusedLocalVariable" || AttrInt(violations[0].BeginLine) != 12 {
		t.Errorf("Unexpected violation: %+v", violations[0])
	}
	if violations[0].Description() != "Avoid unused local variables such as 'tmp'." {
		t.Errorf("Description should be trimmed, got %q", violations[0].Description())
	}
	if len(rep.Files[1].Violations) != 0 {
		t.Error("File without violations should decode to empty list")
	}
}
