package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "mvnqa"

	// ConfigFileName is the default config file name
	ConfigFileName = ".mvnqa.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "MVNQA"
)

// Default report locations relative to a Maven project root. These are the
// fixed conventions the build tool writes to; callers can override each via
// configuration but the core never infers anything beyond them.
const (
	// DefaultSurefireDir holds per-suite test result XML files
	DefaultSurefireDir = "target/surefire-reports"

	// DefaultJacocoReport is the coverage XML document
	DefaultJacocoReport = "target/jacoco-report/jacoco.xml"

	// DefaultPMDReport is the static-analysis XML document
	DefaultPMDReport = "target/pmd.xml"
)

// Report discovery patterns
const (
	// SurefireReportGlob is the canonical per-suite report naming
	SurefireReportGlob = "TEST-*.xml"

	// AnyXMLGlob is the fallback when no canonical reports exist
	AnyXMLGlob = "*.xml"
)

// Aggregation policy constants
const (
	// DefaultMaxViolations bounds the detailed violation list in responses.
	// The reported total always reflects the untruncated count.
	DefaultMaxViolations = 20

	// DefaultMissingCount is the value used for an absent or non-numeric
	// count attribute on a report element
	DefaultMissingCount = 0
)

// Maven source layout conventions
const (
	MainSourceDir = "src/main/java"
	TestSourceDir = "src/test/java"
)
