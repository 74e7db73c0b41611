package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// SortCriteria represents the criteria for sorting diagnostics
type SortCriteria string

const (
	SortByLocation SortCriteria = "location"
	SortBySeverity SortCriteria = "severity"
	SortByRule     SortCriteria = "rule"
)

// Severity represents the severity of a diagnostic
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rank returns the severity as an integer for threshold comparisons
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityWarning:
		return 2
	case SeverityError:
		return 3
	default:
		return 0
	}
}

// Impact classifies how much a finding is likely to matter.
// It is a declarative signal for reporting tools and never changes
// engine behavior.
type Impact string

const (
	ImpactLow      Impact = "low"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
	ImpactCritical Impact = "critical"
)

// Cost classifies how expensive a rule is to run. Informational only.
type Cost string

const (
	CostLow    Cost = "low"
	CostMedium Cost = "medium"
	CostHigh   Cost = "high"
)

// Anchor is a byte range in the analyzed source
type Anchor struct {
	Offset int `json:"offset" yaml:"offset"`
	Length int `json:"length" yaml:"length"`

	// Line and Column are 1-based/0-based display coordinates derived
	// from Offset at report time
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// TextEdit is a single replacement against the original source
type TextEdit struct {
	Offset      int    `json:"offset" yaml:"offset"`
	Length      int    `json:"length" yaml:"length"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// FixAction is an applicable set of non-overlapping text edits
type FixAction struct {
	Description string     `json:"description" yaml:"description"`
	Edits       []TextEdit `json:"edits" yaml:"edits"`
}

// Diagnostic represents one reported finding. Immutable once constructed.
type Diagnostic struct {
	RuleCode   string   `json:"rule" yaml:"rule"`
	Severity   Severity `json:"severity" yaml:"severity"`
	FilePath   string   `json:"file_path" yaml:"file_path"`
	Anchor     Anchor   `json:"anchor" yaml:"anchor"`
	Message    string   `json:"message" yaml:"message"`
	Correction string   `json:"correction,omitempty" yaml:"correction,omitempty"`

	// Fixable records whether the owning rule declares fix generators.
	// Fix text is materialized lazily, never at report time.
	Fixable bool `json:"fixable" yaml:"fixable"`
}

// FileDiagnostics groups the ordered diagnostics of a single file
type FileDiagnostics struct {
	FilePath    string       `json:"file_path" yaml:"file_path"`
	FileType    string       `json:"file_type" yaml:"file_type"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`

	// ParseError is set when the tree provider failed to produce a tree
	// and the file was skipped
	ParseError string `json:"parse_error,omitempty" yaml:"parse_error,omitempty"`
}

// LintRequest represents a request for lint analysis
type LintRequest struct {
	// Input files or directories to analyze
	Paths []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	ShowDetails  bool
	SortBy       SortCriteria

	// Rule selection
	EnabledRules  []string
	DisabledRules []string
	MinSeverity   Severity

	// Configuration
	ConfigPath string

	// Analysis options
	Recursive        bool
	IncludePatterns  []string
	ExcludePatterns  []string
	RespectGitignore bool

	// NoProgress disables interactive progress output
	NoProgress bool
}

// LintSummary represents aggregate statistics
type LintSummary struct {
	FilesAnalyzed    int `json:"files_analyzed" yaml:"files_analyzed"`
	FilesSkipped     int `json:"files_skipped" yaml:"files_skipped"`
	TotalDiagnostics int `json:"total_diagnostics" yaml:"total_diagnostics"`
	FixableCount     int `json:"fixable_count" yaml:"fixable_count"`

	// Severity distribution
	InfoCount    int `json:"info_count" yaml:"info_count"`
	WarningCount int `json:"warning_count" yaml:"warning_count"`
	ErrorCount   int `json:"error_count" yaml:"error_count"`

	// Per-rule counts
	RuleCounts map[string]int `json:"rule_counts,omitempty" yaml:"rule_counts,omitempty"`
}

// LintResponse represents the complete analysis result
type LintResponse struct {
	Files   []FileDiagnostics `json:"files" yaml:"files"`
	Summary LintSummary       `json:"summary" yaml:"summary"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
	DurationMs  int64  `json:"duration_ms" yaml:"duration_ms"`
}

// LintService defines the core business logic for lint analysis
type LintService interface {
	// Analyze runs the rule engine over the given request
	Analyze(ctx context.Context, req LintRequest) (*LintResponse, error)

	// AnalyzeFile analyzes a single JavaScript/TypeScript file
	AnalyzeFile(ctx context.Context, filePath string, req LintRequest) (*LintResponse, error)
}

// SourceFileReader defines file collection and reading for lint targets
type SourceFileReader interface {
	CollectSourceFiles(paths []string, recursive bool, includePatterns, excludePatterns []string, respectGitignore bool) ([]string, error)
	ReadFile(path string) ([]byte, error)
	IsValidSourceFile(path string) bool
	FileExists(path string) (bool, error)
}

// OutputFormatter defines the interface for formatting analysis results
type OutputFormatter interface {
	Format(response *LintResponse, format OutputFormat) (string, error)
	Write(response *LintResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration
type ConfigurationLoader interface {
	LoadConfig(path string) (*LintRequest, error)
	LoadDefaultConfig() *LintRequest
	MergeConfig(base *LintRequest, override *LintRequest) *LintRequest
}
