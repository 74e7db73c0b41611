package domain

import "context"

// FixRequest represents a request to materialize and apply fixes
type FixRequest struct {
	// Paths to analyze and fix
	Paths []string

	// DryRun lists the edits without writing files
	DryRun bool

	// Rule selection mirrors LintRequest
	EnabledRules  []string
	DisabledRules []string

	ConfigPath string

	Recursive        bool
	IncludePatterns  []string
	ExcludePatterns  []string
	RespectGitignore bool
}

// AppliedFix describes one fix that was (or would be) applied
type AppliedFix struct {
	FilePath    string     `json:"file_path" yaml:"file_path"`
	RuleCode    string     `json:"rule" yaml:"rule"`
	Description string     `json:"description" yaml:"description"`
	Edits       []TextEdit `json:"edits" yaml:"edits"`
}

// FixResponse represents the result of a fix run
type FixResponse struct {
	Applied []AppliedFix `json:"applied" yaml:"applied"`

	// Remaining counts diagnostics that had no applicable fix
	Remaining int `json:"remaining" yaml:"remaining"`

	// FilesChanged lists files that were rewritten (empty for dry runs)
	FilesChanged []string `json:"files_changed,omitempty" yaml:"files_changed,omitempty"`

	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// FixService materializes fix actions for diagnostics and applies them
type FixService interface {
	Fix(ctx context.Context, req FixRequest) (*FixResponse, error)
}
