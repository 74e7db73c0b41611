package service

import (
	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.LintRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return c.convertToLintRequest(cfg), nil
}

// LoadDefaultConfig loads configuration via upward discovery, falling
// back to built-in defaults
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.LintRequest {
	return c.LoadDefaultConfigForTarget("")
}

// LoadDefaultConfigForTarget discovers configuration starting from the
// analyzed path
func (c *ConfigurationLoaderImpl) LoadDefaultConfigForTarget(targetPath string) *domain.LintRequest {
	cfg, err := config.LoadConfigWithTarget("", targetPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return c.convertToLintRequest(cfg)
}

// MergeConfig merges CLI flags with configuration file. Zero values in
// the override keep the base value.
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.LintRequest, override *domain.LintRequest) *domain.LintRequest {
	merged := *base

	// Paths always come from command arguments
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.ShowDetails {
		merged.ShowDetails = override.ShowDetails
	}
	if override.SortBy != "" {
		merged.SortBy = override.SortBy
	}

	if len(override.EnabledRules) > 0 {
		merged.EnabledRules = override.EnabledRules
	}
	if len(override.DisabledRules) > 0 {
		merged.DisabledRules = append(merged.DisabledRules, override.DisabledRules...)
	}
	if override.MinSeverity != "" {
		merged.MinSeverity = override.MinSeverity
	}

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	if len(override.IncludePatterns) > 0 {
		merged.IncludePatterns = override.IncludePatterns
	}
	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = append(merged.ExcludePatterns, override.ExcludePatterns...)
	}
	if override.NoProgress {
		merged.NoProgress = override.NoProgress
	}

	return &merged
}

// convertToLintRequest converts a Config to LintRequest
func (c *ConfigurationLoaderImpl) convertToLintRequest(cfg *config.Config) *domain.LintRequest {
	return &domain.LintRequest{
		// Paths are set by the caller, not from config
		Paths: []string{},

		OutputFormat: domain.OutputFormat(cfg.Output.Format),
		ShowDetails:  cfg.Output.ShowDetails,
		SortBy:       domain.SortCriteria(cfg.Output.SortBy),

		EnabledRules:  cfg.Rules.Enabled,
		DisabledRules: cfg.Rules.Disabled,
		MinSeverity:   domain.Severity(cfg.Rules.MinSeverity),

		Recursive:        cfg.Analysis.Recursive,
		IncludePatterns:  cfg.Analysis.IncludePatterns,
		ExcludePatterns:  cfg.Analysis.ExcludePatterns,
		RespectGitignore: cfg.Analysis.RespectGitignore,
	}
}

// ValidateRequest validates a lint request before execution
func (c *ConfigurationLoaderImpl) ValidateRequest(req *domain.LintRequest) error {
	if len(req.Paths) == 0 {
		return domain.NewValidationError("no input paths specified")
	}

	validFormats := map[domain.OutputFormat]bool{
		domain.OutputFormatText: true,
		domain.OutputFormatJSON: true,
		domain.OutputFormatYAML: true,
		domain.OutputFormatCSV:  true,
	}
	if !validFormats[req.OutputFormat] {
		return domain.NewUnsupportedFormatError(string(req.OutputFormat))
	}

	switch req.MinSeverity {
	case domain.SeverityInfo, domain.SeverityWarning, domain.SeverityError, "":
	default:
		return domain.NewValidationError("invalid minimum severity: " + string(req.MinSeverity))
	}

	return nil
}
