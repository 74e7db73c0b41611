package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/rulescan/domain"
)

func TestConfigLoader_LoadDefaultConfig(t *testing.T) {
	loader := NewConfigurationLoader()
	req := loader.LoadDefaultConfig()

	if req.OutputFormat != domain.OutputFormatText {
		t.Errorf("Default output format should be text, got %s", req.OutputFormat)
	}
	if !req.Recursive {
		t.Error("Default config should analyze recursively")
	}
	if !req.RespectGitignore {
		t.Error("Default config should respect .gitignore")
	}
}

func TestConfigLoader_LoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rulescan.yaml")
	content := `rules:
  disabled:
    - no-console
output:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	loader := NewConfigurationLoader()
	req, err := loader.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if req.OutputFormat != domain.OutputFormatJSON {
		t.Errorf("Expected json format, got %s", req.OutputFormat)
	}
	if len(req.DisabledRules) != 1 || req.DisabledRules[0] != "no-console" {
		t.Errorf("Expected no-console disabled, got %v", req.DisabledRules)
	}
}

func TestConfigLoader_LoadConfig_Missing(t *testing.T) {
	loader := NewConfigurationLoader()
	if _, err := loader.LoadConfig("/nonexistent/rulescan.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestConfigLoader_MergeConfig(t *testing.T) {
	loader := NewConfigurationLoader()
	base := loader.LoadDefaultConfig()
	base.DisabledRules = []string{"no-console"}

	override := &domain.LintRequest{
		Paths:         []string{"src"},
		OutputFormat:  domain.OutputFormatCSV,
		MinSeverity:   domain.SeverityWarning,
		DisabledRules: []string{"no-var"},
	}

	merged := loader.MergeConfig(base, override)
	if merged.OutputFormat != domain.OutputFormatCSV {
		t.Errorf("Override format should win, got %s", merged.OutputFormat)
	}
	if merged.MinSeverity != domain.SeverityWarning {
		t.Errorf("Override severity should win, got %s", merged.MinSeverity)
	}
	if len(merged.Paths) != 1 || merged.Paths[0] != "src" {
		t.Errorf("Paths should come from the override, got %v", merged.Paths)
	}
	// Disabled rules accumulate rather than replace
	if len(merged.DisabledRules) != 2 {
		t.Errorf("Expected 2 disabled rules after merge, got %v", merged.DisabledRules)
	}
	// Unset override fields keep base values
	if !merged.Recursive {
		t.Error("Unset override fields should keep base values")
	}
}

func TestConfigLoader_ValidateRequest(t *testing.T) {
	loader := NewConfigurationLoader()

	valid := &domain.LintRequest{
		Paths:        []string{"src"},
		OutputFormat: domain.OutputFormatText,
		MinSeverity:  domain.SeverityInfo,
	}
	if err := loader.ValidateRequest(valid); err != nil {
		t.Errorf("Valid request should pass, got: %v", err)
	}

	if err := loader.ValidateRequest(&domain.LintRequest{OutputFormat: domain.OutputFormatText}); err == nil {
		t.Error("Empty paths should be rejected")
	}
	if err := loader.ValidateRequest(&domain.LintRequest{Paths: []string{"src"}, OutputFormat: "html"}); err == nil {
		t.Error("Unknown format should be rejected")
	}
	if err := loader.ValidateRequest(&domain.LintRequest{Paths: []string{"src"}, OutputFormat: domain.OutputFormatText, MinSeverity: "fatal"}); err == nil {
		t.Error("Unknown severity should be rejected")
	}
}
