package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/rulescan/domain"
)

func sampleResponse() *domain.LintResponse {
	return &domain.LintResponse{
		Files: []domain.FileDiagnostics{
			{
				FilePath: "src/a.js",
				FileType: "js",
				Diagnostics: []domain.Diagnostic{
					{
						RuleCode: "no-eval",
						Severity: domain.SeverityError,
						FilePath: "src/a.js",
						Anchor:   domain.Anchor{Offset: 10, Length: 4, Line: 2, Column: 4},
						Message:  "eval() executes arbitrary code",
					},
					{
						RuleCode: "no-debugger",
						Severity: domain.SeverityWarning,
						FilePath: "src/a.js",
						Anchor:   domain.Anchor{Offset: 30, Length: 9, Line: 4, Column: 0},
						Message:  "debugger statement left in source",
						Fixable:  true,
					},
				},
			},
		},
		Summary: domain.LintSummary{
			FilesAnalyzed:    1,
			TotalDiagnostics: 2,
			ErrorCount:       1,
			WarningCount:     1,
			FixableCount:     1,
		},
		GeneratedAt: "2025-01-01T00:00:00Z",
		Version:     "test",
	}
}

func TestOutputFormatter_Text(t *testing.T) {
	color.NoColor = true
	out, err := NewOutputFormatter().Format(sampleResponse(), domain.OutputFormatText)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	for _, want := range []string{"src/a.js", "2:4", "no-eval", "2 problems", "1 fixable"} {
		if !strings.Contains(out, want) {
			t.Errorf("Text output should contain %q:\n%s", want, out)
		}
	}
}

func TestOutputFormatter_TextDetails(t *testing.T) {
	color.NoColor = true
	resp := sampleResponse()
	resp.Files[0].Diagnostics[0].Correction = "Parse the input instead"

	f := NewOutputFormatter()
	f.ShowDetails = true
	out, err := f.Format(resp, domain.OutputFormatText)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(out, "Parse the input instead") {
		t.Error("Details mode should include the correction text")
	}
}

func TestOutputFormatter_JSON(t *testing.T) {
	out, err := NewOutputFormatter().Format(sampleResponse(), domain.OutputFormatJSON)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded domain.LintResponse
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("JSON output should decode: %v", err)
	}
	if decoded.Summary.TotalDiagnostics != 2 {
		t.Errorf("Expected 2 diagnostics in decoded summary, got %d", decoded.Summary.TotalDiagnostics)
	}
	if decoded.Files[0].Diagnostics[0].Anchor.Offset != 10 {
		t.Error("Anchor offsets should round-trip through JSON")
	}
}

func TestOutputFormatter_YAML(t *testing.T) {
	out, err := NewOutputFormatter().Format(sampleResponse(), domain.OutputFormatYAML)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded domain.LintResponse
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("YAML output should decode: %v", err)
	}
	if decoded.Files[0].Diagnostics[1].RuleCode != "no-debugger" {
		t.Error("Rule codes should round-trip through YAML")
	}
}

func TestOutputFormatter_CSV(t *testing.T) {
	out, err := NewOutputFormatter().Format(sampleResponse(), domain.OutputFormatCSV)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "file,line,column,severity,rule") {
		t.Errorf("Unexpected CSV header: %s", lines[0])
	}
}

func TestOutputFormatter_UnsupportedFormat(t *testing.T) {
	if _, err := NewOutputFormatter().Format(sampleResponse(), "html"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
