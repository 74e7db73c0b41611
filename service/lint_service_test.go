package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/rulescan/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLintService_Analyze(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "var x = eval(input);\n")
	writeFile(t, dir, "b.js", "const y = 1;\n")

	svc := NewLintService()
	resp, err := svc.Analyze(context.Background(), domain.LintRequest{
		Paths:     []string{dir},
		Recursive: true,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if resp.Summary.FilesAnalyzed != 2 {
		t.Errorf("Expected 2 files analyzed, got %d", resp.Summary.FilesAnalyzed)
	}
	if resp.Summary.RuleCounts["no-eval"] != 1 {
		t.Errorf("Expected 1 no-eval diagnostic, got %d", resp.Summary.RuleCounts["no-eval"])
	}
	if resp.Summary.RuleCounts["no-var"] != 1 {
		t.Errorf("Expected 1 no-var diagnostic, got %d", resp.Summary.RuleCounts["no-var"])
	}
	if resp.Summary.ErrorCount != 1 {
		t.Errorf("Expected 1 error-severity diagnostic, got %d", resp.Summary.ErrorCount)
	}
}

func TestLintService_AnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "single.js", "debugger;\n")

	svc := NewLintService()
	resp, err := svc.AnalyzeFile(context.Background(), path, domain.LintRequest{})
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}
	if resp.Summary.TotalDiagnostics != 1 {
		t.Errorf("Expected 1 diagnostic, got %d", resp.Summary.TotalDiagnostics)
	}
	if resp.Summary.FixableCount != 1 {
		t.Errorf("debugger diagnostic should be fixable")
	}
}

func TestLintService_AnalyzeFile_Missing(t *testing.T) {
	svc := NewLintService()
	_, err := svc.AnalyzeFile(context.Background(), "/nonexistent/x.js", domain.LintRequest{})
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	var domainErr domain.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != domain.ErrCodeFileNotFound {
		t.Errorf("Expected FILE_NOT_FOUND error, got %v", err)
	}
}

func TestLintService_NoPaths(t *testing.T) {
	svc := NewLintService()
	if _, err := svc.Analyze(context.Background(), domain.LintRequest{}); err == nil {
		t.Error("Expected validation error for empty paths")
	}
}

func TestLintService_MinSeverityFilter(t *testing.T) {
	dir := t.TempDir()
	// no-var reports info, no-eval reports error
	writeFile(t, dir, "a.js", "var x = eval(input);\n")

	svc := NewLintService()
	resp, err := svc.Analyze(context.Background(), domain.LintRequest{
		Paths:       []string{dir},
		Recursive:   true,
		MinSeverity: domain.SeverityError,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if resp.Summary.TotalDiagnostics != 1 {
		t.Errorf("Only the error diagnostic should remain, got %d", resp.Summary.TotalDiagnostics)
	}
	if resp.Summary.RuleCounts["no-var"] != 0 {
		t.Error("Info diagnostics should be filtered out")
	}
}

func TestLintService_RuleSelection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "var x = eval(input);\ndebugger;\n")

	svc := NewLintService()
	resp, err := svc.Analyze(context.Background(), domain.LintRequest{
		Paths:        []string{dir},
		Recursive:    true,
		EnabledRules: []string{"no-eval"},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if resp.Summary.TotalDiagnostics != 1 || resp.Summary.RuleCounts["no-eval"] != 1 {
		t.Errorf("Only no-eval should be active, got counts %v", resp.Summary.RuleCounts)
	}

	resp, err = svc.Analyze(context.Background(), domain.LintRequest{
		Paths:         []string{dir},
		Recursive:     true,
		DisabledRules: []string{"no-eval", "no-var"},
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if resp.Summary.RuleCounts["no-eval"] != 0 {
		t.Error("Disabled rule should not report")
	}
	if resp.Summary.RuleCounts["no-debugger"] != 1 {
		t.Error("Remaining rules should still report")
	}
}

func TestLintService_UnknownEnabledRule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "const x = 1;\n")

	svc := NewLintService()
	_, err := svc.Analyze(context.Background(), domain.LintRequest{
		Paths:        []string{dir},
		EnabledRules: []string{"no-such-rule"},
	})
	if err == nil {
		t.Error("Expected error for unknown rule code")
	}
}

func TestLintService_ParseErrorSkipsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.js", "debugger;\n")

	svc := NewLintService()
	resp, err := svc.Analyze(context.Background(), domain.LintRequest{
		Paths:     []string{dir},
		Recursive: true,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if resp.Summary.FilesAnalyzed != 1 {
		t.Errorf("Expected 1 file analyzed, got %d", resp.Summary.FilesAnalyzed)
	}
}

func TestBuildRuleSet_EmptySelection(t *testing.T) {
	if _, err := BuildRuleSet(nil, []string{
		"no-eval", "no-debugger", "unhandled-json-parse",
		"await-in-loop", "no-var", "no-console",
	}); err == nil {
		t.Error("Disabling every rule should be rejected")
	}
}

func TestLintService_SortBySeverity(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "var x = 1;\nconst y = eval(z);\n")

	svc := NewLintService()
	resp, err := svc.Analyze(context.Background(), domain.LintRequest{
		Paths:     []string{dir},
		Recursive: true,
		SortBy:    domain.SortBySeverity,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	var diags []domain.Diagnostic
	for _, f := range resp.Files {
		diags = append(diags, f.Diagnostics...)
	}
	if len(diags) != 2 {
		t.Fatalf("Expected 2 diagnostics, got %d", len(diags))
	}
	if diags[0].Severity != domain.SeverityError {
		t.Errorf("Severity sort should put errors first, got %s", diags[0].Severity)
	}
}
