package main

import (
	"strings"
	"testing"
)

func TestLintCmd_FlagsExist(t *testing.T) {
	cmd := lintCmd()

	expectedFlags := []string{"format", "details", "sort", "min-severity", "rule", "disable", "config", "no-recursive", "exclude", "no-gitignore", "no-progress"}
	for _, flagName := range expectedFlags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestLintCmd_ShortFlags(t *testing.T) {
	cmd := lintCmd()

	shortFlags := map[string]string{
		"f": "format",
		"c": "config",
	}
	for short, long := range shortFlags {
		if cmd.Flags().ShorthandLookup(short) == nil {
			t.Errorf("Missing short flag -%s for --%s", short, long)
		}
	}
}

func TestLintCmd_NoPathsError(t *testing.T) {
	cmd := lintCmd()
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when no paths specified")
	}
}

func TestCheckCmd_FlagsExist(t *testing.T) {
	cmd := checkCmd()

	expectedFlags := []string{"fail-on", "disable", "verbose", "json", "config"}
	for _, flagName := range expectedFlags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestCheckCmd_DefaultFailOn(t *testing.T) {
	cmd := checkCmd()

	flag := cmd.Flags().Lookup("fail-on")
	if flag == nil {
		t.Fatal("fail-on flag not found")
	}
	if flag.DefValue != "error" {
		t.Errorf("Expected default fail-on to be 'error', got '%s'", flag.DefValue)
	}
}

func TestFixCmd_FlagsExist(t *testing.T) {
	cmd := fixCmd()

	expectedFlags := []string{"dry-run", "rule", "disable", "config", "no-recursive", "no-gitignore"}
	for _, flagName := range expectedFlags {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("Missing expected flag: --%s", flagName)
		}
	}
}

func TestCheckExitError(t *testing.T) {
	err := &CheckExitError{Code: 1, Message: "threshold violated"}
	if err.Error() != "threshold violated" {
		t.Errorf("Unexpected error message: %s", err.Error())
	}
}

func TestPrintRuleTable(t *testing.T) {
	var sb strings.Builder
	if err := printRuleTable(&sb); err != nil {
		t.Fatalf("printRuleTable failed: %v", err)
	}

	out := sb.String()
	for _, code := range []string{"no-eval", "no-debugger", "unhandled-json-parse", "await-in-loop", "no-var", "no-console"} {
		if !strings.Contains(out, code) {
			t.Errorf("Rule table should list %s:\n%s", code, out)
		}
	}
	if !strings.Contains(out, "[fixable]") {
		t.Error("Rule table should mark fixable rules")
	}
}
