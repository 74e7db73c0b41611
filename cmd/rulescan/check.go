package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/rulescan/app"
	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/service"
)

// CheckExitError carries an explicit process exit code
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkFailOn     string
	checkDisabled   []string
	checkVerbose    bool
	checkJSON       bool
	checkConfigPath string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Fast quality gate for CI/CD pipelines",
		Long: `Run the lint rules as a pass/fail gate for CI/CD integration.

Exit codes:
  0 - No findings at or above the failure threshold
  1 - Findings at or above the failure threshold
  2 - Analysis error (file not found, parse error, etc.)

Examples:
  # Fail on error-severity findings (default)
  rulescan check src/

  # Fail on warnings too
  rulescan check --fail-on warning src/

  # JSON output for machine parsing
  rulescan check --json src/`,
		RunE:          runCheckGate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&checkFailOn, "fail-on", "error",
		"Minimum severity that fails the gate: info, warning, error")
	cmd.Flags().StringSliceVar(&checkDisabled, "disable", nil,
		"Disable the listed rules (repeatable)")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show detailed output")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheckGate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &CheckExitError{Code: 2, Message: "no paths specified"}
	}

	configLoader := service.NewConfigurationLoader()
	override := &domain.LintRequest{
		Paths:         args,
		DisabledRules: checkDisabled,
		ConfigPath:    checkConfigPath,
		NoProgress:    checkJSON,
	}

	var base *domain.LintRequest
	if checkConfigPath != "" {
		loaded, err := configLoader.LoadConfig(checkConfigPath)
		if err != nil {
			return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
		}
		base = loaded
	} else {
		base = configLoader.LoadDefaultConfigForTarget(args[0])
	}
	req := configLoader.MergeConfig(base, override)

	// Progress is auto-disabled for JSON output and non-TTY/CI
	pm := service.NewProgressManager(!checkJSON)
	defer pm.Close()

	uc := app.NewCheckUseCase(service.NewLintServiceWithProgress(pm))
	result, err := uc.Execute(context.Background(), *req, app.CheckConfig{
		FailOn: domain.Severity(checkFailOn),
	})
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	if checkJSON {
		return outputCheckJSON(result)
	}
	return outputCheckText(result)
}

func outputCheckText(result *domain.CheckResult) error {
	if result.Passed {
		fmt.Println("PASS: All lint checks passed")
		if checkVerbose {
			fmt.Printf("  Files analyzed: %d\n", result.Summary.FilesAnalyzed)
			fmt.Printf("  Duration: %dms\n", result.Duration)
		}
		return nil
	}

	fmt.Println("FAIL: Lint check failed")
	fmt.Printf("  Violations: %d\n", result.Summary.TotalViolations)

	for _, v := range result.Violations {
		severity := "ERROR"
		if v.Severity == "warning" {
			severity = "WARN"
		} else if v.Severity == "info" {
			severity = "INFO"
		}
		fmt.Printf("  [%s] %s: %s\n", severity, v.Rule, v.Message)
		if checkVerbose && v.Location != "" {
			fmt.Printf("         at %s\n", v.Location)
		}
	}

	if checkVerbose {
		fmt.Printf("\nSummary:\n")
		fmt.Printf("  Files: %d\n", result.Summary.FilesAnalyzed)
		fmt.Printf("  Errors: %d, Warnings: %d\n", result.Summary.Errors, result.Summary.Warnings)
		fmt.Printf("  Duration: %dms\n", result.Duration)
	}

	return &CheckExitError{Code: result.ExitCode, Message: ""}
}

func outputCheckJSON(result *domain.CheckResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to encode JSON: %v", err)}
	}

	if !result.Passed {
		return &CheckExitError{Code: result.ExitCode, Message: ""}
	}
	return nil
}
