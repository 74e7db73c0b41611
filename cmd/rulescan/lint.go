package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/rulescan/app"
	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/config"
	"github.com/ludo-technologies/rulescan/service"
)

var (
	lintFormat       string
	lintShowDetails  bool
	lintSortBy       string
	lintMinSeverity  string
	lintEnabledRules []string
	lintDisabled     []string
	lintConfigPath   string
	lintNoRecursive  bool
	lintExclude      []string
	lintNoGitignore  bool
	lintNoProgress   bool
)

func lintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Run the lint rules over JavaScript/TypeScript files",
		Long: `Analyze JavaScript and TypeScript files with the configured rule set.

Examples:
  # Lint a directory
  rulescan lint src/

  # Lint with JSON output
  rulescan lint --format json src/

  # Only run selected rules
  rulescan lint --rule no-eval --rule no-debugger src/

  # Hide info-level findings
  rulescan lint --min-severity warning src/`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLint,
	}

	cmd.Flags().StringVarP(&lintFormat, "format", "f", "",
		"Output format: text, json, yaml, csv")
	cmd.Flags().BoolVar(&lintShowDetails, "details", false,
		"Show correction guidance for each finding")
	cmd.Flags().StringVar(&lintSortBy, "sort", "",
		"Sort diagnostics by: location, severity, rule")
	cmd.Flags().StringVar(&lintMinSeverity, "min-severity", "",
		"Minimum severity to report: info, warning, error")
	cmd.Flags().StringSliceVar(&lintEnabledRules, "rule", nil,
		"Run only the listed rules (repeatable)")
	cmd.Flags().StringSliceVar(&lintDisabled, "disable", nil,
		"Disable the listed rules (repeatable)")
	cmd.Flags().StringVarP(&lintConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().BoolVar(&lintNoRecursive, "no-recursive", false,
		"Do not descend into subdirectories")
	cmd.Flags().StringSliceVar(&lintExclude, "exclude", nil,
		"Additional exclude patterns (repeatable)")
	cmd.Flags().BoolVar(&lintNoGitignore, "no-gitignore", false,
		"Do not skip files matched by .gitignore")
	cmd.Flags().BoolVar(&lintNoProgress, "no-progress", false,
		"Disable the progress bar")

	return cmd
}

func runLint(cmd *cobra.Command, args []string) error {
	override := &domain.LintRequest{
		Paths:           args,
		OutputFormat:    domain.OutputFormat(lintFormat),
		OutputWriter:    os.Stdout,
		ShowDetails:     lintShowDetails,
		SortBy:          domain.SortCriteria(lintSortBy),
		EnabledRules:    lintEnabledRules,
		DisabledRules:   lintDisabled,
		MinSeverity:     domain.Severity(lintMinSeverity),
		ConfigPath:      lintConfigPath,
		ExcludePatterns: lintExclude,
		NoProgress:      lintNoProgress,
	}

	configLoader := service.NewConfigurationLoader()
	formatter := service.NewOutputFormatter()

	pm := service.NewProgressManager(!lintNoProgress && lintFormat != "json" && lintFormat != "yaml" && lintFormat != "csv")
	defer pm.Close()

	svc := service.NewLintServiceWithProgress(pm)
	if cfg, err := config.LoadConfigWithTarget(lintConfigPath, args[0]); err == nil {
		svc.SetPerformanceConfig(cfg.Performance)
	}

	uc := app.NewLintUseCase(svc, formatter, configLoader)

	req := uc.LoadRequest(override, args[0])
	if lintNoRecursive {
		req.Recursive = false
	}
	if lintNoGitignore {
		req.RespectGitignore = false
	}
	if err := configLoader.ValidateRequest(req); err != nil {
		return err
	}

	formatter.ShowDetails = req.ShowDetails

	response, err := uc.Execute(context.Background(), *req)
	if err != nil {
		return err
	}

	if response.Summary.ErrorCount > 0 {
		return &CheckExitError{Code: 1, Message: ""}
	}
	return nil
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRuleTable(os.Stdout)
		},
	}
}

func printRuleTable(w io.Writer) error {
	set, err := service.BuildRuleSet(nil, nil)
	if err != nil {
		return err
	}
	for _, r := range set.Rules() {
		fixable := ""
		if r.Fixable() {
			fixable = "  [fixable]"
		}
		fmt.Fprintf(w, "%-22s %-8s %s%s\n", r.Code, r.Severity, r.Message, fixable)
	}
	return nil
}
