package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/rulescan/app"
	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/service"
)

var (
	fixDryRun      bool
	fixRules       []string
	fixDisabled    []string
	fixConfigPath  string
	fixNoRecursive bool
	fixNoGitignore bool
)

func fixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [path...]",
		Short: "Apply automatic fixes for fixable findings",
		Long: `Re-lint the given paths and apply the automatic fixes offered by the
rules. Fixes are computed against the current file content and written
back in place; conflicting fixes are skipped.

Examples:
  # Fix everything fixable under src/
  rulescan fix src/

  # Preview without writing
  rulescan fix --dry-run src/

  # Only fix selected rules
  rulescan fix --rule no-var src/`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFix,
	}

	cmd.Flags().BoolVar(&fixDryRun, "dry-run", false,
		"Show what would change without writing files")
	cmd.Flags().StringSliceVar(&fixRules, "rule", nil,
		"Fix only the listed rules (repeatable)")
	cmd.Flags().StringSliceVar(&fixDisabled, "disable", nil,
		"Disable the listed rules (repeatable)")
	cmd.Flags().StringVarP(&fixConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().BoolVar(&fixNoRecursive, "no-recursive", false,
		"Do not descend into subdirectories")
	cmd.Flags().BoolVar(&fixNoGitignore, "no-gitignore", false,
		"Do not skip files matched by .gitignore")

	return cmd
}

func runFix(cmd *cobra.Command, args []string) error {
	configLoader := service.NewConfigurationLoader()
	base := configLoader.LoadDefaultConfigForTarget(args[0])
	if fixConfigPath != "" {
		loaded, err := configLoader.LoadConfig(fixConfigPath)
		if err != nil {
			return err
		}
		base = loaded
	}

	req := domain.FixRequest{
		Paths:            args,
		DryRun:           fixDryRun,
		EnabledRules:     fixRules,
		DisabledRules:    append(base.DisabledRules, fixDisabled...),
		ConfigPath:       fixConfigPath,
		Recursive:        base.Recursive && !fixNoRecursive,
		IncludePatterns:  base.IncludePatterns,
		ExcludePatterns:  base.ExcludePatterns,
		RespectGitignore: base.RespectGitignore && !fixNoGitignore,
	}

	uc := app.NewFixUseCase(service.NewFixService())
	_, err := uc.Execute(context.Background(), req, os.Stdout)
	return err
}
