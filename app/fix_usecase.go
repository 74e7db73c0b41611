package app

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ludo-technologies/rulescan/domain"
)

// FixUseCase orchestrates fix runs and reports what changed
type FixUseCase struct {
	service domain.FixService
}

// NewFixUseCase creates a new fix use case
func NewFixUseCase(service domain.FixService) *FixUseCase {
	return &FixUseCase{service: service}
}

// Execute runs the fixer and writes a summary of the applied edits
func (uc *FixUseCase) Execute(ctx context.Context, req domain.FixRequest, writer io.Writer) (*domain.FixResponse, error) {
	if len(req.Paths) == 0 {
		return nil, domain.NewValidationError("no input paths specified")
	}

	response, err := uc.service.Fix(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.writeSummary(response, req.DryRun, writer)
	return response, nil
}

// writeSummary prints the applied fixes grouped by file
func (uc *FixUseCase) writeSummary(response *domain.FixResponse, dryRun bool, writer io.Writer) {
	verb := "applied"
	if dryRun {
		verb = "would apply"
	}

	byFile := make(map[string][]domain.AppliedFix)
	var order []string
	for _, fix := range response.Applied {
		if _, seen := byFile[fix.FilePath]; !seen {
			order = append(order, fix.FilePath)
		}
		byFile[fix.FilePath] = append(byFile[fix.FilePath], fix)
	}

	for _, path := range order {
		fmt.Fprintf(writer, "%s\n", color.New(color.Bold).Sprint(path))
		for _, fix := range byFile[path] {
			fmt.Fprintf(writer, "  %s %s (%s)\n", color.GreenString("fix:"), fix.Description, fix.RuleCode)
		}
	}

	if len(response.Applied) == 0 {
		fmt.Fprintln(writer, "No fixable problems found")
	} else {
		fmt.Fprintf(writer, "%s %d fixes in %d files\n", verb, len(response.Applied), len(order))
	}
	if response.Remaining > 0 {
		fmt.Fprintf(writer, "%d problems have no automatic fix\n", response.Remaining)
	}
	for _, e := range response.Errors {
		fmt.Fprintf(writer, "%s %s\n", color.RedString("error:"), e)
	}
}
