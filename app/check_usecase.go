package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/version"
)

// Check exit codes
const (
	CheckExitPassed    = 0
	CheckExitViolation = 1
	CheckExitError     = 2
)

// CheckConfig holds the gate configuration
type CheckConfig struct {
	// FailOn is the minimum severity that trips the gate
	FailOn domain.Severity
}

// DefaultCheckConfig fails the gate on error-severity diagnostics only
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{FailOn: domain.SeverityError}
}

// CheckUseCase runs lint analysis as a CI quality gate
type CheckUseCase struct {
	service domain.LintService
}

// NewCheckUseCase creates a new check use case
func NewCheckUseCase(service domain.LintService) *CheckUseCase {
	return &CheckUseCase{service: service}
}

// Execute runs the analysis and evaluates the gate
func (uc *CheckUseCase) Execute(ctx context.Context, req domain.LintRequest, cfg CheckConfig) (*domain.CheckResult, error) {
	startTime := time.Now()

	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	failRank := cfg.FailOn.Rank()
	if failRank == 0 {
		failRank = domain.SeverityError.Rank()
	}

	result := &domain.CheckResult{
		Summary: domain.CheckSummary{
			FilesAnalyzed: response.Summary.FilesAnalyzed,
			FilesSkipped:  response.Summary.FilesSkipped,
			Errors:        response.Summary.ErrorCount,
			Warnings:      response.Summary.WarningCount,
		},
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}

	for _, file := range response.Files {
		for _, d := range file.Diagnostics {
			if d.Severity.Rank() < failRank {
				continue
			}
			result.Violations = append(result.Violations, domain.CheckViolation{
				Rule:     d.RuleCode,
				Severity: string(d.Severity),
				Message:  d.Message,
				Location: fmt.Sprintf("%s:%d:%d", d.FilePath, d.Anchor.Line, d.Anchor.Column),
			})
		}
	}

	result.Summary.TotalViolations = len(result.Violations)
	result.Passed = len(result.Violations) == 0
	if result.Passed {
		result.ExitCode = CheckExitPassed
	} else {
		result.ExitCode = CheckExitViolation
	}
	result.Duration = time.Since(startTime).Milliseconds()

	return result, nil
}
