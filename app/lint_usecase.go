package app

import (
	"context"

	"github.com/ludo-technologies/rulescan/domain"
)

// LintUseCase orchestrates lint analysis and output
type LintUseCase struct {
	service      domain.LintService
	formatter    domain.OutputFormatter
	configLoader domain.ConfigurationLoader
}

// NewLintUseCase creates a new lint use case
func NewLintUseCase(
	service domain.LintService,
	formatter domain.OutputFormatter,
	configLoader domain.ConfigurationLoader,
) *LintUseCase {
	return &LintUseCase{
		service:      service,
		formatter:    formatter,
		configLoader: configLoader,
	}
}

// Execute runs the analysis and writes the formatted result
func (uc *LintUseCase) Execute(ctx context.Context, req domain.LintRequest) (*domain.LintResponse, error) {
	if len(req.Paths) == 0 {
		return nil, domain.NewValidationError("no input paths specified")
	}
	if req.OutputWriter == nil {
		return nil, domain.NewValidationError("output writer is required")
	}

	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := uc.formatter.Write(response, req.OutputFormat, req.OutputWriter); err != nil {
		return nil, domain.NewOutputError("failed to write output", err)
	}

	return response, nil
}

// ExecuteAndSummarize runs the analysis without writing output, for
// callers that consume the response directly
func (uc *LintUseCase) ExecuteAndSummarize(ctx context.Context, req domain.LintRequest) (*domain.LintResponse, error) {
	if len(req.Paths) == 0 {
		return nil, domain.NewValidationError("no input paths specified")
	}
	return uc.service.Analyze(ctx, req)
}

// LoadRequest resolves the effective request from configuration and the
// CLI override
func (uc *LintUseCase) LoadRequest(override *domain.LintRequest, targetPath string) *domain.LintRequest {
	var base *domain.LintRequest
	if override.ConfigPath != "" {
		loaded, err := uc.configLoader.LoadConfig(override.ConfigPath)
		if err == nil {
			base = loaded
		}
	}
	if base == nil {
		if loader, ok := uc.configLoader.(interface {
			LoadDefaultConfigForTarget(string) *domain.LintRequest
		}); ok {
			base = loader.LoadDefaultConfigForTarget(targetPath)
		} else {
			base = uc.configLoader.LoadDefaultConfig()
		}
	}
	return uc.configLoader.MergeConfig(base, override)
}
