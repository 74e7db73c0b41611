package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/config"
	"github.com/ludo-technologies/rulescan/internal/lint"
	"github.com/ludo-technologies/rulescan/internal/parser"
	"github.com/ludo-technologies/rulescan/internal/rules"
	"github.com/ludo-technologies/rulescan/internal/version"
)

// LintServiceImpl implements the LintService interface
type LintServiceImpl struct {
	fileReader domain.SourceFileReader
	progress   domain.ProgressManager
	perf       config.PerformanceConfig
}

// NewLintService creates a new lint service with default collaborators
func NewLintService() *LintServiceImpl {
	return &LintServiceImpl{
		fileReader: NewFileCollector(),
	}
}

// NewLintServiceWithProgress creates a lint service that reports progress
func NewLintServiceWithProgress(pm domain.ProgressManager) *LintServiceImpl {
	return &LintServiceImpl{
		fileReader: NewFileCollector(),
		progress:   pm,
	}
}

// SetPerformanceConfig applies parallelism limits from configuration
func (s *LintServiceImpl) SetPerformanceConfig(perf config.PerformanceConfig) {
	s.perf = perf
}

// BuildRuleSet assembles the active rule set from the request's rule
// selection, keeping the built-in order
func BuildRuleSet(enabled, disabled []string) (*lint.RuleSet, error) {
	set, err := rules.DefaultRuleSet()
	if err != nil {
		return nil, err
	}

	if len(enabled) > 0 {
		keep := make(map[string]bool, len(enabled))
		for _, code := range enabled {
			if _, ok := set.Get(code); !ok {
				return nil, domain.NewValidationError(fmt.Sprintf("unknown rule code: %s", code))
			}
			keep[code] = true
		}
		set = set.Filter(func(r *lint.Rule) bool { return keep[r.Code] })
	}

	if len(disabled) > 0 {
		drop := make(map[string]bool, len(disabled))
		for _, code := range disabled {
			drop[code] = true
		}
		set = set.Filter(func(r *lint.Rule) bool { return !drop[r.Code] })
	}

	if set.Len() == 0 {
		return nil, domain.NewValidationError("rule selection leaves no active rules")
	}

	return set, nil
}

// lintFileTask analyzes one file; it is the unit of work handed to the
// parallel executor
type lintFileTask struct {
	path       string
	set        *lint.RuleSet
	fileReader domain.SourceFileReader

	result domain.FileDiagnostics
}

func (t *lintFileTask) Name() string    { return t.path }
func (t *lintFileTask) IsEnabled() bool { return true }

func (t *lintFileTask) Execute(ctx context.Context) (interface{}, error) {
	source, err := t.fileReader.ReadFile(t.path)
	if err != nil {
		t.result = domain.FileDiagnostics{
			FilePath:   t.path,
			ParseError: err.Error(),
		}
		return nil, domain.NewFileNotFoundError(t.path, err)
	}

	fileType := lint.ClassifyPath(t.path)
	root, err := parser.ParseForLanguage(t.path, source)
	if err != nil {
		// A file the grammar cannot parse is skipped, not fatal
		t.result = domain.FileDiagnostics{
			FilePath:   t.path,
			FileType:   string(fileType),
			ParseError: err.Error(),
		}
		return nil, domain.NewParseError(t.path, err)
	}

	fc := lint.NewFileContext(t.path, fileType, source)
	lint.NewEngine(t.set).LintFile(fc, root)

	t.result = domain.FileDiagnostics{
		FilePath:    t.path,
		FileType:    string(fileType),
		Diagnostics: fc.Diagnostics(),
	}
	return t.result, nil
}

// Analyze runs the rule engine over the given request
func (s *LintServiceImpl) Analyze(ctx context.Context, req domain.LintRequest) (*domain.LintResponse, error) {
	startTime := time.Now()

	if len(req.Paths) == 0 {
		return nil, domain.NewValidationError("no input paths specified")
	}

	set, err := BuildRuleSet(req.EnabledRules, req.DisabledRules)
	if err != nil {
		return nil, err
	}

	files, err := s.fileReader.CollectSourceFiles(req.Paths, req.Recursive, req.IncludePatterns, req.ExcludePatterns, req.RespectGitignore)
	if err != nil {
		return nil, domain.NewFileNotFoundError(fmt.Sprintf("%v", req.Paths), err)
	}
	if len(files) == 0 {
		return nil, domain.NewValidationError("no JavaScript/TypeScript files found in the specified paths")
	}
	sort.Strings(files)

	tasks := make([]*lintFileTask, len(files))
	execTasks := make([]domain.ExecutableTask, len(files))
	for i, path := range files {
		tasks[i] = &lintFileTask{path: path, set: set, fileReader: s.fileReader}
		execTasks[i] = tasks[i]
	}

	executor := NewParallelExecutorWithProgress(&s.perf, s.progress)
	execErr := executor.Execute(ctx, execTasks)

	response := s.aggregate(tasks, req)
	if execErr != nil {
		var aggErr *AggregatedError
		if errors.As(execErr, &aggErr) {
			// Per-file failures degrade to warnings; the rest of the run
			// still produced results
			for _, taskErr := range aggErr.Errors {
				response.Warnings = append(response.Warnings, taskErr.Error())
			}
		} else {
			return nil, domain.NewAnalysisError("parallel execution failed", execErr)
		}
	}

	response.DurationMs = time.Since(startTime).Milliseconds()
	return response, nil
}

// AnalyzeFile analyzes a single JavaScript/TypeScript file
func (s *LintServiceImpl) AnalyzeFile(ctx context.Context, filePath string, req domain.LintRequest) (*domain.LintResponse, error) {
	exists, err := s.fileReader.FileExists(filePath)
	if err != nil {
		return nil, domain.NewAnalysisError("failed to stat file", err)
	}
	if !exists {
		return nil, domain.NewFileNotFoundError(filePath, nil)
	}

	req.Paths = []string{filePath}
	return s.Analyze(ctx, req)
}

// aggregate merges per-file results into the response, applying the
// severity threshold and sort order
func (s *LintServiceImpl) aggregate(tasks []*lintFileTask, req domain.LintRequest) *domain.LintResponse {
	summary := domain.LintSummary{RuleCounts: make(map[string]int)}
	fileResults := make([]domain.FileDiagnostics, 0, len(tasks))

	minRank := req.MinSeverity.Rank()
	for _, t := range tasks {
		result := t.result
		if result.ParseError != "" {
			summary.FilesSkipped++
			fileResults = append(fileResults, result)
			continue
		}
		summary.FilesAnalyzed++

		if minRank > 0 {
			kept := make([]domain.Diagnostic, 0, len(result.Diagnostics))
			for _, d := range result.Diagnostics {
				if d.Severity.Rank() >= minRank {
					kept = append(kept, d)
				}
			}
			result.Diagnostics = kept
		}

		sortDiagnostics(result.Diagnostics, req.SortBy)

		for _, d := range result.Diagnostics {
			summary.TotalDiagnostics++
			summary.RuleCounts[d.RuleCode]++
			if d.Fixable {
				summary.FixableCount++
			}
			switch d.Severity {
			case domain.SeverityInfo:
				summary.InfoCount++
			case domain.SeverityWarning:
				summary.WarningCount++
			case domain.SeverityError:
				summary.ErrorCount++
			}
		}

		fileResults = append(fileResults, result)
	}

	return &domain.LintResponse{
		Files:       fileResults,
		Summary:     summary,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}
}

// sortDiagnostics orders a file's diagnostics by the requested criteria.
// Location order falls back to the stable report order.
func sortDiagnostics(diags []domain.Diagnostic, sortBy domain.SortCriteria) {
	switch sortBy {
	case domain.SortBySeverity:
		sort.SliceStable(diags, func(i, j int) bool {
			return diags[i].Severity.Rank() > diags[j].Severity.Rank()
		})
	case domain.SortByRule:
		sort.SliceStable(diags, func(i, j int) bool {
			return diags[i].RuleCode < diags[j].RuleCode
		})
	default:
		sort.SliceStable(diags, func(i, j int) bool {
			if diags[i].Anchor.Offset != diags[j].Anchor.Offset {
				return diags[i].Anchor.Offset < diags[j].Anchor.Offset
			}
			return diags[i].Anchor.Length < diags[j].Anchor.Length
		})
	}
}
