package service

import (
	"context"
	"os"
	"sort"

	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/lint"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// FixServiceImpl implements the FixService interface
type FixServiceImpl struct {
	fileReader domain.SourceFileReader
}

// NewFixService creates a new fix service
func NewFixService() *FixServiceImpl {
	return &FixServiceImpl{
		fileReader: NewFileCollector(),
	}
}

// Fix re-lints the requested paths, materializes fix actions for the
// fixable diagnostics, and applies the non-conflicting ones
func (s *FixServiceImpl) Fix(ctx context.Context, req domain.FixRequest) (*domain.FixResponse, error) {
	if len(req.Paths) == 0 {
		return nil, domain.NewValidationError("no input paths specified")
	}

	set, err := BuildRuleSet(req.EnabledRules, req.DisabledRules)
	if err != nil {
		return nil, err
	}

	files, err := s.fileReader.CollectSourceFiles(req.Paths, req.Recursive, req.IncludePatterns, req.ExcludePatterns, req.RespectGitignore)
	if err != nil {
		return nil, domain.NewFileNotFoundError(req.Paths[0], err)
	}
	if len(files) == 0 {
		return nil, domain.NewValidationError("no JavaScript/TypeScript files found in the specified paths")
	}
	sort.Strings(files)

	response := &domain.FixResponse{}
	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		s.fixFile(path, set, req.DryRun, response)
	}

	return response, nil
}

// fixFile runs one lint-and-fix round over a single file
func (s *FixServiceImpl) fixFile(path string, set *lint.RuleSet, dryRun bool, response *domain.FixResponse) {
	source, err := s.fileReader.ReadFile(path)
	if err != nil {
		response.Errors = append(response.Errors, path+": "+err.Error())
		return
	}

	root, err := parser.ParseForLanguage(path, source)
	if err != nil {
		response.Errors = append(response.Errors, path+": "+err.Error())
		return
	}

	fc := lint.NewFileContext(path, lint.ClassifyPath(path), source)
	lint.NewEngine(set).LintFile(fc, root)

	fixCtx := lint.NewFixContext(source, root)
	var accepted []domain.TextEdit
	var applied []domain.AppliedFix

	for _, diag := range fc.Diagnostics() {
		if !diag.Fixable {
			response.Remaining++
			continue
		}
		rule, ok := set.Get(diag.RuleCode)
		if !ok {
			response.Remaining++
			continue
		}

		actions := lint.GenerateFixes(rule, diag, fixCtx)
		action, ok := firstApplicable(actions, accepted)
		if !ok {
			response.Remaining++
			continue
		}

		accepted = append(accepted, action.Edits...)
		applied = append(applied, domain.AppliedFix{
			FilePath:    path,
			RuleCode:    diag.RuleCode,
			Description: action.Description,
			Edits:       action.Edits,
		})
	}

	if len(accepted) == 0 {
		return
	}

	fixed, err := lint.ApplyEdits(source, accepted)
	if err != nil {
		response.Errors = append(response.Errors, path+": "+err.Error())
		response.Remaining += len(applied)
		return
	}

	response.Applied = append(response.Applied, applied...)
	if dryRun {
		return
	}

	info, statErr := os.Stat(path)
	mode := os.FileMode(0o644)
	if statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, fixed, mode); err != nil {
		response.Errors = append(response.Errors, path+": "+err.Error())
		return
	}
	response.FilesChanged = append(response.FilesChanged, path)
}

// firstApplicable returns the first action whose edits do not conflict
// with already accepted edits
func firstApplicable(actions []domain.FixAction, accepted []domain.TextEdit) (domain.FixAction, bool) {
	for _, action := range actions {
		if !conflicts(action.Edits, accepted) {
			return action, true
		}
	}
	return domain.FixAction{}, false
}

// conflicts reports whether any edit overlaps an accepted edit
func conflicts(edits, accepted []domain.TextEdit) bool {
	for _, e := range edits {
		for _, a := range accepted {
			if e.Offset < a.Offset+a.Length && a.Offset < e.Offset+e.Length {
				return true
			}
			// Two insertions at the same offset are also ambiguous
			if e.Offset == a.Offset && e.Length == 0 && a.Length == 0 {
				return true
			}
		}
	}
	return false
}
