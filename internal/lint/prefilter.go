package lint

import "bytes"

// appliesToFileType implements the file-type gate: a rule with a nil
// file-type set applies everywhere.
func appliesToFileType(r *Rule, ft FileType) bool {
	if r.FileTypes == nil {
		return true
	}
	for _, t := range r.FileTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// patternsPresent implements the textual prefilter: any one required
// pattern present in the raw text is sufficient to proceed; none
// present is the only skip condition. Cost is one substring scan per
// pattern, independent of tree size.
func patternsPresent(r *Rule, source []byte) bool {
	if len(r.RequiredPatterns) == 0 {
		return true
	}
	for _, pat := range r.RequiredPatterns {
		if bytes.Contains(source, []byte(pat)) {
			return true
		}
	}
	return false
}

// shouldRun evaluates both gates for a (file, rule) pair. The gates are
// pure performance optimizations: they never change which diagnostics a
// rule would emit versus running it unconditionally.
func shouldRun(r *Rule, fc *FileContext) bool {
	if !appliesToFileType(r, fc.fileType) {
		return false
	}
	return patternsPresent(r, fc.source)
}
