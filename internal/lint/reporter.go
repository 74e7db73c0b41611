package lint

import (
	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// Reporter turns report calls into structured diagnostics. Each
// reporter is pre-bound to one rule's code: a rule cannot report under
// another rule's code. Reporting never fails; degenerate anchors are
// clamped to the nearest valid range so a true positive with an
// imprecise anchor is kept rather than lost.
type Reporter struct {
	fc   *FileContext
	rule *Rule
}

// ReportNode reports a diagnostic anchored at the full byte range of a
// node
func (r *Reporter) ReportNode(node *parser.Node) {
	if node == nil {
		r.ReportRange(0, 0)
		return
	}
	offset, length := node.Range()
	r.ReportRange(offset, length)
}

// ReportToken reports a diagnostic anchored at a sub-range, typically a
// single token such as a callee name, for precise highlighting
func (r *Reporter) ReportToken(offset, length int) {
	r.ReportRange(offset, length)
}

// ReportRange constructs the diagnostic from the owning rule's code,
// severity, and messages and appends it to the file's list
func (r *Reporter) ReportRange(offset, length int) {
	offset, length = clampAnchor(offset, length, len(r.fc.source))
	line, column := r.fc.position(offset)

	r.fc.append(domain.Diagnostic{
		RuleCode: r.rule.Code,
		Severity: r.rule.Severity,
		FilePath: r.fc.path,
		Anchor: domain.Anchor{
			Offset: offset,
			Length: length,
			Line:   line,
			Column: column,
		},
		Message:    r.rule.Message,
		Correction: r.rule.Correction,
		Fixable:    r.rule.Fixable(),
	})
}

// clampAnchor forces an anchor into the valid [0, size] range. A
// negative or inverted range degrades to the nearest zero-length anchor
// instead of being rejected.
func clampAnchor(offset, length, size int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > size {
		offset = size
	}
	if length < 0 {
		length = 0
	}
	if offset+length > size {
		length = size - offset
	}
	return offset, length
}

// metaDiagnostic records a rule failure attributed to the rule's own
// code. Engine failures share the diagnostic list so they survive into
// reports without aborting the run.
func metaDiagnostic(fc *FileContext, rule *Rule, offset, length int, message string) {
	offset, length = clampAnchor(offset, length, len(fc.source))
	line, column := fc.position(offset)

	fc.append(domain.Diagnostic{
		RuleCode: rule.Code,
		Severity: domain.SeverityError,
		FilePath: fc.path,
		Anchor: domain.Anchor{
			Offset: offset,
			Length: length,
			Line:   line,
			Column: column,
		},
		Message: message,
	})
}
