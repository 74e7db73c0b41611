package rules

import (
	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/lint"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// NoDebugger flags debugger statements and offers a fix that deletes
// the statement.
func NoDebugger() *lint.Rule {
	return &lint.Rule{
		Code:             "no-debugger",
		Severity:         domain.SeverityWarning,
		Impact:           domain.ImpactMedium,
		Cost:             domain.CostLow,
		Message:          "debugger statement left in source",
		Correction:       "Remove the debugger statement before shipping",
		RequiredPatterns: []string{"debugger"},
		Register: func(ctx *lint.RegistrationContext) {
			reporter := ctx.Reporter()
			ctx.Subscribe(parser.KindDebuggerStatement, func(node *parser.Node) {
				reporter.ReportNode(node)
			})
		},
		Fixes: []lint.FixGenerator{removeDebuggerStatement},
	}
}

// removeDebuggerStatement deletes the anchored statement, including a
// trailing newline when the statement ends the line.
func removeDebuggerStatement(diag domain.Diagnostic, ctx *lint.FixContext) []domain.FixAction {
	node := ctx.NodeAt(diag.Anchor.Offset, diag.Anchor.Length)
	for node != nil && node.Kind != parser.KindDebuggerStatement {
		node = node.Parent
	}
	if node == nil {
		return nil
	}

	offset, length := node.Range()
	source := ctx.Source()

	// Take the whole line when the statement stands alone on it
	start := offset
	for start > 0 && (source[start-1] == ' ' || source[start-1] == '\t') {
		start--
	}
	if start == 0 || source[start-1] == '\n' {
		length += offset - start
		offset = start
		if offset+length < len(source) && source[offset+length] == '\n' {
			length++
		}
	}

	return []domain.FixAction{{
		Description: "Remove debugger statement",
		Edits: []domain.TextEdit{
			{Offset: offset, Length: length, Replacement: ""},
		},
	}}
}
