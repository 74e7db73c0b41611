package rules

import (
	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/lint"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// NoVar flags var declarations and offers a fix replacing the keyword
// with let.
func NoVar() *lint.Rule {
	return &lint.Rule{
		Code:             "no-var",
		Severity:         domain.SeverityInfo,
		Impact:           domain.ImpactLow,
		Cost:             domain.CostLow,
		Message:          "var has function-wide scope; prefer block-scoped declarations",
		Correction:       "Use let or const instead of var",
		RequiredPatterns: []string{"var"},
		Register: func(ctx *lint.RegistrationContext) {
			reporter := ctx.Reporter()
			ctx.Subscribe(parser.KindVariableDeclaration, func(node *parser.Node) {
				// The var keyword is the first three bytes of the
				// declaration
				reporter.ReportToken(node.StartByte, len("var"))
			})
		},
		Fixes: []lint.FixGenerator{replaceVarWithLet},
	}
}

// replaceVarWithLet swaps the anchored keyword for let, verifying the
// anchor still points at a var keyword in this text snapshot.
func replaceVarWithLet(diag domain.Diagnostic, ctx *lint.FixContext) []domain.FixAction {
	source := ctx.Source()
	offset, length := diag.Anchor.Offset, diag.Anchor.Length
	if offset+length > len(source) || string(source[offset:offset+length]) != "var" {
		return nil
	}

	return []domain.FixAction{{
		Description: "Replace var with let",
		Edits: []domain.TextEdit{
			{Offset: offset, Length: length, Replacement: "let"},
		},
	}}
}
