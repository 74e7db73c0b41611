package rules

import (
	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/lint"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// NoEval flags direct eval calls. The anchor is the callee token, not
// the whole call, for precise highlighting.
func NoEval() *lint.Rule {
	return &lint.Rule{
		Code:             "no-eval",
		Severity:         domain.SeverityError,
		Impact:           domain.ImpactCritical,
		Cost:             domain.CostLow,
		Message:          "eval() executes arbitrary code and is a common injection vector",
		Correction:       "Replace eval() with a safe alternative such as JSON.parse or a lookup table",
		RequiredPatterns: []string{"eval"},
		Register: func(ctx *lint.RegistrationContext) {
			reporter := ctx.Reporter()
			source := ctx.Source()
			ctx.Subscribe(parser.KindCallExpression, func(node *parser.Node) {
				callee := node.Callee()
				if callee == nil || callee.Kind != parser.KindIdentifier {
					return
				}
				if callee.Text(source) == "eval" {
					offset, length := callee.Range()
					reporter.ReportToken(offset, length)
				}
			})
		},
	}
}
