package rules

import (
	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/lint"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// UnhandledJSONParse flags JSON.parse calls with no enclosing try
// block. The containment query is bounded by function kinds so a try in
// a sibling function never masks a finding.
func UnhandledJSONParse() *lint.Rule {
	return &lint.Rule{
		Code:             "unhandled-json-parse",
		Severity:         domain.SeverityWarning,
		Impact:           domain.ImpactHigh,
		Cost:             domain.CostMedium,
		Message:          "JSON.parse throws on malformed input and is not wrapped in a try block",
		Correction:       "Wrap the call in try/catch or validate the input first",
		RequiredPatterns: []string{"JSON.parse"},
		Register: func(ctx *lint.RegistrationContext) {
			reporter := ctx.Reporter()
			source := ctx.Source()
			ctx.Subscribe(parser.KindCallExpression, func(node *parser.Node) {
				callee := node.Callee()
				if callee == nil || callee.Kind != parser.KindMemberExpression {
					return
				}
				if callee.Text(source) != "JSON.parse" {
					return
				}
				if lint.InsideKind(node, parser.KindTryStatement, parser.FunctionKinds()) {
					return
				}
				offset, length := callee.Range()
				reporter.ReportToken(offset, length)
			})
		},
	}
}
