package rules

import (
	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/lint"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// AwaitInLoop flags await expressions inside loop bodies, a common
// source of accidentally serialized I/O. Awaits inside nested functions
// declared within a loop are deliberately not flagged: the function
// boundary stops the containment walk.
func AwaitInLoop() *lint.Rule {
	return &lint.Rule{
		Code:             "await-in-loop",
		Severity:         domain.SeverityWarning,
		Impact:           domain.ImpactHigh,
		Cost:             domain.CostLow,
		Message:          "await inside a loop serializes asynchronous work",
		Correction:       "Collect promises in the loop and await Promise.all() once",
		RequiredPatterns: []string{"await"},
		Register: func(ctx *lint.RegistrationContext) {
			reporter := ctx.Reporter()
			ctx.Subscribe(parser.KindAwaitExpression, func(node *parser.Node) {
				if lint.Inside(node, parser.LoopKinds(), parser.FunctionKinds()) {
					reporter.ReportNode(node)
				}
			})
		},
	}
}
