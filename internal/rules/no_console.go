package rules

import (
	"strings"

	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/lint"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// NoConsole flags console.* calls in plain JavaScript files. TypeScript
// files are excluded via the file-type gate since those projects
// typically strip console output at build time.
func NoConsole() *lint.Rule {
	return &lint.Rule{
		Code:             "no-console",
		Severity:         domain.SeverityInfo,
		Impact:           domain.ImpactLow,
		Cost:             domain.CostLow,
		Message:          "console output left in source",
		Correction:       "Route output through the application logger",
		FileTypes:        []lint.FileType{lint.FileTypeJS, lint.FileTypeJSX},
		RequiredPatterns: []string{"console"},
		Register: func(ctx *lint.RegistrationContext) {
			reporter := ctx.Reporter()
			source := ctx.Source()
			ctx.Subscribe(parser.KindCallExpression, func(node *parser.Node) {
				callee := node.Callee()
				if callee == nil || callee.Kind != parser.KindMemberExpression {
					return
				}
				if strings.HasPrefix(callee.Text(source), "console.") {
					offset, length := callee.Range()
					reporter.ReportToken(offset, length)
				}
			})
		},
	}
}
