// Package rules bundles the built-in rule set. Each rule is a static
// descriptor with a registration hook; all matching happens through the
// lint engine's single-pass dispatch.
package rules

import (
	"github.com/ludo-technologies/rulescan/internal/lint"
)

// DefaultRules returns the built-in rules in their fixed order. The
// order is part of the contract: it determines callback invocation
// order and therefore diagnostic ordering.
func DefaultRules() []*lint.Rule {
	return []*lint.Rule{
		NoEval(),
		NoDebugger(),
		UnhandledJSONParse(),
		AwaitInLoop(),
		NoVar(),
		NoConsole(),
	}
}

// DefaultRuleSet builds the validated default rule set
func DefaultRuleSet() (*lint.RuleSet, error) {
	return lint.NewRuleSet(DefaultRules()...)
}
