package lint

import (
	"fmt"

	"github.com/ludo-technologies/rulescan/internal/parser"
)

// Engine runs an active rule set over one file's syntax tree in exactly
// one traversal. The rule set is passed in explicitly and shared
// read-only by any number of per-file runs.
type Engine struct {
	rules *RuleSet
}

// NewEngine creates an engine for the given rule set
func NewEngine(rules *RuleSet) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the active rule set
func (e *Engine) Rules() *RuleSet {
	return e.rules
}

// LintFile registers the surviving rules and performs the single
// depth-first traversal. Diagnostics accumulate on the FileContext in
// report order. Rule failures are isolated: a panicking registration
// excludes only that rule, a panicking callback loses only that single
// invocation, and both leave a meta-diagnostic attributed to the
// owning rule's code.
func (e *Engine) LintFile(fc *FileContext, root *parser.Node) {
	for _, rule := range e.rules.Rules() {
		if !shouldRun(rule, fc) {
			continue
		}
		e.register(fc, rule)
	}

	if root == nil {
		return
	}

	root.Walk(func(node *parser.Node) bool {
		for _, cb := range fc.callbacks[node.Kind] {
			e.invoke(fc, cb, node)
		}
		return true
	})
}

// register runs one rule's registration hook, committing its
// subscriptions only on normal return
func (e *Engine) register(fc *FileContext, rule *Rule) {
	ctx := newRegistrationContext(fc, rule)

	defer func() {
		if r := recover(); r != nil {
			metaDiagnostic(fc, rule, 0, 0,
				fmt.Sprintf("rule %s failed during registration: %v", rule.Code, r))
			return
		}
		ctx.commit()
	}()

	rule.Register(ctx)
}

// invoke runs a single callback with panic isolation
func (e *Engine) invoke(fc *FileContext, cb registeredCallback, node *parser.Node) {
	defer func() {
		if r := recover(); r != nil {
			offset, length := node.Range()
			metaDiagnostic(fc, cb.rule, offset, length,
				fmt.Sprintf("rule %s failed at %s: %v", cb.rule.Code, node.Kind, r))
		}
	}()

	cb.fn(node)
}
