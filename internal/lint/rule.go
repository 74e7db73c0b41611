package lint

import (
	"fmt"

	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// Callback is invoked for every visited node of a subscribed kind
type Callback func(node *parser.Node)

// Rule is the static descriptor every rule supplies. Construction is
// pure; a descriptor exposes its code, severity, and messages without
// any file context. Impact and Cost are declarative signals for
// reporting tools and never change engine behavior.
type Rule struct {
	// Code is the stable identifier, unique across the active rule set
	Code string

	Severity domain.Severity
	Impact   domain.Impact
	Cost     domain.Cost

	// Message is the primary diagnostic message; Correction suggests
	// how to address the finding
	Message    string
	Correction string

	// FileTypes restricts the rule to the listed file types. Nil means
	// the rule applies to all files.
	FileTypes []FileType

	// RequiredPatterns is a conservative textual prefilter: the rule
	// only runs when at least one pattern occurs as a substring of the
	// raw file text. Nil or empty means the rule always runs. Keeping
	// the set a superset of everything the rule can match on is the
	// rule author's responsibility.
	RequiredPatterns []string

	// Register subscribes the rule's callbacks for one file
	Register func(ctx *RegistrationContext)

	// Fixes generate text edits for this rule's diagnostics on demand
	Fixes []FixGenerator
}

// Fixable reports whether the rule declares any fix generators
func (r *Rule) Fixable() bool {
	return len(r.Fixes) > 0
}

// RuleSet is an ordered, immutable collection of rules. Order is the
// registration order for every file, which keeps diagnostic ordering
// reproducible across runs.
type RuleSet struct {
	rules []*Rule
}

// NewRuleSet validates code uniqueness once, at construction
func NewRuleSet(rules ...*Rule) (*RuleSet, error) {
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.Code == "" {
			return nil, fmt.Errorf("rule with empty code")
		}
		if seen[r.Code] {
			return nil, fmt.Errorf("duplicate rule code: %s", r.Code)
		}
		if r.Register == nil {
			return nil, fmt.Errorf("rule %s has no registration hook", r.Code)
		}
		seen[r.Code] = true
	}
	return &RuleSet{rules: rules}, nil
}

// Rules returns the rules in their fixed order
func (s *RuleSet) Rules() []*Rule {
	return s.rules
}

// Get returns the rule with the given code
func (s *RuleSet) Get(code string) (*Rule, bool) {
	for _, r := range s.rules {
		if r.Code == code {
			return r, true
		}
	}
	return nil, false
}

// Len returns the number of rules
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Filter returns a subset keeping only rules accepted by keep, in the
// original order. Uniqueness is preserved by construction.
func (s *RuleSet) Filter(keep func(*Rule) bool) *RuleSet {
	filtered := make([]*Rule, 0, len(s.rules))
	for _, r := range s.rules {
		if keep(r) {
			filtered = append(filtered, r)
		}
	}
	return &RuleSet{rules: filtered}
}
