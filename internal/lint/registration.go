package lint

import (
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// RegistrationContext is the per-(rule, file) object through which a
// rule surviving the prefilter subscribes callbacks to node kinds.
// Subscriptions are buffered and only committed to the file's dispatch
// table if the rule's registration hook returns normally, so a panic
// during registration excludes the whole rule from this file.
type RegistrationContext struct {
	fc       *FileContext
	rule     *Rule
	reporter *Reporter
	pending  []pendingSubscription
}

type pendingSubscription struct {
	kind parser.NodeKind
	fn   Callback
}

func newRegistrationContext(fc *FileContext, rule *Rule) *RegistrationContext {
	return &RegistrationContext{
		fc:       fc,
		rule:     rule,
		reporter: &Reporter{fc: fc, rule: rule},
	}
}

// Subscribe registers a callback for every visited node of the given
// kind. Multiple subscriptions per rule and multiple rules per kind are
// both expected.
func (c *RegistrationContext) Subscribe(kind parser.NodeKind, fn Callback) {
	if fn == nil {
		return
	}
	c.pending = append(c.pending, pendingSubscription{kind: kind, fn: fn})
}

// Source returns the raw file text, for rules mixing tree structure
// with text heuristics
func (c *RegistrationContext) Source() []byte {
	return c.fc.source
}

// Path returns the analyzed file path
func (c *RegistrationContext) Path() string {
	return c.fc.path
}

// FileType returns the classified file type
func (c *RegistrationContext) FileType() FileType {
	return c.fc.fileType
}

// Reporter returns the diagnostic reporter bound to the rule's code
func (c *RegistrationContext) Reporter() *Reporter {
	return c.reporter
}

// commit moves the buffered subscriptions into the dispatch table
func (c *RegistrationContext) commit() {
	for _, sub := range c.pending {
		c.fc.subscribe(sub.kind, c.rule, sub.fn)
	}
	c.pending = nil
}
