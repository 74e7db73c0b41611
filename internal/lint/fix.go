package lint

import (
	"fmt"
	"sort"

	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/parser"
)

// FixContext gives a fix generator read-only access to the original
// source text and syntax tree. Fix generation is decoupled from the
// detection pipeline and may run later, on another goroutine, as long
// as the diagnostic is still valid for this text snapshot.
type FixContext struct {
	source []byte
	root   *parser.Node
}

// NewFixContext creates a fix context for one file snapshot
func NewFixContext(source []byte, root *parser.Node) *FixContext {
	return &FixContext{source: source, root: root}
}

// Source returns the original, unmodified file text
func (c *FixContext) Source() []byte {
	return c.source
}

// Root returns the syntax tree root
func (c *FixContext) Root() *parser.Node {
	return c.root
}

// NodeAt relocates the deepest node covering the given byte range, the
// bounded query a generator uses to find the offending node again.
func (c *FixContext) NodeAt(offset, length int) *parser.Node {
	if c.root == nil {
		return nil
	}
	var deepest *parser.Node
	c.root.Walk(func(n *parser.Node) bool {
		if n.StartByte > offset || n.EndByte < offset+length {
			// A node that does not cover the range cannot have a
			// covering descendant
			return false
		}
		deepest = n
		return true
	})
	return deepest
}

// FixGenerator produces zero or more fix actions for a previously
// reported diagnostic
type FixGenerator func(diag domain.Diagnostic, ctx *FixContext) []domain.FixAction

// GenerateFixes runs all of a rule's generators for one diagnostic. A
// panicking generator and any action with overlapping or out-of-range
// edits are dropped; the diagnostic itself stays valid.
func GenerateFixes(rule *Rule, diag domain.Diagnostic, ctx *FixContext) []domain.FixAction {
	var actions []domain.FixAction
	for _, gen := range rule.Fixes {
		for _, action := range runGenerator(gen, diag, ctx) {
			if err := ValidateEdits(action.Edits, len(ctx.source)); err != nil {
				continue
			}
			actions = append(actions, action)
		}
	}
	return actions
}

func runGenerator(gen FixGenerator, diag domain.Diagnostic, ctx *FixContext) (actions []domain.FixAction) {
	defer func() {
		if recover() != nil {
			actions = nil
		}
	}()
	return gen(diag, ctx)
}

// ValidateEdits checks that the edits of one fix action are in range
// and do not overlap
func ValidateEdits(edits []domain.TextEdit, sourceLen int) error {
	if len(edits) == 0 {
		return fmt.Errorf("fix action has no edits")
	}

	sorted := make([]domain.TextEdit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	prevEnd := 0
	for i, e := range sorted {
		if e.Offset < 0 || e.Length < 0 || e.Offset+e.Length > sourceLen {
			return fmt.Errorf("edit out of range: offset %d length %d", e.Offset, e.Length)
		}
		if i > 0 && e.Offset < prevEnd {
			return fmt.Errorf("overlapping edits at offset %d", e.Offset)
		}
		prevEnd = e.Offset + e.Length
	}
	return nil
}

// ApplyEdits applies a fix action's edits against the original source
// and returns the new text. The protocol guarantees local validity
// only: the result is well-formed text, not necessarily free of other
// diagnostics.
func ApplyEdits(source []byte, edits []domain.TextEdit) ([]byte, error) {
	if err := ValidateEdits(edits, len(source)); err != nil {
		return nil, err
	}

	sorted := make([]domain.TextEdit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	var out []byte
	cursor := 0
	for _, e := range sorted {
		out = append(out, source[cursor:e.Offset]...)
		out = append(out, e.Replacement...)
		cursor = e.Offset + e.Length
	}
	out = append(out, source[cursor:]...)
	return out, nil
}
