package lint

import (
	"iter"

	"github.com/ludo-technologies/rulescan/internal/parser"
)

// Ancestors yields the parent chain of a node, nearest ancestor first.
// The sequence is lazy and restartable; concurrent queries share no
// iteration state.
func Ancestors(node *parser.Node) iter.Seq[*parser.Node] {
	return func(yield func(*parser.Node) bool) {
		for p := node.Parent; p != nil; p = p.Parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Inside reports whether a node is contained in an ancestor of one of
// the target kinds. The walk stops as soon as a boundary kind is
// reached, so code in a sibling scope sharing a distant ancestor never
// produces a false positive. Boundaries are mandatory for that reason;
// an empty boundary set still terminates at the tree root.
func Inside(node *parser.Node, targets []parser.NodeKind, boundaries []parser.NodeKind) bool {
	for p := range Ancestors(node) {
		if kindIn(p.Kind, targets) {
			return true
		}
		if kindIn(p.Kind, boundaries) {
			return false
		}
	}
	return false
}

// InsideKind is Inside for a single target kind
func InsideKind(node *parser.Node, target parser.NodeKind, boundaries []parser.NodeKind) bool {
	return Inside(node, []parser.NodeKind{target}, boundaries)
}

// NearestAncestor returns the closest ancestor of one of the given
// kinds, or nil if the root is reached first
func NearestAncestor(node *parser.Node, kinds ...parser.NodeKind) *parser.Node {
	for p := range Ancestors(node) {
		if kindIn(p.Kind, kinds) {
			return p
		}
	}
	return nil
}

func kindIn(kind parser.NodeKind, kinds []parser.NodeKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
