package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// ASTBuilder converts a tree-sitter CST into the internal syntax tree
type ASTBuilder struct {
	filename string
	source   []byte
}

// NewASTBuilder creates a new AST builder
func NewASTBuilder(filename string, source []byte) *ASTBuilder {
	return &ASTBuilder{
		filename: filename,
		source:   source,
	}
}

// Build builds the tree rooted at the given tree-sitter node
func (b *ASTBuilder) Build(tsNode *sitter.Node) *Node {
	if tsNode == nil {
		return nil
	}
	return b.buildNode(tsNode)
}

// buildNode converts one tree-sitter node and its named descendants.
// Anonymous nodes (punctuation, keywords) are dropped; the byte ranges
// of the named nodes still cover them.
func (b *ASTBuilder) buildNode(tsNode *sitter.Node) *Node {
	node := &Node{
		Kind:      KindForGrammarType(tsNode.Type()),
		StartByte: int(tsNode.StartByte()),
		EndByte:   int(tsNode.EndByte()),
		Location: Location{
			File:      b.filename,
			StartLine: int(tsNode.StartPoint().Row) + 1,
			StartCol:  int(tsNode.StartPoint().Column),
			EndLine:   int(tsNode.EndPoint().Row) + 1,
			EndCol:    int(tsNode.EndPoint().Column),
		},
	}

	count := int(tsNode.NamedChildCount())
	for i := 0; i < count; i++ {
		child := tsNode.NamedChild(i)
		if child == nil {
			continue
		}
		node.AddChild(b.buildNode(child))
	}

	return node
}
