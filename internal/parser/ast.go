package parser

import "fmt"

// NodeKind identifies the syntactic category of a node. The lint engine
// treats kinds as opaque tags; the constants below name the kinds the
// bundled rules subscribe to.
type NodeKind string

const (
	// Program and structure
	KindProgram        NodeKind = "Program"
	KindStatementBlock NodeKind = "StatementBlock"
	KindExpressionStmt NodeKind = "ExpressionStatement"

	// Functions and classes
	KindFunctionDeclaration NodeKind = "FunctionDeclaration"
	KindFunctionExpression  NodeKind = "FunctionExpression"
	KindArrowFunction       NodeKind = "ArrowFunction"
	KindGeneratorFunction   NodeKind = "GeneratorFunction"
	KindMethodDefinition    NodeKind = "MethodDefinition"
	KindClassDeclaration    NodeKind = "ClassDeclaration"
	KindClassBody           NodeKind = "ClassBody"

	// Declarations
	KindVariableDeclaration NodeKind = "VariableDeclaration"
	KindLexicalDeclaration  NodeKind = "LexicalDeclaration"
	KindVariableDeclarator  NodeKind = "VariableDeclarator"

	// Control flow
	KindIfStatement      NodeKind = "IfStatement"
	KindSwitchStatement  NodeKind = "SwitchStatement"
	KindForStatement     NodeKind = "ForStatement"
	KindForInStatement   NodeKind = "ForInStatement"
	KindWhileStatement   NodeKind = "WhileStatement"
	KindDoWhileStatement NodeKind = "DoWhileStatement"
	KindReturnStatement  NodeKind = "ReturnStatement"
	KindBreakStatement   NodeKind = "BreakStatement"
	KindThrowStatement   NodeKind = "ThrowStatement"

	// Exception handling
	KindTryStatement  NodeKind = "TryStatement"
	KindCatchClause   NodeKind = "CatchClause"
	KindFinallyClause NodeKind = "FinallyClause"

	// Expressions
	KindCallExpression     NodeKind = "CallExpression"
	KindNewExpression      NodeKind = "NewExpression"
	KindMemberExpression   NodeKind = "MemberExpression"
	KindAwaitExpression    NodeKind = "AwaitExpression"
	KindIdentifier         NodeKind = "Identifier"
	KindPropertyIdentifier NodeKind = "PropertyIdentifier"
	KindString             NodeKind = "String"
	KindNumber             NodeKind = "Number"

	// Statements without substructure
	KindDebuggerStatement NodeKind = "DebuggerStatement"
	KindEmptyStatement    NodeKind = "EmptyStatement"
)

// kindTable maps tree-sitter grammar type names to node kinds. Types not
// listed here keep their grammar name as an ad-hoc kind; the engine
// dispatches on exact tags either way.
var kindTable = map[string]NodeKind{
	"program":                        KindProgram,
	"statement_block":                KindStatementBlock,
	"expression_statement":           KindExpressionStmt,
	"function_declaration":           KindFunctionDeclaration,
	"function":                       KindFunctionExpression,
	"function_expression":            KindFunctionExpression,
	"arrow_function":                 KindArrowFunction,
	"generator_function":             KindGeneratorFunction,
	"generator_function_declaration": KindGeneratorFunction,
	"method_definition":              KindMethodDefinition,
	"class_declaration":              KindClassDeclaration,
	"class_body":                     KindClassBody,
	"variable_declaration":           KindVariableDeclaration,
	"lexical_declaration":            KindLexicalDeclaration,
	"variable_declarator":            KindVariableDeclarator,
	"if_statement":                   KindIfStatement,
	"switch_statement":               KindSwitchStatement,
	"for_statement":                  KindForStatement,
	"for_in_statement":               KindForInStatement,
	"while_statement":                KindWhileStatement,
	"do_statement":                   KindDoWhileStatement,
	"return_statement":               KindReturnStatement,
	"break_statement":                KindBreakStatement,
	"throw_statement":                KindThrowStatement,
	"try_statement":                  KindTryStatement,
	"catch_clause":                   KindCatchClause,
	"finally_clause":                 KindFinallyClause,
	"call_expression":                KindCallExpression,
	"new_expression":                 KindNewExpression,
	"member_expression":              KindMemberExpression,
	"await_expression":               KindAwaitExpression,
	"identifier":                     KindIdentifier,
	"property_identifier":            KindPropertyIdentifier,
	"string":                         KindString,
	"number":                         KindNumber,
	"debugger_statement":             KindDebuggerStatement,
	"empty_statement":                KindEmptyStatement,
}

// KindForGrammarType translates a tree-sitter type name to a NodeKind
func KindForGrammarType(tsType string) NodeKind {
	if kind, ok := kindTable[tsType]; ok {
		return kind
	}
	return NodeKind(tsType)
}

// Location represents the position of a node in the source code
type Location struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// String returns a string representation of the location
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}

// Node is a syntax tree node: a kind tag, a parent link, ordered named
// children, and the byte range it covers in the source.
type Node struct {
	Kind      NodeKind
	Parent    *Node
	Children  []*Node
	StartByte int
	EndByte   int
	Location  Location
}

// AddChild appends a child and sets its parent link
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Range returns the byte offset and length of the node
func (n *Node) Range() (offset, length int) {
	return n.StartByte, n.EndByte - n.StartByte
}

// Text returns the source slice the node covers. Out-of-range nodes
// yield an empty string.
func (n *Node) Text(source []byte) string {
	if n.StartByte < 0 || n.EndByte > len(source) || n.StartByte > n.EndByte {
		return ""
	}
	return string(source[n.StartByte:n.EndByte])
}

// Walk traverses the tree depth-first and calls the visitor for each node.
// If the visitor returns false, traversal of that branch is stopped.
func (n *Node) Walk(visitor func(*Node) bool) {
	if n == nil {
		return
	}
	if !visitor(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visitor)
	}
}

// FirstChildOfKind returns the first direct child with the given kind
func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// Callee returns the expression being invoked by a call or new
// expression: its first named child.
func (n *Node) Callee() *Node {
	if n.Kind != KindCallExpression && n.Kind != KindNewExpression {
		return nil
	}
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// String returns a string representation of the node
func (n *Node) String() string {
	return fmt.Sprintf("%s at %s", n.Kind, n.Location)
}

// IsFunction returns true if the node introduces a function scope
func (n *Node) IsFunction() bool {
	switch n.Kind {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunction,
		KindGeneratorFunction, KindMethodDefinition:
		return true
	}
	return false
}

// IsLoop returns true if the node is a loop statement
func (n *Node) IsLoop() bool {
	switch n.Kind {
	case KindForStatement, KindForInStatement, KindWhileStatement, KindDoWhileStatement:
		return true
	}
	return false
}

// FunctionKinds lists the kinds that introduce a function scope, in the
// form ancestor queries take as boundaries.
func FunctionKinds() []NodeKind {
	return []NodeKind{
		KindFunctionDeclaration,
		KindFunctionExpression,
		KindArrowFunction,
		KindGeneratorFunction,
		KindMethodDefinition,
	}
}

// LoopKinds lists the loop statement kinds
func LoopKinds() []NodeKind {
	return []NodeKind{
		KindForStatement,
		KindForInStatement,
		KindWhileStatement,
		KindDoWhileStatement,
	}
}
