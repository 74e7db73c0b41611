// Package testutil provides helper functions for testing rulescan components
package testutil

import (
	"testing"

	"github.com/ludo-technologies/rulescan/internal/parser"
)

// ParseJS parses JavaScript source into a syntax tree, failing the test
// on parse errors
func ParseJS(t *testing.T, source string) *parser.Node {
	t.Helper()
	p := parser.NewParser()
	defer p.Close()

	root, err := p.ParseString(source)
	if err != nil {
		t.Fatalf("Failed to parse test code: %v", err)
	}
	return root
}

// ParseTS parses TypeScript source into a syntax tree
func ParseTS(t *testing.T, source string) *parser.Node {
	t.Helper()
	p := parser.NewTypeScriptParser()
	defer p.Close()

	root, err := p.ParseString(source)
	if err != nil {
		t.Fatalf("Failed to parse test code: %v", err)
	}
	return root
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
