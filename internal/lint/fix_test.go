package lint

import (
	"testing"

	"github.com/ludo-technologies/rulescan/domain"
	"github.com/ludo-technologies/rulescan/internal/parser"
	"github.com/ludo-technologies/rulescan/internal/testutil"
)

func TestApplyEdits_Single(t *testing.T) {
	source := []byte("var x = 1;\n")
	out, err := ApplyEdits(source, []domain.TextEdit{
		{Offset: 0, Length: 3, Replacement: "let"},
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "let x = 1;\n", string(out))
}

func TestApplyEdits_MultipleOrdered(t *testing.T) {
	source := []byte("aa bb cc")
	out, err := ApplyEdits(source, []domain.TextEdit{
		{Offset: 6, Length: 2, Replacement: "CC"},
		{Offset: 0, Length: 2, Replacement: "AA"},
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "AA bb CC", string(out))
}

func TestApplyEdits_Deletion(t *testing.T) {
	source := []byte("keep;remove;keep;\n")
	out, err := ApplyEdits(source, []domain.TextEdit{
		{Offset: 5, Length: 7, Replacement: ""},
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "keep;keep;\n", string(out))
}

func TestValidateEdits_Overlap(t *testing.T) {
	err := ValidateEdits([]domain.TextEdit{
		{Offset: 0, Length: 5, Replacement: "x"},
		{Offset: 3, Length: 4, Replacement: "y"},
	}, 20)
	testutil.AssertError(t, err)
}

func TestValidateEdits_OutOfRange(t *testing.T) {
	err := ValidateEdits([]domain.TextEdit{
		{Offset: 18, Length: 5, Replacement: "x"},
	}, 20)
	testutil.AssertError(t, err)

	err = ValidateEdits([]domain.TextEdit{
		{Offset: -1, Length: 2, Replacement: "x"},
	}, 20)
	testutil.AssertError(t, err)
}

func TestGenerateFixes_DropsOverlapping(t *testing.T) {
	rule := &Rule{
		Code:     "bad-fix",
		Severity: domain.SeverityInfo,
		Message:  "m",
		Register: func(ctx *RegistrationContext) {},
		Fixes: []FixGenerator{
			func(diag domain.Diagnostic, ctx *FixContext) []domain.FixAction {
				return []domain.FixAction{
					{
						Description: "overlapping",
						Edits: []domain.TextEdit{
							{Offset: 0, Length: 4, Replacement: "a"},
							{Offset: 2, Length: 4, Replacement: "b"},
						},
					},
					{
						Description: "valid",
						Edits: []domain.TextEdit{
							{Offset: 0, Length: 3, Replacement: "let"},
						},
					},
				}
			},
		},
	}

	source := []byte("var x = 1;\n")
	ctx := NewFixContext(source, nil)
	actions := GenerateFixes(rule, domain.Diagnostic{RuleCode: "bad-fix"}, ctx)

	if len(actions) != 1 {
		t.Fatalf("Overlapping action should be dropped, got %d actions", len(actions))
	}
	testutil.AssertEqual(t, "valid", actions[0].Description)
}

func TestGenerateFixes_PanicIsolated(t *testing.T) {
	rule := &Rule{
		Code:     "panicking-fix",
		Severity: domain.SeverityInfo,
		Message:  "m",
		Register: func(ctx *RegistrationContext) {},
		Fixes: []FixGenerator{
			func(diag domain.Diagnostic, ctx *FixContext) []domain.FixAction {
				panic("generator boom")
			},
			func(diag domain.Diagnostic, ctx *FixContext) []domain.FixAction {
				return []domain.FixAction{{
					Description: "survives",
					Edits:       []domain.TextEdit{{Offset: 0, Length: 1, Replacement: "X"}},
				}}
			},
		},
	}

	ctx := NewFixContext([]byte("abc"), nil)
	actions := GenerateFixes(rule, domain.Diagnostic{RuleCode: "panicking-fix"}, ctx)

	if len(actions) != 1 || actions[0].Description != "survives" {
		t.Errorf("A panicking generator must not affect other generators, got %v", actions)
	}
}

func TestFixContext_NodeAt(t *testing.T) {
	source := "eval(code);\n"
	root := testutil.ParseJS(t, source)
	ctx := NewFixContext([]byte(source), root)

	node := ctx.NodeAt(0, 4)
	if node == nil {
		t.Fatal("NodeAt should find a covering node")
	}
	if node.Kind != parser.KindIdentifier {
		t.Errorf("Deepest covering node should be the identifier, got %s", node.Kind)
	}
	if node.Text([]byte(source)) != "eval" {
		t.Errorf("Relocated node text should be 'eval', got %q", node.Text([]byte(source)))
	}
}

func TestFixDeterminism_AppliedTwiceSameInput(t *testing.T) {
	source := []byte("var a = 1; var b = 2;\n")
	edits := []domain.TextEdit{
		{Offset: 0, Length: 3, Replacement: "let"},
		{Offset: 11, Length: 3, Replacement: "let"},
	}

	out1, err1 := ApplyEdits(source, edits)
	out2, err2 := ApplyEdits(source, edits)
	testutil.AssertNoError(t, err1)
	testutil.AssertNoError(t, err2)
	testutil.AssertEqual(t, string(out1), string(out2))
	testutil.AssertEqual(t, "let a = 1; let b = 2;\n", string(out1))
}
