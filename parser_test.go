package slip

import (
	"errors"
	"testing"
)

func parseSrc(t *testing.T, src string) Value {
	t.Helper()
	v, err := Parse(Tokenize(src))
	if err != nil {
		t.Fatalf("Parse error for %q: %v", src, err)
	}
	return v
}

func wantSyntaxError(t *testing.T, src string) *SyntaxError {
	t.Helper()
	_, err := Parse(Tokenize(src))
	if err == nil {
		t.Fatalf("want SyntaxError for %q, got none", src)
	}
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("want *SyntaxError for %q, got %T: %v", src, err, err)
	}
	return se
}

func Test_Parser_Atom_Classification(t *testing.T) {
	wantInt(t, parseSrc(t, "8"), 8)
	wantNum(t, parseSrc(t, "-5.32"), -5.32)
	if v := parseSrc(t, "1.2.3.4"); v.Tag != VTSym || v.Data.(string) != "1.2.3.4" {
		t.Fatalf("want symbol 1.2.3.4, got %#v", v)
	}
	if v := parseSrc(t, "x"); v.Tag != VTSym || v.Data.(string) != "x" {
		t.Fatalf("want symbol x, got %#v", v)
	}
}

func Test_Parser_Single_Element_Shortcut(t *testing.T) {
	v := parseSrc(t, "(x)")
	items := v.Data.([]Value)
	if v.Tag != VTForm || len(items) != 1 {
		t.Fatalf("want one-element form, got %#v", v)
	}
	if items[0].Tag != VTSym || items[0].Data.(string) != "x" {
		t.Fatalf("want symbol element, got %#v", items[0])
	}
	wantInt(t, parseSrc(t, "(5)").Data.([]Value)[0], 5)
}

func Test_Parser_Structure_Mirrors_Nesting(t *testing.T) {
	v := parseSrc(t, "(a (b c) 3)")
	items := v.Data.([]Value)
	if v.Tag != VTForm || len(items) != 3 {
		t.Fatalf("want 3-element form, got %#v", v)
	}
	if items[0].Data.(string) != "a" {
		t.Fatalf("element 0: %#v", items[0])
	}
	inner := items[1]
	if inner.Tag != VTForm || len(inner.Data.([]Value)) != 2 {
		t.Fatalf("element 1: %#v", inner)
	}
	if inner.Data.([]Value)[1].Data.(string) != "c" {
		t.Fatalf("inner element 1: %#v", inner.Data.([]Value)[1])
	}
	wantInt(t, items[2], 3)
}

func Test_Parser_Deep_Nesting(t *testing.T) {
	v := parseSrc(t, "(a (b (c (d))))")
	cur := v
	for depth := 0; depth < 3; depth++ {
		items := cur.Data.([]Value)
		if len(items) != 2 {
			t.Fatalf("depth %d: want 2 elements, got %#v", depth, cur)
		}
		cur = items[1]
	}
	if len(cur.Data.([]Value)) != 1 {
		t.Fatalf("innermost: %#v", cur)
	}
}

func Test_Parser_Sibling_Subexpressions(t *testing.T) {
	v := parseSrc(t, "((a 1) (b 2) c)")
	items := v.Data.([]Value)
	if len(items) != 3 {
		t.Fatalf("want 3 elements, got %d", len(items))
	}
	if items[0].Tag != VTForm || items[1].Tag != VTForm || items[2].Tag != VTSym {
		t.Fatalf("shape mismatch: %#v", items)
	}
}

func Test_Parser_SyntaxErrors(t *testing.T) {
	wantSyntaxError(t, "")
	wantSyntaxError(t, ") x")
	wantSyntaxError(t, "x (")
	wantSyntaxError(t, ":= x 5")
	wantSyntaxError(t, "(")
	wantSyntaxError(t, ")")
	wantSyntaxError(t, "(+ 1 2))")
	wantSyntaxError(t, "((a)")
	wantSyntaxError(t, "(a (b)")
}

func Test_Parser_Define_Inside_Form_Is_Fine(t *testing.T) {
	v := parseSrc(t, "(:= x 5)")
	items := v.Data.([]Value)
	if len(items) != 3 || items[0].Data.(string) != ":=" {
		t.Fatalf("got %#v", v)
	}
}

func Test_Parser_Depth_Ceiling(t *testing.T) {
	old := MaxParseDepth
	MaxParseDepth = 4
	defer func() { MaxParseDepth = old }()

	wantSyntaxError(t, "(a (b (c (d (e (f (g)))))))")
	if _, err := Parse(Tokenize("(a (b c))")); err != nil {
		t.Fatalf("shallow expression must still parse: %v", err)
	}
}

func Test_Parser_Error_Positions(t *testing.T) {
	// the interior scan hits the ')' at line 2 column 3 with an empty
	// depth stack
	se := wantSyntaxError(t, "(+ 1\n 2))")
	if se.Line != 2 || se.Col != 2 {
		t.Fatalf("want error at 2:3, got %d:%d", se.Line, se.Col+1)
	}
}
