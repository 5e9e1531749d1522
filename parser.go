// parser.go: atom classification and S-expression parsing.
//
// Parse consumes the token sequence for exactly one expression and builds
// the tree the evaluator walks: atoms become Int/Num/Sym Values, each
// parenthesized expression becomes a Form of its elements. All malformed
// shapes fail with a positioned *SyntaxError.
package slip

import "strconv"

// defineTok is the assignment form's keyword. The parser rejects it in
// head position of a bare (unparenthesized) expression.
const defineTok = ":="

// classifyAtom converts an atom token to a Value: integer parse first,
// then float, then symbol. Decision order matters: "8" is an Int,
// "-5.32" a Num, "1.2.3.4" and "x" are Syms.
func classifyAtom(tok Token) Value {
	if n, err := strconv.ParseInt(tok.Lexeme, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(tok.Lexeme, 64); err == nil {
		return Num(f)
	}
	return Sym(tok.Lexeme)
}

func synErr(tok Token, msg string) error {
	return &SyntaxError{Line: tok.Line, Col: tok.Col, Msg: msg}
}

// MaxParseDepth bounds parser recursion so pathological nesting fails
// with a SyntaxError instead of exhausting the host stack.
var MaxParseDepth = 10000

// Parse turns a token sequence into an expression tree.
//
// The general case assumes the outer first and last tokens are the
// enclosing parentheses of one S-expression and scans the interior with a
// depth stack: each balanced span is recursively parsed and appended, and
// each depth-zero atom is classified and appended.
func Parse(tokens []Token) (Value, error) {
	return parseAt(tokens, 0)
}

func parseAt(tokens []Token, depth int) (Value, error) {
	if len(tokens) == 0 {
		return Value{}, &SyntaxError{Line: 1, Msg: "empty input: expected an expression"}
	}
	if depth > MaxParseDepth {
		return Value{}, synErr(tokens[0], "expression nested too deeply")
	}

	first, last := tokens[0], tokens[len(tokens)-1]
	switch {
	case first.Type == RPAREN:
		return Value{}, synErr(first, "expression cannot start with ')'")
	case last.Type == LPAREN:
		return Value{}, synErr(last, "expression cannot end with '('")
	case first.Type == ATOM && first.Lexeme == defineTok:
		return Value{}, synErr(first, "'"+defineTok+"' outside a form")
	}

	if len(tokens) == 1 {
		if first.Type != ATOM {
			return Value{}, synErr(first, "unexpected bare parenthesis")
		}
		return classifyAtom(first), nil
	}

	// Shortcut for the exact shape "( atom )".
	if len(tokens) == 3 && tokens[0].Type == LPAREN && tokens[1].Type == ATOM && tokens[2].Type == RPAREN {
		return Form([]Value{classifyAtom(tokens[1])}), nil
	}

	var stack []int
	items := []Value{}
	for i := 1; i < len(tokens)-1; i++ {
		switch tokens[i].Type {
		case LPAREN:
			stack = append(stack, i)
		case RPAREN:
			if len(stack) == 0 {
				return Value{}, synErr(tokens[i], "unmatched ')'")
			}
			if len(stack) == 1 {
				beg := stack[0]
				stack = stack[:0]
				sub, err := parseAt(tokens[beg:i+1], depth+1)
				if err != nil {
					return Value{}, err
				}
				items = append(items, sub)
			} else {
				stack = stack[:len(stack)-1]
			}
		default:
			if len(stack) == 0 {
				items = append(items, classifyAtom(tokens[i]))
			}
		}
	}
	if len(stack) != 0 {
		return Value{}, synErr(tokens[stack[0]], "unmatched '('")
	}
	return Form(items), nil
}
