// errors.go: the three recoverable error kinds and caret-snippet rendering.
//
// Every failure the engine can produce is one of *SyntaxError, *NameError,
// or *EvalError. They are raised at the point of detection (the evaluator
// panics with the typed error and the public surface recovers it, see
// interp.go) and propagate unchanged; callers such as the REPL catch and
// report them without crashing.
//
// WrapErrorWithSource turns a positioned *SyntaxError into a multi-line
// snippet with a caret under the offending column:
//
//	SYNTAX ERROR at 2:9: unmatched ')'
//
//	   1 | (:= x 5)
//	   2 | (+ x 1))
//	     |        ^
//
// Errors without positions (NameError, EvalError) pass through untouched.
package slip

import (
	"fmt"
	"strings"
)

// SyntaxError reports a malformed token sequence or expression shape.
// Line is 1-based; Col is 0-based (rendered 1-based).
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SYNTAX ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// NameError reports a lookup, set!, or del against a name that is not
// bound in the relevant scope(s).
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("NAME ERROR: name %q is not defined", e.Name)
}

// EvalError reports every other runtime violation: wrong arity, applying
// a non-callable, type mismatches inside builtins, the recursion ceiling.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string {
	return "EVALUATION ERROR: " + e.Msg
}

// WrapErrorWithSource augments a *SyntaxError with a caret-annotated
// snippet of src. Other error kinds are returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	se, ok := err.(*SyntaxError)
	if !ok {
		return err
	}
	return fmt.Errorf("%s", prettyErrorString(src, "SYNTAX ERROR", se.Line, se.Col+1, se.Msg))
}

// prettyErrorString builds the snippet with a header and a caret, showing
// at most one previous and one next line. Coordinates are 1-based and
// clamped to the source bounds.
func prettyErrorString(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
