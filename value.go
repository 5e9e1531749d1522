package slip

// ValueTag enumerates all runtime kinds a Value may hold.
// The tag determines which type Value.Data carries.
type ValueTag int

const (
	VTInt     ValueTag = iota // int64
	VTNum                     // float64
	VTBool                    // bool
	VTSym                     // string (a name to resolve; evaluation intermediate)
	VTNil                     // the empty list (no payload)
	VTPair                    // *Pair (cons cell)
	VTClosure                 // *Closure (user-defined function)
	VTBuiltin                 // *Builtin (native operator)
	VTForm                    // []Value (a parsed S-expression, walked by the evaluator)
)

// Value is the universal carrier used by the parser and the evaluator.
// Atoms, runtime results, and parsed forms are all Values; the evaluator
// dispatches on Tag.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Nil is the singleton empty list.
var Nil = Value{Tag: VTNil}

// True and False are the canonical boolean Values. The `if` form and the
// short-circuit forms compare against True exactly.
var (
	True  = Value{Tag: VTBool, Data: true}
	False = Value{Tag: VTBool, Data: false}
)

// Primitive constructors.
func Int(n int64) Value        { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value      { return Value{Tag: VTNum, Data: f} }
func Sym(name string) Value    { return Value{Tag: VTSym, Data: name} }
func Form(items []Value) Value { return Value{Tag: VTForm, Data: items} }

func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Pair is a two-slot cons cell. A proper list is Nil or a Pair whose Tail
// is itself a proper list; nothing enforces that shape except the list
// builtins, which reject dotted chains.
type Pair struct {
	Head Value
	Tail Value
}

// PairVal wraps a fresh cons cell into a Value.
func PairVal(head, tail Value) Value {
	return Value{Tag: VTPair, Data: &Pair{Head: head, Tail: tail}}
}

// Closure is a user-defined function: parameter names, an unevaluated body
// form, and the environment captured by reference at the definition site.
type Closure struct {
	Params []string
	Body   Value
	Env    *Env
}

// Builtin is a native operator. Fn receives the interpreter so that
// higher-order builtins (map, filter, reduce) can re-enter the evaluator.
// Each builtin validates its own argument count and types.
type Builtin struct {
	Name string
	Fn   func(ip *Interp, args []Value) Value
}

// valueEq implements the `=?` notion of equality: numbers compare
// numerically across Int/Num, booleans and nil compare by kind, and
// pairs, closures, and builtins compare by identity.
func valueEq(a, b Value) bool {
	if isNumber(a) && isNumber(b) {
		return numOf(a) == numOf(b)
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTNil:
		return true
	case VTSym:
		return a.Data.(string) == b.Data.(string)
	case VTPair, VTClosure, VTBuiltin:
		return a.Data == b.Data
	}
	return false
}

func isNumber(v Value) bool { return v.Tag == VTInt || v.Tag == VTNum }

// numOf reads a numeric Value as float64. Callers must check isNumber.
func numOf(v Value) float64 {
	if v.Tag == VTInt {
		return float64(v.Data.(int64))
	}
	return v.Data.(float64)
}

// isTruthy mirrors the truth rule used by `not`: False, nil, and numeric
// zero are not-true; everything else is.
func isTruthy(v Value) bool {
	switch v.Tag {
	case VTBool:
		return v.Data.(bool)
	case VTNil:
		return false
	case VTInt:
		return v.Data.(int64) != 0
	case VTNum:
		return v.Data.(float64) != 0
	}
	return true
}
