// interp.go — public surface of the Slip runtime.
//
// Hosts use three entry points: Tokenize (lexer.go), Parse (parser.go),
// and Interp.Eval below; NewEnv(nil) makes a fresh top-level environment.
// Interp.EvalSource composes all three. Failures come back as one of the
// three error kinds in errors.go; internally the evaluator panics with
// the typed error and Eval recovers it at this boundary.
package slip

import "fmt"

// Env is a lexical environment frame with a parent link. Lookups walk the
// chain from innermost to outermost and then fall back to the immutable
// builtin table. A Closure holds a shared reference to the Env active at
// its definition site, so a frame may outlive the call that created it.
//
// An Env is not safe for concurrent mutation; one logical evaluation
// thread per interpreter instance.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a new frame with the given parent (which may be nil).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Value)}
}

// Get retrieves the nearest visible binding for name, falling back to the
// builtin table. Fails with *NameError if absent everywhere.
func (e *Env) Get(name string) (Value, error) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.table[name]; ok {
			return v, nil
		}
	}
	if v, ok := builtinTable[name]; ok {
		return v, nil
	}
	return Value{}, &NameError{Name: name}
}

// Define binds name to v in the current frame, shadowing any outer binding.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Set updates the nearest existing binding of name to v. It never creates
// a binding and never touches the builtin table; if no frame in the chain
// binds name it fails with *NameError.
func (e *Env) Set(name string, v Value) error {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.table[name]; ok {
			s.table[name] = v
			return nil
		}
	}
	return &NameError{Name: name}
}

// Remove deletes and returns the binding for name from the current frame
// only; parent frames are not searched.
func (e *Env) Remove(name string) (Value, error) {
	if v, ok := e.table[name]; ok {
		delete(e.table, name)
		return v, nil
	}
	return Value{}, &NameError{Name: name}
}

// DefaultMaxDepth bounds evaluator recursion (and with it guest-language
// recursion, which maps one-to-one onto evaluator frames).
const DefaultMaxDepth = 10000

// Interp evaluates parsed expression trees. The zero value is not ready;
// use NewInterp. MaxDepth may be adjusted before evaluation; exceeding it
// fails with a recoverable *EvalError rather than exhausting the host
// stack.
type Interp struct {
	MaxDepth int
	depth    int
}

// NewInterp returns an interpreter with the default recursion ceiling.
func NewInterp() *Interp {
	return &Interp{MaxDepth: DefaultMaxDepth}
}

// Eval interprets a parsed tree against env. It returns the resulting
// Value, or one of *SyntaxError, *NameError, *EvalError. Bindings made
// before a later sub-expression fails are not rolled back.
func (ip *Interp) Eval(tree Value, env *Env) (v Value, err error) {
	ip.depth = 0
	defer catchTyped(&v, &err)
	return ip.eval(tree, env), nil
}

// EvalSource tokenizes, parses, and evaluates src in env.
func (ip *Interp) EvalSource(src string, env *Env) (Value, error) {
	tree, err := Parse(Tokenize(src))
	if err != nil {
		return Value{}, err
	}
	return ip.Eval(tree, env)
}

// Apply invokes a callable Value (Closure or Builtin) with the given
// arguments, for hosts that hold a function value directly.
func (ip *Interp) Apply(fn Value, args []Value) (v Value, err error) {
	ip.depth = 0
	defer catchTyped(&v, &err)
	return ip.apply(fn, args), nil
}

// catchTyped recovers a panicked typed error at the public boundary and
// re-panics anything else.
func catchTyped(v *Value, err *error) {
	if r := recover(); r != nil {
		switch e := r.(type) {
		case *SyntaxError:
			*err = e
		case *NameError:
			*err = e
		case *EvalError:
			*err = e
		default:
			panic(r)
		}
		*v = Value{}
	}
}

// fail raises an *EvalError through the panic channel; Eval/Apply recover
// it at the public boundary.
func fail(format string, args ...interface{}) {
	panic(&EvalError{Msg: fmt.Sprintf(format, args...)})
}
