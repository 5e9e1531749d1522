package slip

// ---- builtin table ------------------------------------------------------
//
// The table is populated once at package init and never mutated at
// runtime; lookups treat it as the immutable outermost scope.

var builtinTable = map[string]Value{}

func register(name string, fn func(ip *Interp, args []Value) Value) {
	builtinTable[name] = Value{Tag: VTBuiltin, Data: &Builtin{Name: name, Fn: fn}}
}

func init() {
	registerCoreBuiltins()
	registerListBuiltins()
}

// ---- arithmetic / comparison builtins -----------------------------------

func registerCoreBuiltins() {
	builtinTable["@t"] = True
	builtinTable["@f"] = False
	builtinTable["nil"] = Nil

	register("+", func(_ *Interp, args []Value) Value {
		return foldNumeric("+", Int(0), args,
			func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b })
	})

	register("-", func(_ *Interp, args []Value) Value {
		requireArgs("-", args, 1, -1)
		if len(args) == 1 {
			n := requireNumber("-", args[0])
			if n.Tag == VTInt {
				return Int(-n.Data.(int64))
			}
			return Num(-n.Data.(float64))
		}
		rest := foldNumeric("-", Int(0), args[1:],
			func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b })
		return foldNumeric("-", args[0], []Value{rest},
			func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b })
	})

	register("*", func(_ *Interp, args []Value) Value {
		return foldNumeric("*", Int(1), args,
			func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b })
	})

	register("/", func(_ *Interp, args []Value) Value {
		requireArgs("/", args, 1, -1)
		res := numOf(requireNumber("/", args[0]))
		for _, a := range args[1:] {
			d := numOf(requireNumber("/", a))
			if d == 0 {
				fail("/: division by zero")
			}
			res /= d
		}
		return Num(res)
	})

	register("=?", func(_ *Interp, args []Value) Value {
		requireArgs("=?", args, 1, -1)
		for _, a := range args[1:] {
			if !valueEq(a, args[0]) {
				return False
			}
		}
		return True
	})

	register(">", compareBuiltin(">", func(a, b float64) bool { return a > b }))
	register(">=", compareBuiltin(">=", func(a, b float64) bool { return a >= b }))
	register("<", compareBuiltin("<", func(a, b float64) bool { return a < b }))
	register("<=", compareBuiltin("<=", func(a, b float64) bool { return a <= b }))

	register("not", func(_ *Interp, args []Value) Value {
		requireArgs("not", args, 1, 1)
		return Bool(!isTruthy(args[0]))
	})
}

// requireArgs validates the argument count; max < 0 means unbounded.
func requireArgs(name string, args []Value, min, max int) {
	if len(args) < min || (max >= 0 && len(args) > max) {
		if min == max {
			fail("%s: want exactly %d argument(s), got %d", name, min, len(args))
		}
		fail("%s: want at least %d argument(s), got %d", name, min, len(args))
	}
}

func requireNumber(name string, v Value) Value {
	if !isNumber(v) {
		fail("%s: want a number, got %s", name, tagName(v.Tag))
	}
	return v
}

// foldNumeric folds args onto base, staying in exact int64 arithmetic
// until a Num operand appears, at which point the accumulator converts to
// float64 for the rest of the fold.
func foldNumeric(name string, base Value, args []Value, iop func(a, b int64) int64, fop func(a, b float64) float64) Value {
	acc := requireNumber(name, base)
	for _, a := range args {
		n := requireNumber(name, a)
		if acc.Tag == VTInt && n.Tag == VTInt {
			acc = Int(iop(acc.Data.(int64), n.Data.(int64)))
			continue
		}
		acc = Num(fop(numOf(acc), numOf(n)))
	}
	return acc
}

// compareBuiltin builds an ordering builtin that checks ok across every
// consecutive argument pair.
func compareBuiltin(name string, ok func(a, b float64) bool) func(*Interp, []Value) Value {
	return func(_ *Interp, args []Value) Value {
		requireArgs(name, args, 1, -1)
		for i := 0; i+1 < len(args); i++ {
			a := numOf(requireNumber(name, args[i]))
			b := numOf(requireNumber(name, args[i+1]))
			if !ok(a, b) {
				return False
			}
		}
		return True
	}
}

func tagName(t ValueTag) string {
	switch t {
	case VTInt:
		return "integer"
	case VTNum:
		return "float"
	case VTBool:
		return "boolean"
	case VTSym:
		return "symbol"
	case VTNil:
		return "nil"
	case VTPair:
		return "pair"
	case VTClosure:
		return "function"
	case VTBuiltin:
		return "builtin"
	case VTForm:
		return "form"
	}
	return "unknown"
}
