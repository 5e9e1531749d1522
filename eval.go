// eval.go — the tree-walking evaluator: dispatch, special forms, and the
// call engine. Failures panic with a typed error (see interp.go); nothing
// in here returns an error value.
package slip

// eval is the recursive core. Dispatch order: self-evaluating values,
// forms (special forms before application), then bare symbols.
func (ip *Interp) eval(tree Value, env *Env) Value {
	ip.depth++
	defer func() { ip.depth-- }()
	if ip.depth > ip.MaxDepth {
		fail("recursion depth ceiling exceeded (%d)", ip.MaxDepth)
	}

	switch tree.Tag {
	case VTInt, VTNum, VTBool, VTNil, VTPair, VTClosure, VTBuiltin:
		return tree
	case VTSym:
		v, err := env.Get(tree.Data.(string))
		if err != nil {
			panic(err)
		}
		return v
	case VTForm:
		return ip.evalForm(tree.Data.([]Value), env)
	}
	fail("cannot evaluate malformed tree")
	return Value{}
}

func (ip *Interp) evalForm(items []Value, env *Env) Value {
	if len(items) == 0 {
		fail("cannot evaluate an empty form")
	}
	head := items[0]
	if head.Tag == VTInt || head.Tag == VTNum {
		fail("cannot apply a number")
	}

	if head.Tag == VTSym {
		switch head.Data.(string) {
		case "function":
			return ip.evalFunction(items, env)
		case defineTok:
			return ip.evalDefine(items, env)
		case "if":
			return ip.evalIf(items, env)
		case "and":
			return ip.evalAnd(items, env)
		case "or":
			return ip.evalOr(items, env)
		case "del":
			return ip.evalDel(items, env)
		case "let":
			return ip.evalLet(items, env)
		case "set!":
			return ip.evalSet(items, env)
		}
	}

	// Application: evaluate the head, then every argument left to right.
	fn := ip.eval(head, env)
	args := make([]Value, 0, len(items)-1)
	for _, it := range items[1:] {
		args = append(args, ip.eval(it, env))
	}
	return ip.apply(fn, args)
}

// apply invokes a Closure (one fresh child frame of its captured env,
// exact arity) or a Builtin (validates its own arguments).
func (ip *Interp) apply(fn Value, args []Value) Value {
	switch fn.Tag {
	case VTClosure:
		cl := fn.Data.(*Closure)
		if len(args) != len(cl.Params) {
			fail("arity mismatch: expected %d arguments, got %d", len(cl.Params), len(args))
		}
		frame := NewEnv(cl.Env)
		for i, p := range cl.Params {
			frame.Define(p, args[i])
		}
		return ip.eval(cl.Body, frame)
	case VTBuiltin:
		return fn.Data.(*Builtin).Fn(ip, args)
	}
	fail("cannot apply a non-callable value")
	return Value{}
}

// paramNames checks that every element of a parameter form is a symbol.
func paramNames(items []Value) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		if it.Tag != VTSym {
			fail("function parameter must be a symbol")
		}
		names = append(names, it.Data.(string))
	}
	return names
}

// (function (param...) body) — produces a Closure capturing env by
// reference; the body is not evaluated.
func (ip *Interp) evalFunction(items []Value, env *Env) Value {
	if len(items) != 3 {
		fail("function: want (function (param...) body)")
	}
	if items[1].Tag != VTForm {
		fail("function: parameter list must be a form")
	}
	cl := &Closure{
		Params: paramNames(items[1].Data.([]Value)),
		Body:   items[2],
		Env:    env,
	}
	return Value{Tag: VTClosure, Data: cl}
}

// (:= name expr) binds name in the current frame; (:= (name param...)
// body) is function-definition shorthand. Returns the bound value.
func (ip *Interp) evalDefine(items []Value, env *Env) Value {
	if len(items) != 3 {
		fail("%s: want (%s target expr)", defineTok, defineTok)
	}
	switch target := items[1]; target.Tag {
	case VTSym:
		v := ip.eval(items[2], env)
		env.Define(target.Data.(string), v)
		return v
	case VTForm:
		sig := target.Data.([]Value)
		if len(sig) == 0 || sig[0].Tag != VTSym {
			fail("%s: function shorthand wants (name param...)", defineTok)
		}
		cl := &Closure{
			Params: paramNames(sig[1:]),
			Body:   items[2],
			Env:    env,
		}
		v := Value{Tag: VTClosure, Data: cl}
		env.Define(sig[0].Data.(string), v)
		return v
	}
	fail("%s: target must be a symbol or (name param...)", defineTok)
	return Value{}
}

// (if cond then else) — only the exact boolean true takes the first
// branch; any other condition value takes the second.
func (ip *Interp) evalIf(items []Value, env *Env) Value {
	if len(items) != 4 {
		fail("if: want (if cond then else)")
	}
	if valueEq(ip.eval(items[1], env), True) {
		return ip.eval(items[2], env)
	}
	return ip.eval(items[3], env)
}

// (and expr...) — false on the first element not equal to true, without
// evaluating the rest; true otherwise.
func (ip *Interp) evalAnd(items []Value, env *Env) Value {
	for _, it := range items[1:] {
		if !valueEq(ip.eval(it, env), True) {
			return False
		}
	}
	return True
}

// (or expr...) — true on the first element equal to true, without
// evaluating the rest; false otherwise.
func (ip *Interp) evalOr(items []Value, env *Env) Value {
	for _, it := range items[1:] {
		if valueEq(ip.eval(it, env), True) {
			return True
		}
	}
	return False
}

// (del name) removes a binding from the current frame and returns it.
func (ip *Interp) evalDel(items []Value, env *Env) Value {
	if len(items) != 2 || items[1].Tag != VTSym {
		fail("del: want (del name)")
	}
	v, err := env.Remove(items[1].Data.(string))
	if err != nil {
		panic(err)
	}
	return v
}

// (let ((name expr)...) body) — every expr is evaluated in the outer env
// (siblings do not see each other), the results are bound into one child
// frame, and body is evaluated there.
func (ip *Interp) evalLet(items []Value, env *Env) Value {
	if len(items) != 3 || items[1].Tag != VTForm {
		fail("let: want (let ((name expr)...) body)")
	}
	child := NewEnv(env)
	for _, b := range items[1].Data.([]Value) {
		if b.Tag != VTForm {
			fail("let: binding must be (name expr)")
		}
		pair := b.Data.([]Value)
		if len(pair) != 2 || pair[0].Tag != VTSym {
			fail("let: binding must be (name expr)")
		}
		child.Define(pair[0].Data.(string), ip.eval(pair[1], env))
	}
	return ip.eval(items[2], child)
}

// (set! name expr) mutates the nearest existing binding up the chain.
func (ip *Interp) evalSet(items []Value, env *Env) Value {
	if len(items) != 3 || items[1].Tag != VTSym {
		fail("set!: want (set! name expr)")
	}
	v := ip.eval(items[2], env)
	if err := env.Set(items[1].Data.(string), v); err != nil {
		panic(err)
	}
	return v
}
