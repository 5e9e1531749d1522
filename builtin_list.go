package slip

// ---- list builtins ------------------------------------------------------
//
// A proper chain is Nil or a Pair whose Tail is itself a proper chain.
// Traversal here is iterative so long guest lists do not consume host
// stack. concat structurally copies its inputs before splicing, so later
// mutation of the output can never corrupt an input chain.

func registerListBuiltins() {
	register("pair", func(_ *Interp, args []Value) Value {
		requireArgs("pair", args, 2, 2)
		return PairVal(args[0], args[1])
	})

	register("head", func(_ *Interp, args []Value) Value {
		return requirePair("head", args).Head
	})

	register("tail", func(_ *Interp, args []Value) Value {
		return requirePair("tail", args).Tail
	})

	register("list", func(_ *Interp, args []Value) Value {
		res := Nil
		for i := len(args) - 1; i >= 0; i-- {
			res = PairVal(args[i], res)
		}
		return res
	})

	register("list?", func(_ *Interp, args []Value) Value {
		requireArgs("list?", args, 1, 1)
		return Bool(isChain(args[0]))
	})

	register("length", func(_ *Interp, args []Value) Value {
		requireArgs("length", args, 1, 1)
		return Int(int64(chainLength("length", args[0])))
	})

	register("nth", func(_ *Interp, args []Value) Value {
		requireArgs("nth", args, 2, 2)
		if args[1].Tag != VTInt {
			fail("nth: index must be an integer")
		}
		idx := args[1].Data.(int64)
		if idx < 0 {
			fail("nth: index out of range")
		}
		cur := args[0]
		for {
			if cur.Tag != VTPair {
				fail("nth: index out of range")
			}
			p := cur.Data.(*Pair)
			if idx == 0 {
				return p.Head
			}
			idx--
			cur = p.Tail
		}
	})

	register("concat", func(_ *Interp, args []Value) Value {
		if len(args) == 0 {
			return Nil
		}
		acc := duplicateChain(args[0])
		for _, a := range args[1:] {
			acc = mergeChains(acc, duplicateChain(a))
		}
		return acc
	})

	register("map", func(ip *Interp, args []Value) Value {
		fn, elems := callableAndChain("map", args)
		out := make([]Value, len(elems))
		for i, e := range elems {
			out[i] = ip.apply(fn, []Value{e})
		}
		res := Nil
		for i := len(out) - 1; i >= 0; i-- {
			res = PairVal(out[i], res)
		}
		return res
	})

	register("filter", func(ip *Interp, args []Value) Value {
		fn, elems := callableAndChain("filter", args)
		kept := make([]Value, 0, len(elems))
		for _, e := range elems {
			if valueEq(ip.apply(fn, []Value{e}), True) {
				kept = append(kept, e)
			}
		}
		res := Nil
		for i := len(kept) - 1; i >= 0; i-- {
			res = PairVal(kept[i], res)
		}
		return res
	})

	register("reduce", func(ip *Interp, args []Value) Value {
		requireArgs("reduce", args, 3, 3)
		fn := requireCallable("reduce", args[0])
		acc := args[2]
		for _, e := range chainSlice("reduce", args[1]) {
			acc = ip.apply(fn, []Value{acc, e})
		}
		return acc
	})

	register("begin", func(_ *Interp, args []Value) Value {
		requireArgs("begin", args, 1, -1)
		return args[len(args)-1]
	})

	register("factorial", func(_ *Interp, args []Value) Value {
		requireArgs("factorial", args, 1, 1)
		if args[0].Tag != VTInt || args[0].Data.(int64) < 1 {
			fail("factorial: want a positive integer")
		}
		return Int(fact(args[0].Data.(int64)))
	})
}

// fact recurses to the base case of 1.
func fact(n int64) int64 {
	if n == 1 {
		return 1
	}
	return n * fact(n-1)
}

func requirePair(name string, args []Value) *Pair {
	requireArgs(name, args, 1, 1)
	if args[0].Tag != VTPair {
		fail("%s: want a pair, got %s", name, tagName(args[0].Tag))
	}
	return args[0].Data.(*Pair)
}

func requireCallable(name string, v Value) Value {
	if v.Tag != VTClosure && v.Tag != VTBuiltin {
		fail("%s: want a function, got %s", name, tagName(v.Tag))
	}
	return v
}

func callableAndChain(name string, args []Value) (Value, []Value) {
	requireArgs(name, args, 2, 2)
	return requireCallable(name, args[0]), chainSlice(name, args[1])
}

// isChain reports whether v is a well-formed Nil-terminated chain.
func isChain(v Value) bool {
	for v.Tag == VTPair {
		v = v.Data.(*Pair).Tail
	}
	return v.Tag == VTNil
}

// chainLength counts chain elements, failing on any non-chain value
// (including a dotted tail).
func chainLength(name string, v Value) int {
	n := 0
	for v.Tag == VTPair {
		n++
		v = v.Data.(*Pair).Tail
	}
	if v.Tag != VTNil {
		fail("%s: want a list, got %s", name, tagName(v.Tag))
	}
	return n
}

// chainSlice collects a chain's elements in order, failing on non-chains.
func chainSlice(name string, v Value) []Value {
	var out []Value
	for v.Tag == VTPair {
		p := v.Data.(*Pair)
		out = append(out, p.Head)
		v = p.Tail
	}
	if v.Tag != VTNil {
		fail("%s: want a list, got %s", name, tagName(v.Tag))
	}
	return out
}

// duplicateChain structurally copies a chain cell by cell.
func duplicateChain(v Value) Value {
	if v.Tag == VTNil {
		return Nil
	}
	if v.Tag != VTPair {
		fail("concat: want a list, got %s", tagName(v.Tag))
	}
	p := v.Data.(*Pair)
	head := &Pair{Head: p.Head}
	last := head
	for p.Tail.Tag == VTPair {
		p = p.Tail.Data.(*Pair)
		next := &Pair{Head: p.Head}
		last.Tail = Value{Tag: VTPair, Data: next}
		last = next
	}
	if p.Tail.Tag != VTNil {
		fail("concat: want a list, got %s", tagName(p.Tail.Tag))
	}
	last.Tail = Nil
	return Value{Tag: VTPair, Data: head}
}

// mergeChains splices b onto the end of a. a must be a freshly duplicated
// chain; its last cell is re-linked in place.
func mergeChains(a, b Value) Value {
	if a.Tag == VTNil {
		return b
	}
	p := a.Data.(*Pair)
	for p.Tail.Tag == VTPair {
		p = p.Tail.Data.(*Pair)
	}
	p.Tail = b
	return a
}
