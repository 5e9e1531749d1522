package slip

import (
	"strconv"
	"strings"
)

// FormatValue renders a Value the way the REPL prints results. Proper
// chains render as (1 2 3); a dotted pair renders as (1 . 2).
func FormatValue(v Value) string {
	switch v.Tag {
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return formatFloat(v.Data.(float64))
	case VTBool:
		if v.Data.(bool) {
			return "@t"
		}
		return "@f"
	case VTSym:
		return v.Data.(string)
	case VTNil:
		return "nil"
	case VTPair:
		return formatChain(v)
	case VTClosure:
		return "<function>"
	case VTBuiltin:
		return "<builtin " + v.Data.(*Builtin).Name + ">"
	case VTForm:
		items := v.Data.([]Value)
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = FormatValue(it)
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return "<unknown>"
}

// formatFloat keeps a visible fractional marker so floats never print as
// integers.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func formatChain(v Value) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for v.Tag == VTPair {
		p := v.Data.(*Pair)
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(FormatValue(p.Head))
		first = false
		v = p.Tail
	}
	if v.Tag != VTNil {
		b.WriteString(" . ")
		b.WriteString(FormatValue(v))
	}
	b.WriteByte(')')
	return b.String()
}
