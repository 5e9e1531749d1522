package slip

import "testing"

func Test_Builtin_Addition(t *testing.T) {
	wantInt(t, evalSrc(t, "(+)"), 0)
	wantInt(t, evalSrc(t, "(+ 1 2 3)"), 6)
	wantNum(t, evalSrc(t, "(+ 1 2.5)"), 3.5)
}

func Test_Builtin_Subtraction(t *testing.T) {
	wantInt(t, evalSrc(t, "(- 5)"), -5)
	wantNum(t, evalSrc(t, "(- 5.5)"), -5.5)
	wantInt(t, evalSrc(t, "(- 10 3 2)"), 5)
	wantNum(t, evalSrc(t, "(- 10 0.5)"), 9.5)
}

func Test_Builtin_Multiplication(t *testing.T) {
	wantInt(t, evalSrc(t, "(*)"), 1)
	wantInt(t, evalSrc(t, "(* 2 3 4)"), 24)
	wantNum(t, evalSrc(t, "(* 2 0.5)"), 1)
}

func Test_Builtin_Division_Is_Float(t *testing.T) {
	wantNum(t, evalSrc(t, "(/ 8 2)"), 4)
	wantNum(t, evalSrc(t, "(/ 1 2)"), 0.5)
	wantNum(t, evalSrc(t, "(/ 12 2 3)"), 2)
}

func Test_Builtin_Division_By_Zero(t *testing.T) {
	ip := NewInterp()
	wantEvalError(t, evalErr(t, ip, NewEnv(nil), "(/ 1 0)"))
}

func Test_Builtin_Arithmetic_Type_Errors(t *testing.T) {
	ip := NewInterp()
	env := NewEnv(nil)
	wantEvalError(t, evalErr(t, ip, env, "(+ 1 nil)"))
	wantEvalError(t, evalErr(t, ip, env, "(* @t 2)"))
	wantEvalError(t, evalErr(t, ip, env, "(-)"))
}

func Test_Builtin_Equality(t *testing.T) {
	wantBool(t, evalSrc(t, "(=? 3 3 3)"), true)
	wantBool(t, evalSrc(t, "(=? 3 3 4)"), false)
	wantBool(t, evalSrc(t, "(=? 1 1.0)"), true)
	wantBool(t, evalSrc(t, "(=? @t @t)"), true)
	wantBool(t, evalSrc(t, "(=? nil nil)"), true)
	wantBool(t, evalSrc(t, "(=? 1 @t)"), false)
	wantBool(t, evalSrc(t, "(=? 5)"), true)
}

func Test_Builtin_Ordering(t *testing.T) {
	wantBool(t, evalSrc(t, "(> 3 2 1)"), true)
	wantBool(t, evalSrc(t, "(> 3 3 1)"), false)
	wantBool(t, evalSrc(t, "(>= 3 3 1)"), true)
	wantBool(t, evalSrc(t, "(< 1 2 3)"), true)
	wantBool(t, evalSrc(t, "(< 1 1 3)"), false)
	wantBool(t, evalSrc(t, "(<= 1 1 3)"), true)
	wantBool(t, evalSrc(t, "(< 1 2.5 3)"), true)
}

func Test_Builtin_Not(t *testing.T) {
	wantBool(t, evalSrc(t, "(not @t)"), false)
	wantBool(t, evalSrc(t, "(not @f)"), true)
	wantBool(t, evalSrc(t, "(not nil)"), true)
	wantBool(t, evalSrc(t, "(not 5)"), false)

	ip := NewInterp()
	env := NewEnv(nil)
	wantEvalError(t, evalErr(t, ip, env, "(not)"))
	wantEvalError(t, evalErr(t, ip, env, "(not @t @f)"))
}
