package supercalc

import (
	"fmt"
	"regexp"
	"testing"
)

// diff finds the first in-order node of v that differs from w, or nil, nil if
// the two trees are equal. If either node is KindNone, it is returned.
func (v *Value) diff(w *Value) (*Value, *Value) {
	if v == nil || w == nil {
		if v != w {
			return v, w
		}
		return nil, nil
	}
	if v.kind == KindNone || w.kind == KindNone || v.kind != w.kind {
		return v, w
	}
	switch v.kind {
	case KindExpr:
		if v.bin.op != w.bin.op {
			return v, w
		}
		if d, e := v.bin.left.diff(w.bin.left); d != nil || e != nil {
			return d, e
		}
		return v.bin.right.diff(w.bin.right)
	case KindUnary:
		if v.un.op != w.un.op {
			return v, w
		}
		return v.un.operand.diff(w.un.operand)
	case KindCall:
		if d, e := v.call.callee.diff(w.call.callee); d != nil || e != nil {
			return d, e
		}
		return v.call.args.diff(w.call.args, v, w)
	case KindVec:
		return v.args.diff(w.args, v, w)
	default:
		if !v.Equal(w) {
			return v, w
		}
	}
	return nil, nil
}

func (args ArgList) diff(other ArgList, v, w *Value) (*Value, *Value) {
	if len(args) != len(other) {
		return v, w
	}
	for i := range args {
		if d, e := args[i].diff(other[i]); d != nil || e != nil {
			return d, e
		}
	}
	return nil, nil
}

func mustParse(t *testing.T, src string) *Value {
	t.Helper()
	v := Parse(src)
	if v.IsErr() {
		t.Fatalf("%q failed to parse: %v", src, v.Err())
	}
	return v
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(x)", "x"},
		{"multi", "((((x))))", "x"},
		{"plus", "+x", "x"},
		{"negneg", "--x", "x"},
		{"spaces", " x\t+  y ", "x+y"},

		{"altmul", "x×y", "x*y"},
		{"altdiv", "x÷y", "x/y"},
		{"altdot", "x·y", "x.y"},

		{"add4", "w+x+y+z", "((w+x)+y)+z"},
		{"sub4", "w-x-y-z", "((w-x)-y)-z"},
		{"mul4", "w*x*y*z", "((w*x)*y)*z"},
		{"div4", "w/x/y/z", "((w/x)/y)/z"},
		{"mod4", "w%x%y%z", "((w%x)%y)%z"},
		{"pow4", "w^x^y^z", "w^(x^(y^z))"},
		{"muldiv", "w*x/y%z", "((w*x)/y)%z"},
		{"dotmul", "w.x*y", "(w.x)*y"},
		{"adddot", "w+x.y", "w+(x.y)"},

		{"desc", "w^x*y+z", "((w^x)*y)+z"},
		{"asc", "w+x*y^z", "w+(x*(y^z))"},
		{"descasc", "w^x*y+z+a*b^c", "(((w^x)*y)+z)+(a*(b^c))"},
		{"ascdesc", "w+x*y^z^a*b+c", "(w+((x*(y^(z^a)))*b))+c"},

		{"negpow", "-x^2", "-(x^2)"},
		{"negmul", "-x*y", "(-x)*y"},
		{"negsub", "-x-y", "(-x)-y"},
		{"mulneg", "x*-y", "x*(-y)"},
		{"mulnegadd", "x*-y+z", "(x*(-y))+z"},
		{"powneg", "x^-1", "x^(-1)"},
		{"pownegmul", "x^-y*z", "(x^(-y))*z"},
		{"pownegpow", "x^-y^-z", "x^(-(y^(-z)))"},
		{"subneg", "x - -y", "x-(-y)"},

		{"abs", "|x|", "@abs(x)"},
		{"absneg", "|-x + 1|", "@abs((-x)+1)"},
		{"elem", "v[0]", "@elem(v, 0)"},
		{"elem2", "v[i][j]", "@elem(@elem(v, i), j)"},
		{"callelemfact", "f(x)[0]!", "(@elem(f(x), 0))!"},
		{"callcall", "f(x)(y)", "(f(x))(y)"},
		{"factpow", "x!^2", "(x!)^2"},
		{"factfact", "x!!", "(x!)!"},
		{"negfact", "-3!", "-(3!)"},
		{"vecop", "<1, 2>.<3, 4>", "(<1, 2>) . (<3, 4>)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustParse(t, c.a)
			b := parseTemplateish(t, c.b)
			d, e := a.diff(b)
			if d != nil || e != nil {
				t.Errorf("mismatched trees:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.a, a, d, c.b, b, e)
			}
		})
	}
}

// parseTemplateish parses src allowing @name internal names.
func parseTemplateish(t *testing.T, src string) *Value {
	t.Helper()
	tp, err := ParseTemplate(src)
	if err != nil {
		t.Fatalf("%q failed to parse: %v", src, err)
	}
	if tp.Holes() != 0 {
		t.Fatalf("%q has holes", src)
	}
	return tp.Fill()
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		v    *Value
	}{
		{"int", "42", Int(42)},
		{"real", "4.5", Real(4.5)},
		{"var", "x", Var("x")},
		{"neg", "-3", Expr(BinMul, Int(-1), Int(3))},
		{"prec", "2 + 3 * 4", Expr(BinAdd, Int(2), Expr(BinMul, Int(3), Int(4)))},
		{"vec", "<1, x>", Vec(Int(1), Var("x"))},
		{"emptyvec", "<>", Vec()},
		{"call0", "f()", CallOf(Var("f"), ArgList{})},
		{"call2", "f(1, 2)", CallOf(Var("f"), ArgList{Int(1), Int(2)})},
		{"abs", "|x|", CallOf(Var("@abs"), ArgList{Var("x")})},
		{
			name: "callelemfact",
			src:  "f(x)[0]!",
			v: Unary(UnFact, CallOf(Var("@elem"), ArgList{
				CallOf(Var("f"), ArgList{Var("x")}),
				Int(0),
			})),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := mustParse(t, c.src)
			if d, e := v.diff(c.v); d != nil || e != nil {
				t.Errorf("%q parsed to %v, want %v; differs at %v vs %v", c.src, v, c.v, d, e)
			}
		})
	}
}

// refParse builds the tree for vals joined by ops using shunting-yard, as a
// reference for the tree-splicing parser.
func refParse(vals []string, ops []BinOpKind) *Value {
	out := []*Value{Var(vals[0])}
	var stack []BinOpKind
	reduce := func() {
		op := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		l, r := out[len(out)-2], out[len(out)-1]
		out = append(out[:len(out)-2], Expr(op, l, r))
	}
	for i, op := range ops {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.Prec() < op.Prec() || (top.Prec() == op.Prec() && op == BinPow) {
				break
			}
			reduce()
		}
		stack = append(stack, op)
		out = append(out, Var(vals[i+1]))
	}
	for len(stack) > 0 {
		reduce()
	}
	return out[0]
}

func TestParsePrecedence(t *testing.T) {
	vals := []string{"a", "b", "c", "d"}
	var all []BinOpKind
	for op := BinAdd; op < binEnd; op++ {
		all = append(all, op)
	}
	check := func(ops ...BinOpKind) {
		src := vals[0]
		for i, op := range ops {
			src += " " + op.String() + " " + vals[i+1]
		}
		got := Parse(src)
		if got.IsErr() {
			t.Errorf("%q failed to parse: %v", src, got.Err())
			return
		}
		want := refParse(vals, ops)
		if d, e := got.diff(want); d != nil || e != nil {
			t.Errorf("%q parsed to %v, want %v", src, got, want)
		}
	}
	for _, x := range all {
		for _, y := range all {
			check(x, y)
			for _, z := range all {
				check(x, y, z)
			}
		}
	}
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", " ", "\t\n"} {
		if v := Parse(src); v.Kind() != KindEnd {
			t.Errorf("%q parsed to %v", src, v)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		re   string
	}{
		{"trailingop", "2 +", 4, `(?i)expected a value after the last operator`},
		{"trailingneg", "2 * -", 6, `(?i)expected a value after the last operator`},
		{"emptyparen", "()", 1, `(?i)empty expression before '\)'`},
		{"emptyabs", "||", 1, `(?i)empty expression before '\|'`},
		{"unterminated", "(1 + 2", 7, `(?i)expected '\)' before end of input`},
		{"unterminatedabs", "|x", 3, `(?i)expected '\|'`},
		{"unterminatedcall", "f(x", 4, `(?i)expected '\)'`},
		{"unterminatedvec", "<1, 2", 6, `(?i)expected '>'`},
		{"badop", "2 $ 3", 3, `(?i)unexpected character '\$'`},
		{"badclose", "1 + 2)", 6, `(?i)unexpected character '\)'`},
		{"badstart", "*x", 1, `(?i)unexpected character '\*'`},
		{"trailingcomma", "<1, >", 5, `(?i)expected a value after ','`},
		{"doublecomma", "f(1,,2)", 5, `(?i)unexpected character ','`},
		{"special", "@x", 1, `(?i)unexpected character '@'`},
		{"emptysubscript", "x[]", 2, `(?i)empty subscript`},
		{"numcall", "3(4)", 2, `(?i)unexpected character '\('`},
		{"signonly", "(+)", 3, `(?i)expected a value after sign`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := Parse(c.src)
			if !v.IsErr() {
				t.Fatalf("%q parsed to %v", c.src, v)
			}
			err := v.Err()
			if err.Kind != SyntaxError {
				t.Errorf("wrong error kind from %q: %v", c.src, err.Kind)
			}
			if err.Pos() != c.col {
				t.Errorf("wrong position from %q: want %d, got %d (%v)", c.src, c.col, err.Pos(), err)
			}
			if !regexp.MustCompile(c.re).MatchString(err.Msg) {
				t.Errorf("error message %q does not match %s", err.Msg, c.re)
			}
		})
	}
}

func TestParseValueStops(t *testing.T) {
	cases := []struct {
		src      string
		sep, end rune
		want     string
		rest     string
	}{
		{"1 + 2, 3)", ',', ')', "1 + 2", ", 3)"},
		{"1 + 2) rest", 0, ')', "1 + 2", " rest"},
		{"x > 1", 0, '>', "x", " 1"},
		{"1 + 2", 0, 0, "1 + 2", ""},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			cur := NewCursor(c.src)
			v := ParseValue(cur, c.sep, c.end, nil)
			if v.IsErr() {
				t.Fatalf("%q failed to parse: %v", c.src, v.Err())
			}
			if got := Repr(v, false); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
			if cur.Rest() != c.rest {
				t.Errorf("left %q, want %q", cur.Rest(), c.rest)
			}
		})
	}
}

func TestParseSpecial(t *testing.T) {
	// Parse @ as the number 7.
	special := SpecialFunc(func(cur *Cursor) *Value {
		cur.Next()
		return Int(7)
	})
	cur := NewCursor("@ * 2")
	v := ParseValue(cur, 0, 0, special)
	if want := Expr(BinMul, Int(7), Int(2)); !v.Equal(want) {
		t.Errorf("want %v, got %v", want, v)
	}
}

func TestTemplate(t *testing.T) {
	tp, err := ParseTemplate("@@ + @x * @@")
	if err != nil {
		t.Fatal(err)
	}
	if tp.Holes() != 2 {
		t.Errorf("want 2 holes, got %d", tp.Holes())
	}
	got := tp.Fill(Int(1), Var("y"))
	want := Expr(BinAdd, Int(1), Expr(BinMul, Var("@x"), Var("y")))
	if d, e := got.diff(want); d != nil || e != nil {
		t.Errorf("want %v, got %v", want, got)
	}
	// Filling again must not see the previous values.
	got = tp.Fill(Int(2), Int(3))
	want = Expr(BinAdd, Int(2), Expr(BinMul, Var("@x"), Int(3)))
	if !got.Equal(want) {
		t.Errorf("want %v, got %v", want, got)
	}

	for _, src := range []string{"", "@", "@@ +", "@1"} {
		if _, err := ParseTemplate(src); err == nil {
			t.Errorf("template %q parsed", src)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Fill with the wrong number of values didn't panic")
		}
	}()
	tp.Fill(Int(1))
}

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("2 + 3 * 4")
	f.Add("1×2")
	f.Add("|v[-1]| ^ -2!")
	f.Add("f(<1, 2>, 3/4)")
	f.Fuzz(func(t *testing.T, s string) {
		v := Parse(s)
		if v.IsErr() || v.Kind() == KindEnd {
			return
		}
		r := Repr(v, false)
		w := Parse(r)
		if w.IsErr() {
			t.Fatalf("%q printed as %q which doesn't parse: %v", s, r, w.Err())
		}
		if d, e := v.diff(w); d != nil || e != nil {
			t.Fatalf("%q printed as %q which parses differently: %v vs %v", s, r, d, e)
		}
	})
}

func ExampleParse() {
	v := Parse("2 + 3 * -x^2")
	fmt.Println(v)
	fmt.Println(Repr(v, true))
	// Output:
	// 2 + (3 * (-(x ^ 2)))
	// 2 + (3 × (-(x ^ 2)))
}
