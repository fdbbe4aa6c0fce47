package supercalc

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Builtin is a function implemented in Go.
type Builtin interface {
	// Call evaluates the builtin. The arguments in args are already
	// evaluated, and there are a number of them for which CanCall returned
	// true. Call returns its result or an error Value and must not modify
	// or keep args.
	Call(args ArgList, ctx *Context) *Value

	// CanCall returns whether the builtin can be called with n arguments.
	CanCall(n int) bool
}

// callBuiltin checks arity, evaluates args in the caller's context, and calls
// fn.
func callBuiltin(name string, fn Builtin, args ArgList, ctx *Context) *Value {
	if !fn.CanCall(len(args)) {
		return typeErr("Cannot call " + name + " with " + strconv.Itoa(len(args)) + " argument" + plural(len(args)) + ".")
	}
	evaluated, err := args.Eval(ctx)
	if err != nil {
		return err
	}
	return fn.Call(evaluated, ctx)
}

// bigprec is the precision used for builtins computed with big.Float.
const bigprec = 64

type monadic struct {
	name string
	f    func(float64) float64
}

func (m monadic) Call(args ArgList, ctx *Context) *Value {
	return m.apply(args[0])
}

func (m monadic) apply(v *Value) *Value {
	if v.kind == KindVec {
		return mapVector(len(v.args), func(i int) *Value {
			return m.apply(v.args[i])
		})
	}
	x, ok := v.Real()
	if !ok {
		return typeErr(m.name + " needs a number, not " + describe(v) + ".")
	}
	r := m.f(x)
	if math.IsNaN(r) && !math.IsNaN(x) {
		return ErrValue(&Error{Kind: MathError, Msg: Repr(v, false) + " outside domain of " + m.name + "."})
	}
	return Real(r)
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one real variable into a Builtin. Vectors are
// mapped element by element. If f returns NaN for a non-NaN argument, the call
// fails with a math error naming the argument as outside the domain of name.
func Monadic(name string, f func(float64) float64) Builtin {
	return monadic{name, f}
}

type native struct {
	min, max int
	f        func(args ArgList, ctx *Context) *Value
}

func (n native) Call(args ArgList, ctx *Context) *Value {
	return n.f(args, ctx)
}

func (n native) CanCall(k int) bool {
	return n.min <= k && (n.max < 0 || k <= n.max)
}

// Native wraps a Go function into a Builtin callable with between min and max
// arguments inclusive. If max is negative, there is no upper limit.
func Native(min, max int, f func(args ArgList, ctx *Context) *Value) Builtin {
	return native{min, max, f}
}

// bigmonadic adapts a big.Float function from bigfloat to float64. bigfloat
// panics with big.ErrNaN for arguments outside the function's domain; that
// becomes NaN.
func bigmonadic(f func(z, x *big.Float) *big.Float) func(float64) float64 {
	return func(x float64) (r float64) {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return math.NaN()
		}
		defer func() {
			e := recover()
			if e == nil {
				return
			}
			if err, ok := e.(error); ok && errors.As(err, &big.ErrNaN{}) {
				r = math.NaN()
				return
			}
			panic(e)
		}()
		in := new(big.Float).SetPrec(bigprec).SetFloat64(x)
		out := new(big.Float).SetPrec(bigprec)
		r, _ = f(out, in).Float64()
		return r
	}
}

var (
	bigexp = bigmonadic(bigfloat.Exp)
	bigln  = bigmonadic(bigfloat.Log)
)

func exp(x float64) float64 {
	// Beyond ±1000 the result over- or underflows a float64 anyway.
	if math.IsInf(x, 0) || math.Abs(x) > 1000 {
		return math.Exp(x)
	}
	return bigexp(x)
}

func ln(x float64) float64 {
	switch {
	case x < 0:
		return math.NaN()
	case x == 0, math.IsInf(x, 1):
		return math.Log(x)
	}
	return bigln(x)
}

func log10(x float64) float64 {
	return ln(x) / ln(10)
}

// bigconst evaluates a constant from bigfloat at bigprec.
func bigconst(f func(z *big.Float) *big.Float) float64 {
	r, _ := f(new(big.Float).SetPrec(bigprec)).Float64()
	return r
}

// Pi and E are the values bound to pi and e in a new session.
var (
	Pi = bigconst(bigfloat.Pi)
	E  = bigconst(func(z *big.Float) *big.Float {
		var one big.Float
		one.SetPrec(bigprec).SetFloat64(1)
		return bigfloat.Exp(z, &one)
	})
)

func absolute(args ArgList, ctx *Context) *Value {
	v := args[0]
	switch v.kind {
	case KindInt:
		if v.ival >= 0 {
			return v.Copy()
		}
		if v.ival == math.MinInt64 {
			return overflow()
		}
		return Int(-v.ival)
	case KindReal:
		return Real(math.Abs(v.rval))
	case KindFrac:
		if v.num == math.MinInt64 {
			return overflow()
		}
		if v.num < 0 {
			return Frac(-v.num, v.den)
		}
		return v.Copy()
	case KindVec:
		m, err := magnitude(v.args)
		if err != nil {
			return err
		}
		return Real(m)
	default:
		return typeErr("abs needs a number or vector, not " + describe(v) + ".")
	}
}

// rounding wraps a rounding function into a builtin producing an integer.
func rounding(name string, f func(float64) float64) Builtin {
	var fn func(v *Value) *Value
	fn = func(v *Value) *Value {
		switch v.kind {
		case KindInt:
			return v.Copy()
		case KindVec:
			return mapVector(len(v.args), func(i int) *Value { return fn(v.args[i]) })
		}
		x, ok := v.Real()
		if !ok {
			return typeErr(name + " needs a number, not " + describe(v) + ".")
		}
		r := f(x)
		if r < -(1<<63) || r >= 1<<63 || math.IsNaN(r) {
			return Real(r)
		}
		return Int(int64(r))
	}
	return Native(1, 1, func(args ArgList, ctx *Context) *Value { return fn(args[0]) })
}

func needVector(name string, v *Value) *Value {
	if v.kind != KindVec {
		return typeErr(name + " needs a vector, not " + describe(v) + ".")
	}
	return nil
}

var (
	absfn  = Native(1, 1, absolute)
	elemfn = Native(2, 2, func(args ArgList, ctx *Context) *Value {
		return elem(args[0], args[1])
	})
)

// globalfuncs is the catalogue of builtins bound in every new session. Names
// beginning with @ are internal and can only be reached through templates.
var globalfuncs = map[string]Builtin{
	"abs":   absfn,
	"@abs":  absfn,
	"elem":  elemfn,
	"@elem": elemfn,

	"sqrt":  Monadic("sqrt", math.Sqrt),
	"exp":   Monadic("exp", exp),
	"ln":    Monadic("ln", ln),
	"sin":   Monadic("sin", math.Sin),
	"cos":   Monadic("cos", math.Cos),
	"tan":   Monadic("tan", math.Tan),
	"asin":  Monadic("asin", math.Asin),
	"acos":  Monadic("acos", math.Acos),
	"atan":  Monadic("atan", math.Atan),
	"sinh":  Monadic("sinh", math.Sinh),
	"cosh":  Monadic("cosh", math.Cosh),
	"tanh":  Monadic("tanh", math.Tanh),
	"floor": rounding("floor", math.Floor),
	"ceil":  rounding("ceil", math.Ceil),
	"round": rounding("round", math.Round),

	"log": Native(1, 2, func(args ArgList, ctx *Context) *Value {
		if len(args) == 1 {
			return Monadic("log", log10).Call(args, ctx)
		}
		base, ok := args[1].Real()
		if !ok {
			return typeErr("log base must be a number, not " + describe(args[1]) + ".")
		}
		lb := ln(base)
		if math.IsNaN(lb) || lb == 0 {
			return ErrValue(&Error{Kind: MathError, Msg: Repr(args[1], false) + " outside domain of log base."})
		}
		return Monadic("log", func(x float64) float64 { return ln(x) / lb }).Call(args[:1], ctx)
	}),
	"atan2": Native(2, 2, func(args ArgList, ctx *Context) *Value {
		xs, ok := args.Reals()
		if !ok {
			return typeErr("atan2 needs two numbers.")
		}
		return Real(math.Atan2(xs[0], xs[1]))
	}),

	"dot": Native(2, 2, func(args ArgList, ctx *Context) *Value {
		return binary(BinDot, args[0], args[1])
	}),
	"cross": Native(2, 2, func(args ArgList, ctx *Context) *Value {
		if err := needVector("cross", args[0]); err != nil {
			return err
		}
		if err := needVector("cross", args[1]); err != nil {
			return err
		}
		return cross(args[0].args, args[1].args)
	}),
	"mag": Native(1, 1, func(args ArgList, ctx *Context) *Value {
		if err := needVector("mag", args[0]); err != nil {
			return err
		}
		m, err := magnitude(args[0].args)
		if err != nil {
			return err
		}
		return Real(m)
	}),
	"norm": Native(1, 1, func(args ArgList, ctx *Context) *Value {
		if err := needVector("norm", args[0]); err != nil {
			return err
		}
		return normalize(args[0].args)
	}),
}

// Builtins returns the names of the default builtins, sorted.
func Builtins() []string {
	r := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}
