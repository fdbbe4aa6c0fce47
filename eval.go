package supercalc

// Evaluate computes the value of v in ctx. The result is a new Value; v is not
// modified. A reference to a function evaluates to itself rather than calling
// the function, so functions can be passed by name. Errors are returned as
// error Values.
func Evaluate(v *Value, ctx *Context) *Value {
	switch v.kind {
	case KindExpr:
		return v.bin.eval(ctx)
	case KindUnary:
		return v.un.eval(ctx)
	case KindCall:
		return v.call.eval(ctx)
	case KindVec:
		return evalVector(v.args, ctx)
	case KindFrac:
		return Frac(v.num, v.den)
	case KindInt, KindReal, KindError:
		return v.Copy()
	case KindVar:
		b := ctx.Lookup(v.name)
		if b == nil {
			return undefined(v.name)
		}
		return b.eval(v.name, ctx)
	case KindPlace:
		return typeErr("Cannot evaluate an unfilled placeholder.")
	case KindEnd, KindNeg:
		return typeErr("Cannot evaluate an incomplete expression.")
	default:
		panic("supercalc: invalid value kind " + v.kind.String())
	}
}

// Coerce is like Evaluate, but where the result would be a reference to a
// name, Coerce resolves it to the value bound to that name. Referring to a
// function where a value is needed is an error.
func Coerce(v *Value, ctx *Context) *Value {
	r := Evaluate(v, ctx)
	if r.kind != KindVar {
		return r
	}
	b := ctx.Lookup(r.name)
	switch {
	case b == nil:
		return undefined(r.name)
	case b.kind == ValueBinding:
		return Coerce(b.val, ctx)
	default:
		return typeErr(r.name + " is a function, not a value.")
	}
}
