package supercalc

// Call is a function call node. The callee is resolved when the call is
// evaluated, so it may be any expression that evaluates to a function
// reference, including another call.
type Call struct {
	callee *Value
	args   ArgList
}

func (c *Call) eval(ctx *Context) *Value {
	f := Evaluate(c.callee, ctx)
	if f.IsErr() {
		return f
	}
	if f.kind != KindVar {
		return typeErr("Cannot call " + describe(f) + ".")
	}
	b := ctx.Lookup(f.name)
	if b == nil {
		return undefined(f.name)
	}
	switch b.kind {
	case FunctionBinding:
		return b.fn.Call(f.name, c.args, ctx)
	case BuiltinBinding:
		return callBuiltin(f.name, b.blt, c.args, ctx)
	default:
		return typeErr(f.name + " is not a function.")
	}
}
