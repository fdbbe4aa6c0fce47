package supercalc

import "strconv"

// Function is a user-defined function: parameter names and an unevaluated
// body. Functions are immutable once built.
type Function struct {
	params []string
	body   *Value
}

// NewFunction creates a function. It takes ownership of body. Parameter names
// must be unique.
func NewFunction(params []string, body *Value) (*Function, *Value) {
	for i, p := range params {
		for _, q := range params[:i] {
			if p == q {
				return nil, syntaxErr(0, "Parameter "+strconv.Quote(p)+" appears more than once.")
			}
		}
	}
	return &Function{params: append([]string(nil), params...), body: body}, nil
}

// Params returns the parameter names of fn.
func (fn *Function) Params() []string {
	return append([]string(nil), fn.params...)
}

// Body returns a copy of the body of fn.
func (fn *Function) Body() *Value {
	return fn.body.Copy()
}

// Copy returns a deep copy of fn.
func (fn *Function) Copy() *Function {
	return &Function{params: append([]string(nil), fn.params...), body: fn.body.Copy()}
}

// Call invokes fn with unevaluated arguments args from the caller's context.
//
// The arguments are evaluated in ctx, then the body is evaluated in a new
// frame whose parent is ctx. Names in the body that aren't parameters
// therefore resolve against the caller, not against where fn was defined.
func (fn *Function) Call(name string, args ArgList, ctx *Context) *Value {
	if len(args) != len(fn.params) {
		return typeErr("Function " + name + " expects " + strconv.Itoa(len(fn.params)) + " argument" + plural(len(fn.params)) + ", not " + strconv.Itoa(len(args)) + ".")
	}
	evaluated := make(ArgList, len(args))
	for i, a := range args {
		v := Evaluate(a, ctx)
		if v.IsErr() {
			return v
		}
		evaluated[i] = v
	}
	frame, err := ctx.push()
	if err != nil {
		return err
	}
	defer frame.pop()
	for i, v := range evaluated {
		if err := ctx.bind(frame, fn.params[i], v); err != nil {
			return err
		}
	}
	return Evaluate(fn.body, frame)
}
