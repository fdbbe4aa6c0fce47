package supercalc

// ArgList is an ordered list of values, used for call arguments and vector
// elements. An ArgList owns its values.
type ArgList []*Value

// Copy returns a deep copy of the list.
func (args ArgList) Copy() ArgList {
	if args == nil {
		return nil
	}
	r := make(ArgList, len(args))
	for i, v := range args {
		r[i] = v.Copy()
	}
	return r
}

// Eval coerces each value in order. If any evaluation fails, the partial
// results are dropped and the first error is returned.
func (args ArgList) Eval(ctx *Context) (ArgList, *Value) {
	r := make(ArgList, len(args))
	for i, v := range args {
		x := Coerce(v, ctx)
		if x.IsErr() {
			return nil, x
		}
		r[i] = x
	}
	return r, nil
}

// Reals converts every value to a float64. The result is false if any value
// is not a number.
func (args ArgList) Reals() ([]float64, bool) {
	r := make([]float64, len(args))
	for i, v := range args {
		x, ok := v.Real()
		if !ok {
			return nil, false
		}
		r[i] = x
	}
	return r, true
}

func (args ArgList) equal(other ArgList) bool {
	if len(args) != len(other) {
		return false
	}
	for i, v := range args {
		if !v.Equal(other[i]) {
			return false
		}
	}
	return true
}
