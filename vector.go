package supercalc

import (
	"math"
	"strconv"
)

func evalVector(elems ArgList, ctx *Context) *Value {
	r, err := elems.Eval(ctx)
	if err != nil {
		return err
	}
	return &Value{kind: KindVec, args: r}
}

func sizeMismatch(a, b ArgList) *Value {
	return typeErr("Vector sizes don't match (" + strconv.Itoa(len(a)) + " and " + strconv.Itoa(len(b)) + ").")
}

// vectorOp applies op where at least one operand is a vector. Two vectors
// combine element by element; a scalar is broadcast across every element of
// the other operand.
func vectorOp(op BinOpKind, l, r *Value) *Value {
	switch {
	case l.kind == KindVec && r.kind == KindVec:
		if len(l.args) != len(r.args) {
			return sizeMismatch(l.args, r.args)
		}
		if op == BinDot {
			return dot(l.args, r.args)
		}
		return mapVector(len(l.args), func(i int) *Value {
			return binary(op, l.args[i], r.args[i])
		})
	case op == BinDot:
		return typeErr("Dot product requires two vectors.")
	case l.kind == KindVec:
		return mapVector(len(l.args), func(i int) *Value {
			return binary(op, l.args[i], r)
		})
	default:
		return mapVector(len(r.args), func(i int) *Value {
			return binary(op, l, r.args[i])
		})
	}
}

// mapVector builds a vector of n elements from f, stopping at the first
// error.
func mapVector(n int, f func(i int) *Value) *Value {
	r := make(ArgList, n)
	for i := range r {
		x := f(i)
		if x.IsErr() {
			return x
		}
		r[i] = x
	}
	return &Value{kind: KindVec, args: r}
}

// dot returns the sum of the element-wise products of a and b, which have the
// same length.
func dot(a, b ArgList) *Value {
	sum := Int(0)
	for i := range a {
		p := binary(BinMul, a[i], b[i])
		if p.IsErr() {
			return p
		}
		sum = binary(BinAdd, sum, p)
		if sum.IsErr() {
			return sum
		}
	}
	return sum
}

// cross returns the cross product of two 3-vectors.
func cross(a, b ArgList) *Value {
	if len(a) != 3 || len(b) != 3 {
		return typeErr("Cross product is only defined for vectors of size 3, not " + strconv.Itoa(len(a)) + " and " + strconv.Itoa(len(b)) + ".")
	}
	// a×b = <a1 b2 - a2 b1, a2 b0 - a0 b2, a0 b1 - a1 b0>
	comp := func(i, j int) *Value {
		x := binary(BinMul, a[i], b[j])
		if x.IsErr() {
			return x
		}
		y := binary(BinMul, a[j], b[i])
		if y.IsErr() {
			return y
		}
		return binary(BinSub, x, y)
	}
	return mapVector(3, func(k int) *Value {
		return comp((k+1)%3, (k+2)%3)
	})
}

func magnitude(a ArgList) (float64, *Value) {
	xs, ok := a.Reals()
	if !ok {
		return 0, typeErr("Vector elements must all be numbers.")
	}
	var sum float64
	for _, x := range xs {
		sum += x * x
	}
	return math.Sqrt(sum), nil
}

// normalize returns a divided by its magnitude.
func normalize(a ArgList) *Value {
	m, err := magnitude(a)
	if err != nil {
		return err
	}
	if m == 0 {
		return mathErr("Cannot normalize a vector of magnitude zero.")
	}
	return mapVector(len(a), func(i int) *Value {
		x, _ := a[i].Real()
		return Real(x / m)
	})
}

// elem returns the element of v at index idx. Negative indices count from the
// end.
func elem(v, idx *Value) *Value {
	if v.kind != KindVec {
		return typeErr("Only vectors can be subscripted, not " + describe(v) + ".")
	}
	i, ok := idx.Int()
	if !ok {
		return typeErr("Vector index must be an integer, not " + describe(idx) + ".")
	}
	n := int64(len(v.args))
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return mathErr("Vector index " + idx.String() + " out of range for size " + strconv.FormatInt(n, 10) + ".")
	}
	return v.args[i].Copy()
}
