package supercalc

import "math"

// Value is a node in a parsed expression and also the result of evaluating
// one. Exactly one payload field is meaningful for each kind. A Value owns
// everything it points to; Copy is always deep.
type Value struct {
	kind ValueKind

	ival int64
	rval float64
	// num and den are a fraction reduced to lowest terms with den > 1.
	num, den int64

	bin  *BinOp
	un   *UnOp
	call *Call
	name string
	idx  int
	args ArgList
	err  *Error
}

// ValueKind is the variant of a Value.
type ValueKind int8

const (
	KindNone ValueKind = iota

	KindEnd   // end of a statement or group; only seen while parsing
	KindError // err
	KindNeg   // leading minus sign; only seen while parsing
	KindInt   // ival
	KindReal  // rval
	KindFrac  // num / den
	KindExpr  // bin
	KindUnary // un
	KindCall  // call
	KindVar   // name
	KindVec   // args
	KindPlace // idx, a hole in a Template
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=ValueKind -trimprefix=Kind
//go:generate go mod tidy

// End returns the end-of-input sentinel.
func End() *Value {
	return &Value{kind: KindEnd}
}

func negMarker() *Value {
	return &Value{kind: KindNeg}
}

// ErrValue wraps an error into a Value.
func ErrValue(err *Error) *Value {
	return &Value{kind: KindError, err: err}
}

// Int returns an integer Value.
func Int(n int64) *Value {
	return &Value{kind: KindInt, ival: n}
}

// Real returns a real Value.
func Real(x float64) *Value {
	return &Value{kind: KindReal, rval: x}
}

// Frac returns the fraction num/den reduced to lowest terms. If the
// denominator reduces to 1, the result is an integer. A zero denominator
// produces a math error.
func Frac(num, den int64) *Value {
	if den == 0 {
		return divZero()
	}
	n, d, ok := reduce(num, den)
	if !ok {
		return overflow()
	}
	if d == 1 {
		return Int(n)
	}
	return &Value{kind: KindFrac, num: n, den: d}
}

// Var returns a reference to the variable or function called name.
func Var(name string) *Value {
	return &Value{kind: KindVar, name: name}
}

// Vec returns a vector of the given elements. The vector takes ownership of
// them.
func Vec(elems ...*Value) *Value {
	return &Value{kind: KindVec, args: ArgList(elems)}
}

// Expr returns the binary operation l op r, taking ownership of l and r.
func Expr(op BinOpKind, l, r *Value) *Value {
	return &Value{kind: KindExpr, bin: &BinOp{op: op, left: l, right: r}}
}

// Unary returns the unary operation op applied to a.
func Unary(op UnOpKind, a *Value) *Value {
	return &Value{kind: KindUnary, un: &UnOp{op: op, operand: a}}
}

// CallOf returns a call of callee with unevaluated arguments args.
func CallOf(callee *Value, args ArgList) *Value {
	return &Value{kind: KindCall, call: &Call{callee: callee, args: args}}
}

// Placeholder returns the i'th hole of a Template.
func Placeholder(i int) *Value {
	return &Value{kind: KindPlace, idx: i}
}

// Kind returns the variant of v.
func (v *Value) Kind() ValueKind {
	return v.kind
}

// IsErr returns whether v is an error.
func (v *Value) IsErr() bool {
	return v.kind == KindError
}

// Err returns the error v holds, or nil if v is not an error.
func (v *Value) Err() *Error {
	if v.kind != KindError {
		return nil
	}
	return v.err
}

// Int returns v as an int64 if v is an integer.
func (v *Value) Int() (int64, bool) {
	return v.ival, v.kind == KindInt
}

// Frac returns the numerator and denominator of v if v is a fraction.
func (v *Value) Frac() (num, den int64, ok bool) {
	return v.num, v.den, v.kind == KindFrac
}

// Real returns v converted to a float64 if v is an integer, real, or
// fraction.
func (v *Value) Real() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.ival), true
	case KindReal:
		return v.rval, true
	case KindFrac:
		return float64(v.num) / float64(v.den), true
	default:
		return math.NaN(), false
	}
}

// Name returns the name of a variable.
func (v *Value) Name() string {
	return v.name
}

// Elems returns a copy of the elements of a vector, or nil for any other kind.
func (v *Value) Elems() []*Value {
	if v.kind != KindVec {
		return nil
	}
	return v.args.Copy()
}

// isNumber returns whether v is an integer, real, or fraction.
func (v *Value) isNumber() bool {
	switch v.kind {
	case KindInt, KindReal, KindFrac:
		return true
	}
	return false
}

// Copy returns a deep copy of v.
func (v *Value) Copy() *Value {
	r := &Value{kind: v.kind}
	switch v.kind {
	case KindEnd, KindNeg:
		// no payload
	case KindError:
		r.err = v.err.copy()
	case KindInt:
		r.ival = v.ival
	case KindReal:
		r.rval = v.rval
	case KindFrac:
		r.num, r.den = v.num, v.den
	case KindExpr:
		r.bin = &BinOp{op: v.bin.op, left: v.bin.left.Copy(), right: v.bin.right.Copy()}
	case KindUnary:
		r.un = &UnOp{op: v.un.op, operand: v.un.operand.Copy()}
	case KindCall:
		r.call = &Call{callee: v.call.callee.Copy(), args: v.call.args.Copy()}
	case KindVar:
		r.name = v.name
	case KindVec:
		r.args = v.args.Copy()
	case KindPlace:
		r.idx = v.idx
	default:
		panic("supercalc: invalid value kind " + v.kind.String())
	}
	return r
}

// Equal reports whether v and w are the same tree. Reals compare by value, so
// NaN is not equal to itself.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == w
	}
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindEnd, KindNeg:
		return true
	case KindError:
		return v.err.Kind == w.err.Kind && v.err.Msg == w.err.Msg
	case KindInt:
		return v.ival == w.ival
	case KindReal:
		return v.rval == w.rval
	case KindFrac:
		return v.num == w.num && v.den == w.den
	case KindExpr:
		return v.bin.op == w.bin.op && v.bin.left.Equal(w.bin.left) && v.bin.right.Equal(w.bin.right)
	case KindUnary:
		return v.un.op == w.un.op && v.un.operand.Equal(w.un.operand)
	case KindCall:
		return v.call.callee.Equal(w.call.callee) && v.call.args.equal(w.call.args)
	case KindVar:
		return v.name == w.name
	case KindVec:
		return v.args.equal(w.args)
	case KindPlace:
		return v.idx == w.idx
	default:
		panic("supercalc: invalid value kind " + v.kind.String())
	}
}

// String returns the expression text of v.
func (v *Value) String() string {
	return Repr(v, false)
}
