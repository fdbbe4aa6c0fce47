package supercalc

import "strconv"

// UnOp is a unary operation node.
type UnOp struct {
	op      UnOpKind
	operand *Value
}

// UnOpKind is a unary operator.
type UnOpKind int8

const (
	UnFact UnOpKind = iota // postfix !
)

func (op UnOpKind) String() string {
	switch op {
	case UnFact:
		return "!"
	default:
		return "UnOpKind(" + strconv.Itoa(int(op)) + ")"
	}
}

// maxFact is the largest n for which n! fits in an int64.
const maxFact = 20

func (u *UnOp) eval(ctx *Context) *Value {
	a := Coerce(u.operand, ctx)
	if a.IsErr() {
		return a
	}
	switch u.op {
	case UnFact:
		return factorial(a)
	default:
		panic("supercalc: invalid unary operator " + u.op.String())
	}
}

func factorial(a *Value) *Value {
	n, ok := a.Int()
	if !ok {
		return typeErr("Factorial operand must be an integer, not " + describe(a) + ".")
	}
	if n < 0 {
		return typeErr("Factorial operand must not be negative (" + strconv.FormatInt(n, 10) + ").")
	}
	if n > maxFact {
		return mathErr("Factorial operand too large (" + strconv.FormatInt(n, 10) + " > " + strconv.Itoa(maxFact) + ").")
	}
	r := int64(1)
	for ; n > 1; n-- {
		r *= n
	}
	return Int(r)
}
