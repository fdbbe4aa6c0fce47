package supercalc

import "strconv"

// BinOp is a binary operation node.
type BinOp struct {
	op          BinOpKind
	left, right *Value
}

// BinOpKind is a binary operator.
type BinOpKind int8

const (
	binUnknown BinOpKind = iota

	BinAdd // +
	BinSub // -
	BinMul // * or ×
	BinDiv // / or ÷
	BinMod // %
	BinPow // ^
	BinDot // . or ·, the dot product of two vectors

	// binEnd is returned by the operator scanner at the end of a statement.
	binEnd
)

type opinfo struct {
	text   string
	pretty string
	name   string
	prec   int8
}

var binops = [...]opinfo{
	BinAdd: {"+", "+", "add", 1},
	BinSub: {"-", "-", "sub", 1},
	BinMul: {"*", "×", "mul", 2},
	BinDiv: {"/", "÷", "div", 2},
	BinMod: {"%", "%", "mod", 2},
	BinPow: {"^", "^", "pow", 3},
	BinDot: {".", "·", "dot", 2},
}

func (op BinOpKind) String() string {
	if op <= binUnknown || op >= binEnd {
		return "BinOpKind(" + strconv.Itoa(int(op)) + ")"
	}
	return binops[op].text
}

// Prec returns the precedence of op. Operators with higher precedence bind
// more tightly.
func (op BinOpKind) Prec() int {
	return int(binops[op].prec)
}

// cmpOps compares the binding of an operator already in a tree with a new
// operator following it. A negative result means the new operator binds more
// tightly and belongs below the existing one. Exponentiation is
// right-associative; everything else associates to the left.
func cmpOps(existing, next BinOpKind) int {
	if existing == BinPow && next == BinPow {
		return -1
	}
	return existing.Prec() - next.Prec()
}

// nextOp consumes the next binary operator. At the end of input, or at sep or
// end, it consumes nothing and returns binEnd. If the next rune is not an
// operator, it returns binUnknown.
func (c *Cursor) nextOp(sep, end rune) BinOpKind {
	c.trimSpaces()
	r := c.Peek()
	if r == 0 || r == end || (sep != 0 && r == sep) {
		return binEnd
	}
	var op BinOpKind
	switch r {
	case '+':
		op = BinAdd
	case '-':
		op = BinSub
	case '*', '×':
		op = BinMul
	case '/', '÷':
		op = BinDiv
	case '%':
		op = BinMod
	case '^':
		op = BinPow
	case '.', '·':
		op = BinDot
	default:
		return binUnknown
	}
	c.Next()
	return op
}

// splice adds op and its right operand val to the tree rooted at tree, where
// prev is the most recently added node and is still missing its right operand.
// It returns the new root and the node now missing its right operand.
//
// The new node goes as deep along the right spine as it can while the
// existing operators bind more loosely. Where it stops, it either takes over
// the subtree there as its left operand, or becomes the right operand of prev
// with val as its own left operand.
func splice(tree, prev *BinOp, op BinOpKind, val *Value) (*BinOp, *BinOp) {
	parent, cur := tree, tree
	for cur.right != nil && cmpOps(cur.op, op) < 0 {
		parent = cur
		cur = cur.right.bin
	}
	var next *BinOp
	if cmpOps(cur.op, op) >= 0 {
		if cur == tree {
			next = &BinOp{op: op, left: &Value{kind: KindExpr, bin: tree}}
			tree = next
		} else {
			next = &BinOp{op: op, left: parent.right}
			parent.right = &Value{kind: KindExpr, bin: next}
		}
		prev.right = val
	} else {
		next = &BinOp{op: op, left: val}
		prev.right = &Value{kind: KindExpr, bin: next}
	}
	return tree, next
}

func (b *BinOp) eval(ctx *Context) *Value {
	l := Coerce(b.left, ctx)
	if l.IsErr() {
		return l
	}
	r := Coerce(b.right, ctx)
	if r.IsErr() {
		return r
	}
	return binary(b.op, l, r)
}

// binary applies op to two evaluated operands.
func binary(op BinOpKind, l, r *Value) *Value {
	if l.kind == KindVec || r.kind == KindVec {
		return vectorOp(op, l, r)
	}
	if !l.isNumber() {
		return typeErr("Left operand of " + op.String() + " must be a number, not " + describe(l) + ".")
	}
	if !r.isNumber() {
		return typeErr("Right operand of " + op.String() + " must be a number, not " + describe(r) + ".")
	}
	if op == BinDot {
		return typeErr("Dot product requires two vectors.")
	}
	return arith(op, l, r)
}

// describe names the kind of an evaluated value for error messages.
func describe(v *Value) string {
	switch v.kind {
	case KindInt:
		return "an integer"
	case KindReal:
		return "a real"
	case KindFrac:
		return "a fraction"
	case KindVec:
		return "a vector"
	case KindVar:
		return "the function " + v.name
	default:
		return "a " + v.kind.String()
	}
}
