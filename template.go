package supercalc

import "strconv"

// Template is a value with holes. In template source, each @@ is a hole, and
// @name refers to the internal name @name, which ordinary input cannot
// spell.
type Template struct {
	v *Value
	n int
}

// ParseTemplate parses a template.
func ParseTemplate(src string) (*Template, *Error) {
	t := templateSpecial{}
	cur := NewCursor(src)
	v := ParseValue(cur, 0, 0, &t)
	if v.IsErr() {
		return nil, v.err
	}
	if v.kind == KindEnd {
		return nil, &Error{Kind: SyntaxError, Msg: "Empty template."}
	}
	return &Template{v: v, n: t.n}, nil
}

// MustTemplate is like ParseTemplate but panics if the template is invalid.
func MustTemplate(src string) *Template {
	t, err := ParseTemplate(src)
	if err != nil {
		panic("supercalc: invalid template " + strconv.Quote(src) + ": " + err.Error())
	}
	return t
}

// Holes returns the number of placeholders in t.
func (t *Template) Holes() int {
	return t.n
}

// Fill returns a copy of the template with the i'th placeholder replaced by
// vals[i]. Fill takes ownership of vals. It panics if the number of values
// does not match the number of holes.
func (t *Template) Fill(vals ...*Value) *Value {
	if len(vals) != t.n {
		panic("supercalc: template has " + strconv.Itoa(t.n) + " holes, not " + strconv.Itoa(len(vals)))
	}
	return fill(t.v, vals)
}

func fill(v *Value, vals []*Value) *Value {
	switch v.kind {
	case KindPlace:
		return vals[v.idx]
	case KindExpr:
		return Expr(v.bin.op, fill(v.bin.left, vals), fill(v.bin.right, vals))
	case KindUnary:
		return Unary(v.un.op, fill(v.un.operand, vals))
	case KindCall:
		return CallOf(fill(v.call.callee, vals), fillArgs(v.call.args, vals))
	case KindVec:
		return &Value{kind: KindVec, args: fillArgs(v.args, vals)}
	default:
		return v.Copy()
	}
}

func fillArgs(args ArgList, vals []*Value) ArgList {
	r := make(ArgList, len(args))
	for i, a := range args {
		r[i] = fill(a, vals)
	}
	return r
}

// Templates for the syntax that parses into calls of internal builtins.
var absTemplate, elemTemplate *Template

func init() {
	absTemplate = MustTemplate("@abs(@@)")
	elemTemplate = MustTemplate("@elem(@@, @@)")
}
