package supercalc

import (
	"encoding/xml"
	"math"
	"strconv"
	"strings"
)

// Repr renders v as expression text that parses back to a value that
// evaluates the same way. With pretty set, the text uses Unicode glyphs and
// symbols and rounds reals to 15 significant digits, so it may not parse back
// to the same value.
func Repr(v *Value, pretty bool) string {
	var b strings.Builder
	v.fmt(&b, pretty, true)
	return b.String()
}

// prettyNames are the symbols used for names in pretty output.
var prettyNames = map[string]string{
	"pi":  "π",
	"phi": "φ",
	"inf": "∞",
}

func formatReal(x float64, pretty bool) string {
	switch {
	case math.IsInf(x, 1):
		if pretty {
			return "∞"
		}
		return "inf"
	case math.IsInf(x, -1):
		if pretty {
			return "-∞"
		}
		return "-inf"
	}
	prec := -1
	if pretty {
		prec = 15
	}
	s := strconv.FormatFloat(x, 'g', prec, 64)
	if !strings.ContainsAny(s, ".eN") {
		// Keep reals distinguishable from integers.
		s += ".0"
	}
	return s
}

// negative reports whether v renders with a leading minus sign.
func (v *Value) negative() bool {
	switch v.kind {
	case KindInt:
		return v.ival < 0
	case KindReal:
		return math.Signbit(v.rval) && !math.IsNaN(v.rval)
	case KindFrac:
		return v.num < 0
	}
	return false
}

// isNegation reports whether v is -1 * x, which is how the parser represents
// a leading minus sign.
func (v *Value) isNegation() bool {
	if v.kind != KindExpr || v.bin.op != BinMul {
		return false
	}
	n, ok := v.bin.left.Int()
	return ok && n == -1
}

// fmt writes v to b. Operations and signed numbers that are not at the top
// level are parenthesized.
func (v *Value) fmt(b *strings.Builder, pretty, top bool) {
	if !top && (v.kind == KindExpr || v.kind == KindFrac || v.negative()) {
		b.WriteByte('(')
		defer b.WriteByte(')')
	}
	switch v.kind {
	case KindEnd:
	case KindNeg:
		b.WriteByte('-')
	case KindError:
		b.WriteString(v.err.Error())
	case KindInt:
		b.WriteString(strconv.FormatInt(v.ival, 10))
	case KindReal:
		b.WriteString(formatReal(v.rval, pretty))
	case KindFrac:
		b.WriteString(strconv.FormatInt(v.num, 10))
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(v.den, 10))
	case KindExpr:
		if v.isNegation() {
			b.WriteByte('-')
			v.bin.right.fmt(b, pretty, false)
			return
		}
		v.bin.left.fmt(b, pretty, false)
		b.WriteByte(' ')
		if pretty {
			b.WriteString(binops[v.bin.op].pretty)
		} else {
			b.WriteString(binops[v.bin.op].text)
		}
		b.WriteByte(' ')
		v.bin.right.fmt(b, pretty, false)
	case KindUnary:
		v.un.operand.fmt(b, pretty, false)
		b.WriteString(v.un.op.String())
	case KindCall:
		v.call.fmt(b, pretty)
	case KindVar:
		if s, ok := prettyNames[v.name]; pretty && ok {
			b.WriteString(s)
		} else {
			b.WriteString(v.name)
		}
	case KindVec:
		b.WriteByte('<')
		v.args.fmt(b, pretty)
		b.WriteByte('>')
	case KindPlace:
		b.WriteString("@@")
	default:
		panic("supercalc: invalid value kind " + v.kind.String())
	}
}

func (c *Call) fmt(b *strings.Builder, pretty bool) {
	if c.callee.kind == KindVar {
		// Calls made by the parser for special syntax print as that syntax.
		switch {
		case c.callee.name == "@abs" && len(c.args) == 1:
			s := Repr(c.args[0], pretty)
			if strings.Contains(s, "|") {
				// Bars don't nest without a group between them.
				s = "(" + s + ")"
			}
			b.WriteString("|" + s + "|")
			return
		case c.callee.name == "@elem" && len(c.args) == 2:
			c.args[0].fmt(b, pretty, false)
			b.WriteByte('[')
			c.args[1].fmt(b, pretty, true)
			b.WriteByte(']')
			return
		}
	}
	c.callee.fmt(b, pretty, false)
	b.WriteByte('(')
	c.args.fmt(b, pretty)
	b.WriteByte(')')
}

func (args ArgList) fmt(b *strings.Builder, pretty bool) {
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.fmt(b, pretty, true)
	}
}

// indentWidth is the number of spaces per level in Verbose and XML output.
const indentWidth = 4

// Verbose renders v as an indented tree for debugging.
func Verbose(v *Value) string {
	var b strings.Builder
	v.verbose(&b, 0)
	return b.String()
}

func indent(b *strings.Builder, level int) {
	b.WriteString(strings.Repeat(" ", level*indentWidth))
}

func (v *Value) verbose(b *strings.Builder, level int) {
	switch v.kind {
	case KindExpr:
		b.WriteString(v.bin.op.String())
		b.WriteString(" (\n")
		for _, x := range [...]*Value{v.bin.left, v.bin.right} {
			indent(b, level+1)
			x.verbose(b, level+1)
			b.WriteByte('\n')
		}
		indent(b, level)
		b.WriteByte(')')
	case KindUnary:
		b.WriteString(v.un.op.String())
		b.WriteString(" (\n")
		indent(b, level+1)
		v.un.operand.verbose(b, level+1)
		b.WriteByte('\n')
		indent(b, level)
		b.WriteByte(')')
	case KindCall:
		v.call.callee.verbose(b, level)
		b.WriteString(" (\n")
		v.call.args.verbose(b, level+1)
		indent(b, level)
		b.WriteByte(')')
	case KindVec:
		b.WriteString("<\n")
		v.args.verbose(b, level+1)
		indent(b, level)
		b.WriteByte('>')
	default:
		v.fmt(b, false, true)
	}
}

func (args ArgList) verbose(b *strings.Builder, level int) {
	for i, a := range args {
		indent(b, level)
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteString("] ")
		a.verbose(b, level)
		b.WriteByte('\n')
	}
}

// XML renders v as an XML element tree.
func XML(v *Value) string {
	var b strings.Builder
	v.xml(&b, 0)
	return b.String()
}

func xmlText(b *strings.Builder, s string) {
	xml.EscapeText(b, []byte(s))
}

func (v *Value) xml(b *strings.Builder, level int) {
	switch v.kind {
	case KindInt:
		b.WriteString("<int>" + strconv.FormatInt(v.ival, 10) + "</int>")
	case KindReal:
		b.WriteString("<real>" + strconv.FormatFloat(v.rval, 'g', -1, 64) + "</real>")
	case KindFrac:
		b.WriteString("<frac><num>" + strconv.FormatInt(v.num, 10) + "</num><den>" + strconv.FormatInt(v.den, 10) + "</den></frac>")
	case KindVar:
		if strings.HasPrefix(v.name, "@") {
			b.WriteString(`<var name="`)
			xmlText(b, v.name[1:])
			b.WriteString(`" internal="true"/>`)
		} else {
			b.WriteString(`<var name="`)
			xmlText(b, v.name)
			b.WriteString(`"/>`)
		}
	case KindPlace:
		b.WriteString(`<placeholder index="` + strconv.Itoa(v.idx) + `"/>`)
	case KindError:
		b.WriteString(`<error kind="`)
		xmlText(b, v.err.Kind.String())
		b.WriteString(`">`)
		xmlText(b, v.err.Msg)
		b.WriteString("</error>")
	case KindExpr:
		b.WriteString(`<binop type="` + binops[v.bin.op].name + "\">\n")
		for _, x := range [...]*Value{v.bin.left, v.bin.right} {
			indent(b, level+1)
			x.xml(b, level+1)
			b.WriteByte('\n')
		}
		indent(b, level)
		b.WriteString("</binop>")
	case KindUnary:
		b.WriteString("<unop type=\"fact\">\n")
		indent(b, level+1)
		v.un.operand.xml(b, level+1)
		b.WriteByte('\n')
		indent(b, level)
		b.WriteString("</unop>")
	case KindCall:
		b.WriteString("<call>\n")
		indent(b, level+1)
		b.WriteString("<func>")
		v.call.callee.xml(b, level+1)
		b.WriteString("</func>\n")
		v.call.args.xml(b, "arg", level+1)
		indent(b, level)
		b.WriteString("</call>")
	case KindVec:
		b.WriteString("<vector>\n")
		v.args.xml(b, "elem", level+1)
		indent(b, level)
		b.WriteString("</vector>")
	default:
		b.WriteString("<" + strings.ToLower(v.kind.String()) + "/>")
	}
}

func (args ArgList) xml(b *strings.Builder, tag string, level int) {
	for _, a := range args {
		indent(b, level)
		b.WriteString("<" + tag + ">")
		a.xml(b, level)
		b.WriteString("</" + tag + ">\n")
	}
}

func (fn *Function) writeParams(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(strings.Join(fn.params, ", "))
	b.WriteByte(')')
}

// repr renders fn as its parameter list and body, the way it appears after
// the function's name in a definition.
func (fn *Function) repr(pretty bool) string {
	var b strings.Builder
	fn.writeParams(&b)
	b.WriteString(" = ")
	fn.body.fmt(&b, pretty, true)
	return b.String()
}

func (fn *Function) verbose() string {
	var b strings.Builder
	fn.writeParams(&b)
	b.WriteString(" {\n")
	indent(&b, 1)
	fn.body.verbose(&b, 1)
	b.WriteString("\n}")
	return b.String()
}

// String renders fn as its parameter list and body.
func (fn *Function) String() string {
	return fn.repr(false)
}
