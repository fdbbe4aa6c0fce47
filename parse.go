package supercalc

import (
	"strconv"
	"unicode"
)

// Value = Primary { Postfix } { Op [Sign] Primary { Postfix } }
// Primary = Sign Primary | number | ident | '(' Value ')' | '<' [ Value { ',' Value } ] '>' | '|' Value '|' | '@' special
// Postfix = '[' Value ']' | '(' [ Value { ',' Value } ] ')' | '!'
// Op = '+' | '-' | '*' | '×' | '/' | '÷' | '%' | '^' | '.' | '·'

// ParseValue parses a value from cur up to the rune end, or up to the rune sep
// when sep is nonzero, and advances cur past everything it consumed. An end
// of 0 means the end of input. When sep is 0 and the value is followed by end,
// the end rune is consumed too.
//
// If the input at cur is empty up to end, the result is an End value. Invalid
// input produces an error Value. When the parser finds an @, it hands the
// cursor to special; if special is nil, @ is an unexpected character.
func ParseValue(cur *Cursor, sep, end rune, special SpecialParser) *Value {
	if special == nil {
		special = DefaultSpecial
	}
	p := parser{cur: cur, special: special}
	return p.parse(sep, end)
}

// Parse parses an entire string as a single value.
func Parse(src string) *Value {
	cur := NewCursor(src)
	v := ParseValue(cur, 0, 0, nil)
	if v.IsErr() || cur.Done() {
		return v
	}
	return badChar(cur)
}

type parser struct {
	cur     *Cursor
	special SpecialParser
}

// parse parses a sequence of operands and binary operators, building the
// operator tree as it goes.
func (p *parser) parse(sep, end rune) *Value {
	// tree is the root of the operator tree and prev is the node most
	// recently added to it, which is waiting for its right operand.
	var tree, prev *BinOp
	for {
		val := p.next(end)
		switch val.kind {
		case KindError:
			return val
		case KindEnd:
			if tree != nil {
				return syntaxErr(p.cur.Pos(), "Expected a value after the last operator.")
			}
			return val
		case KindNeg:
			// -x is parsed as -1 * x.
			neg := &BinOp{op: BinMul, left: Int(-1)}
			if tree == nil {
				tree = neg
			} else {
				prev.right = &Value{kind: KindExpr, bin: neg}
			}
			prev = neg
			continue
		}
		op := p.cur.nextOp(sep, end)
		switch op {
		case binUnknown:
			return badChar(p.cur)
		case binEnd:
			if end != 0 && p.cur.Done() {
				return unterminated(p.cur, end)
			}
			if sep == 0 && end != 0 {
				p.cur.Next()
			}
			if tree == nil {
				return val
			}
			prev.right = val
			return &Value{kind: KindExpr, bin: tree}
		}
		if tree == nil {
			tree = &BinOp{op: op, left: val}
			prev = tree
		} else {
			tree, prev = splice(tree, prev, op, val)
		}
	}
}

// next parses a single operand with any postfix operators. At end, the
// result is an End value. A leading minus sign produces a KindNeg marker
// instead of an operand.
func (p *parser) next(end rune) *Value {
	p.cur.trimSpaces()
	switch p.cur.Peek() {
	case end:
		return End()
	case 0:
		return unterminated(p.cur, end)
	}
	if p.cur.sign() < 0 {
		return negMarker()
	}
	v := p.primary(end)
	if v.IsErr() {
		return v
	}
	return p.postfix(v)
}

func (p *parser) primary(end rune) *Value {
	col := p.cur.Pos()
	switch r := p.cur.Peek(); {
	case r == end:
		// A sign with nothing after it, e.g. "(2 * -)".
		return syntaxErr(col, "Expected a value after sign.")
	case '0' <= r && r <= '9', r == '.':
		return p.cur.scanNum()
	case r == '(':
		p.cur.Next()
		return p.group(col, ')')
	case r == '<':
		p.cur.Next()
		args, err := p.arglist(',', '>')
		if err != nil {
			return err
		}
		return &Value{kind: KindVec, args: args}
	case r == '|':
		p.cur.Next()
		v := p.group(col, '|')
		if v.IsErr() {
			return v
		}
		return absTemplate.Fill(v)
	case r == '@':
		return p.special.ParseSpecial(p.cur)
	case r == '_', unicode.IsLetter(r):
		return Var(p.cur.scanIdent())
	default:
		return badChar(p.cur)
	}
}

// group parses a parenthesized value. col is the position of the opening
// bracket.
func (p *parser) group(col int, end rune) *Value {
	v := p.parse(0, end)
	if v.kind == KindEnd {
		return syntaxErr(col, "Empty expression before "+strconv.QuoteRune(end)+".")
	}
	return v
}

// postfix applies subscripts, calls, and factorials following v.
func (p *parser) postfix(v *Value) *Value {
	for {
		p.cur.trimSpaces()
		col := p.cur.Pos()
		switch p.cur.Peek() {
		case '[':
			p.cur.Next()
			idx := p.parse(0, ']')
			if idx.IsErr() {
				return idx
			}
			if idx.kind == KindEnd {
				return syntaxErr(col, "Empty subscript.")
			}
			v = elemTemplate.Fill(v, idx)
			continue
		case '(':
			// Only names and the results of calls can be functions.
			if v.kind != KindVar && v.kind != KindCall && v.kind != KindPlace {
				break
			}
			p.cur.Next()
			args, err := p.arglist(',', ')')
			if err != nil {
				return err
			}
			v = CallOf(v, args)
			continue
		}
		break
	}
	for p.cur.Peek() == '!' {
		p.cur.Next()
		p.cur.trimSpaces()
		v = Unary(UnFact, v)
	}
	return v
}

// arglist parses values separated by sep up to and including end.
func (p *parser) arglist(sep, end rune) (ArgList, *Value) {
	var args ArgList
	for {
		arg := p.parse(sep, end)
		if arg.IsErr() {
			return nil, arg
		}
		if arg.kind == KindEnd {
			if len(args) > 0 {
				return nil, syntaxErr(p.cur.Pos(), "Expected a value after "+strconv.QuoteRune(sep)+".")
			}
			break
		}
		args = append(args, arg)
		p.cur.trimSpaces()
		if p.cur.Peek() != sep {
			break
		}
		p.cur.Next()
	}
	p.cur.trimSpaces()
	switch p.cur.Peek() {
	case end:
		p.cur.Next()
		if args == nil {
			args = ArgList{}
		}
		return args, nil
	case 0:
		return nil, unterminated(p.cur, end)
	default:
		return nil, badChar(p.cur)
	}
}
