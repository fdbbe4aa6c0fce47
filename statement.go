package supercalc

import "strings"

// Statement is one line of calculator input: a plain expression, an
// assignment to a variable, or a function definition.
//
//	Statement = [ ident [ Op ] '=' ] Value
//	          | ident '(' [ ident { ',' ident } ] ')' '=' Value
type Statement struct {
	// name is the name assigned to, or empty for a plain expression.
	name string
	// fn is the function being defined, if any.
	fn *Function
	// body is the value to evaluate. A compound assignment like x += 1 has
	// already been rewritten to x = x + 1.
	body *Value
}

// ParseStatement parses a statement from src. Everything after the first =
// is the value; everything before it names what to assign. A statement with
// no text has an End body. Errors are returned as error Values.
func ParseStatement(src string, special SpecialParser) (*Statement, *Value) {
	eq := strings.IndexByte(src, '=')
	if eq < 0 {
		cur := NewCursor(src)
		v := ParseValue(cur, 0, 0, special)
		if v.IsErr() {
			return nil, v
		}
		if !cur.Done() {
			return nil, badChar(cur)
		}
		return &Statement{body: v}, nil
	}

	// Parse the right side first so that its error columns count from the
	// start of the line.
	cur := NewCursor(src)
	for cur.off <= eq {
		cur.Next()
	}
	v := ParseValue(cur, 0, 0, special)
	switch {
	case v.IsErr():
		return nil, v
	case !cur.Done():
		return nil, badChar(cur)
	case v.kind == KindEnd:
		return nil, syntaxErr(cur.Pos(), "Expected a value after =.")
	}

	lhs := NewCursor(src[:eq])
	lhs.trimSpaces()
	col := lhs.Pos()
	name := lhs.scanIdent()
	if name == "" {
		return nil, syntaxErr(col, "No variable to assign to.")
	}
	lhs.trimSpaces()
	switch lhs.Peek() {
	case 0:
		return &Statement{name: name, body: v}, nil
	case '(':
		lhs.Next()
		params, err := lhs.params()
		if err != nil {
			return nil, err
		}
		fn, err := NewFunction(params, v)
		if err != nil {
			return nil, err
		}
		return &Statement{name: name, fn: fn}, nil
	}
	op := lhs.nextOp(0, 0)
	if op == binUnknown || op == binEnd {
		return nil, badChar(lhs)
	}
	lhs.trimSpaces()
	if !lhs.Done() {
		return nil, badChar(lhs)
	}
	return &Statement{name: name, body: Expr(op, Var(name), v)}, nil
}

// params parses a parameter list after its opening parenthesis through the
// end of input, which must follow the closing parenthesis.
func (c *Cursor) params() ([]string, *Value) {
	params := []string{}
	c.trimSpaces()
	if c.Peek() == ')' {
		c.Next()
	} else {
		for {
			c.trimSpaces()
			p := c.scanIdent()
			if p == "" {
				return nil, badChar(c)
			}
			params = append(params, p)
			c.trimSpaces()
			r := c.Peek()
			if r != ',' && r != ')' {
				return nil, badChar(c)
			}
			c.Next()
			if r == ')' {
				break
			}
		}
	}
	c.trimSpaces()
	if !c.Done() {
		return nil, badChar(c)
	}
	return params, nil
}

// Name returns the name the statement assigns, or the empty string if it is
// a plain expression.
func (s *Statement) Name() string {
	return s.name
}

// Function returns the function the statement defines, or nil.
func (s *Statement) Function() *Function {
	return s.fn
}

// Body returns a copy of the value the statement evaluates. For a function
// definition, it is the function body.
func (s *Statement) Body() *Value {
	if s.fn != nil {
		return s.fn.Body()
	}
	return s.body.Copy()
}

// Exec executes the statement in ctx. An assignment binds its name to the
// result and every successful evaluation binds ans. A function definition
// binds the function and evaluates to a reference to it. If evaluation fails,
// no bindings change.
func (s *Statement) Exec(ctx *Context) *Value {
	if s.fn != nil {
		ctx.SetFunc(s.name, s.fn)
		return Var(s.name)
	}
	if s.body.kind == KindEnd {
		return End()
	}
	r := Evaluate(s.body, ctx)
	if r.IsErr() {
		return r
	}
	if err := ctx.bind(ctx, "ans", r); err != nil {
		return err
	}
	if s.name != "" {
		if err := ctx.bind(ctx, s.name, r); err != nil {
			return err
		}
	}
	return r
}

// Repr renders the statement as text that parses back to an equivalent
// statement.
func (s *Statement) Repr(pretty bool) string {
	switch {
	case s.fn != nil:
		return s.name + s.fn.repr(pretty)
	case s.name != "":
		return s.name + " = " + Repr(s.body, pretty)
	default:
		return Repr(s.body, pretty)
	}
}

// Verbose renders the statement as an indented tree.
func (s *Statement) Verbose() string {
	switch {
	case s.fn != nil:
		return s.name + s.fn.verbose()
	case s.name != "":
		return s.name + " = " + Verbose(s.body)
	default:
		return Verbose(s.body)
	}
}

func (s *Statement) String() string {
	return s.Repr(false)
}
