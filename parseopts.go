package supercalc

// SpecialParser parses the special tokens introduced by @. ParseSpecial is
// called with the cursor on the @ and must consume whatever it parses. Any
// postfix operators after the token are handled by the caller.
type SpecialParser interface {
	ParseSpecial(cur *Cursor) *Value
}

// SpecialFunc adapts a function to a SpecialParser.
type SpecialFunc func(cur *Cursor) *Value

// ParseSpecial calls f(cur).
func (f SpecialFunc) ParseSpecial(cur *Cursor) *Value {
	return f(cur)
}

// DefaultSpecial treats @ as an unexpected character.
var DefaultSpecial SpecialParser = SpecialFunc(badChar)

// templateSpecial parses @@ as the next placeholder and @name as the internal
// name @name.
type templateSpecial struct {
	n int
}

func (t *templateSpecial) ParseSpecial(cur *Cursor) *Value {
	col := cur.Pos()
	cur.Next()
	if cur.Peek() == '@' {
		cur.Next()
		t.n++
		return Placeholder(t.n - 1)
	}
	name := cur.scanIdent()
	if name == "" {
		return syntaxErr(col, "Expected a name or @ after @.")
	}
	return Var("@" + name)
}
