package supercalc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Cursor is a position in the text being parsed. Parsing functions advance it
// past everything they consume.
type Cursor struct {
	src string
	// off is the byte offset of the next rune in src.
	off int
	// col is the number of runes consumed plus one.
	col int
}

// NewCursor returns a cursor at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src, col: 1}
}

// Peek returns the next rune without consuming it. At the end of input, the
// result is 0.
func (c *Cursor) Peek() rune {
	if c.off >= len(c.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.off:])
	return r
}

// Next consumes and returns the next rune, or returns 0 at the end of input.
func (c *Cursor) Next() rune {
	if c.off >= len(c.src) {
		return 0
	}
	r, sz := utf8.DecodeRuneInString(c.src[c.off:])
	c.off += sz
	c.col++
	return r
}

// Done returns whether all input has been consumed.
func (c *Cursor) Done() bool {
	return c.off >= len(c.src)
}

// Pos returns the position of the next rune, counted from 1.
func (c *Cursor) Pos() int {
	return c.col
}

// Rest returns the input that has not been consumed.
func (c *Cursor) Rest() string {
	return c.src[c.off:]
}

// skipBytes consumes n bytes of ASCII input.
func (c *Cursor) skipBytes(n int) {
	c.off += n
	c.col += n
}

func (c *Cursor) trimSpaces() {
	for {
		r := c.Peek()
		if r == 0 || !unicode.IsSpace(r) {
			return
		}
		c.Next()
	}
}

// scanIdent consumes an identifier: a letter or underscore followed by any
// letters, digits, and underscores. The result is empty if there is no
// identifier at the cursor.
func (c *Cursor) scanIdent() string {
	start := c.off
	if r := c.Peek(); r != '_' && !unicode.IsLetter(r) {
		return ""
	}
	c.Next()
	for {
		r := c.Peek()
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		c.Next()
	}
	return c.src[start:c.off]
}

// sign consumes any run of + and - signs and the spaces between them. The
// result is -1 if there was an odd number of minus signs and 1 otherwise.
func (c *Cursor) sign() int {
	s := 1
	for {
		c.trimSpaces()
		switch c.Peek() {
		case '-':
			s = -s
		case '+':
		default:
			return s
		}
		c.Next()
	}
}

// scanNum consumes a numeric literal. It scans the longest decimal real and
// the longest decimal integer at the cursor and keeps whichever is longer,
// preferring the integer when they are the same length. A scan whose value is
// out of range doesn't count.
func (c *Cursor) scanNum() *Value {
	rest := c.Rest()
	rn := realPrefix(rest)
	var x float64
	if rn > 0 {
		var err error
		x, err = strconv.ParseFloat(rest[:rn], 64)
		if err != nil {
			rn = 0
		}
	}
	in := intPrefix(rest)
	var n int64
	if in > 0 {
		var err error
		n, err = strconv.ParseInt(rest[:in], 10, 64)
		if err != nil {
			in = 0
		}
	}
	switch {
	case rn > in:
		c.skipBytes(rn)
		return Real(x)
	case in > 0:
		c.skipBytes(in)
		return Int(n)
	default:
		return badChar(c)
	}
}

// intPrefix returns the length of the run of decimal digits at the start of s.
func intPrefix(s string) int {
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}

// realPrefix returns the length of the longest decimal floating-point literal
// at the start of s, or 0 if there is none. A literal has at least one digit
// in its mantissa and an optional exponent.
func realPrefix(s string) int {
	i := intPrefix(s)
	dig := i > 0
	if i < len(s) && s[i] == '.' {
		k := intPrefix(s[i+1:])
		dig = dig || k > 0
		i += 1 + k
	}
	if !dig {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if k := intPrefix(s[j:]); k > 0 {
			i = j + k
		}
	}
	return i
}
