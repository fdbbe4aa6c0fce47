package supercalc

import (
	"io"
	"strconv"
)

// ErrorKind classifies an Error.
type ErrorKind int8

const (
	errNone ErrorKind = iota
	// SyntaxError is an error in the text of an expression: an unexpected
	// character, an unterminated group, or an empty subexpression.
	SyntaxError
	// TypeError is an operand or argument of the wrong type or arity.
	TypeError
	// MathError is an arithmetic failure, e.g. overflow or division by zero.
	MathError
	// LookupError is a reference to an undefined variable or function.
	LookupError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "Syntax error"
	case TypeError:
		return "Type error"
	case MathError:
		return "Math error"
	case LookupError:
		return "Lookup error"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is the payload of an error Value. It implements error.
type Error struct {
	// Kind is the class of the error.
	Kind ErrorKind
	// Msg describes the error.
	Msg string
	// Col is the position of the rune that caused a syntax error, counted
	// from 1, or 0 if the error has no position.
	Col int
	// Reported is set once the error has been shown to the user. A reported
	// error is never shown again.
	Reported bool
}

func (err *Error) Error() string {
	s := err.Kind.String() + ": " + err.Msg
	if err.Col > 0 {
		return errpos(err.Col, s)
	}
	return s
}

// Pos returns the position of the error, or 0 if it has none.
func (err *Error) Pos() int {
	return err.Col
}

// Raise writes the error to w unless it has already been reported, then
// marks it reported. It returns whether anything was written.
func (err *Error) Raise(w io.Writer) bool {
	if err.Reported {
		return false
	}
	err.Reported = true
	io.WriteString(w, err.Error()+"\n")
	return true
}

func (err *Error) copy() *Error {
	e := *err
	return &e
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

func syntaxErr(col int, msg string) *Value {
	return ErrValue(&Error{Kind: SyntaxError, Msg: msg, Col: col})
}

func typeErr(msg string) *Value {
	return ErrValue(&Error{Kind: TypeError, Msg: msg})
}

func mathErr(msg string) *Value {
	return ErrValue(&Error{Kind: MathError, Msg: msg})
}

// undefined is the error for a name with no binding in scope.
func undefined(name string) *Value {
	return ErrValue(&Error{Kind: LookupError, Msg: "No variable or function named " + strconv.Quote(name) + "."})
}

// badChar is the error for the rune under the cursor.
func badChar(cur *Cursor) *Value {
	r := cur.Peek()
	if r == 0 {
		return syntaxErr(cur.Pos(), "Unexpected end of input.")
	}
	return syntaxErr(cur.Pos(), "Unexpected character "+strconv.QuoteRune(r)+".")
}

// unterminated is the error for input ending inside a group.
func unterminated(cur *Cursor, end rune) *Value {
	return syntaxErr(cur.Pos(), "Expected "+strconv.QuoteRune(end)+" before end of input.")
}

// plural returns "s" unless n is 1.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func divZero() *Value {
	return mathErr("Division by zero.")
}

func overflow() *Value {
	return mathErr("Integer overflow.")
}
