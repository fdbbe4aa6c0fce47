package supercalc

import (
	"io"
	"os"
)

// Session is a calculator session: a root context holding the builtins, the
// constants, and everything the user defines, plus settings for printing
// results. It is not safe to use a Session concurrently.
type Session struct {
	ctx     *Context
	out     io.Writer
	pretty  bool
	special SpecialParser
}

// Option is an option used when creating a session.
type Option interface {
	sessionOption()
}

type (
	outopt     struct{ w io.Writer }
	prettyopt  bool
	depthopt   int
	specialopt struct{ p SpecialParser }
	varopt     struct {
		name string
		val  *Value
	}
)

func (outopt) sessionOption()     {}
func (prettyopt) sessionOption()  {}
func (depthopt) sessionOption()   {}
func (specialopt) sessionOption() {}
func (varopt) sessionOption()     {}

// Output sets the writer for results and error messages. The default is
// standard output.
func Output(w io.Writer) Option {
	return outopt{w}
}

// Pretty sets whether results print with Unicode operators and symbols.
func Pretty(pretty bool) Option {
	return prettyopt(pretty)
}

// MaxDepth sets the limit on nested function calls. The default is
// DefaultMaxDepth.
func MaxDepth(n int) Option {
	return depthopt(n)
}

// Special sets the parser for tokens beginning with @. The default is
// DefaultSpecial.
func Special(p SpecialParser) Option {
	return specialopt{p}
}

// SetVar binds a variable in the new session's root context.
func SetVar(name string, val *Value) Option {
	return varopt{name, val}
}

// New creates a session. The root context binds the default builtins, pi, e,
// and ans, which starts at 0.
func New(opts ...Option) *Session {
	ctx := NewContext()
	for k, v := range globalfuncs {
		ctx.SetBuiltin(k, v)
	}
	ctx.SetValue("pi", Real(Pi))
	ctx.SetValue("e", Real(E))
	ctx.SetValue("ans", Int(0))
	s := Session{ctx: ctx, out: os.Stdout, special: DefaultSpecial}
	for _, opt := range opts {
		switch o := opt.(type) {
		case outopt:
			s.out = o.w
		case prettyopt:
			s.pretty = bool(o)
		case depthopt:
			ctx.SetMaxDepth(int(o))
		case specialopt:
			s.special = o.p
		case varopt:
			ctx.SetValue(o.name, o.val)
		}
	}
	return &s
}

// Context returns the session's root context.
func (s *Session) Context() *Context {
	return s.ctx
}

// Parse parses a statement with the session's parsing options.
func (s *Session) Parse(src string) (*Statement, *Value) {
	return ParseStatement(src, s.special)
}

// Exec parses and executes a statement. A statement that fails to parse or
// evaluate returns its *Error as the error, along with the error Value.
func (s *Session) Exec(src string) (*Value, error) {
	st, bad := s.Parse(src)
	if bad != nil {
		return bad, bad.err
	}
	r := st.Exec(s.ctx)
	if r.IsErr() {
		return r, r.err
	}
	return r, nil
}

// Run executes a statement and prints its result, or raises its error. An
// empty statement prints nothing.
func (s *Session) Run(src string) *Value {
	r, _ := s.Exec(src)
	s.Print(r)
	return r
}

// Print writes a result to the session's output. Errors are raised instead.
func (s *Session) Print(v *Value) {
	switch v.kind {
	case KindEnd:
	case KindError:
		s.Raise(v)
	case KindVar:
		// A reference to a function prints as its definition.
		if b := s.ctx.Lookup(v.name); b != nil && b.kind == FunctionBinding {
			io.WriteString(s.out, v.name+b.fn.repr(s.pretty)+"\n")
			return
		}
		io.WriteString(s.out, Repr(v, s.pretty)+"\n")
	default:
		io.WriteString(s.out, Repr(v, s.pretty)+"\n")
	}
}

// Raise reports v to the session's output if it is an error that hasn't
// already been reported. It returns whether anything was written.
func (s *Session) Raise(v *Value) bool {
	if !v.IsErr() {
		return false
	}
	return v.err.Raise(s.out)
}

// Define executes an assignment or definition of name from the text of its
// value, without printing. For example, Define("f(x)", "x^2") defines f.
func (s *Session) Define(name, src string) error {
	_, err := s.Exec(name + " = " + src)
	return err
}
