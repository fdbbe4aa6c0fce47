package supercalc

import "strconv"

// Context is a frame of name bindings. Frames chain to a parent; a lookup
// checks the innermost frame first. The root frame lives as long as its
// session, and each function call pushes a frame that is discarded when the
// call returns. It is not safe to use a Context concurrently.
type Context struct {
	parent *Context
	names  map[string]*Binding
	// depth is the number of frames above the root.
	depth int
	// limit is the maximum depth of any frame below this root.
	limit int
}

// DefaultMaxDepth is the default limit on nested function calls.
const DefaultMaxDepth = 4096

// NewContext creates an empty root frame with no builtins.
func NewContext() *Context {
	return &Context{names: make(map[string]*Binding), limit: DefaultMaxDepth}
}

// BindingKind is the kind of thing a name is bound to.
type BindingKind int8

const (
	ValueBinding BindingKind = iota
	FunctionBinding
	BuiltinBinding
)

// Binding is what a name refers to in a Context.
type Binding struct {
	kind BindingKind
	val  *Value
	fn   *Function
	blt  Builtin
}

// Kind returns the kind of the binding.
func (b *Binding) Kind() BindingKind {
	return b.kind
}

// Value returns a copy of the bound value, or nil if b is not a value
// binding.
func (b *Binding) Value() *Value {
	if b.kind != ValueBinding {
		return nil
	}
	return b.val.Copy()
}

// Function returns the bound function, or nil if b is not a function binding.
func (b *Binding) Function() *Function {
	return b.fn
}

func (b *Binding) copy() *Binding {
	switch b.kind {
	case ValueBinding:
		return &Binding{kind: ValueBinding, val: b.val.Copy()}
	case FunctionBinding:
		return &Binding{kind: FunctionBinding, fn: b.fn.Copy()}
	case BuiltinBinding:
		// Builtins are immutable, so they can be shared.
		return &Binding{kind: BuiltinBinding, blt: b.blt}
	default:
		panic("supercalc: invalid binding kind " + strconv.Itoa(int(b.kind)))
	}
}

// eval evaluates a reference to the name bound to b. Functions and builtins
// evaluate to a reference to themselves so that they can be passed around by
// name.
func (b *Binding) eval(name string, ctx *Context) *Value {
	if b.kind == ValueBinding {
		return Evaluate(b.val, ctx)
	}
	return Var(name)
}

// Lookup finds the binding for name in ctx or its ancestors. The result is nil
// if name is not bound.
func (ctx *Context) Lookup(name string) *Binding {
	for c := ctx; c != nil; c = c.parent {
		if b := c.names[name]; b != nil {
			return b
		}
	}
	return nil
}

// SetValue binds name to a copy of v in this frame.
func (ctx *Context) SetValue(name string, v *Value) {
	ctx.names[name] = &Binding{kind: ValueBinding, val: v.Copy()}
}

// SetFunc binds name to a copy of fn in this frame.
func (ctx *Context) SetFunc(name string, fn *Function) {
	ctx.names[name] = &Binding{kind: FunctionBinding, fn: fn.Copy()}
}

// SetBuiltin binds name to a builtin in this frame.
func (ctx *Context) SetBuiltin(name string, fn Builtin) {
	ctx.names[name] = &Binding{kind: BuiltinBinding, blt: fn}
}

// Unset removes the binding for name from this frame.
func (ctx *Context) Unset(name string) {
	delete(ctx.names, name)
}

// bind binds name to a copy of the binding that v refers to. If v is a
// reference to a name, that name's binding is copied as it is seen from ctx;
// otherwise v itself is bound as a value.
func (ctx *Context) bind(frame *Context, name string, v *Value) *Value {
	if v.kind != KindVar {
		frame.names[name] = &Binding{kind: ValueBinding, val: v.Copy()}
		return nil
	}
	b := ctx.Lookup(v.name)
	if b == nil {
		return undefined(v.name)
	}
	frame.names[name] = b.copy()
	return nil
}

// Names returns the names bound in this frame, sorted.
func (ctx *Context) Names() []string {
	r := make([]string, 0, len(ctx.names))
	for k := range ctx.names {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// SetMaxDepth sets the limit on nested function calls. It applies to frames
// pushed from ctx.
func (ctx *Context) SetMaxDepth(n int) {
	ctx.limit = n
}

// push creates a call frame whose parent is ctx.
func (ctx *Context) push() (*Context, *Value) {
	if ctx.depth >= ctx.limit {
		return nil, mathErr("Too many nested function calls (limit " + strconv.Itoa(ctx.limit) + ").")
	}
	return &Context{parent: ctx, names: make(map[string]*Binding), depth: ctx.depth + 1, limit: ctx.limit}, nil
}

// pop discards a call frame. Anything still holding the frame sees it empty.
func (ctx *Context) pop() {
	ctx.names = nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
