// Package builder provides a convenience layer for constructing IR
// programs: fresh variable allocation, an insertion point for statement
// emission, and function bookkeeping.
//
// Front ends lower their syntax trees through this package; nothing here
// adds semantics beyond the ir package's own construction rules, and all
// structural errors surface unchanged from ir.
package builder

import "github.com/mathvm/mvmir/internal/ir"

// Builder accumulates a program under construction. It is single-
// producer: construction and linking are not safe for concurrent use.
type Builder struct {
	program  *ir.Program
	function *ir.Function
	block    *ir.Block
	nextVar  uint64
}

// New creates a builder with an empty program.
func New() *Builder {
	return &Builder{program: ir.NewProgram()}
}

// Program returns the program built so far. Callers should run
// ir.ValidateProgram once construction is complete.
func (b *Builder) Program() *ir.Program {
	return b.program
}

// StartFunction adds a new function to the program and moves the
// insertion point to its entry block. Variable numbering restarts per
// function, matching the per-function identifier scope.
func (b *Builder) StartFunction(id uint16, returnType ir.Type) (*ir.Function, error) {
	f := ir.NewFunction(id, returnType)
	if err := b.program.AddFunction(f); err != nil {
		return nil, err
	}
	b.function = f
	b.block = f.Entry
	b.nextVar = 0
	return f, nil
}

// Function returns the function currently being built, or nil before the
// first StartFunction.
func (b *Builder) Function() *ir.Function {
	return b.function
}

// NewBlock creates a block registered with the current function. The
// insertion point is unchanged; use SetBlock to emit into it.
func (b *Builder) NewBlock(name string) *ir.Block {
	return b.function.NewBlock(name)
}

// SetBlock moves the statement insertion point.
func (b *Builder) SetBlock(block *ir.Block) {
	b.block = block
}

// Block returns the current insertion point.
func (b *Builder) Block() *ir.Block {
	return b.block
}

// FreshVar allocates a variable with the next unused identifier in the
// current function.
func (b *Builder) FreshVar() *ir.Variable {
	v := &ir.Variable{ID: b.nextVar}
	b.nextVar++
	return v
}

// AddParam allocates a fresh variable and declares it as the current
// function's next parameter.
func (b *Builder) AddParam() *ir.Variable {
	v := b.FreshVar()
	b.function.Params = append(b.function.Params, v.ID)
	return v
}

// Intern appends a string constant to the current function's literal
// pool and returns a pooled pointer atom referencing it.
func (b *Builder) Intern(s string) *ir.Ptr {
	idx := b.function.AddToPool(s)
	return &ir.Ptr{Value: uint64(idx), Pooled: true}
}

// Assign emits an assignment of value to v at the insertion point.
func (b *Builder) Assign(v *ir.Variable, value ir.Expr) {
	b.block.Append(&ir.Assignment{Var: v, Value: value})
}

// Print emits a print of atom at the insertion point.
func (b *Builder) Print(atom ir.Atom) {
	b.block.Append(&ir.Print{Atom: atom})
}

// Return emits a return at the insertion point. A nil atom returns no
// value.
func (b *Builder) Return(atom ir.Atom) {
	b.block.Append(&ir.Return{Atom: atom})
}
