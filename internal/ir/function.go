package ir

import "fmt"

// Function is the per-function IR root: identity, the owned entry block,
// parameter variable identifiers, the literal pool, and the declared
// return type.
//
// The function's lifetime bounds the lifetime of every block and
// sub-expression it owns.
type Function struct {
	// ID identifies the function within its program. Call nodes
	// reference callees by this id.
	ID uint16

	// ReturnType is the declared return type. TypeBot marks a function
	// that returns no value.
	ReturnType Type

	// Entry is the owned entry block, created empty at construction and
	// populated by the front end.
	Entry *Block

	// Params lists the parameter variable identifiers in declaration
	// order.
	Params []uint64

	pool   []string
	blocks []*Block
}

// NewFunction creates a function with an empty entry block named after
// the function id. The entry block is pre-registered, so jumps targeting
// it resolve.
func NewFunction(id uint16, returnType Type) *Function {
	f := &Function{
		ID:         id,
		ReturnType: returnType,
	}
	f.Entry = f.NewBlock(fmt.Sprintf("entry%d", id))
	return f
}

func (*Function) Kind() Kind              { return KindFunction }
func (f *Function) Accept(v Visitor) Node { return v.VisitFunction(f) }
func (*Function) irNode()                 {}

// NewBlock creates an empty block registered with this function.
// Registration defines the resolution domain for jump targets: the
// validator reports UNRESOLVED_JUMP_TARGET for any transition whose
// target was not registered here.
func (f *Function) NewBlock(name string) *Block {
	b := NewBlock(name)
	f.blocks = append(f.blocks, b)
	return b
}

// Blocks returns the function's registered blocks in creation order,
// entry first. The returned slice is shared; callers must not modify it.
func (f *Function) Blocks() []*Block {
	return f.blocks
}

// Owns reports whether b was registered with this function.
func (f *Function) Owns(b *Block) bool {
	for _, own := range f.blocks {
		if own == b {
			return true
		}
	}
	return false
}

// AddToPool appends a string constant to the literal pool and returns its
// index. The pool is append-only: indices are stable for the function's
// lifetime and are never reused or invalidated. Identical strings added
// twice get distinct indices; deduplication is the front end's business.
func (f *Function) AddToPool(s string) int {
	f.pool = append(f.pool, s)
	return len(f.pool) - 1
}

// PoolString returns the pool entry at index, reporting absence for an
// out-of-range index.
func (f *Function) PoolString(index int) (string, bool) {
	if index < 0 || index >= len(f.pool) {
		return "", false
	}
	return f.pool[index], true
}

// PoolSize returns the number of pool entries.
func (f *Function) PoolSize() int {
	return len(f.pool)
}

// Pool returns the literal pool in index order. The returned slice is
// shared; callers must not modify it.
func (f *Function) Pool() []string {
	return f.pool
}

// Program is an ordered collection of functions forming a translation
// unit's IR. Function ids are unique within a program.
type Program struct {
	functions []*Function
	byID      map[uint16]*Function
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{byID: make(map[uint16]*Function)}
}

// AddFunction appends f to the program.
//
// Returns a DUPLICATE_FUNCTION_ID error if a function with the same id is
// already present; the program is left unchanged in that case, the second
// function is not added and nothing is overwritten.
func (p *Program) AddFunction(f *Function) error {
	if _, exists := p.byID[f.ID]; exists {
		return NewDuplicateFunctionID(f.ID)
	}
	p.byID[f.ID] = f
	p.functions = append(p.functions, f)
	return nil
}

// FunctionByID resolves a function id, reporting absence if the id is not
// bound in this program.
func (p *Program) FunctionByID(id uint16) (*Function, bool) {
	f, ok := p.byID[id]
	return f, ok
}

// Functions returns the program's functions in insertion order. The
// returned slice is shared; callers must not modify it.
func (p *Program) Functions() []*Function {
	return p.functions
}
