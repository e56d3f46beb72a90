package ir

// JumpAlways transfers control unconditionally to Target.
// The target reference is non-owning.
type JumpAlways struct {
	Target *Block
}

func (*JumpAlways) Kind() Kind              { return KindJumpAlways }
func (n *JumpAlways) Accept(v Visitor) Node { return v.VisitJumpAlways(n) }
func (*JumpAlways) irNode()                 {}
func (*JumpAlways) jumpNode()               {}

// JumpCond transfers control to Yes when Condition evaluates non-zero,
// otherwise to No. The condition is owned; the target references are not.
type JumpCond struct {
	Yes       *Block
	No        *Block
	Condition Atom
}

func (*JumpCond) Kind() Kind              { return KindJumpCond }
func (n *JumpCond) Accept(v Visitor) Node { return v.VisitJumpCond(n) }
func (*JumpCond) irNode()                 {}
func (*JumpCond) jumpNode()               {}

// Block is an ordered sequence of owned statements ending in a single
// outgoing transition.
//
// The transition is absent at construction and set exactly once by one of
// the link operations; linking an already-linked block is a
// DUPLICATE_TRANSITION error. A block without a transition is valid only
// as an unreachable or still-under-construction placeholder; the
// well-formedness check in validate.go rejects reachable unterminated
// blocks.
//
// Predecessors is the non-owning back-edge overlay, maintained
// incrementally at link time so later passes (dominance, SSA
// construction, dead-block elimination) get O(1) predecessor access
// without a separate consistency pass.
type Block struct {
	Name         string
	Statements   []Stmt
	Predecessors []*Block

	transition Jump
}

// NewBlock creates an empty, unlinked block.
// Blocks that belong to a function should be created through
// Function.NewBlock so the validator can resolve jump targets.
func NewBlock(name string) *Block {
	return &Block{Name: name}
}

func (*Block) Kind() Kind              { return KindBlock }
func (b *Block) Accept(v Visitor) Node { return v.VisitBlock(b) }
func (*Block) irNode()                 {}

// Append adds statements to the end of the block.
func (b *Block) Append(stmts ...Stmt) {
	b.Statements = append(b.Statements, stmts...)
}

// Transition returns the block's outgoing jump, or nil if none has been
// attached yet.
func (b *Block) Transition() Jump {
	return b.transition
}

// LinkAlways attaches an unconditional transition from b to target and
// records b in target's predecessor list.
//
// Returns a DUPLICATE_TRANSITION error if b is already linked; the
// existing transition and predecessor lists are left untouched.
func (b *Block) LinkAlways(target *Block) error {
	if b.transition != nil {
		return NewDuplicateTransition(b.Name)
	}
	b.transition = &JumpAlways{Target: target}
	target.Predecessors = append(target.Predecessors, b)
	return nil
}

// LinkCond attaches a conditional transition from b and records b in the
// predecessor lists of both targets. When yes == no the block appears
// twice in that target's predecessor list; the duplicate is deliberate
// and must not be collapsed, since each entry stands for one incoming
// edge.
//
// Returns a DUPLICATE_TRANSITION error if b is already linked.
func (b *Block) LinkCond(yes, no *Block, condition Atom) error {
	if b.transition != nil {
		return NewDuplicateTransition(b.Name)
	}
	b.transition = &JumpCond{Yes: yes, No: no, Condition: condition}
	yes.Predecessors = append(yes.Predecessors, b)
	no.Predecessors = append(no.Predecessors, b)
	return nil
}
