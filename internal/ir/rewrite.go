package ir

import "slices"

// Identity rewriting.
//
// Passes that modify the IR do so by producing a fresh graph and
// substituting new nodes, never by mutating a finished graph in place.
// The cloner below is the reference rewriting pass: a visitor that is
// total over the taxonomy and rebuilds a graph observationally equal to
// its input. Rewrite passes embed or copy this shape and override the
// handlers for the kinds they transform.

// CloneProgram deep-copies a program. The result shares nothing with the
// input, so the input can keep serving parallel read-only analyses while
// the copy is rewritten.
func CloneProgram(p *Program) (*Program, error) {
	out := NewProgram()
	for _, f := range p.Functions() {
		if err := out.AddFunction(CloneFunction(f)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CloneFunction deep-copies a function: blocks, statements, transitions,
// predecessor lists (order and multiplicity preserved), parameters and
// the literal pool.
func CloneFunction(f *Function) *Function {
	c := &cloner{blocks: make(map[*Block]*Block, len(f.Blocks()))}

	out := &Function{
		ID:         f.ID,
		ReturnType: f.ReturnType,
		Params:     slices.Clone(f.Params),
		pool:       slices.Clone(f.pool),
	}

	// Register every block up front so non-owning references (jump
	// targets, back-edges) resolve even across loops.
	for _, b := range f.Blocks() {
		nb := out.NewBlock(b.Name)
		c.blocks[b] = nb
	}
	out.Entry = c.blocks[f.Entry]

	for _, b := range f.Blocks() {
		nb := c.blocks[b]
		for _, s := range b.Statements {
			nb.Statements = append(nb.Statements, s.Accept(c).(Stmt))
		}
		if t := b.Transition(); t != nil {
			nb.transition = t.Accept(c).(Jump)
		}
		for _, pred := range b.Predecessors {
			nb.Predecessors = append(nb.Predecessors, c.block(pred))
		}
	}
	return out
}

// CloneExpr deep-copies an expression tree.
func CloneExpr(e Expr) Expr {
	c := &cloner{blocks: make(map[*Block]*Block)}
	return e.Accept(c).(Expr)
}

// cloner is the identity rewrite visitor. Every handler allocates a
// fresh node with the same payload; block references go through the
// old-to-new map so the copied overlay graph points at copied blocks.
type cloner struct {
	blocks map[*Block]*Block
}

// block maps an original block to its clone, creating an unregistered
// clone for blocks outside the function being copied.
func (c *cloner) block(b *Block) *Block {
	if nb, ok := c.blocks[b]; ok {
		return nb
	}
	nb := NewBlock(b.Name)
	c.blocks[b] = nb
	return nb
}

func (c *cloner) atom(a Atom) Atom {
	if a == nil {
		return nil
	}
	return a.Accept(c).(Atom)
}

func (c *cloner) VisitBinOp(n *BinOp) Node {
	return &BinOp{
		Left:  n.Left.Accept(c).(Expr),
		Right: n.Right.Accept(c).(Expr),
		Op:    n.Op,
	}
}

func (c *cloner) VisitUnOp(n *UnOp) Node {
	return &UnOp{Operand: n.Operand.Accept(c).(Expr), Op: n.Op}
}

func (c *cloner) VisitVariable(n *Variable) Node {
	return &Variable{ID: n.ID}
}

func (c *cloner) VisitReturn(n *Return) Node {
	return &Return{Atom: c.atom(n.Atom)}
}

func (c *cloner) VisitPhi(n *Phi) Node {
	vars := make([]*Variable, len(n.Vars))
	for i, v := range n.Vars {
		vars[i] = &Variable{ID: v.ID}
	}
	return &Phi{Vars: vars}
}

func (c *cloner) VisitInt(n *Int) Node       { return &Int{Value: n.Value} }
func (c *cloner) VisitDouble(n *Double) Node { return &Double{Value: n.Value} }
func (c *cloner) VisitPtr(n *Ptr) Node       { return &Ptr{Value: n.Value, Pooled: n.Pooled} }

func (c *cloner) VisitBlock(n *Block) Node {
	return c.block(n)
}

func (c *cloner) VisitAssignment(n *Assignment) Node {
	return &Assignment{
		Var:   n.Var.Accept(c).(*Variable),
		Value: n.Value.Accept(c).(Expr),
	}
}

func (c *cloner) VisitCall(n *Call) Node {
	args := make([]Atom, len(n.Args))
	for i, a := range n.Args {
		args[i] = c.atom(a)
	}
	return &Call{FunctionID: n.FunctionID, Args: args}
}

func (c *cloner) VisitPrint(n *Print) Node {
	return &Print{Atom: c.atom(n.Atom)}
}

func (c *cloner) VisitFunction(n *Function) Node {
	return CloneFunction(n)
}

func (c *cloner) VisitJumpAlways(n *JumpAlways) Node {
	return &JumpAlways{Target: c.block(n.Target)}
}

func (c *cloner) VisitJumpCond(n *JumpCond) Node {
	return &JumpCond{
		Yes:       c.block(n.Yes),
		No:        c.block(n.No),
		Condition: c.atom(n.Condition),
	}
}
