package ir

// Well-formedness checking.
//
// Forward references are legal during incremental construction, so none
// of these defects is detected at construction time. The checks run once
// the front end declares construction complete, collect every defect
// rather than stopping at the first, and never repair anything.

// ValidateFunction checks a single function's control-flow structure.
//
// It walks the blocks reachable from the entry and reports:
//   - INCOMPLETE_FUNCTION for a reachable block with no transition
//   - UNRESOLVED_JUMP_TARGET for a transition whose target is not a
//     registered block of f
//
// Unreachable blocks are ignored: a block with no transition is a valid
// placeholder as long as nothing reaches it.
func ValidateFunction(f *Function) []error {
	var errs []error
	for _, b := range reachable(f.Entry) {
		t := b.Transition()
		if t == nil {
			errs = append(errs, NewIncompleteFunction(f.ID, b.Name))
			continue
		}
		switch j := t.(type) {
		case *JumpAlways:
			if !f.Owns(j.Target) {
				errs = append(errs, NewUnresolvedJumpTarget(f.ID, b.Name, j.Target.Name))
			}
		case *JumpCond:
			if !f.Owns(j.Yes) {
				errs = append(errs, NewUnresolvedJumpTarget(f.ID, b.Name, j.Yes.Name))
			}
			if !f.Owns(j.No) {
				errs = append(errs, NewUnresolvedJumpTarget(f.ID, b.Name, j.No.Name))
			}
		}
	}
	return errs
}

// ValidateProgram checks every function of p and additionally resolves
// call targets against p's function set.
func ValidateProgram(p *Program) []error {
	var errs []error
	for _, f := range p.Functions() {
		errs = append(errs, ValidateFunction(f)...)
		for _, b := range reachable(f.Entry) {
			scan := &callScan{program: p, functionID: f.ID, block: b.Name}
			for _, s := range b.Statements {
				s.Accept(scan)
			}
			if t := b.Transition(); t != nil {
				t.Accept(scan)
			}
			errs = append(errs, scan.errs...)
		}
	}
	return errs
}

// reachable returns the blocks reachable from entry along transitions,
// in breadth-first order. The walk follows the non-owning overlay, so
// loops terminate via the visited set.
func reachable(entry *Block) []*Block {
	visited := map[*Block]bool{entry: true}
	order := []*Block{entry}
	for i := 0; i < len(order); i++ {
		for _, next := range successors(order[i]) {
			if !visited[next] {
				visited[next] = true
				order = append(order, next)
			}
		}
	}
	return order
}

// successors returns a block's outgoing targets, nil if unlinked.
func successors(b *Block) []*Block {
	switch j := b.Transition().(type) {
	case *JumpAlways:
		return []*Block{j.Target}
	case *JumpCond:
		return []*Block{j.Yes, j.No}
	default:
		return nil
	}
}

// callScan is a read-only traversal that resolves every Call node's
// function id against the program. It descends through owned
// sub-expressions; every handler returns its argument unchanged.
type callScan struct {
	program    *Program
	functionID uint16
	block      string
	errs       []error
}

func (s *callScan) VisitBinOp(n *BinOp) Node {
	n.Left.Accept(s)
	n.Right.Accept(s)
	return n
}

func (s *callScan) VisitUnOp(n *UnOp) Node {
	n.Operand.Accept(s)
	return n
}

func (s *callScan) VisitVariable(n *Variable) Node { return n }

func (s *callScan) VisitReturn(n *Return) Node {
	if n.Atom != nil {
		n.Atom.Accept(s)
	}
	return n
}

func (s *callScan) VisitPhi(n *Phi) Node { return n }

func (s *callScan) VisitInt(n *Int) Node       { return n }
func (s *callScan) VisitDouble(n *Double) Node { return n }
func (s *callScan) VisitPtr(n *Ptr) Node       { return n }

func (s *callScan) VisitBlock(n *Block) Node {
	for _, stmt := range n.Statements {
		stmt.Accept(s)
	}
	return n
}

func (s *callScan) VisitAssignment(n *Assignment) Node {
	n.Value.Accept(s)
	return n
}

func (s *callScan) VisitCall(n *Call) Node {
	if _, ok := s.program.FunctionByID(n.FunctionID); !ok {
		s.errs = append(s.errs, NewUnresolvedCallTarget(s.functionID, s.block, n.FunctionID))
	}
	for _, a := range n.Args {
		a.Accept(s)
	}
	return n
}

func (s *callScan) VisitPrint(n *Print) Node {
	if n.Atom != nil {
		n.Atom.Accept(s)
	}
	return n
}

func (s *callScan) VisitFunction(n *Function) Node {
	for _, b := range n.Blocks() {
		b.Accept(s)
	}
	return n
}

func (s *callScan) VisitJumpAlways(n *JumpAlways) Node { return n }

func (s *callScan) VisitJumpCond(n *JumpCond) Node {
	n.Condition.Accept(s)
	return n
}
