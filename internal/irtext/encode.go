package irtext

import (
	"slices"

	"github.com/mathvm/mvmir/internal/ir"
)

// Encode renders a program as a document. Traversal runs entirely
// through the visitor protocol; the graph is not modified.
func Encode(p *ir.Program) *Document {
	doc := &Document{Version: DocumentVersion}
	enc := &encoder{}
	for _, f := range p.Functions() {
		f.Accept(enc)
		doc.Functions = append(doc.Functions, enc.fn)
	}
	return doc
}

// encoder is a total visitor lowering nodes into document unions.
// Handlers stage their result in the matching field and return their
// input unchanged.
type encoder struct {
	expr  ExprDoc
	stmt  StmtDoc
	jump  *JumpDoc
	block BlockDoc
	fn    FunctionDoc
}

func (e *encoder) exprOf(n ir.Expr) ExprDoc {
	n.Accept(e)
	return e.expr
}

func (e *encoder) VisitFunction(f *ir.Function) ir.Node {
	fd := FunctionDoc{
		ID:      f.ID,
		Returns: typeNames[f.ReturnType],
		Params:  slices.Clone(f.Params),
		Pool:    slices.Clone(f.Pool()),
	}
	for _, b := range f.Blocks() {
		b.Accept(e)
		fd.Blocks = append(fd.Blocks, e.block)
	}
	e.fn = fd
	return f
}

func (e *encoder) VisitBlock(b *ir.Block) ir.Node {
	bd := BlockDoc{Name: b.Name}
	for _, s := range b.Statements {
		s.Accept(e)
		bd.Stmts = append(bd.Stmts, e.stmt)
	}
	if tr := b.Transition(); tr != nil {
		tr.Accept(e)
		bd.Jump = e.jump
	}
	e.block = bd
	return b
}

func (e *encoder) VisitJumpAlways(n *ir.JumpAlways) ir.Node {
	name := n.Target.Name
	e.jump = &JumpDoc{Always: &name}
	return n
}

func (e *encoder) VisitJumpCond(n *ir.JumpCond) ir.Node {
	e.jump = &JumpDoc{Cond: &CondDoc{
		If:  e.exprOf(n.Condition),
		Yes: n.Yes.Name,
		No:  n.No.Name,
	}}
	return n
}

func (e *encoder) VisitAssignment(n *ir.Assignment) ir.Node {
	e.stmt = StmtDoc{Assign: &AssignDoc{
		Var:   n.Var.ID,
		Value: e.exprOf(n.Value),
	}}
	return n
}

func (e *encoder) VisitReturn(n *ir.Return) ir.Node {
	rd := &ReturnDoc{}
	if n.Atom != nil {
		atom := e.exprOf(n.Atom)
		rd.Atom = &atom
	}
	e.stmt = StmtDoc{Return: rd}
	return n
}

func (e *encoder) VisitPrint(n *ir.Print) ir.Node {
	atom := e.exprOf(n.Atom)
	e.stmt = StmtDoc{Print: &atom}
	return n
}

func (e *encoder) VisitBinOp(n *ir.BinOp) ir.Node {
	left := e.exprOf(n.Left)
	right := e.exprOf(n.Right)
	e.expr = ExprDoc{BinOp: &BinOpDoc{
		Op:    binOpNames[n.Op],
		Left:  left,
		Right: right,
	}}
	return n
}

func (e *encoder) VisitUnOp(n *ir.UnOp) ir.Node {
	e.expr = ExprDoc{UnOp: &UnOpDoc{
		Op:      unOpNames[n.Op],
		Operand: e.exprOf(n.Operand),
	}}
	return n
}

func (e *encoder) VisitPhi(n *ir.Phi) ir.Node {
	ids := make([]uint64, len(n.Vars))
	for i, v := range n.Vars {
		ids[i] = v.ID
	}
	e.expr = ExprDoc{Phi: ids}
	return n
}

func (e *encoder) VisitCall(n *ir.Call) ir.Node {
	cd := &CallDoc{Function: n.FunctionID}
	for _, a := range n.Args {
		cd.Args = append(cd.Args, e.exprOf(a))
	}
	e.expr = ExprDoc{Call: cd}
	return n
}

func (e *encoder) VisitInt(n *ir.Int) ir.Node {
	v := n.Value
	e.expr = ExprDoc{Int: &v}
	return n
}

func (e *encoder) VisitDouble(n *ir.Double) ir.Node {
	v := n.Value
	e.expr = ExprDoc{Double: &v}
	return n
}

func (e *encoder) VisitPtr(n *ir.Ptr) ir.Node {
	e.expr = ExprDoc{Ptr: &PtrDoc{Value: n.Value, Pooled: n.Pooled}}
	return n
}

func (e *encoder) VisitVariable(n *ir.Variable) ir.Node {
	id := n.ID
	e.expr = ExprDoc{Var: &id}
	return n
}
