// Package disasm renders IR to a stable textual form for diagnostics,
// golden tests and the CLI dump command.
//
// The printer is a visitor: it consumes the taxonomy exclusively through
// the dispatch protocol and never tests node kinds by hand. Every handler
// is read-only and returns the visited node unchanged.
package disasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mathvm/mvmir/internal/ir"
)

// Program renders a whole program: a header followed by each function in
// insertion order, separated by blank lines.
func Program(p *ir.Program) string {
	pr := &printer{}
	fmt.Fprintf(&pr.b, "program with %d function(s)\n", len(p.Functions()))
	for _, f := range p.Functions() {
		pr.b.WriteString("\n")
		f.Accept(pr)
	}
	return pr.b.String()
}

// Function renders a single function: header, parameters, literal pool
// and every registered block in creation order.
func Function(f *ir.Function) string {
	pr := &printer{}
	f.Accept(pr)
	return pr.b.String()
}

// Expr renders an expression tree on one line.
func Expr(e ir.Expr) string {
	pr := &printer{}
	e.Accept(pr)
	return pr.b.String()
}

type printer struct {
	b strings.Builder
}

func (p *printer) VisitFunction(n *ir.Function) ir.Node {
	fmt.Fprintf(&p.b, "function %d returns %s\n", n.ID, n.ReturnType)
	if len(n.Params) > 0 {
		p.b.WriteString("  params: ")
		for i, id := range n.Params {
			if i > 0 {
				p.b.WriteString(", ")
			}
			fmt.Fprintf(&p.b, "v%d", id)
		}
		p.b.WriteString("\n")
	}
	for i, s := range n.Pool() {
		fmt.Fprintf(&p.b, "  pool[%d] = %s\n", i, strconv.Quote(s))
	}
	for _, blk := range n.Blocks() {
		blk.Accept(p)
	}
	return n
}

func (p *printer) VisitBlock(n *ir.Block) ir.Node {
	fmt.Fprintf(&p.b, "  block %s:", n.Name)
	if len(n.Predecessors) > 0 {
		p.b.WriteString("  ; preds: ")
		for i, pred := range n.Predecessors {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.b.WriteString(pred.Name)
		}
	}
	p.b.WriteString("\n")
	for _, s := range n.Statements {
		p.b.WriteString("    ")
		s.Accept(p)
		p.b.WriteString("\n")
	}
	p.b.WriteString("    ")
	if t := n.Transition(); t != nil {
		t.Accept(p)
	} else {
		p.b.WriteString("(no transition)")
	}
	p.b.WriteString("\n")
	return n
}

func (p *printer) VisitAssignment(n *ir.Assignment) ir.Node {
	n.Var.Accept(p)
	p.b.WriteString(" = ")
	n.Value.Accept(p)
	return n
}

func (p *printer) VisitReturn(n *ir.Return) ir.Node {
	p.b.WriteString("return")
	if n.Atom != nil {
		p.b.WriteString(" ")
		n.Atom.Accept(p)
	}
	return n
}

func (p *printer) VisitPrint(n *ir.Print) ir.Node {
	p.b.WriteString("print ")
	n.Atom.Accept(p)
	return n
}

func (p *printer) VisitJumpAlways(n *ir.JumpAlways) ir.Node {
	fmt.Fprintf(&p.b, "goto %s", n.Target.Name)
	return n
}

func (p *printer) VisitJumpCond(n *ir.JumpCond) ir.Node {
	p.b.WriteString("if ")
	n.Condition.Accept(p)
	fmt.Fprintf(&p.b, " goto %s else %s", n.Yes.Name, n.No.Name)
	return n
}

func (p *printer) VisitBinOp(n *ir.BinOp) ir.Node {
	p.b.WriteString("(")
	n.Left.Accept(p)
	fmt.Fprintf(&p.b, " %s ", n.Op)
	n.Right.Accept(p)
	p.b.WriteString(")")
	return n
}

func (p *printer) VisitUnOp(n *ir.UnOp) ir.Node {
	fmt.Fprintf(&p.b, "(%s ", n.Op)
	n.Operand.Accept(p)
	p.b.WriteString(")")
	return n
}

func (p *printer) VisitPhi(n *ir.Phi) ir.Node {
	p.b.WriteString("phi(")
	for i, v := range n.Vars {
		if i > 0 {
			p.b.WriteString(", ")
		}
		v.Accept(p)
	}
	p.b.WriteString(")")
	return n
}

func (p *printer) VisitCall(n *ir.Call) ir.Node {
	fmt.Fprintf(&p.b, "call f%d(", n.FunctionID)
	for i, a := range n.Args {
		if i > 0 {
			p.b.WriteString(", ")
		}
		a.Accept(p)
	}
	p.b.WriteString(")")
	return n
}

func (p *printer) VisitVariable(n *ir.Variable) ir.Node {
	fmt.Fprintf(&p.b, "v%d", n.ID)
	return n
}

func (p *printer) VisitInt(n *ir.Int) ir.Node {
	fmt.Fprintf(&p.b, "%d", n.Value)
	return n
}

func (p *printer) VisitDouble(n *ir.Double) ir.Node {
	p.b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	return n
}

func (p *printer) VisitPtr(n *ir.Ptr) ir.Node {
	if n.Pooled {
		fmt.Fprintf(&p.b, "pool[%d]", n.Value)
	} else {
		fmt.Fprintf(&p.b, "%#x", n.Value)
	}
	return n
}
