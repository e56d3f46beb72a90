package ir

// Assignment binds a variable to the value of an owned expression.
type Assignment struct {
	Var   *Variable
	Value Expr
}

func (*Assignment) Kind() Kind              { return KindAssignment }
func (n *Assignment) Accept(v Visitor) Node { return v.VisitAssignment(n) }
func (*Assignment) irNode()                 {}
func (*Assignment) stmtNode()               {}

// Return leaves the current function. Atom is nil for a void return.
type Return struct {
	Atom Atom
}

func (*Return) Kind() Kind              { return KindReturn }
func (n *Return) Accept(v Visitor) Node { return v.VisitReturn(n) }
func (*Return) irNode()                 {}
func (*Return) stmtNode()               {}

// Print writes an atom's value to the program's output.
type Print struct {
	Atom Atom
}

func (*Print) Kind() Kind              { return KindPrint }
func (n *Print) Accept(v Visitor) Node { return v.VisitPrint(n) }
func (*Print) irNode()                 {}
func (*Print) stmtNode()               {}
