package ir

// BinOp applies a binary operator to two owned sub-expressions.
type BinOp struct {
	Left  Expr
	Right Expr
	Op    BinOpKind
}

func (*BinOp) Kind() Kind              { return KindBinOp }
func (n *BinOp) Accept(v Visitor) Node { return v.VisitBinOp(n) }
func (*BinOp) irNode()                 {}
func (*BinOp) exprNode()               {}

// UnOp applies a unary operator to one owned sub-expression.
type UnOp struct {
	Operand Expr
	Op      UnOpKind
}

func (*UnOp) Kind() Kind              { return KindUnOp }
func (n *UnOp) Accept(v Visitor) Node { return v.VisitUnOp(n) }
func (*UnOp) irNode()                 {}
func (*UnOp) exprNode()               {}

// Phi selects among several incoming variable definitions at a
// control-flow merge point. The variable list is ordered and non-owning.
type Phi struct {
	Vars []*Variable
}

func (*Phi) Kind() Kind              { return KindPhi }
func (n *Phi) Accept(v Visitor) Node { return v.VisitPhi(n) }
func (*Phi) irNode()                 {}
func (*Phi) exprNode()               {}

// Call invokes the function identified by FunctionID with an ordered
// argument list. Arguments are shared, read-only atoms: they may be
// referenced elsewhere, so the call does not own them.
type Call struct {
	FunctionID uint16
	Args       []Atom
}

func (*Call) Kind() Kind              { return KindCall }
func (n *Call) Accept(v Visitor) Node { return v.VisitCall(n) }
func (*Call) irNode()                 {}
func (*Call) exprNode()               {}
