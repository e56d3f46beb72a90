package ir

// Int is a 64-bit signed integer literal.
type Int struct {
	Value int64
}

func (*Int) Kind() Kind           { return KindInt }
func (n *Int) Accept(v Visitor) Node { return v.VisitInt(n) }
func (*Int) irNode()              {}
func (*Int) exprNode()            {}
func (*Int) atomNode()            {}

// Double is a 64-bit float literal.
type Double struct {
	Value float64
}

func (*Double) Kind() Kind           { return KindDouble }
func (n *Double) Accept(v Visitor) Node { return v.VisitDouble(n) }
func (*Double) irNode()              {}
func (*Double) exprNode()            {}
func (*Double) atomNode()            {}

// Ptr is a 64-bit pointer literal. When Pooled is set, Value is an index
// into the owning function's literal pool rather than a raw address.
type Ptr struct {
	Value  uint64
	Pooled bool
}

func (*Ptr) Kind() Kind           { return KindPtr }
func (n *Ptr) Accept(v Visitor) Node { return v.VisitPtr(n) }
func (*Ptr) irNode()              {}
func (*Ptr) exprNode()            {}
func (*Ptr) atomNode()            {}

// Variable is a reference to a variable by identifier. Identifiers are
// unique within the owning function, not across functions, and carry no
// embedded type; typing is contextual.
type Variable struct {
	ID uint64
}

func (*Variable) Kind() Kind           { return KindVariable }
func (n *Variable) Accept(v Visitor) Node { return v.VisitVariable(n) }
func (*Variable) irNode()              {}
func (*Variable) exprNode()            {}
func (*Variable) atomNode()            {}
