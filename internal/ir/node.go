package ir

// Node is the sealed interface implemented by every IR node.
//
// Only types in this package implement it. The marker method pattern
// prevents external implementations, so a type switch over the concrete
// node types together with the closed Kind enumeration is exhaustive.
type Node interface {
	// Kind reports the node's kind tag. The tag is fixed at construction
	// and never reassigned.
	Kind() Kind

	// Accept dispatches to the visitor handler for this node's concrete
	// kind and returns the handler's result: the node itself for
	// read-only analyses, or a replacement node for rewrites.
	Accept(v Visitor) Node

	irNode() // Marker method - seals interface to this package
}

// Expr is a value-producing node: atoms, binary and unary operations,
// phi joins and calls.
type Expr interface {
	Node
	exprNode()
}

// Atom is a leaf expression producing a value with no sub-evaluation:
// literals and variable references.
type Atom interface {
	Expr
	atomNode()
}

// Stmt is a side-effecting unit whose value is not consumed further.
type Stmt interface {
	Node
	stmtNode()
}

// Jump is a block's outgoing transition, either unconditional or
// two-way conditional. Target references are non-owning: the control-flow
// overlay may contain cycles.
type Jump interface {
	Node
	jumpNode()
}

// Checked downcasts. Each succeeds only if the node's actual kind matches
// the requested one and otherwise reports an absent result; a wrong-typed
// value is never produced. A nil node yields an absent result for every
// kind.

// AsBinOp downcasts n to *BinOp.
func AsBinOp(n Node) (*BinOp, bool) { v, ok := n.(*BinOp); return v, ok }

// AsUnOp downcasts n to *UnOp.
func AsUnOp(n Node) (*UnOp, bool) { v, ok := n.(*UnOp); return v, ok }

// AsVariable downcasts n to *Variable.
func AsVariable(n Node) (*Variable, bool) { v, ok := n.(*Variable); return v, ok }

// AsReturn downcasts n to *Return.
func AsReturn(n Node) (*Return, bool) { v, ok := n.(*Return); return v, ok }

// AsPhi downcasts n to *Phi.
func AsPhi(n Node) (*Phi, bool) { v, ok := n.(*Phi); return v, ok }

// AsInt downcasts n to *Int.
func AsInt(n Node) (*Int, bool) { v, ok := n.(*Int); return v, ok }

// AsDouble downcasts n to *Double.
func AsDouble(n Node) (*Double, bool) { v, ok := n.(*Double); return v, ok }

// AsPtr downcasts n to *Ptr.
func AsPtr(n Node) (*Ptr, bool) { v, ok := n.(*Ptr); return v, ok }

// AsBlock downcasts n to *Block.
func AsBlock(n Node) (*Block, bool) { v, ok := n.(*Block); return v, ok }

// AsAssignment downcasts n to *Assignment.
func AsAssignment(n Node) (*Assignment, bool) { v, ok := n.(*Assignment); return v, ok }

// AsCall downcasts n to *Call.
func AsCall(n Node) (*Call, bool) { v, ok := n.(*Call); return v, ok }

// AsPrint downcasts n to *Print.
func AsPrint(n Node) (*Print, bool) { v, ok := n.(*Print); return v, ok }

// AsFunction downcasts n to *Function.
func AsFunction(n Node) (*Function, bool) { v, ok := n.(*Function); return v, ok }

// AsJumpAlways downcasts n to *JumpAlways.
func AsJumpAlways(n Node) (*JumpAlways, bool) { v, ok := n.(*JumpAlways); return v, ok }

// AsJumpCond downcasts n to *JumpCond.
func AsJumpCond(n Node) (*JumpCond, bool) { v, ok := n.(*JumpCond); return v, ok }
