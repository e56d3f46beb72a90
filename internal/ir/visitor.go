package ir

// Visitor is the traversal protocol over the closed node taxonomy.
//
// Dispatch is double: a node's Accept method selects the handler matching
// its own kind, so a caller holding only the abstract Node type still
// reaches the correct concrete handler and a traversal never tests kinds
// manually.
//
// Each handler takes the concrete node and returns a node: the argument
// itself for read-only analyses, or a replacement for rewrites. The
// caller performing the traversal owns the decision to substitute the
// result; handlers never mutate the visited node in place.
//
// The interface has one method per kind, so totality over the taxonomy
// is enforced at compile time: a traversal missing a case does not build.
// Adding a kind to the enumeration therefore breaks every traversal until
// it handles the new case, which is the intended pressure.
type Visitor interface {
	VisitBinOp(n *BinOp) Node
	VisitUnOp(n *UnOp) Node
	VisitVariable(n *Variable) Node
	VisitReturn(n *Return) Node
	VisitPhi(n *Phi) Node
	VisitInt(n *Int) Node
	VisitDouble(n *Double) Node
	VisitPtr(n *Ptr) Node
	VisitBlock(n *Block) Node
	VisitAssignment(n *Assignment) Node
	VisitCall(n *Call) Node
	VisitPrint(n *Print) Node
	VisitFunction(n *Function) Node
	VisitJumpAlways(n *JumpAlways) Node
	VisitJumpCond(n *JumpCond) Node
}
