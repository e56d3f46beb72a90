package ir

// Kind identifies the concrete type of a node.
//
// The numbering is stable and consumed by serializers and disassemblers:
// new kinds are only appended, existing kinds are never renumbered.
type Kind uint8

const (
	KindBinOp Kind = iota
	KindUnOp
	KindVariable
	KindReturn
	KindPhi
	KindInt
	KindDouble
	KindPtr
	KindBlock
	KindAssignment
	KindCall
	KindPrint
	KindFunction
	KindJumpAlways
	KindJumpCond

	numKinds = int(KindJumpCond) + 1
)

// kindNames is the single source of truth for kind display names.
var kindNames = [numKinds]string{
	KindBinOp:      "binop",
	KindUnOp:       "unop",
	KindVariable:   "variable",
	KindReturn:     "return",
	KindPhi:        "phi",
	KindInt:        "int",
	KindDouble:     "double",
	KindPtr:        "ptr",
	KindBlock:      "block",
	KindAssignment: "assignment",
	KindCall:       "call",
	KindPrint:      "print",
	KindFunction:   "function",
	KindJumpAlways: "jump",
	KindJumpCond:   "jump-cond",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if int(k) < numKinds {
		return kindNames[k]
	}
	return "invalid"
}

// Kinds returns all kinds in their stable enumeration order.
// Consumers that must be total over the taxonomy (serializers,
// conformance tests) iterate this instead of hard-coding the set.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}
