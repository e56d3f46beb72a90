package ir

// BinOpKind identifies a binary operator.
//
// Or/And are the bitwise, non-short-circuiting forms; Lor/Land are the
// short-circuiting boolean forms. The four are distinct tags with distinct
// display symbols and are never folded into each other.
type BinOpKind uint8

const (
	BinAdd BinOpKind = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinLT
	BinLE
	BinEQ
	BinNEQ
	BinOr
	BinAnd
	BinLor
	BinLand
	BinXor

	numBinOps = int(BinXor) + 1
)

// binOpSymbols is the single source of truth for binary operator display
// symbols, used by the disassembler and diagnostics.
var binOpSymbols = [numBinOps]string{
	BinAdd:  "+",
	BinSub:  "-",
	BinMul:  "*",
	BinDiv:  "/",
	BinMod:  "%",
	BinLT:   "<",
	BinLE:   "<=",
	BinEQ:   "==",
	BinNEQ:  "!=",
	BinOr:   "|",
	BinAnd:  "&",
	BinLor:  "||",
	BinLand: "&&",
	BinXor:  "^",
}

// String returns the canonical display symbol of the operator.
func (k BinOpKind) String() string {
	if int(k) < numBinOps {
		return binOpSymbols[k]
	}
	return "?"
}

// UnOpKind identifies a unary operator.
type UnOpKind uint8

const (
	UnCastIntToDouble UnOpKind = iota
	UnCastDoubleToInt
	UnCastPtrToInt
	UnCastIntToPtr
	UnNeg
	UnNot

	numUnOps = int(UnNot) + 1
)

// unOpSymbols is the single source of truth for unary operator display
// symbols. The cast spellings match the toolchain's disassembly format.
var unOpSymbols = [numUnOps]string{
	UnCastIntToDouble: "<i2d>",
	UnCastDoubleToInt: "<d2i>",
	UnCastPtrToInt:    "<p2i>",
	UnCastIntToPtr:    "<i2p>",
	UnNeg:             "-",
	UnNot:             "!",
}

// String returns the canonical display symbol of the operator.
func (k UnOpKind) String() string {
	if int(k) < numUnOps {
		return unOpSymbols[k]
	}
	return "?"
}

// Type is the small fixed set of value types this layer assumes are
// already resolved. Bot marks the absence of a value (a void return).
type Type uint8

const (
	TypeBot Type = iota
	TypeInt
	TypeDouble
	TypePtr

	numTypes = int(TypePtr) + 1
)

var typeNames = [numTypes]string{
	TypeBot:    "bot",
	TypeInt:    "int",
	TypeDouble: "double",
	TypePtr:    "ptr",
}

// String returns the display name of the type.
func (t Type) String() string {
	if int(t) < numTypes {
		return typeNames[t]
	}
	return "invalid"
}
