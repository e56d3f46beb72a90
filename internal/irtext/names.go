package irtext

import "github.com/mathvm/mvmir/internal/ir"

// Mnemonic names used in program documents. Display symbols stay in the
// node layer; documents use word-shaped names so they survive YAML
// without quoting.

var binOpNames = map[ir.BinOpKind]string{
	ir.BinAdd:  "add",
	ir.BinSub:  "sub",
	ir.BinMul:  "mul",
	ir.BinDiv:  "div",
	ir.BinMod:  "mod",
	ir.BinLT:   "lt",
	ir.BinLE:   "le",
	ir.BinEQ:   "eq",
	ir.BinNEQ:  "neq",
	ir.BinOr:   "or",
	ir.BinAnd:  "and",
	ir.BinLor:  "lor",
	ir.BinLand: "land",
	ir.BinXor:  "xor",
}

var unOpNames = map[ir.UnOpKind]string{
	ir.UnCastIntToDouble: "i2d",
	ir.UnCastDoubleToInt: "d2i",
	ir.UnCastPtrToInt:    "p2i",
	ir.UnCastIntToPtr:    "i2p",
	ir.UnNeg:             "neg",
	ir.UnNot:             "not",
}

var typeNames = map[ir.Type]string{
	ir.TypeBot:    "bot",
	ir.TypeInt:    "int",
	ir.TypeDouble: "double",
	ir.TypePtr:    "ptr",
}

var (
	binOpByName = invert(binOpNames)
	unOpByName  = invert(unOpNames)
	typeByName  = invert(typeNames)
)

func invert[K comparable, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
