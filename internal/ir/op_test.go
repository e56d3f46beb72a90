package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinOpSymbols(t *testing.T) {
	tests := []struct {
		op   BinOpKind
		want string
	}{
		{BinAdd, "+"},
		{BinSub, "-"},
		{BinMul, "*"},
		{BinDiv, "/"},
		{BinMod, "%"},
		{BinLT, "<"},
		{BinLE, "<="},
		{BinEQ, "=="},
		{BinNEQ, "!="},
		{BinOr, "|"},
		{BinAnd, "&"},
		{BinLor, "||"},
		{BinLand, "&&"},
		{BinXor, "^"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
	assert.Equal(t, "?", BinOpKind(numBinOps).String())
}

func TestBitwiseAndLogicalFormsStayDistinct(t *testing.T) {
	// Or/And are bitwise, Lor/Land short-circuit boolean. Distinct tags,
	// distinct symbols; no layer below the evaluator may conflate them.
	assert.NotEqual(t, BinOr, BinLor)
	assert.NotEqual(t, BinAnd, BinLand)
	assert.NotEqual(t, BinOr.String(), BinLor.String())
	assert.NotEqual(t, BinAnd.String(), BinLand.String())
}

func TestUnOpSymbols(t *testing.T) {
	tests := []struct {
		op   UnOpKind
		want string
	}{
		{UnCastIntToDouble, "<i2d>"},
		{UnCastDoubleToInt, "<d2i>"},
		{UnCastPtrToInt, "<p2i>"},
		{UnCastIntToPtr, "<i2p>"},
		{UnNeg, "-"},
		{UnNot, "!"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "bot", TypeBot.String())
	assert.Equal(t, "int", TypeInt.String())
	assert.Equal(t, "double", TypeDouble.String())
	assert.Equal(t, "ptr", TypePtr.String())
	assert.Equal(t, "invalid", Type(numTypes).String())
}
