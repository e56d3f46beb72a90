package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mathvm/mvmir/internal/ir"
	"github.com/mathvm/mvmir/internal/testutil"
)

func TestProgramGolden(t *testing.T) {
	p := testutil.LoopProgram(t)
	testutil.AssertGolden(t, "loop_program", []byte(Program(p)))
}

func TestFunctionGolden(t *testing.T) {
	f := testutil.LeafFunction(t, 1)
	testutil.AssertGolden(t, "leaf_function", []byte(Function(f)))
}

func TestExpr(t *testing.T) {
	tests := []struct {
		name string
		expr ir.Expr
		want string
	}{
		{"int", &ir.Int{Value: -7}, "-7"},
		{"double", &ir.Double{Value: 1.5}, "1.5"},
		{"raw_ptr", &ir.Ptr{Value: 0x2a}, "0x2a"},
		{"pooled_ptr", &ir.Ptr{Value: 3, Pooled: true}, "pool[3]"},
		{"variable", &ir.Variable{ID: 12}, "v12"},
		{
			"binop",
			&ir.BinOp{Left: &ir.Variable{ID: 1}, Right: &ir.Int{Value: 2}, Op: ir.BinXor},
			"(v1 ^ 2)",
		},
		{
			"nested",
			&ir.BinOp{
				Left:  &ir.UnOp{Operand: &ir.Variable{ID: 1}, Op: ir.UnNot},
				Right: &ir.BinOp{Left: &ir.Variable{ID: 2}, Right: &ir.Variable{ID: 3}, Op: ir.BinLand},
				Op:    ir.BinLor,
			},
			"((! v1) || (v2 && v3))",
		},
		{
			"cast",
			&ir.UnOp{Operand: &ir.Variable{ID: 4}, Op: ir.UnCastDoubleToInt},
			"(<d2i> v4)",
		},
		{
			"phi",
			&ir.Phi{Vars: []*ir.Variable{{ID: 3}, {ID: 7}}},
			"phi(v3, v7)",
		},
		{
			"call",
			&ir.Call{FunctionID: 9, Args: []ir.Atom{&ir.Int{Value: 1}, &ir.Variable{ID: 2}}},
			"call f9(1, v2)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expr(tt.expr))
		})
	}
}

func TestUnlinkedBlockRendersPlaceholder(t *testing.T) {
	f := ir.NewFunction(3, ir.TypeBot)
	got := Function(f)
	assert.Contains(t, got, "block entry3:\n")
	assert.Contains(t, got, "(no transition)")
}

func TestCloneDisassemblesIdentically(t *testing.T) {
	// Observational equality through the printer: the identity rewrite
	// must reproduce the exact same text.
	p := testutil.LoopProgram(t)
	clone, err := ir.CloneProgram(p)
	assert.NoError(t, err)
	assert.Equal(t, Program(p), Program(clone))
}
