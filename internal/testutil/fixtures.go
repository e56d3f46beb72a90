package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mathvm/mvmir/internal/ir"
)

// LoopProgram builds the canonical two-function fixture used across
// snapshot and round-trip tests. Function 0 counts from the sum of its
// parameters, calling function 1 each iteration; the graph exercises
// every node kind, a conditional diamond and a loop back-edge.
//
// Function 0 layout:
//
//	entry0: v3 = v1 + v2            -> cond
//	cond:   v4 = phi(v3, v7)
//	        v5 = v4 < 10            -> body | after
//	body:   v6 = call f1()
//	        v7 = v4 + 1             -> cond
//	after:  v8 = <i2d> v4
//	        print v8
//	        return v4               -> after
func LoopProgram(t *testing.T) *ir.Program {
	t.Helper()

	p := ir.NewProgram()

	main := ir.NewFunction(0, ir.TypeInt)
	main.Params = []uint64{1, 2}

	cond := main.NewBlock("cond")
	body := main.NewBlock("body")
	after := main.NewBlock("after")

	main.Entry.Append(
		&ir.Assignment{Var: &ir.Variable{ID: 3}, Value: &ir.BinOp{
			Left:  &ir.Variable{ID: 1},
			Right: &ir.Variable{ID: 2},
			Op:    ir.BinAdd,
		}},
	)
	require.NoError(t, main.Entry.LinkAlways(cond))

	cond.Append(
		&ir.Assignment{Var: &ir.Variable{ID: 4}, Value: &ir.Phi{
			Vars: []*ir.Variable{{ID: 3}, {ID: 7}},
		}},
		&ir.Assignment{Var: &ir.Variable{ID: 5}, Value: &ir.BinOp{
			Left:  &ir.Variable{ID: 4},
			Right: &ir.Int{Value: 10},
			Op:    ir.BinLT,
		}},
	)
	require.NoError(t, cond.LinkCond(body, after, &ir.Variable{ID: 5}))

	body.Append(
		&ir.Assignment{Var: &ir.Variable{ID: 6}, Value: &ir.Call{FunctionID: 1}},
		&ir.Assignment{Var: &ir.Variable{ID: 7}, Value: &ir.BinOp{
			Left:  &ir.Variable{ID: 4},
			Right: &ir.Int{Value: 1},
			Op:    ir.BinAdd,
		}},
	)
	require.NoError(t, body.LinkAlways(cond))

	after.Append(
		&ir.Assignment{Var: &ir.Variable{ID: 8}, Value: &ir.UnOp{
			Operand: &ir.Variable{ID: 4},
			Op:      ir.UnCastIntToDouble,
		}},
		&ir.Print{Atom: &ir.Variable{ID: 8}},
		&ir.Return{Atom: &ir.Variable{ID: 4}},
	)
	require.NoError(t, after.LinkAlways(after))

	require.NoError(t, p.AddFunction(main))
	require.NoError(t, p.AddFunction(LeafFunction(t, 1)))

	require.Empty(t, ir.ValidateProgram(p))
	return p
}

// LeafFunction builds a minimal well-formed function with one pooled
// string: print it, return nothing, self-loop to terminate.
func LeafFunction(t *testing.T, id uint16) *ir.Function {
	t.Helper()

	f := ir.NewFunction(id, ir.TypeBot)
	idx := f.AddToPool("mvm")
	f.Entry.Append(
		&ir.Print{Atom: &ir.Ptr{Value: uint64(idx), Pooled: true}},
		&ir.Return{},
	)
	require.NoError(t, f.Entry.LinkAlways(f.Entry))
	return f
}
