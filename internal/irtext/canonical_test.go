package irtext

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathvm/mvmir/internal/ir"
	"github.com/mathvm/mvmir/internal/testutil"
)

func poolOnlyProgram(t *testing.T, pooled string) *ir.Program {
	t.Helper()
	p := ir.NewProgram()
	f := ir.NewFunction(0, ir.TypeBot)
	idx := f.AddToPool(pooled)
	f.Entry.Append(
		&ir.Print{Atom: &ir.Ptr{Value: uint64(idx), Pooled: true}},
		&ir.Return{},
	)
	require.NoError(t, f.Entry.LinkAlways(f.Entry))
	require.NoError(t, p.AddFunction(f))
	return p
}

func TestProgramIDDeterministic(t *testing.T) {
	a, err := ProgramID(testutil.LoopProgram(t))
	require.NoError(t, err)
	b, err := ProgramID(testutil.LoopProgram(t))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestProgramIDStableAcrossClone(t *testing.T) {
	p := testutil.LoopProgram(t)
	clone, err := ir.CloneProgram(p)
	require.NoError(t, err)

	orig, err := ProgramID(p)
	require.NoError(t, err)
	cloned, err := ProgramID(clone)
	require.NoError(t, err)
	assert.Equal(t, orig, cloned)
}

func TestProgramIDDistinguishesPrograms(t *testing.T) {
	loop, err := ProgramID(testutil.LoopProgram(t))
	require.NoError(t, err)
	leaf, err := ProgramID(poolOnlyProgram(t, "mvm"))
	require.NoError(t, err)
	assert.NotEqual(t, loop, leaf)
}

func TestCanonicalNormalizesUnicode(t *testing.T) {
	// "café" spelled precomposed vs with a combining acute. The two
	// programs differ byte-wise but must share one identity.
	composed := poolOnlyProgram(t, "caf\u00e9")
	decomposed := poolOnlyProgram(t, "cafe\u0301")

	a, err := MarshalCanonical(composed)
	require.NoError(t, err)
	b, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCanonicalIsCompact(t *testing.T) {
	data, err := MarshalCanonical(testutil.LoopProgram(t))
	require.NoError(t, err)
	assert.False(t, bytes.ContainsRune(data, '\n'))
	assert.False(t, bytes.Contains(data, []byte(": ")))
}
