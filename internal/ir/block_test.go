package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkAlways(t *testing.T) {
	entry := NewBlock("entry")
	exit := NewBlock("exit")

	require.NoError(t, entry.LinkAlways(exit))

	assert.Equal(t, []*Block{entry}, exit.Predecessors)
	assert.Empty(t, entry.Predecessors)

	jump, ok := AsJumpAlways(entry.Transition())
	require.True(t, ok)
	assert.Same(t, exit, jump.Target)
}

func TestLinkAlwaysTwiceFails(t *testing.T) {
	a := NewBlock("a")
	b := NewBlock("b")
	c := NewBlock("c")

	require.NoError(t, a.LinkAlways(b))
	err := a.LinkAlways(c)
	require.Error(t, err)
	assert.True(t, IsDuplicateTransition(err))

	// The failed link must leave the block untouched: same transition,
	// no predecessor recorded on the rejected target.
	jump, ok := AsJumpAlways(a.Transition())
	require.True(t, ok)
	assert.Same(t, b, jump.Target)
	assert.Empty(t, c.Predecessors)
}

func TestLinkCondDistinctTargets(t *testing.T) {
	a := NewBlock("a")
	yes := NewBlock("yes")
	no := NewBlock("no")
	cond := &Variable{ID: 1}

	require.NoError(t, a.LinkCond(yes, no, cond))

	assert.Equal(t, []*Block{a}, yes.Predecessors)
	assert.Equal(t, []*Block{a}, no.Predecessors)

	jump, ok := AsJumpCond(a.Transition())
	require.True(t, ok)
	assert.Same(t, yes, jump.Yes)
	assert.Same(t, no, jump.No)
	assert.Same(t, cond, jump.Condition)
}

func TestLinkCondSameTargetRecordsTwoEdges(t *testing.T) {
	a := NewBlock("a")
	b := NewBlock("b")

	require.NoError(t, a.LinkCond(b, b, &Int{Value: 1}))

	// One entry per incoming edge; the duplicate must not be collapsed.
	assert.Equal(t, []*Block{a, a}, b.Predecessors)
}

func TestLinkCondAfterLinkAlwaysFails(t *testing.T) {
	a := NewBlock("a")
	b := NewBlock("b")
	require.NoError(t, a.LinkAlways(b))

	err := a.LinkCond(b, b, &Int{Value: 0})
	require.Error(t, err)
	assert.Equal(t, ErrCodeDuplicateTransition, CodeOf(err))
	assert.Equal(t, []*Block{a}, b.Predecessors, "failed link must not add edges")
}

func TestLoopBackEdge(t *testing.T) {
	// cond -> (loopBody | after); loopBody -> cond. The overlay cycles,
	// the ownership layer does not.
	cond := NewBlock("cond")
	loopBody := NewBlock("loopBody")
	after := NewBlock("after")

	require.NoError(t, cond.LinkCond(loopBody, after, &Variable{ID: 9}))
	require.NoError(t, loopBody.LinkAlways(cond))

	assert.Equal(t, []*Block{loopBody}, cond.Predecessors)
	assert.Equal(t, []*Block{cond}, loopBody.Predecessors)
	assert.Equal(t, []*Block{cond}, after.Predecessors)

	// The graph must be traversable despite the cycle.
	order := reachable(cond)
	assert.ElementsMatch(t, []*Block{cond, loopBody, after}, order)
}

func TestUnlinkedBlockHasNoTransition(t *testing.T) {
	b := NewBlock("placeholder")
	assert.Nil(t, b.Transition())
	assert.Empty(t, b.Statements)
}

func TestAppendPreservesOrder(t *testing.T) {
	b := NewBlock("b")
	s1 := &Print{Atom: &Int{Value: 1}}
	s2 := &Return{Atom: nil}
	b.Append(s1)
	b.Append(s2)
	require.Len(t, b.Statements, 2)
	assert.Same(t, s1, b.Statements[0])
	assert.Same(t, s2, b.Statements[1])
}
