package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCell(t *testing.T) (*Grid, *Cell) {
	t.Helper()
	g, err := NewGrid(Numeric(9))
	require.NoError(t, err)
	c, err := g.At(4, 4)
	require.NoError(t, err)
	return g, c
}

func TestCellSetValue(t *testing.T) {
	_, c := newTestCell(t)

	assert.Equal(t, 9, c.CandidateCount())
	_, ok := c.ResolvedValue()
	assert.False(t, ok)

	require.NoError(t, c.SetValue(7))
	v, ok := c.ResolvedValue()
	assert.True(t, ok)
	assert.Equal(t, Symbol(7), v)
	assert.False(t, c.Solved(), "assignment alone must not lock a cell")

	err := c.SetValue(10)
	var invalid InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, Symbol(10), invalid.Value)
	v, _ = c.ResolvedValue()
	assert.Equal(t, Symbol(7), v, "failed assignment must not change the cell")
}

func TestCellSetValueNone(t *testing.T) {
	_, c := newTestCell(t)

	require.NoError(t, c.SetValue(3))
	require.NoError(t, c.SetValue(None))

	_, ok := c.ResolvedValue()
	assert.False(t, ok, "a cleared cell is not resolved")
	assert.Equal(t, 1, c.CandidateCount(), "cleared cells hold a single null marker")
	assert.Equal(t, []Symbol{None}, c.Candidates())
}

func TestCellEliminate(t *testing.T) {
	g, c := newTestCell(t)

	var collapsed []*Cell
	g.cellHook = func(c *Cell) { collapsed = append(collapsed, c) }

	for v := Symbol(1); v <= 7; v++ {
		c.Eliminate(v)
	}
	assert.Empty(t, collapsed, "two candidates left, hook must not have fired")

	c.Eliminate(8)
	require.Len(t, collapsed, 1, "hook fires when one candidate remains")
	assert.Same(t, c, collapsed[0])

	c.Eliminate(8)
	assert.Len(t, collapsed, 1, "eliminating an absent value is a no-op")
	v, ok := c.ResolvedValue()
	assert.True(t, ok)
	assert.Equal(t, Symbol(9), v)
}

func TestCellSolvedIsImmutable(t *testing.T) {
	_, c := newTestCell(t)

	require.NoError(t, c.SetValue(5))
	c.solved = true

	require.NoError(t, c.SetValue(6), "assigning a solved cell reports no error")
	v, _ := c.ResolvedValue()
	assert.Equal(t, Symbol(5), v)

	c.Eliminate(5)
	assert.Equal(t, 1, c.CandidateCount())

	c.SetCandidates([]Symbol{1, 2, 3})
	assert.Equal(t, []Symbol{5}, c.Candidates())
}

func TestCellSetCandidates(t *testing.T) {
	_, c := newTestCell(t)

	values := []Symbol{4, 7}
	c.SetCandidates(values)
	assert.Equal(t, []Symbol{4, 7}, c.Candidates())

	values[0] = 9
	assert.Equal(t, []Symbol{4, 7}, c.Candidates(), "cell must copy the given slice")

	c.SetCandidates(nil)
	assert.Equal(t, 0, c.CandidateCount())
}

func TestCellAnswer(t *testing.T) {
	_, c := newTestCell(t)

	_, ok := c.Answer()
	assert.False(t, ok)

	require.NoError(t, c.SetAnswer(2))
	v, ok := c.Answer()
	assert.True(t, ok)
	assert.Equal(t, Symbol(2), v)

	var invalid InvalidValueError
	require.ErrorAs(t, c.SetAnswer(42), &invalid)

	require.NoError(t, c.SetAnswer(None))
	_, ok = c.Answer()
	assert.False(t, ok)

	require.NoError(t, c.SetValue(8))
	v, _ = c.Answer()
	assert.Equal(t, None, v, "assignments must not touch the answer")
}
