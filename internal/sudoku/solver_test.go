package sudoku

import (
	"errors"
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// A complete classic solution: row r is 1..9 rotated left by (r%3)*3 + r/3.
var solution9 = []Symbol{
	1, 2, 3, 4, 5, 6, 7, 8, 9,
	4, 5, 6, 7, 8, 9, 1, 2, 3,
	7, 8, 9, 1, 2, 3, 4, 5, 6,
	2, 3, 4, 5, 6, 7, 8, 9, 1,
	5, 6, 7, 8, 9, 1, 2, 3, 4,
	8, 9, 1, 2, 3, 4, 5, 6, 7,
	3, 4, 5, 6, 7, 8, 9, 1, 2,
	6, 7, 8, 9, 1, 2, 3, 4, 5,
	9, 1, 2, 3, 4, 5, 6, 7, 8,
}

func TestSolveCompleteGrid(t *testing.T) {
	g, err := NewGrid(Numeric(9), WithValues(solution9...))
	require.NoError(t, err)
	s := NewSolver(g)

	require.NoError(t, s.Solve())
	assert.True(t, s.IsFinished())
	for i, c := range g.Cells() {
		assert.True(t, c.Solved())
		v, ok := c.ResolvedValue()
		require.True(t, ok)
		assert.Equal(t, solution9[i], v)
	}
}

func TestSolveFillsGaps(t *testing.T) {
	values := slices.Clone(solution9)
	for i := range 9 {
		values[i*9+i] = None
	}
	g, err := NewGrid(Numeric(9), WithValues(values...))
	require.NoError(t, err)
	s := NewSolver(g)

	require.NoError(t, s.Solve())
	require.True(t, s.IsFinished())
	for i := range 9 {
		c, _ := g.At(i, i)
		v, ok := c.ResolvedValue()
		require.True(t, ok)
		assert.Equal(t, solution9[i*9+i], v)
	}
}

func TestSolveRestoresClearedCells(t *testing.T) {
	values := slices.Clone(solution9)
	values[40] = None
	g, err := NewGrid(Numeric(9), WithValues(values...))
	require.NoError(t, err)

	c, _ := g.At(4, 4)
	assert.Equal(t, []Symbol{None}, c.Candidates())

	require.NoError(t, NewSolver(g).Solve())
	v, ok := c.ResolvedValue()
	require.True(t, ok)
	assert.Equal(t, solution9[40], v)
	assert.True(t, c.Solved())
}

func TestSolveSingleRowStalls(t *testing.T) {
	g, err := NewGrid(Numeric(9))
	require.NoError(t, err)
	require.NoError(t, g.AssignRow(0, Numeric(9)))
	s := NewSolver(g)

	err = s.Solve()
	require.Error(t, err)
	var solveErr SolveError
	require.ErrorAs(t, err, &solveErr)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.False(t, s.IsFinished())

	row, _ := g.RowCells(0)
	for _, c := range row {
		assert.True(t, c.Solved(), "the seeded row still gets committed")
	}
	open, _ := g.At(5, 5)
	assert.Greater(t, open.CandidateCount(), 1, "progress stops mid-grid")
}

func TestSolveContradiction(t *testing.T) {
	g, err := NewGrid(Numeric(9))
	require.NoError(t, err)
	a, _ := g.At(0, 0)
	b, _ := g.At(0, 1)
	require.NoError(t, a.SetValue(1))
	require.NoError(t, b.SetValue(1))

	err = NewSolver(g).Solve()
	require.Error(t, err)
	var contra ContradictionError
	require.ErrorAs(t, err, &contra)
	assert.Equal(t, 0, contra.Row)
	assert.Equal(t, 1, contra.Column)
}

func TestSolveStepLimit(t *testing.T) {
	g, err := NewGrid(Numeric(9), WithValues(solution9...))
	require.NoError(t, err)
	s := NewSolver(g, WithStepLimit(1))

	err = s.Solve()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestSubsetEliminationPass(t *testing.T) {
	g, err := NewGrid(Numeric(9))
	require.NoError(t, err)
	s := NewSolver(g)

	pair := []Symbol{4, 7}
	a, _ := g.At(0, 0)
	b, _ := g.At(0, 1)
	a.SetCandidates(pair)
	b.SetCandidates(pair)

	require.NoError(t, s.eliminateSubsets())

	row, _ := g.RowCells(0)
	for _, c := range row[2:] {
		candidates := c.Candidates()
		assert.False(t, slices.Contains(candidates, Symbol(4)))
		assert.False(t, slices.Contains(candidates, Symbol(7)))
		assert.Equal(t, 7, len(candidates))
	}
	assert.Equal(t, pair, a.Candidates(), "the matching group keeps its candidates")
	assert.Equal(t, pair, b.Candidates())

	box, _ := g.BoxCells(0, 0)
	for _, c := range box {
		if c == a || c == b {
			continue
		}
		assert.False(t, slices.Contains(c.Candidates(), Symbol(4)),
			"box peers are stripped as well")
	}

	lower, _ := g.At(5, 0)
	assert.Equal(t, 9, lower.CandidateCount(),
		"the column holds no matching pair, so it stays untouched")

	assert.Equal(t, stepStalled, s.step, "no cell collapsed, nothing to drain")
}

func TestSolverHooks(t *testing.T) {
	g, err := NewGrid(Numeric(9), WithValues(solution9...))
	require.NoError(t, err)
	displays := 0
	s := NewSolver(g, WithDisplayFunc(func(*Grid) { displays++ }))

	require.NoError(t, s.Solve())
	assert.Equal(t, 3, displays, "collapse, drain, final")

	g2, err := NewGrid(Numeric(9))
	require.NoError(t, err)
	require.NoError(t, g2.AssignRow(0, Numeric(9)))
	var observed error
	s2 := NewSolver(g2, WithFailureHook(func(e error) { observed = e }))

	solveErr := s2.Solve()
	require.Error(t, solveErr)
	assert.Equal(t, solveErr, observed, "the failure hook sees the returned error")
	assert.True(t, errors.Is(observed, ErrIncomplete))
}

func TestSolverQueueDedup(t *testing.T) {
	g, err := NewGrid(Numeric(9))
	require.NoError(t, err)
	s := NewSolver(g)

	c, _ := g.At(3, 3)
	s.register(c)
	s.register(c)
	assert.Equal(t, 1, s.cleanups.Len())

	s.reset()
	assert.Equal(t, 0, s.cleanups.Len())
	assert.Empty(t, s.queued)
}
