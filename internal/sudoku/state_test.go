package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g, err := NewGrid(
		Numeric(4),
		WithValues(1, None),
		WithAnswers(1, 2, 3, 4),
	)
	require.NoError(t, err)
	cells := g.Cells()
	cells[0].solved = true
	cells[2].SetCandidates([]Symbol{2, 3})

	data, err := g.Snapshot().Bytes()
	require.NoError(t, err)

	st, err := DecodeGridState(data)
	require.NoError(t, err)
	restored, err := RestoreGrid(st)
	require.NoError(t, err)

	require.Equal(t, g.Size(), restored.Size())
	for i, c := range restored.Cells() {
		assert.Equal(t, cells[i].Candidates(), c.Candidates(), "cell %d candidates", i)
		assert.Equal(t, cells[i].answer, c.answer, "cell %d answer", i)
		assert.Equal(t, cells[i].Solved(), c.Solved(), "cell %d lock", i)
	}
}

func TestRestoreGridValidation(t *testing.T) {
	var config ConfigError
	_, err := RestoreGrid(&GridState{Alphabet: Numeric(3)})
	require.ErrorAs(t, err, &config, "alphabet without an integer square root")

	_, err = RestoreGrid(&GridState{
		Alphabet: Numeric(4),
		Cells:    make([]CellState, 3),
	})
	require.ErrorAs(t, err, &config, "cell count mismatch")

	st := &GridState{Alphabet: Numeric(4), Cells: make([]CellState, 16)}
	for i := range st.Cells {
		st.Cells[i] = CellState{Candidates: Numeric(4)}
	}
	st.Cells[5].Candidates = []Symbol{9}
	var invalid InvalidValueError
	_, err = RestoreGrid(st)
	require.ErrorAs(t, err, &invalid, "candidate outside the alphabet")
	assert.Equal(t, Symbol(9), invalid.Value)
}
