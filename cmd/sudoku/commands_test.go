package main

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit/sudoku-server/internal/sudoku"
)

func newTestState(t *testing.T) *GameState {
	t.Helper()
	rnd := rand.New(rand.NewPCG(1, 2))
	state, err := NewGameState(9, 0, rnd)
	require.NoError(t, err)
	return state
}

func TestExecuteCommandRejectsGarbage(t *testing.T) {
	state := newTestState(t)

	testCases := []struct {
		name    string
		command string
	}{
		{"unknown command", "q"},
		{"empty command", ""},
		{"missing arguments", "s 1 2"},
		{"surplus arguments", "x 1 2 3"},
		{"non-numeric row", "s a 2 3"},
		{"non-numeric column", "s 1 b 3"},
		{"non-numeric value", "s 1 2 c"},
		{"bad candidate list", "c 1 2 3,four"},
		{"out of bounds", "s 9 0 1"},
		{"value outside alphabet", "s 1 2 10"},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			assert.Error(t, executeCommand(state, test.command))
		})
	}
}

func TestExecuteCommandMoves(t *testing.T) {
	state := newTestState(t)

	require.NoError(t, executeCommand(state, "g"))

	require.NoError(t, executeCommand(state, "s 0 0 5"))
	assert.Equal(t, []sudoku.Symbol{5}, state.Grid.Cells[0].Candidates)

	require.NoError(t, executeCommand(state, "x 0 0"))
	assert.Len(t, state.Grid.Cells[0].Candidates, 9)

	require.NoError(t, executeCommand(state, "e 0 0 5"))
	assert.Len(t, state.Grid.Cells[0].Candidates, 8)
	assert.NotContains(t, state.Grid.Cells[0].Candidates, sudoku.Symbol(5))

	require.NoError(t, executeCommand(state, "c 0 0 1,2,3"))
	assert.Equal(t, []sudoku.Symbol{1, 2, 3}, state.Grid.Cells[0].Candidates)
}

func TestExecuteCommandGivenCell(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	state, err := NewGameState(9, 81, rnd)
	require.NoError(t, err)

	assert.ErrorIs(t, executeCommand(state, "s 0 0 5"), errGivenCell)
}

func TestExecuteCommandSolve(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	state, err := NewGameState(4, 15, rnd)
	require.NoError(t, err)

	require.NoError(t, executeCommand(state, "a"))
	assert.True(t, state.Assisted)
	assert.True(t, state.Completed())
}

func TestExecuteCommandSolveStallIsNotAnError(t *testing.T) {
	state := newTestState(t)

	require.NoError(t, executeCommand(state, "a"))
	assert.True(t, state.Assisted)
	assert.False(t, state.Finished())
}
