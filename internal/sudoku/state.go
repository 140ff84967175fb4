package sudoku

import (
	"bytes"
	"encoding/gob"
)

// CellState is the plain-data image of one cell.
type CellState struct {
	Candidates []Symbol
	Answer     Symbol
	Solved     bool
}

// GridState is a serializable snapshot of a whole grid. It carries no
// hooks or geometry, only the alphabet and per-cell contents, so it can
// travel through gob and sit in a database column.
type GridState struct {
	Alphabet []Symbol
	Cells    []CellState
}

// Snapshot captures the grid's current contents.
func (g *Grid) Snapshot() *GridState {
	st := &GridState{
		Alphabet: g.Alphabet(),
		Cells:    make([]CellState, 0, len(g.cells)),
	}
	for _, c := range g.cells {
		st.Cells = append(st.Cells, CellState{
			Candidates: c.Candidates(),
			Answer:     c.answer,
			Solved:     c.solved,
		})
	}
	return st
}

// RestoreGrid rebuilds a grid from a snapshot, validating the alphabet,
// the cell count and every stored symbol.
func RestoreGrid(st *GridState) (*Grid, error) {
	g, err := NewGrid(st.Alphabet)
	if err != nil {
		return nil, err
	}
	if len(st.Cells) != len(g.cells) {
		return nil, newConfigError(
			"snapshot holds %d cells, grid wants %d", len(st.Cells), len(g.cells),
		)
	}
	for i, cs := range st.Cells {
		c := g.cells[i]
		for _, v := range cs.Candidates {
			if v != None && !g.alphabet.contains(v) {
				return nil, InvalidValueError{Value: v}
			}
		}
		c.SetCandidates(cs.Candidates)
		if err := c.SetAnswer(cs.Answer); err != nil {
			return nil, err
		}
		c.solved = cs.Solved
	}
	return g, nil
}

// Bytes encodes the snapshot with gob.
func (st *GridState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(st); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeGridState decodes a gob snapshot produced by [GridState.Bytes].
func DecodeGridState(data []byte) (*GridState, error) {
	var st GridState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}
