// Package sudoku implements candidate-tracking sudoku grids with a
// deterministic constraint-propagation solver and puzzle generators.
//
// A grid of size N holds N×N cells over an alphabet of N symbols, N having
// an integer square root b (the box side). Each cell tracks the ordered
// sequence of symbols it may still take; assigning and eliminating values
// shrink these sequences until every cell is pinned to one symbol.
package sudoku

import (
	"slices"
	"strconv"
	"strings"
)

// Grid is the sudoku specialization of [Matrix]: it adds the alphabet, box
// geometry, unit queries and the elimination primitive the solver builds on.
type Grid struct {
	*Matrix[*Cell]
	alphabet *alphabet
	boxSize  int
	cellHook func(*Cell)
}

// GridOption configures a freshly constructed grid.
type GridOption func(*Grid) error

// WithValues assigns initial values positionally over the flat row-major
// grid; None entries clear their cells.
func WithValues(values ...Symbol) GridOption {
	return func(g *Grid) error { return g.AssignValues(values) }
}

// WithAnswers records reference values positionally over the flat
// row-major grid.
func WithAnswers(values ...Symbol) GridOption {
	return func(g *Grid) error { return g.AssignAnswers(values) }
}

// NewGrid builds an N×N grid over the given alphabet, where N is the
// alphabet length and must have an integer square root.
func NewGrid(symbols []Symbol, opts ...GridOption) (*Grid, error) {
	a, err := newAlphabet(symbols)
	if err != nil {
		return nil, err
	}
	size := a.size()
	boxSize := isqrt(size)
	if boxSize*boxSize != size {
		return nil, newConfigError("alphabet length %d has no integer square root", size)
	}
	g := &Grid{alphabet: a, boxSize: boxSize}
	g.Matrix = NewMatrix(size, size, g.newCell)
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Grid) newCell(row, column int) *Cell {
	return newCell(g.alphabet, row, column, g.notifyUnique)
}

// notifyUnique forwards cell collapses to whoever owns the grid. Cells call
// through here so that a hook installed after construction still sees every
// cell, including rebuilt ones.
func (g *Grid) notifyUnique(c *Cell) {
	if g.cellHook != nil {
		g.cellHook(c)
	}
}

// Size returns N: the row count, column count and alphabet length.
func (g *Grid) Size() int { return g.alphabet.size() }

// BoxSize returns b = sqrt(N), the side length of one box.
func (g *Grid) BoxSize() int { return g.boxSize }

// Alphabet returns a copy of the grid's symbol sequence.
func (g *Grid) Alphabet() []Symbol { return slices.Clone(g.alphabet.symbols) }

// BoxCells returns the cells of the b×b box containing (row, column), in
// row-major order.
func (g *Grid) BoxCells(row, column int) ([]*Cell, error) {
	if err := g.ensureInBounds(row, column); err != nil {
		return nil, err
	}
	top := row / g.boxSize * g.boxSize
	left := column / g.boxSize * g.boxSize
	cells := make([]*Cell, 0, g.boxSize*g.boxSize)
	for r := top; r < top+g.boxSize; r++ {
		for c := left; c < left+g.boxSize; c++ {
			cells = append(cells, g.cells[g.index(r, c)])
		}
	}
	return cells, nil
}

// Boxes returns every box of cells, left to right, top down.
func (g *Grid) Boxes() [][]*Cell {
	boxes := make([][]*Cell, 0, g.Size())
	for top := 0; top < g.Size(); top += g.boxSize {
		for left := 0; left < g.Size(); left += g.boxSize {
			box, _ := g.BoxCells(top, left)
			boxes = append(boxes, box)
		}
	}
	return boxes
}

// UnitCells returns the distinct cells sharing a row, column or box with
// (row, column), the target itself included. Cells are deduplicated by
// identity and ordered deterministically: the row first, then the new
// column cells, then the new box cells.
func (g *Grid) UnitCells(row, column int) ([]*Cell, error) {
	if err := g.ensureInBounds(row, column); err != nil {
		return nil, err
	}
	rowCells, _ := g.RowCells(row)
	columnCells, _ := g.ColumnCells(column)
	boxCells, _ := g.BoxCells(row, column)
	seen := make(map[*Cell]struct{}, 3*g.Size())
	unit := make([]*Cell, 0, 3*g.Size()-2*g.boxSize)
	for _, cells := range [][]*Cell{rowCells, columnCells, boxCells} {
		for _, c := range cells {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			unit = append(unit, c)
		}
	}
	return unit, nil
}

// AssignRow assigns values to a row's cells, left to right, via
// [Cell.SetValue]. A shorter slice assigns a prefix; surplus values are
// ignored. Assignments made before an invalid value stick.
func (g *Grid) AssignRow(row int, values []Symbol) error {
	cells, err := g.RowCells(row)
	if err != nil {
		return err
	}
	return assign(cells, values)
}

// AssignColumn assigns values to a column's cells, top to bottom, with the
// same prefix semantics as [Grid.AssignRow].
func (g *Grid) AssignColumn(column int, values []Symbol) error {
	cells, err := g.ColumnCells(column)
	if err != nil {
		return err
	}
	return assign(cells, values)
}

// AssignValues assigns values positionally over the flat row-major grid,
// with the same prefix semantics as [Grid.AssignRow].
func (g *Grid) AssignValues(values []Symbol) error {
	return assign(g.cells, values)
}

// AssignAnswers records reference values positionally over the flat
// row-major grid, prefix semantics again.
func (g *Grid) AssignAnswers(values []Symbol) error {
	for i, c := range g.cells {
		if i >= len(values) {
			break
		}
		if err := c.SetAnswer(values[i]); err != nil {
			return err
		}
	}
	return nil
}

func assign(cells []*Cell, values []Symbol) error {
	for i, c := range cells {
		if i >= len(values) {
			break
		}
		if err := c.SetValue(values[i]); err != nil {
			return err
		}
	}
	return nil
}

// CommitValue eliminates v from every cell sharing a unit with (row,
// column), then assigns v to the target cell. Afterwards no unit peer
// lists v as a candidate. Eliminating from the target itself first is
// harmless: the assignment collapses it back to v.
func (g *Grid) CommitValue(v Symbol, row, column int) error {
	if v != None && !g.alphabet.contains(v) {
		return InvalidValueError{Value: v}
	}
	unit, err := g.UnitCells(row, column)
	if err != nil {
		return err
	}
	for _, c := range unit {
		c.Eliminate(v)
	}
	target, _ := g.At(row, column)
	return target.SetValue(v)
}

// String renders resolved cells as their symbol and everything else as a
// dot, one grid row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := range g.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for column := range g.columns {
			if column > 0 {
				sb.WriteByte(' ')
			}
			if v, ok := g.cells[g.index(row, column)].ResolvedValue(); ok {
				sb.WriteString(strconv.Itoa(int(v)))
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
