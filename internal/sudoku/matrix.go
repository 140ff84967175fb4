package sudoku

import "slices"

// Matrix is a flat, row-major container of rows × columns items built by a
// factory callback. It carries the addressing shared by every grid shape;
// sudoku-specific queries live on [Grid].
type Matrix[T any] struct {
	rows, columns int
	cells         []T
	fill          func(row, column int) T
}

// NewMatrix builds a matrix and fills it with the factory right away.
func NewMatrix[T any](rows, columns int, fill func(row, column int) T) *Matrix[T] {
	m := &Matrix[T]{rows: rows, columns: columns, fill: fill}
	m.ResetContents()
	return m
}

func (m *Matrix[T]) RowCount() int    { return m.rows }
func (m *Matrix[T]) ColumnCount() int { return m.columns }

// Cells returns the live backing slice in row-major order.
func (m *Matrix[T]) Cells() []T { return m.cells }

func (m *Matrix[T]) index(row, column int) int {
	return row*m.columns + column
}

// InBounds reports whether (row, column) addresses a cell.
func (m *Matrix[T]) InBounds(row, column int) bool {
	return 0 <= row && row < m.rows && 0 <= column && column < m.columns
}

func (m *Matrix[T]) ensureInBounds(row, column int) error {
	if !m.InBounds(row, column) {
		return OutOfBoundsError{Row: row, Column: column}
	}
	return nil
}

// At returns the cell at (row, column).
func (m *Matrix[T]) At(row, column int) (T, error) {
	if err := m.ensureInBounds(row, column); err != nil {
		var zero T
		return zero, err
	}
	return m.cells[m.index(row, column)], nil
}

// RowCells returns the cells of one row, left to right.
func (m *Matrix[T]) RowCells(row int) ([]T, error) {
	if err := m.ensureInBounds(row, 0); err != nil {
		return nil, err
	}
	start := row * m.columns
	return slices.Clone(m.cells[start : start+m.columns]), nil
}

// ColumnCells returns the cells of one column, top to bottom.
func (m *Matrix[T]) ColumnCells(column int) ([]T, error) {
	if err := m.ensureInBounds(0, column); err != nil {
		return nil, err
	}
	cells := make([]T, 0, m.rows)
	for row := range m.rows {
		cells = append(cells, m.cells[m.index(row, column)])
	}
	return cells, nil
}

// Rows returns every row of cells, top to bottom.
func (m *Matrix[T]) Rows() [][]T {
	rows := make([][]T, 0, m.rows)
	for row := range m.rows {
		cells, _ := m.RowCells(row)
		rows = append(rows, cells)
	}
	return rows
}

// Columns returns every column of cells, left to right.
func (m *Matrix[T]) Columns() [][]T {
	columns := make([][]T, 0, m.columns)
	for column := range m.columns {
		cells, _ := m.ColumnCells(column)
		columns = append(columns, cells)
	}
	return columns
}

// Reset swaps the cell factory and rebuilds every cell with it.
func (m *Matrix[T]) Reset(fill func(row, column int) T) {
	m.fill = fill
	m.ResetContents()
}

// ResetContents discards all cells and rebuilds them with the current
// factory.
func (m *Matrix[T]) ResetContents() {
	m.cells = make([]T, 0, m.rows*m.columns)
	for row := range m.rows {
		for column := range m.columns {
			m.cells = append(m.cells, m.fill(row, column))
		}
	}
}
