package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	row, column int
}

func newProbeMatrix(rows, columns int) *Matrix[*probe] {
	return NewMatrix(rows, columns, func(row, column int) *probe {
		return &probe{row: row, column: column}
	})
}

func TestMatrixAt(t *testing.T) {
	m := newProbeMatrix(3, 4)

	assert.Equal(t, 3, m.RowCount())
	assert.Equal(t, 4, m.ColumnCount())
	assert.Len(t, m.Cells(), 12)

	p, err := m.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, &probe{2, 3}, p)

	for _, loc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}} {
		_, err := m.At(loc[0], loc[1])
		var oob OutOfBoundsError
		require.ErrorAs(t, err, &oob, "At(%d, %d)", loc[0], loc[1])
		assert.Equal(t, loc[0], oob.Row)
		assert.Equal(t, loc[1], oob.Column)
	}
}

func TestMatrixRowsAndColumns(t *testing.T) {
	m := newProbeMatrix(3, 3)

	row, err := m.RowCells(1)
	require.NoError(t, err)
	require.Len(t, row, 3)
	for column, p := range row {
		assert.Equal(t, &probe{1, column}, p)
	}

	column, err := m.ColumnCells(2)
	require.NoError(t, err)
	require.Len(t, column, 3)
	for row, p := range column {
		assert.Equal(t, &probe{row, 2}, p)
	}

	_, err = m.RowCells(3)
	assert.Error(t, err)
	_, err = m.ColumnCells(-1)
	assert.Error(t, err)

	assert.Len(t, m.Rows(), 3)
	assert.Len(t, m.Columns(), 3)
	assert.Equal(t, m.Rows()[0][1], m.Columns()[1][0])
}

func TestMatrixReset(t *testing.T) {
	m := newProbeMatrix(2, 2)
	first, err := m.At(0, 0)
	require.NoError(t, err)

	m.ResetContents()
	second, err := m.At(0, 0)
	require.NoError(t, err)
	assert.NotSame(t, first, second, "ResetContents must rebuild cells")
	assert.Equal(t, first, second)

	m.Reset(func(row, column int) *probe {
		return &probe{row: -row, column: -column}
	})
	swapped, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, &probe{-1, -1}, swapped)
}
