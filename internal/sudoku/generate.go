package sudoku

import "math/rand/v2"

// Generate rebuilds the grid and derives it from a single random row:
// row 0 receives a shuffled permutation of the alphabet by plain
// assignment, leaving all peer elimination to the solver, and propagation
// runs from there. The naked-subset technique cannot finish a one-row seed
// on classic grids, so the usual outcome is a [SolveError] wrapping
// ErrIncomplete with the partial grid intact.
func (s *Solver) Generate(rnd *rand.Rand) error {
	s.seedRow(rnd)
	return s.Solve()
}

// seedRow rebuilds the cells and assigns a shuffled alphabet across row 0.
// Assignment goes through [Cell.SetValue] only: nothing is eliminated from
// any other cell before the solver takes over.
func (s *Solver) seedRow(rnd *rand.Rand) {
	s.reset()
	seq := shuffled(s.grid.alphabet.symbols, rnd)
	for column, c := range s.grid.cells[:s.grid.Size()] {
		_ = c.SetValue(seq[column])
	}
}

// GenerateSolved rebuilds the grid and fills it with a complete random
// solution. Every row is the same shuffled permutation rotated left, rows
// of a band shifting by boxSize and bands shifting by one, which keeps
// rows, columns and boxes distinct; band order and row order within each
// band are shuffled on top. The rows are then assigned and the solver
// pipeline locks and verifies the result, so a successful return means a
// fully solved grid.
func (s *Solver) GenerateSolved(rnd *rand.Rand) error {
	s.reset()
	boxSize := s.grid.boxSize
	seq := shuffled(s.grid.alphabet.symbols, rnd)
	for row, src := range shuffledRowOrder(s.grid.Size(), boxSize, rnd) {
		shift := src%boxSize*boxSize + src/boxSize
		if err := s.grid.AssignRow(row, RotateLeft(seq, shift)); err != nil {
			return err
		}
	}
	return s.Solve()
}

// shuffledRowOrder permutes band order and row order within each band.
// Both moves keep a rotation-built solution valid.
func shuffledRowOrder(size, boxSize int, rnd *rand.Rand) []int {
	bands := make([]int, size/boxSize)
	for i := range bands {
		bands[i] = i
	}
	rnd.Shuffle(len(bands), func(i, j int) {
		bands[i], bands[j] = bands[j], bands[i]
	})
	order := make([]int, 0, size)
	for _, band := range bands {
		rows := make([]int, boxSize)
		for i := range rows {
			rows[i] = band*boxSize + i
		}
		rnd.Shuffle(len(rows), func(i, j int) {
			rows[i], rows[j] = rows[j], rows[i]
		})
		order = append(order, rows...)
	}
	return order
}
