package sudoku

import (
	"slices"

	"github.com/gammazero/deque"
)

type solveStep int8

const (
	stepCollapse solveStep = iota
	stepDrain
	stepEliminate
	stepStalled
)

func (s solveStep) String() string {
	switch s {
	case stepCollapse:
		return "collapse"
	case stepDrain:
		return "drain"
	case stepEliminate:
		return "eliminate"
	case stepStalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// Solver drives constraint propagation over a single grid. One solver owns
// one grid for its whole lifetime: attaching rewires the grid's cell hook
// to the solver's cleanup queue.
//
// The technique is committing resolved cells plus identical-set
// naked-subset elimination, nothing else. Grids beyond its reach fail with
// ErrIncomplete; there is no guessing and no backtracking.
type Solver struct {
	grid      *Grid
	cleanups  deque.Deque[int]
	queued    set[int]
	step      solveStep
	stepLimit int
	display   func(*Grid)
	onFailure func(error)
}

// SolverOption configures a solver at construction.
type SolverOption func(*Solver)

// WithDisplayFunc registers a hook invoked with the grid after every
// propagation step.
func WithDisplayFunc(fn func(*Grid)) SolverOption {
	return func(s *Solver) { s.display = fn }
}

// WithFailureHook registers an observer called with a solve error right
// before it is returned.
func WithFailureHook(fn func(error)) SolverOption {
	return func(s *Solver) { s.onFailure = fn }
}

// WithStepLimit overrides the bound on propagation steps.
func WithStepLimit(limit int) SolverOption {
	return func(s *Solver) { s.stepLimit = limit }
}

// NewSolver attaches a solver to grid.
func NewSolver(grid *Grid, opts ...SolverOption) *Solver {
	s := &Solver{
		grid:      grid,
		queued:    make(set[int]),
		stepLimit: defaultStepLimit(grid.Size()),
	}
	grid.cellHook = s.register
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// A terminating solve takes at most two steps per cell.
func defaultStepLimit(size int) int { return size * size * size }

// Grid returns the solver's grid.
func (s *Solver) Grid() *Grid { return s.grid }

// register queues a cell for the next drain. Queued cells are not added
// twice.
func (s *Solver) register(c *Cell) {
	i := s.grid.index(c.row, c.column)
	if _, ok := s.queued[i]; ok {
		return
	}
	s.queued[i] = void{}
	s.cleanups.PushBack(i)
}

// reset rebuilds every cell and empties the cleanup queue.
func (s *Solver) reset() {
	s.cleanups.Clear()
	clear(s.queued)
	s.grid.ResetContents()
}

// IsFinished reports whether every cell has been committed.
func (s *Solver) IsFinished() bool {
	for _, c := range s.grid.cells {
		if !c.solved {
			return false
		}
	}
	return true
}

// Solve runs propagation until every cell is locked. It returns nil on
// success or a [SolveError] when the technique stalls, derives a
// contradiction or exceeds the step limit. The grid keeps whatever
// progress was made.
func (s *Solver) Solve() error {
	s.step = stepCollapse
	steps := 0
	for !s.IsFinished() {
		if steps++; steps > s.stepLimit {
			return s.fail(ErrExhausted)
		}
		var err error
		switch s.step {
		case stepCollapse:
			s.collapseResolved()
		case stepDrain:
			err = s.drainCleanups()
		case stepEliminate:
			err = s.eliminateSubsets()
		case stepStalled:
			err = ErrIncomplete
		}
		if err != nil {
			return s.fail(err)
		}
		Log.Debugf("%v step done, %d queued", s.step, s.cleanups.Len())
		s.updateDisplay()
	}
	s.updateDisplay()
	return nil
}

func (s *Solver) fail(cause error) error {
	err := SolveError{cause: cause}
	Log.Debugf("%v", err)
	if s.onFailure != nil {
		s.onFailure(err)
	}
	return err
}

func (s *Solver) updateDisplay() {
	if s.display != nil {
		s.display(s.grid)
	}
}

// collapseResolved restores the full alphabet in every unresolved cell
// (cleared cells included) and queues the resolved, not yet locked ones
// for committing. Runs once per solve.
func (s *Solver) collapseResolved() {
	for _, c := range s.grid.cells {
		if !c.isResolved() {
			c.restore()
		} else if !c.solved {
			s.register(c)
		}
	}
	s.step = stepDrain
}

// drainCleanups commits queued cells one by one. A commit eliminates the
// value across the cell's units, which may queue further cells; queue
// entries invalidated since registration are skipped. A unit peer left
// without candidates means the grid is unsolvable.
func (s *Solver) drainCleanups() error {
	for s.cleanups.Len() != 0 {
		i := s.cleanups.PopFront()
		delete(s.queued, i)
		c := s.grid.cells[i]
		if c.solved || !c.isResolved() {
			continue
		}
		v := c.candidates[0]
		c.solved = true
		if err := s.grid.CommitValue(v, c.row, c.column); err != nil {
			return err
		}
		unit, _ := s.grid.UnitCells(c.row, c.column)
		for _, peer := range unit {
			if !peer.solved && len(peer.candidates) == 0 {
				return ContradictionError{Row: peer.row, Column: peer.column}
			}
		}
	}
	s.step = stepEliminate
	return nil
}

// eliminateSubsets visits cells in ascending candidate-count order, grid
// order breaking ties, and stops at the first cell with more than boxSize
// candidates. For each visited cell and each of its three units
// independently: when some unit peer holds an identical candidate
// sequence, the group pins those values, which are removed from the rest
// of the unit. Newly resolved cells queue themselves via the cell hook;
// the solver drains again when the pass produced work and stalls
// otherwise.
func (s *Solver) eliminateSubsets() error {
	cells := slices.Clone(s.grid.cells)
	slices.SortStableFunc(cells, func(a, b *Cell) int {
		return len(a.candidates) - len(b.candidates)
	})
	for _, cell := range cells {
		if len(cell.candidates) > s.grid.boxSize {
			break
		}
		if len(cell.candidates) <= 1 {
			continue
		}
		rowCells, _ := s.grid.RowCells(cell.row)
		if err := s.eliminateMatches(cell, rowCells); err != nil {
			return err
		}
		columnCells, _ := s.grid.ColumnCells(cell.column)
		if err := s.eliminateMatches(cell, columnCells); err != nil {
			return err
		}
		boxCells, _ := s.grid.BoxCells(cell.row, cell.column)
		if err := s.eliminateMatches(cell, boxCells); err != nil {
			return err
		}
	}
	if s.cleanups.Len() != 0 {
		s.step = stepDrain
	} else {
		s.step = stepStalled
	}
	return nil
}

// eliminateMatches strips cell's candidates from the unit cells holding a
// different candidate sequence, provided at least one other unit cell
// holds an identical one.
func (s *Solver) eliminateMatches(cell *Cell, unit []*Cell) error {
	matched := false
	for _, peer := range unit {
		if peer != cell && slices.Equal(peer.candidates, cell.candidates) {
			matched = true
			break
		}
	}
	if !matched {
		return nil
	}
	for _, peer := range unit {
		if slices.Equal(peer.candidates, cell.candidates) {
			continue
		}
		for _, v := range cell.candidates {
			peer.Eliminate(v)
		}
		if !peer.solved && len(peer.candidates) == 0 {
			return ContradictionError{Row: peer.row, Column: peer.column}
		}
	}
	return nil
}
