package main

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	"github.com/gridkit/sudoku-server/internal/sudoku"
)

var errGivenCell = errors.New("cell holds a starting clue")

// GameState is everything a play session needs to survive a round trip
// through the database: the grid snapshot (candidates, solver locks and the
// hidden answers), the mask of starting clues and whether the player asked
// the solver for help.
type GameState struct {
	Size     int
	Given    []bool
	Assisted bool
	Grid     *sudoku.GridState
}

// NewGameState builds a fresh puzzle: a full solution is generated first,
// then all but `givens` randomly chosen cells are blanked out. Answers stay
// in the grid so completion can be checked server-side. No uniqueness proof
// is attempted.
func NewGameState(size, givens int, rnd *rand.Rand) (*GameState, error) {
	if size < 1 {
		return nil, errors.New("size must be positive")
	}
	if givens < 0 || givens > size*size {
		return nil, errors.New("givens out of range")
	}
	solution, err := sudoku.NewGrid(sudoku.Numeric(size))
	if err != nil {
		return nil, err
	}
	if err := sudoku.NewSolver(solution).GenerateSolved(rnd); err != nil {
		return nil, err
	}
	answers := make([]sudoku.Symbol, 0, size*size)
	for _, c := range solution.Cells() {
		v, _ := c.ResolvedValue()
		answers = append(answers, v)
	}
	grid, err := sudoku.NewGrid(sudoku.Numeric(size), sudoku.WithAnswers(answers...))
	if err != nil {
		return nil, err
	}
	given := make([]bool, size*size)
	cells := grid.Cells()
	for _, i := range rnd.Perm(size * size)[:givens] {
		if err := cells[i].SetValue(answers[i]); err != nil {
			return nil, err
		}
		given[i] = true
	}
	return &GameState{
		Size:  size,
		Given: given,
		Grid:  grid.Snapshot(),
	}, nil
}

func (s *GameState) restore() (*sudoku.Grid, error) {
	return sudoku.RestoreGrid(s.Grid)
}

func (s *GameState) InBounds(row, column int) bool {
	return row >= 0 && row < s.Size && column >= 0 && column < s.Size
}

func (s *GameState) IsGiven(row, column int) bool {
	return s.InBounds(row, column) && s.Given[row*s.Size+column]
}

func (s *GameState) GivenCount() int {
	count := 0
	for _, g := range s.Given {
		if g {
			count++
		}
	}
	return count
}

// SetCell writes a value into a cell, collapsing its candidates. Starting
// clues are immutable.
func (s *GameState) SetCell(row, column int, value sudoku.Symbol) error {
	if s.IsGiven(row, column) {
		return errGivenCell
	}
	g, err := s.restore()
	if err != nil {
		return err
	}
	c, err := g.At(row, column)
	if err != nil {
		return err
	}
	if err := c.SetValue(value); err != nil {
		return err
	}
	s.Grid = g.Snapshot()
	return nil
}

// EraseCell opens a cell back up to the full alphabet. Solver-locked cells
// stay put.
func (s *GameState) EraseCell(row, column int) error {
	if s.IsGiven(row, column) {
		return errGivenCell
	}
	g, err := s.restore()
	if err != nil {
		return err
	}
	c, err := g.At(row, column)
	if err != nil {
		return err
	}
	if c.Solved() {
		return nil
	}
	c.SetCandidates(g.Alphabet())
	s.Grid = g.Snapshot()
	return nil
}

// EliminateCandidate strikes a single pencil mark from a cell.
func (s *GameState) EliminateCandidate(row, column int, value sudoku.Symbol) error {
	if s.IsGiven(row, column) {
		return errGivenCell
	}
	g, err := s.restore()
	if err != nil {
		return err
	}
	c, err := g.At(row, column)
	if err != nil {
		return err
	}
	if !slices.Contains(g.Alphabet(), value) {
		return sudoku.InvalidValueError{Value: value}
	}
	c.Eliminate(value)
	s.Grid = g.Snapshot()
	return nil
}

// SetCellCandidates replaces a cell's pencil marks wholesale.
func (s *GameState) SetCellCandidates(row, column int, values []sudoku.Symbol) error {
	if s.IsGiven(row, column) {
		return errGivenCell
	}
	g, err := s.restore()
	if err != nil {
		return err
	}
	c, err := g.At(row, column)
	if err != nil {
		return err
	}
	alphabet := g.Alphabet()
	for _, v := range values {
		if !slices.Contains(alphabet, v) {
			return sudoku.InvalidValueError{Value: v}
		}
	}
	c.SetCandidates(values)
	s.Grid = g.Snapshot()
	return nil
}

// AutoSolve runs constraint propagation over the current position and marks
// the session assisted. A [sudoku.SolveError] return means the technique
// stalled or found the position contradictory, which is a game outcome, not
// a failure of the session.
func (s *GameState) AutoSolve(opts ...sudoku.SolverOption) error {
	g, err := s.restore()
	if err != nil {
		return err
	}
	s.Assisted = true
	err = sudoku.NewSolver(g, opts...).Solve()
	s.Grid = g.Snapshot()
	return err
}

// Finished reports whether every cell is down to a single real value.
func (s *GameState) Finished() bool {
	for _, c := range s.Grid.Cells {
		if len(c.Candidates) != 1 || c.Candidates[0] == sudoku.None {
			return false
		}
	}
	return true
}

// Completed reports whether the grid is finished and matches the stored
// solution.
func (s *GameState) Completed() bool {
	for _, c := range s.Grid.Cells {
		if len(c.Candidates) != 1 || c.Candidates[0] == sudoku.None ||
			c.Candidates[0] != c.Answer {
			return false
		}
	}
	return true
}

type GameSession struct {
	SessionId int
	PlayerId  *int
	State     GameState
	StartedAt time.Time
	EndedAt   time.Time
}

type GameSessionJSON struct {
	SessionId  string            `json:"session_id"`
	Size       int               `json:"size"`
	Givens     int               `json:"givens"`
	Candidates [][]sudoku.Symbol `json:"candidates"`
	Solved     []bool            `json:"solved"`
	Given      []bool            `json:"given"`
	Finished   bool              `json:"finished"`
	Completed  bool              `json:"completed"`
	Assisted   bool              `json:"assisted"`
	StartedAt  int64             `json:"started_at"`
	EndedAt    *int64            `json:"ended_at,omitempty"`
}

// MarshalJSON renders the client view of a session. The stored answers are
// never sent to the client.
func (s GameSession) MarshalJSON() ([]byte, error) {
	var endedAt *int64
	if !s.EndedAt.IsZero() {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	cells := s.State.Grid.Cells
	candidates := make([][]sudoku.Symbol, len(cells))
	solved := make([]bool, len(cells))
	for i, c := range cells {
		candidates[i] = c.Candidates
		solved[i] = c.Solved
	}
	return json.Marshal(GameSessionJSON{
		SessionId:  strconv.Itoa(s.SessionId),
		Size:       s.State.Size,
		Givens:     s.State.GivenCount(),
		Candidates: candidates,
		Solved:     solved,
		Given:      s.State.Given,
		Finished:   s.State.Finished(),
		Completed:  s.State.Completed(),
		Assisted:   s.State.Assisted,
		StartedAt:  s.StartedAt.UnixMilli(),
		EndedAt:    endedAt,
	})
}
