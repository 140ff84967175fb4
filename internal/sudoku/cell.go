package sudoku

import "slices"

// Cell is one grid square holding the ordered set of symbols it may still
// take. A cell with exactly one non-None candidate is resolved; it only
// becomes solved (immutable) when a solver commits it.
//
// Cells report candidate collapses through an injected hook instead of
// knowing their owner; the solver wires the hook to its cleanup queue.
type Cell struct {
	row, column int
	alphabet    *alphabet
	candidates  []Symbol
	answer      Symbol
	solved      bool
	onUnique    func(*Cell)
}

func newCell(a *alphabet, row, column int, onUnique func(*Cell)) *Cell {
	return &Cell{
		row:        row,
		column:     column,
		alphabet:   a,
		candidates: slices.Clone(a.symbols),
		onUnique:   onUnique,
	}
}

func (c *Cell) Row() int    { return c.row }
func (c *Cell) Column() int { return c.column }

// Solved reports whether a solver has locked this cell.
func (c *Cell) Solved() bool { return c.solved }

// CandidateCount returns the length of the candidate sequence. A null
// marker counts as one entry.
func (c *Cell) CandidateCount() int { return len(c.candidates) }

// Candidates returns a copy of the candidate sequence.
func (c *Cell) Candidates() []Symbol { return slices.Clone(c.candidates) }

func (c *Cell) isResolved() bool {
	return len(c.candidates) == 1 && c.candidates[0] != None
}

// ResolvedValue returns the sole candidate of a resolved cell. Cleared and
// multi-candidate cells report false.
func (c *Cell) ResolvedValue() (Symbol, bool) {
	if c.isResolved() {
		return c.candidates[0], true
	}
	return None, false
}

// SetValue collapses the candidates to v alone and fires the hook. Passing
// None instead clears the cell down to a single null marker, dropping any
// earlier resolution. Solved cells ignore assignments.
func (c *Cell) SetValue(v Symbol) error {
	if c.solved {
		return nil
	}
	if v != None && !c.alphabet.contains(v) {
		return InvalidValueError{Value: v}
	}
	c.candidates = append(c.candidates[:0], v)
	if v != None && c.onUnique != nil {
		c.onUnique(c)
	}
	return nil
}

// SetCandidates replaces the candidate sequence verbatim. Solved cells
// ignore the call.
func (c *Cell) SetCandidates(values []Symbol) {
	if c.solved {
		return
	}
	c.candidates = append(c.candidates[:0], values...)
}

// Eliminate removes v from the candidates. Absent values are a silent
// no-op. When the removal leaves exactly one candidate the cell reports
// itself through the hook.
func (c *Cell) Eliminate(v Symbol) {
	if c.solved {
		return
	}
	i := slices.Index(c.candidates, v)
	if i < 0 {
		return
	}
	c.candidates = slices.Delete(c.candidates, i, i+1)
	if len(c.candidates) == 1 && c.onUnique != nil {
		c.onUnique(c)
	}
}

// Answer returns the cell's reference value, when one is set.
func (c *Cell) Answer() (Symbol, bool) {
	if c.answer == None {
		return None, false
	}
	return c.answer, true
}

// SetAnswer records the reference value for this cell; None clears it.
// Answers live beside the candidates and are untouched by play.
func (c *Cell) SetAnswer(v Symbol) error {
	if v != None && !c.alphabet.contains(v) {
		return InvalidValueError{Value: v}
	}
	c.answer = v
	return nil
}

// restore puts back the full alphabet.
func (c *Cell) restore() {
	c.candidates = append(c.candidates[:0], c.alphabet.symbols...)
}
