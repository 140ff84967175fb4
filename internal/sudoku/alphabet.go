package sudoku

import "slices"

// Symbol is one member of a grid alphabet. The zero value None marks a cell
// with no value, so alphabets may not contain it.
type Symbol int16

const None Symbol = 0

// Numeric builds the conventional 1..n alphabet.
func Numeric(n int) []Symbol {
	symbols := make([]Symbol, 0, n)
	for v := 1; v <= n; v++ {
		symbols = append(symbols, Symbol(v))
	}
	return symbols
}

type alphabet struct {
	symbols []Symbol
	index   map[Symbol]int
}

func newAlphabet(symbols []Symbol) (*alphabet, error) {
	if len(symbols) == 0 {
		return nil, newConfigError("empty alphabet")
	}
	a := &alphabet{
		symbols: slices.Clone(symbols),
		index:   make(map[Symbol]int, len(symbols)),
	}
	for i, v := range a.symbols {
		if v == None {
			return nil, newConfigError("symbol %d is reserved for empty cells", None)
		}
		if _, dup := a.index[v]; dup {
			return nil, newConfigError("duplicate symbol %d", v)
		}
		a.index[v] = i
	}
	return a, nil
}

func (a *alphabet) size() int { return len(a.symbols) }

func (a *alphabet) contains(v Symbol) bool {
	_, ok := a.index[v]
	return ok
}
