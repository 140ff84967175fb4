package main

import (
	"encoding/json"
	"iter"
	"net/http"
	"strconv"
	"strings"

	"github.com/gridkit/sudoku-server/internal/sudoku"
)

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

func sendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return 0, err
	}
	return w.Write(payload)
}

func parseSymbol(s string) (sudoku.Symbol, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return sudoku.None, err
	}
	return sudoku.Symbol(n), nil
}

// parseSymbolList reads a comma-separated value list; an empty string means
// an empty list.
func parseSymbolList(s string) ([]sudoku.Symbol, error) {
	if s == "" {
		return nil, nil
	}
	pieces := strings.Split(s, ",")
	values := make([]sudoku.Symbol, 0, len(pieces))
	for _, piece := range pieces {
		v, err := parseSymbol(strings.TrimSpace(piece))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
