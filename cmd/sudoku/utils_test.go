package main

import (
	"slices"
	"testing"

	"github.com/gridkit/sudoku-server/internal/sudoku"
)

func TestByPiece(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"foo\nbar\nbaz\n\nbazz", "\n", []string{"foo", "bar", "baz", "", "bazz"}},
		{"s 0 1 5", " ", []string{"s", "0", "1", "5"}},
	}
	for _, test := range testCases {
		for i, p := range byPiece(test.input, test.sep) {
			if i < 0 || i >= len(test.array) {
				t.Errorf("byPiece returned an invalid index: %d", i)
			}
			if p != test.array[i] {
				t.Errorf("byPiece returned an incorrect piece: have %s, want %s",
					p, test.array[i])
			}
		}
	}
}

func TestParseSymbolList(t *testing.T) {
	testCases := []struct {
		input  string
		values []sudoku.Symbol
		ok     bool
	}{
		{"", nil, true},
		{"5", []sudoku.Symbol{5}, true},
		{"1,2,3", []sudoku.Symbol{1, 2, 3}, true},
		{" 4 , 7 ", []sudoku.Symbol{4, 7}, true},
		{"1,two,3", nil, false},
		{",", nil, false},
	}
	for _, test := range testCases {
		values, err := parseSymbolList(test.input)
		if test.ok && err != nil {
			t.Errorf("parseSymbolList(%q) returned an error: %s", test.input, err)
		}
		if !test.ok && err == nil {
			t.Errorf("parseSymbolList(%q) should have returned an error", test.input)
		}
		if test.ok && !slices.Equal(values, test.values) {
			t.Errorf("parseSymbolList(%q) = %v, want %v", test.input, values, test.values)
		}
	}
}
