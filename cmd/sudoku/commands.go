package main

import (
	"errors"
	"strconv"
	"strings"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"s": 3,
	"x": 2,
	"e": 3,
	"c": 3,
	"a": 0,
}

func parseRowColumn(twoStrings []string) (row int, column int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if column, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func executeCommand(s *GameState, c string) (err error) {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return
	case "s":
		row, column, err := parseRowColumn(parts[1:])
		if err != nil {
			return err
		}
		value, err := parseSymbol(parts[3])
		if err != nil {
			return errors.New("third argument must be an int")
		}
		return s.SetCell(row, column, value)
	case "x":
		row, column, err := parseRowColumn(parts[1:])
		if err != nil {
			return err
		}
		return s.EraseCell(row, column)
	case "e":
		row, column, err := parseRowColumn(parts[1:])
		if err != nil {
			return err
		}
		value, err := parseSymbol(parts[3])
		if err != nil {
			return errors.New("third argument must be an int")
		}
		return s.EliminateCandidate(row, column, value)
	case "c":
		row, column, err := parseRowColumn(parts[1:])
		if err != nil {
			return err
		}
		values, err := parseSymbolList(parts[3])
		if err != nil {
			return errors.New("third argument must be a comma-separated value list")
		}
		return s.SetCellCandidates(row, column, values)
	case "a":
		if err := s.AutoSolve(); err != nil {
			// stalling or contradicting is an outcome, not a bad command
			log.Debug("solve stopped: ", err)
		}
		return
	}
	return errors.New("invalid command")
}
