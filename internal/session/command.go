package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Action is what the player asked the engine to do.
type Action int

const (
	ActionQuit Action = iota
	ActionReveal
	ActionFlag
	ActionChord
)

// Command is one parsed player instruction. Row and Col are 0-based engine
// coordinates; the 1-based translation happens here, in the text layer.
type Command struct {
	Action   Action
	Row, Col int
}

var actions = map[string]Action{
	"q":      ActionQuit,
	"quit":   ActionQuit,
	"exit":   ActionQuit,
	"r":      ActionReveal,
	"reveal": ActionReveal,
	"f":      ActionFlag,
	"flag":   ActionFlag,
	"c":      ActionChord,
	"chord":  ActionChord,
}

var errNotAnInt = errors.New("row and column must be integers")

func parseRowCol(tokens []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(tokens[0]); err != nil {
		return 0, 0, errNotAnInt
	}
	if col, err = strconv.Atoi(tokens[1]); err != nil {
		return 0, 0, errNotAnInt
	}
	return row - 1, col - 1, nil
}

// ParseCommand reads one line of player input. The grammar is
// case-insensitive and whitespace-delimited: q/quit/exit, r/reveal row col,
// f/flag row col, c/chord row col, or a bare "row col" pair as an implicit
// reveal. Errors are user-facing and always recoverable.
func ParseCommand(line string) (Command, error) {
	tokens := strings.Fields(strings.ToLower(line))
	if len(tokens) == 0 {
		return Command{}, errors.New("empty command; use 'r <row> <col>' to reveal or 'q' to quit")
	}

	action, known := actions[tokens[0]]
	if !known {
		// Two integer tokens with no action word mean "reveal here".
		if len(tokens) == 2 {
			if row, col, err := parseRowCol(tokens); err == nil {
				return Command{Action: ActionReveal, Row: row, Col: col}, nil
			}
		}
		return Command{}, fmt.Errorf("unknown command %q; use 'r' to reveal, 'f' to flag, 'c' to chord or 'q' to quit", tokens[0])
	}

	if action == ActionQuit {
		if len(tokens) != 1 {
			return Command{}, fmt.Errorf("%q takes no arguments", tokens[0])
		}
		return Command{Action: ActionQuit}, nil
	}

	if len(tokens) != 3 {
		return Command{}, fmt.Errorf("%q takes a row and a column, e.g. '%s 2 3'", tokens[0], tokens[0])
	}
	row, col, err := parseRowCol(tokens[1:])
	if err != nil {
		return Command{}, err
	}
	return Command{Action: action, Row: row, Col: col}, nil
}
