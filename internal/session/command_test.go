package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"q", Command{Action: ActionQuit}},
		{"quit", Command{Action: ActionQuit}},
		{"EXIT", Command{Action: ActionQuit}},
		{"r 1 1", Command{Action: ActionReveal, Row: 0, Col: 0}},
		{"reveal 3 4", Command{Action: ActionReveal, Row: 2, Col: 3}},
		{"  R   2   9  ", Command{Action: ActionReveal, Row: 1, Col: 8}},
		{"f 2 2", Command{Action: ActionFlag, Row: 1, Col: 1}},
		{"FLAG 5 1", Command{Action: ActionFlag, Row: 4, Col: 0}},
		{"c 3 3", Command{Action: ActionChord, Row: 2, Col: 2}},
		{"chord 1 2", Command{Action: ActionChord, Row: 0, Col: 1}},
		// Bare coordinates reveal.
		{"4 5", Command{Action: ActionReveal, Row: 3, Col: 4}},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			got, err := ParseCommand(test.line)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"unknown action", "x 1 2"},
		{"missing column", "r 1"},
		{"too many tokens", "r 1 2 3"},
		{"non-integer row", "r a 2"},
		{"non-integer column", "f 1 b"},
		{"quit with arguments", "q 1 1"},
		{"single bare integer", "7"},
		{"three bare integers", "1 2 3"},
		{"bare non-integers", "one two"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseCommand(test.line)
			assert.Error(t, err)
		})
	}
}
