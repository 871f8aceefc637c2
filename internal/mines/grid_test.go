package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClueSymbols(t *testing.T) {
	assert.Equal(t, Blank, Clue(0))
	assert.Equal(t, Symbol('1'), Clue(1))
	assert.Equal(t, Symbol('8'), Clue(8))
}

func TestGridToString(t *testing.T) {
	grid := Grid{Hidden, Flag, Mine, Clue(2), Blank, Clue(1)}
	assert.Equal(t, "# F *\n2   1\n", grid.ToString(3))
}
