package tui

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

func testApp(t *testing.T, rows, cols, mineCount int) *App {
	t.Helper()
	board, err := mines.NewBoard(rows, cols, mineCount, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &App{board: board, log: logrus.NewEntry(log)}
}

func TestMoveCursorClamps(t *testing.T) {
	app := testApp(t, 3, 4, 2)

	app.moveCursor(-1, -1)
	assert.Equal(t, 0, app.cursorRow)
	assert.Equal(t, 0, app.cursorCol)

	for range 10 {
		app.moveCursor(1, 1)
	}
	assert.Equal(t, 2, app.cursorRow)
	assert.Equal(t, 3, app.cursorCol)
}

func TestRevealEndsGame(t *testing.T) {
	// 1x2 with one mine: first reveal wins, the forced mine cell loses.
	app := testApp(t, 1, 2, 1)

	app.reveal() // cursor at (0,0); mine is forced into (0,1)
	app.checkWin()
	assert.True(t, app.over)
	assert.Contains(t, app.banner, "win")

	app = testApp(t, 1, 2, 1)
	require.NoError(t, app.board.ToggleFlag(0, 0))
	app.cursorCol = 1
	app.reveal()
	app.checkWin()
	assert.True(t, app.over)
	assert.Contains(t, app.banner, "Boom")
}

func TestStyleForDistinguishesSymbols(t *testing.T) {
	assert.NotEqual(t, styleFor(mines.Mine), styleFor(mines.Flag))
	assert.NotEqual(t, styleFor(mines.Hidden), styleFor(mines.Blank))
	assert.NotEqual(t, styleFor(mines.Clue(1)), styleFor(mines.Clue(2)))
	assert.Equal(t, tcell.StyleDefault, styleFor(mines.Blank))
}
