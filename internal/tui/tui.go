// Package tui is the full-screen frontend. It owns the terminal and the
// cursor; every game rule stays in the engine.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

type App struct {
	screen  tcell.Screen
	board   *mines.Board
	restart func() (*mines.Board, error)
	log     *logrus.Entry

	cursorRow, cursorCol int
	over                 bool
	banner               string
}

// Run plays games on boards from restart until the player quits. The first
// board is passed in so construction errors surface before the terminal is
// taken over.
func Run(board *mines.Board, restart func() (*mines.Board, error), log *logrus.Entry) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app := &App{
		screen:  screen,
		board:   board,
		restart: restart,
		log:     log,
	}
	return app.loop()
}

func (a *App) loop() error {
	for {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			quit, err := a.handleKey(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) (quit bool, err error) {
	if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
		a.log.Debug("quit")
		return true, nil
	}
	if ev.Rune() == 'n' {
		board, err := a.restart()
		if err != nil {
			return true, err
		}
		a.log.Debug("new board")
		a.board = board
		a.over = false
		a.banner = ""
		a.clampCursor()
		return false, nil
	}
	if a.over {
		return false, nil
	}

	switch {
	case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
		a.moveCursor(-1, 0)
	case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
		a.moveCursor(1, 0)
	case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
		a.moveCursor(0, -1)
	case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
		a.moveCursor(0, 1)
	case ev.Key() == tcell.KeyEnter || ev.Rune() == ' ':
		a.reveal()
	case ev.Rune() == 'f':
		if err := a.board.ToggleFlag(a.cursorRow, a.cursorCol); err != nil {
			a.log.WithError(err).Error("flag failed")
		}
	case ev.Rune() == 'c':
		a.chord()
	}
	a.checkWin()
	return false, nil
}

func (a *App) moveCursor(dRow, dCol int) {
	a.cursorRow += dRow
	a.cursorCol += dCol
	a.clampCursor()
}

func (a *App) clampCursor() {
	a.cursorRow = min(max(a.cursorRow, 0), a.board.Rows()-1)
	a.cursorCol = min(max(a.cursorCol, 0), a.board.Cols()-1)
}

func (a *App) reveal() {
	out, err := a.board.Reveal(a.cursorRow, a.cursorCol)
	if err != nil {
		a.log.WithError(err).Error("reveal failed")
		return
	}
	if out == mines.Detonated {
		a.over = true
		a.banner = "Boom! You hit a mine."
	}
}

func (a *App) chord() {
	out, err := a.board.Chord(a.cursorRow, a.cursorCol)
	if err != nil {
		a.log.WithError(err).Error("chord failed")
		return
	}
	if out == mines.Detonated {
		a.over = true
		a.banner = "Boom! A flag was wrong."
	}
}

func (a *App) checkWin() {
	if !a.over && a.board.IsComplete() {
		a.over = true
		a.banner = "All clear - you win!"
	}
}

func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()
	rows, cols := a.board.Rows(), a.board.Cols()

	// The board stops hiding anything once the game is over.
	grid := a.board.Render(a.over)

	originX := max(0, (width-(cols*2-1))/2)
	originY := max(0, (height-rows)/2)
	for row := range rows {
		for col := range cols {
			sym := grid[row*cols+col]
			style := styleFor(sym)
			if !a.over && row == a.cursorRow && col == a.cursorCol {
				style = style.Reverse(true)
			}
			a.screen.SetContent(originX+col*2, originY+row, rune(sym), nil, style)
		}
	}

	status := fmt.Sprintf(
		"%dx%d  flags %d/%d  |  hjkl/arrows move  enter/space reveal  f flag  c chord  n new  q quit",
		rows, cols, a.board.CountFlags(), a.board.MineCount(),
	)
	drawText(a.screen, 1, height-1, status, tcell.StyleDefault.Foreground(tcell.ColorGray))

	if a.banner != "" {
		x := max(0, (width-len(a.banner))/2)
		drawText(a.screen, x, max(0, originY-2), a.banner,
			tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	}

	a.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
