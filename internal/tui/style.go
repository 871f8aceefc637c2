package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// styleFor maps a display symbol to its color. Clue digits keep the classic
// minesweeper palette.
func styleFor(sym mines.Symbol) tcell.Style {
	switch sym {
	case mines.Mine:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case mines.Flag:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case mines.Hidden:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case '1':
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case '2':
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case '3':
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case '4':
		return tcell.StyleDefault.Foreground(tcell.ColorNavy)
	case '5':
		return tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	case '6':
		return tcell.StyleDefault.Foreground(tcell.ColorTeal)
	case '7':
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	case '8':
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}
