package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// Result is how a session ended.
type Result int

const (
	Quit Result = iota
	Won
	Lost
)

// Session drives one game over a line-based text interface. Reader and
// writer are injected so whole games can be scripted in tests.
type Session struct {
	board *mines.Board
	in    *bufio.Scanner
	out   io.Writer
	log   *logrus.Entry
}

func New(board *mines.Board, in io.Reader, out io.Writer, log *logrus.Entry) *Session {
	return &Session{
		board: board,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
	}
}

// Run loops until the game is won, lost or quit. Parse failures and
// out-of-bounds moves print a message and keep the game going; the board is
// never touched by a rejected command.
func (s *Session) Run() Result {
	fmt.Fprintln(s.out, "Welcome to minesweeper!")
	fmt.Fprintln(s.out, "Commands: 'r <row> <col>' reveal, 'f <row> <col>' flag, 'c <row> <col>' chord, 'q' quit.")
	fmt.Fprintln(s.out, "A bare '<row> <col>' reveals as well.")

	for {
		fmt.Fprintf(s.out, "\n%s\n", renderBoard(s.board, false))
		fmt.Fprintf(s.out, "Flags: %d/%d\n", s.board.CountFlags(), s.board.MineCount())
		fmt.Fprint(s.out, "> ")

		if !s.in.Scan() {
			s.log.Debug("input closed, quitting")
			return Quit
		}
		line := s.in.Text()

		cmd, err := ParseCommand(line)
		if err != nil {
			s.log.WithField("line", line).Debug("rejected command")
			fmt.Fprintln(s.out, "Invalid input:", err)
			continue
		}
		s.log.WithFields(logrus.Fields{
			"action": cmd.Action, "row": cmd.Row, "col": cmd.Col,
		}).Debug("command")

		switch cmd.Action {
		case ActionQuit:
			fmt.Fprintln(s.out, "Bye!")
			return Quit

		case ActionFlag:
			if err := s.board.ToggleFlag(cmd.Row, cmd.Col); err != nil {
				s.reportMoveError(cmd, err)
				continue
			}

		case ActionReveal, ActionChord:
			var out mines.Outcome
			if cmd.Action == ActionReveal {
				out, err = s.board.Reveal(cmd.Row, cmd.Col)
			} else {
				out, err = s.board.Chord(cmd.Row, cmd.Col)
			}
			if err != nil {
				s.reportMoveError(cmd, err)
				continue
			}
			if out == mines.Detonated {
				fmt.Fprintln(s.out, "Boom! You hit a mine.")
				fmt.Fprintln(s.out, renderBoard(s.board, true))
				return Lost
			}
		}

		if s.board.IsComplete() {
			fmt.Fprintln(s.out, "Congratulations, you cleared the board!")
			fmt.Fprintln(s.out, renderBoard(s.board, true))
			return Won
		}
	}
}

func (s *Session) reportMoveError(cmd Command, err error) {
	if errors.Is(err, mines.ErrOutOfBounds) {
		fmt.Fprintf(s.out, "Position (%d, %d) is outside the board.\n", cmd.Row+1, cmd.Col+1)
		return
	}
	fmt.Fprintln(s.out, "Invalid move:", err)
}

// renderBoard joins the engine's symbol grid into a multi-line board with
// 1-based row and column headers.
func renderBoard(b *mines.Board, revealAll bool) string {
	grid := b.Render(revealAll)

	cellWidth := max(2, len(strconv.Itoa(b.Cols())))
	var out strings.Builder

	out.WriteString("    ")
	for col := range b.Cols() {
		if col > 0 {
			out.WriteString(" ")
		}
		fmt.Fprintf(&out, "%*d", cellWidth, col+1)
	}
	for row := range b.Rows() {
		fmt.Fprintf(&out, "\n%3d ", row+1)
		for col := range b.Cols() {
			if col > 0 {
				out.WriteString(" ")
			}
			fmt.Fprintf(&out, "%*s", cellWidth, grid[row*b.Cols()+col])
		}
	}
	return out.String()
}
