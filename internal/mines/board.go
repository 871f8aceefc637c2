package mines

import (
	"math/rand/v2"
)

// Outcome reports how a reveal ended.
type Outcome int

const (
	Revealed Outcome = iota
	Detonated
)

type cell struct {
	mine    bool
	open    bool
	flagged bool
	clue    uint8 // valid for non-mines once mines are placed
}

// Board holds the full state of a single game. It is not safe for concurrent
// use; a board belongs to exactly one frontend at a time.
type Board struct {
	rows, cols  int
	mineCount   int
	minesPlaced bool
	cells       []cell
	rnd         *rand.Rand
}

// NewBoard creates an empty board. Mines are placed lazily on the first
// reveal or flag, excluding that action's target cell, so the first move is
// always safe. The rand source is owned by the board; pass a seeded PCG for
// reproducible layouts, or nil for a fresh one.
func NewBoard(rows, cols, mineCount int, r *rand.Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if mineCount < 1 || mineCount >= rows*cols {
		return nil, ErrInvalidMineCount
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Board{
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
		cells:     make([]cell, rows*cols),
		rnd:       r,
	}, nil
}

func (b *Board) Rows() int      { return b.rows }
func (b *Board) Cols() int      { return b.cols }
func (b *Board) MineCount() int { return b.mineCount }

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

func (b *Board) checkBounds(row, col int) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return ErrOutOfBounds
	}
	return nil
}

// placeMines picks mineCount distinct cells uniformly from the whole grid
// except the excluded index, then fills in the clue counts. Guarded so the
// board is fixed exactly once.
func (b *Board) placeMines(excluded int) {
	if b.minesPlaced {
		return
	}

	candidates := make([]int, 0, len(b.cells)-1)
	for i := range b.cells {
		if i != excluded {
			candidates = append(candidates, i)
		}
	}
	k := len(candidates)
	for range b.mineCount {
		i := b.rnd.IntN(k)
		b.cells[candidates[i]].mine = true
		k--
		candidates[i] = candidates[k]
	}

	b.computeClues()
	b.minesPlaced = true
}

func (b *Board) computeClues() {
	for row := range b.rows {
		for col := range b.cols {
			c := &b.cells[b.index(row, col)]
			if c.mine {
				c.clue = 0
				continue
			}
			c.clue = uint8(b.countAdjacentMines(row, col))
		}
	}
}

func (b *Board) countAdjacentMines(row, col int) (n int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			rr, cc := row+dr, col+dc
			if rr < 0 || rr >= b.rows || cc < 0 || cc >= b.cols {
				continue
			}
			if b.cells[b.index(rr, cc)].mine {
				n++
			}
		}
	}
	return
}

// Reveal opens the cell at row, col. Opening a mine returns Detonated and
// the caller must treat the game as lost. Revealing an opened or flagged
// cell is a safe no-op. Opening a zero-clue cell cascades through the
// connected zero region and its numbered border.
func (b *Board) Reveal(row, col int) (Outcome, error) {
	if err := b.checkBounds(row, col); err != nil {
		return Revealed, err
	}
	i := b.index(row, col)
	b.placeMines(i)

	c := &b.cells[i]
	if c.open || c.flagged {
		return Revealed, nil
	}
	c.open = true
	if c.mine {
		return Detonated, nil
	}
	if c.clue == 0 {
		b.floodReveal(row, col)
	}
	return Revealed, nil
}

// floodReveal expands from an open zero-clue cell using an explicit stack;
// the open flag doubles as the visited guard, so each cell is handled at
// most once regardless of board size.
func (b *Board) floodReveal(row, col int) {
	stack := []int{b.index(row, col)}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		r, c := i/b.cols, i%b.cols
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				rr, cc := r+dr, c+dc
				if rr < 0 || rr >= b.rows || cc < 0 || cc >= b.cols {
					continue
				}
				j := b.index(rr, cc)
				n := &b.cells[j]
				if n.open || n.flagged || n.mine {
					continue
				}
				n.open = true
				if n.clue == 0 {
					stack = append(stack, j)
				}
			}
		}
	}
}

// ToggleFlag inverts the flag on a hidden cell. Flagging before anything has
// been revealed also fixes the board, excluding the flagged cell, so a
// first-move flag is never placed on a mine. Opened cells ignore flags.
func (b *Board) ToggleFlag(row, col int) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	i := b.index(row, col)
	b.placeMines(i)

	c := &b.cells[i]
	if c.open {
		return nil
	}
	c.flagged = !c.flagged
	return nil
}

// Chord opens every hidden unflagged neighbor of an open clue cell whose
// flagged-neighbor count matches its clue. A wrong flag makes this detonate.
// On any other target cell this is a no-op.
func (b *Board) Chord(row, col int) (Outcome, error) {
	if err := b.checkBounds(row, col); err != nil {
		return Revealed, err
	}
	c := b.cells[b.index(row, col)]
	if !c.open || c.mine || c.clue == 0 {
		return Revealed, nil
	}

	flags := 0
	var hidden [][2]int
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			rr, cc := row+dr, col+dc
			if rr < 0 || rr >= b.rows || cc < 0 || cc >= b.cols {
				continue
			}
			n := b.cells[b.index(rr, cc)]
			if n.flagged {
				flags++
			} else if !n.open {
				hidden = append(hidden, [2]int{rr, cc})
			}
		}
	}
	if flags != int(c.clue) {
		return Revealed, nil
	}

	for _, pos := range hidden {
		if out, _ := b.Reveal(pos[0], pos[1]); out == Detonated {
			return Detonated, nil
		}
	}
	return Revealed, nil
}

// IsComplete reports the win condition: every non-mine cell is open. Flags
// play no part in it.
func (b *Board) IsComplete() bool {
	for _, c := range b.cells {
		if !c.open && !c.mine {
			return false
		}
	}
	return true
}

func (b *Board) CountFlags() (n int) {
	for _, c := range b.cells {
		if c.flagged {
			n++
		}
	}
	return
}

// Render projects the board into display symbols without mutating it. With
// revealAll every mine is shown and every non-mine cell rendered as if open,
// which is how the frontends print the final board.
func (b *Board) Render(revealAll bool) Grid {
	grid := make(Grid, len(b.cells))
	for i, c := range b.cells {
		switch {
		case c.mine && (c.open || revealAll):
			grid[i] = Mine
		case c.open || (revealAll && !c.mine):
			grid[i] = Clue(int(c.clue))
		case c.flagged:
			grid[i] = Flag
		default:
			grid[i] = Hidden
		}
	}
	return grid
}
