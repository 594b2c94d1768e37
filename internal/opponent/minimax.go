package opponent

import (
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
	"github.com/rocketscienceinc/gridgame-backend/internal/tictactoe"
)

const (
	winScore = 1_000_000
	infinity = 10 * winScore

	// fullDepth covers every ply of a 3x3 game.
	fullDepth = 9
	// wideBoardDepth bounds the search on boards larger than 3x3.
	wideBoardDepth = 4
)

type minimaxStrategy struct {
	maxDepth int
}

// NewMinimax returns an alpha-beta negamax player. A non-positive depth
// searches 3x3 boards to the end.
func NewMinimax(maxDepth int) Strategy {
	if maxDepth <= 0 {
		maxDepth = fullDepth
	}

	return &minimaxStrategy{maxDepth: maxDepth}
}

type search struct {
	board []string
	lines [][]int
}

func (that *minimaxStrategy) Choose(game *entity.Game) (int, bool) {
	empty := game.EmptyCells()
	if len(empty) == 0 {
		return 0, false
	}

	me := game.Turn
	if me == entity.EmptyCell {
		me = game.BotMark()
	}

	depth := that.maxDepth
	if game.Size > entity.DefaultBoardSize && depth > wideBoardDepth {
		depth = wideBoardDepth
	}

	s := &search{
		board: append([]string(nil), game.Board...),
		lines: tictactoe.Lines(game.Size),
	}

	alpha, beta := -infinity, infinity
	best, bestCell := -infinity, empty[0]

	// ties keep the lowest cell index
	for _, cell := range empty {
		s.board[cell] = me
		score := -s.negamax(entity.ToggleMark(me), cell, depth-1, 1, -beta, -alpha)
		s.board[cell] = entity.EmptyCell

		if score > best {
			best, bestCell = score, cell
		}
		if best > alpha {
			alpha = best
		}
	}

	return bestCell, true
}

// negamax scores the position for toMove; last is the cell just played by
// the other side.
func (that *search) negamax(toMove string, last, depth, ply, alpha, beta int) int {
	mover := entity.ToggleMark(toMove)
	if that.completesLine(last, mover) {
		return -(winScore - ply)
	}

	empty := that.emptyCells()
	if len(empty) == 0 {
		return 0
	}

	if depth <= 0 {
		return that.evaluate(toMove)
	}

	best := -infinity
	for _, cell := range empty {
		that.board[cell] = toMove
		score := -that.negamax(mover, cell, depth-1, ply+1, -beta, -alpha)
		that.board[cell] = entity.EmptyCell

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	return best
}

func (that *search) completesLine(cell int, mark string) bool {
	for _, line := range that.lines {
		if !contains(line, cell) {
			continue
		}

		owned := true
		for _, idx := range line {
			if that.board[idx] != mark {
				owned = false
				break
			}
		}

		if owned {
			return true
		}
	}

	return false
}

// evaluate rewards lines still open to only one side, weighted by how many
// marks they already hold.
func (that *search) evaluate(mark string) int {
	score := 0

	for _, line := range that.lines {
		mine, theirs := 0, 0
		for _, idx := range line {
			switch that.board[idx] {
			case mark:
				mine++
			case entity.EmptyCell:
			default:
				theirs++
			}
		}

		switch {
		case theirs == 0:
			score += mine * mine
		case mine == 0:
			score -= theirs * theirs
		}
	}

	return score
}

func (that *search) emptyCells() []int {
	cells := make([]int, 0, len(that.board))
	for i, cell := range that.board {
		if cell == entity.EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func contains(line []int, cell int) bool {
	for _, idx := range line {
		if idx == cell {
			return true
		}
	}
	return false
}
