package tictactoe

import "github.com/rocketscienceinc/gridgame-backend/internal/entity"

// Outcome is the result of inspecting a board.
type Outcome struct {
	Status string
	Winner string
	Line   []int
}

// Lines enumerates the winning lines of a size x size board:
// rows, then columns, then the main and anti diagonal.
func Lines(size int) [][]int {
	lines := make([][]int, 0, 2*size+2)

	for row := range size {
		line := make([]int, 0, size)
		for col := range size {
			line = append(line, row*size+col)
		}
		lines = append(lines, line)
	}

	for col := range size {
		line := make([]int, 0, size)
		for row := range size {
			line = append(line, row*size+col)
		}
		lines = append(lines, line)
	}

	diagonal := make([]int, 0, size)
	antiDiagonal := make([]int, 0, size)
	for i := range size {
		diagonal = append(diagonal, i*size+i)
		antiDiagonal = append(antiDiagonal, i*size+(size-1-i))
	}

	return append(lines, diagonal, antiDiagonal)
}

// Detect returns the first fully owned line as the winner, a draw when the
// board is full, and ongoing otherwise.
func Detect(board []string, size int) Outcome {
	return detectWith(board, Lines(size))
}

func detectWith(board []string, lines [][]int) Outcome {
	for _, line := range lines {
		if owner := lineOwner(board, line); owner != entity.EmptyCell {
			return Outcome{
				Status: entity.StatusWon,
				Winner: owner,
				Line:   append([]int(nil), line...),
			}
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return Outcome{Status: entity.StatusOngoing}
		}
	}

	return Outcome{Status: entity.StatusDrawn}
}

func lineOwner(board []string, line []int) string {
	first := board[line[0]]
	if first == entity.EmptyCell {
		return entity.EmptyCell
	}

	for _, idx := range line[1:] {
		if board[idx] != first {
			return entity.EmptyCell
		}
	}

	return first
}
