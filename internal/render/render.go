// Package render draws session state as plain text.
package render

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
)

const (
	emptyGlyph = "."
	headGlyph  = "@"
	bodyGlyph  = "o"
	foodGlyph  = "*"
)

// Game draws the board followed by the status banner.
func Game(game *entity.Game) string {
	var sb strings.Builder

	for row := range game.Size {
		cells := make([]string, 0, game.Size)
		for col := range game.Size {
			cell := game.Board[row*game.Size+col]
			if cell == entity.EmptyCell {
				cell = emptyGlyph
			}
			cells = append(cells, cell)
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}

	sb.WriteString(Banner(game))

	return sb.String()
}

func Banner(game *entity.Game) string {
	switch game.Status {
	case entity.StatusWon:
		return fmt.Sprintf("Player %s wins!", game.Winner)
	case entity.StatusDrawn:
		return "It's a draw!"
	default:
		return "Current player: " + game.Turn
	}
}

func Score(score *entity.Score) string {
	return fmt.Sprintf("X: %d | Draws: %d | O: %d", score.X, score.Draws, score.O)
}

// Snake draws the grid with the head, body and food, then the score line.
func Snake(state *entity.Snake) string {
	grid := make([][]string, state.Size)
	for row := range grid {
		grid[row] = make([]string, state.Size)
		for col := range grid[row] {
			grid[row][col] = emptyGlyph
		}
	}

	if state.Status != entity.SnakeFilled && state.InBounds(state.Food) {
		grid[state.Food.Row][state.Food.Col] = foodGlyph
	}

	for i, part := range state.Body {
		if !state.InBounds(part) {
			continue
		}
		glyph := bodyGlyph
		if i == 0 {
			glyph = headGlyph
		}
		grid[part.Row][part.Col] = glyph
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(strings.Join(row, ""))
		sb.WriteByte('\n')
	}

	switch state.Status {
	case entity.SnakeOver:
		fmt.Fprintf(&sb, "Game over! Final score: %d", state.Score)
	case entity.SnakeFilled:
		fmt.Fprintf(&sb, "Board filled! Final score: %d", state.Score)
	default:
		fmt.Fprintf(&sb, "Score: %d", state.Score)
	}

	return sb.String()
}
