package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
)

// Apply places the current player's mark on cell and returns the next state.
// The input is never mutated; on rejection it is returned as is.
func Apply(game *entity.Game, cell int) (*entity.Game, error) {
	if err := validateMove(game, cell); err != nil {
		return game, fmt.Errorf("invalid turn: %w", err)
	}

	next := game.Clone()
	next.Board[cell] = next.Turn
	next.History = append(next.History, entity.Move{Mark: next.Turn, Cell: cell})

	updateGameStatus(next)

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, cell int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if cell < 0 || cell >= len(game.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.Board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game) {
	outcome := Detect(game.Board, game.Size)

	switch outcome.Status {
	case entity.StatusWon:
		game.Status = entity.StatusWon
		game.Winner = outcome.Winner
		game.Line = outcome.Line
		game.Turn = ""
	case entity.StatusDrawn:
		game.Status = entity.StatusDrawn
		game.Turn = ""
	default:
		game.Turn = entity.ToggleMark(game.Turn)
	}
}

// Replay rebuilds every intermediate state from a move log. The first frame
// is the empty board.
func Replay(id string, size int, moves []entity.Move) ([]*entity.Game, error) {
	state := entity.NewGame(id, size)
	frames := []*entity.Game{state}

	for i, move := range moves {
		if move.Mark != state.Turn {
			return frames, fmt.Errorf("move %d: %w", i, apperror.ErrNotYourTurn)
		}

		next, err := Apply(state, move.Cell)
		if err != nil {
			return frames, fmt.Errorf("move %d: %w", i, err)
		}

		state = next
		frames = append(frames, state)
	}

	return frames, nil
}
