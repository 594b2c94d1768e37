package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrIllegalMove     = errors.New("illegal move")
	ErrDuplicateRecord = errors.New("duplicate record")
	ErrNotFound        = errors.New("not found")
)

var (
	ErrGameFinished      = fmt.Errorf("%w: game is already finished", ErrIllegalMove)
	ErrNotYourTurn       = fmt.Errorf("%w: it's not your turn", ErrIllegalMove)
	ErrCellOccupied      = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrInvalidCell       = fmt.Errorf("%w: invalid cell index", ErrIllegalMove)
	ErrReverseDirection  = fmt.Errorf("%w: snake can't reverse into itself", ErrIllegalMove)
	ErrSnakeNotRunning   = fmt.Errorf("%w: snake is not running", ErrIllegalMove)
	ErrUnknownGameStatus = errors.New("unknown game status")
)
