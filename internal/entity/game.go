package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

const (
	ModePvP = "pvp"
	ModeBot = "bot"

	StrategyRandom  = "random"
	StrategyMinimax = "minimax"
)

const (
	DefaultBoardSize = 3
	MinBoardSize     = 3
	MaxBoardSize     = 5
)

// Move is a single accepted mark placement.
type Move struct {
	Mark string `json:"mark"`
	Cell int    `json:"cell"`
}

// Game is the tic-tac-toe state record of one session.
type Game struct {
	ID       string   `json:"id"`
	Size     int      `json:"size"`
	Board    []string `json:"board"`
	Turn     string   `json:"turn"`
	Status   string   `json:"status"`
	Winner   string   `json:"winner,omitempty"`
	Line     []int    `json:"line,omitempty"`
	History  []Move   `json:"history,omitempty"`
	Mode     string   `json:"mode"`
	Strategy string   `json:"strategy,omitempty"`
}

func NewGame(id string, size int) *Game {
	return &Game{
		ID:     id,
		Size:   size,
		Board:  make([]string, size*size),
		Turn:   PlayerX,
		Status: StatusOngoing,
		Mode:   ModePvP,
	}
}

// Clone returns a deep copy, so transitions never share slices with their input.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Board = append([]string(nil), that.Board...)
	clone.Line = append([]int(nil), that.Line...)
	clone.History = append([]Move(nil), that.History...)

	if len(clone.Line) == 0 {
		clone.Line = nil
	}
	if len(clone.History) == 0 {
		clone.History = nil
	}

	return &clone
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeBot
}

// BotMark is the mark played by the computer; the human always opens.
func (that *Game) BotMark() string {
	return PlayerO
}

func (that *Game) EmptyCells() []int {
	cells := make([]int, 0, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsOngoing():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

func ToggleMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func ValidateMode(mode, strategy string) error {
	switch mode {
	case ModePvP:
		return nil
	case ModeBot:
		switch strategy {
		case StrategyRandom, StrategyMinimax:
			return nil
		default:
			return fmt.Errorf("%w: unknown strategy %q", apperror.ErrInvalidInput, strategy)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", apperror.ErrInvalidInput, mode)
	}
}

func ValidateBoardSize(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("%w: board size %d, want %d..%d", apperror.ErrInvalidInput, size, MinBoardSize, MaxBoardSize)
	}
	return nil
}
