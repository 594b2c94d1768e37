package entity

import "time"

// Score is the per-session tally of finished tic-tac-toe games.
type Score struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// Record counts a finished game once.
func (that *Score) Record(game *Game) {
	switch {
	case game.Status == StatusDrawn:
		that.Draws++
	case game.Status == StatusWon && game.Winner == PlayerX:
		that.X++
	case game.Status == StatusWon && game.Winner == PlayerO:
		that.O++
	}
}

const (
	KindTicTacToe = "tictactoe"
	KindSnake     = "snake"
)

// Result is one row of the append-only ledger of finished games.
type Result struct {
	SessionID  string    `json:"session_id"`
	GameID     string    `json:"game_id"`
	Kind       string    `json:"kind"`
	Outcome    string    `json:"outcome"`
	Winner     string    `json:"winner,omitempty"`
	Score      int       `json:"score"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewGameResult(sessionID string, game *Game, finishedAt time.Time) *Result {
	return &Result{
		SessionID:  sessionID,
		GameID:     game.ID,
		Kind:       KindTicTacToe,
		Outcome:    game.Status,
		Winner:     game.Winner,
		Moves:      len(game.History),
		FinishedAt: finishedAt,
	}
}

func NewSnakeResult(sessionID string, snake *Snake, finishedAt time.Time) *Result {
	return &Result{
		SessionID:  sessionID,
		GameID:     snake.ID,
		Kind:       KindSnake,
		Outcome:    snake.Status,
		Score:      snake.Score,
		Moves:      snake.Ticks,
		FinishedAt: finishedAt,
	}
}
