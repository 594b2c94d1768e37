// Package snake holds the pure transitions of the continuous-motion game.
// Every function returns a new state and leaves its input untouched.
package snake

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
	"github.com/rocketscienceinc/gridgame-backend/internal/rng"
)

// New builds the starting snake and places the first food.
func New(id string, size int, source rng.Source) (*entity.Snake, error) {
	if err := entity.ValidateSnakeSize(size); err != nil {
		return nil, err
	}

	state := entity.NewSnake(id, size)
	placeFood(state, source)

	return state, nil
}

// Tick advances the snake by one cell.
func Tick(state *entity.Snake, source rng.Source) *entity.Snake {
	if !state.IsRunning() {
		return state
	}

	next := state.Clone()
	next.Ticks++

	head := next.Head().Add(next.Direction.Vector())
	if !next.InBounds(head) || next.Occupies(head) {
		next.Status = entity.SnakeOver
		return next
	}

	next.Body = append([]entity.Point{head}, next.Body...)

	if head == next.Food {
		next.Score++
		placeFood(next, source)
		return next
	}

	next.Body = next.Body[:len(next.Body)-1]

	return next
}

// Steer changes the heading unless it would turn the head into the neck.
func Steer(state *entity.Snake, dir entity.Direction) (*entity.Snake, error) {
	if !state.IsRunning() {
		return state, apperror.ErrSnakeNotRunning
	}

	if _, err := entity.ParseDirection(string(dir)); err != nil {
		return state, err
	}

	if reverses(state, dir) {
		return state, fmt.Errorf("%w: %s while heading %s", apperror.ErrReverseDirection, dir, state.Direction)
	}

	next := state.Clone()
	next.Direction = dir

	return next, nil
}

// AutoSteer moves along the axis with the larger distance to the food and
// keeps the current heading when that would reverse the snake.
func AutoSteer(state *entity.Snake) *entity.Snake {
	if !state.IsRunning() {
		return state
	}

	head := state.Head()
	dRow := state.Food.Row - head.Row
	dCol := state.Food.Col - head.Col

	var dir entity.Direction
	switch {
	case abs(dRow) > abs(dCol) && dRow < 0:
		dir = entity.Up
	case abs(dRow) > abs(dCol):
		dir = entity.Down
	case dCol < 0:
		dir = entity.Left
	case dCol > 0:
		dir = entity.Right
	default:
		return state
	}

	next, err := Steer(state, dir)
	if err != nil {
		return state
	}

	return next
}

func reverses(state *entity.Snake, dir entity.Direction) bool {
	if len(state.Body) < 2 {
		return false
	}

	return state.Head().Add(dir.Vector()) == state.Body[1]
}

// placeFood picks uniformly among free cells; a board with none left ends
// the game as filled.
func placeFood(state *entity.Snake, source rng.Source) {
	free := make([]entity.Point, 0, state.Size*state.Size-len(state.Body))
	for row := range state.Size {
		for col := range state.Size {
			p := entity.Point{Row: row, Col: col}
			if !state.Occupies(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		state.Status = entity.SnakeFilled
		state.Food = entity.NoFood
		return
	}

	state.Food = free[source.Intn(len(free))]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
