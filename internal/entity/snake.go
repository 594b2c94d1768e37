package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
)

const (
	SnakeRunning = "running"
	SnakeOver    = "over"
	SnakeFilled  = "filled"
)

const (
	DefaultSnakeSize = 20
	MinSnakeSize     = 5
	MaxSnakeSize     = 64

	initialSnakeLength = 3
)

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Point is a grid coordinate; Row grows downwards, Col grows to the right.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoFood marks a board with no free cell left for food.
var NoFood = Point{Row: -1, Col: -1}

func (that Point) Add(delta Point) Point {
	return Point{Row: that.Row + delta.Row, Col: that.Col + delta.Col}
}

// Snake is the continuous-motion state record of one session.
type Snake struct {
	ID        string    `json:"id"`
	Size      int       `json:"size"`
	Body      []Point   `json:"body"`
	Direction Direction `json:"direction"`
	Food      Point     `json:"food"` // NoFood once the board is filled
	Score     int       `json:"score"`
	Status    string    `json:"status"`
	AutoPlay  bool      `json:"auto_play"`
	Ticks     int       `json:"ticks"`
}

// NewSnake places a three-cell snake heading right; food is placed by the caller.
func NewSnake(id string, size int) *Snake {
	row, col := size/4, max(size/4, initialSnakeLength-1)

	body := make([]Point, 0, initialSnakeLength)
	for i := range initialSnakeLength {
		body = append(body, Point{Row: row, Col: col - i})
	}

	return &Snake{
		ID:        id,
		Size:      size,
		Body:      body,
		Direction: Right,
		Status:    SnakeRunning,
	}
}

func (that *Snake) Clone() *Snake {
	clone := *that
	clone.Body = append([]Point(nil), that.Body...)
	return &clone
}

func (that *Snake) Head() Point {
	return that.Body[0]
}

func (that *Snake) IsRunning() bool {
	return that.Status == SnakeRunning
}

func (that *Snake) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < that.Size && p.Col >= 0 && p.Col < that.Size
}

func (that *Snake) Occupies(p Point) bool {
	for _, part := range that.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Vector returns the unit step of a direction.
func (that Direction) Vector() Point {
	switch that {
	case Up:
		return Point{Row: -1}
	case Down:
		return Point{Row: 1}
	case Left:
		return Point{Col: -1}
	case Right:
		return Point{Col: 1}
	}
	return Point{}
}

func ParseDirection(value string) (Direction, error) {
	switch dir := Direction(value); dir {
	case Up, Down, Left, Right:
		return dir, nil
	default:
		return "", fmt.Errorf("%w: unknown direction %q", apperror.ErrInvalidInput, value)
	}
}

func ValidateSnakeSize(size int) error {
	if size < MinSnakeSize || size > MaxSnakeSize {
		return fmt.Errorf("%w: grid size %d, want %d..%d", apperror.ErrInvalidInput, size, MinSnakeSize, MaxSnakeSize)
	}
	return nil
}
