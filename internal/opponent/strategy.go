package opponent

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame-backend/internal/apperror"
	"github.com/rocketscienceinc/gridgame-backend/internal/entity"
	"github.com/rocketscienceinc/gridgame-backend/internal/rng"
)

// Strategy picks the computer's next cell. ok is false when no empty cell
// is left, in which case no move is made.
type Strategy interface {
	Choose(game *entity.Game) (cell int, ok bool)
}

type randomStrategy struct {
	source rng.Source
}

func NewRandom(source rng.Source) Strategy {
	return &randomStrategy{source: source}
}

func (that *randomStrategy) Choose(game *entity.Game) (int, bool) {
	availableCells := game.EmptyCells()
	if len(availableCells) == 0 {
		return 0, false
	}

	return availableCells[that.source.Intn(len(availableCells))], true
}

// Registry resolves a strategy by the name stored on the game.
type Registry struct {
	strategies map[string]Strategy
}

func NewRegistry(source rng.Source, minimaxDepth int) *Registry {
	return &Registry{
		strategies: map[string]Strategy{
			entity.StrategyRandom:  NewRandom(source),
			entity.StrategyMinimax: NewMinimax(minimaxDepth),
		},
	}
}

func (that *Registry) Get(name string) (Strategy, error) {
	strategy, ok := that.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown strategy %q", apperror.ErrInvalidInput, name)
	}

	return strategy, nil
}
