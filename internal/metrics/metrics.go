package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	GameTicTacToe = "tictactoe"
	GameSnake     = "snake"

	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

var (
	// registry keeps the service metrics apart from prometheus.DefaultRegistry
	registry = prometheus.NewRegistry()

	movesTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridgame_moves_total",
			Help: "Total number of moves and steering commands, partitioned by game and result.",
		},
		[]string{"game", "result"},
	)
	gamesFinished = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridgame_games_finished_total",
			Help: "Total number of finished games, partitioned by game and outcome.",
		},
		[]string{"game", "outcome"},
	)
	snakeTicks = promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Name: "gridgame_snake_ticks_total",
			Help: "Total number of snake ticks processed.",
		},
	)
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncMove counts a move attempt, result is ResultAccepted or ResultRejected.
func IncMove(game, result string) {
	movesTotal.WithLabelValues(game, result).Inc()
}

// Moves returns the move counter of one game and result.
func Moves(game, result string) prometheus.Counter {
	return movesTotal.WithLabelValues(game, result)
}

func IncGameFinished(game, outcome string) {
	gamesFinished.WithLabelValues(game, outcome).Inc()
}

func IncSnakeTick() {
	snakeTicks.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
