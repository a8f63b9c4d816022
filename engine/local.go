package engine

import (
	"fmt"
	"quarto/experiments/metrics"
	"quarto/game"
	"quarto/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// Seat is one player of a local game. Metrics, if set, is the collector the
// agent reports its searches to.
type Seat struct {
	Agent   agent.Agent
	Metrics metrics.Collector
}

type Local struct {
	State game.State
	Seats [2]Seat
}

// LocalEngine returns a game between two agents; seats[0] moves first.
func LocalEngine(seats [2]Seat) *Local {
	for i, seat := range seats {
		if seat.Agent == nil {
			panic(fmt.Sprintf("seat %d has no agent", i))
		}
	}
	return &Local{
		State: game.NewState(),
		Seats: seats,
	}
}

// Run executes the entire game loop. Agents see a copy of the state, and
// an illegal action from an agent panics.
func (e *Local) Run() (Result, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	step := 0
	for !e.State.IsDone() {
		if step >= MaxMoves {
			panic(fmt.Sprintf("game still running after %d moves", step))
		}
		player := step % 2
		seat := e.Seats[player]

		view := e.State
		action := seat.Agent.FindMove(&view)
		if err := action.Validate(&e.State); err != nil {
			panic(fmt.Sprintf("player %d played an illegal action %s: %v", player, action, err))
		}
		e.State.Apply(action)
		step++

		moveMetric := metrics.MoveMetric{Step: step, Player: player, Action: action.String()}
		if seat.Metrics != nil {
			moveMetric.SearchMetric = seat.Metrics.Complete()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		log.Debug().Int("step", step).Int("player", player).Stringer("action", action).Msg("move played")
	}

	result := Result{Winner: Draw, State: e.State}
	if e.State.WinningStatus() == game.Win {
		result.Winner = (step - 1) % 2
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		Winner:     result.Winner,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: step,
	}
	log.Debug().Int("winner", result.Winner).Int("moves", step).Msg("game over")

	return result, gameMetric, moveMetrics
}
