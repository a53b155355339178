package server

import (
	"errors"

	"github.com/xtding233/montyhall-backend/internal/monty"
)

// Views sent to the UI layer. Prize locations stay hidden until a door is
// opened, so a client cannot peek at a closed board.

type DoorView struct {
	Open     bool  `json:"open"`
	Selected bool  `json:"selected"`
	HasPrize *bool `json:"has_prize,omitempty"` // only for open doors
}

type StatsView struct {
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"`
}

type GameView struct {
	Config monty.GameConfig `json:"config"`
	State  string           `json:"state"`
	Kind   string           `json:"kind"`
	Doors  []DoorView       `json:"doors"`
	Picked int              `json:"picked"`
	Stay   StatsView        `json:"stay"`
	Switch StatsView        `json:"switch"`
	Rounds int              `json:"rounds"`
}

type SimView struct {
	Running   bool      `json:"running"`
	Cancelled bool      `json:"cancelled"`
	Progress  float64   `json:"progress"`
	Trials    int       `json:"trials"`
	Completed int       `json:"completed"`
	Stay      StatsView `json:"stay"`
	Switch    StatsView `json:"switch"`
	Trace     []bool    `json:"trace"`
	Err       string    `json:"err,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func statsView(s monty.Stats) StatsView {
	return StatsView{Wins: s.Wins, Losses: s.Losses, WinRate: s.WinRate()}
}

func boardView(b monty.Board) []DoorView {
	doors := make([]DoorView, len(b))
	for i, d := range b {
		doors[i] = DoorView{Open: d.Open, Selected: d.Selected}
		if d.Open {
			hasPrize := d.HasPrize
			doors[i].HasPrize = &hasPrize
		}
	}
	return doors
}

func gameView(g *monty.ManualGame) GameView {
	stats := g.Stats()
	return GameView{
		Config: g.Config(),
		State:  g.State().String(),
		Kind:   string(g.Kind()),
		Doors:  boardView(g.Board()),
		Picked: g.Picked(),
		Stay:   statsView(stats.Stay),
		Switch: statsView(stats.Switch),
		Rounds: g.Rounds(),
	}
}

func simView(s monty.SimSnapshot) SimView {
	v := SimView{
		Running:   s.Running,
		Cancelled: s.Cancelled,
		Progress:  s.Progress,
		Trials:    s.Trials,
		Completed: s.Completed,
		Stay:      statsView(s.Stats.Stay),
		Switch:    statsView(s.Stats.Switch),
		Trace:     s.Trace,
	}
	if s.Err != nil {
		v.Err = s.Err.Error()
	}
	return v
}

// errorCode maps engine error kinds to stable codes the UI translates.
func errorCode(err error) string {
	switch {
	case errors.Is(err, monty.ErrNotANumber):
		return "not_a_number"
	case errors.Is(err, monty.ErrTooFewDoors):
		return "too_few_doors"
	case errors.Is(err, monty.ErrTooFewPrizes):
		return "too_few_prizes"
	case errors.Is(err, monty.ErrTooManyPrizes):
		return "too_many_prizes"
	case errors.Is(err, monty.ErrNoSwitchChoice):
		return "insufficient_switch_choice"
	case errors.Is(err, monty.ErrSimActive):
		return "sim_active"
	case errors.Is(err, monty.ErrNoOpenableDoor):
		return "no_openable_door"
	default:
		return "invalid_request"
	}
}

func errorView(err error) *ErrorView {
	return &ErrorView{Code: errorCode(err), Message: err.Error()}
}
