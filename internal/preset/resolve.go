// resolve.go
package preset

import (
	"time"

	"github.com/xtding233/montyhall-backend/internal/monty"
)

// Fallbacks when neither the preset files nor the request set a value.
const (
	fallbackDoors  = 3
	fallbackPrizes = 1
	fallbackTrials = 10000
)

// Overrides carries per-request values (query parameters) that take
// precedence over the merged preset files.
type Overrides struct {
	Doors     *int
	Prizes    *int
	Trials    *int
	DelayMS   *int
	TraceSize *int
}

// Resolve merges default → named preset → overrides into a validated
// engine config plus run parameters. Board validation is delegated to
// monty so callers get the engine's error kinds.
func Resolve(l *Loader, name string, o Overrides) (monty.GameConfig, monty.SimParams, error) {
	raw, err := l.LoadMerged(name)
	if err != nil {
		return monty.GameConfig{}, monty.SimParams{}, err
	}
	if err := ValidateRaw(raw); err != nil {
		return monty.GameConfig{}, monty.SimParams{}, err
	}

	doors := fallbackDoors
	if raw.Board.Doors != nil {
		doors = *raw.Board.Doors
	}
	if o.Doors != nil {
		doors = *o.Doors
	}
	prizes := fallbackPrizes
	if raw.Board.Prizes != nil {
		prizes = *raw.Board.Prizes
	}
	if o.Prizes != nil {
		prizes = *o.Prizes
	}

	trials := fallbackTrials
	delayMS := 0
	traceSize := 0
	if raw.Sim != nil {
		if raw.Sim.Trials != nil {
			trials = *raw.Sim.Trials
		}
		if raw.Sim.DelayMS != nil {
			delayMS = *raw.Sim.DelayMS
		}
		if raw.Sim.TraceSize != nil {
			traceSize = *raw.Sim.TraceSize
		}
	}
	if o.Trials != nil {
		trials = *o.Trials
	}
	if o.DelayMS != nil {
		delayMS = *o.DelayMS
	}
	if o.TraceSize != nil {
		traceSize = *o.TraceSize
	}

	cfg := monty.GameConfig{Doors: doors, Prizes: prizes}
	if err := cfg.Validate(); err != nil {
		return monty.GameConfig{}, monty.SimParams{}, err
	}

	params := monty.SimParams{
		Trials:    trials,
		Delay:     time.Duration(delayMS) * time.Millisecond,
		TraceSize: traceSize,
	}
	return cfg, params, nil
}
