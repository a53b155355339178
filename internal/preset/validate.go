package preset

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawPreset. Board rules
// mirror the engine's config invariant so a broken preset file is caught
// at load time, not when a game starts.
func ValidateRaw(cfg RawPreset) error {
	var errs []string

	if cfg.Board.Doors != nil && *cfg.Board.Doors < 3 {
		errs = append(errs, "board.doors must be >= 3")
	}
	if cfg.Board.Prizes != nil && *cfg.Board.Prizes < 1 {
		errs = append(errs, "board.prizes must be >= 1")
	}
	if cfg.Board.Doors != nil && cfg.Board.Prizes != nil {
		if *cfg.Board.Prizes >= *cfg.Board.Doors {
			errs = append(errs, "board.prizes must be < board.doors")
		} else if *cfg.Board.Doors-*cfg.Board.Prizes < 2 {
			errs = append(errs, "board.doors - board.prizes must be >= 2")
		}
	}

	if cfg.Sim != nil {
		if cfg.Sim.Trials != nil && *cfg.Sim.Trials <= 0 {
			errs = append(errs, "sim.trials must be > 0")
		}
		if cfg.Sim.DelayMS != nil && *cfg.Sim.DelayMS < 0 {
			errs = append(errs, "sim.delay_ms must be >= 0")
		}
		if cfg.Sim.TraceSize != nil && *cfg.Sim.TraceSize <= 0 {
			errs = append(errs, "sim.trace_size must be > 0")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("preset validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
