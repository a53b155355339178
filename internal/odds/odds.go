package odds

import "github.com/xtding233/montyhall-backend/internal/monty"

// Closed-form win probabilities for the generalized board: N doors, P
// prizes, one non-prize door opened by the host before the final choice.
// The simulator's empirical rates converge to these values.

// StayWin is the chance the initial pick holds a prize: P/N.
func StayWin(cfg monty.GameConfig) float64 {
	return float64(cfg.Prizes) / float64(cfg.Doors)
}

// SwitchWin expands over whether the initial pick holds a prize. After
// the reveal, N-2 closed doors remain besides the pick:
//
//	pick holds a prize (P/N):      P-1 prizes spread over N-2 doors
//	pick holds no prize (1 - P/N): P prizes spread over N-2 doors
func SwitchWin(cfg monty.GameConfig) float64 {
	n := float64(cfg.Doors)
	p := float64(cfg.Prizes)
	return (p/n)*((p-1)/(n-2)) + ((n-p)/n)*(p/(n-2))
}

// Advantage is the switch strategy's edge over staying. Positive for
// every valid configuration.
func Advantage(cfg monty.GameConfig) float64 {
	return SwitchWin(cfg) - StayWin(cfg)
}

// Expectation projects expected win counts for a batch of trials; the UI
// draws these as reference lines next to the empirical counters.
type Expectation struct {
	Trials     int     `json:"trials"`
	StayWins   float64 `json:"stay_wins"`
	SwitchWins float64 `json:"switch_wins"`
}

func Expect(cfg monty.GameConfig, trials int) Expectation {
	if trials < 0 {
		trials = 0
	}
	return Expectation{
		Trials:     trials,
		StayWins:   float64(trials) * StayWin(cfg),
		SwitchWins: float64(trials) * SwitchWin(cfg),
	}
}
