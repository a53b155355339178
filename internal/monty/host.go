package monty

import "errors"

// ErrNoOpenableDoor reports a broken contract: with a valid GameConfig
// there is always at least one unpicked, non-prize door left to open.
// This is a programming error upstream, not a recoverable condition.
var ErrNoOpenableDoor = errors.New("no non-prize, unpicked door for the host to open")

// RevealDoor selects the door the host opens: uniformly random among the
// doors that are neither the player's pick nor a prize. The picked door
// may itself hold a prize; it is excluded either way.
func RevealDoor(board Board, picked int, rng RandomSource) (int, error) {
	if rng == nil {
		rng = DefaultRNG()
	}
	eligible := make([]int, 0, len(board))
	for i, d := range board {
		if i == picked || d.HasPrize {
			continue
		}
		eligible = append(eligible, i)
	}
	if len(eligible) == 0 {
		return -1, ErrNoOpenableDoor
	}
	return eligible[rng.IntN(len(eligible))], nil
}
