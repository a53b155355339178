package monty

// Door state within one game. Open and Selected are session flags flipped
// by the manual game; they are not part of the board's randomness.
type Door struct {
	HasPrize bool `json:"has_prize"`
	Open     bool `json:"open"`
	Selected bool `json:"selected"`
}

// Board is an ordered run of doors with exactly Prizes entries holding a
// prize, placed uniformly at random.
type Board []Door

// GenerateBoard places cfg.Prizes prizes by rejection sampling: redraw a
// uniform index until an unmarked door comes up. For Prizes <= Doors-2 the
// expected number of draws stays within a small constant factor of Doors.
func GenerateBoard(cfg GameConfig, rng RandomSource) Board {
	if rng == nil {
		rng = DefaultRNG()
	}
	board := make(Board, cfg.Doors)
	placed := 0
	for placed < cfg.Prizes {
		i := rng.IntN(cfg.Doors)
		if !board[i].HasPrize {
			board[i].HasPrize = true
			placed++
		}
	}
	return board
}

// PrizeCount counts doors holding a prize.
func (b Board) PrizeCount() int {
	n := 0
	for _, d := range b {
		if d.HasPrize {
			n++
		}
	}
	return n
}

// Clone returns an independent copy for snapshots.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}
