package monty

import (
	"errors"
	"strconv"
	"strings"
)

// Validation error kinds. Checked in order, first failure wins; the UI
// layer maps each kind to a display message.
var (
	ErrNotANumber     = errors.New("doors and prizes must be integers")
	ErrTooFewDoors    = errors.New("at least 3 doors required")
	ErrTooFewPrizes   = errors.New("at least 1 prize required")
	ErrTooManyPrizes  = errors.New("prizes must be fewer than doors")
	ErrNoSwitchChoice = errors.New("doors minus prizes must be at least 2")
)

// GameConfig is one validated door/prize pair. Immutable once built;
// a new configuration replaces it wholesale.
type GameConfig struct {
	Doors  int `json:"doors"`
	Prizes int `json:"prizes"`
}

// ParseConfig validates raw text inputs and returns a usable config.
func ParseConfig(doorsText, prizesText string) (GameConfig, error) {
	doors, err := strconv.Atoi(strings.TrimSpace(doorsText))
	if err != nil {
		return GameConfig{}, ErrNotANumber
	}
	prizes, err := strconv.Atoi(strings.TrimSpace(prizesText))
	if err != nil {
		return GameConfig{}, ErrNotANumber
	}
	cfg := GameConfig{Doors: doors, Prizes: prizes}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Validate checks an already-parsed pair against the same rules.
// Doors-Prizes >= 2 guarantees the host always has a non-prize, unpicked
// door to open, and that a closed alternative remains for a switch.
func (c GameConfig) Validate() error {
	if c.Doors < 3 {
		return ErrTooFewDoors
	}
	if c.Prizes < 1 {
		return ErrTooFewPrizes
	}
	if c.Prizes >= c.Doors {
		return ErrTooManyPrizes
	}
	if c.Doors-c.Prizes < 2 {
		return ErrNoSwitchChoice
	}
	return nil
}
