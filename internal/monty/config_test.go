package monty

import (
	"errors"
	"testing"
)

func TestParseConfigRules(t *testing.T) {
	cases := []struct {
		name   string
		doors  string
		prizes string
		want   error
	}{
		{"classic minimum", "3", "1", nil},
		{"large board", "100", "98", nil},
		{"whitespace tolerated", " 5 ", " 2 ", nil},
		{"doors not a number", "abc", "1", ErrNotANumber},
		{"prizes not a number", "3", "x", ErrNotANumber},
		{"fractional rejected", "3.5", "1", ErrNotANumber},
		{"too few doors", "2", "1", ErrTooFewDoors},
		{"too few doors checked before prizes", "2", "0", ErrTooFewDoors},
		{"too few prizes", "5", "0", ErrTooFewPrizes},
		{"negative prizes", "5", "-1", ErrTooFewPrizes},
		{"too many prizes", "5", "7", ErrTooManyPrizes},
		{"prizes equal doors", "5", "5", ErrTooManyPrizes},
		{"no switch choice at minimum", "3", "2", ErrNoSwitchChoice},
		{"no switch choice", "10", "9", ErrNoSwitchChoice},
		{"one short of switch room", "4", "3", ErrNoSwitchChoice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseConfig(tc.doors, tc.prizes)
			if !errors.Is(err, tc.want) {
				t.Fatalf("ParseConfig(%q, %q) err=%v want %v", tc.doors, tc.prizes, err, tc.want)
			}
			if tc.want == nil && (cfg.Doors < 3 || cfg.Prizes < 1) {
				t.Fatalf("valid input produced zero config: %+v", cfg)
			}
		})
	}
}

func TestValidateKeepsPriorConfigSemantics(t *testing.T) {
	// a failed parse returns the zero config; callers keep their old one
	cfg, err := ParseConfig("3", "2")
	if err == nil {
		t.Fatal("expected error")
	}
	if cfg != (GameConfig{}) {
		t.Fatalf("failed parse must not return a partial config: %+v", cfg)
	}
}
