package preset

import (
	"strings"
	"testing"
)

func intp(v int) *int { return &v }

func TestValidateRaw(t *testing.T) {
	cases := []struct {
		name    string
		cfg     RawPreset
		wantErr string // substring; "" means valid
	}{
		{"empty is valid", RawPreset{}, ""},
		{"classic", RawPreset{Board: BoardCfg{Doors: intp(3), Prizes: intp(1)}}, ""},
		{"too few doors", RawPreset{Board: BoardCfg{Doors: intp(2)}}, "board.doors"},
		{"too few prizes", RawPreset{Board: BoardCfg{Prizes: intp(0)}}, "board.prizes"},
		{"prizes ge doors", RawPreset{Board: BoardCfg{Doors: intp(4), Prizes: intp(4)}}, "must be < board.doors"},
		{"no switch room", RawPreset{Board: BoardCfg{Doors: intp(4), Prizes: intp(3)}}, "must be >= 2"},
		{"bad trials", RawPreset{Sim: &SimCfg{Trials: intp(0)}}, "sim.trials"},
		{"bad delay", RawPreset{Sim: &SimCfg{DelayMS: intp(-1)}}, "sim.delay_ms"},
		{"bad trace size", RawPreset{Sim: &SimCfg{TraceSize: intp(0)}}, "sim.trace_size"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRaw(tc.cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err=%v want substring %q", err, tc.wantErr)
			}
		})
	}
}
