package server

import (
	"testing"

	"github.com/xtding233/montyhall-backend/internal/monty"
)

func TestBoardViewHidesClosedPrizes(t *testing.T) {
	b := monty.Board{
		{HasPrize: true},
		{HasPrize: false, Open: true},
		{HasPrize: true, Open: true, Selected: true},
	}
	v := boardView(b)
	if v[0].HasPrize != nil {
		t.Fatal("closed door leaked its prize state")
	}
	if v[1].HasPrize == nil || *v[1].HasPrize {
		t.Fatalf("open non-prize door view wrong: %+v", v[1])
	}
	if v[2].HasPrize == nil || !*v[2].HasPrize {
		t.Fatalf("open prize door view wrong: %+v", v[2])
	}
	if !v[2].Selected {
		t.Fatal("selection flag dropped")
	}
}

func TestErrorCodes(t *testing.T) {
	cases := map[error]string{
		monty.ErrNotANumber:     "not_a_number",
		monty.ErrTooFewDoors:    "too_few_doors",
		monty.ErrTooFewPrizes:   "too_few_prizes",
		monty.ErrTooManyPrizes:  "too_many_prizes",
		monty.ErrNoSwitchChoice: "insufficient_switch_choice",
		monty.ErrSimActive:      "sim_active",
		monty.ErrNoOpenableDoor: "no_openable_door",
		errNoGame:               "invalid_request",
	}
	for err, want := range cases {
		if got := errorCode(err); got != want {
			t.Fatalf("errorCode(%v)=%q want %q", err, got, want)
		}
	}
}

func TestSimViewCarriesSnapshot(t *testing.T) {
	snap := monty.SimSnapshot{
		Running:   true,
		Progress:  0.25,
		Trials:    1000,
		Completed: 250,
		Trace:     []bool{true, false},
	}
	snap.Stats.Stay.Record(true)
	snap.Stats.Switch.Record(false)
	v := simView(snap)
	if !v.Running || v.Progress != 0.25 || v.Completed != 250 {
		t.Fatalf("view=%+v", v)
	}
	if v.Stay.Wins != 1 || v.Switch.Losses != 1 {
		t.Fatalf("stats view=%+v", v)
	}
	if len(v.Trace) != 2 {
		t.Fatalf("trace=%v", v.Trace)
	}
}
