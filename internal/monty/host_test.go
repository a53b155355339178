package monty

import "testing"

func TestRevealDoorNeverPickOrPrize(t *testing.T) {
	rng := NewSeededRNG(7)
	cases := []GameConfig{
		{Doors: 3, Prizes: 1},
		{Doors: 6, Prizes: 4},
		{Doors: 12, Prizes: 5},
	}
	for _, cfg := range cases {
		for run := 0; run < 500; run++ {
			b := GenerateBoard(cfg, rng)
			pick := rng.IntN(cfg.Doors)
			got, err := RevealDoor(b, pick, rng)
			if err != nil {
				t.Fatalf("cfg=%+v unexpected error: %v", cfg, err)
			}
			if got == pick {
				t.Fatalf("cfg=%+v host opened the picked door %d", cfg, got)
			}
			if b[got].HasPrize {
				t.Fatalf("cfg=%+v host opened a prize door %d", cfg, got)
			}
		}
	}
}

func TestRevealDoorUniformOverEligible(t *testing.T) {
	// fixed board: prizes at 0,1,2, pick at 3 => eligible {4..9}
	b := make(Board, 10)
	b[0].HasPrize = true
	b[1].HasPrize = true
	b[2].HasPrize = true
	const pick = 3

	rng := NewSeededRNG(99)
	const samples = 12000
	counts := map[int]int{}
	for i := 0; i < samples; i++ {
		got, err := RevealDoor(b, pick, rng)
		if err != nil {
			t.Fatal(err)
		}
		counts[got]++
	}
	if len(counts) != 6 {
		t.Fatalf("expected 6 eligible doors hit, got %d: %v", len(counts), counts)
	}
	// chi-square over the eligible set; df=5, 30 is far beyond any
	// plausible tail for a uniform source
	expected := float64(samples) / 6
	chi := 0.0
	for door := 4; door <= 9; door++ {
		d := float64(counts[door]) - expected
		chi += d * d / expected
	}
	if chi > 30 {
		t.Fatalf("reveal distribution not uniform: chi-square=%.2f counts=%v", chi, counts)
	}
}

func TestRevealDoorContractViolation(t *testing.T) {
	// every non-picked door holds a prize; only reachable if the config
	// invariant was bypassed
	b := Board{{}, {HasPrize: true}, {HasPrize: true}}
	if _, err := RevealDoor(b, 0, NewSeededRNG(1)); err != ErrNoOpenableDoor {
		t.Fatalf("expected ErrNoOpenableDoor, got %v", err)
	}
}

func TestRevealDoorExcludesPrizePick(t *testing.T) {
	// the picked door holds a prize; it must still never be opened
	b := Board{{HasPrize: true}, {}, {}}
	rng := NewSeededRNG(5)
	for i := 0; i < 200; i++ {
		got, err := RevealDoor(b, 0, rng)
		if err != nil {
			t.Fatal(err)
		}
		if got == 0 {
			t.Fatal("host opened the picked prize door")
		}
	}
}
