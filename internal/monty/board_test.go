package monty

import "testing"

func TestGenerateBoardExactPrizeCount(t *testing.T) {
	rng := NewSeededRNG(1)
	cases := []GameConfig{
		{Doors: 3, Prizes: 1},
		{Doors: 5, Prizes: 3},
		{Doors: 10, Prizes: 3},
		{Doors: 50, Prizes: 48},
	}
	for _, cfg := range cases {
		for run := 0; run < 200; run++ {
			b := GenerateBoard(cfg, rng)
			if len(b) != cfg.Doors {
				t.Fatalf("cfg=%+v len=%d", cfg, len(b))
			}
			if got := b.PrizeCount(); got != cfg.Prizes {
				t.Fatalf("cfg=%+v prizes=%d want %d", cfg, got, cfg.Prizes)
			}
			for i, d := range b {
				if d.Open || d.Selected {
					t.Fatalf("fresh board has session flags set at %d", i)
				}
			}
		}
	}
}

func TestGenerateBoardUniformPlacement(t *testing.T) {
	// with one prize over 3 doors every door should receive the prize
	// about a third of the time
	rng := NewSeededRNG(42)
	cfg := GameConfig{Doors: 3, Prizes: 1}
	const runs = 30000
	counts := [3]int{}
	for i := 0; i < runs; i++ {
		b := GenerateBoard(cfg, rng)
		for j, d := range b {
			if d.HasPrize {
				counts[j]++
			}
		}
	}
	expected := runs / 3
	for j, c := range counts {
		if diff := c - expected; diff > 500 || diff < -500 {
			t.Fatalf("door %d got prize %d times, expected about %d", j, c, expected)
		}
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := Board{{HasPrize: true}, {}, {}}
	c := b.Clone()
	c[0].Open = true
	if b[0].Open {
		t.Fatal("clone shares backing storage")
	}
}
