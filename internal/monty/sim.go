package monty

import (
	"errors"
	"sync"
	"time"
)

// Cadence of the batch loop. A run reports progress about progressReports
// times and leaves about traceSamples markers, matching the trace buffer.
const (
	progressReports = 100
	traceSamples    = 300
)

// ErrSimActive means Start was called while a run is still in flight.
var ErrSimActive = errors.New("a simulation is already running")

// SimParams configures one batch run.
type SimParams struct {
	Trials int
	// Delay inserted at every progress report so the caller can observe
	// intermediate state and cancel. Zero keeps the loop tight.
	Delay time.Duration
	// TraceSize overrides the marker buffer capacity; 0 uses DefaultTraceSize.
	TraceSize int
}

// SimSnapshot is a point-in-time view of a run, safe to hand out.
type SimSnapshot struct {
	Running   bool
	Cancelled bool
	Progress  float64 // fraction in [0,1]
	Trials    int     // requested
	Completed int     // fully counted trials so far
	Stats     SessionStats
	Trace     []bool
	Err       error
}

// Simulator runs batches of independent trials, scoring every trial under
// both strategies. One run at a time; each run owns fresh stats and a
// fresh trace. The loop suspends only at progress reports, never inside a
// trial, so a Stop between yields takes effect before the next trial.
type Simulator struct {
	rng RandomSource

	mu        sync.Mutex
	running   bool
	cancelled bool
	stopped   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
	trials    int
	completed int
	progress  float64
	stats     SessionStats
	trace     *Trace
	err       error
}

func NewSimulator(rng RandomSource) *Simulator {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Simulator{rng: rng, trace: NewTrace(DefaultTraceSize)}
}

// Start launches a run in its own goroutine. It fails with ErrSimActive
// if a run is still in flight, or with a validation error for a bad
// config or non-positive trial count.
func (s *Simulator) Start(cfg GameConfig, p SimParams) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if p.Trials <= 0 {
		return errors.New("trial count must be positive")
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrSimActive
	}
	s.running = true
	s.cancelled = false
	s.stopped = false
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.trials = p.Trials
	s.completed = 0
	s.progress = 0
	s.stats = SessionStats{}
	s.trace = NewTrace(p.TraceSize)
	s.err = nil
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	go s.run(cfg, p, stopCh, doneCh)
	return nil
}

// Stop requests cooperative cancellation. The loop finishes the trial in
// progress, keeps everything counted so far, and reports the fraction it
// actually reached. Safe to call repeatedly or with no run active.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopCh == nil || s.stopped {
		return
	}
	s.stopped = true
	close(s.stopCh)
}

// Wait blocks until the current run ends. Mostly for tests and shutdown.
func (s *Simulator) Wait() {
	s.mu.Lock()
	doneCh := s.doneCh
	s.mu.Unlock()
	if doneCh == nil {
		return
	}
	<-doneCh
}

// Snapshot copies the observable state of the current or last run.
func (s *Simulator) Snapshot() SimSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SimSnapshot{
		Running:   s.running,
		Cancelled: s.cancelled,
		Progress:  s.progress,
		Trials:    s.trials,
		Completed: s.completed,
		Stats:     s.stats,
		Trace:     s.trace.Markers(),
		Err:       s.err,
	}
}

func (s *Simulator) run(cfg GameConfig, p SimParams, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	reportEvery := p.Trials / progressReports
	if reportEvery < 1 {
		reportEvery = 1
	}
	sampleEvery := p.Trials / traceSamples
	if sampleEvery < 1 {
		sampleEvery = 1
	}

	for i := 1; i <= p.Trials; i++ {
		// cancellation point: checked before every trial, so a partial
		// trial is never counted
		select {
		case <-stopCh:
			s.finish(true, nil)
			return
		default:
		}

		stayWon, switchWon, err := RunTrial(cfg, s.rng)
		if err != nil {
			s.finish(false, err)
			return
		}

		s.mu.Lock()
		s.stats.Record(Outcome{Strategy: StrategyStay, Won: stayWon})
		s.stats.Record(Outcome{Strategy: StrategySwitch, Won: switchWon})
		s.completed = i
		if i%sampleEvery == 0 {
			s.trace.Append(stayWon)
		}
		if i%reportEvery == 0 || i == p.Trials {
			s.progress = float64(i) / float64(p.Trials)
		}
		s.mu.Unlock()

		// yield point
		if i%reportEvery == 0 && i != p.Trials && p.Delay > 0 {
			select {
			case <-stopCh:
				s.finish(true, nil)
				return
			case <-time.After(p.Delay):
			}
		}
	}
	s.finish(false, nil)
}

func (s *Simulator) finish(cancelled bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.cancelled = cancelled
	s.err = err
	if !cancelled && err == nil {
		s.progress = 1
	}
}

// RunTrial plays one independent trial and scores it under both
// strategies at once. Exported so the trial math can be tested
// deterministically with a seeded source.
func RunTrial(cfg GameConfig, rng RandomSource) (stayWon, switchWon bool, err error) {
	if rng == nil {
		rng = DefaultRNG()
	}
	board := GenerateBoard(cfg, rng)
	pick := rng.IntN(cfg.Doors)
	stayWon = board[pick].HasPrize

	// The host step runs even when the pick already holds a prize: with
	// several prizes a switch can still land on another one, so scoring
	// it as an automatic loss would be wrong.
	opened, err := RevealDoor(board, pick, rng)
	if err != nil {
		return false, false, err
	}
	candidates := make([]int, 0, cfg.Doors-2)
	for i := range board {
		if i == pick || i == opened {
			continue
		}
		candidates = append(candidates, i)
	}
	target := candidates[rng.IntN(len(candidates))]
	switchWon = board[target].HasPrize
	return stayWon, switchWon, nil
}
