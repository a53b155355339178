package server

import (
	"sync"

	"github.com/xtding233/montyhall-backend/internal/monty"
)

// Session owns the single manual game and the single simulator of this
// process. One session per process; concurrent HTTP and websocket access
// is serialized here so the engine itself stays lock-free.
type Session struct {
	mu            sync.Mutex
	game          *monty.ManualGame
	sim           *monty.Simulator
	lastCompleted int // trials already reported to the metrics counter
}

var (
	sessionOnce sync.Once
	sessionInst *Session
)

func GetSession() *Session {
	sessionOnce.Do(func() {
		sessionInst = &Session{
			sim: monty.NewSimulator(nil),
		}
	})
	return sessionInst
}

// NewGame replaces the manual game with a fresh one. Session stats start
// over because the board configuration changed.
func (s *Session) NewGame(cfg monty.GameConfig) error {
	game, err := monty.NewManualGame(cfg, nil)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.game = game
	s.mu.Unlock()
	return nil
}

func (s *Session) Pick(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return errNoGame
	}
	s.game.Pick(i)
	return nil
}

func (s *Session) Reveal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return errNoGame
	}
	return s.game.Reveal()
}

func (s *Session) Finalize(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return errNoGame
	}
	before := s.game.State()
	s.game.Finalize(i)
	if before != monty.StateFinished && s.game.State() == monty.StateFinished {
		GamesFinished.WithLabelValues(string(s.game.Kind())).Inc()
	}
	return nil
}

func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return errNoGame
	}
	s.game.Reset()
	return nil
}

func (s *Session) GameView() (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return GameView{}, errNoGame
	}
	return gameView(s.game), nil
}

// StartSim launches a batch run on the shared simulator.
func (s *Session) StartSim(cfg monty.GameConfig, p monty.SimParams) error {
	s.mu.Lock()
	s.lastCompleted = 0
	s.mu.Unlock()
	if err := s.sim.Start(cfg, p); err != nil {
		return err
	}
	SimsStarted.Inc()
	return nil
}

func (s *Session) StopSim() {
	if s.sim.Snapshot().Running {
		SimsCancelled.Inc()
	}
	s.sim.Stop()
}

// SimView snapshots the simulator and forwards deltas to the metrics.
func (s *Session) SimView() SimView {
	snap := s.sim.Snapshot()
	s.mu.Lock()
	if delta := snap.Completed - s.lastCompleted; delta > 0 {
		TrialsCompleted.Add(float64(delta))
		s.lastCompleted = snap.Completed
	}
	s.mu.Unlock()
	SimProgress.Set(snap.Progress)
	return simView(snap)
}

// WaitSim blocks until the current run ends; used for shutdown.
func (s *Session) WaitSim() {
	s.sim.Wait()
}
