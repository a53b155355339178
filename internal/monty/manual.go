package monty

// GameState tracks where the manual game stands in one play-through.
type GameState int

const (
	StateInitial  GameState = iota // fresh board, waiting for a pick
	StatePicked                    // pick made, host has not opened yet
	StateRevealed                  // host opened a door, waiting for the final choice
	StateFinished                  // scored; only Reset starts the next round
)

func (s GameState) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StatePicked:
		return "picked"
	case StateRevealed:
		return "revealed"
	case StateFinished:
		return "finished"
	default:
		return "?"
	}
}

// OutcomeKind is a presentation-agnostic description of the game's
// situation; the UI layer maps each kind to display text.
type OutcomeKind string

const (
	KindAwaitingPick  OutcomeKind = "awaiting_pick"
	KindHostThinking  OutcomeKind = "host_thinking"
	KindAwaitingFinal OutcomeKind = "awaiting_final"
	KindWonStaying    OutcomeKind = "won_staying"
	KindWonSwitching  OutcomeKind = "won_switching"
	KindLostStaying   OutcomeKind = "lost_staying"
	KindLostSwitching OutcomeKind = "lost_switching"
)

// ManualGame drives one interactive play-through. Actions that are not
// valid in the current state are silent no-ops: they neither error nor
// mutate anything. Methods are not safe for concurrent use; the session
// layer serializes access.
type ManualGame struct {
	cfg    GameConfig
	rng    RandomSource
	board  Board
	state  GameState
	kind   OutcomeKind
	picked int
	stats  SessionStats
	rounds int
}

func NewManualGame(cfg GameConfig, rng RandomSource) (*ManualGame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	return &ManualGame{
		cfg:    cfg,
		rng:    rng,
		board:  GenerateBoard(cfg, rng),
		kind:   KindAwaitingPick,
		picked: -1,
	}, nil
}

// Pick marks the player's initial door and hands the turn to the host.
func (g *ManualGame) Pick(i int) {
	if g.state != StateInitial || i < 0 || i >= len(g.board) {
		return
	}
	g.board[i].Selected = true
	g.picked = i
	g.state = StatePicked
	g.kind = KindHostThinking
}

// Reveal performs the host's door opening. The UI owns the "host is
// thinking" delay and calls this once it elapses. The error is
// ErrNoOpenableDoor and only fires if the config invariant was broken
// upstream.
func (g *ManualGame) Reveal() error {
	if g.state != StatePicked {
		return nil
	}
	idx, err := RevealDoor(g.board, g.picked, g.rng)
	if err != nil {
		return err
	}
	g.board[idx].Open = true
	g.state = StateRevealed
	g.kind = KindAwaitingFinal
	return nil
}

// Finalize scores the round against the player's final door. Open doors
// cannot be chosen. On completion every door is opened and only the final
// choice stays selected.
func (g *ManualGame) Finalize(i int) {
	if g.state != StateRevealed || i < 0 || i >= len(g.board) || g.board[i].Open {
		return
	}
	switched := i != g.picked
	won := g.board[i].HasPrize
	strategy := StrategyStay
	if switched {
		strategy = StrategySwitch
	}
	g.stats.Record(Outcome{Strategy: strategy, Won: won})
	g.rounds++
	for j := range g.board {
		g.board[j].Open = true
		g.board[j].Selected = j == i
	}
	g.state = StateFinished
	switch {
	case won && !switched:
		g.kind = KindWonStaying
	case won && switched:
		g.kind = KindWonSwitching
	case !won && !switched:
		g.kind = KindLostStaying
	default:
		g.kind = KindLostSwitching
	}
}

// Reset deals a fresh board from the same config. Session stats carry
// over; only a new configuration starts them from zero.
func (g *ManualGame) Reset() {
	if g.state != StateFinished {
		return
	}
	g.board = GenerateBoard(g.cfg, g.rng)
	g.picked = -1
	g.state = StateInitial
	g.kind = KindAwaitingPick
}

func (g *ManualGame) State() GameState { return g.state }

func (g *ManualGame) Kind() OutcomeKind { return g.kind }

func (g *ManualGame) Config() GameConfig { return g.cfg }

// Board returns a copy; callers never see live door state.
func (g *ManualGame) Board() Board { return g.board.Clone() }

func (g *ManualGame) Picked() int { return g.picked }

func (g *ManualGame) Stats() SessionStats { return g.stats }

// Rounds is the number of completed play-throughs this session.
func (g *ManualGame) Rounds() int { return g.rounds }
