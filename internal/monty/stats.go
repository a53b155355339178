package monty

// Strategy identifies which final-choice lens a result is scored under.
type Strategy int

const (
	StrategyStay Strategy = iota
	StrategySwitch
)

func (s Strategy) String() string {
	switch s {
	case StrategyStay:
		return "stay"
	case StrategySwitch:
		return "switch"
	default:
		return "?"
	}
}

// Outcome is the result of one completed trial under one strategy lens.
type Outcome struct {
	Strategy Strategy
	Won      bool
}

// Stats counts wins and losses for one strategy. Counters only grow
// within a session; a new session starts from zero.
type Stats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

func (s *Stats) Record(won bool) {
	if won {
		s.Wins++
	} else {
		s.Losses++
	}
}

func (s Stats) Total() int { return s.Wins + s.Losses }

func (s Stats) WinRate() float64 {
	t := s.Total()
	if t == 0 {
		return 0
	}
	return float64(s.Wins) / float64(t)
}

// SessionStats accumulates both strategy lenses for one session.
type SessionStats struct {
	Stay   Stats `json:"stay"`
	Switch Stats `json:"switch"`
}

func (ss *SessionStats) Record(o Outcome) {
	switch o.Strategy {
	case StrategyStay:
		ss.Stay.Record(o.Won)
	case StrategySwitch:
		ss.Switch.Record(o.Won)
	}
}

// DefaultTraceSize is how many win/loss markers the visualization keeps.
const DefaultTraceSize = 300

// Trace is a bounded buffer of win/loss markers. Once full, each append
// drops the oldest marker.
type Trace struct {
	size    int
	entries []bool
}

func NewTrace(size int) *Trace {
	if size <= 0 {
		size = DefaultTraceSize
	}
	return &Trace{size: size}
}

func (t *Trace) Append(won bool) {
	if len(t.entries) == t.size {
		copy(t.entries, t.entries[1:])
		t.entries[len(t.entries)-1] = won
		return
	}
	t.entries = append(t.entries, won)
}

func (t *Trace) Len() int { return len(t.entries) }

// Markers returns a copy of the buffer, oldest first.
func (t *Trace) Markers() []bool {
	return append([]bool(nil), t.entries...)
}
