package game

import (
	"go.uber.org/zap"
)

// Sim is a headless harness around State used by tests and the playtest
// report tool. It mirrors Game.Update but has no Ebiten dependency and
// supports deterministic seeding.
type Sim struct {
	State *State
	Stats SimStats
}

// SimStats accumulates drained events over a run.
type SimStats struct {
	Correct  int
	Wrong    int
	LevelUps int
	Moves    int
	GameOver bool
}

type simConfig struct {
	cfg   Config
	pairs []TermPair
	seed  uint64
}

// SimOption is a builder function applied during construction.
type SimOption func(*simConfig)

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed uint64) SimOption {
	return func(sc *simConfig) { sc.seed = seed }
}

// WithConfig replaces the default rules.
func WithConfig(cfg Config) SimOption {
	return func(sc *simConfig) { sc.cfg = cfg }
}

// WithPairs replaces the builtin vocabulary.
func WithPairs(pairs []TermPair) SimOption {
	return func(sc *simConfig) { sc.pairs = pairs }
}

// NewSim constructs a harness with the default rules, the builtin
// vocabulary, and seed 1 unless options say otherwise.
func NewSim(opts ...SimOption) (*Sim, error) {
	sc := simConfig{
		cfg:   DefaultConfig(),
		pairs: BuiltinVocab,
		seed:  1,
	}
	for _, o := range opts {
		o(&sc)
	}
	st, err := NewState(sc.cfg, sc.pairs, sc.seed, zap.NewNop())
	if err != nil {
		return nil, err
	}
	return &Sim{State: st}, nil
}

// RunMoves advances exactly n discrete moves (or fewer if the game ends),
// draining events into Stats after each.
func (s *Sim) RunMoves(n int) {
	cfg := s.State.Config()
	for i := 0; i < n; i++ {
		if s.State.Phase() != PhaseRunning {
			break
		}
		speed := cfg.SpeedFromLevel(s.State.Level())
		s.State.Advance(1.0 / float64(speed))
		s.Stats.Moves++
		s.drain()
	}
}

func (s *Sim) drain() {
	for _, ev := range s.State.DrainEvents() {
		switch ev {
		case EventCorrect:
			s.Stats.Correct++
		case EventWrong:
			s.Stats.Wrong++
		case EventLevelUp:
			s.Stats.LevelUps++
		case EventGameOver:
			s.Stats.GameOver = true
		}
	}
}

// Autopilot steers one step toward the correct item: it prefers the axis
// with the larger remaining distance, skips moves that would reverse, hit a
// wall, hit the body, or eat a wrong item, and falls back to any safe
// direction. Greedy and fallible on purpose; runs exercise the penalty
// path too.
func (s *Sim) Autopilot() {
	snap := s.State.Snapshot()
	if snap.GameOver || snap.Paused || len(snap.Body) == 0 {
		return
	}

	var target Cell
	found := false
	for _, it := range snap.Items {
		if it.Correct {
			target = it.Pos
			found = true
			break
		}
	}
	if !found {
		return
	}

	head := snap.Body[0]
	dx := target.X - head.X
	dy := target.Y - head.Y

	var prefs []Direction
	addX := func() {
		if dx > 0 {
			prefs = append(prefs, DirRight)
		} else if dx < 0 {
			prefs = append(prefs, DirLeft)
		}
	}
	addY := func() {
		if dy > 0 {
			prefs = append(prefs, DirDown)
		} else if dy < 0 {
			prefs = append(prefs, DirUp)
		}
	}
	if abs(dx) >= abs(dy) {
		addX()
		addY()
	} else {
		addY()
		addX()
	}
	prefs = append(prefs, DirUp, DirDown, DirLeft, DirRight)

	wrong := make(map[Cell]bool, len(snap.Items))
	for _, it := range snap.Items {
		if !it.Correct {
			wrong[it.Pos] = true
		}
	}
	body := make(map[Cell]bool, len(snap.Body))
	for _, c := range snap.Body {
		body[c] = true
	}

	pick := func(avoidWrong bool) (Direction, bool) {
		for _, d := range prefs {
			dd := d.Delta()
			next := Cell{head.X + dd.X, head.Y + dd.Y}
			if len(snap.Body) > 1 && next == snap.Body[1] {
				continue
			}
			if next.X < 0 || next.X >= snap.GridW || next.Y < 0 || next.Y >= snap.GridH {
				continue
			}
			if body[next] {
				continue
			}
			if avoidWrong && wrong[next] {
				continue
			}
			return d, true
		}
		return 0, false
	}

	d, ok := pick(true)
	if !ok {
		// Cornered: eating a wrong item beats dying on a wall.
		d, ok = pick(false)
	}
	if !ok {
		return
	}

	switch d {
	case DirUp:
		s.State.Apply(CmdMoveUp)
	case DirDown:
		s.State.Apply(CmdMoveDown)
	case DirLeft:
		s.State.Apply(CmdMoveLeft)
	case DirRight:
		s.State.Apply(CmdMoveRight)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
