package game

import (
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "game_over"
	}
}

// Command is one discrete input. The input layer produces zero or more per
// frame; directional commands buffer a pending direction (last writer wins
// within a frame), the rest apply immediately.
type Command int

const (
	CmdMoveUp Command = iota
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdTogglePause
	CmdRestart
	CmdQuit
)

// Event is a discrete gameplay occurrence queued by the state machine and
// drained by the caller for audio and logging. The core never touches
// presentation directly.
type Event int

const (
	EventCorrect Event = iota
	EventWrong
	EventLevelUp
	EventGameOver
)

// State is the game-loop state machine: fixed-timestep movement, collision
// resolution against the current round's items, scoring and lives, and the
// pause/game-over/restart transitions. It is exclusively owned by one
// goroutine; nothing here locks.
type State struct {
	cfg  Config
	log  *zap.Logger
	rng  *rand.Rand
	pool *Pool
	gen  *Generator

	body       *Body
	dir        Direction
	pending    Direction
	hasPending bool
	moveTimer  float64

	score int
	lives int
	phase Phase
	round Round

	events []Event
}

// NewState builds a session from the given pairs. An empty pair list is a
// configuration error; callers fall back to BuiltinVocab before getting
// here. logger may be zap.NewNop().
func NewState(cfg Config, pairs []TermPair, seed uint64, logger *zap.Logger) (*State, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := rand.New(rand.NewSource(seed))
	pool, err := NewPool(pairs, rng)
	if err != nil {
		return nil, err
	}
	s := &State{
		cfg:  cfg,
		log:  logger,
		rng:  rng,
		pool: pool,
		gen:  NewGenerator(cfg, rng),
	}
	s.log.Info("session start",
		zap.Uint64("seed", seed),
		zap.Int("pool_size", pool.Size()),
		zap.Int("grid_w", cfg.GridW),
		zap.Int("grid_h", cfg.GridH))
	s.reset()
	return s, nil
}

// reset reinitializes everything owned by the session: reshuffled pool,
// centered body moving right, fresh score/lives, and a new round.
func (s *State) reset() {
	s.pool.Shuffle()
	start := Cell{s.cfg.GridW / 2, s.cfg.GridH / 2}
	s.body = NewBody(start, s.cfg.StartLength)
	s.dir = DirRight
	s.hasPending = false
	s.moveTimer = 0
	s.score = 0
	s.lives = s.cfg.StartLives
	s.phase = PhaseRunning
	s.spawnRound(nil)
}

func (s *State) spawnRound(prev *TermPair) {
	s.round = s.gen.Generate(s.pool, prev, s.Level(), s.body.CellSet())
	s.log.Debug("round spawned",
		zap.String("target", s.round.Target.Term),
		zap.String("translation", s.round.Target.Translation),
		zap.Int("items", len(s.round.Items)),
		zap.Int("level", s.Level()))
}

// Apply processes one input command. Directional commands are ignored
// unless running; restart is only honored from game over; pause toggles
// between running and paused and freezes only the movement timer.
func (s *State) Apply(cmd Command) {
	switch cmd {
	case CmdTogglePause:
		switch s.phase {
		case PhaseRunning:
			s.phase = PhasePaused
		case PhasePaused:
			s.phase = PhaseRunning
		}
	case CmdRestart:
		if s.phase == PhaseGameOver {
			s.log.Info("restart", zap.Int("final_score", s.score))
			s.reset()
		}
	case CmdMoveUp, CmdMoveDown, CmdMoveLeft, CmdMoveRight:
		if s.phase == PhaseRunning {
			s.setPending(directionFor(cmd))
		}
	}
}

func directionFor(cmd Command) Direction {
	switch cmd {
	case CmdMoveUp:
		return DirUp
	case CmdMoveDown:
		return DirDown
	case CmdMoveLeft:
		return DirLeft
	default:
		return DirRight
	}
}

// setPending buffers a direction change for the next discrete move. A
// request exactly opposite the current travel direction (head vs. neck)
// would fold the body into itself and is silently dropped.
func (s *State) setPending(d Direction) {
	if neck, ok := s.body.Neck(); ok {
		head := s.body.Head()
		cur := Cell{head.X - neck.X, head.Y - neck.Y}
		dd := d.Delta()
		if dd.X == -cur.X && dd.Y == -cur.Y {
			return
		}
	}
	s.pending = d
	s.hasPending = true
}

// Advance accumulates dt into the move timer and performs one discrete
// move per elapsed 1/speed seconds. The loop decouples the render frame
// rate from the tick rate: a given elapsed time always yields the same
// move count. No-op outside the running phase.
func (s *State) Advance(dt float64) {
	if s.phase != PhaseRunning {
		return
	}
	speed := s.cfg.SpeedFromLevel(s.Level())
	step := 1.0 / float64(speed)
	s.moveTimer += dt
	for s.moveTimer >= step {
		s.moveTimer -= step
		s.step()
		if s.phase != PhaseRunning {
			return
		}
	}
}

// step performs exactly one discrete move.
func (s *State) step() {
	// At most one buffered direction change is adopted per tick.
	if s.hasPending {
		s.dir = s.pending
		s.hasPending = false
	}

	out := s.body.ProposeMove(s.dir, s.cfg.GridW, s.cfg.GridH)
	if out.Blocked {
		s.gameOver(out.Reason.String())
		return
	}

	idx := s.round.ItemAt(out.NewHead)
	if idx < 0 {
		s.body.Advance(out.NewHead)
		return
	}

	if s.round.Items[idx].Correct {
		s.eatCorrect(out.NewHead)
	} else {
		s.eatWrong(out.NewHead)
	}
}

func (s *State) eatCorrect(head Cell) {
	levelBefore := s.Level()
	s.score += s.cfg.ScoreCorrect
	s.body.Grow(head)
	s.events = append(s.events, EventCorrect)
	if s.Level() > levelBefore {
		s.events = append(s.events, EventLevelUp)
		s.log.Info("level up", zap.Int("level", s.Level()), zap.Int("score", s.score))
	}
	prev := s.round.Target
	s.spawnRound(&prev)
}

func (s *State) eatWrong(head Cell) {
	s.body.Advance(head)
	s.score += s.cfg.ScoreWrong
	if s.score < 0 {
		// The floor applies to penalties only; rewards are uncapped.
		s.score = 0
	}
	s.lives--
	if s.body.Len() > s.cfg.MinLength {
		s.body.DropTail()
	}
	s.events = append(s.events, EventWrong)
	if s.lives < 0 {
		s.gameOver("lives")
	}
}

func (s *State) gameOver(cause string) {
	s.phase = PhaseGameOver
	s.events = append(s.events, EventGameOver)
	s.log.Info("game over",
		zap.String("cause", cause),
		zap.Int("score", s.score),
		zap.Int("level", s.Level()),
		zap.Int("length", s.body.Len()))
}

// DrainEvents returns and clears the queued events.
func (s *State) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Config returns the session rules.
func (s *State) Config() Config { return s.cfg }

// Phase returns the current lifecycle phase.
func (s *State) Phase() Phase { return s.phase }

// Score returns the current score (never negative).
func (s *State) Score() int { return s.score }

// Lives returns the remaining lives (0 means one mistake left).
func (s *State) Lives() int { return s.lives }

// Level derives the difficulty tier from the score; it is never stored.
func (s *State) Level() int { return s.cfg.LevelFromScore(s.score) }

// Round returns the current round.
func (s *State) Round() Round { return s.round }

// BodyCells returns a copy of the body, head first.
func (s *State) BodyCells() []Cell { return s.body.Cells() }
