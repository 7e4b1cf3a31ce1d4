package game

import (
	"testing"

	"go.uber.org/zap"
)

var testPairs = []TermPair{
	{"mul", "water"},
	{"bap", "rice"},
	{"jip", "house"},
	{"chaek", "book"},
}

func newTestState(t *testing.T) *State {
	t.Helper()
	s, err := NewState(DefaultConfig(), testPairs, 1, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// clearItems removes all items so movement tests cannot eat by accident.
func clearItems(s *State) {
	s.round.Items = nil
}

// plantItem replaces the round with a single hand-placed item.
func plantItem(s *State, it Item, target TermPair) {
	s.round = Round{Target: target, Items: []Item{it}}
}

// --- Construction ---

func TestNewState_EmptyPairs(t *testing.T) {
	if _, err := NewState(DefaultConfig(), nil, 1, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty pair list")
	}
}

func TestNewState_InitialConditions(t *testing.T) {
	s := newTestState(t)
	cfg := s.Config()
	if s.Score() != 0 || s.Lives() != cfg.StartLives || s.Level() != 1 {
		t.Fatalf("unexpected initial score/lives/level: %d/%d/%d", s.Score(), s.Lives(), s.Level())
	}
	if s.Phase() != PhaseRunning {
		t.Fatalf("expected running, got %v", s.Phase())
	}
	if len(s.BodyCells()) != cfg.StartLength {
		t.Fatalf("expected start length %d, got %d", cfg.StartLength, len(s.BodyCells()))
	}
	if len(s.Round().Items) == 0 {
		t.Fatal("expected a spawned round")
	}
}

// --- Fixed timestep ---

func TestAdvance_MoveCountMatchesSpeed(t *testing.T) {
	s := newTestState(t)
	clearItems(s)
	head := s.BodyCells()[0]
	// Level 1 speed is 3 moves/second; one second yields three moves
	// right.
	s.Advance(1.0)
	got := s.BodyCells()[0]
	if got != (Cell{head.X + 3, head.Y}) {
		t.Fatalf("expected head %v, got %v", Cell{head.X + 3, head.Y}, got)
	}
}

func TestAdvance_AccumulatesPartialFrames(t *testing.T) {
	s := newTestState(t)
	clearItems(s)
	head := s.BodyCells()[0]
	// At speed 3 a move takes 1/3s. Ten 60Hz frames are well short of
	// that; eleven more push past it without reaching a second move.
	for i := 0; i < 10; i++ {
		s.Advance(1.0 / 60)
	}
	if got := s.BodyCells()[0]; got != head {
		t.Fatalf("moved too early: head went %v -> %v", head, got)
	}
	for i := 0; i < 11; i++ {
		s.Advance(1.0 / 60)
	}
	got := s.BodyCells()[0]
	if got.X != head.X+1 {
		t.Fatalf("expected exactly one move, head went %v -> %v", head, got)
	}
}

func TestAdvance_PausedFreezesEverything(t *testing.T) {
	s := newTestState(t)
	clearItems(s)
	head := s.BodyCells()[0]
	s.Apply(CmdTogglePause)
	s.Advance(5.0)
	if got := s.BodyCells()[0]; got != head {
		t.Fatalf("paused snake moved %v -> %v", head, got)
	}
	s.Apply(CmdTogglePause)
	if s.Phase() != PhaseRunning {
		t.Fatal("expected unpause to resume")
	}
}

// --- Steering ---

func TestApply_ReversalIgnored(t *testing.T) {
	s := newTestState(t)
	clearItems(s)
	head := s.BodyCells()[0]
	// Initial travel is right; left must be dropped.
	s.Apply(CmdMoveLeft)
	s.Advance(1.0 / 3)
	if got := s.BodyCells()[0]; got != (Cell{head.X + 1, head.Y}) {
		t.Fatalf("reversal applied: head went %v -> %v", head, got)
	}
}

func TestApply_TurnTaken(t *testing.T) {
	s := newTestState(t)
	clearItems(s)
	head := s.BodyCells()[0]
	s.Apply(CmdMoveUp)
	s.Advance(1.0 / 3)
	if got := s.BodyCells()[0]; got != (Cell{head.X, head.Y - 1}) {
		t.Fatalf("expected turn up, head went %v -> %v", head, got)
	}
}

func TestApply_LastCommandInFrameWins(t *testing.T) {
	s := newTestState(t)
	clearItems(s)
	head := s.BodyCells()[0]
	s.Apply(CmdMoveUp)
	s.Apply(CmdMoveDown)
	s.Advance(1.0 / 3)
	if got := s.BodyCells()[0]; got != (Cell{head.X, head.Y + 1}) {
		t.Fatalf("expected down, head went %v -> %v", head, got)
	}
}

// --- Eating ---

func TestStep_CorrectItem(t *testing.T) {
	s := newTestState(t)
	head := s.BodyCells()[0]
	target := TermPair{"mul", "water"}
	plantItem(s, Item{Text: "mul", Lang: LangTerm, Correct: true, Pos: Cell{head.X + 1, head.Y}}, target)

	s.Advance(1.0 / 3)

	if s.Score() != 10 {
		t.Fatalf("expected score 10, got %d", s.Score())
	}
	if got := len(s.BodyCells()); got != 4 {
		t.Fatalf("expected growth to 4, got %d", got)
	}
	if s.Round().Target == target {
		t.Fatal("expected a fresh target after a correct eat")
	}
	events := s.DrainEvents()
	if len(events) != 1 || events[0] != EventCorrect {
		t.Fatalf("expected [EventCorrect], got %v", events)
	}
}

func TestStep_WrongItemPenalty(t *testing.T) {
	s := newTestState(t)
	s.score = 3
	head := s.BodyCells()[0]
	plantItem(s, Item{Text: "bap", Lang: LangTerm, Pos: Cell{head.X + 1, head.Y}}, TermPair{"mul", "water"})

	s.Advance(1.0 / 3)

	if s.Score() != 0 {
		t.Fatalf("expected score floored at 0, got %d", s.Score())
	}
	if s.Lives() != 2 {
		t.Fatalf("expected 2 lives, got %d", s.Lives())
	}
	if got := len(s.BodyCells()); got != 3 {
		t.Fatalf("length must not shrink below the minimum, got %d", got)
	}
	events := s.DrainEvents()
	if len(events) != 1 || events[0] != EventWrong {
		t.Fatalf("expected [EventWrong], got %v", events)
	}
}

func TestStep_WrongItemShrinksAboveMinimum(t *testing.T) {
	s := newTestState(t)
	s.body = NewBody(Cell{10, 7}, 5)
	plantItem(s, Item{Text: "bap", Lang: LangTerm, Pos: Cell{11, 7}}, TermPair{"mul", "water"})

	s.Advance(1.0 / 3)

	if got := len(s.BodyCells()); got != 4 {
		t.Fatalf("expected shrink 5 -> 4, got %d", got)
	}
}

func TestStep_WrongItemStaysOnGrid(t *testing.T) {
	s := newTestState(t)
	head := s.BodyCells()[0]
	wrongPos := Cell{head.X + 1, head.Y}
	plantItem(s, Item{Text: "bap", Lang: LangTerm, Pos: wrongPos}, TermPair{"mul", "water"})

	s.Advance(1.0 / 3)

	if s.Round().ItemAt(wrongPos) < 0 {
		t.Fatal("wrong item should remain until the round is replaced")
	}
}

func TestStep_LevelUpEvent(t *testing.T) {
	s := newTestState(t)
	s.score = 40
	head := s.BodyCells()[0]
	plantItem(s, Item{Text: "mul", Lang: LangTerm, Correct: true, Pos: Cell{head.X + 1, head.Y}}, TermPair{"mul", "water"})

	s.Advance(1.0 / 3)

	if s.Level() != 2 {
		t.Fatalf("expected level 2, got %d", s.Level())
	}
	events := s.DrainEvents()
	if len(events) != 2 || events[0] != EventCorrect || events[1] != EventLevelUp {
		t.Fatalf("expected [EventCorrect EventLevelUp], got %v", events)
	}
}

// --- Game over ---

func TestStep_WallEndsGame(t *testing.T) {
	s := newTestState(t)
	clearItems(s)
	s.body = NewBody(Cell{s.Config().GridW - 1, 7}, 3)

	s.Advance(1.0 / 3)

	if s.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %v", s.Phase())
	}
	events := s.DrainEvents()
	if len(events) != 1 || events[0] != EventGameOver {
		t.Fatalf("expected [EventGameOver], got %v", events)
	}
}

func TestStep_LastLifeEndsGame(t *testing.T) {
	s := newTestState(t)
	s.lives = 0
	head := s.BodyCells()[0]
	plantItem(s, Item{Text: "bap", Lang: LangTerm, Pos: Cell{head.X + 1, head.Y}}, TermPair{"mul", "water"})

	s.Advance(1.0 / 3)

	if s.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %v", s.Phase())
	}
	events := s.DrainEvents()
	if len(events) != 2 || events[0] != EventWrong || events[1] != EventGameOver {
		t.Fatalf("expected [EventWrong EventGameOver], got %v", events)
	}
}

func TestAdvance_NoOpAfterGameOver(t *testing.T) {
	s := newTestState(t)
	clearItems(s)
	s.body = NewBody(Cell{s.Config().GridW - 1, 7}, 3)
	s.Advance(1.0 / 3)
	if s.Phase() != PhaseGameOver {
		t.Fatal("setup failed to end the game")
	}
	cells := s.BodyCells()
	s.Advance(10.0)
	after := s.BodyCells()
	for i := range cells {
		if cells[i] != after[i] {
			t.Fatal("body moved after game over")
		}
	}
}

// --- Restart ---

func TestApply_RestartOnlyFromGameOver(t *testing.T) {
	s := newTestState(t)
	s.score = 30
	s.Apply(CmdRestart)
	if s.Score() != 30 {
		t.Fatal("restart must be ignored while running")
	}

	clearItems(s)
	s.body = NewBody(Cell{s.Config().GridW - 1, 7}, 3)
	s.Advance(1.0 / 3)
	s.DrainEvents()

	s.Apply(CmdRestart)
	cfg := s.Config()
	if s.Phase() != PhaseRunning {
		t.Fatalf("expected running after restart, got %v", s.Phase())
	}
	if s.Score() != 0 || s.Lives() != cfg.StartLives {
		t.Fatalf("expected fresh score/lives, got %d/%d", s.Score(), s.Lives())
	}
	if len(s.BodyCells()) != cfg.StartLength {
		t.Fatalf("expected fresh body length %d, got %d", cfg.StartLength, len(s.BodyCells()))
	}
	if len(s.Round().Items) == 0 {
		t.Fatal("expected a fresh round after restart")
	}
}

// --- Snapshot ---

func TestSnapshot_Detached(t *testing.T) {
	s := newTestState(t)
	snap := s.Snapshot()
	if len(snap.Body) == 0 || len(snap.Items) == 0 {
		t.Fatal("snapshot missing body or items")
	}
	snap.Body[0] = Cell{-99, -99}
	if s.BodyCells()[0] == (Cell{-99, -99}) {
		t.Fatal("snapshot aliases live state")
	}
	if snap.TargetTranslation != s.Round().Target.Translation {
		t.Fatalf("snapshot target %q != round target %q", snap.TargetTranslation, s.Round().Target.Translation)
	}
}
