package game

// Snapshot is a read-only view of everything the presentation layer needs
// for one frame. The renderer and the headless harness consume the same
// snapshot, so nothing here points back into mutable state.
type Snapshot struct {
	GridW     int
	GridH     int
	CellSize  int
	HUDHeight int

	Body  []Cell
	Items []Item

	Score int
	Lives int
	Level int

	Paused   bool
	GameOver bool

	TargetTranslation string
}

// Snapshot copies the current frame state.
func (s *State) Snapshot() Snapshot {
	items := make([]Item, len(s.round.Items))
	copy(items, s.round.Items)
	return Snapshot{
		GridW:             s.cfg.GridW,
		GridH:             s.cfg.GridH,
		CellSize:          s.cfg.CellSize,
		HUDHeight:         s.cfg.HUDHeight,
		Body:              s.body.Cells(),
		Items:             items,
		Score:             s.score,
		Lives:             s.lives,
		Level:             s.Level(),
		Paused:            s.phase == PhasePaused,
		GameOver:          s.phase == PhaseGameOver,
		TargetTranslation: s.round.Target.Translation,
	}
}
