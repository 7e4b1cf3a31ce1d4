package game

// Config is the immutable rule set and geometry for a game session. It is
// passed by value into the state machine and round generator so tests can
// construct exact, reproducible scenarios instead of poking at globals.
type Config struct {
	GridW     int // playfield width in cells
	GridH     int // playfield height in cells
	CellSize  int // pixel size of one grid cell
	HUDHeight int // top HUD band, drawn inside the playfield

	BaseSpeed   int // snake moves per second at level 1
	StartLives  int
	StartLength int // initial body length
	MinLength   int // penalties never shrink the body below this

	ScoreCorrect   int // added for the flagged item
	ScoreWrong     int // added for any other item (negative)
	LevelStep      int // score points per level
	MaxDistractors int // distractor cap at high levels
}

// DefaultConfig returns the rules of the original game: a 20x15 grid of
// 32px cells (640x480 window) and the slow base speed of 3 moves/second.
func DefaultConfig() Config {
	return Config{
		GridW:          20,
		GridH:          15,
		CellSize:       32,
		HUDHeight:      48,
		BaseSpeed:      3,
		StartLives:     3,
		StartLength:    3,
		MinLength:      3,
		ScoreCorrect:   10,
		ScoreWrong:     -5,
		LevelStep:      50,
		MaxDistractors: 6,
	}
}

// LevelFromScore derives the 1-based difficulty level. Integer floor
// division only; levels are never fractional.
func (c Config) LevelFromScore(score int) int {
	lv := score/c.LevelStep + 1
	if lv < 1 {
		lv = 1
	}
	return lv
}

// SpeedFromLevel returns the number of discrete moves per second.
func (c Config) SpeedFromLevel(level int) int {
	return c.BaseSpeed + (level-1)*2
}

// DistractorCount returns how many wrong items a round spawns at a level.
func (c Config) DistractorCount(level int) int {
	n := 2 + level
	if n > c.MaxDistractors {
		n = c.MaxDistractors
	}
	return n
}

// WindowSize returns the pixel dimensions of the playfield.
func (c Config) WindowSize() (int, int) {
	return c.GridW * c.CellSize, c.GridH * c.CellSize
}
