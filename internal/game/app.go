package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Update runs at 60 TPS; the state machine consumes wall time, not ticks.
const frameDT = 1.0 / 60

// Game adapts State to the ebiten run loop: it polls input, advances the
// simulation by one frame of time, and routes drained events to audio.
type Game struct {
	state *State
	keys  *keyboard
	audio *AudioSystem
	log   *zap.Logger

	width  int
	height int
}

// NewGame wires a session into an ebiten.Game. audio may be nil.
func NewGame(state *State, audio *AudioSystem, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, h := state.Config().WindowSize()
	return &Game{
		state:  state,
		keys:   newKeyboard(),
		audio:  audio,
		log:    logger,
		width:  w,
		height: h,
	}
}

func (g *Game) Update() error {
	for _, cmd := range g.keys.Poll() {
		if cmd == CmdQuit {
			g.log.Info("quit requested")
			return ebiten.Termination
		}
		g.state.Apply(cmd)
	}
	g.state.Advance(frameDT)

	for _, ev := range g.state.DrainEvents() {
		switch ev {
		case EventCorrect:
			g.audio.Play(SoundCorrect)
		case EventWrong:
			g.audio.Play(SoundWrong)
		case EventLevelUp:
			g.audio.Play(SoundLevelUp)
		case EventGameOver:
			g.audio.Play(SoundGameOver)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawFrame(screen, g.state.Snapshot())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
