package game

import "github.com/hajimehoshi/ebiten/v2"

// keyboard translates raw key state into Commands, edge-triggered: a key
// held across frames fires once. Arrow keys and WASD both steer.
type keyboard struct {
	prev map[ebiten.Key]bool
}

func newKeyboard() *keyboard {
	return &keyboard{prev: make(map[ebiten.Key]bool)}
}

var keyBindings = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyArrowUp, CmdMoveUp},
	{ebiten.KeyW, CmdMoveUp},
	{ebiten.KeyArrowDown, CmdMoveDown},
	{ebiten.KeyS, CmdMoveDown},
	{ebiten.KeyArrowLeft, CmdMoveLeft},
	{ebiten.KeyA, CmdMoveLeft},
	{ebiten.KeyArrowRight, CmdMoveRight},
	{ebiten.KeyD, CmdMoveRight},
	{ebiten.KeyP, CmdTogglePause},
	{ebiten.KeyR, CmdRestart},
	{ebiten.KeyEscape, CmdQuit},
}

// Poll returns the commands for freshly pressed keys this frame.
func (k *keyboard) Poll() []Command {
	var cmds []Command
	for _, b := range keyBindings {
		down := ebiten.IsKeyPressed(b.key)
		if down && !k.prev[b.key] {
			cmds = append(cmds, b.cmd)
		}
		k.prev[b.key] = down
	}
	return cmds
}
