package ui

import (
	"gridsnake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type binding struct {
	keys []int32
	cmd  game.Command
}

// Only the first held direction counts, in this order.
var directionBindings = []binding{
	{keys: []int32{rl.KeyW, rl.KeyUp}, cmd: game.CommandUp},
	{keys: []int32{rl.KeyS, rl.KeyDown}, cmd: game.CommandDown},
	{keys: []int32{rl.KeyA, rl.KeyLeft}, cmd: game.CommandLeft},
	{keys: []int32{rl.KeyD, rl.KeyRight}, cmd: game.CommandRight},
}

var actionBindings = []binding{
	{keys: []int32{rl.KeyEscape}, cmd: game.CommandQuit},
	{keys: []int32{rl.KeySpace}, cmd: game.CommandRestart},
}

// PollCommands reads the keyboard state for this frame.
func PollCommands() []game.Command {
	return commandsFrom(rl.IsKeyDown)
}

func commandsFrom(isDown func(key int32) bool) []game.Command {
	held := func(b binding) bool {
		for _, k := range b.keys {
			if isDown(k) {
				return true
			}
		}
		return false
	}

	var cmds []game.Command
	for _, b := range actionBindings {
		if held(b) {
			cmds = append(cmds, b.cmd)
		}
	}
	for _, b := range directionBindings {
		if held(b) {
			cmds = append(cmds, b.cmd)
			break
		}
	}
	return cmds
}
