package main

import (
	"log"
	"time"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

const (
	windowTitle = "Snake"
	fontFile    = "assets/fonts/data-latin.ttf"
	fontSize    = 20
)

var soundFiles = map[types.SoundID]string{
	types.SoundEatFruit: "assets/sounds/eat_fruit.wav",
	types.SoundGameOver: "assets/sounds/game_over.wav",
}

func main() {
	setupLogging()

	if err := run(); err != nil {
		log.Printf("startup failed: %v", err)
	}
}

func setupLogging() {
	log.SetPrefix("snake: ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
}

func run() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(types.ScreenWidth, types.ScreenHeight, windowTitle)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return errors.New("window could not be created")
	}
	rl.SetTargetFPS(types.TargetFPS)

	sounds := audio.NewSoundManager()
	if err := sounds.Init(); err != nil {
		return err
	}
	defer sounds.Close()

	for id, path := range soundFiles {
		if err := sounds.Load(id, path); err != nil {
			return err
		}
	}

	text, err := ui.LoadFont(fontFile, fontSize)
	if err != nil {
		return err
	}
	defer text.Close()

	g := game.NewGame(types.DefaultGrid, sounds, uint64(time.Now().UnixNano()))
	renderer := ui.NewRenderer(text)

	loop(g, renderer)

	rounds := g.Rounds()
	log.Printf("session over: %d rounds, high score %d", len(rounds), g.HighScore())
	return nil
}

func loop(g *game.Game, renderer *ui.Renderer) {
	for !rl.WindowShouldClose() {
		for _, cmd := range ui.PollCommands() {
			if cmd == game.CommandQuit {
				return
			}
			g.Handle(cmd)
		}

		g.Update(rl.GetFrameTime())
		renderer.Draw(g)
	}
}
