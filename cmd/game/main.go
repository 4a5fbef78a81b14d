// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"orbit-defense/internal/app"
	"orbit-defense/internal/audio"
	"orbit-defense/internal/config"
	"orbit-defense/internal/defs"
	"orbit-defense/internal/spectate"
	"orbit-defense/internal/state"
	"orbit-defense/internal/ui"
	"orbit-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.WindowHeight
}

func loadLibrary(towers, enemies, path string) (*defs.Library, error) {
	lib, err := defs.LoadDefault()
	if err != nil {
		return nil, err
	}
	if towers != "" {
		if err := lib.LoadTowerDefinitions(towers); err != nil {
			return nil, err
		}
	}
	if enemies != "" {
		if err := lib.LoadEnemyDefinitions(enemies); err != nil {
			return nil, err
		}
	}
	if path != "" {
		if err := lib.LoadPath(path); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	towersFile := flag.String("towers", "", "tower definitions JSON (default: built-in)")
	enemiesFile := flag.String("enemies", "", "enemy definitions JSON (default: built-in)")
	pathFile := flag.String("path", "", "path waypoints JSON (default: built-in)")
	spectateAddr := flag.String("spectate", "", "serve a websocket spectator stream on this address")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty disables it")
	withMenu := flag.Bool("menu", false, "start on the title screen instead of in game")
	volume := flag.Float64("volume", 1, "master volume, 0 mutes")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	lib, err := loadLibrary(*towersFile, *enemiesFile, *pathFile)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := app.NewGame(lib, app.Options{Seed: *seed})
	services := &state.Services{
		Game:  g,
		Fonts: fonts,
		HUD:   ui.NewHUD(lib, fonts),
		Renderer: render.NewLaneRenderer(&lib.Path, render.LaneColors{
			Background: config.BackgroundColor,
			Star:       config.StarColor,
			Path:       config.PathColor,
			PathCenter: config.PathCenterColor,
			Base:       config.BaseColor,
			BaseGlow:   config.BaseGlowColor,
			PathWidth:  config.PathWidth,
		}, config.ScreenWidth, config.ScreenHeight),
	}

	if out, err := audio.NewEbitenOutput(); err != nil {
		log.Printf("Audio disabled: %v", err)
	} else {
		services.Audio = audio.NewEngine(out, nil, *volume)
		services.Audio.Attach(g.EventDispatcher)
	}

	if *spectateAddr != "" {
		hub := spectate.NewHub()
		services.Spectate = hub
		go func() {
			if err := hub.ListenAndServe(ctx, *spectateAddr); err != nil {
				log.Printf("Spectator stream stopped: %v", err)
			}
		}()
	}

	sm := state.NewStateMachine(services)
	if *withMenu {
		sm.SetState(state.NewMenuState(sm))
	} else {
		sm.SetState(state.NewGameState(sm))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
