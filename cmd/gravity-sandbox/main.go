package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gravity-sandbox/audio"
	"github.com/lixenwraith/gravity-sandbox/config"
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/game"
	"github.com/lixenwraith/gravity-sandbox/input"
	"github.com/lixenwraith/gravity-sandbox/metrics"
	"github.com/lixenwraith/gravity-sandbox/parameter"
	"github.com/lixenwraith/gravity-sandbox/render"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "gravity-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRAVITY-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d, tps %d", seed, cfg.Loop.TPS)

	// Audio failure is non-fatal; the simulation runs silent
	var player engine.AudioPlayer
	audioPlayer := audio.NewPlayer(cfg.AudioSettings())
	if err := audioPlayer.Start(); err != nil {
		log.Printf("audio unavailable: %v", err)
	} else {
		defer audioPlayer.Stop()
		player = audioPlayer
	}

	sim := game.New(cfg.Engine(), rand.New(rand.NewSource(seed)), player)

	if cfg.Metrics.Addr != "" {
		srv, err := metrics.NewServer(cfg.Metrics.Addr, metrics.NewExporter(sim.World.Status))
		if err != nil {
			log.Printf("metrics disabled: %v", err)
		} else {
			srv.Start()
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = srv.Shutdown(ctx)
			}()
		}
	}

	renderer := render.NewRenderer(screen, cfg.World.Width, cfg.World.Height, rand.New(rand.NewSource(seed+1)))
	router := input.NewRouter(renderer.Viewport())
	router.SetFullCheck(sim.World.AtCap)

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				renderer.Resize()
				router.SetMapper(renderer.Viewport())
				continue
			}

			cmd, ok := router.Process(ev)
			if !ok {
				continue
			}
			if !sim.Apply(cmd) {
				log.Printf("quit after %d frames", sim.World.Frame)
				return nil
			}

		case <-ticker.C:
			sim.Step(router.Pointer())
			renderer.Draw(sim.World, render.HUD{Muted: sim.Muted()})
		}
	}
}
