// Terminal frontend: the same simulation drawn with tcell.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"zombie-terminate/internal/app"
	"zombie-terminate/internal/config"
	"zombie-terminate/internal/logging"
	"zombie-terminate/internal/state"
	"zombie-terminate/internal/telemetry"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type termGame struct {
	screen tcell.Screen
	sm     *state.StateMachine
	keys   *keyState
	canvas *canvas
	log    zerolog.Logger
}

func newTermGame(sm *state.StateMachine, logger zerolog.Logger) (*termGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	w, h := screen.Size()
	return &termGame{
		screen: screen,
		sm:     sm,
		keys:   newKeyState(),
		canvas: newCanvas(w, h),
		log:    logger,
	}, nil
}

// handleInput returns false when the player wants out.
func (g *termGame) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		g.keys.press(ev.Key(), ev.Rune(), g.sm.Current(), now)
	case *tcell.EventResize:
		w, h := g.screen.Size()
		g.canvas = newCanvas(w, h)
		g.screen.Sync()
		g.log.Debug().Int("width", w).Int("height", h).Msg("terminal resized")
	}
	return true
}

func (g *termGame) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := pollEvents(g.screen, done)

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !g.handleInput(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			before := g.sm.Snapshot()
			g.sm.Tick(now.Sub(last).Seconds(), g.keys.frame(before.Player.Center, now))
			last = now
			if g.sm.Quit() {
				return
			}

			snap := g.sm.Snapshot()
			if snap.Session != before.Session {
				g.keys.reset()
			}
			render(g.canvas, snap)
			g.canvas.flush(g.screen)
		}
	}
}

func main() {
	configDir := pflag.String("config", ".", "directory with "+config.FileName)
	logPath := pflag.String("log", "zombie_terminate.log", "log file; the terminal is taken by the game")
	pflag.Parse()

	tuning, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := logging.NewFile(logFile, tuning.LogLevel)

	game := app.NewGame(tuning, logger)
	if rec, err := telemetry.New(telemetry.Meter()); err != nil {
		logger.Warn().Err(err).Msg("telemetry disabled")
	} else {
		rec.Register(game.EventDispatcher)
	}

	tg, err := newTermGame(state.NewStateMachine(game), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer tg.screen.Fini()

	logger.Info().Int64("seed", game.Rng.Seed()).Msg("terminal session started")
	tg.run()
	logger.Info().Msg("terminal session finished")
}
