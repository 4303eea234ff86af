// cmd/game/main.go
package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"zombie-terminate/internal/app"
	"zombie-terminate/internal/component"
	"zombie-terminate/internal/config"
	"zombie-terminate/internal/input"
	"zombie-terminate/internal/logging"
	"zombie-terminate/internal/state"
	"zombie-terminate/internal/telemetry"
	"zombie-terminate/internal/ui"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	world          *ui.WorldRenderer
	hud            *ui.HUD
	dashboard      *ui.Dashboard
	lastUpdateTime time.Time
	snapshot       app.Snapshot
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now

	a.stateMachine.Tick(deltaTime, a.readInput())
	if a.stateMachine.Quit() {
		return ebiten.Termination
	}
	a.snapshot = a.stateMachine.Snapshot()
	if a.snapshot.Session == component.Dashboard {
		a.dashboard.Layout(a.snapshot)
	}
	return nil
}

// readInput собирает состояние клавиатуры и мыши за кадр.
func (a *AppGame) readInput() input.Frame {
	var f input.Frame

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		f.Move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		f.Move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		f.Move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		f.Move.X--
	}

	mx, my := ebiten.CursorPosition()
	f.Aim, f.HasAim = ui.ScreenToWorld(mx, my), true
	f.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		f.WeaponSlot = 1
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		f.WeaponSlot = 2
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		f.WeaponSlot = 3
	}

	f.PauseToggle = inpututil.IsKeyJustPressed(ebiten.KeyP)
	f.MenuReturn = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	f.Restart = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		f.Actions = append(f.Actions, input.BuyFireRate)
	}

	if a.snapshot.Session == component.Dashboard {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if action, ok := a.dashboard.Click(mx, my); ok {
				f.Actions = append(f.Actions, action)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			f.Actions = append(f.Actions, input.Start)
		}
		// на дашборде клик по кнопке не должен стрелять
		f.Fire = false
	}
	return f
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if a.snapshot.Session == component.Dashboard {
		mx, my := ebiten.CursorPosition()
		a.dashboard.Draw(screen, a.snapshot, mx, my)
		return
	}
	a.world.Draw(screen, a.snapshot)
	a.hud.Draw(screen, a.snapshot)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configDir := pflag.String("config", ".", "directory with "+config.FileName)
	logLevel := pflag.String("log-level", "", "override the configured log level")
	pflag.Parse()

	tuning, err := config.Load(*configDir)
	if err != nil {
		bootLogger := logging.New(os.Stderr, "info")
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}
	if *logLevel != "" {
		tuning.LogLevel = *logLevel
	}
	logger := logging.New(os.Stdout, tuning.LogLevel)

	game := app.NewGame(tuning, logger)
	registerTelemetry(game, logger)

	sm := state.NewStateMachine(game)
	a := &AppGame{
		stateMachine:   sm,
		world:          ui.NewWorldRenderer(),
		hud:            ui.NewHUD(ui.DefaultFace),
		dashboard:      ui.NewDashboard(ui.DefaultFace),
		lastUpdateTime: time.Now(),
		snapshot:       sm.Snapshot(),
	}
	a.dashboard.Layout(a.snapshot)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	logger.Info().Int64("seed", game.Rng.Seed()).Msg("starting")
	if err := ebiten.RunGame(a); err != nil {
		logger.Fatal().Err(err).Msg("game exited with error")
	}
}

func registerTelemetry(game *app.Game, logger zerolog.Logger) {
	rec, err := telemetry.New(telemetry.Meter())
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry disabled")
		return
	}
	rec.Register(game.EventDispatcher)
}
