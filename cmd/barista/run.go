package main

import (
	"context"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"BaristaSimulator/internal/asset"
	"BaristaSimulator/internal/camera"
	"BaristaSimulator/internal/config"
	"BaristaSimulator/internal/greybox"
	"BaristaSimulator/internal/log"
	"BaristaSimulator/internal/render"
	"BaristaSimulator/internal/transition"
	"BaristaSimulator/internal/ui"
	"BaristaSimulator/internal/viewpoint"
)

const CAPTURE_NAME_LENGTH = 24

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the coffee bar window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd, opts)
		},
	}
}

type app struct {
	cfg    config.Config
	logger *log.Logger
	ctrl   *camera.Controller
	scene  *greybox.Scene
	bar    *ui.ButtonBar
	status ui.Status
	box    *ui.TextBox
	reload <-chan struct{}

	showGrid  bool
	wireframe bool
	quit      bool
}

func runScene(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	logger, err := log.NewLogger(cfg.Log.Dir, cfg.Log.Development, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()
	logger.Infow("session started", "log_file", logger.Path(), "viewpoints", cfg.Camera.ViewpointFile)

	easing, err := transition.EasingByName(cfg.Camera.Easing)
	if err != nil {
		return err
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		bar:       ui.NewButtonBar(logger.Named("ui")),
		showGrid:  cfg.Scene.ShowGrid,
		wireframe: cfg.Scene.Wireframe,
	}

	file := asset.NewFile(cfg.Camera.ViewpointFile)
	a.ctrl = camera.NewController(viewpoint.NewStore(),
		camera.WithDuration(cfg.Camera.TransitionDuration.Duration),
		camera.WithEasing(easing),
		camera.WithHighlighter(a.bar),
		camera.WithPersistence(file),
		camera.WithLogger(logger.Named("camera")),
		camera.WithLive(cfg.Camera.Live),
		camera.WithPose(viewpoint.Defaults()[0].Pose()),
	)
	if err := a.ctrl.Start(); err != nil {
		logger.Errorw("falling back to default viewpoints", "error", err)
	}

	a.scene = greybox.Build(logger.Named("scene"))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if cfg.Camera.WatchViewpoints {
		a.reload, err = asset.Watch(ctx, file.Path(), logger.Named("asset"))
		if err != nil {
			logger.Warnw("viewpoint hot reload disabled", "error", err)
		}
	}

	rl.InitWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	rl.SetTargetFPS(cfg.Window.TargetFPS)
	rl.SetExitKey(0)
	defer rl.CloseWindow()

	a.box = ui.NewTextBox(float32(cfg.Window.Width-260), 10, 250, 30, CAPTURE_NAME_LENGTH)
	a.box.Placeholder = "Capture view as..."

	logger.Separator()
	a.ctrl.SwitchToIndex(0)

	for !rl.WindowShouldClose() && !a.quit {
		delta := rl.GetFrameTime()
		a.update(delta)
		a.draw()
	}

	logger.Infow("session ended")
	return nil
}

func (a *app) update(delta float32) {
	select {
	case <-a.reload:
		if err := a.ctrl.LoadPersistedSet(); err != nil {
			a.logger.Errorw("hot reload failed", "error", err)
			a.status.Show("Reload failed: %v", err)
		} else {
			a.status.Show("Viewpoints reloaded")
		}
	default:
	}

	typing := a.box.Focused
	if name, ok := a.box.Update(); ok {
		if a.ctrl.Capture(name) {
			a.status.Show("Captured %q", name)
		} else {
			a.status.Show("Cannot capture %q", name)
		}
	}

	if !typing && !a.box.Focused {
		a.handleKeys()
	}

	a.ctrl.Tick(time.Duration(float64(delta) * float64(time.Second)))
}

func (a *app) handleKeys() {
	if rl.IsKeyPressed(rl.KeyRight) {
		a.ctrl.Next()
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.ctrl.Previous()
	}
	for k := int32(rl.KeyOne); k <= rl.KeyNine; k++ {
		if rl.IsKeyPressed(k) {
			a.ctrl.SwitchToIndex(int(k - rl.KeyOne))
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.ctrl.ResetToDefaults()
		a.status.Show("Viewpoints reset to defaults")
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		if err := a.ctrl.SaveCurrentSet(); err != nil {
			a.logger.Errorw("save failed", "error", err)
			a.status.Show("Save failed: %v", err)
		} else {
			a.status.Show("Saved %d viewpoints", len(a.ctrl.Names()))
		}
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		if err := a.ctrl.LoadPersistedSet(); err != nil {
			a.logger.Errorw("load failed", "error", err)
			a.status.Show("Load failed: %v", err)
		} else {
			a.status.Show("Loaded %d viewpoints", len(a.ctrl.Names()))
		}
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.showGrid = !a.showGrid
	}
	if rl.IsKeyPressed(rl.KeyF) {
		a.wireframe = !a.wireframe
	}
	if rl.IsKeyPressed(rl.KeyL) {
		a.ctrl.SetLive(!a.ctrl.Live())
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.quit = true
	}
}

func (a *app) draw() {
	if rl.WindowShouldClose() {
		return
	}
	rl.BeginDrawing()

	render.Scene(a.ctrl.Pose(), a.scene, render.Options{
		ShowGrid:  a.showGrid,
		Wireframe: a.wireframe,
	})

	if i := a.bar.Draw(a.ctrl.Names()); i >= 0 {
		a.ctrl.SwitchToIndex(i)
	}
	a.box.Draw()
	a.status.Draw(a.ctrl.CurrentName(), a.ctrl.IsTransitioning(), a.ctrl.Live())

	rl.EndDrawing()
}
