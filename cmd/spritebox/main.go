package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"spritebox/internal/config"
	"spritebox/internal/fatal"
	"spritebox/internal/game"
	"spritebox/internal/input"
	"spritebox/internal/logging"
)

var configPath = flag.String("config", "spritebox.toml", "path to the TOML settings file")

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	fatal.Check(err)
	fatal.Check(logging.SetLevel(cfg.Log.Level))
	config.Apply(cfg)

	fatal.OnExit(func() {
		logging.Debug("spritebox exited")
	})
	fatal.Check(run(cfg))
	fatal.Quit()
}

// run owns the window and the GL context. Deferred cleanup stays on the
// locked main thread.
func run(cfg config.Config) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "init glfw")
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := game.NewApp(cfg, window, input.NewInputManager())
	if err != nil {
		return err
	}
	defer app.Close()

	logging.Info("running %s at %dx%d", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	return app.Run()
}
