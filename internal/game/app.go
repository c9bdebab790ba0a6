package game

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"spritebox/internal/assets"
	"spritebox/internal/config"
	"spritebox/internal/graphics"
	"spritebox/internal/graphics/renderables/sprites"
	"spritebox/internal/graphics/renderables/ui"
	"spritebox/internal/graphics/renderer"
	"spritebox/internal/input"
	"spritebox/internal/logging"
	"spritebox/internal/profiling"
	"spritebox/internal/sys"
	"spritebox/internal/textview"
	"spritebox/internal/theme"
	"spritebox/internal/ui/menu"
)

// moveStep is how far one arrow key press or repeat moves the player, in pixels.
const moveStep = 10

// slowFrame is the processing time above which a frame's top tasks are logged.
const slowFrame = 16 * time.Millisecond

// App owns every GL resource of the sandbox and runs the frame loop.
type App struct {
	cfg          config.Config
	window       *glfw.Window
	inputManager *input.InputManager

	textures *graphics.TextureCache
	shaders  *graphics.ShaderRegistry
	library  *assets.Library
	watcher  *assets.Watcher

	renderer *renderer.Renderer
	sprites  *sprites.Sprites
	overlay  *menu.Overlay
	panels   menu.Panels
	style    *theme.Style
	script   *textview.Buffer

	player *Object

	clock      *FixedStep
	hist       profiling.FrameTimeHistogram
	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp builds the scene for window. On error everything created so far is released.
func NewApp(cfg config.Config, window *glfw.Window, im *input.InputManager) (*App, error) {
	a := &App{
		cfg:          cfg,
		window:       window,
		inputManager: im,
		textures:     graphics.NewTextureCache(graphics.GLUploader{}),
		shaders:      graphics.NewShaderRegistry(),
		clock:        NewFixedStep(cfg.Loop.Step, cfg.Loop.MaxFrame),
		fpsLimiter:   NewFPSLimiter(),
		panels: menu.Panels{
			MenuBar: cfg.Overlay.ShowMenuBar,
			FPS:     cfg.Overlay.ShowFPS,
			Theme:   cfg.Overlay.ShowTheme,
			Editor:  cfg.Overlay.ShowEditor,
		},
	}
	a.library = assets.NewLibrary(a.textures)
	built := false
	defer func() {
		if !built {
			a.Close()
		}
	}()

	if cfg.Assets.Preload {
		if _, err := a.library.Preload(cfg.Assets.Images, os.Stderr); err != nil {
			return nil, err
		}
	}

	a.player = NewObject()
	if err := a.player.SetTexture(a.textures, cfg.Assets.Sprite); err != nil {
		return nil, errors.Wrap(err, "player sprite")
	}
	shader, err := a.shaders.Get(graphics.BasicShader)
	if err != nil {
		return nil, err
	}
	a.player.AttachShader(shader)

	width, height := window.GetFramebufferSize()
	a.centerPlayer(width, height)

	a.style = theme.Default(cfg.Overlay.Dark, cfg.Overlay.Alpha)
	if sys.FileExists(cfg.Assets.Theme) {
		if err := a.style.Load(cfg.Assets.Theme); err != nil {
			logging.Warn("theme: %v", err)
		}
	}

	a.script = textview.New()
	if err := a.script.Load(cfg.Assets.Script); err != nil {
		logging.Warn("script viewer: %v", err)
	}

	atlas, err := graphics.BuildFontAtlas(graphics.DefaultFont(), cfg.Overlay.FontSize)
	if err != nil {
		return nil, err
	}
	overlayUI, err := ui.NewUI(a.textures, atlas)
	if err != nil {
		return nil, err
	}
	a.overlay = menu.NewOverlay(menu.Config{
		UI:        overlayUI,
		Pointer:   ui.WindowPointer{Window: window},
		Panels:    &a.panels,
		Style:     a.style,
		Hist:      &a.hist,
		Script:    a.script,
		ThemePath: cfg.Assets.Theme,
		Alpha:     cfg.Overlay.Alpha,
	})

	a.sprites = sprites.NewSprites(a.player)
	layers := append([]renderer.Renderable{a.sprites}, a.overlay.Layers()...)
	a.renderer, err = renderer.NewRenderer(renderer.NewGLBackend(shader, cfg.Window.ClearColor), width, height, layers...)
	if err != nil {
		return nil, err
	}

	if cfg.Assets.Watch {
		if err := a.startWatcher(); err != nil {
			logging.Warn("hot reload disabled: %v", err)
		}
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.renderer.SetViewport(width, height)
	})
	im.Attach(window)
	a.lastTime = time.Now()
	built = true
	return a, nil
}

func (a *App) startWatcher() error {
	w, err := assets.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.AddRecursive(a.cfg.Assets.Images); err != nil {
		w.Close()
		return err
	}
	if a.script.Path() != "" {
		if err := w.AddFile(a.script.Path()); err != nil {
			logging.Warn("watch %s: %v", a.script.Path(), err)
		}
	}
	a.watcher = w
	return nil
}

func (a *App) centerPlayer(width, height int) {
	a.player.SetLocation((float32(width)-a.player.Width())/2, (float32(height)-a.player.Height())/2)
}

func (a *App) Run() error {
	for !a.window.ShouldClose() {
		if err := a.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) tick() error {
	profiling.ResetFrame()
	startTick := time.Now()
	frameTime := startTick.Sub(a.lastTime)
	a.lastTime = startTick

	glfw.PollEvents()
	a.handleActions()
	a.applyChanges()

	steps, alpha := a.clock.Advance(frameTime.Seconds())
	a.update(steps)
	a.hist.Record(frameTime)
	a.overlay.Stats = menu.Stats{DrawCalls: a.renderer.DrawCalls(), Sprites: a.sprites.Len()}

	if err := a.renderer.Render(frameTime.Seconds(), alpha); err != nil {
		return errors.Wrap(err, "render")
	}
	a.window.SwapBuffers()

	if d := time.Since(startTick); d > slowFrame {
		logging.Debug("slow frame %v, top tasks: %s", d, profiling.TopN(5))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
	return nil
}

func (a *App) handleActions() {
	defer profiling.Track("app.input")()
	im := a.inputManager

	if a.overlay.Update(im.JustPressed(input.ActionMouseLeft)) == menu.ActionQuit || im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}

	dx := im.Pulses(input.ActionMoveRight) - im.Pulses(input.ActionMoveLeft)
	dy := im.Pulses(input.ActionMoveDown) - im.Pulses(input.ActionMoveUp)
	if dx != 0 || dy != 0 {
		a.player.Move(float32(dx*moveStep), float32(dy*moveStep))
	}

	if im.JustPressed(input.ActionToggleTheme) {
		if im.IsActive(input.ActionModControl) {
			a.overlay.ResetTheme()
		} else {
			a.panels.Theme = !a.panels.Theme
		}
	}
	if im.JustPressed(input.ActionToggleFPS) {
		a.panels.FPS = !a.panels.FPS
	}
	if im.JustPressed(input.ActionToggleEditor) {
		a.panels.Editor = !a.panels.Editor
	}
	if im.JustPressed(input.ActionToggleMenuBar) {
		a.panels.MenuBar = !a.panels.MenuBar
	}
	if n := im.Pulses(input.ActionScrollDown) - im.Pulses(input.ActionScrollUp); n != 0 {
		a.script.Scroll(n * a.overlay.ScrollPage())
	}
}

// applyChanges reloads whatever the watcher saw change since the last frame.
// Decoding and uploads happen here, on the render thread.
func (a *App) applyChanges() {
	if a.watcher == nil {
		return
	}
	for _, path := range a.watcher.Poll() {
		path = filepath.Clean(path)
		switch {
		case path == filepath.Clean(a.script.Path()):
			if err := a.script.Reload(); err != nil {
				logging.Warn("reload script: %v", err)
			}
		case assets.IsImage(path):
			isSprite := path == filepath.Clean(a.cfg.Assets.Sprite)
			if isSprite {
				path = a.cfg.Assets.Sprite
			}
			if err := a.library.Refresh(path); err != nil {
				logging.Warn("%v", err)
				continue
			}
			if isSprite {
				a.reloadPlayer()
			}
		}
	}
}

func (a *App) reloadPlayer() {
	loc := a.player.Location()
	if err := a.player.SetTexture(a.textures, a.cfg.Assets.Sprite); err != nil {
		logging.Warn("reload player sprite: %v", err)
		return
	}
	a.player.SetLocation(loc.X(), loc.Y())
}

// update runs the fixed-rate simulation steps. The player cycles its frames once per step.
func (a *App) update(steps int) {
	if n := len(a.player.Frames()); n > 1 && steps > 0 {
		_ = a.player.SetFrame((a.player.Frame() + steps) % n)
	}
}

// Close releases textures, shaders, GL buffers and the watcher. Safe on a
// partially built App.
func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logging.Warn("close watcher: %v", err)
		}
		a.watcher = nil
	}
	if a.renderer != nil {
		a.renderer.Dispose()
		a.renderer = nil
	}
	if a.overlay != nil {
		a.overlay.Dispose()
		a.overlay = nil
	}
	if a.player != nil {
		a.player.Release()
		a.player = nil
	}
	a.library.Release()
	a.shaders.Dispose()
	if n := a.textures.Len(); n > 0 {
		logging.Debug("%d textures still cached at shutdown", n)
	}
}
