package toggle

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// ShowFPS overlays FPS/TPS. The screen is then repainted every frame.
	ShowFPS bool

	// ExitWhenScriptDone stops the loop once the attached TestRunner finishes.
	ExitWhenScriptDone bool
}

// game adapts a Panel to ebiten.Game.
type game struct {
	panel *Panel
	cfg   RunConfig
}

func (g *game) Update() error {
	g.panel.Update()
	// Queued screenshots are written by Draw, so let one more frame render.
	if g.cfg.ExitWhenScriptDone && g.panel.testRunner != nil && g.panel.testRunner.Done() &&
		len(g.panel.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.panel.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the panel until the window closes. Unless
// ShowFPS is set, the screen is kept between frames and only repainted when
// a widget requested it.
func Run(panel *Panel, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	panel.retainScreen = !cfg.ShowFPS
	ebiten.SetScreenClearedEveryFrame(!panel.retainScreen)
	panel.Invalidate()

	err := ebiten.RunGame(&game{panel: panel, cfg: cfg})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
