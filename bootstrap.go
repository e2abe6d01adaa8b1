package lumen

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Config carries the host-tunable bootstrap parameters. Zero values fall back
// to the module defaults.
type Config struct {
	Width  int
	Height int
	Title  string

	CameraStart mgl32.Vec3
	Background  [4]float32
	AxesSize    float32

	// Sim overrides the built-in physics world.
	Sim Physics

	Debug bool
}

// DefaultModules is the initialization sequencer: the one place the bootstrap
// order is written down. Modules install strictly in this order, and no
// module may depend on one listed after it. Any construction failure panics
// and aborts startup; there are no retries.
func DefaultModules(cfg Config) []Module {
	background := cfg.Background
	if background == ([4]float32{}) {
		background = [4]float32{0.1, 0.1, 0.12, 1}
	}

	return []Module{
		LoggingModule{Prefix: "lumen", Debug: cfg.Debug},
		PanelModule{},
		DiagnosticsModule{},
		SceneModule{},
		TimeModule{},
		NewWindow(cfg.Width, cfg.Height, cfg.Title),
		SurfaceModule{},
		InputModule{},
		CameraModule{StartPosition: cfg.CameraStart},
		LightingModule{},
		TweenModule{},
		PhysicsModule{Sim: cfg.Sim},
		GameSceneModule{},
		OverlayModule{},
		HelpersModule{AxesSize: cfg.AxesSize, Background: background},
		PanelBindModule{},
	}
}

// Bootstrap builds a fully wired App. The caller still owns the external
// signals: attach a game scene, call MarkAssetsLoaded when assets arrive,
// then Run.
func Bootstrap(cfg Config) *App {
	builder := NewAppBuilder()
	builder.UseModule(DefaultModules(cfg)...)
	return builder.Build()
}
