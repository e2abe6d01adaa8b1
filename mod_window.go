package lumen

import (
	"reflect"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// MaxPixelRatio caps the backing-buffer scale on high-density displays.
const MaxPixelRatio = 2.0

func viewportType() reflect.Type {
	return reflect.TypeOf((*Viewport)(nil)).Elem()
}

// Viewport holds the current logical window dimensions. Mutated only by the
// resize application; everything else (camera aspect, surface size) is
// derived from it.
type Viewport struct {
	Width      float32
	Height     float32
	PixelRatio float32
}

func (vp *Viewport) Aspect() float32 {
	if vp.Height == 0 {
		return 1
	}
	return vp.Width / vp.Height
}

// DeviceSize returns the backing-buffer pixel dimensions.
func (vp *Viewport) DeviceSize() (uint32, uint32) {
	return uint32(vp.Width * vp.PixelRatio), uint32(vp.Height * vp.PixelRatio)
}

// WindowState owns the GLFW window. Size callbacks only record the new
// dimensions; the resize reaction is applied between frames, never mid-frame.
type WindowState struct {
	windowGlfw  *glfw.Window
	windowTitle string

	WindowWidth  int
	WindowHeight int

	pendingResizes [][2]int
}

// DrainPendingResizes returns the size changes recorded since the last frame,
// oldest first, and clears the queue. Each event gets its own application; a
// burst between two frames is never collapsed into one.
func (s *WindowState) DrainPendingResizes() [][2]int {
	resizes := s.pendingResizes
	s.pendingResizes = nil
	return resizes
}

func (s *WindowState) recordResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.pendingResizes = append(s.pendingResizes, [2]int{width, height})
}

// ContentScale reports the window content scale clamped to MaxPixelRatio.
func (s *WindowState) ContentScale() float32 {
	if s.windowGlfw == nil {
		return 1
	}
	scale, _ := s.windowGlfw.GetContentScale()
	if scale <= 0 {
		scale = 1
	}
	if scale > MaxPixelRatio {
		scale = MaxPixelRatio
	}
	return scale
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Important: tell GLFW we don't want OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	state := &WindowState{
		windowGlfw:   win,
		windowTitle:  windowTitle,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
	}

	win.SetSizeCallback(func(w *glfw.Window, width int, height int) {
		state.recordResize(width, height)
	})

	return state
}

// WindowModule provides the shared GLFW window and the Viewport resource.
// Install is idempotent: if a WindowState resource already exists it is
// reused, preserving the single-window invariant.
type WindowModule struct {
	Width  int
	Height int
	Title  string
}

func NewWindow(width, height int, title string) *WindowModule {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "Lumen"
	}
	return &WindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m WindowModule) Install(app *App, cmd *Commands) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if _, ok := app.resources[t]; ok {
		return
	}

	state := createWindowState(m.Width, m.Height, m.Title)
	app.Logger().Infof("window created: %dx%d %q", m.Width, m.Height, m.Title)
	cmd.AddResources(
		state,
		&Viewport{
			Width:      float32(m.Width),
			Height:     float32(m.Height),
			PixelRatio: state.ContentScale(),
		},
	)

	app.UseSystem(
		System(windowEventsSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func windowEventsSystem(state *WindowState, cmd *Commands) {
	glfw.PollEvents()

	if state.windowGlfw.ShouldClose() {
		cmd.Stop()
	}
}
