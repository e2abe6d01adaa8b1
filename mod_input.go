package lumen

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	MouseButtonLeft int = iota
	MouseButtonRight
	MouseButtonMiddle
	KeyEscape
	inputCodeCount
)

var keyToGlfw = map[int]glfw.Key{
	KeyEscape: glfw.KeyEscape,
}

var mouseToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}

// Input is the polled input snapshot for the current frame. The orbit camera
// reads mouse deltas and scroll from here.
type Input struct {
	Pressed      [inputCodeCount]bool
	JustPressed  [inputCodeCount]bool
	JustReleased [inputCodeCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	ScrollY                  float64

	scrollAccum float64
}

type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	input := &Input{}
	cmd.AddResources(input)

	state := ResourceOf[WindowState](app)
	state.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff float64, yoff float64) {
		input.scrollAccum += yoff
	})

	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func inputSystem(state *WindowState, input *Input, cmd *Commands) {
	for key, glfwKey := range keyToGlfw {
		action := state.windowGlfw.GetKey(glfwKey)
		updatePressed(input, key, action == glfw.Press)
	}
	for btn, glfwBtn := range mouseToGlfw {
		action := state.windowGlfw.GetMouseButton(glfwBtn)
		updatePressed(input, btn, action == glfw.Press)
	}

	x, y := state.windowGlfw.GetCursorPos()
	input.MouseDeltaX = x - input.MouseX
	input.MouseDeltaY = y - input.MouseY
	input.MouseX = x
	input.MouseY = y

	input.ScrollY = input.scrollAccum
	input.scrollAccum = 0

	applyShortcuts(input, cmd)
}

func applyShortcuts(input *Input, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		cmd.Stop()
	}
}

func updatePressed(input *Input, code int, pressed bool) {
	input.JustPressed[code] = false
	input.JustReleased[code] = false

	if pressed {
		if !input.Pressed[code] {
			input.JustPressed[code] = true
		}
		input.Pressed[code] = true
	} else {
		if input.Pressed[code] {
			input.JustReleased[code] = true
		}
		input.Pressed[code] = false
	}
}
