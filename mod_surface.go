package lumen

import (
	"reflect"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
)

func renderSurfaceType() reflect.Type {
	return reflect.TypeOf((*RenderSurface)(nil)).Elem()
}

// SurfaceResizer is the part of the render surface the resize reaction needs.
// Kept narrow so tests can substitute a recording fake.
type SurfaceResizer interface {
	Resize(width, height uint32)
}

// RenderSurface owns the wgpu swapchain for the shared window. The render
// system clears to the configured background color and presents; present
// blocks on vsync, which is what paces the whole frame loop.
type RenderSurface struct {
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration

	clearColor wgpu.Color
	Frames     uint64
}

func createRenderSurface(state *WindowState, vp *Viewport) *RenderSurface {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()
	// wraps the GLFW window into a wgpu surface
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(state.windowGlfw))
	// finds a suitable GPU (discrete GPU preferred)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		panic(err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "Main Device",
		RequiredFeatures: nil,
		RequiredLimits:   nil,
	})
	if err != nil {
		panic(err)
	}
	queue := device.GetQueue()

	width, height := vp.DeviceSize()

	caps := surface.GetCapabilities(adapter)
	// defines how the swapchain behaves (size, format, vsync)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       width,
		Height:      height,
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &surfaceConfig)

	return &RenderSurface{
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         queue,
		surfaceConfig: &surfaceConfig,
		clearColor:    wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
	}
}

// Resize reconfigures the swapchain to the given pixel dimensions.
// Reapplying unchanged dimensions is a no-op.
func (rs *RenderSurface) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	if width == rs.surfaceConfig.Width && height == rs.surfaceConfig.Height {
		return
	}
	rs.surfaceConfig.Width = width
	rs.surfaceConfig.Height = height
	rs.surface.Configure(rs.adapter, rs.device, rs.surfaceConfig)
}

func (rs *RenderSurface) SetClearColor(color [4]float32) {
	rs.clearColor = wgpu.Color{
		R: float64(color[0]),
		G: float64(color[1]),
		B: float64(color[2]),
		A: float64(color[3]),
	}
}

// RenderFrame draws one frame: acquire, clear, present.
func (rs *RenderSurface) RenderFrame(graph *SceneGraph, cam *CameraRig) {
	nextTexture, err := rs.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()
	encoder, err := rs.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	// Projection is recomputed here if a resize marked it dirty, never later:
	// no frame renders a stale aspect against a new surface size.
	_ = cam.Projection()
	_ = cam.View()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: rs.clearColor,
			},
		},
	})
	err = renderPass.End()
	renderPass.Release()
	if err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	rs.queue.Submit(cmdBuffer)
	rs.surface.Present()
	rs.Frames++
}

// ApplyResize is the whole resize reaction, applied atomically between
// frames: viewport first, then camera aspect, then surface pixel size. The
// pixel ratio is clamped so high-density displays don't blow up the backing
// buffer.
func ApplyResize(vp *Viewport, cam *CameraRig, surface SurfaceResizer, width, height, pixelRatio float32) {
	if width <= 0 || height <= 0 {
		return
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	if pixelRatio > MaxPixelRatio {
		pixelRatio = MaxPixelRatio
	}

	vp.Width = width
	vp.Height = height
	vp.PixelRatio = pixelRatio

	cam.SetAspect(vp.Aspect())

	deviceWidth, deviceHeight := vp.DeviceSize()
	surface.Resize(deviceWidth, deviceHeight)
}

// SurfaceModule provides the RenderSurface, the resize reaction and the
// render system. Requires WindowModule and, by render time, CameraModule.
type SurfaceModule struct{}

func (mod SurfaceModule) Install(app *App, cmd *Commands) {
	state := ResourceOf[WindowState](app)
	vp := ResourceOf[Viewport](app)

	cmd.AddResources(createRenderSurface(state, vp))
	width, height := vp.DeviceSize()
	app.Logger().Infof("render surface configured: %dx%d", width, height)

	app.UseSystem(
		System(resizeSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
	app.UseSystem(
		System(renderSystem).
			InStage(Render).
			WhenReady(),
	)
}

// resizeSystem applies every window size recorded since the last frame, in
// order. Runs after windowEventsSystem within PreUpdate, so events recorded by
// PollEvents are applied in the same frame, before any render.
func resizeSystem(state *WindowState, vp *Viewport, cam *CameraRig, surface *RenderSurface) {
	applyPendingResizes(state, vp, cam, surface)
}

func applyPendingResizes(state *WindowState, vp *Viewport, cam *CameraRig, surface SurfaceResizer) {
	for _, size := range state.DrainPendingResizes() {
		width, height := size[0], size[1]
		state.WindowWidth = width
		state.WindowHeight = height
		ApplyResize(vp, cam, surface, float32(width), float32(height), state.ContentScale())
	}
}

func renderSystem(surface *RenderSurface, graph *SceneGraph, cam *CameraRig) {
	surface.RenderFrame(graph, cam)
}
