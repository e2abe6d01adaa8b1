package lumen

// LoadingOverlay is the "still loading" cover attached to the scene graph.
// Visible from construction until the loading gate opens, then hidden for the
// rest of the process lifetime.
type LoadingOverlay struct {
	Message string
	node    *Node
}

func (o *LoadingOverlay) Node() *Node {
	return o.node
}

func (o *LoadingOverlay) Visible() bool {
	return o.node.Visible
}

func (o *LoadingOverlay) Hide() {
	o.node.Visible = false
}

type OverlayModule struct {
	Message string
}

func (mod OverlayModule) Install(app *App, cmd *Commands) {
	message := mod.Message
	if message == "" {
		message = "Loading..."
	}

	overlay := &LoadingOverlay{
		Message: message,
		node:    NewNode("loading-overlay"),
	}
	graph := ResourceOf[SceneGraph](app)
	graph.Root.Attach(overlay.node)

	cmd.AddResources(overlay)

	app.Lifecycle().OnReady(func() {
		overlay.Hide()
	})
}
