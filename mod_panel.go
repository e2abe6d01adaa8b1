package lumen

import (
	"fmt"
)

// PanelSection is one titled block of label/value rows. Post-load sections
// stay hidden until the loading gate opens.
type PanelSection struct {
	Title    string
	Rows     [][2]string
	PostLoad bool
	Visible  bool
}

func (s *PanelSection) SetRow(label, value string) {
	for i := range s.Rows {
		if s.Rows[i][0] == label {
			s.Rows[i][1] = value
			return
		}
	}
	s.Rows = append(s.Rows, [2]string{label, value})
}

// PanelBinding is the read-only reference snapshot handed to the panel once
// after initialization. It is never re-validated per frame.
type PanelBinding struct {
	Controls          *OrbitControls
	Diagnostics       *Diagnostics
	Physics           *PhysicsState
	AxesHelper        *AxesHelper
	Ambient           *AmbientLight
	Directional       *DirectionalLight
	DirectionalHelper *DirectionalLightHelper
}

// ControlPanel is the inspection/tuning surface. The shell is built first
// with no data bound; Bind installs the snapshot exactly once after all
// subsystems exist.
type ControlPanel struct {
	sections []*PanelSection
	binding  *PanelBinding
	revealed bool
}

func NewControlPanel() *ControlPanel {
	return &ControlPanel{}
}

func (p *ControlPanel) AddSection(section *PanelSection) *PanelSection {
	section.Visible = !section.PostLoad
	p.sections = append(p.sections, section)
	return section
}

func (p *ControlPanel) Sections() []*PanelSection {
	return p.sections
}

func (p *ControlPanel) Section(title string) *PanelSection {
	for _, section := range p.sections {
		if section.Title == title {
			return section
		}
	}
	return nil
}

func (p *ControlPanel) Bind(binding PanelBinding) {
	if p.binding != nil {
		panic("control panel is already bound")
	}
	p.binding = &binding
}

func (p *ControlPanel) Binding() *PanelBinding {
	return p.binding
}

// RevealPostLoadSections makes the post-load sections visible. Called by the
// loading gate transition; idempotent.
func (p *ControlPanel) RevealPostLoadSections() {
	if p.revealed {
		return
	}
	p.revealed = true
	for _, section := range p.sections {
		if section.PostLoad {
			section.Visible = true
		}
	}
}

func (p *ControlPanel) Revealed() bool {
	return p.revealed
}

// PanelModule builds the panel shell. Installed first; the binding arrives
// via PanelBindModule at the end of the bootstrap sequence.
type PanelModule struct{}

func (mod PanelModule) Install(app *App, cmd *Commands) {
	panel := NewControlPanel()
	panel.AddSection(&PanelSection{Title: "Scene"})
	panel.AddSection(&PanelSection{Title: "Camera", PostLoad: true})
	panel.AddSection(&PanelSection{Title: "Physics", PostLoad: true})
	panel.AddSection(&PanelSection{Title: "Lighting", PostLoad: true})
	panel.AddSection(&PanelSection{Title: "Diagnostics", PostLoad: true})

	cmd.AddResources(panel)

	app.Lifecycle().OnReady(func() {
		panel.RevealPostLoadSections()
	})

	app.UseSystem(
		System(panelRefreshSystem).
			InStage(PostRender).
			RunAlways(),
	)
}

// PanelBindModule assembles the reference snapshot. Installed last, after
// every referenced subsystem has been constructed.
type PanelBindModule struct{}

func (mod PanelBindModule) Install(app *App, cmd *Commands) {
	panel := ResourceOf[ControlPanel](app)
	panel.Bind(PanelBinding{
		Controls:          ResourceOf[OrbitControls](app),
		Diagnostics:       ResourceOf[Diagnostics](app),
		Physics:           ResourceOf[PhysicsState](app),
		AxesHelper:        ResourceOf[AxesHelper](app),
		Ambient:           ResourceOf[AmbientLight](app),
		Directional:       ResourceOf[DirectionalLight](app),
		DirectionalHelper: ResourceOf[DirectionalLightHelper](app),
	})
}

// panelRefreshSystem rewrites the visible section rows from the bound
// references. Display only; not part of the timing-critical path.
func panelRefreshSystem(panel *ControlPanel) {
	binding := panel.Binding()
	if binding == nil {
		return
	}

	if section := panel.Section("Camera"); section != nil && section.Visible {
		controls := binding.Controls
		section.SetRow("enabled", fmt.Sprintf("%v", controls.Enabled))
		section.SetRow("yaw", fmt.Sprintf("%.2f", controls.Yaw))
		section.SetRow("pitch", fmt.Sprintf("%.2f", controls.Pitch))
		section.SetRow("distance", fmt.Sprintf("%.2f", controls.Distance))
	}
	if section := panel.Section("Physics"); section != nil && section.Visible {
		if world, ok := binding.Physics.Sim.(*PhysicsWorld); ok {
			section.SetRow("bodies", fmt.Sprintf("%d", len(world.Bodies())))
			section.SetRow("gravity", fmt.Sprintf("%.2f", world.Gravity.Y()))
		}
	}
	if section := panel.Section("Lighting"); section != nil && section.Visible {
		section.SetRow("ambient", fmt.Sprintf("%.2f", binding.Ambient.Intensity))
		section.SetRow("directional", fmt.Sprintf("%.2f", binding.Directional.Intensity))
		section.SetRow("shadows", fmt.Sprintf("%v", binding.Directional.CastShadow))
	}
	if section := panel.Section("Diagnostics"); section != nil && section.Visible {
		diag := binding.Diagnostics
		if diag.Visible() {
			section.SetRow("frame", diag.FrameTime.String())
			section.SetRow("fps", fmt.Sprintf("%.0f", diag.FPS()))
		}
	}
}
