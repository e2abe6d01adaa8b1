package lumen

import (
	"fmt"
	"slices"
)

type Stage struct {
	Name string
}

// The default stage order is the per-frame contract. Ambient systems (clock,
// diagnostics spans, event polling) run in every frame; simulation and render
// systems are gated on the loading gate and sit in Update and later stages.
var (
	Prelude    = Stage{Name: "Prelude"}
	PreUpdate  = Stage{Name: "PreUpdate"}
	Update     = Stage{Name: "Update"}
	PostUpdate = Stage{Name: "PostUpdate"}
	PreRender  = Stage{Name: "PreRender"}
	Render     = Stage{Name: "Render"}
	PostRender = Stage{Name: "PostRender"}
	Finale     = Stage{Name: "Finale"}
)

func (app *App) useDefaultStages() {
	for _, stage := range []Stage{Prelude, PreUpdate, Update, PostUpdate, PreRender, Render, PostRender, Finale} {
		app.stages = append(app.stages, stage)
		app.always[stage.Name] = make([]systemFn, 0)
		app.gated[stage.Name] = make([]systemFn, 0)
	}
}

type systemScheduleBuilder struct {
	inStage   Stage
	runAlways bool
	system    systemFn
}

// System starts a schedule entry. Defaults: Update stage, gated on the
// loading gate. Ambient systems opt out with RunAlways.
func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:    system,
		inStage:   Update,
		runAlways: false,
	}
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:    sched.system,
		inStage:   s,
		runAlways: sched.runAlways,
	}
}

// RunAlways schedules the system in every frame, before the gate check.
func (sched systemScheduleBuilder) RunAlways() systemScheduleBuilder {
	return systemScheduleBuilder{
		system:    sched.system,
		inStage:   sched.inStage,
		runAlways: true,
	}
}

// WhenReady is the explicit form of the default gating.
func (sched systemScheduleBuilder) WhenReady() systemScheduleBuilder {
	return systemScheduleBuilder{
		system:    sched.system,
		inStage:   sched.inStage,
		runAlways: false,
	}
}

func (app *App) UseSystem(system systemScheduleBuilder) *App {
	name := system.inStage.Name
	if system.runAlways {
		if _, ok := app.always[name]; ok {
			app.always[name] = append(app.always[name], system.system)
			return app
		}
	} else {
		if _, ok := app.gated[name]; ok {
			app.gated[name] = append(app.gated[name], system.system)
			return app
		}
	}
	panic(fmt.Sprintf("Stage %v doesn't exist", name))
}

type stagePosition int

const (
	stageBefore stagePosition = iota
	stageAfter
)

type stagePositionBuilder struct {
	position stagePosition
	target   Stage
}

func BeforeStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageBefore,
		target:   s,
	}
}

func AfterStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageAfter,
		target:   s,
	}
}

// UseStage inserts a custom stage relative to an existing one.
func (app *App) UseStage(stage Stage, where stagePositionBuilder) *App {
	var stageIdx int = -1
	for i, s := range app.stages {
		if s.Name == where.target.Name {
			stageIdx = i
			break
		}
	}
	if -1 == stageIdx {
		panic(fmt.Sprintf("Stage %v not found", where.target.Name))
	}

	var insertAt int
	if stageBefore == where.position {
		insertAt = stageIdx
	} else {
		insertAt = stageIdx + 1
	}

	app.stages = slices.Insert(app.stages, insertAt, stage)
	app.always[stage.Name] = make([]systemFn, 0)
	app.gated[stage.Name] = make([]systemFn, 0)

	return app
}
