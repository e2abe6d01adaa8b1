package lumen

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// App drives the frame loop. Subsystems are installed as Modules, share state
// through the resource map and contribute systems to the staged schedule.
// Systems registered as gated only run once the asset gate has opened.
type App struct {
	modules   []Module
	stages    []Stage
	always    map[string][]systemFn
	gated     map[string][]systemFn
	resources map[reflect.Type]any
	lifecycle *Lifecycle
	stopping  bool

	// Command buffering
	pendingAttach []GameScene
	pendingDetach bool
}

type Module interface {
	Install(app *App, cmd *Commands)
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// Lifecycle exposes the loading gate so modules can register on-ready hooks
// at install time.
func (app *App) Lifecycle() *Lifecycle {
	return app.lifecycle
}

// MarkAssetsLoaded is the external "assets loaded" signal. One-way: the gate
// opens once and never closes again for the lifetime of the process.
func (app *App) MarkAssetsLoaded() {
	if !app.lifecycle.Ready() {
		app.Logger().Infof("assets loaded, opening gate")
	}
	app.lifecycle.MarkReady()
}

// Stop requests loop termination. Checked at the top of each frame, so the
// current frame always completes in full.
func (app *App) Stop() {
	app.stopping = true
}

// Run hands control to the frame loop and only returns once Stop has been
// requested (usually by the window close system). Frame cadence comes from
// the surface present (vsync); with no surface installed the loop free-runs.
func (app *App) Run() {
	for !app.stopping {
		app.step()
	}
}

// step executes one full frame body. The gate is latched once at the top so a
// MarkAssetsLoaded arriving mid-frame only takes effect on the next frame.
func (app *App) step() {
	ready := app.lifecycle.Ready()

	for _, stage := range app.stages {
		for _, system := range app.always[stage.Name] {
			app.callSystem(system)
		}
		if ready {
			for _, system := range app.gated[stage.Name] {
				app.callSystem(system)
			}
		}
		app.FlushCommands()
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// ResourceOf fetches a previously added resource by type. Panics if the
// resource was never installed; construction ordering bugs should fail loudly.
func ResourceOf[T any](app *App) *T {
	t := reflect.TypeOf((*T)(nil)).Elem()
	resource, ok := app.resources[t]
	if !ok {
		panic(fmt.Sprintf("%s is not in resources", t))
	}
	return resource.(*T)
}

func (app *App) callSystem(system systemFn) {
	app.callSystemInternal(system)
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystemInternal(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}

// FlushCommands applies buffered game-scene slot mutations. Runs at stage
// boundaries so a scene attached from inside a system never receives a
// partial frame.
func (app *App) FlushCommands() {
	if len(app.pendingAttach) == 0 && !app.pendingDetach {
		return
	}

	slot := ResourceOf[GameSceneSlot](app)
	logger := app.Logger()

	// Detach first so an attach buffered in the same stage wins.
	if app.pendingDetach {
		slot.clear()
		app.pendingDetach = false
		logger.Debugf("game scene detached")
	}

	for _, scene := range app.pendingAttach {
		slot.set(scene)
		logger.Debugf("game scene attached: %T", scene)
	}
	app.pendingAttach = app.pendingAttach[:0]
}
