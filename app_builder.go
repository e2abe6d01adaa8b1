package lumen

import (
	"reflect"
)

// AppBuilder assembles an App from an ordered module list. Install order is
// the initialization order: modules are installed strictly in the order they
// were registered, and within a stage their systems run in that same order.
// The bootstrap contract therefore lives in one place, the module list.
type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	app := &App{
		resources: make(map[reflect.Type]any),
		always:    make(map[string][]systemFn),
		gated:     make(map[string][]systemFn),
		lifecycle: NewLifecycle(),
	}
	app.useDefaultStages()

	return &AppBuilder{app: app}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// Build installs every registered module in order. Any module that cannot
// construct its subsystem panics; startup is all-or-nothing, there is no
// partial-recovery path.
func (b *AppBuilder) Build() *App {
	app := b.app
	commands := &Commands{app: app}

	app.addResources(app.lifecycle)

	for _, module := range b.modules {
		module.Install(app, commands)
		app.modules = append(app.modules, module)
	}

	return app
}
