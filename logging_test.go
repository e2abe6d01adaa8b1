package lumen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyLogger struct {
	debugs []string
	infos  []string
	warns  []string
	errs   []string
}

func (l *spyLogger) DebugEnabled() bool    { return true }
func (l *spyLogger) SetDebug(enabled bool) {}
func (l *spyLogger) Debugf(format string, args ...any) {
	l.debugs = append(l.debugs, fmt.Sprintf(format, args...))
}
func (l *spyLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}
func (l *spyLogger) Warnf(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}
func (l *spyLogger) Errorf(format string, args ...any) {
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

func TestAppLoggerNeverNil(t *testing.T) {
	var nilApp *App
	require.NotNil(t, nilApp.Logger())

	app := NewAppBuilder().Build()
	logger := app.Logger()
	require.NotNil(t, logger)
	logger.Infof("no logger installed, still safe")
}

func TestAppLoggerPrefersInstalled(t *testing.T) {
	app := NewAppBuilder().Build()

	logger := &spyLogger{}
	app.addResources(logger)

	assert.Same(t, logger, app.Logger())
}

func TestGateTransitionLogsOnce(t *testing.T) {
	app := NewAppBuilder().Build()
	logger := &spyLogger{}
	app.addResources(logger)

	app.MarkAssetsLoaded()
	app.MarkAssetsLoaded()

	require.Len(t, logger.infos, 1, "duplicate signals must not log twice")
	assert.Contains(t, logger.infos[0], "assets loaded")
}

func TestGameSceneFlushLogs(t *testing.T) {
	app := NewAppBuilder().
		UseModule(SceneModule{}, GameSceneModule{}).
		Build()
	logger := &spyLogger{}
	app.addResources(logger)

	app.Commands().AttachGameScene(&spyGameScene{})
	app.FlushCommands()
	app.Commands().DetachGameScene()
	app.FlushCommands()

	require.Len(t, logger.debugs, 2)
	assert.Contains(t, logger.debugs[0], "attached")
	assert.Contains(t, logger.debugs[1], "detached")
}

func TestDefaultLoggerDebugToggle(t *testing.T) {
	logger := NewDefaultLogger("test", false)
	assert.False(t, logger.DebugEnabled())

	logger.SetDebug(true)
	assert.True(t, logger.DebugEnabled())
}
