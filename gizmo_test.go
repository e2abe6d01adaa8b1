package lumen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxesHelperLines(t *testing.T) {
	helper := NewAxesHelper(2.5)

	require.NotNil(t, helper.Node())
	assert.Equal(t, "axes-helper", helper.Node().Name)

	origin := mgl32.Vec3{0, 0, 0}
	assert.Equal(t, origin, helper.Lines[0].Start)
	assert.Equal(t, mgl32.Vec3{2.5, 0, 0}, helper.Lines[0].End)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, helper.Lines[0].Color)
	assert.Equal(t, mgl32.Vec3{0, 2.5, 0}, helper.Lines[1].End)
	assert.Equal(t, [4]float32{0, 1, 0, 1}, helper.Lines[1].Color)
	assert.Equal(t, mgl32.Vec3{0, 0, 2.5}, helper.Lines[2].End)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, helper.Lines[2].Color)
}

func TestAxesHelperDefaultsSize(t *testing.T) {
	helper := NewAxesHelper(0)
	assert.Equal(t, float32(1), helper.Size)
}

func TestAxesHelperVisibility(t *testing.T) {
	helper := NewAxesHelper(1)
	assert.True(t, helper.Node().Visible)

	helper.SetVisible(false)
	assert.False(t, helper.Node().Visible)
}

func TestDirectionalLightHelperLine(t *testing.T) {
	light := &DirectionalLight{Position: mgl32.Vec3{5, 10, 7.5}}
	helper := NewDirectionalLightHelper(light)

	assert.Equal(t, light.Position, helper.Line.Start)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, helper.Line.End)
	assert.Equal(t, [4]float32{1, 1, 0, 1}, helper.Line.Color)
}
