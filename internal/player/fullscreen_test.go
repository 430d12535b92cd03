package player

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockPlatform struct {
	FullscreenErr  error
	OrientationErr error

	fullscreenCalls  []bool
	orientationCalls []Orientation
}

func (p *mockPlatform) SetFullscreen(active bool) error {
	p.fullscreenCalls = append(p.fullscreenCalls, active)
	return p.FullscreenErr
}

func (p *mockPlatform) LockOrientation(o Orientation) error {
	p.orientationCalls = append(p.orientationCalls, o)
	return p.OrientationErr
}

func TestEnterExitFullscreen(t *testing.T) {
	p := &mockPlatform{}
	c := NewFullscreenCoordinator(p)

	c.Enter()
	assert.True(t, c.IsFullscreen())
	assert.Equal(t, []bool{true}, p.fullscreenCalls)
	assert.Equal(t, []Orientation{Landscape}, p.orientationCalls)

	c.Exit()
	assert.False(t, c.IsFullscreen())
	assert.Equal(t, []bool{true, false}, p.fullscreenCalls)
	assert.Equal(t, []Orientation{Landscape, Portrait}, p.orientationCalls)
}

func TestEnterIdempotent(t *testing.T) {
	p := &mockPlatform{}
	c := NewFullscreenCoordinator(p)

	c.Enter()
	c.Enter()
	assert.Len(t, p.fullscreenCalls, 1, "repeated enter is a no-op")
}

func TestFullscreenFailOpen(t *testing.T) {
	p := &mockPlatform{FullscreenErr: errors.New("denied"), OrientationErr: errors.New("locked")}
	c := NewFullscreenCoordinator(p)

	c.Enter()
	assert.True(t, c.IsFullscreen(), "flag flips even when the platform refuses")

	c.Exit()
	assert.False(t, c.IsFullscreen())
}

func TestToggle(t *testing.T) {
	c := NewFullscreenCoordinator(&mockPlatform{})
	c.Toggle()
	assert.True(t, c.IsFullscreen())
	c.Toggle()
	assert.False(t, c.IsFullscreen())
}

func TestExternalChangeResyncs(t *testing.T) {
	p := &mockPlatform{}
	c := NewFullscreenCoordinator(p)

	// The window manager flipped us to fullscreen behind our back
	c.HandleExternalChange(true)
	assert.True(t, c.IsFullscreen())
	assert.Empty(t, p.fullscreenCalls, "resync must not re-toggle the platform")
	assert.Equal(t, []Orientation{Landscape}, p.orientationCalls)

	// Matching state is a no-op
	c.HandleExternalChange(true)
	assert.Len(t, p.orientationCalls, 1)
}

func TestCloseRestoresPortrait(t *testing.T) {
	p := &mockPlatform{}
	c := NewFullscreenCoordinator(p)
	c.Enter()

	c.Close()
	assert.False(t, c.IsFullscreen())
	assert.Equal(t, false, p.fullscreenCalls[len(p.fullscreenCalls)-1])
	assert.Equal(t, Portrait, p.orientationCalls[len(p.orientationCalls)-1])
}

func TestCloseFromWindowedStillRestores(t *testing.T) {
	p := &mockPlatform{}
	c := NewFullscreenCoordinator(p)

	c.Close()
	assert.Equal(t, []bool{false}, p.fullscreenCalls, "teardown always exits fullscreen")
	assert.Equal(t, []Orientation{Portrait}, p.orientationCalls)
}
