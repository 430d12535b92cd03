package player

import (
	"sync"

	"beenama/internal/log"
)

// Orientation is the screen orientation requested from the platform.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Platform abstracts the display surface the player presents on.
type Platform interface {
	SetFullscreen(active bool) error
	LockOrientation(o Orientation) error
}

// FullscreenCoordinator keeps the player's fullscreen flag and the
// platform in sync. Platform failures are logged but never block the
// flag from flipping: a player stuck half-toggled is worse than a
// missed orientation lock.
type FullscreenCoordinator struct {
	mu         sync.Mutex
	platform   Platform
	fullscreen bool
}

func NewFullscreenCoordinator(platform Platform) *FullscreenCoordinator {
	return &FullscreenCoordinator{platform: platform}
}

// IsFullscreen reports the current mode.
func (c *FullscreenCoordinator) IsFullscreen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fullscreen
}

// Enter switches to fullscreen landscape.
func (c *FullscreenCoordinator) Enter() {
	c.apply(true)
}

// Exit returns to windowed portrait.
func (c *FullscreenCoordinator) Exit() {
	c.apply(false)
}

// Toggle flips the mode.
func (c *FullscreenCoordinator) Toggle() {
	c.mu.Lock()
	target := !c.fullscreen
	c.mu.Unlock()
	c.apply(target)
}

// HandleExternalChange resyncs after the platform changed mode on its
// own, e.g. a system gesture or window manager action.
func (c *FullscreenCoordinator) HandleExternalChange(active bool) {
	c.mu.Lock()
	if c.fullscreen == active {
		c.mu.Unlock()
		return
	}
	c.fullscreen = active
	c.mu.Unlock()

	orientation := Portrait
	if active {
		orientation = Landscape
	}
	if err := c.platform.LockOrientation(orientation); err != nil {
		log.Warnf("fullscreen: orientation lock failed: %v", err)
	}
}

// Close tears the player down, unconditionally restoring windowed
// portrait regardless of the current mode.
func (c *FullscreenCoordinator) Close() {
	c.mu.Lock()
	c.fullscreen = false
	c.mu.Unlock()

	if err := c.platform.SetFullscreen(false); err != nil {
		log.Warnf("fullscreen: exit on teardown failed: %v", err)
	}
	if err := c.platform.LockOrientation(Portrait); err != nil {
		log.Warnf("fullscreen: portrait restore on teardown failed: %v", err)
	}
}

func (c *FullscreenCoordinator) apply(active bool) {
	c.mu.Lock()
	if c.fullscreen == active {
		c.mu.Unlock()
		return
	}
	c.fullscreen = active
	c.mu.Unlock()

	if err := c.platform.SetFullscreen(active); err != nil {
		log.Warnf("fullscreen: platform toggle failed: %v", err)
	}
	orientation := Portrait
	if active {
		orientation = Landscape
	}
	if err := c.platform.LockOrientation(orientation); err != nil {
		log.Warnf("fullscreen: orientation lock failed: %v", err)
	}
}
