package player

import (
	"sync"
	"time"
)

// DefaultHideDelay is the quiet period before the controls overlay
// auto-hides.
const DefaultHideDelay = 3 * time.Second

// Visibility governs the controls overlay. Every Show restarts the
// auto-hide countdown; stale timers are invalidated by a generation
// counter so a fired timer from a cancelled countdown never hides the
// overlay. An open settings menu blocks hiding entirely.
type Visibility struct {
	mu       sync.Mutex
	visible  bool
	gen      uint64
	menuOpen bool
	delay    time.Duration
	timer    *time.Timer
	onChange func(visible bool)
}

// NewVisibility creates the overlay state, initially visible with the
// hide countdown armed. onChange may be nil.
func NewVisibility(delay time.Duration, onChange func(visible bool)) *Visibility {
	v := &Visibility{delay: delay, onChange: onChange}
	v.Show()
	return v
}

// Visible reports whether the overlay is shown.
func (v *Visibility) Visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.visible
}

// Show reveals the overlay and restarts the hide countdown. Repeated
// calls keep pushing the deadline out.
func (v *Visibility) Show() {
	v.mu.Lock()
	changed := !v.visible
	v.visible = true
	v.armLocked()
	v.mu.Unlock()
	if changed {
		v.notify(true)
	}
}

// Hide conceals the overlay immediately and cancels any countdown.
// Blocked while the settings menu is open; the overlay stays pinned
// until the menu closes.
func (v *Visibility) Hide() {
	v.mu.Lock()
	if v.menuOpen {
		v.mu.Unlock()
		return
	}
	changed := v.visible
	v.visible = false
	v.gen++
	v.stopTimerLocked()
	v.mu.Unlock()
	if changed {
		v.notify(false)
	}
}

// Toggle implements the tap contract: hidden becomes shown with a
// fresh countdown, shown becomes hidden.
func (v *Visibility) Toggle() {
	v.mu.Lock()
	visible := v.visible
	v.mu.Unlock()
	if visible {
		v.Hide()
	} else {
		v.Show()
	}
}

// SetMenuOpen gates the countdown on the settings menu. Opening
// cancels the countdown and pins the overlay; closing re-arms it.
func (v *Visibility) SetMenuOpen(open bool) {
	v.mu.Lock()
	v.menuOpen = open
	if open {
		v.gen++
		v.stopTimerLocked()
		changed := !v.visible
		v.visible = true
		v.mu.Unlock()
		if changed {
			v.notify(true)
		}
		return
	}
	v.armLocked()
	v.mu.Unlock()
}

// TimerFired handles a countdown expiry. Fires from superseded
// countdowns carry a stale generation and are ignored.
func (v *Visibility) TimerFired(gen uint64) {
	v.mu.Lock()
	if gen != v.gen || v.menuOpen || !v.visible {
		v.mu.Unlock()
		return
	}
	v.visible = false
	v.mu.Unlock()
	v.notify(false)
}

// Generation returns the current countdown generation. Useful for
// hosts that drive the timer themselves.
func (v *Visibility) Generation() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gen
}

// Close cancels any pending countdown.
func (v *Visibility) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.stopTimerLocked()
}

func (v *Visibility) armLocked() {
	v.gen++
	v.stopTimerLocked()
	if v.menuOpen || v.delay <= 0 {
		return
	}
	gen := v.gen
	v.timer = time.AfterFunc(v.delay, func() {
		v.TimerFired(gen)
	})
}

func (v *Visibility) stopTimerLocked() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}

func (v *Visibility) notify(visible bool) {
	if v.onChange != nil {
		v.onChange(visible)
	}
}
