package player

import (
	"fmt"
	"sync"
)

// DefaultSkipMillis is the jump applied by SeekBack/SeekForward.
const DefaultSkipMillis = 10_000

// LoadError reports a failure to open a source. The controller
// returns to Idle so the caller can retry with a different source.
type LoadError struct {
	URL string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.URL, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SeekError reports a failed seek. Playback continues from the last
// known position.
type SeekError struct {
	TargetMillis int64
	Err          error
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("seeking to %dms: %v", e.TargetMillis, e.Err)
}

func (e *SeekError) Unwrap() error { return e.Err }

// Controller owns the playback status and is its sole mutator. All
// engine access goes through it, and observers learn about changes
// through the Subscription.
type Controller struct {
	mu     sync.Mutex
	engine Engine
	sub    *Subscription
	status Status

	restoreVolume float64 // volume to restore on unmute
	pendingRate   float64 // rate requested during Loading, applied on Ready
}

// NewController wires the controller to an engine. The engine's
// callbacks are claimed by the controller.
func NewController(engine Engine) *Controller {
	c := &Controller{
		engine: engine,
		sub:    newSubscription(),
		status: Status{
			State:  Idle,
			Volume: 1.0,
			Rate:   1.0,
		},
		restoreVolume: 1.0,
	}
	engine.OnPosition(c.handlePosition)
	engine.OnEnded(c.handleEnded)
	engine.OnError(c.handleError)
	return c
}

// Subscription returns the controller's event channels.
func (c *Controller) Subscription() *Subscription {
	return c.sub
}

// Status returns a snapshot of the current playback state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Load opens a source, optionally positioned at startMillis. Only
// valid from Idle, Ended, or Failed. The first position event after a
// successful load reports startMillis.
func (c *Controller) Load(url string, startMillis int64) error {
	c.mu.Lock()
	switch c.status.State {
	case Idle, Ended, Failed:
	default:
		c.mu.Unlock()
		return fmt.Errorf("cannot load while %s", c.status.State)
	}
	if startMillis < 0 {
		startMillis = 0
	}
	c.status.State = Loading
	c.status.Playing = false
	c.status.Seeking = false
	c.emitStateLocked()
	c.mu.Unlock()

	duration, err := c.engine.Open(url, startMillis)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		lerr := &LoadError{URL: url, Err: err}
		c.status.State = Idle
		c.emitStateLocked()
		c.sub.sendError(lerr)
		return lerr
	}

	c.status.DurationMillis = duration
	c.sub.sendDuration(duration)

	if startMillis > duration && duration > 0 {
		startMillis = duration
	}
	c.status.PositionMillis = startMillis
	c.sub.sendPosition(startMillis)

	c.status.State = Ready
	if c.pendingRate > 0 {
		if rerr := c.engine.SetRate(c.pendingRate); rerr == nil {
			c.status.Rate = c.pendingRate
		}
		c.pendingRate = 0
	}
	c.emitStateLocked()
	return nil
}

// SwapSource reloads a different rendition of the current media,
// e.g. after a quality selection, preserving position, rate, and the
// play/pause state. Only valid while Ready.
func (c *Controller) SwapSource(url string) error {
	c.mu.Lock()
	if c.status.State != Ready {
		c.mu.Unlock()
		return fmt.Errorf("cannot swap source while %s", c.status.State)
	}
	resumeAt := c.status.PositionMillis
	wasPlaying := c.status.Playing
	rate := c.status.Rate
	c.status.State = Loading
	c.status.Playing = false
	c.status.Seeking = false
	c.emitStateLocked()
	c.mu.Unlock()

	c.engine.Close()
	duration, err := c.engine.Open(url, resumeAt)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		lerr := &LoadError{URL: url, Err: err}
		c.status.State = Idle
		c.emitStateLocked()
		c.sub.sendError(lerr)
		return lerr
	}

	c.status.DurationMillis = duration
	c.sub.sendDuration(duration)
	if resumeAt > duration && duration > 0 {
		resumeAt = duration
	}
	c.status.PositionMillis = resumeAt
	c.sub.sendPosition(resumeAt)

	c.status.State = Ready
	if rate != 1.0 {
		if rerr := c.engine.SetRate(rate); rerr != nil {
			c.status.Rate = 1.0
		}
	}
	if wasPlaying {
		if perr := c.engine.Play(); perr == nil {
			c.status.Playing = true
		}
	}
	c.emitStateLocked()
	return nil
}

// Play starts playback. Ignored unless Ready, no-op when already
// playing.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.State != Ready || c.status.Playing {
		return nil
	}
	if err := c.engine.Play(); err != nil {
		return err
	}
	c.status.Playing = true
	c.emitStateLocked()
	return nil
}

// Pause pauses playback. Ignored unless Ready, no-op when already
// paused.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.State != Ready || !c.status.Playing {
		return nil
	}
	if err := c.engine.Pause(); err != nil {
		return err
	}
	c.status.Playing = false
	c.emitStateLocked()
	return nil
}

// TogglePlay flips between play and pause.
func (c *Controller) TogglePlay() error {
	if c.Status().Playing {
		return c.Pause()
	}
	return c.Play()
}

// SeekTo jumps to an absolute position, clamped to [0, duration].
// Exactly one position event is emitted on completion. On failure the
// last known position stands.
func (c *Controller) SeekTo(millis int64) error {
	c.mu.Lock()
	if c.status.State != Ready {
		c.mu.Unlock()
		return nil
	}
	if millis < 0 {
		millis = 0
	}
	if millis > c.status.DurationMillis {
		millis = c.status.DurationMillis
	}
	c.status.Seeking = true
	c.emitStateLocked()
	c.mu.Unlock()

	err := c.engine.SeekTo(millis)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.Seeking = false
	if err != nil {
		serr := &SeekError{TargetMillis: millis, Err: err}
		c.emitStateLocked()
		c.sub.sendError(serr)
		return serr
	}
	c.status.PositionMillis = millis
	c.sub.sendPosition(millis)
	c.emitStateLocked()
	return nil
}

// SeekBy jumps relative to the current position.
func (c *Controller) SeekBy(deltaMillis int64) error {
	c.mu.Lock()
	target := c.status.PositionMillis + deltaMillis
	c.mu.Unlock()
	return c.SeekTo(target)
}

// SeekBack skips back by the default amount.
func (c *Controller) SeekBack() error { return c.SeekBy(-DefaultSkipMillis) }

// SeekForward skips forward by the default amount.
func (c *Controller) SeekForward() error { return c.SeekBy(DefaultSkipMillis) }

// SetVolume sets the level in [0, 1]. Zero mutes; any positive level
// unmutes and becomes the restore target.
func (c *Controller) SetVolume(v float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if err := c.engine.SetVolume(v); err != nil {
		return err
	}
	c.status.Volume = v
	c.status.Muted = v == 0
	if v > 0 {
		c.restoreVolume = v
	}
	c.emitStateLocked()
	return nil
}

// SetMuted mutes or unmutes. Muting remembers the current volume;
// unmuting restores it.
func (c *Controller) SetMuted(muted bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if muted == c.status.Muted {
		return nil
	}
	if muted {
		if c.status.Volume > 0 {
			c.restoreVolume = c.status.Volume
		}
		if err := c.engine.SetVolume(0); err != nil {
			return err
		}
		c.status.Volume = 0
		c.status.Muted = true
	} else {
		if err := c.engine.SetVolume(c.restoreVolume); err != nil {
			return err
		}
		c.status.Volume = c.restoreVolume
		c.status.Muted = false
	}
	c.emitStateLocked()
	return nil
}

// ToggleMute flips the mute state.
func (c *Controller) ToggleMute() error {
	return c.SetMuted(!c.Status().Muted)
}

// SetRate sets the playback speed. While Loading the rate is queued
// and applied once the source is Ready.
func (c *Controller) SetRate(r float64) error {
	if r <= 0 {
		return fmt.Errorf("invalid playback rate %v", r)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.State == Loading {
		c.pendingRate = r
		c.status.Rate = r
		c.emitStateLocked()
		return nil
	}
	if err := c.engine.SetRate(r); err != nil {
		return err
	}
	c.status.Rate = r
	c.emitStateLocked()
	return nil
}

// SetQuality records the active quality label. Swapping the stream is
// the host's job; the controller only tracks the selection.
func (c *Controller) SetQuality(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.Quality = label
	c.emitStateLocked()
}

// SetSubtitleTrack records the active subtitle track id ("" for off).
func (c *Controller) SetSubtitleTrack(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.SubtitleTrack = id
	c.emitStateLocked()
}

// Close shuts down the engine and signals subscribers.
func (c *Controller) Close() error {
	err := c.engine.Close()
	c.sub.close()
	return err
}

func (c *Controller) handlePosition(millis int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.State != Ready || c.status.Seeking {
		return
	}
	if millis < 0 {
		millis = 0
	}
	if c.status.DurationMillis > 0 && millis > c.status.DurationMillis {
		millis = c.status.DurationMillis
	}
	c.status.PositionMillis = millis
	c.sub.sendPosition(millis)
}

func (c *Controller) handleEnded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status.State != Ready {
		return
	}
	c.status.State = Ended
	c.status.Playing = false
	c.status.PositionMillis = c.status.DurationMillis
	c.sub.sendPosition(c.status.PositionMillis)
	c.emitStateLocked()
}

func (c *Controller) handleError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status.State = Failed
	c.status.Playing = false
	c.emitStateLocked()
	c.sub.sendError(err)
}

func (c *Controller) emitStateLocked() {
	c.sub.sendState(StateChange{Status: c.status})
}
