// Package player implements the in-app playback core: an engine
// abstraction over the media backend, a controller that owns playback
// state, and the supporting pieces of the player surface (controls
// visibility, settings menu, caption styling, subtitle selection,
// fullscreen coordination).
package player

// State is the lifecycle phase of a playback session.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Ended
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Ended:
		return "ended"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is a snapshot of the controller's playback state. Position
// stays within [0, duration] once the duration is known, and Rate is
// always positive.
type Status struct {
	State          State
	Playing        bool
	Seeking        bool
	PositionMillis int64
	DurationMillis int64
	Volume         float64
	Muted          bool
	Rate           float64
	Quality        string
	SubtitleTrack  string // "" means subtitles off
}
