package player

// Engine is the platform media backend driven by the Controller.
// Implementations deliver position updates at a cadence of 500ms or
// better through the OnPosition callback.
type Engine interface {
	// Open loads the source and reports its duration in milliseconds.
	// startMillis positions the stream before playback begins.
	Open(url string, startMillis int64) (int64, error)

	Play() error
	Pause() error

	// SeekTo jumps to an absolute position in milliseconds.
	SeekTo(millis int64) error

	// SetVolume takes a level in [0, 1].
	SetVolume(v float64) error

	// SetRate sets the playback speed multiplier.
	SetRate(r float64) error

	// Position reports the last known position in milliseconds.
	Position() int64

	Close() error

	// Callback registration. Each replaces any previous handler and
	// must be called before Open.
	OnPosition(fn func(millis int64))
	OnEnded(fn func())
	OnError(fn func(err error))
}
