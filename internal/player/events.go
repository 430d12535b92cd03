package player

const eventBufferSize = 16

// StateChange reports a new status snapshot after any state-affecting
// transition.
type StateChange struct {
	Status Status
}

// PositionChange reports playback progress. Positions are
// non-decreasing between seeks.
type PositionChange struct {
	PositionMillis int64
}

// DurationChange reports the media duration once known.
type DurationChange struct {
	DurationMillis int64
}

// ErrorEvent surfaces a playback error.
type ErrorEvent struct {
	Err error
}

// Subscription provides event channels for a playback observer.
// Sends are non-blocking; a slow consumer drops events rather than
// stalling the controller.
type Subscription struct {
	StateChanged    <-chan StateChange
	PositionChanged <-chan PositionChange
	DurationChanged <-chan DurationChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	stateCh    chan StateChange
	positionCh chan PositionChange
	durationCh chan DurationChange
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		durationCh: make(chan DurationChange, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.PositionChanged = s.positionCh
	s.DurationChanged = s.durationCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
	}
}

func (s *Subscription) sendPosition(millis int64) {
	select {
	case s.positionCh <- PositionChange{PositionMillis: millis}:
	default:
	}
}

func (s *Subscription) sendDuration(millis int64) {
	select {
	case s.durationCh <- DurationChange{DurationMillis: millis}:
	default:
	}
}

func (s *Subscription) sendError(err error) {
	select {
	case s.errorCh <- ErrorEvent{Err: err}:
	default:
	}
}
