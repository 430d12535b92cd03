package player

import "sync"

// MockEngine is a scripted Engine for tests. Error fields fail the
// corresponding call; Emit helpers drive the registered callbacks.
type MockEngine struct {
	mu sync.Mutex

	OpenDuration int64
	OpenErr      error
	PlayErr      error
	PauseErr     error
	SeekErr      error
	VolumeErr    error
	RateErr      error

	Opened   bool
	OpenURL  string
	OpenAt   int64
	Playing  bool
	Closed   bool
	Seeks    []int64
	Volumes  []float64
	Rates    []float64
	position int64

	onPosition func(int64)
	onEnded    func()
	onError    func(error)
}

var _ Engine = (*MockEngine)(nil)

func (m *MockEngine) Open(url string, startMillis int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OpenErr != nil {
		return 0, m.OpenErr
	}
	m.Opened = true
	m.OpenURL = url
	m.OpenAt = startMillis
	m.position = startMillis
	return m.OpenDuration, nil
}

func (m *MockEngine) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PlayErr != nil {
		return m.PlayErr
	}
	m.Playing = true
	return nil
}

func (m *MockEngine) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PauseErr != nil {
		return m.PauseErr
	}
	m.Playing = false
	return nil
}

func (m *MockEngine) SeekTo(millis int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SeekErr != nil {
		return m.SeekErr
	}
	m.Seeks = append(m.Seeks, millis)
	m.position = millis
	return nil
}

func (m *MockEngine) SetVolume(v float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.VolumeErr != nil {
		return m.VolumeErr
	}
	m.Volumes = append(m.Volumes, v)
	return nil
}

func (m *MockEngine) SetRate(r float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RateErr != nil {
		return m.RateErr
	}
	m.Rates = append(m.Rates, r)
	return nil
}

func (m *MockEngine) Position() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *MockEngine) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

func (m *MockEngine) OnPosition(fn func(int64)) { m.onPosition = fn }
func (m *MockEngine) OnEnded(fn func())         { m.onEnded = fn }
func (m *MockEngine) OnError(fn func(error))    { m.onError = fn }

// EmitPosition simulates a position update from the backend.
func (m *MockEngine) EmitPosition(millis int64) {
	m.mu.Lock()
	m.position = millis
	fn := m.onPosition
	m.mu.Unlock()
	if fn != nil {
		fn(millis)
	}
}

// EmitEnded simulates end of media.
func (m *MockEngine) EmitEnded() {
	if m.onEnded != nil {
		m.onEnded()
	}
}

// EmitError simulates a mid-playback backend failure.
func (m *MockEngine) EmitError(err error) {
	if m.onError != nil {
		m.onError(err)
	}
}
