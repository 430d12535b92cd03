package player

import (
	"sync"

	"beenama/internal/log"
	"beenama/internal/media"
	"beenama/internal/subtitle"
	"beenama/internal/vtt"
)

// TrackFetcher fetches a subtitle payload for a track.
type TrackFetcher interface {
	Fetch(track media.SubtitleTrack) (string, error)
}

// SubtitleManager loads subtitle tracks asynchronously and answers
// which cue is active at a given position. A fetch that completes
// after the selection has moved on is discarded, so a slow download
// can never clobber a newer choice.
type SubtitleManager struct {
	mu      sync.Mutex
	fetcher TrackFetcher
	style   *CaptionStyle
	current string // selected track id, "" = off
	cues    []vtt.Cue

	// onLoaded fires after cues for the still-current track are in
	// place. Hosts use it to refresh the display.
	onLoaded func(trackID string)
}

// NewSubtitleManager creates a manager with the default fetcher.
// onLoaded may be nil.
func NewSubtitleManager(style *CaptionStyle, onLoaded func(trackID string)) *SubtitleManager {
	return &SubtitleManager{
		fetcher:  subtitle.NewFetcher(),
		style:    style,
		onLoaded: onLoaded,
	}
}

// Select starts loading a track. The display stays on the previous
// cues until the new payload lands; a failed fetch is logged and
// leaves the display empty.
func (m *SubtitleManager) Select(track media.SubtitleTrack) {
	m.mu.Lock()
	m.current = track.ID
	m.cues = nil
	m.mu.Unlock()

	go func() {
		payload, err := m.fetcher.Fetch(track)

		m.mu.Lock()
		if m.current != track.ID {
			m.mu.Unlock()
			log.Debugf("subtitles: discarding stale fetch for track %s", track.ID)
			return
		}
		if err != nil {
			m.mu.Unlock()
			log.Warnf("subtitles: failed to fetch track %s: %v", track.ID, err)
			return
		}
		m.cues = vtt.Parse(payload)
		m.mu.Unlock()

		if m.onLoaded != nil {
			m.onLoaded(track.ID)
		}
	}()
}

// Off disables subtitles and drops the loaded cues.
func (m *SubtitleManager) Off() {
	m.mu.Lock()
	m.current = ""
	m.cues = nil
	m.mu.Unlock()
}

// Current returns the selected track id, "" when off.
func (m *SubtitleManager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Line returns the caption text active at the playback position,
// honoring the configured subtitle delay.
func (m *SubtitleManager) Line(positionMillis int64) (string, bool) {
	m.mu.Lock()
	cues := m.cues
	delay := 0.0
	if m.style != nil {
		delay = m.style.DelaySeconds
	}
	m.mu.Unlock()

	cue, ok := vtt.ActiveCue(float64(positionMillis)/1000, delay, cues)
	if !ok {
		return "", false
	}
	return cue.Text, true
}
