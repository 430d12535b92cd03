package watch

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"beenama/internal/player"
)

type loadedMsg struct{}

type loadFailedMsg struct{ err error }

type stateMsg struct{ status player.Status }

type positionMsg struct{ millis int64 }

type durationMsg struct{ millis int64 }

type playbackErrMsg struct{ err error }

type subscriptionClosedMsg struct{}

type subtitleLoadedMsg struct{ trackID string }

type controlsTimerMsg struct{ gen uint64 }

type qualitySwappedMsg struct{ err error }

type seekDoneMsg struct{}

// loadCmd opens the stream off the UI goroutine and starts playback.
func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.ctrl.Load(m.opts.Stream.URL, m.opts.StartMillis); err != nil {
			return loadFailedMsg{err: err}
		}
		m.ctrl.Play()
		return loadedMsg{}
	}
}

// watchEvents forwards one playback event into the program. Update
// re-issues it after every delivery.
func (m *Model) watchEvents() tea.Cmd {
	sub := m.ctrl.Subscription()
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return stateMsg{status: e.Status}
		case e := <-sub.PositionChanged:
			return positionMsg{millis: e.PositionMillis}
		case e := <-sub.DurationChanged:
			return durationMsg{millis: e.DurationMillis}
		case e := <-sub.Error:
			return playbackErrMsg{err: e.Err}
		case <-sub.Done:
			return subscriptionClosedMsg{}
		}
	}
}

func (m *Model) watchSubtitleLoads() tea.Cmd {
	return func() tea.Msg {
		trackID, ok := <-m.subLoaded
		if !ok {
			return nil
		}
		return subtitleLoadedMsg{trackID: trackID}
	}
}

// seekCmd issues a relative seek off the UI goroutine. Seeking on an
// engine is an IPC round trip, so it must not run inside Update.
func (m *Model) seekCmd(deltaMillis int64) tea.Cmd {
	return func() tea.Msg {
		m.ctrl.SeekBy(deltaMillis)
		return seekDoneMsg{}
	}
}

// armHideCmd shows the controls and schedules the auto-hide tick for
// the countdown generation current at arm time.
func (m *Model) armHideCmd() tea.Cmd {
	m.vis.Show()
	gen := m.vis.Generation()
	return tea.Tick(player.DefaultHideDelay, func(time.Time) tea.Msg {
		return controlsTimerMsg{gen: gen}
	})
}

// swapQualityCmd reloads the stream at the selected variant.
func (m *Model) swapQualityCmd(id string) tea.Cmd {
	var url, label string
	for _, v := range m.opts.Stream.Qualities {
		if v.ID == id {
			url, label = v.URL, v.Label
			break
		}
	}
	if url == "" {
		return nil
	}
	m.ctrl.SetQuality(label)
	return func() tea.Msg {
		return qualitySwappedMsg{err: m.ctrl.SwapSource(url)}
	}
}
