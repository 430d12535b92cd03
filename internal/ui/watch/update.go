package watch

import (
	tea "github.com/charmbracelet/bubbletea"

	"beenama/internal/player"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width < 10 {
			m.progress.Width = 10
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loadedMsg:
		m.status = m.ctrl.Status()
		return m, nil

	case loadFailedMsg:
		m.loadErr = msg.err
		return m, nil

	case stateMsg:
		m.status = msg.status
		if msg.status.State == player.Ended {
			return m, m.finish()
		}
		return m, m.watchEvents()

	case positionMsg:
		m.status.PositionMillis = msg.millis
		m.refreshCue()
		return m, m.watchEvents()

	case durationMsg:
		m.status.DurationMillis = msg.millis
		return m, m.watchEvents()

	case playbackErrMsg:
		m.loadErr = msg.err
		return m, m.watchEvents()

	case subscriptionClosedMsg:
		return m, tea.Quit

	case subtitleLoadedMsg:
		m.refreshCue()
		return m, m.watchSubtitleLoads()

	case controlsTimerMsg:
		m.vis.TimerFired(msg.gen)
		return m, nil

	case seekDoneMsg:
		m.status = m.ctrl.Status()
		return m, nil

	case qualitySwappedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
		}
		m.status = m.ctrl.Status()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.IsOpen() {
		return m.handleMenuKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, m.finish()

	case "esc":
		return m, m.finish()

	case " ":
		m.ctrl.TogglePlay()
		return m, m.armHideCmd()

	case "left":
		return m, tea.Batch(m.seekCmd(-player.DefaultSkipMillis), m.armHideCmd())

	case "right":
		return m, tea.Batch(m.seekCmd(player.DefaultSkipMillis), m.armHideCmd())

	case "up":
		m.ctrl.SetVolume(m.status.Volume + 0.05)
		return m, m.armHideCmd()

	case "down":
		m.ctrl.SetVolume(m.status.Volume - 0.05)
		return m, m.armHideCmd()

	case "m":
		m.ctrl.ToggleMute()
		return m, m.armHideCmd()

	case "f":
		m.fs.Toggle()
		return m, m.armHideCmd()

	case "s":
		m.menuCursor = 0
		m.menu.Open()
		return m, nil

	case "c":
		m.menuCursor = 0
		m.menu.Open()
		m.menu.Navigate(player.MenuSubtitles)
		return m, nil

	case "tab":
		m.vis.Toggle()
		if m.vis.Visible() {
			return m, m.armHideCmd()
		}
		return m, nil
	}

	// Any other key counts as activity
	return m, m.armHideCmd()
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, m.finish()

	case "esc":
		m.menuCursor = 0
		m.menu.Back()
		if !m.menu.IsOpen() {
			return m, m.armHideCmd()
		}
		return m, nil

	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil

	case "down", "j":
		if m.menuCursor < len(m.menuItems())-1 {
			m.menuCursor++
		}
		return m, nil

	case "enter":
		return m.selectMenuItem()
	}

	if m.menu.Current() == player.MenuCaptions {
		m.handleCaptionKey(msg.String())
	}
	return m, nil
}

// handleCaptionKey applies the iterative caption adjustments without
// leaving the captions screen.
func (m *Model) handleCaptionKey(key string) {
	style := m.menu.Style()
	switch key {
	case "+", "=":
		style.IncreaseSize()
	case "-", "_":
		style.DecreaseSize()
	case "b":
		style.StepBackgroundOpacity(true)
	case "B":
		style.StepBackgroundOpacity(false)
	case "d":
		style.StepDelay(true)
	case "D":
		style.StepDelay(false)
	case "r":
		style.ResetDelay()
	}
	m.refreshCue()
}

func (m *Model) selectMenuItem() (tea.Model, tea.Cmd) {
	items := m.menuItems()
	if m.menuCursor >= len(items) {
		return m, nil
	}
	item := items[m.menuCursor]

	switch m.menu.Current() {
	case player.MenuMain:
		m.menu.Navigate(item.target)
		m.menuCursor = 0

	case player.MenuSpeed:
		m.menu.SelectSpeed(item.rate)
		m.menuCursor = 0

	case player.MenuQuality:
		m.menu.SelectQuality(item.id)
		m.menuCursor = 0
		if m.pendingQualityID != "" {
			id := m.pendingQualityID
			m.pendingQualityID = ""
			return m, m.swapQualityCmd(id)
		}

	case player.MenuSubtitles:
		m.menu.SelectSubtitle(item.id)
		m.menuCursor = 0
	}

	return m, nil
}

func (m *Model) refreshCue() {
	if m.subs.Current() == "" {
		m.cueLine = ""
		return
	}
	line, ok := m.subs.Line(m.status.PositionMillis)
	if !ok {
		m.cueLine = ""
		return
	}
	m.cueLine = line
}
