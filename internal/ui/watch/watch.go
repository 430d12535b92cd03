// Package watch is the in-app player screen: a bubbletea program
// wrapping the playback core with transport controls, a settings
// menu, subtitle rendering, and resume-point reporting.
package watch

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"beenama/internal/log"
	"beenama/internal/media"
	"beenama/internal/player"
)

// Options configures a watch session.
type Options struct {
	Stream      *media.Stream
	Title       string
	StartMillis int64

	// Engine defaults to mpv when nil.
	Engine player.Engine

	// OnResume receives the final position when the session ends.
	OnResume func(positionMillis, durationMillis int64)
}

// Model is the bubbletea model for the player screen.
type Model struct {
	opts Options

	ctrl  *player.Controller
	vis   *player.Visibility
	menu  *player.Menu
	style *player.CaptionStyle
	subs  *player.SubtitleManager
	fs    *player.FullscreenCoordinator

	progress progress.Model
	status   player.Status
	cueLine  string

	width      int
	height     int
	menuCursor int

	subLoaded chan string

	pendingQualityID string
	loadErr          error
	finished         bool
}

// noopPlatform stands in when the engine offers no display surface.
type noopPlatform struct{}

func (noopPlatform) SetFullscreen(bool) error               { return nil }
func (noopPlatform) LockOrientation(player.Orientation) error { return nil }

// New builds the player screen around a resolved stream.
func New(opts Options) *Model {
	engine := opts.Engine
	if engine == nil {
		engine = player.NewMPV()
	}

	style := player.DefaultCaptionStyle()
	m := &Model{
		opts:      opts,
		ctrl:      player.NewController(engine),
		style:     &style,
		progress:  progress.New(progress.WithDefaultGradient()),
		subLoaded: make(chan string, 4),
	}

	m.vis = player.NewVisibility(0, nil) // countdown driven by tea ticks
	m.subs = player.NewSubtitleManager(&style, func(trackID string) {
		m.subLoaded <- trackID
	})
	m.menu = player.NewMenu(m.ctrl, &style, m.vis, m.selectQuality, m.selectSubtitle)

	var platform player.Platform = noopPlatform{}
	if p, ok := engine.(player.Platform); ok {
		platform = p
	}
	m.fs = player.NewFullscreenCoordinator(platform)

	m.status = m.ctrl.Status()
	return m
}

// Run plays the stream and blocks until the session ends.
func Run(opts Options) error {
	log.Discard()
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("player screen: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadCmd(),
		m.watchEvents(),
		m.watchSubtitleLoads(),
		m.armHideCmd(),
	)
}

// selectQuality is the menu's quality hook. The swap itself blocks,
// so it runs as a command picked up on the next Update.
func (m *Model) selectQuality(id string) {
	m.pendingQualityID = id
}

// selectSubtitle is the menu's subtitle hook. "" turns subtitles off.
func (m *Model) selectSubtitle(id string) {
	if id == "" {
		m.subs.Off()
		m.ctrl.SetSubtitleTrack("")
		m.cueLine = ""
		return
	}
	for _, track := range m.opts.Stream.Subtitles {
		if track.ID == id {
			m.subs.Select(track)
			m.ctrl.SetSubtitleTrack(id)
			return
		}
	}
}

func (m *Model) finish() tea.Cmd {
	if m.finished {
		return tea.Quit
	}
	m.finished = true
	st := m.ctrl.Status()
	if m.opts.OnResume != nil {
		m.opts.OnResume(st.PositionMillis, st.DurationMillis)
	}
	m.vis.Close()
	m.fs.Close()
	m.ctrl.Close()
	return tea.Quit
}
