package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"beenama/internal/player"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Italic(true)

	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	activeItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// menuItem is one row of the settings menu.
type menuItem struct {
	label  string
	target player.MenuScreen // main screen entries
	rate   float64           // speed screen entries
	id     string            // quality/subtitle screen entries
	active bool
}

func (m *Model) View() string {
	if m.loadErr != nil {
		return errStyle.Render("Playback error: "+m.loadErr.Error()) + dimStyle.Render("\n\nPress q to go back.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.opts.Title))
	b.WriteString("\n\n")

	if m.status.State == player.Loading || m.status.State == player.Idle {
		b.WriteString(dimStyle.Render("Loading stream..."))
		return b.String()
	}

	if m.cueLine != "" {
		b.WriteString(cueStyle.Render(m.cueLine))
	}
	b.WriteString("\n\n")

	if m.menu.IsOpen() {
		b.WriteString(m.viewMenu())
		return b.String()
	}

	if m.vis.Visible() {
		b.WriteString(m.viewControls())
	} else {
		b.WriteString(dimStyle.Render("press tab for controls"))
	}
	return b.String()
}

func (m *Model) viewControls() string {
	var b strings.Builder

	ratio := 0.0
	if m.status.DurationMillis > 0 {
		ratio = float64(m.status.PositionMillis) / float64(m.status.DurationMillis)
	}
	b.WriteString(m.progress.ViewAs(ratio))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s / %s",
		formatMillis(m.status.PositionMillis),
		formatMillis(m.status.DurationMillis))))
	b.WriteString("\n\n")

	state := "playing"
	if !m.status.Playing {
		state = "paused"
	}
	if m.status.State == player.Failed {
		state = "failed"
	}

	parts := []string{state, fmt.Sprintf("%.2fx", m.status.Rate)}
	if m.status.Muted {
		parts = append(parts, "muted")
	} else {
		parts = append(parts, fmt.Sprintf("vol %d%%", int(m.status.Volume*100)))
	}
	if m.status.Quality != "" {
		parts = append(parts, m.status.Quality)
	}
	if m.fs.IsFullscreen() {
		parts = append(parts, "fullscreen")
	}
	b.WriteString(dimStyle.Render(strings.Join(parts, " · ")))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("space play/pause · ←/→ seek · ↑/↓ volume · m mute · f fullscreen · s settings · c subtitles · q quit"))
	return b.String()
}

func (m *Model) viewMenu() string {
	items := m.menuItems()
	var b strings.Builder
	b.WriteString(menuTitleStyle.Render(menuTitle(m.menu.Current())))
	b.WriteString("\n\n")

	for i, item := range items {
		cursor := "  "
		label := item.label
		if item.active {
			label = activeItemStyle.Render(label + " ✓")
		}
		if i == m.menuCursor {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor + label + "\n")
	}

	if m.menu.Current() == player.MenuCaptions {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("+/- size · b/B background · d/D delay · r reset delay"))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter select · esc back"))
	return menuBoxStyle.Render(b.String())
}

func (m *Model) menuItems() []menuItem {
	switch m.menu.Current() {
	case player.MenuMain:
		return []menuItem{
			{label: "Speed", target: player.MenuSpeed},
			{label: "Quality", target: player.MenuQuality},
			{label: "Subtitles", target: player.MenuSubtitles},
			{label: "Captions", target: player.MenuCaptions},
		}

	case player.MenuSpeed:
		items := make([]menuItem, 0, len(player.Speeds))
		for _, rate := range player.Speeds {
			items = append(items, menuItem{
				label:  fmt.Sprintf("%.2fx", rate),
				rate:   rate,
				active: rate == m.status.Rate,
			})
		}
		return items

	case player.MenuQuality:
		items := make([]menuItem, 0, len(m.opts.Stream.Qualities))
		for _, v := range m.opts.Stream.Qualities {
			items = append(items, menuItem{
				label:  v.Label,
				id:     v.ID,
				active: v.Label == m.status.Quality,
			})
		}
		return items

	case player.MenuSubtitles:
		items := []menuItem{{label: "Off", id: "", active: m.subs.Current() == ""}}
		for _, track := range m.opts.Stream.Subtitles {
			items = append(items, menuItem{
				label:  track.Label,
				id:     track.ID,
				active: track.ID == m.subs.Current(),
			})
		}
		return items

	case player.MenuCaptions:
		style := m.menu.Style()
		return []menuItem{
			{label: "Size: " + style.Size.String()},
			{label: fmt.Sprintf("Background: %d%%", style.BackgroundOpacity)},
			{label: fmt.Sprintf("Position: %d%%", style.VerticalPositionPercent)},
			{label: fmt.Sprintf("Delay: %+.1fs", style.DelaySeconds)},
		}
	}
	return nil
}

func menuTitle(s player.MenuScreen) string {
	switch s {
	case player.MenuMain:
		return "Settings"
	case player.MenuSpeed:
		return "Playback speed"
	case player.MenuQuality:
		return "Quality"
	case player.MenuSubtitles:
		return "Subtitles"
	case player.MenuCaptions:
		return "Captions"
	default:
		return ""
	}
}

func formatMillis(millis int64) string {
	total := millis / 1000
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
