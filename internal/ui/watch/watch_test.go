package watch

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beenama/internal/media"
	"beenama/internal/player"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testStream() *media.Stream {
	return &media.Stream{
		URL:   "https://cdn.example.com/master.m3u8",
		Title: "The Batman",
		Qualities: []media.QualityVariant{
			{ID: "auto", Label: "Auto", URL: "https://cdn.example.com/master.m3u8"},
			{ID: "720", Label: "720p", URL: "https://cdn.example.com/720.m3u8"},
		},
		Subtitles: []media.SubtitleTrack{
			{ID: "english-0", Label: "English", Language: "english", URL: "https://cdn.example.com/en.vtt"},
		},
	}
}

func newTestModel(t *testing.T) (*Model, *player.MockEngine) {
	t.Helper()
	eng := &player.MockEngine{OpenDuration: 60_000}
	m := New(Options{
		Stream: testStream(),
		Title:  "The Batman",
		Engine: eng,
	})
	require.NoError(t, m.ctrl.Load(testStream().URL, 0))
	m.status = m.ctrl.Status()
	return m, eng
}

func TestSettingsMenuFlow(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyMsg("s"))
	assert.Equal(t, player.MenuMain, m.menu.Current())

	// Down to "Speed"? cursor starts on Speed already; enter descends
	m.Update(keyMsg("enter"))
	assert.Equal(t, player.MenuSpeed, m.menu.Current())

	// Pick 0.75x (second entry)
	m.Update(keyMsg("down"))
	m.Update(keyMsg("enter"))
	assert.Equal(t, player.MenuMain, m.menu.Current(), "leaf selection returns to main")
	assert.Equal(t, 0.75, m.ctrl.Status().Rate)

	m.Update(keyMsg("esc"))
	assert.False(t, m.menu.IsOpen())
}

func TestSubtitleShortcutOpensSubtitlesScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(keyMsg("c"))
	assert.Equal(t, player.MenuSubtitles, m.menu.Current())

	items := m.menuItems()
	require.Len(t, items, 2)
	assert.Equal(t, "Off", items[0].label)
	assert.True(t, items[0].active, "subtitles start off")
}

func TestQualitySelectionSwapsSource(t *testing.T) {
	m, eng := newTestModel(t)
	m.Update(keyMsg("s"))
	m.Update(keyMsg("down")) // Quality
	m.Update(keyMsg("enter"))
	require.Equal(t, player.MenuQuality, m.menu.Current())

	m.Update(keyMsg("down")) // 720p
	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd, "quality selection issues a swap command")

	cmd()
	assert.Equal(t, "https://cdn.example.com/720.m3u8", eng.OpenURL)
	assert.Equal(t, "720p", m.ctrl.Status().Quality)
}

func TestTransportKeys(t *testing.T) {
	m, eng := newTestModel(t)

	m.Update(keyMsg(" "))
	assert.True(t, eng.Playing)

	m.Update(keyMsg(" "))
	assert.False(t, eng.Playing)

	m.Update(keyMsg("m"))
	assert.True(t, m.ctrl.Status().Muted)

	m.Update(keyMsg("f"))
	assert.True(t, m.fs.IsFullscreen())
}

// runSeekBatch executes the seek half of a seek keypress. The second
// batch entry is the auto-hide tick, which sleeps for the full delay
// and is skipped here.
func runSeekBatch(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	m.Update(batch[0]())
}

func TestSeekKeysRunAsCommands(t *testing.T) {
	m, eng := newTestModel(t)

	_, cmd := m.Update(keyMsg("right"))
	require.NotNil(t, cmd)
	assert.Empty(t, eng.Seeks, "the engine round trip belongs in the command, not in Update")

	runSeekBatch(t, m, cmd)
	require.NotEmpty(t, eng.Seeks)
	assert.Equal(t, int64(player.DefaultSkipMillis), eng.Seeks[0])
	assert.Equal(t, int64(player.DefaultSkipMillis), m.status.PositionMillis)

	_, cmd = m.Update(keyMsg("left"))
	runSeekBatch(t, m, cmd)
	assert.Equal(t, int64(0), eng.Seeks[len(eng.Seeks)-1], "skipping back from 10s clamps to zero")
}

func TestCaptionKeysStayInMenu(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(keyMsg("s"))
	for i := 0; i < 3; i++ {
		m.Update(keyMsg("down"))
	}
	m.Update(keyMsg("enter"))
	require.Equal(t, player.MenuCaptions, m.menu.Current())

	m.Update(keyMsg("+"))
	m.Update(keyMsg("d"))
	assert.Equal(t, player.MenuCaptions, m.menu.Current())
	assert.Equal(t, player.SizeL, m.menu.Style().Size)
	assert.Equal(t, 0.5, m.menu.Style().DelaySeconds)
}

func TestFinishReportsResume(t *testing.T) {
	eng := &player.MockEngine{OpenDuration: 60_000}
	var gotPos, gotDur int64
	m := New(Options{
		Stream: testStream(),
		Engine: eng,
		OnResume: func(pos, dur int64) {
			gotPos, gotDur = pos, dur
		},
	})
	require.NoError(t, m.ctrl.Load(testStream().URL, 0))
	eng.EmitPosition(42_000)

	m.Update(keyMsg("q"))
	assert.Equal(t, int64(42_000), gotPos)
	assert.Equal(t, int64(60_000), gotDur)
	assert.True(t, eng.Closed)
}

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		millis   int64
		expected string
	}{
		{0, "0:00"},
		{61_000, "1:01"},
		{3_661_000, "1:01:01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatMillis(tt.millis))
	}
}
