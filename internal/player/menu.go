package player

// Speeds are the selectable playback rates, in menu order.
var Speeds = []float64{0.5, 0.75, 1.0, 1.25, 1.5, 2.0}

// MenuScreen identifies a screen in the settings menu stack.
type MenuScreen int

const (
	MenuClosed MenuScreen = iota
	MenuMain
	MenuSpeed
	MenuQuality
	MenuSubtitles
	MenuCaptions
)

func (s MenuScreen) String() string {
	switch s {
	case MenuClosed:
		return "closed"
	case MenuMain:
		return "main"
	case MenuSpeed:
		return "speed"
	case MenuQuality:
		return "quality"
	case MenuSubtitles:
		return "subtitles"
	case MenuCaptions:
		return "captions"
	default:
		return "unknown"
	}
}

// Menu is the settings menu stack. Leaf selections apply immediately
// and drop back to the main screen; caption adjustments are iterative
// and keep the captions screen open. The visibility timer is
// suppressed for as long as any screen is open.
type Menu struct {
	screen     MenuScreen
	controller *Controller
	style      *CaptionStyle
	visibility *Visibility

	// Host hooks for selections the controller cannot apply itself.
	onQuality  func(id string)
	onSubtitle func(id string) // "" turns subtitles off
}

// NewMenu wires the menu to the playback controller and overlay
// state. Quality and subtitle hooks may be nil.
func NewMenu(ctrl *Controller, style *CaptionStyle, vis *Visibility, onQuality, onSubtitle func(string)) *Menu {
	return &Menu{
		screen:     MenuClosed,
		controller: ctrl,
		style:      style,
		visibility: vis,
		onQuality:  onQuality,
		onSubtitle: onSubtitle,
	}
}

// Current returns the open screen, MenuClosed when shut.
func (m *Menu) Current() MenuScreen { return m.screen }

// IsOpen reports whether any screen is showing.
func (m *Menu) IsOpen() bool { return m.screen != MenuClosed }

// Open shows the main screen and pins the controls overlay.
func (m *Menu) Open() {
	if m.screen != MenuClosed {
		return
	}
	m.screen = MenuMain
	if m.visibility != nil {
		m.visibility.SetMenuOpen(true)
	}
}

// Navigate descends from the main screen into a leaf.
func (m *Menu) Navigate(target MenuScreen) {
	if m.screen != MenuMain {
		return
	}
	switch target {
	case MenuSpeed, MenuQuality, MenuSubtitles, MenuCaptions:
		m.screen = target
	}
}

// Back pops one level: leaf to main, main to closed. Fully closing
// re-arms the overlay hide countdown.
func (m *Menu) Back() {
	switch m.screen {
	case MenuClosed:
	case MenuMain:
		m.close()
	default:
		m.screen = MenuMain
	}
}

// Close shuts the menu from any screen.
func (m *Menu) Close() {
	if m.screen == MenuClosed {
		return
	}
	m.close()
}

func (m *Menu) close() {
	m.screen = MenuClosed
	if m.visibility != nil {
		m.visibility.SetMenuOpen(false)
	}
}

// SelectSpeed applies a playback rate and returns to the main screen.
func (m *Menu) SelectSpeed(rate float64) error {
	if m.screen != MenuSpeed {
		return nil
	}
	err := m.controller.SetRate(rate)
	m.screen = MenuMain
	return err
}

// SelectQuality signals the host to swap streams and returns to the
// main screen.
func (m *Menu) SelectQuality(id string) {
	if m.screen != MenuQuality {
		return
	}
	if m.onQuality != nil {
		m.onQuality(id)
	}
	m.screen = MenuMain
}

// SelectSubtitle signals the host to load a subtitle track ("" for
// off) and returns to the main screen.
func (m *Menu) SelectSubtitle(id string) {
	if m.screen != MenuSubtitles {
		return
	}
	if m.onSubtitle != nil {
		m.onSubtitle(id)
	}
	m.screen = MenuMain
}

// Style exposes the caption style for iterative adjustment while the
// captions screen is open.
func (m *Menu) Style() *CaptionStyle { return m.style }
