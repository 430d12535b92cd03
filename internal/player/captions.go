package player

// CaptionSize is the subtitle text size preset.
type CaptionSize int

const (
	SizeXS CaptionSize = iota
	SizeS
	SizeM
	SizeL
	SizeXL
)

func (s CaptionSize) String() string {
	switch s {
	case SizeXS:
		return "XS"
	case SizeS:
		return "S"
	case SizeM:
		return "M"
	case SizeL:
		return "L"
	case SizeXL:
		return "XL"
	default:
		return "?"
	}
}

const (
	opacityStep = 25
	delayStep   = 0.5
	minDelay    = -20.0
	maxDelay    = 20.0
)

// CaptionStyle holds the caption rendering preferences for one player
// instance. Adjusters clamp at their bounds rather than wrapping.
type CaptionStyle struct {
	Color                   string
	Size                    CaptionSize
	BackgroundOpacity       int     // 0..100 in steps of 25
	VerticalPositionPercent int     // 0 top .. 100 bottom
	DelaySeconds            float64 // -20..+20
}

// DefaultCaptionStyle returns the style applied when a player starts.
func DefaultCaptionStyle() CaptionStyle {
	return CaptionStyle{
		Color:                   "white",
		Size:                    SizeM,
		BackgroundOpacity:       75,
		VerticalPositionPercent: 90,
	}
}

func (s *CaptionStyle) IncreaseSize() {
	if s.Size < SizeXL {
		s.Size++
	}
}

func (s *CaptionStyle) DecreaseSize() {
	if s.Size > SizeXS {
		s.Size--
	}
}

// StepBackgroundOpacity moves the opacity one step in the given
// direction.
func (s *CaptionStyle) StepBackgroundOpacity(up bool) {
	if up {
		s.BackgroundOpacity += opacityStep
	} else {
		s.BackgroundOpacity -= opacityStep
	}
	if s.BackgroundOpacity > 100 {
		s.BackgroundOpacity = 100
	}
	if s.BackgroundOpacity < 0 {
		s.BackgroundOpacity = 0
	}
}

// SetVerticalPosition clamps into [0, 100].
func (s *CaptionStyle) SetVerticalPosition(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	s.VerticalPositionPercent = pct
}

// StepDelay nudges the subtitle delay by half a second, clamped to
// the supported range.
func (s *CaptionStyle) StepDelay(up bool) {
	if up {
		s.DelaySeconds += delayStep
	} else {
		s.DelaySeconds -= delayStep
	}
	if s.DelaySeconds > maxDelay {
		s.DelaySeconds = maxDelay
	}
	if s.DelaySeconds < minDelay {
		s.DelaySeconds = minDelay
	}
}

// ResetDelay returns the delay to zero.
func (s *CaptionStyle) ResetDelay() {
	s.DelaySeconds = 0
}
