package mood

import (
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// CustomColor is used for any label outside the vocabulary.
const CustomColor = "#7c7cff"

var themes = map[string]string{
	Happy:   "#ffcc00",
	Neutral: "#4ade80",
	Sad:     "#5fa8d3",
	Angry:   "#f85149",
	Tired:   "#8b949e",
}

// ThemeHex returns the hex colour associated with label.
func ThemeHex(label string) string {
	if hex, ok := themes[label]; ok {
		return hex
	}
	return CustomColor
}

// Theme returns the colour associated with label.
func Theme(label string) colorful.Color {
	c, err := colorful.Hex(ThemeHex(label))
	if err != nil {
		c, _ = colorful.Hex(CustomColor)
	}
	return c
}

// Shade fades the theme colour of label towards the terminal background as
// the intensity drops, so a 10 renders at full strength and a 1 is muted.
func Shade(label string, intensity int) colorful.Color {
	base := Theme(label)
	if intensity >= MaxIntensity {
		return base
	}
	if intensity < MinIntensity {
		intensity = MinIntensity
	}
	dim, _ := colorful.Hex("#161b22")
	t := float64(MaxIntensity-intensity) / float64(MaxIntensity-MinIntensity) * 0.6
	return base.BlendLab(dim, t).Clamped()
}

// Painter colours text for a particular output.
type Painter struct {
	profile termenv.Profile
}

// NewPainter picks a colour profile for w; anything that is not a terminal
// gets plain text.
func NewPainter(w io.Writer) Painter {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return Painter{profile: termenv.EnvColorProfile()}
	}
	return Painter{profile: termenv.Ascii}
}

// PlainPainter never emits escape sequences.
func PlainPainter() Painter {
	return Painter{profile: termenv.Ascii}
}

// Paint renders s in c.
func (p Painter) Paint(s string, c colorful.Color) string {
	if p.profile == termenv.Ascii {
		return s
	}
	return p.profile.String(s).Foreground(p.profile.Color(c.Hex())).String()
}

// Mood renders s in the theme colour of label.
func (p Painter) Mood(label, s string) string {
	return p.Paint(s, Theme(label))
}
