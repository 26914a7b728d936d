package shell

import "github.com/fatih/color"

// Theme holds the palette used by the menu. Each color is configured on the
// instance so two shells never share colour state.
type Theme struct {
	Frame  *color.Color
	Title  *color.Color
	Item   *color.Color
	Result *color.Color
	Danger *color.Color
	Prompt *color.Color
}

// NewTheme returns the neon palette, with escape codes suppressed when
// enabled is false.
func NewTheme(enabled bool) *Theme {
	t := &Theme{
		Frame:  color.New(color.FgHiGreen),
		Title:  color.New(color.FgHiMagenta, color.Bold),
		Item:   color.New(color.FgHiCyan),
		Result: color.New(color.FgHiMagenta, color.Bold),
		Danger: color.New(color.FgRed),
		Prompt: color.New(color.FgHiGreen, color.Underline),
	}
	for _, c := range []*color.Color{t.Frame, t.Title, t.Item, t.Result, t.Danger, t.Prompt} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}
