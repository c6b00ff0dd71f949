package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/todo-go/internal/config"
)

// Palette colors.
const (
	colorBright     = lipgloss.Color("#FFFFFF")
	colorAccent     = lipgloss.Color("#3A7CFD")
	colorLightText  = lipgloss.Color("#494C6B")
	colorLightMuted = lipgloss.Color("#9495A5")
	colorLightDone  = lipgloss.Color("#D1D2DA")
	colorLightLine  = lipgloss.Color("#E3E4F1")
	colorDarkText   = lipgloss.Color("#C8CBE7")
	colorDarkMuted  = lipgloss.Color("#5B5E7E")
	colorDarkDone   = lipgloss.Color("#4D5067")
	colorDarkLine   = lipgloss.Color("#393A4B")
)

// Theme holds the styles for one color scheme.
type Theme struct {
	Name string
	Icon string

	Title        lipgloss.Style
	Prompt       lipgloss.Style
	Text         lipgloss.Style
	Placeholder  lipgloss.Style
	Task         lipgloss.Style
	Done         lipgloss.Style
	Check        lipgloss.Style
	Cursor       lipgloss.Style
	Muted        lipgloss.Style
	FilterActive lipgloss.Style
	FilterIdle   lipgloss.Style
	Rule         lipgloss.Style
	Key          lipgloss.Style
}

// NewTheme returns the theme named name, falling back to light.
func NewTheme(name string) Theme {
	if name == config.ThemeDark {
		return darkTheme()
	}
	return lightTheme()
}

func lightTheme() Theme {
	return buildTheme(config.ThemeLight, "☀", colorLightText, colorLightMuted, colorLightDone, colorLightLine)
}

func darkTheme() Theme {
	return buildTheme(config.ThemeDark, "☾", colorDarkText, colorDarkMuted, colorDarkDone, colorDarkLine)
}

func buildTheme(name, icon string, text, muted, done, line lipgloss.Color) Theme {
	return Theme{
		Name:         name,
		Icon:         icon,
		Title:        lipgloss.NewStyle().Bold(true).Foreground(colorBright).Background(colorAccent).Padding(0, 1),
		Prompt:       lipgloss.NewStyle().Foreground(colorAccent),
		Text:         lipgloss.NewStyle().Foreground(text),
		Placeholder:  lipgloss.NewStyle().Foreground(muted),
		Task:         lipgloss.NewStyle().Foreground(text),
		Done:         lipgloss.NewStyle().Foreground(done).Strikethrough(true),
		Check:        lipgloss.NewStyle().Foreground(colorAccent),
		Cursor:       lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Muted:        lipgloss.NewStyle().Foreground(muted),
		FilterActive: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		FilterIdle:   lipgloss.NewStyle().Foreground(muted).Bold(true),
		Rule:         lipgloss.NewStyle().Foreground(line),
		Key:          lipgloss.NewStyle().Foreground(text).Bold(true),
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t.Name == config.ThemeDark {
		return lightTheme()
	}
	return darkTheme()
}

// Layout is the arrangement derived from terminal width.
type Layout string

const (
	LayoutWide    Layout = "wide"
	LayoutCompact Layout = "compact"
)

// LayoutFor picks the layout for width. An unknown width (0) or a zero
// breakpoint always gives the wide layout.
func LayoutFor(width, breakpoint int) Layout {
	if width > 0 && breakpoint > 0 && width < breakpoint {
		return LayoutCompact
	}
	return LayoutWide
}
