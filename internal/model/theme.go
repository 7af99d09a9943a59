package model

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used to emphasize text in listings and search output.
type Theme struct {
	Directory  lipgloss.Style // Directory labels in the selection menu
	LinePrefix lipgloss.Style // "Line-(N)" prefix of a match
	Match      lipgloss.Style // The matched text itself
}

// DefaultTheme returns the terminal theme: bold directories, a yellow line
// prefix and bold red matches.
func DefaultTheme() Theme {
	return Theme{
		Directory: lipgloss.NewStyle().
			Bold(true).
			TabWidth(lipgloss.NoTabConversion),
		LinePrefix: lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")). // Yellow
			TabWidth(lipgloss.NoTabConversion),
		Match: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1")). // Red
			TabWidth(lipgloss.NoTabConversion),
	}
}

// PlainTheme returns a theme that renders text unchanged.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Theme{
		Directory:  plain,
		LinePrefix: plain,
		Match:      plain,
	}
}
