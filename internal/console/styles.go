package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles degrade to plain text automatically when out is not a terminal,
// so scripted sessions see unstyled output.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	markerStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Title prints a bold heading line.
func (t *Terminal) Title(s string) {
	t.Print(titleStyle.Render(s))
}

// Item prints one entry of a 1-based numbered listing.
func (t *Terminal) Item(n int, name string) {
	t.Printf("%s %s", numberStyle.Render(fmt.Sprintf("%d)", n)), name)
}

// Marker prints a faint delimiter line, used around note content.
func (t *Terminal) Marker(s string) {
	t.Print(markerStyle.Render(s))
}

// Errorf prints a formatted error line.
func (t *Terminal) Errorf(format string, args ...any) {
	t.Print(errorStyle.Render(fmt.Sprintf(format, args...)))
}
