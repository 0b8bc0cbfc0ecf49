// Package output provides styled terminal output helpers (success, error,
// subject and rating formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/blink/internal/models"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	starStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	subjectStyles = map[models.Subject]lipgloss.Style{
		models.SubjectGeography:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.SubjectHistory:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.SubjectNatureTech: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	}
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// Title formats a bold heading
func Title(s string) string {
	return titleStyle.Render(s)
}

// Subtle formats secondary text
func Subtle(s string) string {
	return subtleStyle.Render(s)
}

// FormatSubject formats a subject with its icon and color
func FormatSubject(s models.Subject) string {
	style, ok := subjectStyles[s]
	if !ok {
		return s.Label()
	}
	return style.Render(fmt.Sprintf("%s %s", s.Icon(), s.Label()))
}

// FormatStars formats a rating as colored stars
func FormatStars(r models.Rating) string {
	if !r.IsValid() {
		return subtleStyle.Render("(no rating)")
	}
	return starStyle.Render(r.Stars())
}
