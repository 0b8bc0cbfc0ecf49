package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// landingState holds the role-selection cursor
type landingState struct {
	Cursor int // 0 = student, 1 = teacher
}

// updateLanding handles the role-selection screen
func (m Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "left", "k", "h":
		m.Landing.Cursor = 0

	case "down", "right", "j", "l":
		m.Landing.Cursor = 1

	case "s":
		return m.startStudent(), nil

	case "t":
		return m.openGate()

	case "enter":
		if m.Landing.Cursor == 0 {
			return m.startStudent(), nil
		}
		return m.openGate()
	}
	return m, nil
}

// gateState is the teacher access gate: one secret input and an error
// flag. A wrong code clears the input and leaves the gate open; there is
// no lockout and no attempt counter.
type gateState struct {
	Form    *huh.Form
	Input   string
	Errored bool
}

func newGateState() *gateState {
	g := &gateState{}
	g.build()
	return g
}

// build constructs the huh form. Rebuilt after a failed attempt so the
// input starts empty again.
func (g *gateState) build() {
	g.Form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Teacher access").
				Description("Enter the access code").
				EchoMode(huh.EchoModePassword).
				Value(&g.Input),
		),
	).WithTheme(huh.ThemeBase16()).WithShowHelp(false)
}

// openGate shows the access gate over the landing screen
func (m Model) openGate() (tea.Model, tea.Cmd) {
	m.Gate = newGateState()
	return m, m.Gate.Form.Init()
}

// updateGate forwards input to the gate form and checks the code once the
// form completes
func (m Model) updateGate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.Gate = nil
		return m, nil
	}

	form, cmd := m.Gate.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Gate.Form = f
	}

	if m.Gate.Form.State == huh.StateCompleted {
		return m.completeGate()
	}

	return m, cmd
}

// completeGate checks the entered code. Success grants the teacher role
// and closes the gate; failure flags the error, clears the input, and
// leaves the gate open for another attempt.
func (m Model) completeGate() (Model, tea.Cmd) {
	if m.Verifier.Verify(m.Gate.Input) {
		return m.startTeacher(), nil
	}
	m.Gate.Errored = true
	m.Gate.Input = ""
	m.Gate.build()
	return m, m.Gate.Form.Init()
}
