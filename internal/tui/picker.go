package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/blink/internal/models"
	"github.com/marcus/blink/internal/store"
)

// pickerState is the student goal picker: active goals grouped by subject,
// cursor over the flattened goal rows
type pickerState struct {
	Groups []store.SubjectGoals
	Cursor int
	Total  int
}

func newPickerState(st *store.Store) pickerState {
	groups := st.ActiveGoalsBySubject()
	total := 0
	for _, g := range groups {
		total += len(g.Goals)
	}
	return pickerState{Groups: groups, Total: total}
}

// goalAt returns the goal at the flattened cursor position
func (p pickerState) goalAt(index int) (models.LessonGoal, bool) {
	for _, g := range p.Groups {
		if index < len(g.Goals) {
			return g.Goals[index], true
		}
		index -= len(g.Goals)
	}
	return models.LessonGoal{}, false
}

// updatePicker handles the goal-selection screen
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace":
		return m.signOut(), nil

	case "up", "k":
		if m.Picker.Cursor > 0 {
			m.Picker.Cursor--
		}

	case "down", "j":
		if m.Picker.Cursor < m.Picker.Total-1 {
			m.Picker.Cursor++
		}

	case "enter":
		goal, ok := m.Picker.goalAt(m.Picker.Cursor)
		if !ok {
			return m, nil
		}
		m.SelectedGoal = &goal
		m.CurrentView = ViewStudentForm
		m.nextFormID++
		m.Form = newFormState(m.nextFormID, goal, m.Width)
		return m, m.Form.name.Focus()
	}
	return m, nil
}
