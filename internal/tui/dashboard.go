package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/blink/internal/models"
	"github.com/marcus/blink/internal/store"
)

// dashTab selects the dashboard pane: goal authoring, or one of the two
// mutually exclusive reflection browsers
type dashTab int

const (
	tabGoals dashTab = iota
	tabTimeline
	tabStudents
)

// dashboardState holds the teacher dashboard's transient view state.
// Collection data is always read from the store so it is never stale.
type dashboardState struct {
	Tab dashTab

	// Goal authoring: one column per subject, each with its own draft
	Subject    int
	GoalCursor int
	Drafts     [3]string
	Draft      textinput.Model
	Editing    bool

	TimelineCursor int

	// Per-student browser: buckets collapsed by default, each with an
	// independent toggle
	Expanded      map[string]bool
	StudentCursor int
}

func newDashboardState() dashboardState {
	draft := textinput.New()
	draft.Placeholder = "New lesson goal..."
	draft.CharLimit = 200
	draft.Width = 40
	return dashboardState{
		Draft:    draft,
		Expanded: make(map[string]bool),
	}
}

// subjectGoals returns the active goals for one subject in insertion order
func (m Model) subjectGoals(subject models.Subject) []models.LessonGoal {
	var goals []models.LessonGoal
	for _, g := range m.Store.Goals() {
		if g.Active && g.Subject == subject {
			goals = append(goals, g)
		}
	}
	return goals
}

// dashRow is one selectable row in the per-student browser: either a
// student bucket header or, when the bucket is expanded, one of its entries
type dashRow struct {
	IsBucket bool
	Group    int
	Entry    int
}

// studentRows flattens the grouped view into selectable rows
func (m Model) studentRows() ([]store.StudentGroup, []dashRow) {
	groups := m.Store.ReflectionsByStudent()
	var rows []dashRow
	for gi, group := range groups {
		rows = append(rows, dashRow{IsBucket: true, Group: gi})
		if m.Dashboard.Expanded[group.Name] {
			for ei := range group.Entries {
				rows = append(rows, dashRow{Group: gi, Entry: ei})
			}
		}
	}
	return groups, rows
}

// updateDashboard handles the teacher dashboard
func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.Dashboard

	if d.Editing {
		return m.updateDraft(msg)
	}

	switch msg.String() {
	case "esc", "q":
		return m.signOut(), nil

	case "1", "g":
		d.Tab = tabGoals
	case "2", "t":
		d.Tab = tabTimeline
	case "3", "s":
		d.Tab = tabStudents

	default:
		switch d.Tab {
		case tabGoals:
			return m.updateGoalsTab(msg)
		case tabTimeline:
			return m.updateTimelineTab(msg)
		case tabStudents:
			return m.updateStudentsTab(msg)
		}
	}
	return m, nil
}

// updateGoalsTab handles column navigation, removal, and entering draft edit
func (m Model) updateGoalsTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.Dashboard
	subjects := models.Subjects()
	goals := m.subjectGoals(subjects[d.Subject])

	switch msg.String() {
	case "left", "h":
		if d.Subject > 0 {
			d.Subject--
			d.GoalCursor = 0
		}

	case "right", "l":
		if d.Subject < len(subjects)-1 {
			d.Subject++
			d.GoalCursor = 0
		}

	case "up", "k":
		if d.GoalCursor > 0 {
			d.GoalCursor--
		}

	case "down", "j":
		if d.GoalCursor < len(goals)-1 {
			d.GoalCursor++
		}

	case "a", "enter":
		d.Editing = true
		d.Draft.SetValue(d.Drafts[d.Subject])
		return m, d.Draft.Focus()

	case "x", "delete":
		// Immediate, unconfirmed removal
		if d.GoalCursor < len(goals) {
			if err := m.Store.RemoveGoal(goals[d.GoalCursor].ID); err != nil {
				m.Status = err.Error()
			}
			if d.GoalCursor > 0 {
				d.GoalCursor--
			}
		}
	}
	return m, nil
}

// updateDraft handles typing in the active subject's goal draft
func (m Model) updateDraft(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.Dashboard
	subjects := models.Subjects()

	switch msg.String() {
	case "esc":
		d.Editing = false
		d.Draft.Blur()
		return m, nil

	case "enter":
		_, err := m.Store.AddGoal(d.Draft.Value(), subjects[d.Subject])
		if err != nil {
			if errors.Is(err, store.ErrBlankGoal) {
				// Blank drafts are silently ignored
				return m, nil
			}
			m.Status = err.Error()
			return m, nil
		}
		// Only the submitted subject's draft is cleared
		d.Drafts[d.Subject] = ""
		d.Draft.SetValue("")
		d.Editing = false
		d.Draft.Blur()
		d.GoalCursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	d.Draft, cmd = d.Draft.Update(msg)
	d.Drafts[d.Subject] = d.Draft.Value()
	return m, cmd
}

// updateTimelineTab handles the chronological reflections browser
func (m Model) updateTimelineTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.Dashboard
	reflections := m.Store.Reflections()

	switch msg.String() {
	case "up", "k":
		if d.TimelineCursor > 0 {
			d.TimelineCursor--
		}

	case "down", "j":
		if d.TimelineCursor < len(reflections)-1 {
			d.TimelineCursor++
		}

	case "enter":
		if d.TimelineCursor < len(reflections) {
			return m.openDetail(reflections[d.TimelineCursor]), nil
		}
	}
	return m, nil
}

// updateStudentsTab handles the grouped reflections browser
func (m Model) updateStudentsTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.Dashboard
	groups, rows := m.studentRows()

	if d.StudentCursor >= len(rows) {
		d.StudentCursor = len(rows) - 1
	}
	if d.StudentCursor < 0 {
		d.StudentCursor = 0
	}

	switch msg.String() {
	case "up", "k":
		if d.StudentCursor > 0 {
			d.StudentCursor--
		}

	case "down", "j":
		if d.StudentCursor < len(rows)-1 {
			d.StudentCursor++
		}

	case "enter":
		if len(rows) == 0 {
			return m, nil
		}
		row := rows[d.StudentCursor]
		if row.IsBucket {
			name := groups[row.Group].Name
			d.Expanded[name] = !d.Expanded[name]
			return m, nil
		}
		return m.openDetail(groups[row.Group].Entries[row.Entry]), nil
	}
	return m, nil
}
