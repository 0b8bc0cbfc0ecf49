package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/blink/internal/models"
)

// Form focus order follows the four submission steps: identity, rating,
// explanation plus evidence, reflection, then the submit action.
const (
	focusName = iota
	focusRating
	focusExplanation
	focusEvidenceDesc
	focusEvidenceFile
	focusReflection
	focusSubmit
	focusCount
)

// Field labels sent along with a coaching request
const (
	fieldLabelExplanation = "Assignment explanation"
	fieldLabelReflection  = "Reflection"
)

// formState holds the uncommitted reflection form. All of it is transient;
// nothing reaches the store until a valid submit.
type formState struct {
	id   int
	goal models.LessonGoal

	name         textinput.Model
	rating       models.Rating
	explanation  textarea.Model
	evidenceDesc textarea.Model
	evidenceFile textinput.Model
	reflection   textarea.Model

	focus int

	// previous is the student's most recent earlier submission for the
	// same goal, surfaced as the name field changes
	previous     *models.ReflectionEntry
	showPrevious bool

	// ephemeral coaching state: a dismissable tip and an in-flight flag
	tip      string
	coaching bool

	warning string
}

func newFormState(id int, goal models.LessonGoal, width int) *formState {
	f := &formState{id: id, goal: goal}

	f.name = textinput.New()
	f.name.Placeholder = "Type your name here..."
	f.name.CharLimit = 60

	f.explanation = textarea.New()
	f.explanation.Placeholder = "I did assignment ... and it helped because..."
	f.explanation.SetHeight(4)

	f.evidenceDesc = textarea.New()
	f.evidenceDesc.Placeholder = "Look in my workbook on page..."
	f.evidenceDesc.SetHeight(3)

	f.evidenceFile = textinput.New()
	f.evidenceFile.Placeholder = "photo-of-my-work.jpg (optional)"
	f.evidenceFile.CharLimit = 120

	f.reflection = textarea.New()
	f.reflection.Placeholder = "Today I learned that..."
	f.reflection.SetHeight(4)

	f.resize(width)
	return f
}

// resize fits the inputs to the terminal width
func (f *formState) resize(width int) {
	w := width - 8
	if w < 30 {
		w = 30
	}
	if w > 76 {
		w = 76
	}
	f.name.Width = w
	f.evidenceFile.Width = w
	f.explanation.SetWidth(w)
	f.evidenceDesc.SetWidth(w)
	f.reflection.SetWidth(w)
}

// updateForm handles the student reflection form
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.Form

	// The in-flight overlay blocks the form until the coach answers
	if f.coaching {
		return m, nil
	}

	// An open tip panel is dismissed before anything else happens
	if f.tip != "" {
		switch msg.String() {
		case "enter", "esc":
			f.tip = ""
		}
		return m, nil
	}

	f.warning = ""

	switch msg.String() {
	case "esc":
		// Abandon the form and choose another goal
		m.Form = nil
		m.SelectedGoal = nil
		m.CurrentView = ViewStudentSelection
		m.Picker = newPickerState(m.Store)
		return m, nil

	case "tab", "down":
		if msg.String() == "down" && f.inTextArea() {
			break
		}
		return m.setFormFocus((f.focus + 1) % focusCount)

	case "shift+tab", "up":
		if msg.String() == "up" && f.inTextArea() {
			break
		}
		return m.setFormFocus((f.focus + focusCount - 1) % focusCount)

	case "ctrl+p":
		if f.previous != nil {
			f.showPrevious = !f.showPrevious
		}
		return m, nil

	case "ctrl+g":
		switch f.focus {
		case focusExplanation:
			return m.startCoaching(fieldLabelExplanation, f.explanation.Value())
		case focusReflection:
			return m.startCoaching(fieldLabelReflection, f.reflection.Value())
		}
		return m, nil

	case "ctrl+s":
		return m.submitForm()

	case "enter":
		switch f.focus {
		case focusSubmit:
			return m.submitForm()
		case focusName, focusEvidenceFile, focusRating:
			return m.setFormFocus(f.focus + 1)
		}

	case "1", "2", "3":
		if f.focus == focusRating {
			f.rating = models.Rating(msg.String()[0] - '0')
			return m, nil
		}

	case "left", "right":
		if f.focus == focusRating {
			if msg.String() == "right" && f.rating < models.RatingExpert {
				f.rating++
			}
			if msg.String() == "left" && f.rating > models.RatingWorking {
				f.rating--
			}
			return m, nil
		}
	}

	cmd := f.updateFocused(msg)

	// Derived value: recompute the prior-submission match whenever the
	// name changes
	if f.focus == focusName {
		f.previous = m.Store.PreviousReflection(f.goal.Text, f.name.Value())
		if f.previous == nil {
			f.showPrevious = false
		}
	}

	return m, cmd
}

// inTextArea reports whether the focused field is a multi-line input, in
// which case up/down move the cursor instead of the focus
func (f *formState) inTextArea() bool {
	switch f.focus {
	case focusExplanation, focusEvidenceDesc, focusReflection:
		return true
	}
	return false
}

// updateFocused forwards input to the focused component
func (f *formState) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusExplanation:
		f.explanation, cmd = f.explanation.Update(msg)
	case focusEvidenceDesc:
		f.evidenceDesc, cmd = f.evidenceDesc.Update(msg)
	case focusEvidenceFile:
		f.evidenceFile, cmd = f.evidenceFile.Update(msg)
	case focusReflection:
		f.reflection, cmd = f.reflection.Update(msg)
	}
	return cmd
}

// setFormFocus moves focus to the target field
func (m Model) setFormFocus(target int) (tea.Model, tea.Cmd) {
	f := m.Form
	f.name.Blur()
	f.explanation.Blur()
	f.evidenceDesc.Blur()
	f.evidenceFile.Blur()
	f.reflection.Blur()

	f.focus = target
	switch target {
	case focusName:
		return m, f.name.Focus()
	case focusExplanation:
		return m, f.explanation.Focus()
	case focusEvidenceDesc:
		return m, f.evidenceDesc.Focus()
	case focusEvidenceFile:
		return m, f.evidenceFile.Focus()
	case focusReflection:
		return m, f.reflection.Focus()
	}
	return m, nil
}

// startCoaching fires one advisory request for the focused field. The form
// blocks behind a "thinking" overlay until the response lands; there is no
// cancellation, and a response arriving after the form is gone is dropped.
func (m Model) startCoaching(field, text string) (tea.Model, tea.Cmd) {
	f := m.Form
	f.coaching = true
	f.tip = ""

	c := m.Coach
	id := f.id
	goalText := f.goal.Text
	return m, func() tea.Msg {
		return coachTipMsg{FormID: id, Tip: c.Tip(context.Background(), goalText, field, text)}
	}
}

// submitForm validates the four steps and hands the completed entry to the
// store. A missing rating or required text blocks submission with a
// warning; nothing is persisted in that case.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.Form

	if strings.TrimSpace(f.name.Value()) == "" {
		f.warning = "Fill in your name first!"
		return m, nil
	}
	if !f.rating.IsValid() {
		f.warning = "Don't forget to pick your stars!"
		return m, nil
	}
	if strings.TrimSpace(f.explanation.Value()) == "" || strings.TrimSpace(f.reflection.Value()) == "" {
		f.warning = "Fill in the explanation and what you learned first!"
		return m, nil
	}

	entry := models.ReflectionEntry{
		StudentName:         f.name.Value(),
		LessonGoal:          f.goal.Text,
		Subject:             f.goal.Subject,
		Rating:              f.rating,
		Explanation:         f.explanation.Value(),
		EvidenceDescription: f.evidenceDesc.Value(),
		EvidenceFileName:    strings.TrimSpace(f.evidenceFile.Value()),
		Reflection:          f.reflection.Value(),
	}

	if _, err := m.Store.SubmitReflection(entry); err != nil {
		f.warning = "Saving failed: " + err.Error()
		return m, nil
	}

	// A submission ends the student's session and returns to the landing
	// screen, not the goal picker
	m = m.signOut()
	m.Status = "Well done! Your reflection is saved in your portfolio."
	return m, nil
}
