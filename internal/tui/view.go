package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/blink/internal/models"
)

// View implements tea.Model
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return "blink (resize the terminal for the full view)\n\nctrl+c: quit"
	}

	var base string
	switch m.CurrentView {
	case ViewLanding:
		base = m.renderLanding()
	case ViewStudentSelection:
		base = m.renderPicker()
	case ViewStudentForm:
		base = m.renderForm()
	case ViewTeacherDashboard:
		base = m.renderDashboard()
	case ViewPortfolioDetail:
		base = m.renderDetail()
	}

	if m.Gate != nil {
		return m.overlay(m.renderGate())
	}
	if m.Form != nil && m.CurrentView == ViewStudentForm {
		if m.Form.coaching {
			return m.overlay(tipPanelStyle.Render("The coach is thinking..."))
		}
		if m.Form.tip != "" {
			panel := lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.NewStyle().Bold(true).Foreground(coachColor).Render("Tips from the AI coach 🤖"),
				"",
				m.Form.tip,
				"",
				helpStyle.Render("enter: thanks, I'll improve it"),
			)
			return m.overlay(tipPanelStyle.Render(panel))
		}
	}

	return base
}

// overlay centers a modal over a dimmed background
func (m Model) overlay(modal string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")))
}

// renderLanding shows the role-selection screen
func (m Model) renderLanding() string {
	var s strings.Builder

	s.WriteString(appTitleStyle.Render("blink") + "\n")
	s.WriteString(subtleStyle.Render("Classroom reflection portfolio") + "\n\n")

	if m.Status != "" {
		s.WriteString(statusStyle.Render(m.Status) + "\n\n")
	}

	student := "🎓 I am a student\n" + subtleStyle.Render("Fill in your reflection")
	teacher := "👩‍🏫 I am a teacher\n" + subtleStyle.Render("Set lesson goals & view portfolios")

	studentCard := cardStyle.Render(student)
	teacherCard := cardStyle.Render(teacher)
	if m.Landing.Cursor == 0 {
		studentCard = selectedCardStyle.Render(student)
	} else {
		teacherCard = selectedCardStyle.Render(teacher)
	}

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, studentCard, "  ", teacherCard))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("↑/↓: choose  enter: start  s: student  t: teacher  q: quit"))
	return s.String()
}

// renderGate shows the access-gate modal
func (m Model) renderGate() string {
	var s strings.Builder
	s.WriteString("🔐 " + titleStyle.Render("Teacher login") + "\n\n")
	s.WriteString(m.Gate.Form.View())
	if m.Gate.Errored {
		s.WriteString("\n" + warnStyle.Render("⛔ Wrong code, try again."))
	}
	s.WriteString("\n" + helpStyle.Render("enter: log in  esc: cancel"))
	return modalStyle.Render(s.String())
}

// renderPicker shows the grouped goal picker, or a dead-end when no goals
// are active
func (m Model) renderPicker() string {
	var s strings.Builder

	if m.Picker.Total == 0 {
		s.WriteString(titleStyle.Render("No lesson goals are ready yet.") + "\n\n")
		s.WriteString(subtleStyle.Render("Ask your teacher to activate some goals.") + "\n\n")
		s.WriteString(helpStyle.Render("esc: back to start"))
		return s.String()
	}

	s.WriteString(titleStyle.Render("What is today's lesson about?") + "\n")
	s.WriteString(subtleStyle.Render("Pick the lesson goal you want to reflect on.") + "\n")

	index := 0
	for _, group := range m.Picker.Groups {
		s.WriteString(sectionHeader.Render(subjectStyle(group.Subject).Render(
			group.Subject.Icon()+" "+group.Subject.Label())) + "\n")
		for _, goal := range group.Goals {
			card := goal.Text + "\n" + subtleStyle.Render(goal.Date)
			s.WriteString(subjectCard(group.Subject, index == m.Picker.Cursor).Render(card) + "\n")
			index++
		}
	}

	s.WriteString("\n" + helpStyle.Render("↑/↓: choose  enter: select  esc: back"))
	return s.String()
}

// formFieldTitle renders one step header, marking the focused field
func (m Model) formFieldTitle(focus int, title string) string {
	marker := "  "
	if m.Form.focus == focus {
		marker = lipgloss.NewStyle().Foreground(accentColor).Render("> ")
	}
	return marker + titleStyle.Render(title)
}

// renderForm shows the four-step reflection form
func (m Model) renderForm() string {
	f := m.Form
	var s strings.Builder

	badge := subjectStyle(f.goal.Subject).Render(f.goal.Subject.Icon() + " " + f.goal.Subject.Label())
	s.WriteString(badge + "  " + titleStyle.Render(f.goal.Text) + "\n\n")

	s.WriteString(m.formFieldTitle(focusName, "Who are you?") + "\n")
	s.WriteString("  " + f.name.View() + "\n")

	if f.previous != nil {
		s.WriteString("\n  " + fmt.Sprintf("👋 Hey %s! You did this goal before on %s.",
			f.previous.StudentName, f.previous.LessonDate))
		if f.showPrevious {
			s.WriteString("\n" + cardStyle.Render(strings.Join([]string{
				subtleStyle.Render("Previous score: ") + starStyle.Render(f.previous.Rating.Stars()),
				subtleStyle.Render("What helped then: ") + f.previous.Explanation,
				subtleStyle.Render("Learned then: ") + f.previous.Reflection,
			}, "\n")) + "\n")
		} else {
			s.WriteString("  " + helpStyle.Render("(ctrl+p: view previous)") + "\n")
		}
	}

	s.WriteString("\n" + m.formFieldTitle(focusRating, "1. How well do you master the lesson goal?") + "\n")
	stars := ""
	for star := models.RatingWorking; star <= models.RatingExpert; star++ {
		if f.rating >= star {
			stars += starStyle.Render("★ ")
		} else {
			stars += subtleStyle.Render("☆ ")
		}
	}
	s.WriteString("  " + stars + subtleStyle.Render(f.rating.Description()) + "\n")

	s.WriteString("\n" + m.formFieldTitle(focusExplanation, "2. Which assignment helped you the most?") + "\n")
	s.WriteString(f.explanation.View() + "\n")

	s.WriteString("\n" + m.formFieldTitle(focusEvidenceDesc, "3. Where can I see that you get it? (Evidence)") + "\n")
	s.WriteString(f.evidenceDesc.View() + "\n")
	s.WriteString(m.formFieldTitle(focusEvidenceFile, "File name of a photo of your work (optional)") + "\n")
	s.WriteString("  " + f.evidenceFile.View() + "\n")

	s.WriteString("\n" + m.formFieldTitle(focusReflection, "4. What do you know now that you didn't before?") + "\n")
	s.WriteString(f.reflection.View() + "\n")

	submit := "✅ Send my reflection"
	if f.focus == focusSubmit {
		submit = selectedCardStyle.Render(submit)
	} else {
		submit = cardStyle.Render(submit)
	}
	s.WriteString("\n" + submit + "\n")

	if f.warning != "" {
		s.WriteString(warnStyle.Render(f.warning) + "\n")
	}

	s.WriteString(helpStyle.Render("tab: next field  1-3: stars  ctrl+g: ask the AI coach  ctrl+s: submit  esc: other goal"))
	return s.String()
}

// renderDashboard shows the teacher dashboard with its three tabs
func (m Model) renderDashboard() string {
	d := m.Dashboard
	var s strings.Builder

	s.WriteString(titleStyle.Render("Teacher dashboard") + "\n\n")

	tabs := []string{"Lesson goals", "📅 Timeline", "🎓 Per student"}
	var rendered []string
	for i, tab := range tabs {
		if dashTab(i) == d.Tab {
			rendered = append(rendered, activeTabStyle.Render(tab))
		} else {
			rendered = append(rendered, tabStyle.Render(tab))
		}
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n\n")

	switch d.Tab {
	case tabGoals:
		s.WriteString(m.renderGoalsTab())
	case tabTimeline:
		s.WriteString(m.renderTimelineTab())
	case tabStudents:
		s.WriteString(m.renderStudentsTab())
	}

	s.WriteString("\n" + helpStyle.Render("1/2/3: switch tab  esc: sign out"))
	return s.String()
}

// renderGoalsTab shows the three per-subject authoring columns
func (m Model) renderGoalsTab() string {
	d := m.Dashboard
	subjects := models.Subjects()

	columns := make([]string, 0, len(subjects))
	for i, subject := range subjects {
		var col strings.Builder
		col.WriteString(subjectStyle(subject).Render(subject.Icon()+" "+subject.Label()) + "\n")

		if d.Editing && i == d.Subject {
			col.WriteString(d.Draft.View() + "\n")
		} else if d.Drafts[i] != "" {
			col.WriteString(subtleStyle.Render("draft: "+d.Drafts[i]) + "\n")
		} else {
			col.WriteString(subtleStyle.Render("a: new goal") + "\n")
		}

		goals := m.subjectGoals(subject)
		if len(goals) == 0 {
			col.WriteString(subtleStyle.Render("No active goals") + "\n")
		}
		for gi, goal := range goals {
			selected := i == d.Subject && gi == d.GoalCursor && !d.Editing
			card := goal.Text + "\n" + subtleStyle.Render(goal.Date)
			col.WriteString(subjectCard(subject, selected).Width(colWidth(m.Width)).Render(card) + "\n")
		}

		columns = append(columns, lipgloss.NewStyle().Width(colWidth(m.Width)+4).Render(col.String()))
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return out + "\n" + helpStyle.Render("←/→: subject  ↑/↓: goal  a/enter: add  x: remove")
}

func colWidth(total int) int {
	w := total/3 - 6
	if w < 18 {
		w = 18
	}
	if w > 36 {
		w = 36
	}
	return w
}

// reflectionCard renders one browser card
func reflectionCard(entry models.ReflectionEntry, selected bool) string {
	lines := []string{
		titleStyle.Render(entry.StudentName) + "  " + subtleStyle.Render(entry.LessonDate),
		starStyle.Render(entry.Rating.Stars()) + "  " + subjectStyle(entry.Subject).Render(entry.Subject.Icon()+" "+entry.Subject.Label()),
		subtleStyle.Render("Goal: ") + entry.LessonGoal,
		subtleStyle.Render("\"" + firstLine(entry.Reflection) + "\""),
	}
	return subjectCard(entry.Subject, selected).Render(strings.Join(lines, "\n"))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 60 {
		s = s[:60] + "…"
	}
	return s
}

// renderTimelineTab lists every reflection in collection order
func (m Model) renderTimelineTab() string {
	reflections := m.Store.Reflections()
	if len(reflections) == 0 {
		return subtleStyle.Render("No reflections handed in yet.")
	}

	var s strings.Builder
	s.WriteString(subtleStyle.Render(fmt.Sprintf("%d total", len(reflections))) + "\n")
	for i, entry := range reflections {
		s.WriteString(reflectionCard(entry, i == m.Dashboard.TimelineCursor) + "\n")
	}
	s.WriteString(helpStyle.Render("↑/↓: choose  enter: details"))
	return s.String()
}

// renderStudentsTab lists collapsible per-student buckets
func (m Model) renderStudentsTab() string {
	groups, rows := m.studentRows()
	if len(groups) == 0 {
		return subtleStyle.Render("No reflections handed in yet.")
	}

	var s strings.Builder
	for i, row := range rows {
		selected := i == m.Dashboard.StudentCursor
		if row.IsBucket {
			group := groups[row.Group]
			arrow := "▸"
			if m.Dashboard.Expanded[group.Name] {
				arrow = "▾"
			}
			line := fmt.Sprintf("%s %s  %s", arrow, titleStyle.Render(group.Name),
				subtleStyle.Render(fmt.Sprintf("%d reflection(s)", len(group.Entries))))
			if selected {
				line = lipgloss.NewStyle().Foreground(accentColor).Render("> ") + line
			} else {
				line = "  " + line
			}
			s.WriteString(line + "\n")
			continue
		}
		s.WriteString(lipgloss.NewStyle().MarginLeft(4).Render(
			reflectionCard(groups[row.Group].Entries[row.Entry], selected)) + "\n")
	}
	s.WriteString(helpStyle.Render("↑/↓: choose  enter: expand / details"))
	return s.String()
}

// renderDetail shows one reflection read-only
func (m Model) renderDetail() string {
	entry := m.SelectedEntry
	if entry == nil {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(entry.StudentName) + "  " +
		subjectStyle(entry.Subject).Render(entry.Subject.Icon()+" "+entry.Subject.Label()) + "\n")
	s.WriteString(subtleStyle.Render(entry.LessonDate) + "\n\n")
	s.WriteString(subtleStyle.Render("GOAL") + "\n" + entry.LessonGoal + "\n\n")

	s.WriteString(subtleStyle.Render("SELF-ASSESSMENT") + "\n")
	s.WriteString(starStyle.Render(entry.Rating.Stars()) + "  " + entry.Rating.Description() + "\n\n")

	s.WriteString(subtleStyle.Render("HOW IT WAS ACHIEVED") + "\n" + entry.Explanation + "\n\n")

	s.WriteString(subtleStyle.Render("EVIDENCE") + "\n")
	if entry.EvidenceFileName != "" {
		s.WriteString("📎 " + entry.EvidenceFileName + "\n")
	}
	if entry.EvidenceDescription != "" {
		s.WriteString(entry.EvidenceDescription + "\n")
	} else if entry.EvidenceFileName == "" {
		s.WriteString(subtleStyle.Render("No description.") + "\n")
	}

	s.WriteString("\n" + subtleStyle.Render("WHAT WAS LEARNED") + "\n" + entry.Reflection + "\n\n")
	s.WriteString(helpStyle.Render("esc: back to overview"))
	return s.String()
}
