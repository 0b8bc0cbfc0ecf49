// Package tui implements the interactive portfolio screens as a Bubble Tea
// program. One top-level screen is rendered at a time, driven by the
// current {role, view} pair; screens act on the shared store and never
// hold collection state of their own.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/blink/internal/auth"
	"github.com/marcus/blink/internal/coach"
	"github.com/marcus/blink/internal/models"
	"github.com/marcus/blink/internal/store"
)

// Role is the current user's mode, gating which screens are reachable
type Role int

const (
	RoleNone Role = iota
	RoleStudent
	RoleTeacher
)

// View identifies the top-level screen
type View int

const (
	ViewLanding View = iota
	ViewStudentSelection
	ViewStudentForm
	ViewTeacherDashboard
	ViewPortfolioDetail
)

// MinWidth is the minimum terminal width for proper display
const MinWidth = 60

// MinHeight is the minimum terminal height for proper display
const MinHeight = 16

// coachTipMsg carries a resolved coaching response. FormID identifies the
// form instance that asked; responses for an abandoned form are dropped.
type coachTipMsg struct {
	FormID int
	Tip    string
}

// Model is the main Bubble Tea model for the portfolio TUI
type Model struct {
	Store    *store.Store
	Coach    coach.Coach
	Verifier auth.Verifier

	Width  int
	Height int

	Role        Role
	CurrentView View

	SelectedGoal  *models.LessonGoal
	SelectedEntry *models.ReflectionEntry

	Landing   landingState
	Gate      *gateState
	Picker    pickerState
	Form      *formState
	Dashboard dashboardState

	// Status is a transient acknowledgment shown on the landing screen
	Status string

	// nextFormID tags form instances so stale coaching responses can be
	// recognized
	nextFormID int
}

// NewModel creates the root model
func NewModel(st *store.Store, c coach.Coach, v auth.Verifier) Model {
	return Model{
		Store:       st,
		Coach:       c,
		Verifier:    v,
		Role:        RoleNone,
		CurrentView: ViewLanding,
		Dashboard:   newDashboardState(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.Form != nil {
			m.Form.resize(msg.Width)
		}
		return m, nil

	case coachTipMsg:
		// Discard responses for a form that no longer exists; otherwise
		// whichever response lands last wins.
		if m.CurrentView != ViewStudentForm || m.Form == nil || m.Form.id != msg.FormID {
			return m, nil
		}
		m.Form.coaching = false
		m.Form.tip = msg.Tip
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.Status = ""
		return m.handleKey(msg)
	}

	// Non-key messages may belong to the embedded gate form
	if m.Gate != nil {
		return m.updateGate(msg)
	}
	return m, nil
}

// handleKey routes input to the active screen
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Gate != nil {
		return m.updateGate(msg)
	}

	switch m.CurrentView {
	case ViewLanding:
		return m.updateLanding(msg)
	case ViewStudentSelection:
		return m.updatePicker(msg)
	case ViewStudentForm:
		return m.updateForm(msg)
	case ViewTeacherDashboard:
		return m.updateDashboard(msg)
	case ViewPortfolioDetail:
		return m.updateDetail(msg)
	}
	return m, nil
}

// signOut resets to the role-selection landing screen
func (m Model) signOut() Model {
	m.Role = RoleNone
	m.CurrentView = ViewLanding
	m.SelectedGoal = nil
	m.SelectedEntry = nil
	m.Form = nil
	m.Gate = nil
	return m
}

// startStudent enters the student flow at the goal picker
func (m Model) startStudent() Model {
	m.Role = RoleStudent
	m.CurrentView = ViewStudentSelection
	m.Picker = newPickerState(m.Store)
	return m
}

// startTeacher enters the teacher dashboard after a successful gate check
func (m Model) startTeacher() Model {
	m.Role = RoleTeacher
	m.CurrentView = ViewTeacherDashboard
	m.Gate = nil
	m.Dashboard = newDashboardState()
	return m
}

// openDetail shows one reflection read-only. Back from detail always
// returns to the dashboard, never to whichever mode launched it.
func (m Model) openDetail(entry models.ReflectionEntry) Model {
	m.SelectedEntry = &entry
	m.CurrentView = ViewPortfolioDetail
	return m
}

// updateDetail handles the read-only detail screen
func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "enter", "q":
		m.SelectedEntry = nil
		m.CurrentView = ViewTeacherDashboard
	}
	return m, nil
}
