package store

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/marcus/blink/internal/models"
)

// SubjectGoals is one subject's active goals in insertion order
type SubjectGoals struct {
	Subject models.Subject
	Goals   []models.LessonGoal
}

// ActiveGoalsBySubject groups active goals by subject in fixed subject
// order, preserving each subject's insertion order (newest first).
// Subjects without active goals are omitted.
func (s *Store) ActiveGoalsBySubject() []SubjectGoals {
	var groups []SubjectGoals
	for _, subject := range models.Subjects() {
		var goals []models.LessonGoal
		for _, g := range s.goals {
			if g.Active && g.Subject == subject {
				goals = append(goals, g)
			}
		}
		if len(goals) > 0 {
			groups = append(groups, SubjectGoals{Subject: subject, Goals: goals})
		}
	}
	return groups
}

// ActiveGoalCount returns the number of active goals across all subjects
func (s *Store) ActiveGoalCount() int {
	n := 0
	for _, g := range s.goals {
		if g.Active {
			n++
		}
	}
	return n
}

// PreviousReflection finds the most recent prior submission for the same
// goal by the same student. The name must trim to at least two characters;
// matching is case-insensitive on the trimmed name and exact on the goal
// text. Returns nil when there is no match.
func (s *Store) PreviousReflection(goalText, studentName string) *models.ReflectionEntry {
	name := strings.TrimSpace(studentName)
	if utf8.RuneCountInString(name) < 2 {
		return nil
	}
	for _, r := range s.reflections {
		if r.LessonGoal == goalText && strings.EqualFold(strings.TrimSpace(r.StudentName), name) {
			entry := r
			return &entry
		}
	}
	return nil
}

// StudentGroup is one student's reflections in insertion order
type StudentGroup struct {
	Name    string
	Entries []models.ReflectionEntry
}

// ReflectionsByStudent partitions reflections by trimmed student name,
// bucket keys sorted lexicographically ascending. The bucket key is
// case-sensitive: "Tom" and "tom" form separate groups. That diverges from
// the case-insensitive prior-submission lookup and is kept as current
// behavior.
func (s *Store) ReflectionsByStudent() []StudentGroup {
	buckets := make(map[string][]models.ReflectionEntry)
	for _, r := range s.reflections {
		name := strings.TrimSpace(r.StudentName)
		buckets[name] = append(buckets[name], r)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]StudentGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, StudentGroup{Name: name, Entries: buckets[name]})
	}
	return groups
}

// FindReflection looks up one entry by id
func (s *Store) FindReflection(id string) (models.ReflectionEntry, bool) {
	for _, r := range s.reflections {
		if r.ID == id {
			return r, true
		}
	}
	return models.ReflectionEntry{}, false
}

// FindGoal looks up one goal by id
func (s *Store) FindGoal(id string) (models.LessonGoal, bool) {
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return models.LessonGoal{}, false
}
