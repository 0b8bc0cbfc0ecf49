package models

// Subject represents one of the fixed curriculum areas
type Subject string

const (
	SubjectGeography  Subject = "geography"
	SubjectHistory    Subject = "history"
	SubjectNatureTech Subject = "nature_technology"
)

// Subjects returns all subjects in display order
func Subjects() []Subject {
	return []Subject{SubjectGeography, SubjectHistory, SubjectNatureTech}
}

// IsValid reports whether s is one of the known subjects
func (s Subject) IsValid() bool {
	switch s {
	case SubjectGeography, SubjectHistory, SubjectNatureTech:
		return true
	}
	return false
}

// Label returns the display name for a subject
func (s Subject) Label() string {
	switch s {
	case SubjectGeography:
		return "Geography"
	case SubjectHistory:
		return "History"
	case SubjectNatureTech:
		return "Nature & Technology"
	}
	return string(s)
}

// Icon returns the subject's emoji marker
func (s Subject) Icon() string {
	switch s {
	case SubjectGeography:
		return "🌍"
	case SubjectHistory:
		return "📜"
	case SubjectNatureTech:
		return "🔬"
	}
	return "•"
}

// ParseSubject resolves a subject from user input, accepting short aliases
func ParseSubject(s string) (Subject, bool) {
	switch s {
	case "geography", "geo":
		return SubjectGeography, true
	case "history", "hist":
		return SubjectHistory, true
	case "nature_technology", "nature", "tech":
		return SubjectNatureTech, true
	}
	return "", false
}

// Rating is a 1-3 self-assessed mastery level. Zero means not chosen yet.
type Rating int

const (
	RatingUnset   Rating = 0
	RatingWorking Rating = 1
	RatingCapable Rating = 2
	RatingExpert  Rating = 3
)

// IsValid reports whether the rating is a chosen value in 1..3
func (r Rating) IsValid() bool {
	return r >= RatingWorking && r <= RatingExpert
}

// Description returns the student-facing meaning of each star level
func (r Rating) Description() string {
	switch r {
	case RatingWorking:
		return "Still working on it - I find it hard and need some help."
	case RatingCapable:
		return "I can do it - I can do the exercises on my own."
	case RatingExpert:
		return "Expert - I understand it fully and can explain it to someone else."
	}
	return "Pick a number of stars"
}

// Stars renders the rating as filled stars
func (r Rating) Stars() string {
	if !r.IsValid() {
		return ""
	}
	out := ""
	for i := Rating(0); i < r; i++ {
		out += "★"
	}
	return out
}

// LessonGoal is a teacher-authored instructional target for one subject.
// Goals are created and removed whole; there is no edit path. The Active
// field is persisted but no deactivation flow exists yet.
type LessonGoal struct {
	ID      string  `json:"id"`
	Text    string  `json:"text"`
	Subject Subject `json:"subject"`
	Active  bool    `json:"active"`
	Date    string  `json:"date"`
}

// ReflectionEntry is a completed student self-assessment against one goal,
// immutable once submitted. LessonGoal and Subject are copied verbatim at
// submission time so later goal edits or removals never touch the entry.
type ReflectionEntry struct {
	ID                  string  `json:"id"`
	StudentName         string  `json:"studentName"`
	LessonDate          string  `json:"lessonDate"`
	LessonGoal          string  `json:"lessonGoal"`
	Subject             Subject `json:"subject"`
	Rating              Rating  `json:"rating,omitempty"`
	Explanation         string  `json:"explanation"`
	EvidenceDescription string  `json:"evidenceDescription"`
	EvidenceFileName    string  `json:"evidenceFileName,omitempty"`
	Reflection          string  `json:"reflection"`
	TeacherFeedback     string  `json:"teacherFeedback,omitempty"`
	AIFeedback          string  `json:"aiFeedback,omitempty"`
}
