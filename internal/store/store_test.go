package store

import (
	"errors"
	"testing"

	"github.com/marcus/blink/internal/models"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, dir
}

func testEntry(goalText, name string) models.ReflectionEntry {
	return models.ReflectionEntry{
		StudentName: name,
		LessonGoal:  goalText,
		Subject:     models.SubjectGeography,
		Rating:      models.RatingExpert,
		Explanation: "I did assignment 3 about volcanoes.",
		Reflection:  "I now know there are three kinds of volcanoes.",
	}
}

// TestAddGoalPrepends verifies the newest goal is always first
func TestAddGoalPrepends(t *testing.T) {
	s, _ := openTestStore(t)

	texts := []string{"first", "second", "third"}
	for i, text := range texts {
		if _, err := s.AddGoal(text, models.SubjectHistory); err != nil {
			t.Fatalf("AddGoal(%q) failed: %v", text, err)
		}
		if got := len(s.Goals()); got != i+1 {
			t.Fatalf("after %d adds, got %d goals", i+1, got)
		}
	}

	goals := s.Goals()
	if goals[0].Text != "third" || goals[2].Text != "first" {
		t.Errorf("goals not newest-first: %v", goals)
	}
	for _, g := range goals {
		if !g.Active {
			t.Errorf("goal %s should be active", g.ID)
		}
		if g.ID == "" || g.Date == "" {
			t.Errorf("goal missing id or date: %+v", g)
		}
	}
}

// TestAddGoalBlankText verifies blank text leaves the collection unchanged
func TestAddGoalBlankText(t *testing.T) {
	s, _ := openTestStore(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := s.AddGoal(text, models.SubjectGeography)
		if !errors.Is(err, ErrBlankGoal) {
			t.Errorf("AddGoal(%q): want ErrBlankGoal, got %v", text, err)
		}
	}

	if got := len(s.Goals()); got != 0 {
		t.Errorf("expected no goals, got %d", got)
	}
}

func TestAddGoalUnknownSubject(t *testing.T) {
	s, _ := openTestStore(t)

	if _, err := s.AddGoal("valid text", models.Subject("math")); err == nil {
		t.Error("expected error for unknown subject")
	}
	if len(s.Goals()) != 0 {
		t.Error("collection changed after rejected add")
	}
}

// TestRemoveGoalIdempotent verifies removing an absent id is a no-op
func TestRemoveGoalIdempotent(t *testing.T) {
	s, _ := openTestStore(t)

	goal, err := s.AddGoal("keep or remove", models.SubjectNatureTech)
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}

	if err := s.RemoveGoal("lg-doesnotexist"); err != nil {
		t.Fatalf("RemoveGoal of absent id returned error: %v", err)
	}
	if len(s.Goals()) != 1 {
		t.Fatal("absent-id removal changed the collection")
	}

	if err := s.RemoveGoal(goal.ID); err != nil {
		t.Fatalf("RemoveGoal failed: %v", err)
	}
	if len(s.Goals()) != 0 {
		t.Fatal("goal not removed")
	}

	// Removing again is still fine
	if err := s.RemoveGoal(goal.ID); err != nil {
		t.Fatalf("second RemoveGoal returned error: %v", err)
	}
}

// TestSubmitReflectionPrepends verifies ordering is submission order reversed
func TestSubmitReflectionPrepends(t *testing.T) {
	s, _ := openTestStore(t)

	names := []string{"Anna", "Bram", "Carla"}
	for _, name := range names {
		if _, err := s.SubmitReflection(testEntry("goal", name)); err != nil {
			t.Fatalf("SubmitReflection(%s) failed: %v", name, err)
		}
	}

	got := s.Reflections()
	if len(got) != 3 {
		t.Fatalf("expected 3 reflections, got %d", len(got))
	}
	for i, want := range []string{"Carla", "Bram", "Anna"} {
		if got[i].StudentName != want {
			t.Errorf("position %d: want %s, got %s", i, want, got[i].StudentName)
		}
	}
}

// TestSubmitReflectionRequiresRating verifies a missing rating blocks the
// submission entirely, including the persistence write
func TestSubmitReflectionRequiresRating(t *testing.T) {
	s, dir := openTestStore(t)

	entry := testEntry("goal", "Sam")
	entry.Rating = models.RatingUnset
	if _, err := s.SubmitReflection(entry); !errors.Is(err, ErrNoRating) {
		t.Fatalf("want ErrNoRating, got %v", err)
	}

	entry.Rating = models.Rating(4)
	if _, err := s.SubmitReflection(entry); !errors.Is(err, ErrNoRating) {
		t.Fatalf("rating 4: want ErrNoRating, got %v", err)
	}

	if len(s.Reflections()) != 0 {
		t.Fatal("rejected submission changed the collection")
	}

	// Nothing may have been written either
	s.Close()
	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	if len(reopened.Reflections()) != 0 {
		t.Fatal("rejected submission was persisted")
	}
}

func TestSubmitReflectionRequiresTexts(t *testing.T) {
	s, _ := openTestStore(t)

	entry := testEntry("goal", "Sam")
	entry.Explanation = "  "
	if _, err := s.SubmitReflection(entry); !errors.Is(err, ErrIncomplete) {
		t.Errorf("blank explanation: want ErrIncomplete, got %v", err)
	}

	entry = testEntry("goal", "Sam")
	entry.Reflection = ""
	if _, err := s.SubmitReflection(entry); !errors.Is(err, ErrIncomplete) {
		t.Errorf("blank reflection: want ErrIncomplete, got %v", err)
	}
}

func TestSubmitReflectionAssignsIDAndDate(t *testing.T) {
	s, _ := openTestStore(t)

	saved, err := s.SubmitReflection(testEntry("goal", "Sam"))
	if err != nil {
		t.Fatalf("SubmitReflection failed: %v", err)
	}
	if saved.ID == "" || saved.LessonDate == "" {
		t.Errorf("id or date not assigned: %+v", saved)
	}

	other, err := s.SubmitReflection(testEntry("goal", "Sam"))
	if err != nil {
		t.Fatalf("SubmitReflection failed: %v", err)
	}
	if other.ID == saved.ID {
		t.Errorf("ids collide: %s", saved.ID)
	}
}

// TestPersistenceRoundTrip verifies both collections survive a restart
func TestPersistenceRoundTrip(t *testing.T) {
	s, dir := openTestStore(t)

	goal, err := s.AddGoal("Describe the water cycle", models.SubjectGeography)
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}
	entry := testEntry(goal.Text, "Sam")
	entry.EvidenceFileName = "watercycle.jpg"
	if _, err := s.SubmitReflection(entry); err != nil {
		t.Fatalf("SubmitReflection failed: %v", err)
	}
	s.Close()

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	goals := reopened.Goals()
	if len(goals) != 1 || goals[0].Text != "Describe the water cycle" {
		t.Fatalf("goals not restored: %v", goals)
	}
	reflections := reopened.Reflections()
	if len(reflections) != 1 {
		t.Fatalf("reflections not restored: %v", reflections)
	}
	got := reflections[0]
	if got.StudentName != "Sam" || got.Rating != models.RatingExpert ||
		got.LessonGoal != goal.Text || got.EvidenceFileName != "watercycle.jpg" {
		t.Errorf("restored entry differs: %+v", got)
	}
}

// TestReflectionKeepsGoalCopy verifies entries are frozen at submission
// time and independent of later goal removal
func TestReflectionKeepsGoalCopy(t *testing.T) {
	s, _ := openTestStore(t)

	goal, err := s.AddGoal("Name two causes of the war", models.SubjectHistory)
	if err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}
	if _, err := s.SubmitReflection(testEntry(goal.Text, "Sam")); err != nil {
		t.Fatalf("SubmitReflection failed: %v", err)
	}

	if err := s.RemoveGoal(goal.ID); err != nil {
		t.Fatalf("RemoveGoal failed: %v", err)
	}

	reflections := s.Reflections()
	if reflections[0].LessonGoal != "Name two causes of the war" {
		t.Errorf("entry lost its goal copy: %+v", reflections[0])
	}
}

func TestReset(t *testing.T) {
	s, dir := openTestStore(t)

	if _, err := s.AddGoal("goal", models.SubjectGeography); err != nil {
		t.Fatalf("AddGoal failed: %v", err)
	}
	if _, err := s.SubmitReflection(testEntry("goal", "Sam")); err != nil {
		t.Fatalf("SubmitReflection failed: %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if len(s.Goals()) != 0 || len(s.Reflections()) != 0 {
		t.Fatal("collections not cleared")
	}

	s.Close()
	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	if len(reopened.Goals()) != 0 || len(reopened.Reflections()) != 0 {
		t.Fatal("reset did not clear the persisted store")
	}
}

func TestOpenMissingStoreIsEmpty(t *testing.T) {
	s, _ := openTestStore(t)

	if got := s.Goals(); len(got) != 0 {
		t.Errorf("fresh store has goals: %v", got)
	}
	if got := s.Reflections(); len(got) != 0 {
		t.Errorf("fresh store has reflections: %v", got)
	}
}
