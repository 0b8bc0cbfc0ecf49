package models

import "testing"

func TestParseSubject(t *testing.T) {
	tests := []struct {
		input string
		want  Subject
		ok    bool
	}{
		{"geography", SubjectGeography, true},
		{"geo", SubjectGeography, true},
		{"history", SubjectHistory, true},
		{"hist", SubjectHistory, true},
		{"nature_technology", SubjectNatureTech, true},
		{"nature", SubjectNatureTech, true},
		{"tech", SubjectNatureTech, true},
		{"math", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseSubject(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSubject(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSubjectsOrder(t *testing.T) {
	subjects := Subjects()
	if len(subjects) != 3 {
		t.Fatalf("expected 3 subjects, got %d", len(subjects))
	}
	want := []Subject{SubjectGeography, SubjectHistory, SubjectNatureTech}
	for i, s := range want {
		if subjects[i] != s {
			t.Errorf("position %d: want %v, got %v", i, s, subjects[i])
		}
		if !subjects[i].IsValid() {
			t.Errorf("%v should be valid", subjects[i])
		}
	}
	if Subject("math").IsValid() {
		t.Error("unknown subject should be invalid")
	}
}

func TestRating(t *testing.T) {
	for r := RatingWorking; r <= RatingExpert; r++ {
		if !r.IsValid() {
			t.Errorf("rating %d should be valid", r)
		}
	}
	for _, r := range []Rating{RatingUnset, -1, 4} {
		if r.IsValid() {
			t.Errorf("rating %d should be invalid", r)
		}
	}

	if RatingExpert.Stars() != "★★★" {
		t.Errorf("Stars() = %q", RatingExpert.Stars())
	}
	if RatingUnset.Stars() != "" {
		t.Errorf("unset rating renders stars: %q", RatingUnset.Stars())
	}
}
