package auth

import "testing"

func TestStaticCodeVerify(t *testing.T) {
	v := NewStaticCode("")

	tests := []struct {
		input string
		want  bool
	}{
		{"BLINK123", true},
		{"blink123", true},
		{"Blink123", true},
		{"  blink123  ", true},
		{"blink124", false},
		{"", false},
		{"   ", false},
		{"BLINK1234", false},
	}

	for _, tt := range tests {
		if got := v.Verify(tt.input); got != tt.want {
			t.Errorf("Verify(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStaticCodeCustom(t *testing.T) {
	v := NewStaticCode("groep8")

	if !v.Verify("GROEP8") {
		t.Error("custom code should match case-insensitively")
	}
	if v.Verify("BLINK123") {
		t.Error("default code should not match a custom verifier")
	}
}
