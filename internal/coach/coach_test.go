package coach

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for missing api key")
	}
	if _, err := New(Config{APIKey: "test-key"}); err != nil {
		t.Errorf("New with key failed: %v", err)
	}
}

// TestTipShortInput verifies input under the minimum length returns the
// canned message without any network call
func TestTipShortInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("short input must not reach the network")
	}))
	defer server.Close()

	c, err := New(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, input := range []string{"", "hi", "1234"} {
		if got := c.Tip(context.Background(), "goal", "field", input); got != MsgWriteMore {
			t.Errorf("Tip(%q) = %q, want MsgWriteMore", input, got)
		}
	}
}

// TestTipFallbackOnFailure verifies a failing call collapses to the fixed
// fallback instead of an error
func TestTipFallbackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c, err := New(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := c.Tip(context.Background(), "goal", "field", "long enough input"); got != MsgUnavailable {
		t.Errorf("Tip = %q, want MsgUnavailable", got)
	}
}

func TestTipSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"What made the assignment easier for you?"}}]}`))
	}))
	defer server.Close()

	c, err := New(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := c.Tip(context.Background(), "goal", "field", "I did assignment 3")
	if got != "What made the assignment easier for you?" {
		t.Errorf("Tip = %q", got)
	}
}

func TestTipEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`))
	}))
	defer server.Close()

	c, err := New(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := c.Tip(context.Background(), "goal", "field", "long enough input"); got != MsgKeepGoing {
		t.Errorf("Tip = %q, want MsgKeepGoing", got)
	}
}

func TestUserPromptCarriesContext(t *testing.T) {
	prompt := userPrompt("Describe the water cycle", "Reflection", "I learned about rain")

	for _, want := range []string{"Describe the water cycle", "Reflection", "I learned about rain"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestDisabledCoach(t *testing.T) {
	var c Coach = Disabled{}

	if got := c.Tip(context.Background(), "goal", "field", "hi"); got != MsgWriteMore {
		t.Errorf("short input: got %q", got)
	}
	if got := c.Tip(context.Background(), "goal", "field", "a long enough answer"); got != MsgUnavailable {
		t.Errorf("long input: got %q", got)
	}
}
