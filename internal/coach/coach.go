// Package coach wraps the one-shot text-generation call that gives a
// student a formative hint on a free-text answer before submission. The
// call is purely advisory: every failure path collapses to a fixed
// fallback string, nothing is retried, and no conversation state is kept
// between calls.
package coach

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"
)

// MinInputLen is the minimum input length before a real request is made
const MinInputLen = 5

const (
	// MsgWriteMore is returned for short input, without any network call
	MsgWriteMore = "Write a little more text first, then I can help you!"

	// MsgKeepGoing is returned when the service answers with nothing useful
	MsgKeepGoing = "I can't think of a tip right now, but keep going!"

	// MsgUnavailable is the fallback for any failed call
	MsgUnavailable = "The AI coach can't be reached right now. Feel free to carry on!"
)

// Coach produces one advisory tip for a form field's current text
type Coach interface {
	Tip(ctx context.Context, goal, field, input string) string
}

// Config defines configuration options for the OpenAI-backed coach
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string
}

// Client implements Coach against the OpenAI chat completion API
type Client struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// New builds a coach client from the provided configuration
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 256
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &Client{
		client:    openai.NewClientWithConfig(config),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}, nil
}

// Tip requests one coaching hint. It never returns an error: short input
// yields MsgWriteMore without a network call, and any request failure or
// empty answer yields a fixed fallback.
func (c *Client) Tip(ctx context.Context, goal, field, input string) string {
	if tooShort(input) {
		return MsgWriteMore
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(goal, field, input)},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		return MsgUnavailable
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return MsgKeepGoing
	}
	return content
}

func tooShort(input string) bool {
	return utf8.RuneCountInString(input) < MinInputLen
}

func systemPrompt() string {
	return "You are a friendly, encouraging teacher for 11-12 year old children. " +
		"A student is reflecting on a lesson goal and asks you to look at one answer. " +
		"Give short, positive feedback and one tip on how to make the answer more specific or better phrased. " +
		"Do NOT give the answer away; ask one thought-provoking question instead. " +
		"Address the student directly and keep it to 2-3 sentences."
}

func userPrompt(goal, field, input string) string {
	b := strings.Builder{}
	b.WriteString("Lesson goal: ")
	b.WriteString(goal)
	b.WriteString("\nForm field: ")
	b.WriteString(field)
	b.WriteString("\nThe student's answer so far: ")
	b.WriteString(input)
	return b.String()
}

// Disabled is the coach used when no API key is configured. It keeps the
// short-input hint and answers everything else with the fallback.
type Disabled struct{}

// Tip implements Coach without ever making a request
func (Disabled) Tip(_ context.Context, _, _, input string) string {
	if tooShort(input) {
		return MsgWriteMore
	}
	return MsgUnavailable
}
