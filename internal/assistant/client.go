// Package assistant wraps the AI chat service.
package assistant

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/u-share/sortflow/internal/api"
)

// MaxQuestionLength bounds a question, in characters.
const MaxQuestionLength = 500

// FallbackAnswer is shown when the backend replies without an answer.
const FallbackAnswer = "抱歉，我现在无法回答这个问题。"

const askTimeout = 30 * time.Second

// Answer is the assistant's reply. ConversationID always echoes the caller's
// identifier; the backend never assigns one.
type Answer struct {
	Text           string
	ConversationID string
}

// Client calls the AI chat service through the shared adapter.
type Client struct {
	api *api.Client
}

// NewClient creates an assistant client on top of the shared adapter.
func NewClient(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// NewConversationID mints an identifier for a fresh conversation.
func NewConversationID() string {
	return uuid.NewString()
}

// Ask sends a question and returns the assistant's answer. An empty
// conversationID starts a one-off exchange.
func (c *Client) Ask(ctx context.Context, question, conversationID string) (Answer, error) {
	const operation = "AI chat"

	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return Answer{}, api.ValidationError(operation, "question cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxQuestionLength {
		return Answer{}, api.ValidationError(operation,
			"question must not exceed "+strconv.Itoa(MaxQuestionLength)+" characters")
	}

	body := map[string]string{"question": trimmed}
	if conversationID != "" {
		body["conversation_id"] = conversationID
	}

	var resp struct {
		Answer string `json:"answer"`
	}
	if err := c.api.PostJSON(ctx, "/ai/ask-ai", body, &resp, api.WithTimeout(askTimeout)); err != nil {
		return Answer{}, api.Normalize(operation, err)
	}

	text := resp.Answer
	if text == "" {
		text = FallbackAnswer
	}
	return Answer{Text: text, ConversationID: conversationID}, nil
}
