package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/u-share/sortflow/internal/api"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return NewClient(api.New(server.URL)), &calls
}

func TestAsk(t *testing.T) {
	var gotBody map[string]string
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai/ask-ai", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"answer":"塑料瓶属于可回收物"}`))
	})

	answer, err := client.Ask(context.Background(), "塑料瓶怎么分类？", "conv-42")

	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, "塑料瓶属于可回收物", answer.Text)
	assert.Equal(t, "conv-42", answer.ConversationID, "conversation id must echo the caller's")
	assert.Equal(t, "塑料瓶怎么分类？", gotBody["question"])
	assert.Equal(t, "conv-42", gotBody["conversation_id"])
}

func TestAskOmitsConversationIDWhenEmpty(t *testing.T) {
	var gotBody map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"answer":"ok"}`))
	})

	answer, err := client.Ask(context.Background(), "问题", "")

	require.NoError(t, err)
	assert.Empty(t, answer.ConversationID)
	_, present := gotBody["conversation_id"]
	assert.False(t, present)
}

func TestAskValidation(t *testing.T) {
	tests := []struct {
		name        string
		question    string
		wantMessage string
	}{
		{name: "empty", question: "", wantMessage: "question cannot be empty"},
		{name: "whitespace only", question: "  \n\t ", wantMessage: "question cannot be empty"},
		{name: "over 500 characters", question: strings.Repeat("问", 501), wantMessage: "question must not exceed 500 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, calls := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"answer":"should not happen"}`))
			})

			_, err := client.Ask(context.Background(), tt.question, "")

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, api.KindValidation, apiErr.Kind)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, 0, *calls, "validation failure must not issue a network call")
		})
	}
}

func TestAskFallbackAnswer(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"answer":""}`))
	})

	answer, err := client.Ask(context.Background(), "问题", "conv-1")

	require.NoError(t, err)
	assert.Equal(t, FallbackAnswer, answer.Text)
	assert.Equal(t, "conv-1", answer.ConversationID)
}

func TestAskUpstreamFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"AI助手暂时无法回答，请稍后再试"}`))
	})

	_, err := client.Ask(context.Background(), "问题", "")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindServer, apiErr.Kind)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "service temporarily unavailable, try again later", apiErr.Message)
}

func TestNewConversationIDUnique(t *testing.T) {
	a := NewConversationID()
	b := NewConversationID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
