package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletionServer answers every chat completion with content.
func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(baseURL string) *Client {
	return NewClient(Config{APIKey: "test", BaseURL: baseURL + "/v1", Model: "test-model"})
}

func TestGenerateQuiz(t *testing.T) {
	srv := fakeCompletionServer(t, `[{"question":"What is F?","options":["ma","mv"],"answerIndex":0,"explanation":"e","hint":"h"}]`)
	defer srv.Close()

	questions, err := testClient(srv.URL).GenerateQuiz(context.Background(), 1, "Dynamics")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, []string{"ma", "mv"}, questions[0].Options)
}

func TestGenerateQuizMalformedResponse(t *testing.T) {
	srv := fakeCompletionServer(t, `[{"question":"q","options":["a"],"answerIndex":3,"explanation":"e","hint":"h"}]`)
	defer srv.Close()

	_, err := testClient(srv.URL).GenerateQuiz(context.Background(), 1, "Dynamics")
	require.Error(t, err)

	var service *ServiceError
	assert.ErrorAs(t, err, &service, "malformed response surfaces as a service failure, not a partial result")
}

func TestGenerateFlashcards(t *testing.T) {
	srv := fakeCompletionServer(t, `[{"front":"F=ma","back":"Newton's 2nd law"},{"front":"p=mv","back":"Momentum"}]`)
	defer srv.Close()

	cards, err := testClient(srv.URL).GenerateFlashcards(context.Background(), "Dynamics")
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestCondenseNotes(t *testing.T) {
	srv := fakeCompletionServer(t, "### Key Points\n- $F = ma$")
	defer srv.Close()

	summary, err := testClient(srv.URL).CondenseNotes(context.Background(), "long raw notes")
	require.NoError(t, err)
	assert.Contains(t, summary, "Key Points")
}

func TestServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	var service *ServiceError
	_, err := testClient(srv.URL).GenerateQuiz(context.Background(), 1, "Dynamics")
	assert.ErrorAs(t, err, &service)

	_, err = testClient(srv.URL).CondenseNotes(context.Background(), "notes")
	assert.ErrorAs(t, err, &service)
}

func TestStreamReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req struct {
			Stream   bool `json:"stream"`
			Messages []struct {
				Role    string `json:"role"`
				Content any    `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)
		require.NotEmpty(t, req.Messages)
		assert.Equal(t, "system", req.Messages[0].Role)

		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range []string{"New", "ton's", " laws"} {
			payload, _ := json.Marshal(map[string]any{
				"choices": []map[string]any{
					{"delta": map[string]string{"content": chunk}},
				},
			})
			fmt.Fprintf(w, "data: %s\n\n", payload)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	var got strings.Builder
	err := testClient(srv.URL).StreamReply(context.Background(), "Explain Newton's laws", nil, nil, "", func(chunk string) {
		got.WriteString(chunk)
	})
	require.NoError(t, err)
	assert.Equal(t, "Newton's laws", got.String(), "fragments concatenate in emission order")
}
