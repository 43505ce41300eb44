package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{
			name: "bare array",
			text: `[{"front":"a","back":"b"}]`,
			want: `[{"front":"a","back":"b"}]`,
		},
		{
			name: "fenced array",
			text: "```json\n[{\"front\":\"a\",\"back\":\"b\"}]\n```",
			want: `[{"front":"a","back":"b"}]`,
		},
		{
			name: "surrounding prose",
			text: "Here you go:\n[1, 2]\nHope that helps!",
			want: "[1, 2]",
		},
		{
			name: "object",
			text: `{"x": 1}`,
			want: `{"x": 1}`,
		},
		{
			name:    "no json at all",
			text:    "I cannot answer that.",
			wantErr: true,
		},
		{
			name:    "unterminated",
			text:    `[{"front":"a"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuiz(t *testing.T) {
	valid := `[{"question":"What is F?","options":["ma","mv","mg"],"answerIndex":0,"explanation":"Newton","hint":"second law"}]`

	questions, err := parseQuiz(valid)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is F?", questions[0].Question)
	assert.Equal(t, 0, questions[0].AnswerIndex)
}

func TestParseQuizRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "answerIndex out of range",
			text: `[{"question":"q","options":["a","b"],"answerIndex":2,"explanation":"e","hint":"h"}]`,
		},
		{
			name: "negative answerIndex",
			text: `[{"question":"q","options":["a"],"answerIndex":-1,"explanation":"e","hint":"h"}]`,
		},
		{
			name: "no options",
			text: `[{"question":"q","options":[],"answerIndex":0,"explanation":"e","hint":"h"}]`,
		},
		{
			name: "empty question",
			text: `[{"question":"  ","options":["a"],"answerIndex":0,"explanation":"e","hint":"h"}]`,
		},
		{
			name: "unknown field",
			text: `[{"question":"q","options":["a"],"answerIndex":0,"explanation":"e","hint":"h","score":3}]`,
		},
		{
			name: "object instead of array",
			text: `{"question":"q"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseQuiz(tt.text)
			require.Error(t, err)
		})
	}
}

func TestParseSubjectiveQuiz(t *testing.T) {
	valid := `[{"question":"Explain inertia","idealAnswer":"Resistance to change of motion","explanation":"first law","hint":"Newton"}]`

	questions, err := parseSubjectiveQuiz(valid)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Resistance to change of motion", questions[0].IdealAnswer)

	_, err = parseSubjectiveQuiz(`[{"question":"q","idealAnswer":"","explanation":"e","hint":"h"}]`)
	require.Error(t, err)
}

func TestParseFlashcards(t *testing.T) {
	cards, err := parseFlashcards("```json\n[{\"front\":\"F=ma\",\"back\":\"Newton's 2nd law\"}]\n```")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "F=ma", cards[0].Front)

	// Any non-negative count is acceptable, including zero.
	cards, err = parseFlashcards("[]")
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = parseFlashcards(`[{"front":"","back":"b"}]`)
	require.Error(t, err)
}

func TestServiceErrorWraps(t *testing.T) {
	_, err := parseQuiz("no json here")
	require.Error(t, err)

	wrapped := serviceErr("quiz", err)
	var service *ServiceError
	require.ErrorAs(t, wrapped, &service)
	assert.Equal(t, "quiz", service.Op)
	assert.Contains(t, wrapped.Error(), "tutor quiz:")
}
