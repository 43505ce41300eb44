package tutor

import (
	"encoding/json"
	"fmt"
	"strings"

	"studylab/models"
)

// extractJSON pulls the JSON document out of a model reply, tolerating code
// fences and surrounding prose. It returns the text between the first opening
// bracket and the matching last closing bracket.
func extractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)
	if fenced := strings.Index(text, "```"); fenced >= 0 {
		rest := text[fenced+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			text = strings.TrimSpace(rest[:end])
		}
	}

	start := strings.IndexAny(text, "[{")
	if start < 0 {
		return "", fmt.Errorf("response contains no JSON")
	}
	var end int
	if text[start] == '[' {
		end = strings.LastIndex(text, "]")
	} else {
		end = strings.LastIndex(text, "}")
	}
	if end <= start {
		return "", fmt.Errorf("response contains unterminated JSON")
	}
	return text[start : end+1], nil
}

// decodeStrict unmarshals into out rejecting unknown fields and trailing
// garbage, so a response that drifts from the agreed shape fails instead of
// being half-read.
func decodeStrict(text string, out any) error {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after JSON document")
	}
	return nil
}

func parseQuiz(text string) ([]models.QuizQuestion, error) {
	doc, err := extractJSON(text)
	if err != nil {
		return nil, err
	}
	var questions []models.QuizQuestion
	if err := decodeStrict(doc, &questions); err != nil {
		return nil, err
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("question %d is empty", i)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d has no options", i)
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %d: answerIndex %d out of range for %d options", i, q.AnswerIndex, len(q.Options))
		}
	}
	return questions, nil
}

func parseSubjectiveQuiz(text string) ([]models.SubjectiveQuestion, error) {
	doc, err := extractJSON(text)
	if err != nil {
		return nil, err
	}
	var questions []models.SubjectiveQuestion
	if err := decodeStrict(doc, &questions); err != nil {
		return nil, err
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.IdealAnswer) == "" {
			return nil, fmt.Errorf("question %d is missing question or idealAnswer", i)
		}
	}
	return questions, nil
}

func parseFlashcards(text string) ([]models.Flashcard, error) {
	doc, err := extractJSON(text)
	if err != nil {
		return nil, err
	}
	var cards []models.Flashcard
	if err := decodeStrict(doc, &cards); err != nil {
		return nil, err
	}
	for i, c := range cards {
		if strings.TrimSpace(c.Front) == "" || strings.TrimSpace(c.Back) == "" {
			return nil, fmt.Errorf("card %d is missing front or back", i)
		}
	}
	return cards, nil
}
