// Package tutor talks to an OpenAI-compatible chat-completions API on behalf
// of the study features: streamed tutoring replies, generated quizzes and
// flashcards, note condensing, and problem-photo analysis. Responses that do
// not match the agreed JSON shapes are rejected outright; no operation
// returns a partial result.
package tutor

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"studylab/models"
)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	VisionModel string
}

type Client struct {
	ai          *openai.Client
	model       string
	visionModel string
}

func NewClient(cfg Config) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	visionModel := cfg.VisionModel
	if visionModel == "" {
		visionModel = cfg.Model
	}

	return &Client{
		ai:          openai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		visionModel: visionModel,
	}
}

// StreamReply sends one conversation turn and forwards the reply to onChunk
// fragment by fragment, in emission order. history holds the prior turns;
// image, when non-nil, is attached to the new message inline. The stream is
// finite and not restartable: once this returns, the turn is over.
func (c *Client) StreamReply(ctx context.Context, message string, history []models.ChatMessage, image []byte, mimeType string, onChunk func(string)) error {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Text})
	}

	if len(image) > 0 {
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: message},
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL(image, mimeType)}},
			},
		})
	} else {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})
	}

	stream, err := c.ai.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return serviceErr("chat", err)
	}
	defer stream.Close()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return serviceErr("chat", err)
		}
		if len(resp.Choices) > 0 && resp.Choices[0].Delta.Content != "" {
			onChunk(resp.Choices[0].Delta.Content)
		}
	}
}

// GenerateQuiz returns count multiple-choice questions on topic. Each
// question is guaranteed to have options and an in-range answerIndex.
func (c *Client) GenerateQuiz(ctx context.Context, count int, topic string) ([]models.QuizQuestion, error) {
	text, err := c.complete(ctx, c.model, quizPrompt(count, topic))
	if err != nil {
		return nil, serviceErr("quiz", err)
	}
	questions, err := parseQuiz(text)
	if err != nil {
		return nil, serviceErr("quiz", err)
	}
	return questions, nil
}

// GenerateSubjectiveQuiz returns count open-ended questions on topic.
func (c *Client) GenerateSubjectiveQuiz(ctx context.Context, count int, topic string) ([]models.SubjectiveQuestion, error) {
	text, err := c.complete(ctx, c.model, subjectiveQuizPrompt(count, topic))
	if err != nil {
		return nil, serviceErr("subjective quiz", err)
	}
	questions, err := parseSubjectiveQuiz(text)
	if err != nil {
		return nil, serviceErr("subjective quiz", err)
	}
	return questions, nil
}

// GenerateFlashcards returns flashcards for topic. The prompt asks for six
// but the count is not contractual; callers must accept any length.
func (c *Client) GenerateFlashcards(ctx context.Context, topic string) ([]models.Flashcard, error) {
	text, err := c.complete(ctx, c.model, flashcardsPrompt(topic))
	if err != nil {
		return nil, serviceErr("flashcards", err)
	}
	cards, err := parseFlashcards(text)
	if err != nil {
		return nil, serviceErr("flashcards", err)
	}
	return cards, nil
}

// CondenseNotes summarizes raw note text into a structured study sheet.
func (c *Client) CondenseNotes(ctx context.Context, notes string) (string, error) {
	text, err := c.complete(ctx, c.model, condensePrompt(notes))
	if err != nil {
		return "", serviceErr("condense", err)
	}
	return text, nil
}

// AnalyzeImage runs the vision model over a photographed problem and returns
// a worked solution.
func (c *Client) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	resp, err := c.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.visionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL(image, mimeType)}},
					{Type: openai.ChatMessagePartTypeText, Text: analyzePrompt()},
				},
			},
		},
	})
	if err != nil {
		return "", serviceErr("analyze", err)
	}
	if len(resp.Choices) == 0 {
		return "", serviceErr("analyze", fmt.Errorf("response has no choices"))
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func dataURL(image []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
}
