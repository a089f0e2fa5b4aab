package gemini

import (
	"context"
	"fmt"

	"github.com/shirinlakhani/codejudge"
)

// Compile-time interface verification.
var _ codejudge.Judge = (*Judge)(nil)

// Judge implements codejudge.Judge using Google Gemini. Temperature is
// pinned to zero so repeated runs over the same input produce reproducible
// scoring; this program is the repeatability mechanism for an LLM judge.
type Judge struct {
	client GenerativeClient
	model  string
}

// NewJudge creates a new Judge.
func NewJudge(client GenerativeClient, model string) *Judge {
	return &Judge{client: client, model: model}
}

// Evaluate sends the rubric as the system instruction and the code as the
// user content, and returns the model's raw textual response. The response
// is expected to be JSON after normalization but is not parsed here.
func (j *Judge) Evaluate(ctx context.Context, rubric, code string) (string, error) {
	contents := []*Content{{
		Parts: []*Part{{Text: code}},
	}}

	temp := float32(0)
	config := &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{Text: rubric}},
		},
		Temperature: &temp,
	}

	resp, err := j.client.GenerateContent(ctx, j.model, contents, config)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("gemini: returned nil response")
	}

	return resp.Text, nil
}

// GenerativeClient abstracts the Gemini API for testing.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

// Content represents a message in a Gemini conversation.
type Content struct {
	Parts []*Part
}

// Part represents a part of a message.
type Part struct {
	Text string
}

// GenerateContentConfig holds configuration for content generation.
type GenerateContentConfig struct {
	SystemInstruction *Content
	Temperature       *float32
}

// GenerateContentResponse holds the response from content generation.
type GenerateContentResponse struct {
	Text string
}

// MockGenerativeClient is a mock implementation of GenerativeClient for testing.
type MockGenerativeClient struct {
	GenerateContentFn func(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

func (m *MockGenerativeClient) GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error) {
	return m.GenerateContentFn(ctx, model, contents, config)
}

// APIError represents an error from the Gemini API with HTTP status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
