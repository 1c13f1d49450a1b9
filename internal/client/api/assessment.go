package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// GenerateQuestions requests one question per category and returns them in
// the order the server declared them. The endpoint responds with a JSON
// object mapping category to question text; a plain map decode would lose
// that order, so the object is walked token by token instead.
func (c *Client) GenerateQuestions(ctx context.Context, categories []string) ([]models.Question, error) {
	body := map[string][]string{"list_category": categories}

	var raw json.RawMessage
	if err := c.postJSON(ctx, "/assessment/generatequestion", body, &raw); err != nil {
		return nil, err
	}
	return decodeOrderedQuestions(raw)
}

// decodeOrderedQuestions decodes a {"category": "question text", ...} object
// preserving declaration order, tagging entries with 1-based step numbers.
func decodeOrderedQuestions(raw []byte) ([]models.Question, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding questions: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("decoding questions: expected object, got %v", tok)
	}

	var questions []models.Question
	step := 1
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding questions: %w", err)
		}
		category, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decoding questions: non-string key %v", keyTok)
		}

		var text string
		if err := dec.Decode(&text); err != nil {
			return nil, fmt.Errorf("decoding question %q: %w", category, err)
		}

		questions = append(questions, models.Question{Step: step, Category: category, Text: text})
		step++
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding questions: %w", err)
	}
	return questions, nil
}

// Evaluate submits the complete ordered answer list and returns the ranked
// major recommendations.
func (c *Client) Evaluate(ctx context.Context, answers []models.Answer) ([]models.Recommendation, error) {
	body := map[string][]models.Answer{"user_data": answers}

	var resp struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := c.postJSON(ctx, "/assessment/evaluate", body, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

// MyResults fetches the user's completed-assessment history.
func (c *Client) MyResults(ctx context.Context) ([]models.AssessmentResult, error) {
	var resp struct {
		Results []models.AssessmentResult `json:"results"`
	}
	if err := c.getJSON(ctx, "/assessment/my-results", &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
