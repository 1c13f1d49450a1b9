package api

import (
	"context"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// CreateChatSession asks the chatbot backend for a fresh session and returns
// its correlation token.
func (c *Client) CreateChatSession(ctx context.Context) (string, error) {
	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := c.postJSON(ctx, "/chatbot/university/session", nil, &resp); err != nil {
		return "", err
	}
	return resp.SessionID, nil
}

// ChatFilterOptions fetches the selectable filter values and the tuition
// range whose Max is the neutral default of the tuition filter.
func (c *Client) ChatFilterOptions(ctx context.Context) (models.FilterOptions, error) {
	var opts models.FilterOptions
	if err := c.getJSON(ctx, "/chatbot/university/filters", &opts); err != nil {
		return models.FilterOptions{}, err
	}
	return opts, nil
}

// chatRequest is the shared payload of both chatbot endpoints.
type chatRequest struct {
	Message   string             `json:"message"`
	SessionID string             `json:"session_id,omitempty"`
	Filters   models.ChatFilters `json:"filters"`
}

type chatResponse struct {
	Response     string              `json:"response"`
	SessionID    string              `json:"session_id"`
	Universities []models.University `json:"universities"`
}

func (c *Client) sendChat(ctx context.Context, path, message, sessionID string, filters models.ChatFilters) (models.ChatReply, error) {
	req := chatRequest{Message: message, SessionID: sessionID, Filters: filters}

	var resp chatResponse
	if err := c.postJSON(ctx, path, req, &resp); err != nil {
		return models.ChatReply{}, err
	}
	return models.ChatReply{
		Response:     resp.Response,
		SessionID:    resp.SessionID,
		Universities: resp.Universities,
	}, nil
}

// Chat sends a message to the conversational endpoint. The reply is
// markdown-formatted.
func (c *Client) Chat(ctx context.Context, message, sessionID string, filters models.ChatFilters) (models.ChatReply, error) {
	return c.sendChat(ctx, "/chatbot/university/chat", message, sessionID, filters)
}

// Query sends a message to the filtered-query endpoint. The reply is plain
// text.
func (c *Client) Query(ctx context.Context, message, sessionID string, filters models.ChatFilters) (models.ChatReply, error) {
	return c.sendChat(ctx, "/chatbot/university/query", message, sessionID, filters)
}

// CompareUniversities fetches full records for the universities selected
// for side-by-side comparison.
func (c *Client) CompareUniversities(ctx context.Context, ids []int) ([]models.University, error) {
	body := map[string][]int{"university_ids": ids}

	var resp struct {
		Universities []models.University `json:"universities"`
	}
	if err := c.postJSON(ctx, "/chatbot/university/compare", body, &resp); err != nil {
		return nil, err
	}
	return resp.Universities, nil
}
