package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// ListUniversities fetches the full catalog. The endpoint has historically
// returned either {"universities": [...]} or a bare array; both shapes are
// accepted here so callers only ever see one.
func (c *Client) ListUniversities(ctx context.Context) ([]models.University, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/api/universities/list", &raw); err != nil {
		return nil, err
	}
	return decodeUniversityList(raw)
}

func decodeUniversityList(raw json.RawMessage) ([]models.University, error) {
	var wrapped struct {
		Universities []models.University `json:"universities"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Universities != nil {
		return wrapped.Universities, nil
	}

	var bare []models.University
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("unexpected university list shape: %w", err)
	}
	return bare, nil
}

// wireMajor tolerates the two field spellings the majors endpoint has used.
type wireMajor struct {
	ID        int    `json:"id"`
	MajorID   int    `json:"major_id"`
	Name      string `json:"name"`
	MajorName string `json:"major_name"`
}

func (w wireMajor) normalize() models.Major {
	m := models.Major{ID: w.ID, Name: w.Name}
	if m.ID == 0 {
		m.ID = w.MajorID
	}
	if m.Name == "" {
		m.Name = w.MajorName
	}
	return m
}

// ListMajors fetches the majors offered by a university.
func (c *Client) ListMajors(ctx context.Context, universityID int) ([]models.Major, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/api/universities/%d/majors", universityID), &raw); err != nil {
		return nil, err
	}

	var wrapped struct {
		Majors []wireMajor `json:"majors"`
	}
	wire := wrapped.Majors
	if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.Majors == nil {
		var bare []wireMajor
		if err := json.Unmarshal(raw, &bare); err != nil {
			return nil, fmt.Errorf("unexpected majors shape: %w", err)
		}
		wire = bare
	}

	majors := make([]models.Major, len(wire))
	for i, w := range wire {
		majors[i] = w.normalize()
	}
	return majors, nil
}

// Recommend fetches personalized university recommendations for a user.
func (c *Client) Recommend(ctx context.Context, userID, maxResults int) ([]models.University, error) {
	body := map[string]int{"user_id": userID, "max_results": maxResults}

	var resp struct {
		Recommendations []models.University `json:"recommendations"`
	}
	if err := c.postJSON(ctx, "/universities/recommend", body, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}
