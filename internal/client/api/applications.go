package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// CreateApplication opens a draft application and returns its id. The id is
// opaque to the client; it is threaded through subsequent calls exactly as
// received.
func (c *Client) CreateApplication(ctx context.Context, userID, universityID, majorID int, notes string) (string, error) {
	body := map[string]any{
		"user_id":       userID,
		"university_id": universityID,
		"major_id":      majorID,
	}
	if notes != "" {
		body["notes"] = notes
	}

	// The id arrives as a number or a string depending on backend version.
	var resp struct {
		ApplicationID json.Number `json:"application_id"`
	}
	if err := c.postJSON(ctx, "/api/applications/create", body, &resp); err != nil {
		return "", err
	}
	return resp.ApplicationID.String(), nil
}

// GetApplication fetches an application with its documents.
func (c *Client) GetApplication(ctx context.Context, id string) (models.Application, error) {
	var app models.Application
	if err := c.getJSON(ctx, "/api/applications/"+url.PathEscape(id), &app); err != nil {
		return models.Application{}, err
	}
	return app, nil
}

// UploadDocument uploads one document as multipart form data and returns the
// stored descriptor.
func (c *Client) UploadDocument(ctx context.Context, appID, filename string, file io.Reader, documentType string) (models.Document, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return models.Document{}, fmt.Errorf("building form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return models.Document{}, fmt.Errorf("reading file: %w", err)
	}
	if err := w.WriteField("document_type", documentType); err != nil {
		return models.Document{}, fmt.Errorf("building form: %w", err)
	}
	if err := w.Close(); err != nil {
		return models.Document{}, fmt.Errorf("building form: %w", err)
	}

	path := fmt.Sprintf("/api/applications/%s/upload", url.PathEscape(appID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return models.Document{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var doc models.Document
	if err := c.do(req, &doc); err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

// SubmitApplication moves a draft to Submitted. Local preconditions
// (documents present, user confirmation) are the caller's responsibility.
func (c *Client) SubmitApplication(ctx context.Context, id string) error {
	return c.postJSON(ctx, fmt.Sprintf("/api/applications/%s/submit", url.PathEscape(id)), nil, nil)
}

// ApplicationsPage is the listing of one user's applications.
type ApplicationsPage struct {
	Applications []models.Application `json:"applications"`
	TotalCount   int                  `json:"total_count"`
	StatusCounts map[string]int       `json:"status_counts"`
}

// ListUserApplications fetches a user's applications, optionally filtered by
// status.
func (c *Client) ListUserApplications(ctx context.Context, userID int, status string) (ApplicationsPage, error) {
	path := fmt.Sprintf("/api/applications/user/%d", userID)
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var page ApplicationsPage
	if err := c.getJSON(ctx, path, &page); err != nil {
		return ApplicationsPage{}, err
	}
	return page, nil
}

// NotificationsPage is the listing of a user's application notifications.
type NotificationsPage struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

// ListNotifications fetches a user's notifications.
func (c *Client) ListNotifications(ctx context.Context, userID int, unreadOnly bool) (NotificationsPage, error) {
	path := fmt.Sprintf("/api/applications/notifications/%d?unread_only=%t", userID, unreadOnly)

	var page NotificationsPage
	if err := c.getJSON(ctx, path, &page); err != nil {
		return NotificationsPage{}, err
	}
	return page, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string, userID int) error {
	path := fmt.Sprintf("/api/applications/notifications/%s/read?user_id=%d", url.PathEscape(notificationID), userID)
	return c.postJSON(ctx, path, nil, nil)
}
