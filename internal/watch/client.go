// Package watch implements the terminal dashboard that polls the StoryReel
// API and renders story progress.
package watch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/storyreel/storyreel/internal/models"
)

// Client is a thin HTTP client for the StoryReel API
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// storyList mirrors the API list response envelope
type storyList struct {
	Data  []models.Story `json:"data"`
	Total int            `json:"total"`
}

// ListStories fetches the current story snapshot
func (c *Client) ListStories() ([]models.Story, error) {
	resp, err := c.client.Get(c.baseURL + "/api/v1/stories")
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var list storyList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return list.Data, nil
}

// Retry asks the API to retry a failed story
func (c *Client) Retry(id string) error {
	resp, err := c.client.Post(c.baseURL+"/api/v1/stories/"+id+"/retry", "application/json", bytes.NewReader([]byte("{}")))
	if err != nil {
		return fmt.Errorf("failed to retry story: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Delete removes a story
func (c *Client) Delete(id string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+"/api/v1/stories/"+id, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete story: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
