package watch

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/storyreel/storyreel/internal/models"
)

// Model represents the dashboard state (thin client, all state lives in the API)
type Model struct {
	client *Client

	// Local UI state (synced from the API)
	Stories   []models.Story
	Cursor    int
	Connected bool
	Err       error
}

// NewModel creates a new dashboard model
func NewModel(apiURL string) Model {
	return Model{
		client: NewClient(apiURL),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	// Start polling immediately
	return tea.Batch(
		fetchStories(m.client),
		tickCmd(),
	)
}

// selected returns the story under the cursor, if any
func (m Model) selected() (models.Story, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Stories) {
		return models.Story{}, false
	}
	return m.Stories[m.Cursor], true
}
