package watch

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/storyreel/storyreel/internal/models"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case TickMsg:
		return m, tea.Batch(fetchStories(m.client), tickCmd())
	case StoriesMsg:
		return m.handleStories(msg)
	case ActionDoneMsg:
		return m.handleActionDone(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Stories)-1 {
			m.Cursor++
		}
	case "r", "R":
		if story, ok := m.selected(); ok && story.Status == models.StatusError {
			return m, retryStory(m.client, story.ID)
		}
	case "x", "X":
		if story, ok := m.selected(); ok {
			return m, deleteStory(m.client, story.ID)
		}
	}
	return m, nil
}

// handleStories processes a fresh snapshot from the API
func (m Model) handleStories(msg StoriesMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Connected = false
		m.Err = msg.Err
		return m, nil
	}

	m.Connected = true
	m.Err = nil
	m.Stories = msg.Stories
	if m.Cursor >= len(m.Stories) {
		m.Cursor = len(m.Stories) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	return m, nil
}

// handleActionDone refreshes the snapshot after a retry or delete
func (m Model) handleActionDone(msg ActionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Err = msg.Err
		return m, nil
	}
	return m, fetchStories(m.client)
}
