package watch

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pollInterval is the dashboard's polling cadence. Every pipeline transition
// becomes visible within one interval.
const pollInterval = 2 * time.Second

// fetchStories creates a command to poll the story snapshot
func fetchStories(client *Client) tea.Cmd {
	return func() tea.Msg {
		stories, err := client.ListStories()
		return StoriesMsg{
			Stories: stories,
			Err:     err,
		}
	}
}

// retryStory creates a command to retry a failed story
func retryStory(client *Client, id string) tea.Cmd {
	return func() tea.Msg {
		return ActionDoneMsg{Err: client.Retry(id)}
	}
}

// deleteStory creates a command to delete a story
func deleteStory(client *Client, id string) tea.Cmd {
	return func() tea.Msg {
		return ActionDoneMsg{Err: client.Delete(id)}
	}
}

// tickCmd creates a command that ticks on the polling interval
func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
