package watch

import (
	"fmt"
	"strings"

	"github.com/storyreel/storyreel/internal/models"
)

const progressBarWidth = 20

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("StoryReel Dashboard"))
	b.WriteString("\n")

	if !m.Connected {
		b.WriteString(ErrorStyle.Render("Not connected to the API"))
		if m.Err != nil {
			b.WriteString("\n")
			b.WriteString(InfoStyle.Render(m.Err.Error()))
		}
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
		return b.String()
	}

	if len(m.Stories) == 0 {
		b.WriteString(InfoStyle.Render("No stories yet. Create one via the API to watch it here."))
		b.WriteString("\n\n")
	}

	for i, story := range m.Stories {
		b.WriteString(m.renderStory(i, story))
		b.WriteString("\n")
	}

	if m.Err != nil {
		b.WriteString(ErrorStyle.Render("Last action failed: " + m.Err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("up/down: select | r: retry failed | x: delete | q: quit"))
	return b.String()
}

// renderStory renders one dashboard row with a progress bar and status label
func (m Model) renderStory(index int, story models.Story) string {
	cursor := "  "
	title := story.Title
	if index == m.Cursor {
		cursor = "> "
		title = SelectedStyle.Render(title)
	}

	switch story.Status {
	case models.StatusError:
		message := story.Error
		if message == "" {
			// Generic fallback when the pipeline attached no message
			message = "Something went wrong during generation"
		}
		return fmt.Sprintf("%s%s\n    %s", cursor, title,
			ErrorStyle.Render(fmt.Sprintf("%s: %s (press 'r' to retry)", story.Status.Label(), message)))
	case models.StatusComplete:
		return fmt.Sprintf("%s%s\n    %s %s", cursor, title,
			CompleteStyle.Render(story.Status.Label()),
			InfoStyle.Render(story.VideoURL))
	default:
		return fmt.Sprintf("%s%s\n    %s %3d%% %s", cursor, title,
			renderProgressBar(story.Progress),
			story.Progress,
			InfoStyle.Render(story.Status.Label()))
	}
}

// renderProgressBar renders a fixed-width unicode progress bar
func renderProgressBar(progress int) string {
	filled := progress * progressBarWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	return ProgressStyle.Render(bar)
}
