package watch

import (
	"time"

	"github.com/storyreel/storyreel/internal/models"
)

// Messages for the tea program (polling-based)

// StoriesMsg is sent when a story snapshot arrives from the API
type StoriesMsg struct {
	Stories []models.Story
	Err     error
}

// TickMsg is sent periodically to trigger polling
type TickMsg struct {
	Time time.Time
}

// ActionDoneMsg is sent when a retry or delete call finishes
type ActionDoneMsg struct {
	Err error
}
