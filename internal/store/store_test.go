package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyreel/storyreel/internal/models"
)

func testInput(title string) CreateInput {
	return CreateInput{
		Title:       title,
		Description: "A small robot discovers music",
		Style:       models.StyleCartoon,
		Aspect:      models.AspectVertical,
		Options: models.StoryOptions{
			HasNarration: true,
			HasMusic:     true,
		},
	}
}

func TestCreate(t *testing.T) {
	s := New()

	story := s.Create(testInput("Robot song"))

	assert.True(t, strings.HasPrefix(story.ID, "story-"))
	assert.Equal(t, "Robot song", story.Title)
	assert.Equal(t, models.StatusPending, story.Status)
	assert.Equal(t, 5, story.Progress)
	assert.False(t, story.CreatedAt.IsZero())
	assert.Equal(t, story.CreatedAt, story.UpdatedAt)
	assert.Empty(t, story.VideoURL)
	assert.Empty(t, story.Error)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	s := New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		story := s.Create(testInput("Robot song"))
		require.False(t, seen[story.ID], "duplicate identifier %s", story.ID)
		seen[story.ID] = true
	}
}

func TestGetMissing(t *testing.T) {
	s := New()

	_, ok := s.Get("story-missing")
	assert.False(t, ok)
}

func TestListInsertionOrder(t *testing.T) {
	s := New()

	first := s.Create(testInput("First"))
	second := s.Create(testInput("Second"))
	third := s.Create(testInput("Third"))

	stories := s.List()
	require.Len(t, stories, 3)
	assert.Equal(t, first.ID, stories[0].ID)
	assert.Equal(t, second.ID, stories[1].ID)
	assert.Equal(t, third.ID, stories[2].ID)
}

func TestUpdateFieldsPartial(t *testing.T) {
	s := New()
	created := s.Create(testInput("Robot song"))

	videoURL := "https://cdn.example.com/robot-song.mp4"
	updated, ok := s.UpdateFields(created.ID, Fields{VideoURL: &videoURL})
	require.True(t, ok)

	// Touched field applied
	assert.Equal(t, videoURL, updated.VideoURL)

	// Untouched fields preserved exactly
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Style, updated.Style)
	assert.Equal(t, created.Aspect, updated.Aspect)
	assert.Equal(t, created.Options, updated.Options)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.Progress, updated.Progress)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateFieldsMissing(t *testing.T) {
	s := New()

	title := "New title"
	_, ok := s.UpdateFields("story-missing", Fields{Title: &title})
	assert.False(t, ok)
}

func TestUpdateStatusRecomputesProgress(t *testing.T) {
	s := New()
	created := s.Create(testInput("Robot song"))

	updated, ok := s.UpdateStatus(created.ID, models.StatusGeneratingImages, nil)
	require.True(t, ok)
	assert.Equal(t, models.StatusGeneratingImages, updated.Status)
	assert.Equal(t, 40, updated.Progress)
}

func TestUpdateStatusWithExtraFields(t *testing.T) {
	s := New()
	created := s.Create(testInput("Robot song"))

	videoURL := "https://cdn.example.com/robot-song.mp4"
	thumbnailURL := "https://cdn.example.com/robot-song.jpg"
	updated, ok := s.UpdateStatus(created.ID, models.StatusComplete, &Fields{
		VideoURL:     &videoURL,
		ThumbnailURL: &thumbnailURL,
	})
	require.True(t, ok)

	// Status change and result fields land in the same update
	assert.Equal(t, models.StatusComplete, updated.Status)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, videoURL, updated.VideoURL)
	assert.Equal(t, thumbnailURL, updated.ThumbnailURL)
}

func TestUpdateStatusMissing(t *testing.T) {
	s := New()

	_, ok := s.UpdateStatus("story-missing", models.StatusComplete, nil)
	assert.False(t, ok)
}

func TestUpdateStatusClearsError(t *testing.T) {
	s := New()
	created := s.Create(testInput("Robot song"))

	message := "image generation quota exceeded"
	_, ok := s.UpdateStatus(created.ID, models.StatusError, &Fields{Error: &message})
	require.True(t, ok)

	cleared := ""
	updated, ok := s.UpdateStatus(created.ID, models.StatusPending, &Fields{Error: &cleared})
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Equal(t, 5, updated.Progress)
	assert.Empty(t, updated.Error)
}

func TestDelete(t *testing.T) {
	s := New()
	created := s.Create(testInput("Robot song"))

	assert.True(t, s.Delete(created.ID))
	assert.Equal(t, 0, s.Len())

	_, ok := s.Get(created.ID)
	assert.False(t, ok)

	// Idempotent no-op on repeat and on unknown identifiers
	assert.False(t, s.Delete(created.ID))
	assert.False(t, s.Delete("story-missing"))
	assert.Equal(t, 0, s.Len())
}

func TestDeletePreservesOrder(t *testing.T) {
	s := New()
	first := s.Create(testInput("First"))
	second := s.Create(testInput("Second"))
	third := s.Create(testInput("Third"))

	require.True(t, s.Delete(second.ID))

	stories := s.List()
	require.Len(t, stories, 2)
	assert.Equal(t, first.ID, stories[0].ID)
	assert.Equal(t, third.ID, stories[1].ID)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	s := New()
	created := s.Create(testInput("Robot song"))

	// Mutating the returned value must not leak into the store
	created.Title = "Mutated"
	stored, ok := s.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Robot song", stored.Title)

	list := s.List()
	list[0].Title = "Mutated again"
	stored, ok = s.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Robot song", stored.Title)
}
