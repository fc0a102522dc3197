package services

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyreel/storyreel/internal/apperrors"
	"github.com/storyreel/storyreel/internal/models"
	"github.com/storyreel/storyreel/internal/pipeline"
	"github.com/storyreel/storyreel/internal/store"
	"github.com/storyreel/storyreel/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestService wires a fresh store and a millisecond-scale pipeline.
func newTestService(t *testing.T) (*StoryService, *store.Store) {
	t.Helper()

	st := store.New()
	runner := pipeline.NewRunner(st, pipeline.Scale(pipeline.DefaultSchedule(), 0.002))
	t.Cleanup(runner.Stop)
	return NewStoryService(st, runner), st
}

func validRequest() *CreateStoryRequest {
	return &CreateStoryRequest{
		Title:       "Robot song",
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
	svc, _ := newTestService(t)

	story, err := svc.Create(validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, story.ID)
	assert.Equal(t, models.StatusPending, story.Status)
	assert.Equal(t, models.StatusPending.Progress(), story.Progress)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateStoryRequest)
		field  string
	}{
		{
			name:   "empty title",
			mutate: func(r *CreateStoryRequest) { r.Title = "" },
			field:  "title",
		},
		{
			name:   "whitespace title",
			mutate: func(r *CreateStoryRequest) { r.Title = "   " },
			field:  "title",
		},
		{
			name:   "empty description",
			mutate: func(r *CreateStoryRequest) { r.Description = "" },
			field:  "description",
		},
		{
			name:   "unknown style",
			mutate: func(r *CreateStoryRequest) { r.Style = "watercolor" },
			field:  "style",
		},
		{
			name:   "unknown aspect",
			mutate: func(r *CreateStoryRequest) { r.Aspect = "panoramic" },
			field:  "aspect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newTestService(t)

			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(req)
			require.Error(t, err)

			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.CodeValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Field)
			assert.Equal(t, 0, st.Len(), "nothing may be stored on validation failure")
		})
	}
}

func TestCreateSchedulesPipeline(t *testing.T) {
	svc, st := newTestService(t)

	story, err := svc.Create(validRequest())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		current, ok := st.Get(story.ID)
		return ok && current.Status == models.StatusComplete
	}, 2*time.Second, time.Millisecond)

	final, err := svc.Get(story.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, final.Progress)
	assert.Equal(t, pipeline.SampleVideoURL, final.VideoURL)
	assert.Equal(t, pipeline.SampleThumbnailURL, final.ThumbnailURL)
}

func TestGetMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get("story-missing")
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUpdatePreservesUntouchedFields(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(validRequest())
	require.NoError(t, err)

	title := "Robot symphony"
	updated, err := svc.Update(created.ID, &UpdateStoryRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Style, updated.Style)
	assert.Equal(t, created.Aspect, updated.Aspect)
	assert.Equal(t, created.Options, updated.Options)
}

func TestUpdateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(validRequest())
	require.NoError(t, err)

	empty := "  "
	_, err = svc.Update(created.ID, &UpdateStoryRequest{Title: &empty})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestSetStatusError(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(validRequest())
	require.NoError(t, err)

	message := "image generation quota exceeded"
	story, err := svc.SetStatus(created.ID, &SetStatusRequest{
		Status: models.StatusError,
		Error:  &message,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusError, story.Status)
	assert.Equal(t, 0, story.Progress)
	assert.Equal(t, message, story.Error)
}

func TestSetStatusUnknownValue(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(validRequest())
	require.NoError(t, err)

	_, err = svc.SetStatus(created.ID, &SetStatusRequest{Status: "rendering"})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidInput, appErr.Code)
}

func TestRetry(t *testing.T) {
	svc, st := newTestService(t)

	created, err := svc.Create(validRequest())
	require.NoError(t, err)

	message := "image generation quota exceeded"
	_, err = svc.SetStatus(created.ID, &SetStatusRequest{
		Status: models.StatusError,
		Error:  &message,
	})
	require.NoError(t, err)

	story, err := svc.Retry(created.ID)
	require.NoError(t, err)

	// Back at the start of the pipeline with the failure message cleared
	assert.Equal(t, models.StatusPending, story.Status)
	assert.Equal(t, 5, story.Progress)
	assert.Empty(t, story.Error)

	// The full stage sequence runs again
	require.Eventually(t, func() bool {
		current, ok := st.Get(created.ID)
		return ok && current.Status == models.StatusComplete
	}, 2*time.Second, time.Millisecond)
}

func TestRetryRequiresErrorStatus(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(validRequest())
	require.NoError(t, err)

	_, err = svc.Retry(created.ID)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeIllegalRetry, appErr.Code)
}

func TestRetryMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Retry("story-missing")
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestDeleteCancelsPipeline(t *testing.T) {
	svc, st := newTestService(t)

	created, err := svc.Create(validRequest())
	require.NoError(t, err)

	require.True(t, svc.Delete(created.ID))

	// Wait past the point where the schedule would have completed
	time.Sleep(150 * time.Millisecond)

	_, ok := st.Get(created.ID)
	assert.False(t, ok, "deleted story must stay deleted")
	assert.Equal(t, 0, st.Len())
}

func TestDeleteMissing(t *testing.T) {
	svc, _ := newTestService(t)

	assert.False(t, svc.Delete("story-missing"))
}
