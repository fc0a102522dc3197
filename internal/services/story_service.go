// Package services provides business logic services for the StoryReel API.
package services

import (
	"strings"

	"github.com/storyreel/storyreel/internal/apperrors"
	"github.com/storyreel/storyreel/internal/models"
	"github.com/storyreel/storyreel/internal/pipeline"
	"github.com/storyreel/storyreel/internal/store"
	"github.com/storyreel/storyreel/pkg/logger"
)

// StoryService handles business logic for story operations.
type StoryService struct {
	store    *store.Store
	pipeline *pipeline.Runner
}

// NewStoryService creates a new story service instance.
func NewStoryService(st *store.Store, runner *pipeline.Runner) *StoryService {
	return &StoryService{
		store:    st,
		pipeline: runner,
	}
}

// CreateStoryRequest contains the data needed to create a new story.
type CreateStoryRequest struct {
	Title       string
	Description string
	Style       models.VideoStyle
	Aspect      models.VideoAspect
	Options     models.StoryOptions
}

// UpdateStoryRequest contains the data needed to update an existing story.
// Nil fields are left untouched.
type UpdateStoryRequest struct {
	Title       *string
	Description *string
	Style       *models.VideoStyle
	Aspect      *models.VideoAspect
	Options     *models.StoryOptions
}

// SetStatusRequest contains a status transition and its attached data.
type SetStatusRequest struct {
	Status models.Status
	// Error is the failure message attached alongside an error status
	Error *string
	// Result URLs, normally attached alongside the complete status
	VideoURL     *string
	ThumbnailURL *string
}

// Create validates the request, stores the new story and schedules the
// generation pipeline for it.
func (s *StoryService) Create(req *CreateStoryRequest) (models.Story, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Story{}, apperrors.Validation("Title is required").WithField("title")
	}
	if strings.TrimSpace(req.Description) == "" {
		return models.Story{}, apperrors.Validation("Description is required").WithField("description")
	}
	if !req.Style.IsValid() {
		return models.Story{}, apperrors.Validation("Style must be one of: cartoon, realistic, cinematic, anime, minimalist").WithField("style")
	}
	if !req.Aspect.IsValid() {
		return models.Story{}, apperrors.Validation("Aspect must be one of: vertical, square, horizontal").WithField("aspect")
	}

	story := s.store.Create(store.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Style:       req.Style,
		Aspect:      req.Aspect,
		Options:     req.Options,
	})

	s.pipeline.Schedule(story.ID)
	logger.Info("Created story %s (%q), pipeline scheduled", story.ID, story.Title)
	return story, nil
}

// List returns all stories in insertion order.
func (s *StoryService) List() []models.Story {
	return s.store.List()
}

// Get returns the story with the given identifier.
func (s *StoryService) Get(id string) (models.Story, error) {
	story, ok := s.store.Get(id)
	if !ok {
		return models.Story{}, apperrors.NotFound("Story not found")
	}
	return story, nil
}

// Update applies a partial field update. Untouched fields are preserved.
func (s *StoryService) Update(id string, req *UpdateStoryRequest) (models.Story, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return models.Story{}, apperrors.Validation("Title cannot be empty").WithField("title")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return models.Story{}, apperrors.Validation("Description cannot be empty").WithField("description")
	}
	if req.Style != nil && !req.Style.IsValid() {
		return models.Story{}, apperrors.Validation("Style must be one of: cartoon, realistic, cinematic, anime, minimalist").WithField("style")
	}
	if req.Aspect != nil && !req.Aspect.IsValid() {
		return models.Story{}, apperrors.Validation("Aspect must be one of: vertical, square, horizontal").WithField("aspect")
	}

	story, ok := s.store.UpdateFields(id, store.Fields{
		Title:       req.Title,
		Description: req.Description,
		Style:       req.Style,
		Aspect:      req.Aspect,
		Options:     req.Options,
	})
	if !ok {
		return models.Story{}, apperrors.NotFound("Story not found")
	}
	return story, nil
}

// SetStatus applies a status transition along with its attached fields.
// Successor legality is deliberately not enforced; any vocabulary status is
// assignable at any time, matching the external pipeline contract.
func (s *StoryService) SetStatus(id string, req *SetStatusRequest) (models.Story, error) {
	if !req.Status.IsValid() {
		return models.Story{}, apperrors.InvalidInput("Unknown status value").WithField("status")
	}

	story, ok := s.store.UpdateStatus(id, req.Status, &store.Fields{
		Error:        req.Error,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
	})
	if !ok {
		return models.Story{}, apperrors.NotFound("Story not found")
	}

	if req.Status == models.StatusError {
		logger.Info("Story %s marked as failed: %s", id, story.Error)
	}
	return story, nil
}

// Retry resets a failed story to pending and reschedules the full stage
// sequence. The previous failure message is cleared. Only stories in error
// can be retried.
func (s *StoryService) Retry(id string) (models.Story, error) {
	story, ok := s.store.Get(id)
	if !ok {
		return models.Story{}, apperrors.NotFound("Story not found")
	}
	if story.Status != models.StatusError {
		return models.Story{}, apperrors.IllegalRetry("Only failed stories can be retried").
			WithInternal("story %s is %s", id, story.Status)
	}

	cleared := ""
	story, ok = s.store.UpdateStatus(id, models.StatusPending, &store.Fields{Error: &cleared})
	if !ok {
		return models.Story{}, apperrors.NotFound("Story not found")
	}

	s.pipeline.Schedule(id)
	logger.Info("Story %s reset to pending, pipeline rescheduled", id)
	return story, nil
}

// Delete cancels any pending pipeline transitions and removes the story.
// Reports whether a record was actually removed.
func (s *StoryService) Delete(id string) bool {
	s.pipeline.Cancel(id)
	removed := s.store.Delete(id)
	if removed {
		logger.Info("Deleted story %s", id)
	}
	return removed
}
