package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storyreel/storyreel/internal/models"
	"github.com/storyreel/storyreel/internal/services"
	"github.com/storyreel/storyreel/internal/utils"
)

// storiesBasePath is used for the Location header on creation.
const storiesBasePath = "/api/v1/stories"

// CreateStoryInput is the JSON payload for creating a story.
type CreateStoryInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Style       models.VideoStyle   `json:"style"`
	Aspect      models.VideoAspect  `json:"aspect"`
	Options     models.StoryOptions `json:"options"`
}

// UpdateStoryInput is the JSON payload for a partial story update.
// Absent fields are left untouched.
type UpdateStoryInput struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Style       *models.VideoStyle   `json:"style"`
	Aspect      *models.VideoAspect  `json:"aspect"`
	Options     *models.StoryOptions `json:"options"`
}

// UpdateStatusInput is the JSON payload for a status transition.
type UpdateStatusInput struct {
	Status models.Status `json:"status"`
	// Error carries the failure message alongside an error status
	Error *string `json:"error"`
	// Result URLs, attached alongside a complete status
	VideoURL     *string `json:"video_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// ListStories returns all stories in insertion order. Consumers poll this
// endpoint and filter by status category themselves.
func (h *Handlers) ListStories(c *gin.Context) {
	stories := h.storySvc.List()
	utils.ListSuccess(c, stories, len(stories))
}

// GetStory returns a single story by ID
func (h *Handlers) GetStory(c *gin.Context) {
	story, err := h.storySvc.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Story")
		return
	}
	utils.Success(c, story)
}

// CreateStory creates a new story and schedules its generation pipeline
func (h *Handlers) CreateStory(c *gin.Context) {
	var input CreateStoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ProblemBadRequest(c, "Invalid JSON payload")
		return
	}

	// Collect validation errors so the client sees every problem at once
	var validationErrors []utils.ValidationError
	if strings.TrimSpace(input.Title) == "" {
		validationErrors = append(validationErrors, utils.ValidationError{
			Field:   "title",
			Message: "Title is required",
		})
	}
	if strings.TrimSpace(input.Description) == "" {
		validationErrors = append(validationErrors, utils.ValidationError{
			Field:   "description",
			Message: "Description is required",
		})
	}
	if !input.Style.IsValid() {
		validationErrors = append(validationErrors, utils.ValidationError{
			Field:   "style",
			Message: "Style must be one of: cartoon, realistic, cinematic, anime, minimalist",
		})
	}
	if !input.Aspect.IsValid() {
		validationErrors = append(validationErrors, utils.ValidationError{
			Field:   "aspect",
			Message: "Aspect must be one of: vertical, square, horizontal",
		})
	}
	if len(validationErrors) > 0 {
		utils.ProblemValidationError(c, "The request contains invalid data", validationErrors)
		return
	}

	story, err := h.storySvc.Create(&services.CreateStoryRequest{
		Title:       input.Title,
		Description: input.Description,
		Style:       input.Style,
		Aspect:      input.Aspect,
		Options:     input.Options,
	})
	if err != nil {
		handleServiceError(c, err, "Story")
		return
	}

	utils.Created(c, story.ID, storiesBasePath, story)
}

// UpdateStory applies a partial field update to a story
func (h *Handlers) UpdateStory(c *gin.Context) {
	var input UpdateStoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ProblemBadRequest(c, "Invalid JSON payload")
		return
	}

	story, err := h.storySvc.Update(c.Param("id"), &services.UpdateStoryRequest{
		Title:       input.Title,
		Description: input.Description,
		Style:       input.Style,
		Aspect:      input.Aspect,
		Options:     input.Options,
	})
	if err != nil {
		handleServiceError(c, err, "Story")
		return
	}
	utils.Success(c, story)
}

// UpdateStoryStatus applies a status transition, normally issued by an
// external pipeline actor (marking a story failed, or completing it with
// result URLs).
func (h *Handlers) UpdateStoryStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ProblemBadRequest(c, "Invalid JSON payload")
		return
	}

	story, err := h.storySvc.SetStatus(c.Param("id"), &services.SetStatusRequest{
		Status:       input.Status,
		Error:        input.Error,
		VideoURL:     input.VideoURL,
		ThumbnailURL: input.ThumbnailURL,
	})
	if err != nil {
		handleServiceError(c, err, "Story")
		return
	}
	utils.Success(c, story)
}

// RetryStory resets a failed story to pending and reschedules its pipeline
func (h *Handlers) RetryStory(c *gin.Context) {
	story, err := h.storySvc.Retry(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Story")
		return
	}
	utils.Success(c, story)
}

// DeleteStory removes a story and cancels its pending pipeline transitions
func (h *Handlers) DeleteStory(c *gin.Context) {
	if !h.storySvc.Delete(c.Param("id")) {
		utils.ProblemNotFound(c, "Story")
		return
	}
	utils.NoContent(c)
}
