// Package store provides the in-memory story store.
//
// The store is the authoritative holder of all story records for the lifetime
// of the process. There is no durability across restarts; a future backend
// will replace this with real persistence behind the same operations.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/storyreel/storyreel/internal/models"
)

// CreateInput contains the caller-supplied fields for a new story.
type CreateInput struct {
	Title       string
	Description string
	Style       models.VideoStyle
	Aspect      models.VideoAspect
	Options     models.StoryOptions
}

// Fields contains the optional fields of a partial update. Nil pointers leave
// the existing value untouched.
type Fields struct {
	Title        *string
	Description  *string
	Style        *models.VideoStyle
	Aspect       *models.VideoAspect
	Options      *models.StoryOptions
	VideoURL     *string
	ThumbnailURL *string
	Error        *string
}

// Store holds story records keyed by identifier, preserving insertion order.
// A single store-wide mutex serializes access; contention is low because
// pipeline transitions for one story never overlap in time.
type Store struct {
	mu      sync.RWMutex
	stories map[string]*models.Story
	order   []string

	// now is swappable for tests
	now func() time.Time
}

// New creates an empty story store.
func New() *Store {
	return &Store{
		stories: make(map[string]*models.Story),
		now:     time.Now,
	}
}

// Create inserts a new story with a fresh identifier, status pending and
// progress taken from the status vocabulary. Returns a copy of the record.
func (s *Store) Create(input CreateInput) models.Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	story := &models.Story{
		ID:          fmt.Sprintf("story-%s", uuid.NewString()),
		Title:       input.Title,
		Description: input.Description,
		Style:       input.Style,
		Aspect:      input.Aspect,
		Options:     input.Options,
		Status:      models.StatusPending,
		Progress:    models.StatusPending.Progress(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.stories[story.ID] = story
	s.order = append(s.order, story.ID)
	return *story
}

// List returns a snapshot of all stories in insertion order.
func (s *Store) List() []models.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Story, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.stories[id])
	}
	return out
}

// Get returns the story with the given identifier. Absence is an expected
// outcome, reported through the boolean rather than an error.
func (s *Store) Get(id string) (models.Story, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	story, ok := s.stories[id]
	if !ok {
		return models.Story{}, false
	}
	return *story, true
}

// UpdateFields merges the given fields into the existing record and refreshes
// the update timestamp. Untouched fields are preserved exactly.
func (s *Store) UpdateFields(id string, fields Fields) (models.Story, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	story, ok := s.stories[id]
	if !ok {
		return models.Story{}, false
	}

	applyFields(story, fields)
	story.UpdatedAt = s.now().UTC()
	return *story, true
}

// UpdateStatus sets the status, recomputes progress from the status
// vocabulary and refreshes the update timestamp. Extra fields, when non-nil,
// are merged in the same update so that consumers never observe the status
// change without its attached data (result URLs on complete, message on
// error). Successor legality is not checked; any status is assignable.
func (s *Store) UpdateStatus(id string, status models.Status, extra *Fields) (models.Story, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	story, ok := s.stories[id]
	if !ok {
		return models.Story{}, false
	}

	story.Status = status
	story.Progress = status.Progress()
	if extra != nil {
		applyFields(story, *extra)
	}
	story.UpdatedAt = s.now().UTC()
	return *story, true
}

// Delete removes the story and reports whether a record was actually removed.
// Deleting a missing identifier is a no-op, not an error.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stories[id]; !ok {
		return false
	}

	delete(s.stories, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored stories.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func applyFields(story *models.Story, fields Fields) {
	if fields.Title != nil {
		story.Title = *fields.Title
	}
	if fields.Description != nil {
		story.Description = *fields.Description
	}
	if fields.Style != nil {
		story.Style = *fields.Style
	}
	if fields.Aspect != nil {
		story.Aspect = *fields.Aspect
	}
	if fields.Options != nil {
		story.Options = *fields.Options
	}
	if fields.VideoURL != nil {
		story.VideoURL = *fields.VideoURL
	}
	if fields.ThumbnailURL != nil {
		story.ThumbnailURL = *fields.ThumbnailURL
	}
	if fields.Error != nil {
		story.Error = *fields.Error
	}
}
