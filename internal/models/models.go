// Package models contains the data models for the StoryReel API.
package models

import (
	"time"
)

// VideoStyle represents the visual style a story is rendered in
type VideoStyle string

const (
	StyleCartoon    VideoStyle = "cartoon"
	StyleRealistic  VideoStyle = "realistic"
	StyleCinematic  VideoStyle = "cinematic"
	StyleAnime      VideoStyle = "anime"
	StyleMinimalist VideoStyle = "minimalist"
)

// IsValid checks if the style is a valid value
func (v VideoStyle) IsValid() bool {
	switch v {
	case StyleCartoon, StyleRealistic, StyleCinematic, StyleAnime, StyleMinimalist:
		return true
	}
	return false
}

// String returns the string representation
func (v VideoStyle) String() string {
	return string(v)
}

// VideoAspect represents the aspect ratio a story is rendered in
type VideoAspect string

const (
	AspectVertical   VideoAspect = "vertical"
	AspectSquare     VideoAspect = "square"
	AspectHorizontal VideoAspect = "horizontal"
)

// IsValid checks if the aspect is a valid value
func (a VideoAspect) IsValid() bool {
	switch a {
	case AspectVertical, AspectSquare, AspectHorizontal:
		return true
	}
	return false
}

// String returns the string representation
func (a VideoAspect) String() string {
	return string(a)
}

// StoryOptions holds the audio options chosen at creation time.
// The three flags are independent; any combination is allowed.
type StoryOptions struct {
	HasNarration    bool `json:"has_narration"`
	HasMusic        bool `json:"has_music"`
	HasSoundEffects bool `json:"has_sound_effects"`
}

// Story represents one video-generation request and its lifecycle state
type Story struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Style       VideoStyle   `json:"style"`
	Aspect      VideoAspect  `json:"aspect"`
	Options     StoryOptions `json:"options"`
	Status      Status       `json:"status"`
	// Progress is derived from Status via the status vocabulary and is never
	// set independently of a status transition
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Result fields, populated when the pipeline reaches complete
	VideoURL     string `json:"video_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// Error holds the failure message when Status is StatusError
	Error string `json:"error,omitempty"`
}
