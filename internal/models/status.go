package models

// Status represents the lifecycle state of a story
type Status string

const (
	StatusDraft             Status = "draft"
	StatusPending           Status = "pending"
	StatusEvaluating        Status = "evaluating"
	StatusWritingScript     Status = "writing-script"
	StatusGeneratingImages  Status = "generating-images"
	StatusCreatingNarration Status = "creating-narration"
	StatusGeneratingMusic   Status = "generating-music"
	StatusCreatingVideo     Status = "creating-video"
	StatusAssembling        Status = "assembling"
	StatusComplete          Status = "complete"
	StatusError             Status = "error"
)

// PipelineStages is the ordered stage sequence a story moves through during
// generation. Draft and error are out-of-band sentinels and are excluded.
var PipelineStages = []Status{
	StatusPending,
	StatusEvaluating,
	StatusWritingScript,
	StatusGeneratingImages,
	StatusCreatingNarration,
	StatusGeneratingMusic,
	StatusCreatingVideo,
	StatusAssembling,
	StatusComplete,
}

// statusLabels maps each status to its display label
var statusLabels = map[Status]string{
	StatusDraft:             "Draft",
	StatusPending:           "Pending",
	StatusEvaluating:        "Evaluating potential",
	StatusWritingScript:     "Writing script",
	StatusGeneratingImages:  "Generating images",
	StatusCreatingNarration: "Creating narration",
	StatusGeneratingMusic:   "Generating music",
	StatusCreatingVideo:     "Creating video",
	StatusAssembling:        "Assembling",
	StatusComplete:          "Complete",
	StatusError:             "Error",
}

// statusProgress maps each status to its progress percentage. Draft and error
// sit at 0 because they are not positions in the pipeline.
var statusProgress = map[Status]int{
	StatusDraft:             0,
	StatusPending:           5,
	StatusEvaluating:        10,
	StatusWritingScript:     20,
	StatusGeneratingImages:  40,
	StatusCreatingNarration: 60,
	StatusGeneratingMusic:   75,
	StatusCreatingVideo:     85,
	StatusAssembling:        95,
	StatusComplete:          100,
	StatusError:             0,
}

// IsValid checks if the status is a valid value
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// String returns the string representation
func (s Status) String() string {
	return string(s)
}

// Label returns the display label for the status, or "Unknown" for values
// outside the vocabulary. Unreachable through the API, which validates status
// values on the way in.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Progress returns the progress percentage for the status, or 0 for values
// outside the vocabulary.
func (s Status) Progress() int {
	return statusProgress[s]
}

// IsTerminal reports whether the pipeline issues no further transitions from
// this status. Error is terminal for the pipeline but user-retriable.
func (s Status) IsTerminal() bool {
	return s == StatusComplete || s == StatusError
}
