// Package pipeline provides the simulated story generation pipeline.
//
// A real deployment hands stories to an external generation backend and gets
// status callbacks; here the runner stands in for that backend by advancing
// each story through the stage sequence on a fixed timed schedule.
package pipeline

import (
	"sync"
	"time"

	"github.com/storyreel/storyreel/internal/models"
	"github.com/storyreel/storyreel/internal/store"
	"github.com/storyreel/storyreel/pkg/logger"
)

// Stage is one scheduled status transition, fired at Offset after scheduling.
type Stage struct {
	Status models.Status
	Offset time.Duration
}

// Sample result assets attached when a story completes, standing in for real
// rendered output.
const (
	SampleVideoURL     = "https://sample-videos.com/video123/mp4/720/big_buck_bunny_720p_1mb.mp4"
	SampleThumbnailURL = "https://picsum.photos/300/200"
)

// DefaultSchedule returns the production stage schedule. Delays are staggered
// and increasing: evaluation and scripting are quick, image and video
// generation take the longest. Reimplementations of the backend must keep
// this ordering.
func DefaultSchedule() []Stage {
	return []Stage{
		{Status: models.StatusEvaluating, Offset: 3 * time.Second},
		{Status: models.StatusWritingScript, Offset: 6 * time.Second},
		{Status: models.StatusGeneratingImages, Offset: 10 * time.Second},
		{Status: models.StatusCreatingNarration, Offset: 15 * time.Second},
		{Status: models.StatusGeneratingMusic, Offset: 20 * time.Second},
		{Status: models.StatusCreatingVideo, Offset: 25 * time.Second},
		{Status: models.StatusAssembling, Offset: 30 * time.Second},
		{Status: models.StatusComplete, Offset: 35 * time.Second},
	}
}

// Scale returns a copy of the schedule with every offset multiplied by
// factor. Used to speed the pipeline up for demos and tests.
func Scale(schedule []Stage, factor float64) []Stage {
	scaled := make([]Stage, len(schedule))
	for i, stage := range schedule {
		scaled[i] = Stage{
			Status: stage.Status,
			Offset: time.Duration(float64(stage.Offset) * factor),
		}
	}
	return scaled
}

// Runner advances stories through the generation stages on a timed schedule.
// Each story gets one cancellable job; deleting a story cancels its pending
// transitions so they can never resurrect the record.
type Runner struct {
	store    *store.Store
	schedule []Stage

	mu      sync.Mutex
	jobs    map[string]chan struct{}
	stopped bool
	wg      sync.WaitGroup
}

// NewRunner creates a runner that applies the given schedule against the
// store. A nil schedule selects the default production schedule.
func NewRunner(st *store.Store, schedule []Stage) *Runner {
	if schedule == nil {
		schedule = DefaultSchedule()
	}
	return &Runner{
		store:    st,
		schedule: schedule,
		jobs:     make(map[string]chan struct{}),
	}
}

// Schedule starts the stage sequence for the given story. Scheduling an
// identifier that already has a running job replaces that job, so a retry
// restarts the sequence from the top.
func (r *Runner) Schedule(id string) {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	if cancel, ok := r.jobs[id]; ok {
		close(cancel)
	}
	cancel := make(chan struct{})
	r.jobs[id] = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go r.run(id, cancel)
}

// Cancel stops all pending transitions for the given story. Cancelling an
// identifier without a job is a no-op.
func (r *Runner) Cancel(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cancel, ok := r.jobs[id]; ok {
		close(cancel)
		delete(r.jobs, id)
	}
}

// Active reports whether the story currently has a running job.
func (r *Runner) Active(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.jobs[id]
	return ok
}

// Stop cancels every running job and waits for the workers to exit. The
// runner accepts no new work afterwards.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopped = true
	for id, cancel := range r.jobs {
		close(cancel)
		delete(r.jobs, id)
	}
	r.mu.Unlock()

	r.wg.Wait()
}

// run fires the scheduled transitions for one story. Offsets are measured
// from scheduling time, so consecutive waits are the deltas between offsets.
func (r *Runner) run(id string, cancel chan struct{}) {
	defer r.wg.Done()
	defer r.release(id, cancel)

	start := time.Now()
	for _, stage := range r.schedule {
		timer := time.NewTimer(time.Until(start.Add(stage.Offset)))
		select {
		case <-cancel:
			timer.Stop()
			return
		case <-timer.C:
		}

		var extra *store.Fields
		if stage.Status == models.StatusComplete {
			videoURL := SampleVideoURL
			thumbnailURL := SampleThumbnailURL
			extra = &store.Fields{
				VideoURL:     &videoURL,
				ThumbnailURL: &thumbnailURL,
			}
		}

		if _, ok := r.store.UpdateStatus(id, stage.Status, extra); !ok {
			// Story was deleted mid-sequence; drop the remaining transitions
			logger.Debug("Story %s gone, abandoning pipeline", id)
			return
		}
		logger.Debug("Story %s advanced to %s", id, stage.Status)
	}
}

// release removes the job entry, but only if it still belongs to this worker.
// A reschedule may have replaced the entry while the worker was draining.
func (r *Runner) release(id string, cancel chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.jobs[id]; ok && current == cancel {
		delete(r.jobs, id)
	}
}
