package combine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GKaszewski/video-editor/internal/model"
	"github.com/GKaszewski/video-editor/internal/platform"
)

// partial output suffix inserted before the extension while ffmpeg writes
const partialInfix = ".partial"

// Options configures the combine service. Everything the service needs is
// passed in here; there is no ambient state shared between invocations.
type Options struct {
	FFmpegBinary  string // defaults to "ffmpeg"
	FFprobeBinary string // defaults to "ffprobe"
	Overwrite     bool   // allow replacing an existing output file
	KeepPartial   bool   // keep the partial output on failure instead of removing it
}

// Service handles combine operations
type Service struct {
	opts       Options
	tasks      map[string]*model.CombineTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.CombineTask) // callback for UI updates
}

// NewService creates a new combine service
func NewService(opts Options) *Service {
	if opts.FFmpegBinary == "" {
		opts.FFmpegBinary = FFmpegCommand
	}
	if opts.FFprobeBinary == "" {
		opts.FFprobeBinary = FFprobeCommand
	}
	return &Service{
		opts:  opts,
		tasks: make(map[string]*model.CombineTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.CombineTask)) {
	s.onUpdate = callback
}

// StartCombine validates the selection and starts the combine in the
// background. Only one task runs at a time; a second call while a task is
// active returns ErrTaskActive.
func (s *Service) StartCombine(sel Selection) (*model.CombineTask, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// A freshly inserted task stays Pending until its goroutine is
	// scheduled, so Pending blocks a second start just like the active states.
	for _, task := range s.tasks {
		if task.Status.IsActive() || task.Status == model.TaskStatusPending {
			return nil, fmt.Errorf("%w: task %s", ErrTaskActive, task.ID)
		}
	}

	task := s.newTask(sel)
	s.tasks[task.ID] = task

	go s.run(context.Background(), task)

	return task, nil
}

// Combine validates the selection and runs the combine synchronously. The
// returned task carries the final status even when an error is returned.
func (s *Service) Combine(ctx context.Context, sel Selection) (*model.CombineTask, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	s.tasksMutex.Lock()
	task := s.newTask(sel)
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()

	err := s.run(ctx, task)
	return task, err
}

// Stop requests cancellation of a running task
func (s *Service) Stop(taskID string) error {
	s.tasksMutex.Lock()

	task, exists := s.tasks[taskID]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("combine task not found: %s", taskID)
	}

	if !task.Status.IsActive() {
		s.tasksMutex.Unlock()
		return fmt.Errorf("combine task is not active: %s", task.Status)
	}

	task.Status = model.TaskStatusStopping
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	return nil
}

// GetTask returns a combine task by ID
func (s *Service) GetTask(taskID string) (*model.CombineTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// newTask builds a pending task from a validated selection. Callers hold no
// lock requirements; the task is not yet shared.
func (s *Service) newTask(sel Selection) *model.CombineTask {
	return &model.CombineTask{
		ID:         generateTaskID(),
		Inputs:     append([]string(nil), sel.Inputs...),
		OutputPath: sel.Output,
		Volume:     sel.Volume,
		Status:     model.TaskStatusPending,
		StartedAt:  time.Now(),
	}
}

// run performs the actual combine: probe inputs, build the invocation, run
// ffmpeg against a partial output path, and rename it into place on success.
func (s *Service) run(ctx context.Context, task *model.CombineTask) error {
	s.setStatus(task, model.TaskStatusStarting)

	err := s.execute(ctx, task)

	s.tasksMutex.Lock()
	switch {
	case errors.Is(err, context.Canceled):
		task.Status = model.TaskStatusStopped
	case err != nil:
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	default:
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	return err
}

func (s *Service) execute(ctx context.Context, task *model.CombineTask) error {
	// Resolve both tools before touching the filesystem so a missing
	// installation fails with nothing written.
	if _, err := LookupTool(s.opts.FFprobeBinary); err != nil {
		return err
	}
	ffmpegPath, err := LookupTool(s.opts.FFmpegBinary)
	if err != nil {
		return err
	}

	if !s.opts.Overwrite && platform.FileExists(task.OutputPath) {
		return fmt.Errorf("%w: %s", ErrOutputExists, task.OutputPath)
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(task.OutputPath)); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Monitor for stop requests
	go func() {
		for {
			s.tasksMutex.RLock()
			status := task.Status
			s.tasksMutex.RUnlock()

			if status == model.TaskStatusStopping {
				cancel()
				return
			}
			if status.IsFinished() {
				return
			}
			time.Sleep(100 * time.Millisecond)
		}
	}()

	inputs := make([]InputInfo, 0, len(task.Inputs))
	for _, path := range task.Inputs {
		info, err := ProbeInput(ctx, s.opts.FFprobeBinary, path)
		if err != nil {
			return fmt.Errorf("failed to probe %s: %w", path, err)
		}
		inputs = append(inputs, info)
	}
	totalDuration := TotalDurationSec(inputs)

	partialPath := PartialOutputPath(task.OutputPath)
	args := BuildFFmpegArgs(inputs, task.Volume, partialPath)
	log.Printf("Running ffmpeg for task %s: %d inputs, volume %g, output %s",
		task.ID, len(inputs), task.Volume, task.OutputPath)

	s.setStatus(task, model.TaskStatusRunning)

	err = runFFmpeg(ctx, ffmpegPath, args, func(seconds float64) {
		s.updateProgress(task, seconds, totalDuration)
	})
	if err != nil {
		if !s.opts.KeepPartial {
			os.Remove(partialPath)
		}
		return err
	}

	if err := os.Rename(partialPath, task.OutputPath); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

// setStatus transitions the task and notifies the UI
func (s *Service) setStatus(task *model.CombineTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// updateProgress converts processed seconds into a task percentage
func (s *Service) updateProgress(task *model.CombineTask, seconds, totalDuration float64) {
	if totalDuration <= 0 {
		return
	}

	progress := seconds / totalDuration
	if progress > 1.0 {
		progress = 1.0
	}

	s.tasksMutex.Lock()
	task.Progress = progress
	task.Percent = int(progress * 100)
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set. The callback receives a
// snapshot so it can read the fields without holding the service mutex while
// the service goroutine keeps writing progress.
func (s *Service) notifyUpdate(task *model.CombineTask) {
	if s.onUpdate == nil {
		return
	}
	s.tasksMutex.RLock()
	snapshot := *task
	s.tasksMutex.RUnlock()
	s.onUpdate(&snapshot)
}

// PartialOutputPath returns the sibling path ffmpeg writes to before the
// result is renamed onto the real output. Keeping the extension intact lets
// ffmpeg pick the muxer from it.
func PartialOutputPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	base := strings.TrimSuffix(outputPath, ext)
	return base + partialInfix + ext
}

// generateTaskID generates a unique task ID using UUID v7 for better
// uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
