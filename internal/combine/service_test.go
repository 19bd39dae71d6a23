package combine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GKaszewski/video-editor/internal/model"
)

func TestNewService_Defaults(t *testing.T) {
	service := NewService(Options{})

	if service.opts.FFmpegBinary != FFmpegCommand {
		t.Errorf("Expected default ffmpeg binary, got %s", service.opts.FFmpegBinary)
	}
	if service.opts.FFprobeBinary != FFprobeCommand {
		t.Errorf("Expected default ffprobe binary, got %s", service.opts.FFprobeBinary)
	}
	if len(service.tasks) != 0 {
		t.Errorf("Expected empty tasks map, got %d items", len(service.tasks))
	}
}

func TestStartCombine_InvalidSelection(t *testing.T) {
	service := NewService(Options{})

	_, err := service.StartCombine(Selection{Volume: 1.0})
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("Expected ErrInvalidSelection, got: %v", err)
	}

	if len(service.tasks) != 0 {
		t.Error("No task should be created for an invalid selection")
	}
}

func TestStartCombine_RejectsSecondActiveTask(t *testing.T) {
	service := NewService(Options{})
	input := tempVideoFile(t)

	sel := Selection{Inputs: []string{input}, Output: filepath.Join(t.TempDir(), "out.mp4"), Volume: 1.0}

	// Plant an active task directly; starting a real one would need ffmpeg.
	service.tasksMutex.Lock()
	active := &model.CombineTask{ID: "combine-active", Status: model.TaskStatusRunning}
	service.tasks[active.ID] = active
	service.tasksMutex.Unlock()

	_, err := service.StartCombine(sel)
	if !errors.Is(err, ErrTaskActive) {
		t.Errorf("Expected ErrTaskActive, got: %v", err)
	}
}

func TestStartCombine_RejectsSecondWhilePending(t *testing.T) {
	service := NewService(Options{
		FFmpegBinary:  "video-editor-missing-ffmpeg",
		FFprobeBinary: "video-editor-missing-ffprobe",
	})

	// Hold the first task in place by blocking its first update, so it is
	// still Pending or Starting when the second call arrives.
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	service.SetUpdateCallback(func(*model.CombineTask) { <-release })

	sel := Selection{
		Inputs: []string{tempVideoFile(t)},
		Output: filepath.Join(t.TempDir(), "out.mp4"),
		Volume: 1.0,
	}

	if _, err := service.StartCombine(sel); err != nil {
		t.Fatalf("First StartCombine failed: %v", err)
	}

	_, err := service.StartCombine(sel)
	if !errors.Is(err, ErrTaskActive) {
		t.Errorf("Expected ErrTaskActive for back-to-back StartCombine, got: %v", err)
	}
}

func TestCombine_ToolNotFound(t *testing.T) {
	service := NewService(Options{
		FFmpegBinary:  "video-editor-missing-ffmpeg",
		FFprobeBinary: "video-editor-missing-ffprobe",
	})

	input := tempVideoFile(t)
	output := filepath.Join(t.TempDir(), "out.mp4")
	sel := Selection{Inputs: []string{input}, Output: output, Volume: 1.0}

	task, err := service.Combine(context.Background(), sel)
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("Expected ErrToolNotFound, got: %v", err)
	}

	if task.Status != model.TaskStatusError {
		t.Errorf("Expected task status Error, got %s", task.Status)
	}
	if task.LastError == "" {
		t.Error("Expected LastError to be set")
	}

	// A missing tool must not leave anything at or near the output path.
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("Output file should not exist after ToolNotFound")
	}
	if _, err := os.Stat(PartialOutputPath(output)); !os.IsNotExist(err) {
		t.Error("Partial file should not exist after ToolNotFound")
	}
}

func TestCombine_TaskRecorded(t *testing.T) {
	service := NewService(Options{
		FFmpegBinary:  "video-editor-missing-ffmpeg",
		FFprobeBinary: "video-editor-missing-ffprobe",
	})

	input := tempVideoFile(t)
	sel := Selection{Inputs: []string{input}, Output: filepath.Join(t.TempDir(), "out.mp4"), Volume: 1.5}

	task, _ := service.Combine(context.Background(), sel)

	retrieved, exists := service.GetTask(task.ID)
	if !exists {
		t.Fatal("Task should exist in service")
	}
	if retrieved.Volume != 1.5 {
		t.Errorf("Expected volume 1.5, got %f", retrieved.Volume)
	}
	if len(retrieved.Inputs) != 1 || retrieved.Inputs[0] != input {
		t.Errorf("Expected inputs to be preserved, got %v", retrieved.Inputs)
	}
	if retrieved.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set on a finished task")
	}
}

func TestStop_UnknownTask(t *testing.T) {
	service := NewService(Options{})

	err := service.Stop("combine-unknown")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected 'not found' error, got: %v", err)
	}
}

func TestStop_InactiveTask(t *testing.T) {
	service := NewService(Options{})

	service.tasksMutex.Lock()
	task := &model.CombineTask{ID: "combine-done", Status: model.TaskStatusCompleted}
	service.tasks[task.ID] = task
	service.tasksMutex.Unlock()

	err := service.Stop(task.ID)
	if err == nil || !strings.Contains(err.Error(), "not active") {
		t.Errorf("Expected 'not active' error, got: %v", err)
	}
}

func TestUpdateCallback_ReceivesSnapshot(t *testing.T) {
	service := NewService(Options{})

	var updatedTask *model.CombineTask
	service.SetUpdateCallback(func(task *model.CombineTask) {
		updatedTask = task
	})

	task := &model.CombineTask{
		ID:      "combine-test",
		Status:  model.TaskStatusRunning,
		Percent: 40,
	}
	service.notifyUpdate(task)

	if updatedTask == nil {
		t.Fatal("Expected update callback to be called")
	}
	if updatedTask.ID != task.ID || updatedTask.Status != task.Status || updatedTask.Percent != 40 {
		t.Errorf("Expected callback to see the task's values, got %+v", updatedTask)
	}

	// The callback gets a copy, so later service-side writes do not race
	// with the UI reading the fields.
	task.Percent = 90
	if updatedTask.Percent != 40 {
		t.Errorf("Callback task should be a snapshot, saw Percent=%d", updatedTask.Percent)
	}
}

func TestPartialOutputPath(t *testing.T) {
	tests := []struct {
		output   string
		expected string
	}{
		{"/videos/out.mp4", "/videos/out.partial.mp4"},
		{"out.mkv", "out.partial.mkv"},
		{"/videos/no-ext", "/videos/no-ext.partial"},
	}

	for _, test := range tests {
		if result := PartialOutputPath(test.output); result != test.expected {
			t.Errorf("PartialOutputPath(%s) = %s, expected %s", test.output, result, test.expected)
		}
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	time.Sleep(1 * time.Millisecond)
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}
	if !strings.HasPrefix(id1, TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", TaskIDPrefix, id1)
	}
}
