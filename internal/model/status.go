package model

// TaskStatus represents the status of a combine task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the task is probing inputs and launching ffmpeg
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusRunning means ffmpeg is processing
	TaskStatusRunning TaskStatus = "Running"

	// TaskStatusStopping means the task is in the process of stopping
	TaskStatusStopping TaskStatus = "Stopping"

	// TaskStatusStopped means the task was stopped by the user
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusRunning || ts == TaskStatusStopping
}

// IsFinished returns true if the task is in a finished state (completed, stopped, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped || ts == TaskStatusError
}
