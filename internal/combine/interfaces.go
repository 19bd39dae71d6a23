package combine

import (
	"context"

	"github.com/GKaszewski/video-editor/internal/model"
)

// Combiner defines the interface for the combine service.
type Combiner interface {
	SetUpdateCallback(func(*model.CombineTask))
	StartCombine(sel Selection) (*model.CombineTask, error)
	Combine(ctx context.Context, sel Selection) (*model.CombineTask, error)
	Stop(taskID string) error
	GetTask(taskID string) (*model.CombineTask, bool)
}
