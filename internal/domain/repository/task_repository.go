package repository

import (
	"context"

	"github.com/taskhive/taskhive/internal/domain/entity"
)

// TaskRepository defines the interface for task store operations.
// Every method takes the owning user's ID so a caller can never reach
// another user's tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, userID, taskID string) (*entity.Task, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, userID, taskID string) error
}
