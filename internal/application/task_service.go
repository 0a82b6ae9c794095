package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/domain/entity"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService implements per-user task CRUD. The owning user ID comes
// from the verified request identity, never from the request body, so
// one user can never touch another user's tasks.
type TaskService struct {
	Tasks  repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(tasks repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Logger: logger}
}

type TaskInput struct {
	Title       string
	Description string
	Completed   bool
	DueDate     time.Time
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, in TaskInput) (*entity.Task, error) {
	now := time.Now().UTC()
	t := &entity.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("persist task failed")
		}
		return nil, err
	}
	return t, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]entity.Task, error) {
	return s.Tasks.ListByUser(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID string) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, userID, taskID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	return t, err
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, in TaskInput) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, userID, taskID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	t.Title = in.Title
	t.Description = in.Description
	t.Completed = in.Completed
	t.DueDate = in.DueDate
	t.UpdatedAt = time.Now().UTC()

	if err := s.Tasks.Update(ctx, t); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	err := s.Tasks.Delete(ctx, userID, taskID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}
