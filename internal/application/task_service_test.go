package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/domain/entity"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
)

type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*entity.Task // keyed by task ID
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]*entity.Task{}}
}

func (m *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *t
	m.tasks[t.ID] = &clone
	return nil
}

func (m *memTaskRepo) GetByID(_ context.Context, userID, taskID string) (*entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, repo.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (m *memTaskRepo) ListByUser(_ context.Context, userID string) ([]entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Task, 0)
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memTaskRepo) Update(_ context.Context, t *entity.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.tasks[t.ID]
	if !ok || cur.UserID != t.UserID {
		return repo.ErrNotFound
	}
	clone := *t
	m.tasks[t.ID] = &clone
	return nil
}

func (m *memTaskRepo) Delete(_ context.Context, userID, taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[taskID]
	if !ok || t.UserID != userID {
		return repo.ErrNotFound
	}
	delete(m.tasks, taskID)
	return nil
}

func TestTaskService_CRUDScopedToOwner(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(newMemTaskRepo(), nil)
	ctx := context.Background()
	due := time.Now().Add(24 * time.Hour).UTC()

	created, err := svc.CreateTask(ctx, "user-1", TaskInput{Title: "write report", DueDate: due})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)

	// Owner sees it, others do not.
	got, err := svc.GetTask(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "write report", got.Title)

	_, err = svc.GetTask(ctx, "user-2", created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	mine, err := svc.ListTasks(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := svc.ListTasks(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestTaskService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(newMemTaskRepo(), nil)
	ctx := context.Background()
	due := time.Now().Add(24 * time.Hour).UTC()

	created, err := svc.CreateTask(ctx, "user-1", TaskInput{Title: "initial", DueDate: due})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, "user-1", created.ID, TaskInput{Title: "done", Completed: true, DueDate: due})
	require.NoError(t, err)
	assert.Equal(t, "done", updated.Title)
	assert.True(t, updated.Completed)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	// A foreign user cannot update or delete.
	_, err = svc.UpdateTask(ctx, "user-2", created.ID, TaskInput{Title: "hijack", DueDate: due})
	assert.ErrorIs(t, err, ErrTaskNotFound)
	err = svc.DeleteTask(ctx, "user-2", created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	require.NoError(t, svc.DeleteTask(ctx, "user-1", created.ID))
	_, err = svc.GetTask(ctx, "user-1", created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = svc.DeleteTask(ctx, "user-1", created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
