package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/store"
)

type fakeTaskRepo struct {
	err   error
	tasks []*models.Task
}

func (f *fakeTaskRepo) List(context.Context) ([]*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tasks, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, t *models.Task) error {
	if f.err != nil {
		return f.err
	}
	f.tasks = append(f.tasks, t)
	return nil
}

func (f *fakeTaskRepo) Upsert(_ context.Context, t *models.Task) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.tasks {
		if existing.ID == t.ID {
			f.tasks[i] = t
			return nil
		}
	}
	f.tasks = append(f.tasks, t)
	return nil
}

func TestCreateTaskDefaults(t *testing.T) {
	remote := &fakeTaskRepo{}
	local := store.New(store.Seed{})
	svc := NewTaskService(remote, local)

	task := &models.Task{Title: "Call Sophie back", DueDate: time.Now().Add(24 * time.Hour)}
	require.NoError(t, svc.CreateTask(ctx, task))
	require.NotEmpty(t, task.ID)
	require.False(t, task.CreatedAt.IsZero())
	require.Len(t, remote.tasks, 1)
}

func TestGetTasksFallsBackSoonestFirst(t *testing.T) {
	remote := &fakeTaskRepo{err: errUnreachable("tasks")}
	local := store.New(store.Seed{})
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, local.CreateTask(ctx, &models.Task{ID: "later", DueDate: base.Add(time.Hour)}))
	require.NoError(t, local.CreateTask(ctx, &models.Task{ID: "soon", DueDate: base}))
	svc := NewTaskService(remote, local)

	tasks, err := svc.GetTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "soon", tasks[0].ID)
}

func TestUpdateTaskPropagatesRemoteFailure(t *testing.T) {
	remote := &fakeTaskRepo{err: errUnreachable("tasks")}
	svc := NewTaskService(remote, store.New(store.Seed{}))

	err := svc.UpdateTask(ctx, &models.Task{ID: "t1", Completed: true})
	require.Error(t, err)
}
