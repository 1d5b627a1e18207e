package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/repositories"
	"github.com/eburon/crm-service/internal/store"
	"github.com/eburon/crm-service/internal/utils"
)

type TaskService interface {
	GetTasks(ctx context.Context) ([]*models.Task, error)
	CreateTask(ctx context.Context, t *models.Task) error
	UpdateTask(ctx context.Context, t *models.Task) error
}

type taskService struct {
	remote repositories.TaskRepository
	local  *store.Store
}

func NewTaskService(remote repositories.TaskRepository, local *store.Store) TaskService {
	return &taskService{remote: remote, local: local}
}

func (s *taskService) GetTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.remote.List(ctx)
	if err != nil {
		if shouldFallBack(err) {
			return s.local.ListTasks(ctx)
		}
		utils.Logger.WithError(err).Error("fetch tasks failed")
		return []*models.Task{}, nil
	}
	return tasks, nil
}

func (s *taskService) CreateTask(ctx context.Context, t *models.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	_ = s.local.CreateTask(ctx, t)
	if err := s.remote.Create(ctx, t); err != nil {
		utils.Logger.WithError(err).Error("create task failed")
		return err
	}
	return nil
}

func (s *taskService) UpdateTask(ctx context.Context, t *models.Task) error {
	_ = s.local.UpsertTask(ctx, t)
	if err := s.remote.Upsert(ctx, t); err != nil {
		utils.Logger.WithError(err).Error("update task failed")
		return err
	}
	return nil
}
