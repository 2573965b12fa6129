package service

import (
	"context"

	"github.com/hr-records-api/internal/repository"
)

// ProjectDateService согласует производные даты проекта с датами его задач.
// Вызывается явно после каждой мутации задачи, в той же транзакции
type ProjectDateService interface {
	Sync(ctx context.Context, projectID int64) error
}

type projectDateService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewProjectDateService создаёт новый экземпляр сервиса
func NewProjectDateService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) ProjectDateService {
	return &projectDateService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// Sync пересчитывает start_date и end_date проекта как min/max по его задачам.
// Операция идемпотентна; у проекта без задач даты обнуляются
func (s *projectDateService) Sync(ctx context.Context, projectID int64) error {
	start, end, err := s.taskRepo.DateSpan(ctx, projectID)
	if err != nil {
		return err
	}
	return s.projectRepo.UpdateDateSpan(ctx, projectID, start, end)
}
