package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/dto"
	"github.com/hr-records-api/internal/repository"
)

// TaskService определяет бизнес-логику для задач. Каждая мутация задачи
// завершается синхронным пересчётом дат её проекта в той же транзакции
type TaskService interface {
	Create(ctx context.Context, caller domain.Caller, req *dto.CreateTaskRequest) (*domain.Task, error)
	GetByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Task, error)
	Update(ctx context.Context, caller domain.Caller, id int64, req *dto.UpdateTaskRequest) (*domain.Task, error)
	Delete(ctx context.Context, caller domain.Caller, id int64) error
}

type taskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	empRepo     repository.EmployeeRepository
	dates       ProjectDateService
	tx          repository.TxRunner
}

// NewTaskService создаёт новый экземпляр сервиса
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	empRepo repository.EmployeeRepository,
	dates ProjectDateService,
	tx repository.TxRunner,
) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		empRepo:     empRepo,
		dates:       dates,
		tx:          tx,
	}
}

func (s *taskService) Create(ctx context.Context, caller domain.Caller, req *dto.CreateTaskRequest) (*domain.Task, error) {
	if !caller.IsStaff {
		return nil, domain.ErrForbidden
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if err == domain.ErrProjectNotFound {
			return nil, fmt.Errorf("%w: project %d", domain.ErrInvalidReference, req.ProjectID)
		}
		return nil, err
	}

	if err := s.checkExecutor(ctx, req.ExecutorID); err != nil {
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Name:       strings.TrimSpace(req.Name),
		ProjectID:  req.ProjectID,
		ExecutorID: req.ExecutorID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     domain.TaskStatus(req.Status),
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return err
		}
		return s.dates.Sync(ctx, task.ProjectID)
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

func (s *taskService) Update(ctx context.Context, caller domain.Caller, id int64, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	if !caller.IsStaff {
		return nil, domain.ErrForbidden
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prevProjectID := task.ProjectID

	if req.Name != nil {
		task.Name = strings.TrimSpace(*req.Name)
	}

	if req.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, *req.ProjectID); err != nil {
			if err == domain.ErrProjectNotFound {
				return nil, fmt.Errorf("%w: project %d", domain.ErrInvalidReference, *req.ProjectID)
			}
			return nil, err
		}
		task.ProjectID = *req.ProjectID
	}

	if req.ExecutorID != nil {
		if err := s.checkExecutor(ctx, req.ExecutorID); err != nil {
			return nil, err
		}
		task.ExecutorID = req.ExecutorID
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, err
		}
		task.StartDate = startDate
	}

	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, err
		}
		task.EndDate = endDate
	}

	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.Update(ctx, task); err != nil {
			return err
		}
		if err := s.dates.Sync(ctx, task.ProjectID); err != nil {
			return err
		}
		// Перенос задачи в другой проект меняет даты обоих проектов
		if prevProjectID != task.ProjectID {
			return s.dates.Sync(ctx, prevProjectID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	if !caller.IsStaff {
		return domain.ErrForbidden
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.dates.Sync(ctx, task.ProjectID)
	})
}

func (s *taskService) checkExecutor(ctx context.Context, executorID *int64) error {
	if executorID == nil {
		return nil
	}
	if _, err := s.empRepo.GetByID(ctx, *executorID); err != nil {
		if err == domain.ErrEmployeeNotFound {
			return fmt.Errorf("%w: employee %d", domain.ErrInvalidReference, *executorID)
		}
		return err
	}
	return nil
}
