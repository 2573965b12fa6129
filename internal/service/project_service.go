package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/dto"
	"github.com/hr-records-api/internal/repository"
)

// ProjectService определяет бизнес-логику для проектов.
// Даты проекта не редактируются напрямую: их ведёт ProjectDateService
type ProjectService interface {
	Create(ctx context.Context, caller domain.Caller, req *dto.CreateProjectRequest) (*domain.Project, error)
	GetByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Project, error)
	Update(ctx context.Context, caller domain.Caller, id int64, req *dto.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, caller domain.Caller, id int64) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	empRepo     repository.EmployeeRepository
	tx          repository.TxRunner
}

// NewProjectService создаёт новый экземпляр сервиса
func NewProjectService(
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	empRepo repository.EmployeeRepository,
	tx repository.TxRunner,
) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		empRepo:     empRepo,
		tx:          tx,
	}
}

func (s *projectService) Create(ctx context.Context, caller domain.Caller, req *dto.CreateProjectRequest) (*domain.Project, error) {
	if !caller.IsStaff {
		return nil, domain.ErrForbidden
	}

	name := strings.TrimSpace(req.Name)

	exists, err := s.projectRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateProjectName
	}

	if err := s.checkManager(ctx, req.ProjectManagerID); err != nil {
		return nil, err
	}

	// У нового проекта нет задач, поэтому производные даты пусты
	project := &domain.Project{
		Name:             name,
		ProjectManagerID: req.ProjectManagerID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *projectService) Update(ctx context.Context, caller domain.Caller, id int64, req *dto.UpdateProjectRequest) (*domain.Project, error) {
	if !caller.IsStaff {
		return nil, domain.ErrForbidden
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)

		exists, err := s.projectRepo.ExistsByName(ctx, name, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateProjectName
		}

		project.Name = name
	}

	if req.ProjectManagerID != nil {
		if err := s.checkManager(ctx, req.ProjectManagerID); err != nil {
			return nil, err
		}
		project.ProjectManagerID = req.ProjectManagerID
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	if !caller.IsStaff {
		return domain.ErrForbidden
	}

	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		return err
	}

	// Задачи принадлежат проекту и удаляются вместе с ним
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.DeleteByProjectID(ctx, id); err != nil {
			return err
		}
		return s.projectRepo.Delete(ctx, id)
	})
}

func (s *projectService) checkManager(ctx context.Context, managerID *int64) error {
	if managerID == nil {
		return nil
	}
	if _, err := s.empRepo.GetByID(ctx, *managerID); err != nil {
		if err == domain.ErrEmployeeNotFound {
			return fmt.Errorf("%w: employee %d", domain.ErrInvalidReference, *managerID)
		}
		return err
	}
	return nil
}
