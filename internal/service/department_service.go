package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/dto"
	"github.com/hr-records-api/internal/repository"
)

// DepartmentService определяет бизнес-логику для подразделений.
// Мутации доступны только staff-аккаунтам, чтение - любому аутентифицированному
type DepartmentService interface {
	Create(ctx context.Context, caller domain.Caller, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	GetByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Department, error)
	Update(ctx context.Context, caller domain.Caller, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, caller domain.Caller, id int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	empRepo  repository.EmployeeRepository
	tx       repository.TxRunner
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(
	deptRepo repository.DepartmentRepository,
	empRepo repository.EmployeeRepository,
	tx repository.TxRunner,
) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		empRepo:  empRepo,
		tx:       tx,
	}
}

func (s *departmentService) Create(ctx context.Context, caller domain.Caller, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	if !caller.IsStaff {
		return nil, domain.ErrForbidden
	}

	name := strings.TrimSpace(req.Name)

	exists, err := s.deptRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDepartmentName
	}

	if err := s.checkHead(ctx, req.HeadOfDepartmentID); err != nil {
		return nil, err
	}

	dept := &domain.Department{
		Name:               name,
		HeadOfDepartmentID: req.HeadOfDepartmentID,
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) GetByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

func (s *departmentService) Update(ctx context.Context, caller domain.Caller, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	if !caller.IsStaff {
		return nil, domain.ErrForbidden
	}

	dept, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)

		exists, err := s.deptRepo.ExistsByName(ctx, name, &id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateDepartmentName
		}

		dept.Name = name
	}

	if req.HeadOfDepartmentID != nil {
		if err := s.checkHead(ctx, req.HeadOfDepartmentID); err != nil {
			return nil, err
		}
		dept.HeadOfDepartmentID = req.HeadOfDepartmentID
	}

	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	if !caller.IsStaff {
		return domain.ErrForbidden
	}

	if _, err := s.deptRepo.GetByID(ctx, id); err != nil {
		return err
	}

	// Сотрудники удаляемого подразделения остаются без подразделения
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.empRepo.DetachDepartment(ctx, id); err != nil {
			return err
		}
		return s.deptRepo.Delete(ctx, id)
	})
}

func (s *departmentService) checkHead(ctx context.Context, headID *int64) error {
	if headID == nil {
		return nil
	}
	if _, err := s.empRepo.GetByID(ctx, *headID); err != nil {
		if err == domain.ErrEmployeeNotFound {
			return fmt.Errorf("%w: employee %d", domain.ErrInvalidReference, *headID)
		}
		return err
	}
	return nil
}
