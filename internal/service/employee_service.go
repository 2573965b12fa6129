package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/dto"
	"github.com/hr-records-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeService определяет бизнес-логику для сотрудников.
// Все операции принимают вызывающего явным параметром и применяют
// правила доступа из access.go
type EmployeeService interface {
	Create(ctx context.Context, caller domain.Caller, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Employee, error)
	Update(ctx context.Context, caller domain.Caller, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, caller domain.Caller, id int64) error
}

type employeeService struct {
	empRepo  repository.EmployeeRepository
	accRepo  repository.AccountRepository
	deptRepo repository.DepartmentRepository
	tx       repository.TxRunner
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	empRepo repository.EmployeeRepository,
	accRepo repository.AccountRepository,
	deptRepo repository.DepartmentRepository,
	tx repository.TxRunner,
) EmployeeService {
	return &employeeService{
		empRepo:  empRepo,
		accRepo:  accRepo,
		deptRepo: deptRepo,
		tx:       tx,
	}
}

func (s *employeeService) Create(ctx context.Context, caller domain.Caller, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if !caller.IsStaff {
		return nil, domain.ErrForbidden
	}

	username := strings.TrimSpace(req.Username)

	taken, err := s.accRepo.ExistsByUsername(ctx, username, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			if err == domain.ErrDepartmentNotFound {
				return nil, fmt.Errorf("%w: department %d", domain.ErrInvalidReference, *req.DepartmentID)
			}
			return nil, err
		}
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	emp := &domain.Employee{
		Birthdate:    birthdate,
		DepartmentID: req.DepartmentID,
	}

	// Учётная запись и сотрудник сохраняются одной транзакцией:
	// сотрудник без учётной записи существовать не может
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.accRepo.Create(ctx, acc); err != nil {
			return err
		}
		emp.AccountID = acc.ID
		return s.empRepo.Create(ctx, emp)
	})
	if err != nil {
		return nil, err
	}

	emp.Account = acc
	return emp, nil
}

func (s *employeeService) GetByID(ctx context.Context, caller domain.Caller, id int64) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanViewEmployee(caller, emp) {
		return nil, domain.ErrForbidden
	}

	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, caller domain.Caller, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanModifyEmployee(caller, emp) {
		return nil, domain.ErrForbidden
	}

	acc := emp.Account

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username != acc.Username {
			inUse, err := s.accRepo.ExistsByUsername(ctx, username, &acc.ID)
			if err != nil {
				return nil, err
			}
			if inUse {
				return nil, domain.ErrUsernameInUse
			}
			acc.Username = username
		}
	}

	// Пустой или отсутствующий пароль не трогает сохранённый хэш
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		acc.PasswordHash = string(hash)
	}

	if req.FirstName != nil {
		acc.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		acc.LastName = *req.LastName
	}

	if req.Birthdate != nil {
		birthdate, err := time.Parse("2006-01-02", *req.Birthdate)
		if err != nil {
			return nil, err
		}
		emp.Birthdate = birthdate
	}

	if req.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			if err == domain.ErrDepartmentNotFound {
				return nil, fmt.Errorf("%w: department %d", domain.ErrInvalidReference, *req.DepartmentID)
			}
			return nil, err
		}
		emp.DepartmentID = req.DepartmentID
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.accRepo.Update(ctx, acc); err != nil {
			return err
		}
		return s.empRepo.Update(ctx, emp)
	})
	if err != nil {
		return nil, err
	}

	emp.Account = acc
	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanDeleteEmployee(caller, emp) {
		return domain.ErrForbidden
	}

	// Удаление сотрудника обнуляет внешние ссылки на него и каскадно
	// удаляет его учётную запись
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.empRepo.ClearReferences(ctx, id); err != nil {
			return err
		}
		if err := s.empRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.accRepo.Delete(ctx, emp.AccountID)
	})
}
