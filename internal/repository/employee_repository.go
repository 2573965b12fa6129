package repository

import (
	"context"

	"github.com/hr-records-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	// ClearReferences обнуляет ссылки на сотрудника из подразделений,
	// проектов и задач перед его удалением
	ClearReferences(ctx context.Context, employeeID int64) error
	// DetachDepartment обнуляет ссылку на подразделение у его сотрудников
	DetachDepartment(ctx context.Context, departmentID int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return dbFromContext(ctx, r.db).Create(emp).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := dbFromContext(ctx, r.db).Preload("Account").First(&emp, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	return dbFromContext(ctx, r.db).Omit("Account").Save(emp).Error
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := dbFromContext(ctx, r.db).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) ClearReferences(ctx context.Context, employeeID int64) error {
	db := dbFromContext(ctx, r.db)

	if err := db.Model(&domain.Department{}).
		Where("head_of_department_id = ?", employeeID).
		Update("head_of_department_id", nil).Error; err != nil {
		return err
	}

	if err := db.Model(&domain.Project{}).
		Where("project_manager_id = ?", employeeID).
		Update("project_manager_id", nil).Error; err != nil {
		return err
	}

	return db.Model(&domain.Task{}).
		Where("executor_id = ?", employeeID).
		Update("executor_id", nil).Error
}

func (r *employeeRepository) DetachDepartment(ctx context.Context, departmentID int64) error {
	return dbFromContext(ctx, r.db).
		Model(&domain.Employee{}).
		Where("department_id = ?", departmentID).
		Update("department_id", nil).Error
}
