package repository

import (
	"context"
	"time"

	"github.com/hr-records-api/internal/domain"
	"gorm.io/gorm"
)

// ProjectRepository определяет интерфейс для работы с проектами
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
	// UpdateDateSpan присваивает проекту производные даты начала и конца.
	// nil обнуляет дату (проект без задач)
	UpdateDateSpan(ctx context.Context, id int64, start, end *time.Time) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository создаёт новый экземпляр репозитория
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	return dbFromContext(ctx, r.db).Create(project).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var project domain.Project
	err := dbFromContext(ctx, r.db).First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	return dbFromContext(ctx, r.db).Save(project).Error
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result := dbFromContext(ctx, r.db).Delete(&domain.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := dbFromContext(ctx, r.db).Model(&domain.Project{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *projectRepository) UpdateDateSpan(ctx context.Context, id int64, start, end *time.Time) error {
	return dbFromContext(ctx, r.db).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"start_date": start,
			"end_date":   end,
		}).Error
}
