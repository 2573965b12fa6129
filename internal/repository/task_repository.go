package repository

import (
	"context"
	"time"

	"github.com/hr-records-api/internal/domain"
	"gorm.io/gorm"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
	DeleteByProjectID(ctx context.Context, projectID int64) error
	// DateSpan возвращает min(start_date) и max(end_date) по задачам проекта.
	// У проекта без задач обе границы nil
	DateSpan(ctx context.Context, projectID int64) (start, end *time.Time, err error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository создаёт новый экземпляр репозитория
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	return dbFromContext(ctx, r.db).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var task domain.Task
	err := dbFromContext(ctx, r.db).First(&task, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	return dbFromContext(ctx, r.db).Save(task).Error
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	result := dbFromContext(ctx, r.db).Delete(&domain.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) DeleteByProjectID(ctx context.Context, projectID int64) error {
	return dbFromContext(ctx, r.db).
		Where("project_id = ?", projectID).
		Delete(&domain.Task{}).Error
}

func (r *taskRepository) DateSpan(ctx context.Context, projectID int64) (*time.Time, *time.Time, error) {
	var span struct {
		MinStart *time.Time
		MaxEnd   *time.Time
	}
	err := dbFromContext(ctx, r.db).
		Model(&domain.Task{}).
		Select("MIN(start_date) AS min_start, MAX(end_date) AS max_end").
		Where("project_id = ?", projectID).
		Scan(&span).Error
	if err != nil {
		return nil, nil, err
	}
	return span.MinStart, span.MaxEnd, nil
}
