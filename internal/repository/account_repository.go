package repository

import (
	"context"

	"github.com/hr-records-api/internal/domain"
	"gorm.io/gorm"
)

// AccountRepository определяет интерфейс для работы с учётными записями
type AccountRepository interface {
	Create(ctx context.Context, acc *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	ExistsByUsername(ctx context.Context, username string, excludeID *int64) (bool, error)
	Update(ctx context.Context, acc *domain.Account) error
	Delete(ctx context.Context, id int64) error
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository создаёт новый экземпляр репозитория
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, acc *domain.Account) error {
	return dbFromContext(ctx, r.db).Create(acc).Error
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	var acc domain.Account
	err := dbFromContext(ctx, r.db).First(&acc, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var acc domain.Account
	err := dbFromContext(ctx, r.db).Where("username = ?", username).First(&acc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepository) ExistsByUsername(ctx context.Context, username string, excludeID *int64) (bool, error) {
	var count int64
	query := dbFromContext(ctx, r.db).Model(&domain.Account{}).Where("username = ?", username)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *accountRepository) Update(ctx context.Context, acc *domain.Account) error {
	return dbFromContext(ctx, r.db).Save(acc).Error
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	result := dbFromContext(ctx, r.db).Delete(&domain.Account{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
