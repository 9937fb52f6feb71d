package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/edustack/classroom-service/internal/cache"
	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
)

type AccountPostgreSQL struct {
	db       *gorm.DB
	cache    *cache.CacheHelper
	cacheTTL time.Duration
}

func NewAccountPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.AccountRepository {
	return &AccountPostgreSQL{
		db:       db,
		cache:    cache.NewCacheHelper(redisClient, "account:"),
		cacheTTL: 15 * time.Minute,
	}
}

func (a *AccountPostgreSQL) Create(ctx context.Context, account *models.Account) error {
	if err := a.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (a *AccountPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	cacheKey := fmt.Sprintf("id:%d", id)

	var cached models.Account
	if err := a.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	var account models.Account
	if err := a.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}

	_ = a.cache.Set(ctx, cacheKey, &account, a.cacheTTL)
	return &account, nil
}

func (a *AccountPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := a.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *AccountPostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (a *AccountPostgreSQL) ListByRole(ctx context.Context, role string) ([]*models.Account, error) {
	var accounts []*models.Account
	err := a.db.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at ASC").
		Find(&accounts).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to list accounts by role: %w", err)
	}
	return accounts, nil
}
