package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edustack/classroom-service/internal/cache"
	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
)

// RolePostgreSQL stores the role -> permission table. Lookups happen on
// every authorized request, so results are cached aggressively; the table
// only changes on reseed.
type RolePostgreSQL struct {
	db       *gorm.DB
	cache    *cache.CacheHelper
	cacheTTL time.Duration
}

func NewRolePostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.RoleRepository {
	return &RolePostgreSQL{
		db:       db,
		cache:    cache.NewCacheHelper(redisClient, "role:"),
		cacheTTL: 15 * time.Minute,
	}
}

func (r *RolePostgreSQL) Get(ctx context.Context, name string) (*models.Role, error) {
	var cached models.Role
	if err := r.cache.Get(ctx, name, &cached); err == nil {
		return &cached, nil
	}

	var role models.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, name, &role, r.cacheTTL)
	return &role, nil
}

func (r *RolePostgreSQL) List(ctx context.Context) ([]*models.Role, error) {
	var roles []*models.Role
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

// Seed writes the given roles, keeping existing rows untouched, and drops
// any stale cache entries.
func (r *RolePostgreSQL) Seed(ctx context.Context, roles []models.Role) error {
	if len(roles) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&roles).Error
	if err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}
	for _, role := range roles {
		_ = r.cache.Delete(ctx, role.Name)
	}
	return nil
}
