// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	taskadapters "taskflow_backend/internal/feature/tasks/adapters"
	"taskflow_backend/internal/feature/tasks/usecase"
	"taskflow_backend/internal/platform/cache"
)

// NewTaskRepository creates a TaskRepository implementation.
// If Redis is available, the gorm repository is wrapped with a read cache for
// per-owner task lists. Otherwise the plain gorm repository is returned.
func NewTaskRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.TaskRepository {
	repo := taskadapters.NewTaskGorm(db)
	if rdb != nil {
		return cache.NewCachingTaskRepository(rdb, ttl, repo, "tasks")
	}
	return repo
}
