// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"taskflow_backend/internal/feature/tasks/domain/entity"
	"taskflow_backend/internal/feature/tasks/usecase"
)

// CachingTaskRepository decorates a TaskRepository with Redis caching of
// per-owner task lists. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
// Every write invalidates the owner's cached list so reads never serve a
// stale task set for longer than the ttl.
type CachingTaskRepository struct {
	inner     usecase.TaskRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.TaskRepository = (*CachingTaskRepository)(nil)

// NewCachingTaskRepository decorates a TaskRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "tasks".
func NewCachingTaskRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TaskRepository, namespace string) *CachingTaskRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "tasks"
	}
	return &CachingTaskRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListByOwner retrieves the owner's tasks, checking cache first then falling
// back to the database.
func (c *CachingTaskRepository) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByOwner(ctx, ownerID)
	}

	key := c.listKey(ownerID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Task
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Create persists the task and invalidates the owner's cached list.
func (c *CachingTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if err := c.inner.Create(ctx, task); err != nil {
		return err
	}
	c.invalidate(ctx, task.UserID)
	return nil
}

// FindOwned passes through to the underlying repository. Single-task reads
// are cheap and always follow an ownership-filtered index.
func (c *CachingTaskRepository) FindOwned(ctx context.Context, id, ownerID uint) (*entity.Task, error) {
	return c.inner.FindOwned(ctx, id, ownerID)
}

// Update applies the changes and invalidates the owner's cached list.
func (c *CachingTaskRepository) Update(ctx context.Context, id, ownerID uint, changes map[string]any) (*entity.Task, error) {
	task, err := c.inner.Update(ctx, id, ownerID, changes)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, ownerID)
	return task, nil
}

// Delete removes the task and invalidates the owner's cached list.
func (c *CachingTaskRepository) Delete(ctx context.Context, id, ownerID uint) error {
	if err := c.inner.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}

// invalidate drops the owner's cached list. Best effort: a failed cache
// deletion never fails the write that triggered it.
func (c *CachingTaskRepository) invalidate(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey(ownerID)).Err()
}

// listKey generates the cache key for an owner's task list.
func (c *CachingTaskRepository) listKey(ownerID uint) string {
	return fmt.Sprintf("%s:owner:%d:list", c.namespace, ownerID)
}
