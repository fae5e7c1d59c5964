// Package adapters はtasksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskflow_backend/internal/feature/tasks/domain/entity"
	"taskflow_backend/internal/feature/tasks/usecase"
)

// taskGorm はTaskRepositoryインターフェースのGORM実装です。
// 全クエリが (id AND user_id) でフィルタされるため、他ユーザーのタスクは
// 存在しないものとして扱われます。
type taskGorm struct {
	db *gorm.DB
}

var _ usecase.TaskRepository = (*taskGorm)(nil)

// NewTaskGorm は指定されたDB接続でtaskGormリポジトリの新しいインスタンスを生成します。
func NewTaskGorm(db *gorm.DB) *taskGorm {
	return &taskGorm{db: db}
}

// ListByOwner は指定されたオーナーの全タスクを作成日時順に返します。
func (r *taskGorm) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create はタスクをデータベースに追加します。
func (r *taskGorm) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindOwned は (id AND user_id) に一致するタスクを取得します。
// 一致しない場合、usecase.ErrTaskNotFoundを返します。
func (r *taskGorm) FindOwned(ctx context.Context, id, ownerID uint) (*entity.Task, error) {
	var task entity.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Update は指定されたフィールドのみを単一のUPDATE文でマージします。
// オーナーシップフィルタをクエリレベルで適用するため、read-then-writeの
// 競合窓は存在しません。一致する行がない場合、usecase.ErrTaskNotFoundを返します。
func (r *taskGorm) Update(ctx context.Context, id, ownerID uint, changes map[string]any) (*entity.Task, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrTaskNotFound
	}
	return r.FindOwned(ctx, id, ownerID)
}

// Delete は (id AND user_id) に一致するタスクを削除します。
// 一致する行がない場合、usecase.ErrTaskNotFoundを返します。
func (r *taskGorm) Delete(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entity.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}
