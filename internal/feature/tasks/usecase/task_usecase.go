// Package usecase はtasksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskflow_backend/internal/feature/tasks/domain/entity"
)

const (
	// minTitleLength はタスクタイトルの最低文字数を定義します。
	minTitleLength = 3
)

// TaskRepository はタスクエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// 全操作はオーナーIDでスコープされ、(タスクID AND オーナーID) に一致しない行には決して触れません。
type TaskRepository interface {
	// ListByOwner は指定されたオーナーの全タスクを返します。
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error)

	// Create は新しいタスクをストレージに永続化します。
	Create(ctx context.Context, task *entity.Task) error

	// FindOwned は (タスクID AND オーナーID) に一致するタスクを取得します。
	// 一致しない場合、ErrTaskNotFoundを返します。
	FindOwned(ctx context.Context, id, ownerID uint) (*entity.Task, error)

	// Update は指定されたフィールドのみを単一のUPDATE文でマージします。
	// 一致する行がない場合、ErrTaskNotFoundを返します。
	Update(ctx context.Context, id, ownerID uint, changes map[string]any) (*entity.Task, error)

	// Delete は (タスクID AND オーナーID) に一致するタスクを削除します。
	// 一致する行がない場合、ErrTaskNotFoundを返します。
	Delete(ctx context.Context, id, ownerID uint) error
}

// CreateTaskInput は新規タスク作成の入力を表します。
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
}

// UpdateTaskInput は部分更新の入力を表します。
// nilのフィールドは「変更しない」を意味します。オーナーとIDは変更不可のため
// ここには存在しません（許可リスト方式）。
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *time.Time
	Completed   *bool
}

// TaskUsecase はタスク操作のビジネスロジックを提供します。
// 全操作はAuth Gateで解決された呼び出し元のユーザーIDを明示的な引数として受け取ります。
// オーナーIDをクライアント入力から取ることは決してありません。
type TaskUsecase struct {
	repo TaskRepository
}

// NewTaskUsecase は指定されたリポジトリでTaskUsecaseを生成します。
func NewTaskUsecase(repo TaskRepository) *TaskUsecase {
	return &TaskUsecase{repo: repo}
}

// validateTitle はタイトルがビジネス要件を満たしているかチェックします。
func validateTitle(title string) error {
	if len(strings.TrimSpace(title)) < minTitleLength {
		return fmt.Errorf("%w: title must be at least %d characters long", ErrInvalidTask, minTitleLength)
	}
	return nil
}

// validatePriority は優先度が既知の列挙値かチェックします。
func validatePriority(p string) error {
	if !entity.Priority(p).Valid() {
		return fmt.Errorf("%w: priority must be one of low, medium, high", ErrInvalidTask)
	}
	return nil
}

// List は呼び出し元が所有する全タスクを返します。
func (u *TaskUsecase) List(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	return u.repo.ListByOwner(ctx, ownerID)
}

// Create は呼び出し元をオーナーとして新規タスクを作成します。
// 優先度が省略された場合はmediumが、完了フラグはfalseが設定されます。
func (u *TaskUsecase) Create(ctx context.Context, ownerID uint, in CreateTaskInput) (*entity.Task, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidTask)
	}

	priority := entity.PriorityMedium
	if in.Priority != "" {
		if err := validatePriority(in.Priority); err != nil {
			return nil, err
		}
		priority = entity.Priority(in.Priority)
	}

	task := &entity.Task{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Priority:    priority,
		DueDate:     in.DueDate,
		UserID:      ownerID,
	}
	if err := u.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update は呼び出し元が所有するタスクの指定フィールドのみを更新します。
// 更新可能なフィールドは許可リスト（title, description, priority, dueDate,
// completed）に限定され、オーナーやIDを上書きすることはできません。
func (u *TaskUsecase) Update(ctx context.Context, id, ownerID uint, in UpdateTaskInput) (*entity.Task, error) {
	changes := map[string]any{}
	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return nil, err
		}
		changes["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, fmt.Errorf("%w: description is required", ErrInvalidTask)
		}
		changes["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Priority != nil {
		if err := validatePriority(*in.Priority); err != nil {
			return nil, err
		}
		changes["priority"] = *in.Priority
	}
	if in.DueDate != nil {
		changes["due_date"] = *in.DueDate
	}
	if in.Completed != nil {
		changes["completed"] = *in.Completed
	}

	// 変更フィールドなしの場合は現在の状態を返す
	if len(changes) == 0 {
		return u.repo.FindOwned(ctx, id, ownerID)
	}
	return u.repo.Update(ctx, id, ownerID, changes)
}

// Delete は呼び出し元が所有するタスクを削除します。
// 存在しないタスク、または他ユーザーが所有するタスクはErrTaskNotFoundになります。
func (u *TaskUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	return u.repo.Delete(ctx, id, ownerID)
}
