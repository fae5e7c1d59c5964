package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskflow_backend/internal/feature/tasks/domain/entity"
)

// mockTaskRepository is a mock implementation of the TaskRepository interface.
type mockTaskRepository struct {
	ListByOwnerFunc func(ctx context.Context, ownerID uint) ([]entity.Task, error)
	CreateFunc      func(ctx context.Context, task *entity.Task) error
	FindOwnedFunc   func(ctx context.Context, id, ownerID uint) (*entity.Task, error)
	UpdateFunc      func(ctx context.Context, id, ownerID uint, changes map[string]any) (*entity.Task, error)
	DeleteFunc      func(ctx context.Context, id, ownerID uint) error
}

func (m *mockTaskRepository) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Task, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	task.ID = 1 // Default: success
	return nil
}

func (m *mockTaskRepository) FindOwned(ctx context.Context, id, ownerID uint) (*entity.Task, error) {
	if m.FindOwnedFunc != nil {
		return m.FindOwnedFunc(ctx, id, ownerID)
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) Update(ctx context.Context, id, ownerID uint, changes map[string]any) (*entity.Task, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, ownerID, changes)
	}
	return nil, ErrTaskNotFound
}

func (m *mockTaskRepository) Delete(ctx context.Context, id, ownerID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, ownerID)
	}
	return ErrTaskNotFound
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestTaskUsecase_Create(t *testing.T) {
	t.Run("defaults applied when priority omitted", func(t *testing.T) {
		var created *entity.Task
		repo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				created = task
				task.ID = 1
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		task, err := uc.Create(context.Background(), 42, CreateTaskInput{
			Title:       "Buy milk",
			Description: "Two liters",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Priority != entity.PriorityMedium {
			t.Errorf("expected default priority medium, got %q", created.Priority)
		}
		if created.Completed {
			t.Error("expected completed=false by default")
		}
		if created.UserID != 42 {
			t.Errorf("expected owner 42, got %d", created.UserID)
		}
		if task.ID != 1 {
			t.Errorf("expected assigned ID, got %d", task.ID)
		}
	})

	t.Run("explicit priority is kept", func(t *testing.T) {
		repo := &mockTaskRepository{}
		uc := NewTaskUsecase(repo)

		task, err := uc.Create(context.Background(), 1, CreateTaskInput{
			Title:       "Urgent thing",
			Description: "Do it now",
			Priority:    "high",
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Priority != entity.PriorityHigh {
			t.Errorf("expected priority high, got %q", task.Priority)
		}
	})

	t.Run("title shorter than 3 characters rejected", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})

		_, err := uc.Create(context.Background(), 1, CreateTaskInput{
			Title:       "ab",
			Description: "desc",
		})

		if !errors.Is(err, ErrInvalidTask) {
			t.Errorf("expected ErrInvalidTask, got: %v", err)
		}
	})

	t.Run("whitespace-padded short title rejected", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})

		_, err := uc.Create(context.Background(), 1, CreateTaskInput{
			Title:       "  ab  ",
			Description: "desc",
		})

		if !errors.Is(err, ErrInvalidTask) {
			t.Errorf("expected ErrInvalidTask, got: %v", err)
		}
	})

	t.Run("empty description rejected", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})

		_, err := uc.Create(context.Background(), 1, CreateTaskInput{
			Title:       "Valid title",
			Description: "   ",
		})

		if !errors.Is(err, ErrInvalidTask) {
			t.Errorf("expected ErrInvalidTask, got: %v", err)
		}
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})

		_, err := uc.Create(context.Background(), 1, CreateTaskInput{
			Title:       "Valid title",
			Description: "desc",
			Priority:    "urgent",
		})

		if !errors.Is(err, ErrInvalidTask) {
			t.Errorf("expected ErrInvalidTask, got: %v", err)
		}
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	t.Run("only provided fields reach the repository", func(t *testing.T) {
		var gotChanges map[string]any
		repo := &mockTaskRepository{
			UpdateFunc: func(ctx context.Context, id, ownerID uint, changes map[string]any) (*entity.Task, error) {
				gotChanges = changes
				return &entity.Task{ID: id, UserID: ownerID, Priority: entity.PriorityHigh}, nil
			},
		}

		uc := NewTaskUsecase(repo)
		_, err := uc.Update(context.Background(), 5, 42, UpdateTaskInput{
			Priority: strPtr("high"),
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(gotChanges) != 1 {
			t.Fatalf("expected exactly 1 change, got %v", gotChanges)
		}
		if gotChanges["priority"] != "high" {
			t.Errorf("expected priority change, got %v", gotChanges)
		}
	})

	t.Run("owner and id can never appear in the change set", func(t *testing.T) {
		var gotChanges map[string]any
		repo := &mockTaskRepository{
			UpdateFunc: func(ctx context.Context, id, ownerID uint, changes map[string]any) (*entity.Task, error) {
				gotChanges = changes
				return &entity.Task{ID: id, UserID: ownerID}, nil
			},
		}

		uc := NewTaskUsecase(repo)
		due := time.Now().Add(24 * time.Hour)
		_, err := uc.Update(context.Background(), 5, 42, UpdateTaskInput{
			Title:       strPtr("New title"),
			Description: strPtr("New description"),
			Priority:    strPtr("low"),
			DueDate:     &due,
			Completed:   boolPtr(true),
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, forbidden := range []string{"id", "user_id", "owner", "created_at"} {
			if _, ok := gotChanges[forbidden]; ok {
				t.Errorf("change set must not contain %q", forbidden)
			}
		}
		if len(gotChanges) != 5 {
			t.Errorf("expected 5 allow-listed changes, got %v", gotChanges)
		}
	})

	t.Run("empty update returns the current task without writing", func(t *testing.T) {
		updateCalled := false
		repo := &mockTaskRepository{
			UpdateFunc: func(ctx context.Context, id, ownerID uint, changes map[string]any) (*entity.Task, error) {
				updateCalled = true
				return nil, nil
			},
			FindOwnedFunc: func(ctx context.Context, id, ownerID uint) (*entity.Task, error) {
				return &entity.Task{ID: id, UserID: ownerID, Title: "Unchanged"}, nil
			},
		}

		uc := NewTaskUsecase(repo)
		task, err := uc.Update(context.Background(), 5, 42, UpdateTaskInput{})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updateCalled {
			t.Error("Update should not be called for an empty patch")
		}
		if task.Title != "Unchanged" {
			t.Errorf("unexpected task: %+v", task)
		}
	})

	t.Run("invalid patch title rejected", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})

		_, err := uc.Update(context.Background(), 5, 42, UpdateTaskInput{Title: strPtr("ab")})

		if !errors.Is(err, ErrInvalidTask) {
			t.Errorf("expected ErrInvalidTask, got: %v", err)
		}
	})

	t.Run("missing task propagates ErrTaskNotFound", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})

		_, err := uc.Update(context.Background(), 5, 42, UpdateTaskInput{Completed: boolPtr(true)})

		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})
}

func TestTaskUsecase_Delete(t *testing.T) {
	t.Run("delete passes through owner scoping", func(t *testing.T) {
		repo := &mockTaskRepository{
			DeleteFunc: func(ctx context.Context, id, ownerID uint) error {
				if id != 5 || ownerID != 42 {
					t.Errorf("unexpected scope: id=%d owner=%d", id, ownerID)
				}
				return nil
			},
		}

		uc := NewTaskUsecase(repo)
		if err := uc.Delete(context.Background(), 5, 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing task propagates ErrTaskNotFound", func(t *testing.T) {
		uc := NewTaskUsecase(&mockTaskRepository{})

		err := uc.Delete(context.Background(), 5, 42)

		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got: %v", err)
		}
	})
}
