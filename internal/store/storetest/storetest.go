// Package storetest holds a conformance suite run against every
// store.* implementation. The in-memory and PostgreSQL backends must be
// interchangeable, so both run the exact same assertions.
package storetest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// Backend bundles the four stores of one backend over shared state.
type Backend struct {
	Users      store.UserStore
	Sessions   store.SessionStore
	Categories store.CategoryStore
	Tasks      store.TaskStore
}

// Factory returns a fresh, empty Backend for each subtest.
type Factory func(t *testing.T) Backend

// Run executes the conformance suite against the given backend factory.
func Run(t *testing.T, newBackend Factory) {
	t.Run("UserStore", func(t *testing.T) { testUserStore(t, newBackend(t)) })
	t.Run("SessionStore", func(t *testing.T) { testSessionStore(t, newBackend(t)) })
	t.Run("CategoryStore", func(t *testing.T) { testCategoryStore(t, newBackend(t)) })
	t.Run("TaskStore", func(t *testing.T) { testTaskStore(t, newBackend(t)) })
	t.Run("OwnershipIsolation", func(t *testing.T) { testOwnershipIsolation(t, newBackend(t)) })
	t.Run("BoardLifecycle", func(t *testing.T) { testBoardLifecycle(t, newBackend(t)) })
}

func createUser(t *testing.T, b Backend, username string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(username, "not-a-real-hash")
	require.NoError(t, err)
	require.NoError(t, b.Users.Create(context.Background(), user))
	return user
}

func createCategory(t *testing.T, b Backend, userID uuid.UUID, label string) *domain.Category {
	t.Helper()

	category, err := domain.NewCategory(userID, label)
	require.NoError(t, err)
	require.NoError(t, b.Categories.Create(context.Background(), category))
	return category
}

func createTask(t *testing.T, b Backend, userID uuid.UUID, categoryID, label string) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(userID, categoryID, label, "description of "+label)
	require.NoError(t, err)
	require.NoError(t, b.Tasks.Create(context.Background(), task))
	return task
}

func testUserStore(t *testing.T, b Backend) {
	ctx := context.Background()

	user := createUser(t, b, "alice_01")

	t.Run("GetByID", func(t *testing.T) {
		got, err := b.Users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Username, got.Username)
		assert.Equal(t, user.HashedPassword, got.HashedPassword)
	})

	t.Run("GetByUsername", func(t *testing.T) {
		got, err := b.Users.GetByUsername(ctx, "alice_01")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		dup, err := domain.NewUser("alice_01", "another-hash")
		require.NoError(t, err)

		err = b.Users.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrUsernameExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := b.Users.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.True(t, store.IsNotFoundError(err))

		_, err = b.Users.GetByUsername(ctx, "nobody_here")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func testSessionStore(t *testing.T, b Backend) {
	ctx := context.Background()
	user := createUser(t, b, "bob_at_work")
	token := strings.Repeat("s", domain.SessionTokenLength)

	session, err := domain.NewSession(token, user.ID)
	require.NoError(t, err)
	require.NoError(t, b.Sessions.Create(ctx, session))

	t.Run("GetByToken", func(t *testing.T) {
		got, err := b.Sessions.GetByToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.UserID)
		assert.Equal(t, token, got.Token)
	})

	t.Run("DuplicateToken", func(t *testing.T) {
		dup, err := domain.NewSession(token, user.ID)
		require.NoError(t, err)

		err = b.Sessions.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrTokenExists)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		_, err := b.Sessions.GetByToken(ctx, strings.Repeat("x", domain.SessionTokenLength))
		assert.ErrorIs(t, err, store.ErrSessionNotFound)
	})

	t.Run("ConcurrentSessionsPerUser", func(t *testing.T) {
		second := strings.Repeat("t", domain.SessionTokenLength)
		other, err := domain.NewSession(second, user.ID)
		require.NoError(t, err)
		require.NoError(t, b.Sessions.Create(ctx, other))

		// Both tokens resolve independently.
		_, err = b.Sessions.GetByToken(ctx, token)
		assert.NoError(t, err)
		_, err = b.Sessions.GetByToken(ctx, second)
		assert.NoError(t, err)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, b.Sessions.Delete(ctx, token))

		_, err := b.Sessions.GetByToken(ctx, token)
		assert.ErrorIs(t, err, store.ErrSessionNotFound)

		// A second delete of the same token is an observable failure.
		err = b.Sessions.Delete(ctx, token)
		assert.ErrorIs(t, err, store.ErrSessionNotFound)
	})
}

func testCategoryStore(t *testing.T, b Backend) {
	ctx := context.Background()
	user := createUser(t, b, "carol_dev")

	t.Run("EmptyList", func(t *testing.T) {
		categories, err := b.Categories.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, categories)
	})

	t.Run("CreationOrder", func(t *testing.T) {
		labels := []string{"ToDo", "In progress", "Completed"}
		for _, label := range labels {
			createCategory(t, b, user.ID, label)
		}

		categories, err := b.Categories.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, categories, len(labels))
		for i, label := range labels {
			assert.Equal(t, label, categories[i].Label)
		}
	})

	t.Run("CreateAllAtomic", func(t *testing.T) {
		existing := createCategory(t, b, user.ID, "Blocked")

		fresh, err := domain.NewCategory(user.ID, "Review")
		require.NoError(t, err)
		conflicting, err := domain.NewCategory(user.ID, "Conflicting")
		require.NoError(t, err)
		conflicting.ID = existing.ID

		err = b.Categories.CreateAll(ctx, []*domain.Category{fresh, conflicting})
		require.Error(t, err)

		// The batch failed, so the fresh category must not be visible.
		categories, err := b.Categories.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		for _, c := range categories {
			assert.NotEqual(t, fresh.ID, c.ID)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		category := createCategory(t, b, user.ID, "Temporary")
		require.NoError(t, b.Categories.Delete(ctx, user.ID, category.ID))

		err := b.Categories.Delete(ctx, user.ID, category.ID)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})

	t.Run("DeleteWithTasksFails", func(t *testing.T) {
		category := createCategory(t, b, user.ID, "Busy")
		createTask(t, b, user.ID, category.ID, "occupy")

		err := b.Categories.Delete(ctx, user.ID, category.ID)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func testTaskStore(t *testing.T, b Backend) {
	ctx := context.Background()
	user := createUser(t, b, "dave_ops")
	todo := createCategory(t, b, user.ID, "ToDo")
	done := createCategory(t, b, user.ID, "Completed")

	t.Run("EmptyList", func(t *testing.T) {
		tasks, err := b.Tasks.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("CreateAndList", func(t *testing.T) {
		first := createTask(t, b, user.ID, todo.ID, "first")
		second := createTask(t, b, user.ID, todo.ID, "second")

		tasks, err := b.Tasks.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, first.ID, tasks[0].ID)
		assert.Equal(t, second.ID, tasks[1].ID)
	})

	t.Run("CreateUnknownCategory", func(t *testing.T) {
		missing, err := domain.NewEntityID()
		require.NoError(t, err)

		task, err := domain.NewTask(user.ID, missing, "orphan", "no home")
		require.NoError(t, err)

		err = b.Tasks.Create(ctx, task)
		assert.ErrorIs(t, err, store.ErrCategoryNotOwned)
	})

	t.Run("Update", func(t *testing.T) {
		task := createTask(t, b, user.ID, todo.ID, "movable")

		task.CategoryID = done.ID
		task.Label = "moved"
		task.Description = "now finished"
		require.NoError(t, b.Tasks.Update(ctx, task))

		tasks, err := b.Tasks.ListByUser(ctx, user.ID)
		require.NoError(t, err)

		var got *domain.Task
		for _, candidate := range tasks {
			if candidate.ID == task.ID {
				got = candidate
			}
		}
		require.NotNil(t, got)
		assert.Equal(t, done.ID, got.CategoryID)
		assert.Equal(t, "moved", got.Label)
		assert.Equal(t, "now finished", got.Description)
	})

	t.Run("UpdateUnknownCategory", func(t *testing.T) {
		task := createTask(t, b, user.ID, todo.ID, "stuck")

		missing, err := domain.NewEntityID()
		require.NoError(t, err)
		task.CategoryID = missing

		err = b.Tasks.Update(ctx, task)
		assert.ErrorIs(t, err, store.ErrCategoryNotOwned)
	})

	t.Run("UpdateUnknownTask", func(t *testing.T) {
		ghost, err := domain.NewTask(user.ID, todo.ID, "ghost", "never stored")
		require.NoError(t, err)

		err = b.Tasks.Update(ctx, ghost)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		task := createTask(t, b, user.ID, todo.ID, "short lived")
		require.NoError(t, b.Tasks.Delete(ctx, user.ID, task.ID))

		err := b.Tasks.Delete(ctx, user.ID, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

// testOwnershipIsolation verifies that no operation crosses user
// boundaries, including writes that name another user's entities.
func testOwnershipIsolation(t *testing.T, b Backend) {
	ctx := context.Background()

	alice := createUser(t, b, "alice_01")
	mallory := createUser(t, b, "mallory_9")

	aliceCategory := createCategory(t, b, alice.ID, "Private")
	aliceTask := createTask(t, b, alice.ID, aliceCategory.ID, "secret work")

	t.Run("ListsAreScoped", func(t *testing.T) {
		categories, err := b.Categories.ListByUser(ctx, mallory.ID)
		require.NoError(t, err)
		assert.Empty(t, categories)

		tasks, err := b.Tasks.ListByUser(ctx, mallory.ID)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("ForeignCategoryRejected", func(t *testing.T) {
		// Mallory knows Alice's category ID but still cannot attach to it.
		task, err := domain.NewTask(mallory.ID, aliceCategory.ID, "planted", "should fail")
		require.NoError(t, err)

		err = b.Tasks.Create(ctx, task)
		assert.ErrorIs(t, err, store.ErrCategoryNotOwned)
	})

	t.Run("ForeignDeleteRejected", func(t *testing.T) {
		err := b.Categories.Delete(ctx, mallory.ID, aliceCategory.ID)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)

		err = b.Tasks.Delete(ctx, mallory.ID, aliceTask.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("ForeignUpdateRejected", func(t *testing.T) {
		hijacked := *aliceTask
		hijacked.UserID = mallory.ID
		hijacked.Label = "defaced"

		// Mallory owns neither the task nor its category. The category
		// check comes first in every backend, so the error kind is the
		// same one a task create against that category would produce.
		err := b.Tasks.Update(ctx, &hijacked)
		assert.ErrorIs(t, err, store.ErrCategoryNotOwned)

		// Alice's task is untouched.
		tasks, err := b.Tasks.ListByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "secret work", tasks[0].Label)
	})
}

// testBoardLifecycle walks one user through the typical board flow:
// no categories, a first category, a first task, then a write that
// names a category that does not exist.
func testBoardLifecycle(t *testing.T, b Backend) {
	ctx := context.Background()
	user := createUser(t, b, "erin_test")

	categories, err := b.Categories.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, categories)

	work := createCategory(t, b, user.ID, "Work")

	categories, err = b.Categories.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Work", categories[0].Label)

	task := createTask(t, b, user.ID, work.ID, "write report")

	tasks, err := b.Tasks.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, work.ID, tasks[0].CategoryID)

	stray, err := domain.NewTask(user.ID, fmt.Sprintf("%032d", 0), "stray", "bad category")
	require.NoError(t, err)
	err = b.Tasks.Create(ctx, stray)
	assert.ErrorIs(t, err, store.ErrCategoryNotOwned)

	// The failed write left no trace.
	tasks, err = b.Tasks.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
