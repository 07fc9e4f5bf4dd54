package repository

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryMedium) {
	t.Helper()
	medium := storage.NewMemoryMedium()
	return NewStore(medium), medium
}

func TestStoreHydration(t *testing.T) {
	t.Run("empty medium seeds demo data", func(t *testing.T) {
		s, _ := newTestStore(t)

		assert.Len(t, s.Users(), 3)
		assert.Len(t, s.Projects(), 9)
		assert.Empty(t, s.Reviews())
		assert.Empty(t, s.Messages())
	})

	t.Run("seed users carry synced wallets", func(t *testing.T) {
		s, _ := newTestStore(t)

		for _, u := range s.Users() {
			require.NotNil(t, u.Wallet)
			token := u.Wallet.SwarmToken()
			require.NotNil(t, token)
			assert.True(t, token.Balance.IntPart() == u.SwarmTokens,
				"wallet SWARM balance must match swarmTokens for %s", u.Id)
		}
	})

	t.Run("populated medium wins over seeds", func(t *testing.T) {
		medium := storage.NewMemoryMedium()
		custom := []model.User{{Id: "u-x", Name: "X", Email: "x@example.com", Role: model.UserRoleCreator}}
		require.NoError(t, storage.Save(medium, storage.KeyUsers, custom))

		s := NewStore(medium)
		users := s.Users()
		require.Len(t, users, 1)
		assert.Equal(t, "u-x", users[0].Id)
	})
}

func TestAddProjectOrdering(t *testing.T) {
	s, _ := newTestStore(t)

	p := model.Project{Id: "p-new", Title: "newest", Status: model.ProjectStatusOpen, CreatorId: "user-1"}
	s.AddProject(p)

	projects := s.Projects()
	require.NotEmpty(t, projects)
	assert.Equal(t, "p-new", projects[0].Id, "new project must sit at index 0")
}

func TestUpdateProject(t *testing.T) {
	t.Run("merges fields and stamps UpdatedAt", func(t *testing.T) {
		s, _ := newTestStore(t)
		before, ok := s.FindProject("project-2")
		require.True(t, ok)

		title := "renamed"
		status := model.ProjectStatusInProgress
		s.UpdateProject("project-2", ProjectUpdate{Title: &title, Status: &status})

		after, ok := s.FindProject("project-2")
		require.True(t, ok)
		assert.Equal(t, "renamed", after.Title)
		assert.Equal(t, model.ProjectStatusInProgress, after.Status)
		assert.Equal(t, before.Description, after.Description, "untouched fields keep their value")
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		s, _ := newTestStore(t)
		before := s.Projects()

		title := "ghost"
		s.UpdateProject("project-missing", ProjectUpdate{Title: &title})

		assert.Equal(t, before, s.Projects())
	})
}

func TestMutateUser(t *testing.T) {
	s, _ := newTestStore(t)

	ok := s.MutateUser("user-2", func(u *model.User) {
		u.CompletedProjects++
	})
	require.True(t, ok)

	u, found := s.FindUser("user-2")
	require.True(t, found)
	assert.Equal(t, 23, u.CompletedProjects)

	assert.False(t, s.MutateUser("user-missing", func(u *model.User) {
		t.Fatal("mutator must not run for unknown id")
	}))
}

func TestSnapshotIsolation(t *testing.T) {
	t.Run("mutating a snapshot wallet leaves the store untouched", func(t *testing.T) {
		s, _ := newTestStore(t)

		u, found := s.FindUser("user-1")
		require.True(t, found)
		require.NotNil(t, u.Wallet)
		u.Wallet.SwarmToken().Balance = decimal.NewFromInt(1)

		fresh, found := s.FindUser("user-1")
		require.True(t, found)
		assert.True(t, fresh.Wallet.SwarmToken().Balance.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("mutating a snapshot brief leaves the store untouched", func(t *testing.T) {
		s, _ := newTestStore(t)

		p, found := s.FindProject("project-1")
		require.True(t, found)
		require.NotNil(t, p.Brief)
		require.NotEmpty(t, p.Brief.ActionableSteps)
		p.Brief.ActionableSteps[0] = "tampered"

		fresh, found := s.FindProject("project-1")
		require.True(t, found)
		assert.NotEqual(t, "tampered", fresh.Brief.ActionableSteps[0])
	})

	t.Run("marshal during concurrent wallet mutation", func(t *testing.T) {
		s, _ := newTestStore(t)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				u, found := s.FindUser("user-1")
				if !found {
					continue
				}
				_, err := json.Marshal(u.Wallet)
				assert.NoError(t, err)
			}
		}()
		go func() {
			defer wg.Done()
			for i := int64(0); i < 200; i++ {
				s.MutateUser("user-1", func(u *model.User) {
					u.SwarmTokens = i
					token := u.Wallet.SwarmToken()
					token.Balance = decimal.NewFromInt(i)
					token.USDValue = token.Balance.Mul(model.SwarmTokenPrice)
				})
			}
		}()
		wg.Wait()
	})
}

func TestRefresh(t *testing.T) {
	s, medium := newTestStore(t)

	// 模拟外部写入（其他进程整快照覆盖）
	external := []model.Project{{
		Id:        "p-ext",
		Title:     "written elsewhere",
		Status:    model.ProjectStatusOpen,
		CreatorId: "user-1",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}}
	require.NoError(t, storage.Save(medium, storage.KeyProjects, external))

	s.Refresh()

	projects := s.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, "p-ext", projects[0].Id)
}

func TestClear(t *testing.T) {
	s, medium := newTestStore(t)

	s.AddProject(model.Project{Id: "p-extra", Status: model.ProjectStatusOpen, CreatorId: "user-1"})
	s.AddMessage(model.Message{Id: "m-1", SenderId: "user-1", Content: "hi"})
	require.Len(t, s.Projects(), 10)

	s.Clear()

	assert.Len(t, s.Users(), 3)
	assert.Len(t, s.Projects(), 9)
	assert.Empty(t, s.Messages())

	_, err := medium.Get(storage.KeyProjects)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}
