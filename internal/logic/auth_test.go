package logic

import (
	"testing"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/repository"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (*AuthLogic, *repository.Store) {
	t.Helper()
	store := repository.NewStore(storage.NewMemoryMedium())
	ledger := NewLedgerLogic(store, nil)
	return NewAuthLogic(store, ledger), store
}

func TestLogin(t *testing.T) {
	t.Run("known email accepts any password", func(t *testing.T) {
		auth, _ := newAuth(t)

		user, ok := auth.Login("alex@example.com", "whatever")
		require.True(t, ok)
		assert.Equal(t, "user-1", user.Id)

		current, ok := auth.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, "user-1", current.Id)
	})

	t.Run("unknown email fails", func(t *testing.T) {
		auth, _ := newAuth(t)

		_, ok := auth.Login("nobody@example.com", "pw")
		assert.False(t, ok)

		_, ok = auth.CurrentUser()
		assert.False(t, ok)
	})

	t.Run("balance reconciles from wallet on login", func(t *testing.T) {
		auth, store := newAuth(t)

		// 人为制造双份表示不一致：只改标量余额，不动钱包
		store.MutateUser("user-2", func(u *model.User) {
			u.SwarmTokens = 9999
		})

		user, ok := auth.Login("sarah@example.com", "pw")
		require.True(t, ok)
		assert.Equal(t, int64(3200), user.SwarmTokens, "wallet entry wins over the scalar copy")
	})

	t.Run("second login sees balance earned in between", func(t *testing.T) {
		store := repository.NewStore(storage.NewMemoryMedium())
		ledger := NewLedgerLogic(store, nil)
		auth := NewAuthLogic(store, ledger)

		_, ok := auth.Login("sarah@example.com", "pw")
		require.True(t, ok)

		// 两次登录之间主集合发生余额变动
		ledger.SetBalance("user-2", 5000)

		user, ok := auth.Login("sarah@example.com", "pw")
		require.True(t, ok)
		assert.Equal(t, int64(5000), user.SwarmTokens)

		current, ok := auth.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, int64(5000), current.SwarmTokens)
	})

	t.Run("cache-only entry survives rebuild", func(t *testing.T) {
		auth, store := newAuth(t)

		// 直接向缓存写入一条主集合没有的用户
		extra := model.User{Id: "u-cache", Name: "Cache Only", Email: "cache@example.com", Role: model.UserRoleFinisher}
		require.NoError(t, storage.Save(store.Medium(), storage.KeyUserCache, append(store.Users(), extra)))

		user, ok := auth.Login("cache@example.com", "pw")
		require.True(t, ok)
		assert.Equal(t, "u-cache", user.Id)
	})
}

func TestRegister(t *testing.T) {
	input := RegisterInput{
		Name:  "New Person",
		Email: "new@example.com",
		Role:  model.UserRoleFinisher,
	}

	t.Run("grants bonus tokens and a wallet", func(t *testing.T) {
		auth, store := newAuth(t)

		user, err := auth.Register(input)
		require.NoError(t, err)

		assert.Equal(t, model.RegistrationBonus, user.SwarmTokens)
		require.NotNil(t, user.Wallet)
		assert.NotEmpty(t, user.Wallet.Address)

		token := user.Wallet.SwarmToken()
		require.NotNil(t, token)
		assert.Equal(t, model.RegistrationBonus, token.Balance.IntPart())

		// 主集合与会话同时持有新用户
		_, found := store.FindUserByEmail("new@example.com")
		assert.True(t, found)
		current, ok := auth.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, user.Id, current.Id)
	})

	t.Run("duplicate email is rejected without mutation", func(t *testing.T) {
		auth, store := newAuth(t)
		countBefore := len(store.Users())

		_, err := auth.Register(RegisterInput{Name: "Imposter", Email: "alex@example.com"})
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Len(t, store.Users(), countBefore)
	})

	t.Run("empty role defaults to creator", func(t *testing.T) {
		auth, _ := newAuth(t)

		user, err := auth.Register(RegisterInput{Name: "N", Email: "n@example.com"})
		require.NoError(t, err)
		assert.Equal(t, model.UserRoleCreator, user.Role)
	})
}

func TestLogout(t *testing.T) {
	auth, _ := newAuth(t)

	_, ok := auth.Login("alex@example.com", "pw")
	require.True(t, ok)

	auth.Logout()

	_, ok = auth.CurrentUser()
	assert.False(t, ok)
}

func TestUpdateCurrentUser(t *testing.T) {
	auth, store := newAuth(t)

	user, ok := auth.Login("alex@example.com", "pw")
	require.True(t, ok)

	user.SwarmTokens = 640
	auth.UpdateCurrentUser(user)

	// 会话快照与主集合都拿到新余额，钱包保持同步
	current, ok := auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, int64(640), current.SwarmTokens)

	stored, _ := store.FindUser("user-1")
	assert.Equal(t, int64(640), stored.SwarmTokens)
	require.NotNil(t, stored.Wallet)
	token := stored.Wallet.SwarmToken()
	require.NotNil(t, token)
	assert.Equal(t, int64(640), token.Balance.IntPart())
}
