package logic

import (
	"time"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logger"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/repository"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/storage"
	"github.com/google/uuid"
)

// AuthLogic 会话层。登录对已知邮箱接受任意密码，会话即一份用户快照；
// 另维护一份用户数组缓存，供登录注册流程按邮箱检索而不触碰主集合。
type AuthLogic struct {
	store  *repository.Store
	ledger *LedgerLogic
}

// NewAuthLogic 创建会话逻辑
func NewAuthLogic(store *repository.Store, ledger *LedgerLogic) *AuthLogic {
	return &AuthLogic{
		store:  store,
		ledger: ledger,
	}
}

// userCache 读取会话缓存，为空时以主集合初始化
func (a *AuthLogic) userCache() []model.User {
	return storage.Load(a.store.Medium(), storage.KeyUserCache, a.store.Users())
}

// saveCache 回写会话缓存
func (a *AuthLogic) saveCache(users []model.User) {
	storage.Save(a.store.Medium(), storage.KeyUserCache, users)
}

// rebuildCache 以主集合为准重建缓存，仅补入缓存独有的条目，
// 使两次登录之间发生的余额变动能进入会话快照
func (a *AuthLogic) rebuildCache() []model.User {
	users := a.store.Users()

	known := make(map[string]struct{}, len(users))
	for _, u := range users {
		known[u.Id] = struct{}{}
	}
	for _, u := range a.userCache() {
		if _, ok := known[u.Id]; !ok {
			users = append(users, u)
		}
	}
	return users
}

// reconcileBalance 会话快照中的余额以钱包 SWARM 条目为准
func reconcileBalance(user *model.User) {
	if user.Wallet == nil {
		return
	}
	if token := user.Wallet.SwarmToken(); token != nil {
		walletBalance := token.Balance.IntPart()
		if user.SwarmTokens != walletBalance {
			user.SwarmTokens = walletBalance
		}
	}
}

// Login 按邮箱登录，密码不校验。未知邮箱返回 false。
func (a *AuthLogic) Login(email, _ string) (model.User, bool) {
	cache := a.rebuildCache()

	for i := range cache {
		if cache[i].Email == email {
			user := cache[i]
			reconcileBalance(&user)

			storage.Save(a.store.Medium(), storage.KeyCurrentUser, user)
			a.saveCache(cache)

			logger.Info("User %s logged in", user.Id)
			return user, true
		}
	}

	return model.User{}, false
}

// RegisterInput 注册输入字段
type RegisterInput struct {
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Role   model.UserRole `json:"role"`
	Skills []string       `json:"skills"`
	Bio    string         `json:"bio"`
}

// Register 注册新用户：赠送初始代币并生成占位钱包。
// 邮箱重复时返回 ErrEmailTaken 且不产生任何变更。
func (a *AuthLogic) Register(input RegisterInput) (model.User, error) {
	cache := a.userCache()
	for i := range cache {
		if cache[i].Email == input.Email {
			return model.User{}, ErrEmailTaken
		}
	}

	role := input.Role
	if role == "" {
		role = model.UserRoleCreator
	}

	user := model.User{
		Id:          uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		Role:        role,
		Skills:      input.Skills,
		Bio:         input.Bio,
		CreatedAt:   time.Now(),
		SwarmTokens: model.RegistrationBonus,
		Wallet:      model.NewPlaceholderWallet(model.MintWalletAddress(), model.RegistrationBonus),
	}

	a.store.AddUser(user)
	a.saveCache(append(cache, user))
	storage.Save(a.store.Medium(), storage.KeyCurrentUser, user)

	logger.Info("User %s registered with %d SWARM", user.Id, model.RegistrationBonus)
	return user, nil
}

// CurrentUser 读取当前会话用户快照
func (a *AuthLogic) CurrentUser() (model.User, bool) {
	var empty model.User
	user := storage.Load(a.store.Medium(), storage.KeyCurrentUser, empty)
	if user.Id == "" {
		return model.User{}, false
	}

	reconcileBalance(&user)
	return user, true
}

// UpdateCurrentUser 更新会话快照并将余额同步回主集合
func (a *AuthLogic) UpdateCurrentUser(user model.User) {
	// 钱包与余额双份表示保持一致后再落会话
	a.ledger.SetBalance(user.Id, user.SwarmTokens)
	if updated, ok := a.store.FindUser(user.Id); ok {
		user.Wallet = updated.Wallet
	}

	storage.Save(a.store.Medium(), storage.KeyCurrentUser, user)
}

// Logout 清除当前会话
func (a *AuthLogic) Logout() {
	a.store.Medium().Delete(storage.KeyCurrentUser)
}
