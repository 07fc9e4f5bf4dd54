package repository

import (
	"sync"
	"time"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/storage"
)

// Store 实体仓库，持有四个集合并与持久化介质保持同步。
// 由应用根创建一次后按引用传递，进程内通过互斥锁串行化；
// 跨进程写入仍为整快照覆盖（last-write-wins），无冲突检测。
type Store struct {
	mu     sync.RWMutex
	medium storage.Medium

	users    []model.User
	projects []model.Project
	reviews  []model.Review
	messages []model.Message
}

// NewStore 创建仓库并从介质恢复集合，介质为空时写入种子数据
func NewStore(medium storage.Medium) *Store {
	s := &Store{medium: medium}
	s.hydrate()
	return s
}

// hydrate 从介质加载全部集合
func (s *Store) hydrate() {
	s.users = storage.Load(s.medium, storage.KeyUsers, DefaultUsers())
	s.projects = storage.Load(s.medium, storage.KeyProjects, DefaultProjects())
	s.reviews = storage.Load(s.medium, storage.KeyReviews, []model.Review{})
	s.messages = storage.Load(s.medium, storage.KeyMessages, []model.Message{})
}

// Medium 返回底层介质（国库与会话层直接使用同一介质）
func (s *Store) Medium() storage.Medium {
	return s.medium
}

// Users 返回用户集合快照，逐个深拷贝以免钱包指针逃出锁外
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	for i := range s.users {
		out[i] = s.users[i].Clone()
	}
	return out
}

// Projects 返回项目集合快照，逐个深拷贝
func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Project, len(s.projects))
	for i := range s.projects {
		out[i] = s.projects[i].Clone()
	}
	return out
}

// Reviews 返回评价集合快照
func (s *Store) Reviews() []model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Review(nil), s.reviews...)
}

// Messages 返回消息集合快照
func (s *Store) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Message(nil), s.messages...)
}

// FindUser 按 id 查找用户
func (s *Store) FindUser(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Id == id {
			return s.users[i].Clone(), true
		}
	}
	return model.User{}, false
}

// FindUserByEmail 按邮箱查找用户
func (s *Store) FindUserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return s.users[i].Clone(), true
		}
	}
	return model.User{}, false
}

// FindProject 按 id 查找项目
func (s *Store) FindProject(id string) (model.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.projects {
		if s.projects[i].Id == id {
			return s.projects[i].Clone(), true
		}
	}
	return model.Project{}, false
}

// ProjectsByStatus 按状态过滤项目
func (s *Store) ProjectsByStatus(status model.ProjectStatus) []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Project
	for i := range s.projects {
		if s.projects[i].Status == status {
			out = append(out, s.projects[i].Clone())
		}
	}
	return out
}

// AddUser 追加用户并持久化全量集合
func (s *Store) AddUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user.Clone())
	storage.Save(s.medium, storage.KeyUsers, s.users)
}

// AddProject 新项目插入头部（最新优先）并持久化全量集合
func (s *Store) AddProject(project model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = append([]model.Project{project.Clone()}, s.projects...)
	storage.Save(s.medium, storage.KeyProjects, s.projects)
}

// AddReview 追加评价并持久化
func (s *Store) AddReview(review model.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = append(s.reviews, review)
	storage.Save(s.medium, storage.KeyReviews, s.reviews)
}

// AddMessage 追加消息并持久化
func (s *Store) AddMessage(message model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, message)
	storage.Save(s.medium, storage.KeyMessages, s.messages)
}

// MutateUser 原地修改用户并持久化，id 不存在时静默忽略
func (s *Store) MutateUser(id string, fn func(*model.User)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Id == id {
			fn(&s.users[i])
			storage.Save(s.medium, storage.KeyUsers, s.users)
			return true
		}
	}
	return false
}

// MutateProject 原地修改项目，打上 UpdatedAt 时间戳后持久化，id 不存在时静默忽略
func (s *Store) MutateProject(id string, fn func(*model.Project)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].Id == id {
			fn(&s.projects[i])
			s.projects[i].UpdatedAt = time.Now()
			storage.Save(s.medium, storage.KeyProjects, s.projects)
			return true
		}
	}
	return false
}

// UpdateProject 合并部分字段，id 不存在时为静默空操作
func (s *Store) UpdateProject(id string, updates ProjectUpdate) {
	s.MutateProject(id, func(p *model.Project) {
		updates.apply(p)
	})
}

// Refresh 丢弃内存集合并从介质重新加载（外部写入后使用）
func (s *Store) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrate()
}

// Clear 删除全部持久化键并重置为种子数据
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{
		storage.KeyUsers,
		storage.KeyProjects,
		storage.KeyReviews,
		storage.KeyMessages,
	} {
		s.medium.Delete(key)
	}

	s.users = DefaultUsers()
	s.projects = DefaultProjects()
	s.reviews = []model.Review{}
	s.messages = []model.Message{}
}

// ProjectUpdate 项目可更新字段，nil 表示不修改
type ProjectUpdate struct {
	Title            *string
	Description      *string
	DesiredOutcome   *string
	Platform         *string
	AppLink          *string
	Budget           *int64
	SwarmTokenReward *int64
	Status           *model.ProjectStatus
	FinisherId       *string
	Brief            *model.ProjectBrief
}

func (u ProjectUpdate) apply(p *model.Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.DesiredOutcome != nil {
		p.DesiredOutcome = *u.DesiredOutcome
	}
	if u.Platform != nil {
		p.Platform = *u.Platform
	}
	if u.AppLink != nil {
		p.AppLink = *u.AppLink
	}
	if u.Budget != nil {
		p.Budget = *u.Budget
	}
	if u.SwarmTokenReward != nil {
		p.SwarmTokenReward = *u.SwarmTokenReward
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.FinisherId != nil {
		p.FinisherId = *u.FinisherId
	}
	if u.Brief != nil {
		p.Brief = u.Brief
	}
}
