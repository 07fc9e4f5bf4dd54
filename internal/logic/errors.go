package logic

import (
	"errors"
)

// 业务规则错误，不发生任何部分写入
var (
	ErrInsufficientTokens = errors.New("SWARM 代币余额不足")
	ErrEmailTaken         = errors.New("邮箱已被注册")
	ErrUserNotFound       = errors.New("用户不存在")
)
