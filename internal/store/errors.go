// Package store 封装所有持久化操作。
// 每个操作都显式接收当前用户身份,绝不依赖请求级全局状态。
package store

import (
	"errors"
)

var (
	// ErrNotFound 记录不存在,或存在但不属于当前用户。
	// 两种情况对外不可区分,避免泄露他人记录的存在性。
	ErrNotFound = errors.New("记录不存在")

	// ErrUsernameTaken 用户名已被注册
	ErrUsernameTaken = errors.New("用户名已被注册")

	// ErrEmailTaken 邮箱已被注册
	ErrEmailTaken = errors.New("邮箱已被注册")

	// ErrInvalidLogin 用户名或密码错误。统一返回,不透露具体是哪个字段错了
	ErrInvalidLogin = errors.New("用户名或密码错误")

	// ErrInvalidMonth 月份不在 1-12 范围内
	ErrInvalidMonth = errors.New("月份必须在1到12之间")

	// ErrInvalidType 活动类型不在枚举范围内
	ErrInvalidType = errors.New("活动类型不合法")

	// ErrEmptyTitle 标题为空
	ErrEmptyTitle = errors.New("标题不能为空")
)
