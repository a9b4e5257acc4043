package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrWeakPassword 密码不满足策略:至少 8 位,仅限 ASCII 字母和数字
var ErrWeakPassword = errors.New("密码至少8位,且只能包含英文字母和数字")

// HashPassword 生成 bcrypt 哈希,明文密码不落库不打日志
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash 校验明文密码与哈希是否匹配
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword 注册时的密码策略校验
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return ErrWeakPassword
		}
	}
	return nil
}
