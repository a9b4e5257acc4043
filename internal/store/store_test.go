package store

import (
	"testing"

	"seasoncal/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试用独立的内存 SQLite,表结构与生产一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Activity{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func mustRegister(t *testing.T, s *UserStore, username, email string) *models.User {
	t.Helper()
	user, err := s.Register(username, email, "password1")
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", username, err)
	}
	return user
}
