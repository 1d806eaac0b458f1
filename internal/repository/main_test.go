package repository

import (
	"testing"

	"raptor/internal/database"
	"raptor/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// createTestUser persists a user with a hashed password.
func createTestUser(t *testing.T, db *gorm.DB, name, username string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTestRapt persists a rapt owned by the given user.
func createTestRapt(t *testing.T, db *gorm.DB, userID uint, title string) *models.Rapt {
	t.Helper()

	rapt := &models.Rapt{UserID: userID, Title: title, Content: "content of " + title}
	require.NoError(t, db.Create(rapt).Error)
	return rapt
}
