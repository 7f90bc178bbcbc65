package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shra1-honade/protein-calorie-tracker/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.CommonFood{},
		&models.FoodEntry{},
		&models.Group{},
		&models.GroupMember{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, googleID, email string) *models.User {
	t.Helper()
	user := &models.User{
		GoogleID:    googleID,
		Email:       email,
		DisplayName: email,
		ProteinGoal: 150,
		CalorieGoal: 2000,
		CarbGoal:    200,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
