package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shra1-honade/protein-calorie-tracker/models"
)

func TestSeedCommonFoods(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	require.NoError(t, SeedCommonFoods(db, zap.NewNop()))

	var count int64
	require.NoError(t, db.Model(&models.CommonFood{}).Count(&count).Error)
	assert.Equal(t, int64(len(commonFoods)), count)

	// Re-seeding an already populated catalog is a no-op.
	require.NoError(t, SeedCommonFoods(db, zap.NewNop()))
	require.NoError(t, db.Model(&models.CommonFood{}).Count(&count).Error)
	assert.Equal(t, int64(len(commonFoods)), count)
}
