package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shra1-honade/protein-calorie-tracker/models"
)

func TestLogEntryScalesMacrosByServingQty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	user := createTestUser(t, db, "g-1", "a@example.com")

	entry, err := svc.LogEntry(user.ID, FoodLogRequest{
		FoodName:   "Eggs (2 whole)",
		ProteinG:   12,
		Calories:   140,
		CarbsG:     1,
		ServingQty: 2,
		MealType:   "breakfast",
	})
	require.NoError(t, err)

	assert.Equal(t, 24.0, entry.ProteinG)
	assert.Equal(t, 280.0, entry.Calories)
	assert.Equal(t, 2.0, entry.CarbsG)
	assert.Equal(t, 2.0, entry.ServingQty)
}

func TestLogEntryDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	user := createTestUser(t, db, "g-1", "a@example.com")

	before := time.Now().UTC()
	entry, err := svc.LogEntry(user.ID, FoodLogRequest{
		FoodName: "Chicken Breast (100g)",
		ProteinG: 31,
		Calories: 165,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, entry.ServingQty)
	assert.Equal(t, "snack", entry.MealType)
	assert.Equal(t, 31.0, entry.ProteinG)
	assert.False(t, entry.LoggedAt.Before(before.Add(-time.Second)))
}

func TestLogEntryRejectsBadTimestamp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	user := createTestUser(t, db, "g-1", "a@example.com")

	_, err := svc.LogEntry(user.ID, FoodLogRequest{
		FoodName: "Rice",
		LoggedAt: "yesterday",
	})
	assert.Error(t, err)
}

func TestUpdateEntryRescalesFromPerServingFigures(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	user := createTestUser(t, db, "g-1", "a@example.com")

	entry, err := svc.LogEntry(user.ID, FoodLogRequest{
		FoodName: "Eggs (2 whole)", ProteinG: 12, Calories: 140, CarbsG: 1, ServingQty: 1,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEntry(user.ID, entry.ID, FoodLogRequest{
		FoodName: "Eggs (2 whole)", ProteinG: 12, Calories: 140, CarbsG: 1, ServingQty: 3,
		MealType: "lunch",
	})
	require.NoError(t, err)

	assert.Equal(t, 36.0, updated.ProteinG)
	assert.Equal(t, 420.0, updated.Calories)
	assert.Equal(t, 3.0, updated.CarbsG)
	assert.Equal(t, "lunch", updated.MealType)
}

func TestEntryOwnershipCollapsesToNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	owner := createTestUser(t, db, "g-1", "a@example.com")
	other := createTestUser(t, db, "g-2", "b@example.com")

	entry, err := svc.LogEntry(owner.ID, FoodLogRequest{
		FoodName: "Paneer (100g)", ProteinG: 18, Calories: 265,
	})
	require.NoError(t, err)

	// Someone else's entry and a nonexistent one look identical.
	_, err = svc.UpdateEntry(other.ID, entry.ID, FoodLogRequest{FoodName: "x"})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	err = svc.DeleteEntry(other.ID, entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	err = svc.DeleteEntry(owner.ID, 99999)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteEntryRemovesIt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	user := createTestUser(t, db, "g-1", "a@example.com")

	entry, err := svc.LogEntry(user.ID, FoodLogRequest{FoodName: "Tofu (100g)", ProteinG: 8, Calories: 76})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(user.ID, entry.ID))

	entries, err := svc.EntriesForDate(user.ID, entry.LoggedAt)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesForDateFiltersAndOrders(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	user := createTestUser(t, db, "g-1", "a@example.com")

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	log := func(name string, at time.Time) {
		_, err := svc.LogEntry(user.ID, FoodLogRequest{
			FoodName: name, ProteinG: 10, Calories: 100,
			LoggedAt: at.Format(time.RFC3339),
		})
		require.NoError(t, err)
	}
	log("breakfast item", day.Add(8*time.Hour))
	log("dinner item", day.Add(19*time.Hour))
	log("other day", day.AddDate(0, 0, 1).Add(8*time.Hour))

	entries, err := svc.EntriesForDate(user.ID, day)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "dinner item", entries[0].FoodName)
	assert.Equal(t, "breakfast item", entries[1].FoodName)
}

func TestEntriesForRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)
	user := createTestUser(t, db, "g-1", "a@example.com")

	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		_, err := svc.LogEntry(user.ID, FoodLogRequest{
			FoodName: "daily", ProteinG: 5, Calories: 50,
			LoggedAt: day.AddDate(0, 0, -i).Format(time.RFC3339),
		})
		require.NoError(t, err)
	}

	entries, err := svc.EntriesForRange(user.ID, day.AddDate(0, 0, -6), day)
	require.NoError(t, err)
	assert.Len(t, entries, 7)
	// Oldest first.
	assert.True(t, entries[0].LoggedAt.Before(entries[len(entries)-1].LoggedAt))
}

func TestCommonFoodsOrderedByDisplayOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db)

	require.NoError(t, db.Create(&models.CommonFood{Name: "B", SortOrder: 2, Category: "x", Icon: "y"}).Error)
	require.NoError(t, db.Create(&models.CommonFood{Name: "A", SortOrder: 1, Category: "x", Icon: "y"}).Error)

	foods, err := svc.CommonFoods()
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "A", foods[0].Name)
	assert.Equal(t, "B", foods[1].Name)
}
