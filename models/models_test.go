package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonKeys(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	keys := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &keys))
	return keys
}

func TestUserJSONSurface(t *testing.T) {
	keys := jsonKeys(t, User{ID: 7, GoogleID: "g-123", Email: "a@example.com"})

	assert.Contains(t, keys, "id")
	assert.Contains(t, keys, "created_at")
	assert.Contains(t, keys, "email")
	assert.NotContains(t, keys, "ID")
	assert.NotContains(t, keys, "CreatedAt")
	assert.NotContains(t, keys, "DeletedAt")
	// The provider subject id never serializes.
	assert.NotContains(t, keys, "google_id")
	assert.NotContains(t, keys, "GoogleID")
	assert.Equal(t, float64(7), keys["id"])
}

func TestFoodEntryJSONSurface(t *testing.T) {
	keys := jsonKeys(t, FoodEntry{ID: 3, FoodName: "Eggs", LoggedAt: time.Now()})

	assert.Contains(t, keys, "id")
	assert.Contains(t, keys, "food_name")
	assert.Contains(t, keys, "logged_at")
	assert.NotContains(t, keys, "ID")
	assert.NotContains(t, keys, "UpdatedAt")
	assert.NotContains(t, keys, "DeletedAt")
	assert.NotContains(t, keys, "user_id")
}

func TestGroupJSONSurface(t *testing.T) {
	keys := jsonKeys(t, Group{ID: 1, Name: "Gang", InviteCode: "abc123XY"})

	assert.Contains(t, keys, "id")
	assert.Contains(t, keys, "invite_code")
	assert.NotContains(t, keys, "ID")
	assert.NotContains(t, keys, "DeletedAt")
}
