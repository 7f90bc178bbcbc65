package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shra1-honade/protein-calorie-tracker/models"
)

func newTestGemini(t *testing.T, reply string) (*GeminiService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": reply}},
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	svc := &GeminiService{
		client:  srv.Client(),
		apiKey:  "test-key",
		baseURL: srv.URL,
		model:   "gemini-test",
		extract: MarkdownJSONExtractor{},
	}
	return svc, srv
}

func TestDetectFoodFromImage(t *testing.T) {
	reply := "```json\n" + `{
		"foods": [
			{"name": "Grilled Chicken", "protein_g": 31, "calories": 165, "carbs_g": 0, "confidence": 0.9}
		],
		"total_protein": 31,
		"total_calories": 165,
		"total_carbs": 0
	}` + "\n```"
	svc, _ := newTestGemini(t, reply)

	result, err := svc.DetectFoodFromImage(context.Background(), []byte("fake-image"), "image/png")
	require.NoError(t, err)

	require.Len(t, result.Foods, 1)
	assert.Equal(t, "Grilled Chicken", result.Foods[0].Name)
	assert.Equal(t, 31.0, result.Foods[0].ProteinG)
	assert.Equal(t, 0.9, result.Foods[0].Confidence)
	assert.Equal(t, 31.0, result.TotalProtein)
}

func TestDetectFoodMissingCarbFieldsDecodeAsZero(t *testing.T) {
	reply := `{"foods": [{"name": "Mystery", "protein_g": 5, "calories": 80, "confidence": 0.4}], "total_protein": 5, "total_calories": 80}`
	svc, _ := newTestGemini(t, reply)

	result, err := svc.DetectFoodFromImage(context.Background(), []byte("img"), "")
	require.NoError(t, err)
	assert.Zero(t, result.Foods[0].CarbsG)
	assert.Zero(t, result.TotalCarbs)
}

func TestDetectFoodUnparseableReply(t *testing.T) {
	svc, _ := newTestGemini(t, "I see a plate but cannot estimate nutrition.")

	_, err := svc.DetectFoodFromImage(context.Background(), []byte("img"), "image/jpeg")
	assert.Error(t, err)
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	svc := &GeminiService{
		client:  &http.Client{Timeout: time.Second},
		baseURL: "http://localhost:0",
		model:   "gemini-test",
		extract: MarkdownJSONExtractor{},
	}

	_, err := svc.DetectFoodFromImage(context.Background(), []byte("img"), "")
	assert.Error(t, err)
}

func TestGenerateSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	svc := &GeminiService{
		client:  srv.Client(),
		apiKey:  "test-key",
		baseURL: srv.URL,
		model:   "gemini-test",
		extract: MarkdownJSONExtractor{},
	}

	_, err := svc.DetectFoodFromImage(context.Background(), []byte("img"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateMealPlan(t *testing.T) {
	reply := `{
		"meals": [
			{"meal_type": "dinner", "items": [
				{"name": "Salmon with rice", "quantity": "1 plate", "protein_g": 35, "calories": 500, "carbs_g": 45}
			]}
		],
		"day_summary": {"protein_g": 150, "calories": 2000, "carbs_g": 200},
		"note": "Drink water with dinner."
	}`
	svc, _ := newTestGemini(t, reply)

	user := &models.User{ProteinGoal: 150, CalorieGoal: 2000, CarbGoal: 200}
	plan, err := svc.GenerateMealPlan(context.Background(), user, nil, nil)
	require.NoError(t, err)

	require.Len(t, plan.Meals, 1)
	assert.Equal(t, "dinner", plan.Meals[0].MealType)
	assert.Equal(t, 35.0, plan.Meals[0].Items[0].ProteinG)
	assert.Equal(t, "Drink water with dinner.", plan.Note)
}

func TestUnloggedSlots(t *testing.T) {
	entries := []models.FoodEntry{
		{MealType: "breakfast"},
		{MealType: "lunch"},
	}
	assert.Equal(t, []string{"dinner", "snack"}, unloggedSlots(entries))

	assert.Equal(t, []string{"breakfast", "lunch", "dinner", "snack"}, unloggedSlots(nil))

	all := []models.FoodEntry{
		{MealType: "breakfast"}, {MealType: "lunch"}, {MealType: "dinner"}, {MealType: "snack"},
	}
	assert.Equal(t, []string{"snack"}, unloggedSlots(all))
}

func TestRemainingBudgetFloorsAtZero(t *testing.T) {
	user := &models.User{ProteinGoal: 100, CalorieGoal: 1000, CarbGoal: 50}
	todays := []models.FoodEntry{
		{ProteinG: 60, Calories: 1200, CarbsG: 20},
	}

	protein, calories, carbs := remainingBudget(user, todays)
	assert.Equal(t, 40.0, protein)
	assert.Equal(t, 0.0, calories)
	assert.Equal(t, 30.0, carbs)
}

func TestTopFoods(t *testing.T) {
	history := []models.FoodEntry{
		{FoodName: "Eggs"}, {FoodName: "Eggs"}, {FoodName: "Eggs"},
		{FoodName: "Rice"}, {FoodName: "Rice"},
		{FoodName: "Banana"}, {FoodName: "Apple"},
	}

	assert.Equal(t, []string{"Eggs", "Rice", "Apple"}, topFoods(history, 3))
	assert.Empty(t, topFoods(nil, 5))
}

func TestMealPlanPromptContents(t *testing.T) {
	user := &models.User{
		ProteinGoal:       150,
		CalorieGoal:       2000,
		CarbGoal:          200,
		DietaryPreference: "vegetarian",
		FoodDislikes:      "mushrooms",
	}
	today := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	todays := []models.FoodEntry{
		{MealType: "breakfast", FoodName: "Oats", ProteinG: 5, Calories: 150, CarbsG: 27, LoggedAt: today},
	}
	history := []models.FoodEntry{
		{FoodName: "Dal", ProteinG: 18, Calories: 230, CarbsG: 40, LoggedAt: today.AddDate(0, 0, -1)},
	}

	prompt := buildMealPlanPrompt(user, todays, history)

	assert.Contains(t, prompt, "150g protein")
	assert.Contains(t, prompt, "vegetarian")
	assert.Contains(t, prompt, "mushrooms")
	assert.Contains(t, prompt, "lunch, dinner, snack")
	assert.Contains(t, prompt, "2026-03-09")
	assert.Contains(t, prompt, "Return ONLY the JSON")
	assert.NotContains(t, prompt, "breakfast,")
}
