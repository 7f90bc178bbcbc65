package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shra1-honade/protein-calorie-tracker/config"
	"github.com/shra1-honade/protein-calorie-tracker/models"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel   = "gemini-2.5-flash"
)

var mealSlots = []string{"breakfast", "lunch", "dinner", "snack"}

type GeminiService struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
	extract ResponseExtractor
}

func NewGeminiService(cfg *config.Config) *GeminiService {
	return &GeminiService{
		client:  &http.Client{Timeout: 30 * time.Second},
		apiKey:  cfg.GeminiAPIKey,
		baseURL: geminiBaseURL,
		model:   geminiModel,
		extract: MarkdownJSONExtractor{},
	}
}

// ---------- Food detection ----------

type DetectedFood struct {
	Name       string  `json:"name"`
	ProteinG   float64 `json:"protein_g"`
	Calories   float64 `json:"calories"`
	CarbsG     float64 `json:"carbs_g"`
	Confidence float64 `json:"confidence"`
}

type DetectionResult struct {
	Foods         []DetectedFood `json:"foods"`
	TotalProtein  float64        `json:"total_protein"`
	TotalCalories float64        `json:"total_calories"`
	TotalCarbs    float64        `json:"total_carbs"`
}

const detectPrompt = `Analyze this food image and provide nutrition estimates.

Return a JSON object with this exact structure:
{
  "foods": [
    {"name": "Food Name", "protein_g": 25.0, "calories": 300, "carbs_g": 30.0, "confidence": 0.85}
  ],
  "total_protein": 25.0,
  "total_calories": 300,
  "total_carbs": 30.0
}

Rules:
- Identify all visible foods
- Estimate serving sizes from visual cues
- Provide realistic protein (g), carbohydrate (g), and calorie estimates
- confidence: 0-1 (how certain you are)
- If unsure, provide best guess with lower confidence
- Return ONLY the JSON, no other text`

// DetectFoodFromImage asks the vision model to estimate macros for the
// foods in an image. Carb fields the model omits decode as zero.
func (s *GeminiService) DetectFoodFromImage(ctx context.Context, image []byte, mimeType string) (*DetectionResult, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	parts := []geminiPart{
		{Text: detectPrompt},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}

	text, err := s.generate(ctx, parts)
	if err != nil {
		return nil, err
	}
	doc, err := s.extract.Extract(text)
	if err != nil {
		return nil, err
	}

	var result DetectionResult
	if err := json.Unmarshal(doc, &result); err != nil {
		return nil, fmt.Errorf("decode detection JSON: %w", err)
	}
	return &result, nil
}

// ---------- Meal planning ----------

type PlannedItem struct {
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	ProteinG float64 `json:"protein_g"`
	Calories float64 `json:"calories"`
	CarbsG   float64 `json:"carbs_g"`
}

type PlannedMeal struct {
	MealType string        `json:"meal_type"`
	Items    []PlannedItem `json:"items"`
}

type MealPlanSummary struct {
	ProteinG float64 `json:"protein_g"`
	Calories float64 `json:"calories"`
	CarbsG   float64 `json:"carbs_g"`
}

type MealPlan struct {
	Meals      []PlannedMeal   `json:"meals"`
	DaySummary MealPlanSummary `json:"day_summary"`
	Note       string          `json:"note"`
}

// GenerateMealPlan proposes meals for today's still-unlogged slots, within
// the remaining macro budget and the user's dietary constraints. The model
// reply goes through the same best-effort extraction as detection; a
// malformed reply surfaces as a parse error.
func (s *GeminiService) GenerateMealPlan(ctx context.Context, user *models.User, todays, history []models.FoodEntry) (*MealPlan, error) {
	prompt := buildMealPlanPrompt(user, todays, history)

	text, err := s.generate(ctx, []geminiPart{{Text: prompt}})
	if err != nil {
		return nil, err
	}
	doc, err := s.extract.Extract(text)
	if err != nil {
		return nil, err
	}

	var plan MealPlan
	if err := json.Unmarshal(doc, &plan); err != nil {
		return nil, fmt.Errorf("decode meal plan JSON: %w", err)
	}
	return &plan, nil
}

func buildMealPlanPrompt(user *models.User, todays, history []models.FoodEntry) string {
	unlogged := unloggedSlots(todays)
	protein, calories, carbs := remainingBudget(user, todays)

	var sb bytes.Buffer
	sb.WriteString("You are a nutrition assistant planning the rest of today's meals.\n\n")
	fmt.Fprintf(&sb, "Daily goals: %.0fg protein, %.0f kcal, %.0fg carbs.\n",
		user.ProteinGoal, user.CalorieGoal, user.CarbGoal)
	fmt.Fprintf(&sb, "Remaining budget for today: %.0fg protein, %.0f kcal, %.0fg carbs.\n",
		protein, calories, carbs)
	fmt.Fprintf(&sb, "Meals not yet logged today: %s.\n", strings.Join(unlogged, ", "))

	if user.DietaryPreference != "" {
		fmt.Fprintf(&sb, "Dietary preference: %s.\n", user.DietaryPreference)
	}
	if user.FoodDislikes != "" {
		fmt.Fprintf(&sb, "Dislikes (never suggest these): %s.\n", user.FoodDislikes)
	}

	sb.WriteString("\nIntake over the last 7 days:\n")
	days := dailyHistory(history)
	if len(days) == 0 {
		sb.WriteString("- (nothing logged)\n")
	}
	for _, d := range days {
		fmt.Fprintf(&sb, "- %s: %.0fg protein, %.0f kcal, %.0fg carbs\n",
			d.date, d.protein, d.calories, d.carbs)
	}

	if foods := topFoods(history, 5); len(foods) > 0 {
		fmt.Fprintf(&sb, "\nFrequently eaten foods: %s.\n", strings.Join(foods, ", "))
	}

	sb.WriteString(`
Propose meals ONLY for the unlogged slots listed above, respecting the
dietary preference and dislikes, and staying within the remaining budget.

Return a JSON object with this exact structure:
{
  "meals": [
    {
      "meal_type": "lunch",
      "items": [
        {"name": "Food Name", "quantity": "1 cup", "protein_g": 20.0, "calories": 350, "carbs_g": 40.0}
      ]
    }
  ],
  "day_summary": {"protein_g": 150.0, "calories": 2000, "carbs_g": 200.0},
  "note": "one short practical tip"
}

Return ONLY the JSON, no other text.`)

	return sb.String()
}

// unloggedSlots reports which of the four fixed meal slots have no entry
// yet today, in slot order.
func unloggedSlots(todays []models.FoodEntry) []string {
	logged := make(map[string]bool, len(todays))
	for _, e := range todays {
		logged[e.MealType] = true
	}
	var out []string
	for _, slot := range mealSlots {
		if !logged[slot] {
			out = append(out, slot)
		}
	}
	if len(out) == 0 {
		return []string{"snack"} // everything logged; still offer something small
	}
	return out
}

// remainingBudget is goal minus today's consumption, floored at zero.
func remainingBudget(user *models.User, todays []models.FoodEntry) (protein, calories, carbs float64) {
	var p, c, cb float64
	for _, e := range todays {
		p += e.ProteinG
		c += e.Calories
		cb += e.CarbsG
	}
	return math.Max(0, user.ProteinGoal-p),
		math.Max(0, user.CalorieGoal-c),
		math.Max(0, user.CarbGoal-cb)
}

type historyDay struct {
	date     string
	protein  float64
	calories float64
	carbs    float64
}

// dailyHistory buckets entries per calendar date, ascending.
func dailyHistory(history []models.FoodEntry) []historyDay {
	idx := map[string]*historyDay{}
	for _, e := range history {
		key := e.LoggedAt.Format("2006-01-02")
		d, ok := idx[key]
		if !ok {
			d = &historyDay{date: key}
			idx[key] = d
		}
		d.protein += e.ProteinG
		d.calories += e.Calories
		d.carbs += e.CarbsG
	}

	out := make([]historyDay, 0, len(idx))
	for _, d := range idx {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].date < out[j].date })
	return out
}

// topFoods returns the n most frequently logged food names, most frequent
// first, names breaking ties.
func topFoods(history []models.FoodEntry, n int) []string {
	counts := map[string]int{}
	for _, e := range history {
		counts[e.FoodName]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) > n {
		names = names[:n]
	}
	return names
}

// ---------- Transport ----------

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

// generate performs a single generateContent call and returns the first
// candidate's text.
func (s *GeminiService) generate(ctx context.Context, parts []geminiPart) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	body, err := json.Marshal(geminiRequest{Contents: []geminiContent{{Parts: parts}}})
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		s.baseURL, s.model, url.QueryEscape(s.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode gemini response error: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
