package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/shra1-honade/protein-calorie-tracker/models"
)

type DashboardService struct {
	db   *gorm.DB
	food *FoodService
}

func NewDashboardService(db *gorm.DB, food *FoodService) *DashboardService {
	return &DashboardService{db: db, food: food}
}

type DailySummary struct {
	Date          string             `json:"date"`
	TotalProtein  float64            `json:"total_protein"`
	TotalCalories float64            `json:"total_calories"`
	TotalCarbs    float64            `json:"total_carbs"`
	ProteinGoal   float64            `json:"protein_goal"`
	CalorieGoal   float64            `json:"calorie_goal"`
	CarbGoal      float64            `json:"carb_goal"`
	Entries       []models.FoodEntry `json:"entries"`
}

type WeeklyDay struct {
	Date          string  `json:"date"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCalories float64 `json:"total_calories"`
	TotalCarbs    float64 `json:"total_carbs"`
}

type WeeklySummary struct {
	Days        []WeeklyDay `json:"days"`
	ProteinGoal float64     `json:"protein_goal"`
	CalorieGoal float64     `json:"calorie_goal"`
	CarbGoal    float64     `json:"carb_goal"`
}

// Daily sums the day's macros against the user's goals, alongside the raw
// entry list.
func (s *DashboardService) Daily(user *models.User, day time.Time) (*DailySummary, error) {
	entries, err := s.food.EntriesForDate(user.ID, day)
	if err != nil {
		return nil, err
	}

	var protein, calories, carbs float64
	for _, e := range entries {
		protein += e.ProteinG
		calories += e.Calories
		carbs += e.CarbsG
	}

	return &DailySummary{
		Date:          day.Format("2006-01-02"),
		TotalProtein:  round1(protein),
		TotalCalories: round1(calories),
		TotalCarbs:    round1(carbs),
		ProteinGoal:   user.ProteinGoal,
		CalorieGoal:   user.CalorieGoal,
		CarbGoal:      user.CarbGoal,
		Entries:       entries,
	}, nil
}

type macroTotals struct {
	TotalProtein  float64
	TotalCalories float64
	TotalCarbs    float64
}

// Weekly returns exactly 7 day-buckets ending at today, oldest first.
// Days with no entries yield zeros, not gaps.
func (s *DashboardService) Weekly(user *models.User, today time.Time) (*WeeklySummary, error) {
	out := &WeeklySummary{
		ProteinGoal: user.ProteinGoal,
		CalorieGoal: user.CalorieGoal,
		CarbGoal:    user.CarbGoal,
	}

	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		var row macroTotals
		err := s.db.Model(&models.FoodEntry{}).
			Select("COALESCE(SUM(protein_g), 0) AS total_protein, COALESCE(SUM(calories), 0) AS total_calories, COALESCE(SUM(carbs_g), 0) AS total_carbs").
			Where("user_id = ? AND DATE(logged_at) = ?", user.ID, d.Format("2006-01-02")).
			Scan(&row).Error
		if err != nil {
			return nil, err
		}
		out.Days = append(out.Days, WeeklyDay{
			Date:          d.Format("2006-01-02"),
			TotalProtein:  round1(row.TotalProtein),
			TotalCalories: round1(row.TotalCalories),
			TotalCarbs:    round1(row.TotalCarbs),
		})
	}
	return out, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
