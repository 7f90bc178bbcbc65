package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/shra1-honade/protein-calorie-tracker/models"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

type AdminStats struct {
	TotalUsers                 int64   `json:"total_users"`
	NewUsersLast24h            int64   `json:"new_users_last_24h"`
	NewUsersLast7Days          int64   `json:"new_users_last_7_days"`
	TotalFoodEntries           int64   `json:"total_food_entries"`
	TotalGroups                int64   `json:"total_groups"`
	ActiveUsersLast7Days       int64   `json:"active_users_last_7_days"`
	TotalProteinLoggedAllTime  float64 `json:"total_protein_logged_all_time"`
	TotalCaloriesLoggedAllTime float64 `json:"total_calories_logged_all_time"`
}

// Stats computes platform-wide counters.
func (s *AdminService) Stats() (*AdminStats, error) {
	now := time.Now()
	last24h := now.Add(-24 * time.Hour)
	last7Days := now.AddDate(0, 0, -7)

	stats := &AdminStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).
		Where("created_at >= ?", last24h).
		Count(&stats.NewUsersLast24h).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).
		Where("created_at >= ?", last7Days).
		Count(&stats.NewUsersLast7Days).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.FoodEntry{}).Count(&stats.TotalFoodEntries).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Group{}).Count(&stats.TotalGroups).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.FoodEntry{}).
		Where("logged_at >= ?", last7Days).
		Distinct("user_id").
		Count(&stats.ActiveUsersLast7Days).Error; err != nil {
		return nil, err
	}

	var sums macroTotals
	if err := s.db.Model(&models.FoodEntry{}).
		Select("COALESCE(SUM(protein_g), 0) AS total_protein, COALESCE(SUM(calories), 0) AS total_calories").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	stats.TotalProteinLoggedAllTime = round1(sums.TotalProtein)
	stats.TotalCaloriesLoggedAllTime = round1(sums.TotalCalories)

	return stats, nil
}
