package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shra1-honade/protein-calorie-tracker/models"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// FoodLogRequest carries per-serving macro figures; the service persists
// the scaled totals.
type FoodLogRequest struct {
	FoodName   string  `json:"food_name" binding:"required"`
	ProteinG   float64 `json:"protein_g"`
	Calories   float64 `json:"calories"`
	CarbsG     float64 `json:"carbs_g"`
	FdcID      string  `json:"fdc_id"`
	MealType   string  `json:"meal_type"`
	ServingQty float64 `json:"serving_qty"`
	LoggedAt   string  `json:"logged_at"` // ISO format, defaults to now
}

// CommonFoods returns the seeded catalog in display order.
func (s *FoodService) CommonFoods() ([]models.CommonFood, error) {
	var foods []models.CommonFood
	err := s.db.Order("sort_order").Find(&foods).Error
	return foods, err
}

// LogEntry persists a consumption event. Stored macro values are the
// per-serving figures multiplied by the serving quantity.
func (s *FoodService) LogEntry(userID uint, req FoodLogRequest) (*models.FoodEntry, error) {
	loggedAt, err := parseLoggedAt(req.LoggedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid logged_at: %w", err)
	}
	qty := req.ServingQty
	if qty == 0 {
		qty = 1
	}
	mealType := req.MealType
	if mealType == "" {
		mealType = "snack"
	}

	entry := models.FoodEntry{
		UserID:     userID,
		FoodName:   req.FoodName,
		ProteinG:   req.ProteinG * qty,
		Calories:   req.Calories * qty,
		CarbsG:     req.CarbsG * qty,
		FdcID:      req.FdcID,
		MealType:   mealType,
		ServingQty: qty,
		LoggedAt:   loggedAt,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry rewrites an entry the caller owns, re-multiplying macros by
// the (possibly new) serving quantity.
func (s *FoodService) UpdateEntry(userID, entryID uint, req FoodLogRequest) (*models.FoodEntry, error) {
	entry, err := s.ownedEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	loggedAt, err := parseLoggedAt(req.LoggedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid logged_at: %w", err)
	}
	qty := req.ServingQty
	if qty == 0 {
		qty = 1
	}
	mealType := req.MealType
	if mealType == "" {
		mealType = "snack"
	}

	entry.FoodName = req.FoodName
	entry.ProteinG = req.ProteinG * qty
	entry.Calories = req.Calories * qty
	entry.CarbsG = req.CarbsG * qty
	entry.MealType = mealType
	entry.ServingQty = qty
	entry.LoggedAt = loggedAt

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *FoodService) DeleteEntry(userID, entryID uint) error {
	entry, err := s.ownedEntry(userID, entryID)
	if err != nil {
		return err
	}
	return s.db.Delete(entry).Error
}

// EntriesForDate lists the caller's entries whose logged timestamp falls on
// the given calendar date, newest first.
func (s *FoodService) EntriesForDate(userID uint, day time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ? AND DATE(logged_at) = ?", userID, day.Format("2006-01-02")).
		Order("logged_at DESC").
		Find(&entries).Error
	return entries, err
}

// EntriesForRange lists the caller's entries across a closed date window,
// oldest first.
func (s *FoodService) EntriesForRange(userID uint, from, to time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ? AND DATE(logged_at) BETWEEN ? AND ?",
			userID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("logged_at ASC").
		Find(&entries).Error
	return entries, err
}

// ownedEntry collapses "missing" and "owned by someone else" into the same
// not-found error.
func (s *FoodService) ownedEntry(userID, entryID uint) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// parseLoggedAt accepts RFC3339 or the zone-less ISO form; empty means the
// submission instant.
func parseLoggedAt(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", value)
	}
	return t, err
}
