package models

import (
    "time"

    "gorm.io/gorm"
)

// A catalog entry shown for quick logging. Seeded once at startup and
// read-only from the API.
type CommonFood struct {
    ID        uint    `gorm:"primaryKey" json:"id"`
    Name      string  `gorm:"not null" json:"name"`
    ProteinG  float64 `gorm:"not null" json:"protein_g"`
    Calories  float64 `gorm:"not null" json:"calories"`
    CarbsG    float64 `json:"carbs_g"`
    Category  string  `gorm:"not null" json:"category"`
    Icon      string  `gorm:"not null" json:"icon"`
    SortOrder int     `gorm:"default:0" json:"sort_order"`
}

// One logged consumption event. Macro values are totals, already multiplied
// by ServingQty at write time; edits must re-multiply.
type FoodEntry struct {
    ID        uint           `gorm:"primaryKey" json:"id"`
    CreatedAt time.Time      `json:"created_at"`
    UpdatedAt time.Time      `json:"updated_at"`
    DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

    UserID     uint      `gorm:"index:idx_food_entries_user_date;not null" json:"-"`
    FoodName   string    `gorm:"not null" json:"food_name"`
    ProteinG   float64   `gorm:"not null" json:"protein_g"`
    Calories   float64   `gorm:"not null" json:"calories"`
    CarbsG     float64   `json:"carbs_g"`
    FdcID      string    `json:"fdc_id,omitempty"`
    MealType   string    `gorm:"default:snack" json:"meal_type"`
    ServingQty float64   `gorm:"default:1" json:"serving_qty"`
    LoggedAt   time.Time `gorm:"index:idx_food_entries_user_date" json:"logged_at"`
}
