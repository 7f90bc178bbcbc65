package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    ID        uint           `gorm:"primaryKey" json:"id"`
    CreatedAt time.Time      `json:"created_at"`
    UpdatedAt time.Time      `json:"updated_at"`
    DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

    GoogleID    string `gorm:"uniqueIndex;not null" json:"-"`
    Email       string `gorm:"uniqueIndex;not null" json:"email"`
    DisplayName string `gorm:"not null" json:"display_name"`
    AvatarURL   string `json:"avatar_url"`

    ProteinGoal float64 `gorm:"default:150" json:"protein_goal"`
    CalorieGoal float64 `gorm:"default:2000" json:"calorie_goal"`
    CarbGoal    float64 `gorm:"default:200" json:"carb_goal"`

    // Optional profile fields, used to personalize meal plans.
    Age               int     `json:"age"`
    WeightKg          float64 `json:"weight_kg"`
    HeightCm          float64 `json:"height_cm"`
    Sex               string  `json:"sex"`
    ActivityLevel     string  `json:"activity_level"`
    GoalType          string  `json:"goal_type"`
    DietaryPreference string  `json:"dietary_preference"`
    FoodDislikes      string  `json:"food_dislikes"`
}
