package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shra1-honade/protein-calorie-tracker/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UpsertFromGoogle looks up a user by provider subject id. First sign-in
// creates the row with default goals and reports isNew=true; later sign-ins
// refresh display name and avatar.
func (s *UserService) UpsertFromGoogle(identity *GoogleIdentity) (*models.User, bool, error) {
	displayName := identity.Name
	if displayName == "" {
		displayName = identity.Email
	}

	var user models.User
	err := s.db.Where("google_id = ?", identity.ID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			GoogleID:    identity.ID,
			Email:       identity.Email,
			DisplayName: displayName,
			AvatarURL:   identity.Picture,
			ProteinGoal: 150,
			CalorieGoal: 2000,
			CarbGoal:    200,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, false, err
		}
		return &user, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	user.DisplayName = displayName
	user.AvatarURL = identity.Picture
	if err := s.db.Save(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, false, nil
}

// GoalPatch carries only the fields the caller wants changed.
type GoalPatch struct {
	ProteinGoal *float64 `json:"protein_goal"`
	CalorieGoal *float64 `json:"calorie_goal"`
	CarbGoal    *float64 `json:"carb_goal"`
}

// ProfilePatch covers goals plus the optional profile fields.
type ProfilePatch struct {
	Age               *int     `json:"age"`
	WeightKg          *float64 `json:"weight_kg"`
	HeightCm          *float64 `json:"height_cm"`
	Sex               *string  `json:"sex"`
	ActivityLevel     *string  `json:"activity_level"`
	GoalType          *string  `json:"goal_type"`
	ProteinGoal       *float64 `json:"protein_goal"`
	CalorieGoal       *float64 `json:"calorie_goal"`
	CarbGoal          *float64 `json:"carb_goal"`
	DietaryPreference *string  `json:"dietary_preference"`
	FoodDislikes      *string  `json:"food_dislikes"`
}

// UpdateGoals merges the supplied fields onto the user and persists.
func (s *UserService) UpdateGoals(user *models.User, patch GoalPatch) error {
	if patch.ProteinGoal != nil {
		user.ProteinGoal = *patch.ProteinGoal
	}
	if patch.CalorieGoal != nil {
		user.CalorieGoal = *patch.CalorieGoal
	}
	if patch.CarbGoal != nil {
		user.CarbGoal = *patch.CarbGoal
	}
	return s.db.Save(user).Error
}

// UpdateProfile applies a partial profile update, field by field.
func (s *UserService) UpdateProfile(user *models.User, patch ProfilePatch) error {
	if patch.Age != nil {
		user.Age = *patch.Age
	}
	if patch.WeightKg != nil {
		user.WeightKg = *patch.WeightKg
	}
	if patch.HeightCm != nil {
		user.HeightCm = *patch.HeightCm
	}
	if patch.Sex != nil {
		user.Sex = *patch.Sex
	}
	if patch.ActivityLevel != nil {
		user.ActivityLevel = *patch.ActivityLevel
	}
	if patch.GoalType != nil {
		user.GoalType = *patch.GoalType
	}
	if patch.ProteinGoal != nil {
		user.ProteinGoal = *patch.ProteinGoal
	}
	if patch.CalorieGoal != nil {
		user.CalorieGoal = *patch.CalorieGoal
	}
	if patch.CarbGoal != nil {
		user.CarbGoal = *patch.CarbGoal
	}
	if patch.DietaryPreference != nil {
		user.DietaryPreference = *patch.DietaryPreference
	}
	if patch.FoodDislikes != nil {
		user.FoodDislikes = *patch.FoodDislikes
	}
	return s.db.Save(user).Error
}
