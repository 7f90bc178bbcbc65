package config

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shra1-honade/protein-calorie-tracker/models"
)

var commonFoods = []models.CommonFood{
	{Name: "Chicken Breast (100g)", ProteinG: 31, Calories: 165, CarbsG: 0, Category: "meat", Icon: "\U0001f357", SortOrder: 1},
	{Name: "Eggs (2 whole)", ProteinG: 12, Calories: 140, CarbsG: 1, Category: "egg", Icon: "\U0001f95a", SortOrder: 2},
	{Name: "Greek Yogurt (200g)", ProteinG: 20, Calories: 130, CarbsG: 8, Category: "dairy", Icon: "\U0001f95b", SortOrder: 3},
	{Name: "Whey Protein Scoop", ProteinG: 25, Calories: 120, CarbsG: 3, Category: "supplement", Icon: "\U0001f4aa", SortOrder: 4},
	{Name: "Paneer (100g)", ProteinG: 18, Calories: 265, CarbsG: 4, Category: "dairy", Icon: "\U0001f9c0", SortOrder: 5},
	{Name: "Dal / Lentils (1 cup)", ProteinG: 18, Calories: 230, CarbsG: 40, Category: "legume", Icon: "\U0001f372", SortOrder: 6},
	{Name: "Tofu (100g)", ProteinG: 8, Calories: 76, CarbsG: 2, Category: "legume", Icon: "\U0001f96c", SortOrder: 7},
	{Name: "Salmon (100g)", ProteinG: 25, Calories: 208, CarbsG: 0, Category: "meat", Icon: "\U0001f41f", SortOrder: 8},
	{Name: "Milk (1 glass, 250ml)", ProteinG: 8, Calories: 150, CarbsG: 12, Category: "dairy", Icon: "\U0001f95b", SortOrder: 9},
	{Name: "Rice (1 cup cooked)", ProteinG: 4, Calories: 206, CarbsG: 45, Category: "grain", Icon: "\U0001f35a", SortOrder: 10},
	{Name: "Oats (1 cup cooked)", ProteinG: 5, Calories: 150, CarbsG: 27, Category: "grain", Icon: "\U0001f35e", SortOrder: 11},
	{Name: "Peanut Butter (2 tbsp)", ProteinG: 7, Calories: 190, CarbsG: 7, Category: "legume", Icon: "\U0001f95c", SortOrder: 12},
	{Name: "Chickpeas (1 cup)", ProteinG: 15, Calories: 269, CarbsG: 45, Category: "legume", Icon: "\U0001fad8", SortOrder: 13},
	{Name: "Almonds (30g)", ProteinG: 6, Calories: 170, CarbsG: 6, Category: "legume", Icon: "\U0001f330", SortOrder: 14},
	{Name: "Banana (1 medium)", ProteinG: 1, Calories: 105, CarbsG: 27, Category: "fruit", Icon: "\U0001f34c", SortOrder: 15},
}

// SeedCommonFoods inserts the quick-log catalog if the table is empty.
func SeedCommonFoods(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.CommonFood{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("common foods already seeded", zap.Int64("count", count))
		return nil
	}

	foods := make([]models.CommonFood, len(commonFoods))
	copy(foods, commonFoods)
	if err := db.Create(&foods).Error; err != nil {
		return err
	}
	logger.Info("seeded common foods", zap.Int("count", len(foods)))
	return nil
}
