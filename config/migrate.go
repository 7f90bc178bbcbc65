package config

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shra1-honade/protein-calorie-tracker/models"
)

// CurrentSchemaVersion is the version a fully migrated database reports.
// Bump it together with a new entry in the migrations map.
const CurrentSchemaVersion = 3

// Numbered upgrade steps, applied in ascending order to databases created
// before the current version. Each step must be safe to re-run.
var migrations = map[int]func(*gorm.DB) error{
	2: migrateV2CarbTracking,
	3: migrateV3ProfileFields,
}

var allModels = []interface{}{
	&models.User{},
	&models.CommonFood{},
	&models.FoodEntry{},
	&models.Group{},
	&models.GroupMember{},
}

// Migrate brings the schema up to CurrentSchemaVersion. Missing tables are
// created on every startup; a database behind the current version then walks
// the upgrade steps strictly between its stored version and the target. Any
// failure here is fatal to startup; the process must not serve traffic
// against a stale schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.SchemaVersion{}); err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	// Every startup ensures the full table set exists, whatever version the
	// database reports. The numbered steps below then cover column adds on
	// engines where this pass could not witness them.
	if err := db.AutoMigrate(allModels...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	var sv models.SchemaVersion
	err := db.Take(&sv).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return db.Create(&models.SchemaVersion{Version: CurrentSchemaVersion}).Error
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	}

	if sv.Version >= CurrentSchemaVersion {
		return nil
	}

	for v := sv.Version + 1; v <= CurrentSchemaVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			continue
		}
		if err := step(db); err != nil {
			return fmt.Errorf("migration %d: %w", v, err)
		}
	}

	return db.Model(&models.SchemaVersion{}).
		Where("version = ?", sv.Version).
		Update("version", CurrentSchemaVersion).Error
}

// v2: carbohydrate tracking. Carbs on entries and the catalog, a carb goal
// on users.
func migrateV2CarbTracking(db *gorm.DB) error {
	type col struct {
		model interface{}
		name  string
		field string
	}
	cols := []col{
		{&models.FoodEntry{}, "carbs_g", "CarbsG"},
		{&models.CommonFood{}, "carbs_g", "CarbsG"},
		{&models.User{}, "carb_goal", "CarbGoal"},
	}
	m := db.Migrator()
	for _, c := range cols {
		if m.HasColumn(c.model, c.name) {
			continue
		}
		if err := m.AddColumn(c.model, c.field); err != nil {
			return err
		}
	}
	return nil
}

// v3: optional profile fields feeding meal-plan generation.
func migrateV3ProfileFields(db *gorm.DB) error {
	fields := map[string]string{
		"age":                "Age",
		"weight_kg":          "WeightKg",
		"height_cm":          "HeightCm",
		"sex":                "Sex",
		"activity_level":     "ActivityLevel",
		"goal_type":          "GoalType",
		"dietary_preference": "DietaryPreference",
		"food_dislikes":      "FoodDislikes",
	}
	m := db.Migrator()
	for name, field := range fields {
		if m.HasColumn(&models.User{}, name) {
			continue
		}
		if err := m.AddColumn(&models.User{}, field); err != nil {
			return err
		}
	}
	return nil
}
