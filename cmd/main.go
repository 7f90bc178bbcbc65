package main

import (
	"go.uber.org/zap"

	"github.com/shra1-honade/protein-calorie-tracker/config"
	"github.com/shra1-honade/protein-calorie-tracker/routes"
	"github.com/shra1-honade/protein-calorie-tracker/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := config.Migrate(db); err != nil {
		logger.Fatal("schema migration failed", zap.Error(err))
	}
	if err := config.SeedCommonFoods(db, logger); err != nil {
		logger.Fatal("seeding common foods failed", zap.Error(err))
	}

	foods := services.NewFoodService(db)

	r := routes.SetupRouter(routes.Deps{
		Cfg:       cfg,
		DB:        db,
		Logger:    logger,
		Google:    services.NewGoogleService(cfg),
		Users:     services.NewUserService(db),
		Foods:     foods,
		Dashboard: services.NewDashboardService(db, foods),
		Groups:    services.NewGroupService(db),
		Gemini:    services.NewGeminiService(cfg),
		Admin:     services.NewAdminService(db),
	})

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
