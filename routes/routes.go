package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shra1-honade/protein-calorie-tracker/config"
	"github.com/shra1-honade/protein-calorie-tracker/controllers"
	"github.com/shra1-honade/protein-calorie-tracker/middlewares"
	"github.com/shra1-honade/protein-calorie-tracker/services"
)

// Deps carries everything the router needs; main constructs it once.
type Deps struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Logger *zap.Logger

	Google    *services.GoogleService
	Users     *services.UserService
	Foods     *services.FoodService
	Dashboard *services.DashboardService
	Groups    *services.GroupService
	Gemini    *services.GeminiService
	Admin     *services.AdminService
}

func SetupRouter(d Deps) *gin.Engine {
	gin.SetMode(d.Cfg.GinMode)
	r := gin.New()
	r.Use(middlewares.RequestLogger(d.Logger))
	r.Use(middlewares.Recovery(d.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.Cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authCtl := controllers.NewAuthController(d.Google, d.Users, d.Cfg, d.Logger)
	foodCtl := controllers.NewFoodController(d.Foods, d.Gemini, d.Logger)
	dashCtl := controllers.NewDashboardController(d.Dashboard)
	groupCtl := controllers.NewGroupController(d.Groups)
	adminCtl := controllers.NewAdminController(d.Admin)

	requireAuth := middlewares.AuthMiddleware(d.DB, []byte(d.Cfg.JWTSecret), d.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.GET("/google/login", authCtl.GoogleLogin)
		auth.GET("/google/callback", authCtl.GoogleCallback)

		me := auth.Group("/me", requireAuth)
		{
			me.GET("", authCtl.Me)
			me.PUT("/goals", authCtl.UpdateGoals)
			me.PUT("/profile", authCtl.UpdateProfile)
		}
	}

	food := r.Group("/food")
	{
		food.GET("/common", foodCtl.CommonFoods)

		protected := food.Group("", requireAuth)
		{
			protected.POST("/detect", foodCtl.Detect)
			protected.POST("/log", foodCtl.Log)
			protected.GET("/entries", foodCtl.Entries)
			protected.PUT("/entries/:id", foodCtl.UpdateEntry)
			protected.DELETE("/entries/:id", foodCtl.DeleteEntry)
			protected.POST("/meal-plan", foodCtl.MealPlan)
		}
	}

	dashboard := r.Group("/dashboard", requireAuth)
	{
		dashboard.GET("/daily", dashCtl.Daily)
		dashboard.GET("/weekly", dashCtl.Weekly)
	}

	groups := r.Group("/groups", requireAuth)
	{
		groups.POST("/create", groupCtl.Create)
		groups.POST("/join", groupCtl.Join)
		groups.GET("", groupCtl.List)
		groups.GET("/:id/leaderboard", groupCtl.Leaderboard)
	}

	admin := r.Group("/admin", requireAuth)
	{
		admin.GET("/stats", adminCtl.Stats)
	}

	return r
}
