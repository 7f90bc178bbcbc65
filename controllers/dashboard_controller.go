package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shra1-honade/protein-calorie-tracker/services"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// GET /dashboard/daily?date=
func (h *DashboardController) Daily(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	day, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	summary, err := h.Dashboard.Daily(user, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /dashboard/weekly?today=
func (h *DashboardController) Weekly(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	today, ok := dateQuery(c, "today")
	if !ok {
		return
	}

	summary, err := h.Dashboard.Weekly(user, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
