package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shra1-honade/protein-calorie-tracker/services"
)

type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{Admin: admin}
}

// GET /admin/stats returns platform-wide counters. Requires authentication only;
// there is no elevated admin role yet.
func (h *AdminController) Stats(c *gin.Context) {
	stats, err := h.Admin.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
