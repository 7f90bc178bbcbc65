package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shra1-honade/protein-calorie-tracker/services"
)

type GroupController struct {
	Groups *services.GroupService
}

func NewGroupController(groups *services.GroupService) *GroupController {
	return &GroupController{Groups: groups}
}

// POST /groups/create
func (h *GroupController) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.Groups.Create(user.ID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create group"})
		return
	}
	c.JSON(http.StatusOK, group)
}

// POST /groups/join
func (h *GroupController) Join(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req struct {
		InviteCode string `json:"invite_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.Groups.Join(user.ID, req.InviteCode)
	if errors.Is(err, services.ErrGroupNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not join group"})
		return
	}
	c.JSON(http.StatusOK, group)
}

// GET /groups
func (h *GroupController) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	groups, err := h.Groups.ListForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list groups"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GET /groups/:id/leaderboard?period=daily|weekly&today=
func (h *GroupController) Leaderboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	groupID, ok := idParam(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "daily")
	if period != "daily" && period != "weekly" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be 'daily' or 'weekly'"})
		return
	}

	today, ok := dateQuery(c, "today")
	if !ok {
		return
	}

	entries, err := h.Groups.Leaderboard(groupID, user.ID, period, today)
	if errors.Is(err, services.ErrNotGroupMember) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a member of this group"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
