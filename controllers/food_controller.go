package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shra1-honade/protein-calorie-tracker/services"
)

type FoodController struct {
	Foods  *services.FoodService
	Gemini *services.GeminiService
	Logger *zap.Logger
}

func NewFoodController(foods *services.FoodService, gemini *services.GeminiService, logger *zap.Logger) *FoodController {
	return &FoodController{Foods: foods, Gemini: gemini, Logger: logger}
}

// GET /food/common
func (h *FoodController) CommonFoods(c *gin.Context) {
	foods, err := h.Foods.CommonFoods()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list foods"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// POST /food/detect (multipart image)
func (h *FoodController) Detect(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}

	result, err := h.Gemini.DetectFoodFromImage(
		c.Request.Context(), contents, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.Warn("food detection failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "food detection failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /food/log
func (h *FoodController) Log(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req services.FoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Foods.LogEntry(user.ID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /food/entries?date=
func (h *FoodController) Entries(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	day, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	entries, err := h.Foods.EntriesForDate(user.ID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// PUT /food/entries/:id
func (h *FoodController) UpdateEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	entryID, ok := idParam(c)
	if !ok {
		return
	}

	var req services.FoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Foods.UpdateEntry(user.ID, entryID, req)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /food/entries/:id
func (h *FoodController) DeleteEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	entryID, ok := idParam(c)
	if !ok {
		return
	}

	err := h.Foods.DeleteEntry(user.ID, entryID)
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /food/meal-plan
func (h *FoodController) MealPlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	today := time.Now()
	todays, err := h.Foods.EntriesForDate(user.ID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load entries"})
		return
	}
	history, err := h.Foods.EntriesForRange(user.ID, today.AddDate(0, 0, -6), today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load history"})
		return
	}

	plan, err := h.Gemini.GenerateMealPlan(c.Request.Context(), user, todays, history)
	if err != nil {
		h.Logger.Warn("meal plan generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "meal plan generation failed"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ---- helpers ----

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// dateQuery parses a YYYY-MM-DD query parameter, defaulting to today by
// the server clock.
func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return time.Now(), true
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}
