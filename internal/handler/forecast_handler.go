package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"freecast/internal/model"

	"github.com/gin-gonic/gin"
)

type ForecastStore interface {
	GetForecasts(limit, offset int) ([]model.ForecastRecord, error)
	GetForecastByID(id int64) (*model.ForecastRecord, error)
	GetForecastTotal() (int, error)
}

type ForecastHandler struct {
	repository ForecastStore
}

func NewForecastHandler(repository ForecastStore) *ForecastHandler {
	return &ForecastHandler{repository: repository}
}

func toForecastResponse(rec model.ForecastRecord) ForecastResponse {
	return ForecastResponse{
		ID:           rec.ID,
		QuestionID:   rec.QuestionID,
		QuestionText: rec.QuestionText,
		Probability:  rec.Probability,
		Reasoning:    rec.Reasoning,
		ModelUsed:    rec.ModelUsed,
		Published:    rec.Published,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
	}
}

func (h *ForecastHandler) GetForecasts(c *gin.Context) {
	limit := getQueryInt("limit", 20, c)
	offset := getQueryInt("offset", 0, c)

	records, err := h.repository.GetForecasts(limit, offset)
	if err != nil {
		slog.Error("error fetching forecasts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetForecastTotal()
	if err != nil {
		slog.Error("error fetching forecast total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := ForecastsResponse{
		Forecasts: []ForecastResponse{},
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}

	for _, rec := range records {
		res.Forecasts = append(res.Forecasts, toForecastResponse(rec))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ForecastHandler) GetForecast(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid forecast id"})
		return
	}

	rec, err := h.repository.GetForecastByID(id)
	if err != nil {
		slog.Error("error fetching forecast", "forecast_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Forecast not found"})
		return
	}

	c.JSON(http.StatusOK, toForecastResponse(*rec))
}

func (h *ForecastHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	v := c.Query(name)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
