package handler

import (
	domain "github.com/akshay543210/propfirm143/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
)

type StatsHandler struct {
	stats domain.StatsRepository
}

func NewStatsHandler(stats domain.StatsRepository) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Dashboard handles GET /api/admin/stats
func (h *StatsHandler) Dashboard(e *pbCore.RequestEvent) error {
	stats, err := h.stats.DashboardStats()
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, stats)
}

// FirmRatings handles GET /api/admin/stats/ratings?limit=20
func (h *StatsHandler) FirmRatings(e *pbCore.RequestEvent) error {
	limit := cast.ToInt(e.Request.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	ratings, err := h.stats.FirmRatings(limit)
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, map[string]any{"ratings": ratings})
}
