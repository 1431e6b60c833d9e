package handler

import (
	"time"

	domain "github.com/akshay543210/propfirm143/internal/core"

	"github.com/dustin/go-humanize"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type DramaHandler struct {
	service domain.DramaService
}

func NewDramaHandler(service domain.DramaService) *DramaHandler {
	return &DramaHandler{service: service}
}

// trackerItem decorates a report with a relative timestamp for display.
type trackerItem struct {
	*domain.DramaReport
	ReportedAgo string `json:"reported_ago,omitempty"`
}

func toTrackerItems(reports []*domain.DramaReport) []trackerItem {
	items := make([]trackerItem, 0, len(reports))
	for _, r := range reports {
		item := trackerItem{DramaReport: r}
		if t, err := time.Parse("2006-01-02 15:04:05.000Z", r.Created); err == nil {
			item.ReportedAgo = humanize.Time(t)
		}
		items = append(items, item)
	}
	return items
}

// PublicList handles GET /api/drama — approved reports only, newest first.
func (h *DramaHandler) PublicList(e *pbCore.RequestEvent) error {
	reports, err := h.service.PublicReports()
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, map[string]any{"reports": toTrackerItems(reports)})
}

// MyReports handles GET /api/drama/mine (authenticated)
func (h *DramaHandler) MyReports(e *pbCore.RequestEvent) error {
	reports, err := h.service.SubmitterReports(e.Auth.Id)
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, map[string]any{"reports": reports})
}

// AdminList handles GET /api/admin/drama — every status.
func (h *DramaHandler) AdminList(e *pbCore.RequestEvent) error {
	reports, err := h.service.AllReports()
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, map[string]any{"reports": reports})
}

// Submit handles POST /api/drama (authenticated)
func (h *DramaHandler) Submit(e *pbCore.RequestEvent) error {
	input := &domain.DramaInput{}
	if err := e.BindBody(input); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	result := h.service.Submit(input, e.Auth.Id)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}

// UpdateStatus handles POST /api/admin/drama/{id}/status
func (h *DramaHandler) UpdateStatus(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")

	body := struct {
		Status string `json:"status"`
	}{}
	if err := e.BindBody(&body); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}
	if id == "" || body.Status == "" {
		return e.JSON(400, map[string]string{"error": "Missing report ID or status"})
	}

	result := h.service.UpdateStatus(id, body.Status, e.Auth.Id)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}

// Delete handles DELETE /api/admin/drama/{id}
func (h *DramaHandler) Delete(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if id == "" {
		return e.JSON(400, map[string]string{"error": "Missing report ID"})
	}

	result := h.service.Delete(id)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}
