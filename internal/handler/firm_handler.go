package handler

import (
	domain "github.com/akshay543210/propfirm143/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
)

type FirmHandler struct {
	service domain.FirmService
	firms   domain.FirmRepository
}

func NewFirmHandler(service domain.FirmService, firms domain.FirmRepository) *FirmHandler {
	return &FirmHandler{service: service, firms: firms}
}

// List handles GET /api/firms
func (h *FirmHandler) List(e *pbCore.RequestEvent) error {
	firms, err := h.firms.List()
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, map[string]any{"firms": firms})
}

// Homepage handles GET /api/firms/homepage
func (h *FirmHandler) Homepage(e *pbCore.RequestEvent) error {
	firms, err := h.firms.ListHomepage()
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, map[string]any{"firms": firms})
}

// TopRated handles GET /api/firms/top-rated?limit=10
func (h *FirmHandler) TopRated(e *pbCore.RequestEvent) error {
	limit := cast.ToInt(e.Request.URL.Query().Get("limit"))
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	firms, err := h.firms.ListTopRated(limit)
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, map[string]any{"firms": firms})
}

// GetBySlug handles GET /api/firms/{slug}. The payload includes the
// resolved table view so consumers never coalesce override fields.
func (h *FirmHandler) GetBySlug(e *pbCore.RequestEvent) error {
	slug := e.Request.PathValue("slug")
	firm, err := h.firms.GetBySlug(slug)
	if err != nil {
		return e.JSON(404, map[string]string{"error": "Firm not found"})
	}

	return e.JSON(200, map[string]any{
		"firm":       firm,
		"table_view": domain.ResolveTableView(firm),
	})
}

// Add handles POST /api/admin/firms
func (h *FirmHandler) Add(e *pbCore.RequestEvent) error {
	input := &domain.FirmInput{}
	if err := e.BindBody(input); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	result := h.service.AddFirm(input)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}

// Update handles PATCH /api/admin/firms/{id}. The body is the complete
// firm form, not a sparse patch: numeric, list, and flag fields omitted
// from the body reset to their zero values. Only name, slug, funding
// amount, and logo keep their stored value when absent.
func (h *FirmHandler) Update(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if id == "" {
		return e.JSON(400, map[string]string{"error": "Missing firm ID"})
	}

	input := &domain.FirmInput{}
	if err := e.BindBody(input); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	result := h.service.UpdateFirm(id, input)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}

// Delete handles DELETE /api/admin/firms/{id}
func (h *FirmHandler) Delete(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if id == "" {
		return e.JSON(400, map[string]string{"error": "Missing firm ID"})
	}

	result := h.service.DeleteFirm(id)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}
