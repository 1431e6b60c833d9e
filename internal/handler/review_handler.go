package handler

import (
	domain "github.com/akshay543210/propfirm143/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type ReviewHandler struct {
	service domain.ReviewService
}

func NewReviewHandler(service domain.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List handles GET /api/reviews?firm_id=...
func (h *ReviewHandler) List(e *pbCore.RequestEvent) error {
	firmID := e.Request.URL.Query().Get("firm_id")

	reviews, err := h.service.List(firmID)
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, map[string]any{"reviews": reviews})
}

// Submit handles POST /api/reviews. Works for anonymous and
// authenticated submitters; the latter get their review linked.
func (h *ReviewHandler) Submit(e *pbCore.RequestEvent) error {
	input := &domain.ReviewInput{}
	if err := e.BindBody(input); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	userID := ""
	if e.Auth != nil {
		userID = e.Auth.Id
	}

	result := h.service.Submit(input, userID)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}

// Delete handles DELETE /api/admin/reviews/{id}
func (h *ReviewHandler) Delete(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if id == "" {
		return e.JSON(400, map[string]string{"error": "Missing review ID"})
	}

	result := h.service.Delete(id)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}
