package handler

import (
	domain "github.com/akshay543210/propfirm143/internal/core"
	"github.com/akshay543210/propfirm143/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type AccountSizeHandler struct {
	service *service.AccountSizeService
}

func NewAccountSizeHandler(svc *service.AccountSizeService) *AccountSizeHandler {
	return &AccountSizeHandler{service: svc}
}

// List handles GET /api/account-sizes?firm_id=...
func (h *AccountSizeHandler) List(e *pbCore.RequestEvent) error {
	sizes, err := h.service.List(e.Request.URL.Query().Get("firm_id"))
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, map[string]any{"account_sizes": sizes})
}

// Add handles POST /api/admin/account-sizes
func (h *AccountSizeHandler) Add(e *pbCore.RequestEvent) error {
	size := &domain.AccountSize{}
	if err := e.BindBody(size); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	result := h.service.Add(size)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}

// Update handles PATCH /api/admin/account-sizes/{id}
func (h *AccountSizeHandler) Update(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if id == "" {
		return e.JSON(400, map[string]string{"error": "Missing account size ID"})
	}

	size := &domain.AccountSize{}
	if err := e.BindBody(size); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}
	size.ID = id

	result := h.service.Update(size)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}

// Delete handles DELETE /api/admin/account-sizes/{id}
func (h *AccountSizeHandler) Delete(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if id == "" {
		return e.JSON(400, map[string]string{"error": "Missing account size ID"})
	}

	result := h.service.Delete(id)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}
