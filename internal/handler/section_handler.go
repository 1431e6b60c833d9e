package handler

import (
	domain "github.com/akshay543210/propfirm143/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
)

type SectionHandler struct {
	service domain.SectionService
}

func NewSectionHandler(service domain.SectionService) *SectionHandler {
	return &SectionHandler{service: service}
}

// Memberships handles GET /api/sections/memberships
func (h *SectionHandler) Memberships(e *pbCore.RequestEvent) error {
	snapshot, err := h.service.FetchMemberships()
	if err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, snapshot)
}

// BySection handles GET /api/sections/{section}
func (h *SectionHandler) BySection(e *pbCore.RequestEvent) error {
	sectionKey := e.Request.PathValue("section")
	if _, err := domain.ParseSection(sectionKey); err != nil {
		return e.JSON(400, map[string]string{"error": err.Error()})
	}

	// Serves from the cached snapshot; the service populates it on the
	// first read after startup.
	memberships := h.service.MembershipsBySection(sectionKey)

	resp := map[string]any{"memberships": memberships}
	if msg := h.service.LastError(); msg != "" {
		resp["error"] = msg
	}
	return e.JSON(200, resp)
}

// Add handles POST /api/admin/sections/{section}/firms
func (h *SectionHandler) Add(e *pbCore.RequestEvent) error {
	sectionKey := e.Request.PathValue("section")

	body := struct {
		FirmID string `json:"firm_id"`
		Rank   any    `json:"rank"`
	}{}
	if err := e.BindBody(&body); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}
	if body.FirmID == "" {
		return e.JSON(400, map[string]string{"error": "Missing firm_id"})
	}

	// Rank arrives as a number or a numeric string depending on the form.
	result := h.service.AddFirmToSection(sectionKey, body.FirmID, cast.ToInt(body.Rank))
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}

// Remove handles DELETE /api/admin/sections/{section}/memberships/{id}
func (h *SectionHandler) Remove(e *pbCore.RequestEvent) error {
	sectionKey := e.Request.PathValue("section")
	membershipID := e.Request.PathValue("id")
	if membershipID == "" {
		return e.JSON(400, map[string]string{"error": "Missing membership ID"})
	}

	result := h.service.RemoveFirmFromSection(sectionKey, membershipID)
	if !result.Success {
		return e.JSON(400, result)
	}
	return e.JSON(200, result)
}

// RemoveLegacy handles DELETE /api/admin/memberships/{id} for callers
// holding a membership id without its section tag.
func (h *SectionHandler) RemoveLegacy(e *pbCore.RequestEvent) error {
	membershipID := e.Request.PathValue("id")
	if membershipID == "" {
		return e.JSON(400, map[string]string{"error": "Missing membership ID"})
	}

	result := h.service.RemoveLegacyMembership(membershipID)
	if !result.Success {
		return e.JSON(404, result)
	}
	return e.JSON(200, result)
}
