package handler

import (
	"github.com/akshay543210/propfirm143/internal/service"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type OpsHandler struct {
	app pbCore.App
}

func NewOpsHandler(app pbCore.App) *OpsHandler {
	return &OpsHandler{app: app}
}

// FixAccessRules handles POST /api/ops/fix-access-rules. Same repair the
// fixrules command performs, reachable remotely with an ops token.
func (h *OpsHandler) FixAccessRules(e *pbCore.RequestEvent) error {
	if err := service.FixPublicAccessRules(h.app); err != nil {
		return e.JSON(500, map[string]string{"error": err.Error()})
	}
	return e.JSON(200, map[string]string{"message": "Public access rules restored"})
}
