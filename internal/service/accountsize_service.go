package service

import (
	"log/slog"

	"github.com/akshay543210/propfirm143/internal/core"
)

// AccountSizeService is a thin CRUD layer; account sizes carry no state
// machine, only validation and result shaping.
type AccountSizeService struct {
	sizes  core.AccountSizeRepository
	logger *slog.Logger
}

func NewAccountSizeService(sizes core.AccountSizeRepository, logger *slog.Logger) *AccountSizeService {
	return &AccountSizeService{sizes: sizes, logger: logger}
}

func (s *AccountSizeService) List(firmID string) ([]*core.AccountSize, error) {
	return s.sizes.List(firmID)
}

func (s *AccountSizeService) Add(size *core.AccountSize) core.Result {
	if size.FirmID == "" || size.Size == "" {
		return core.Result{Success: false, Error: "Firm and size label are required"}
	}

	if err := s.sizes.Create(size); err != nil {
		s.logger.Error("failed to add account size", "firm", size.FirmID, "error", err)
		return core.Result{Success: false, Error: "Failed to add account size"}
	}
	return core.Result{Success: true, Message: "Account size added successfully!", Data: size}
}

func (s *AccountSizeService) Update(size *core.AccountSize) core.Result {
	if err := s.sizes.Update(size); err != nil {
		s.logger.Error("failed to update account size", "id", size.ID, "error", err)
		return core.Result{Success: false, Error: "Failed to update account size"}
	}
	return core.Result{Success: true, Message: "Account size updated successfully!", Data: size}
}

func (s *AccountSizeService) Delete(id string) core.Result {
	if err := s.sizes.Delete(id); err != nil {
		s.logger.Error("failed to delete account size", "id", id, "error", err)
		return core.Result{Success: false, Error: "Failed to delete account size"}
	}
	return core.Result{Success: true, Message: "Account size deleted successfully!"}
}
