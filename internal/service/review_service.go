package service

import (
	"log/slog"

	"github.com/akshay543210/propfirm143/internal/core"
)

const anonymousReviewer = "Anonymous"

type ReviewService struct {
	reviews core.ReviewRepository
	logger  *slog.Logger
}

func NewReviewService(reviews core.ReviewRepository, logger *slog.Logger) core.ReviewService {
	return &ReviewService{reviews: reviews, logger: logger}
}

func (s *ReviewService) List(firmID string) ([]*core.Review, error) {
	return s.reviews.List(firmID)
}

func (s *ReviewService) Submit(input *core.ReviewInput, userID string) core.Result {
	if input.FirmID == "" || input.Content == "" {
		return core.Result{Success: false, Error: "Firm and review content are required"}
	}
	if input.Rating < 1 || input.Rating > 5 {
		return core.Result{Success: false, Error: "Rating must be between 1 and 5"}
	}

	name := input.ReviewerName
	if name == "" {
		name = anonymousReviewer
	}

	review := &core.Review{
		FirmID:       input.FirmID,
		UserID:       userID,
		ReviewerName: name,
		Rating:       input.Rating,
		Title:        input.Title,
		Content:      input.Content,
	}

	if err := s.reviews.Create(review); err != nil {
		s.logger.Error("failed to submit review", "firm", input.FirmID, "error", err)
		return core.Result{Success: false, Error: err.Error()}
	}

	return core.Result{Success: true, Message: "Review submitted successfully!", Data: review}
}

func (s *ReviewService) Delete(id string) core.Result {
	if err := s.reviews.Delete(id); err != nil {
		s.logger.Error("failed to delete review", "review", id, "error", err)
		return core.Result{Success: false, Error: err.Error()}
	}
	return core.Result{Success: true, Message: "Review deleted"}
}
