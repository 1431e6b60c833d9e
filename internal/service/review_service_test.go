package service

import (
	"fmt"
	"testing"

	"github.com/akshay543210/propfirm143/internal/core"
)

type fakeReviewRepo struct {
	reviews []*core.Review
	nextID  int
}

func (r *fakeReviewRepo) List(firmID string) ([]*core.Review, error) {
	if firmID == "" {
		return r.reviews, nil
	}
	var out []*core.Review
	for _, review := range r.reviews {
		if review.FirmID == firmID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Create(review *core.Review) error {
	r.nextID++
	review.ID = fmt.Sprintf("r%d", r.nextID)
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) Delete(id string) error {
	for i, review := range r.reviews {
		if review.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestReviewService_Submit_AnonymousDefault(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo, testLogger())

	result := svc.Submit(&core.ReviewInput{
		FirmID:  "f1",
		Rating:  4,
		Content: "Solid payout experience",
	}, "")
	if !result.Success {
		t.Fatalf("submit should succeed: %s", result.Error)
	}

	review := result.Data.(*core.Review)
	if review.ReviewerName != "Anonymous" {
		t.Errorf("reviewer should default to Anonymous, got %q", review.ReviewerName)
	}
	if review.UserID != "" {
		t.Errorf("anonymous review should carry no user, got %q", review.UserID)
	}
}

func TestReviewService_Submit_RatingBounds(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{}, testLogger())

	for _, rating := range []int{0, -1, 6} {
		result := svc.Submit(&core.ReviewInput{FirmID: "f1", Rating: rating, Content: "x"}, "")
		if result.Success {
			t.Errorf("rating %d should be rejected", rating)
		}
	}
	for _, rating := range []int{1, 5} {
		result := svc.Submit(&core.ReviewInput{FirmID: "f1", Rating: rating, Content: "x"}, "")
		if !result.Success {
			t.Errorf("rating %d should be accepted: %s", rating, result.Error)
		}
	}
}

func TestReviewService_Submit_RequiredFields(t *testing.T) {
	svc := NewReviewService(&fakeReviewRepo{}, testLogger())

	if result := svc.Submit(&core.ReviewInput{Rating: 3, Content: "x"}, ""); result.Success {
		t.Error("missing firm should fail")
	}
	if result := svc.Submit(&core.ReviewInput{FirmID: "f1", Rating: 3}, ""); result.Success {
		t.Error("missing content should fail")
	}
}

func TestReviewService_Submit_LinksUser(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo, testLogger())

	result := svc.Submit(&core.ReviewInput{
		FirmID:       "f1",
		ReviewerName: "Jess",
		Rating:       5,
		Content:      "Great",
	}, "user1")
	review := result.Data.(*core.Review)
	if review.UserID != "user1" || review.ReviewerName != "Jess" {
		t.Errorf("unexpected review: %+v", review)
	}
}

func TestReviewService_ListByFirm(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo, testLogger())

	svc.Submit(&core.ReviewInput{FirmID: "f1", Rating: 5, Content: "a"}, "")
	svc.Submit(&core.ReviewInput{FirmID: "f2", Rating: 3, Content: "b"}, "")

	reviews, err := svc.List("f1")
	if err != nil {
		t.Fatal(err)
	}
	if len(reviews) != 1 || reviews[0].FirmID != "f1" {
		t.Errorf("firm filter failed: %+v", reviews)
	}

	all, _ := svc.List("")
	if len(all) != 2 {
		t.Errorf("empty filter should list all, got %d", len(all))
	}
}
