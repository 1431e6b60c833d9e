package repository

import (
	"github.com/akshay543210/propfirm143/internal/core"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBReviewRepo struct {
	app pbCore.App
}

func NewReviewRepo(app pbCore.App) core.ReviewRepository {
	return &PBReviewRepo{app: app}
}

func (r *PBReviewRepo) toDomain(record *pbCore.Record) *core.Review {
	review := &core.Review{
		ID:           record.Id,
		FirmID:       record.GetString("firm_id"),
		UserID:       record.GetString("user_id"),
		ReviewerName: record.GetString("reviewer_name"),
		Rating:       record.GetInt("rating"),
		Title:        record.GetString("title"),
		Content:      record.GetString("content"),
		IsVerified:   record.GetBool("is_verified"),
		HelpfulCount: record.GetInt("helpful_count"),
		Created:      record.GetString("created"),
		Updated:      record.GetString("updated"),
	}

	if firm := record.ExpandedOne("firm_id"); firm != nil {
		review.FirmName = firm.GetString("name")
		review.FirmSlug = firm.GetString("slug")
	}

	return review
}

func (r *PBReviewRepo) List(firmID string) ([]*core.Review, error) {
	filter := "id != ''"
	var params dbx.Params
	if firmID != "" {
		filter = "firm_id = {:firmId}"
		params = dbx.Params{"firmId": firmID}
	}

	records, err := r.app.FindRecordsByFilter("reviews", filter, "-created", 0, 0, params)
	if err != nil {
		return nil, err
	}

	// Denormalize the firm name/slug for display; a failed expand just
	// leaves the reference fields empty.
	r.app.ExpandRecords(records, []string{"firm_id"}, nil)

	var reviews []*core.Review
	for _, rec := range records {
		reviews = append(reviews, r.toDomain(rec))
	}
	return reviews, nil
}

func (r *PBReviewRepo) Create(review *core.Review) error {
	collection, err := r.app.FindCollectionByNameOrId("reviews")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("firm_id", review.FirmID)
	record.Set("user_id", review.UserID)
	record.Set("reviewer_name", review.ReviewerName)
	record.Set("rating", review.Rating)
	record.Set("title", review.Title)
	record.Set("content", review.Content)
	record.Set("is_verified", review.IsVerified)
	record.Set("helpful_count", review.HelpfulCount)

	if err := r.app.Save(record); err != nil {
		return err
	}

	review.ID = record.Id
	review.Created = record.GetString("created")
	review.Updated = record.GetString("updated")
	return nil
}

func (r *PBReviewRepo) Delete(id string) error {
	record, err := r.app.FindRecordById("reviews", id)
	if err != nil {
		return err
	}
	return r.app.Delete(record)
}
