package repository

import (
	"database/sql"
	"errors"

	"github.com/akshay543210/propfirm143/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBSectionRepo struct {
	app   pbCore.App
	firms *PBFirmRepo
}

func NewSectionRepo(app pbCore.App) core.SectionRepository {
	return &PBSectionRepo{app: app, firms: &PBFirmRepo{app: app}}
}

func (r *PBSectionRepo) ListSection(section core.Section) ([]core.SectionFirm, error) {
	filter := "id != ''"
	sort := "-created"
	if section == core.SectionTableReview {
		// Only approved rows are visible, ordered by curation priority.
		filter = "is_approved = true"
		sort = "+sort_priority"
	}

	records, err := r.app.FindRecordsByFilter(section.Collection(), filter, sort, 0, 0, nil)
	if err != nil {
		return nil, err
	}

	firmField := section.FirmField()
	if errs := r.app.ExpandRecords(records, []string{firmField}, nil); len(errs) > 0 {
		for _, expandErr := range errs {
			return nil, expandErr
		}
	}

	var out []core.SectionFirm
	for _, rec := range records {
		firmRec := rec.ExpandedOne(firmField)
		if firmRec == nil {
			// Orphaned membership row; dropped silently on purpose.
			continue
		}
		sf := core.SectionFirm{
			MembershipID: rec.Id,
			Firm:         r.firms.toDomain(firmRec),
		}
		if section == core.SectionTableReview {
			sf.SortPriority = rec.GetInt("sort_priority")
		}
		out = append(out, sf)
	}
	return out, nil
}

func (r *PBSectionRepo) HasPublicListRule(section core.Section) (bool, error) {
	collection, err := r.app.FindCollectionByNameOrId(section.Collection())
	if err != nil {
		return false, err
	}
	// A nil rule means superuser-only access: anonymous and authenticated
	// reads would both be rejected.
	return collection.ListRule != nil, nil
}

func (r *PBSectionRepo) Insert(section core.Section, firmID string, rank int) error {
	collection, err := r.app.FindCollectionByNameOrId(section.Collection())
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set(section.FirmField(), firmID)

	// Rank only has a column on table_review_firms. Inserts there are
	// approved immediately; there is no separate approval step in the
	// admin console.
	if section == core.SectionTableReview {
		record.Set("is_approved", true)
		record.Set("sort_priority", rank)
	}

	return r.app.Save(record)
}

func (r *PBSectionRepo) Delete(section core.Section, membershipID string) (int, error) {
	record, err := r.app.FindRecordById(section.Collection(), membershipID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	if err := r.app.Delete(record); err != nil {
		return 0, err
	}
	return 1, nil
}

func (r *PBSectionRepo) Count(section core.Section) (int64, error) {
	var total int64
	err := r.app.DB().
		Select("count(*)").
		From(section.Collection()).
		Row(&total)
	return total, err
}
