package repository

import (
	"github.com/akshay543210/propfirm143/internal/core"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBDramaRepo struct {
	app pbCore.App
}

func NewDramaRepo(app pbCore.App) core.DramaRepository {
	return &PBDramaRepo{app: app}
}

func (r *PBDramaRepo) toDomain(record *pbCore.Record) *core.DramaReport {
	return &core.DramaReport{
		ID:              record.Id,
		FirmName:        record.GetString("firm_name"),
		DateReported:    record.GetString("date_reported"),
		DramaType:       record.GetString("drama_type"),
		Severity:        record.GetString("severity"),
		Description:     record.GetString("description"),
		SourceLinks:     jsonList(record, "source_links"),
		Status:          record.GetString("status"),
		SubmittedBy:     record.GetString("submitted_by"),
		AdminApprovedBy: record.GetString("admin_approved_by"),
		Created:         record.GetString("created"),
		Updated:         record.GetString("updated"),
	}
}

func (r *PBDramaRepo) list(filter string, params dbx.Params) ([]*core.DramaReport, error) {
	records, err := r.app.FindRecordsByFilter("drama_reports", filter, "-created", 0, 0, params)
	if err != nil {
		return nil, err
	}

	var reports []*core.DramaReport
	for _, rec := range records {
		reports = append(reports, r.toDomain(rec))
	}
	return reports, nil
}

func (r *PBDramaRepo) ListApproved() ([]*core.DramaReport, error) {
	return r.list("status = {:status}", dbx.Params{"status": core.StatusApproved})
}

func (r *PBDramaRepo) ListBySubmitter(userID string) ([]*core.DramaReport, error) {
	return r.list("submitted_by = {:userId}", dbx.Params{"userId": userID})
}

func (r *PBDramaRepo) ListAll() ([]*core.DramaReport, error) {
	return r.list("id != ''", nil)
}

func (r *PBDramaRepo) Create(report *core.DramaReport) error {
	collection, err := r.app.FindCollectionByNameOrId("drama_reports")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("firm_name", report.FirmName)
	record.Set("date_reported", report.DateReported)
	record.Set("drama_type", report.DramaType)
	record.Set("severity", report.Severity)
	record.Set("description", report.Description)
	record.Set("source_links", report.SourceLinks)
	record.Set("status", report.Status)
	record.Set("submitted_by", report.SubmittedBy)

	if err := r.app.Save(record); err != nil {
		return err
	}

	report.ID = record.Id
	report.Created = record.GetString("created")
	report.Updated = record.GetString("updated")
	return nil
}

func (r *PBDramaRepo) SetStatus(id, status, approverID string) error {
	record, err := r.app.FindRecordById("drama_reports", id)
	if err != nil {
		return err
	}

	record.Set("status", status)
	record.Set("admin_approved_by", approverID)

	return r.app.Save(record)
}

func (r *PBDramaRepo) Delete(id string) error {
	record, err := r.app.FindRecordById("drama_reports", id)
	if err != nil {
		return err
	}
	return r.app.Delete(record)
}
