package repository

import (
	"github.com/akshay543210/propfirm143/internal/core"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBAccountSizeRepo struct {
	app pbCore.App
}

func NewAccountSizeRepo(app pbCore.App) core.AccountSizeRepository {
	return &PBAccountSizeRepo{app: app}
}

func (r *PBAccountSizeRepo) toDomain(record *pbCore.Record) *core.AccountSize {
	return &core.AccountSize{
		ID:              record.Id,
		FirmID:          record.GetString("firm_id"),
		Size:            record.GetString("size"),
		DiscountedPrice: record.GetFloat("discounted_price"),
		OriginalPrice:   record.GetFloat("original_price"),
		PromoCode:       record.GetString("promo_code"),
		BuyingLink:      record.GetString("buying_link"),
		Created:         record.GetString("created"),
		Updated:         record.GetString("updated"),
	}
}

func (r *PBAccountSizeRepo) apply(record *pbCore.Record, s *core.AccountSize) {
	record.Set("firm_id", s.FirmID)
	record.Set("size", s.Size)
	record.Set("discounted_price", s.DiscountedPrice)
	record.Set("original_price", s.OriginalPrice)
	record.Set("promo_code", s.PromoCode)
	record.Set("buying_link", s.BuyingLink)
}

func (r *PBAccountSizeRepo) List(firmID string) ([]*core.AccountSize, error) {
	filter := "id != ''"
	var params dbx.Params
	if firmID != "" {
		filter = "firm_id = {:firmId}"
		params = dbx.Params{"firmId": firmID}
	}

	records, err := r.app.FindRecordsByFilter("account_sizes", filter, "-created", 0, 0, params)
	if err != nil {
		return nil, err
	}

	var sizes []*core.AccountSize
	for _, rec := range records {
		sizes = append(sizes, r.toDomain(rec))
	}
	return sizes, nil
}

func (r *PBAccountSizeRepo) Create(s *core.AccountSize) error {
	collection, err := r.app.FindCollectionByNameOrId("account_sizes")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	r.apply(record, s)

	if err := r.app.Save(record); err != nil {
		return err
	}

	s.ID = record.Id
	s.Created = record.GetString("created")
	s.Updated = record.GetString("updated")
	return nil
}

func (r *PBAccountSizeRepo) Update(s *core.AccountSize) error {
	record, err := r.app.FindRecordById("account_sizes", s.ID)
	if err != nil {
		return err
	}

	r.apply(record, s)

	if err := r.app.Save(record); err != nil {
		return err
	}

	s.Updated = record.GetString("updated")
	return nil
}

func (r *PBAccountSizeRepo) Delete(id string) error {
	record, err := r.app.FindRecordById("account_sizes", id)
	if err != nil {
		return err
	}
	return r.app.Delete(record)
}
