package repository

import (
	"github.com/akshay543210/propfirm143/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBFirmRepo struct {
	app pbCore.App
}

func NewFirmRepo(app pbCore.App) core.FirmRepository {
	return &PBFirmRepo{app: app}
}

// Mapping helper: Record -> Domain Model
func (r *PBFirmRepo) toDomain(record *pbCore.Record) *core.PropFirm {
	return &core.PropFirm{
		ID:              record.Id,
		Name:            record.GetString("name"),
		Slug:            record.GetString("slug"),
		CategoryID:      record.GetString("category_id"),
		Price:           record.GetFloat("price"),
		OriginalPrice:   record.GetFloat("original_price"),
		CouponCode:      record.GetString("coupon_code"),
		ProfitSplit:     record.GetFloat("profit_split"),
		PayoutRate:      record.GetFloat("payout_rate"),
		FundingAmount:   record.GetString("funding_amount"),
		MaxFunding:      record.GetString("max_funding"),
		StartingFee:     record.GetFloat("starting_fee"),
		ReviewScore:     record.GetFloat("review_score"),
		TrustRating:     record.GetFloat("trust_rating"),
		UserReviewCount: record.GetInt("user_review_count"),
		Description:     record.GetString("description"),
		Features:        jsonList(record, "features"),
		Pros:            jsonList(record, "pros"),
		Cons:            jsonList(record, "cons"),
		LogoURL:         record.GetString("logo_url"),
		AffiliateURL:    record.GetString("affiliate_url"),
		Brand:           record.GetString("brand"),
		Platform:        record.GetString("platform"),
		EvaluationModel: record.GetString("evaluation_model"),
		Regulation:      record.GetString("regulation"),
		ShowOnHomepage:  record.GetBool("show_on_homepage"),
		TableOverrides: core.TableOverrides{
			Price:           floatPtr(record.GetFloat("table_price")),
			ProfitSplit:     floatPtr(record.GetFloat("table_profit_split")),
			PayoutRate:      floatPtr(record.GetFloat("table_payout_rate")),
			Platform:        strPtr(record.GetString("table_platform")),
			TrustRating:     floatPtr(record.GetFloat("table_trust_rating")),
			EvaluationRules: strPtr(record.GetString("table_evaluation_rules")),
			Fee:             floatPtr(record.GetFloat("table_fee")),
			CouponCode:      strPtr(record.GetString("table_coupon_code")),
		},
		Created: record.GetString("created"),
		Updated: record.GetString("updated"),
	}
}

// Mapping helper: Domain Model -> Record
func (r *PBFirmRepo) apply(record *pbCore.Record, f *core.PropFirm) {
	record.Set("name", f.Name)
	record.Set("slug", f.Slug)
	record.Set("category_id", f.CategoryID)
	record.Set("price", f.Price)
	record.Set("original_price", f.OriginalPrice)
	record.Set("coupon_code", f.CouponCode)
	record.Set("profit_split", f.ProfitSplit)
	record.Set("payout_rate", f.PayoutRate)
	record.Set("funding_amount", f.FundingAmount)
	record.Set("max_funding", f.MaxFunding)
	record.Set("starting_fee", f.StartingFee)
	record.Set("review_score", f.ReviewScore)
	record.Set("trust_rating", f.TrustRating)
	record.Set("user_review_count", f.UserReviewCount)
	record.Set("description", f.Description)
	record.Set("features", f.Features)
	record.Set("pros", f.Pros)
	record.Set("cons", f.Cons)
	record.Set("logo_url", f.LogoURL)
	record.Set("affiliate_url", f.AffiliateURL)
	record.Set("brand", f.Brand)
	record.Set("platform", f.Platform)
	record.Set("evaluation_model", f.EvaluationModel)
	record.Set("regulation", f.Regulation)
	record.Set("show_on_homepage", f.ShowOnHomepage)

	o := f.TableOverrides
	record.Set("table_price", floatVal(o.Price))
	record.Set("table_profit_split", floatVal(o.ProfitSplit))
	record.Set("table_payout_rate", floatVal(o.PayoutRate))
	record.Set("table_platform", strVal(o.Platform))
	record.Set("table_trust_rating", floatVal(o.TrustRating))
	record.Set("table_evaluation_rules", strVal(o.EvaluationRules))
	record.Set("table_fee", floatVal(o.Fee))
	record.Set("table_coupon_code", strVal(o.CouponCode))
}

func (r *PBFirmRepo) GetByID(id string) (*core.PropFirm, error) {
	record, err := r.app.FindRecordById("prop_firms", id)
	if err != nil {
		return nil, err
	}
	return r.toDomain(record), nil
}

func (r *PBFirmRepo) GetBySlug(slug string) (*core.PropFirm, error) {
	record, err := r.app.FindFirstRecordByData("prop_firms", "slug", slug)
	if err != nil {
		return nil, err
	}
	return r.toDomain(record), nil
}

func (r *PBFirmRepo) List() ([]*core.PropFirm, error) {
	records, err := r.app.FindRecordsByFilter("prop_firms", "id != ''", "-created", 0, 0, nil)
	if err != nil {
		return nil, err
	}
	return r.toDomainSlice(records), nil
}

func (r *PBFirmRepo) ListHomepage() ([]*core.PropFirm, error) {
	records, err := r.app.FindRecordsByFilter("prop_firms", "show_on_homepage = true", "-created", 0, 0, nil)
	if err != nil {
		return nil, err
	}
	return r.toDomainSlice(records), nil
}

func (r *PBFirmRepo) ListTopRated(limit int) ([]*core.PropFirm, error) {
	records, err := r.app.FindRecordsByFilter("prop_firms", "id != ''", "-review_score", limit, 0, nil)
	if err != nil {
		return nil, err
	}
	return r.toDomainSlice(records), nil
}

func (r *PBFirmRepo) toDomainSlice(records []*pbCore.Record) []*core.PropFirm {
	var firms []*core.PropFirm
	for _, rec := range records {
		firms = append(firms, r.toDomain(rec))
	}
	return firms
}

func (r *PBFirmRepo) Create(f *core.PropFirm) error {
	collection, err := r.app.FindCollectionByNameOrId("prop_firms")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	r.apply(record, f)

	if err := r.app.Save(record); err != nil {
		return err
	}

	// Update ID and timestamps back to the domain model
	f.ID = record.Id
	f.Created = record.GetString("created")
	f.Updated = record.GetString("updated")

	return nil
}

func (r *PBFirmRepo) Update(f *core.PropFirm) error {
	record, err := r.app.FindRecordById("prop_firms", f.ID)
	if err != nil {
		return err
	}

	r.apply(record, f)

	if err := r.app.Save(record); err != nil {
		return err
	}

	f.Updated = record.GetString("updated")
	return nil
}

func (r *PBFirmRepo) Delete(id string) error {
	record, err := r.app.FindRecordById("prop_firms", id)
	if err != nil {
		return err
	}
	return r.app.Delete(record)
}
