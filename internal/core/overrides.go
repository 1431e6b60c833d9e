package core

// TableOverrides shadows a subset of firm attributes for the table-review
// view. Every field is optional; an unset field falls back to the base
// attribute it shadows. The store persists unset numeric overrides as 0
// and unset text overrides as "", so those zero values mean "absent".
type TableOverrides struct {
	Price           *float64 `json:"table_price,omitempty"`
	ProfitSplit     *float64 `json:"table_profit_split,omitempty"`
	PayoutRate      *float64 `json:"table_payout_rate,omitempty"`
	Platform        *string  `json:"table_platform,omitempty"`
	TrustRating     *float64 `json:"table_trust_rating,omitempty"`
	EvaluationRules *string  `json:"table_evaluation_rules,omitempty"`
	Fee             *float64 `json:"table_fee,omitempty"`
	CouponCode      *string  `json:"table_coupon_code,omitempty"`
}

// TableView is the resolved attribute set shown on the table-review page.
type TableView struct {
	Price           float64 `json:"price"`
	ProfitSplit     float64 `json:"profit_split"`
	PayoutRate      float64 `json:"payout_rate"`
	Platform        string  `json:"platform"`
	TrustRating     float64 `json:"trust_rating"`
	EvaluationRules string  `json:"evaluation_rules"`
	Fee             float64 `json:"fee"`
	CouponCode      string  `json:"coupon_code"`
}

// ResolveTableView merges a firm's table overrides onto its base
// attributes. This is the single place where the fallback happens;
// consumers must not coalesce the fields themselves.
func ResolveTableView(f *PropFirm) TableView {
	o := f.TableOverrides
	v := TableView{
		Price:           f.Price,
		ProfitSplit:     f.ProfitSplit,
		PayoutRate:      f.PayoutRate,
		Platform:        f.Platform,
		TrustRating:     f.TrustRating,
		EvaluationRules: f.EvaluationModel,
		Fee:             f.StartingFee,
		CouponCode:      f.CouponCode,
	}
	if o.Price != nil {
		v.Price = *o.Price
	}
	if o.ProfitSplit != nil {
		v.ProfitSplit = *o.ProfitSplit
	}
	if o.PayoutRate != nil {
		v.PayoutRate = *o.PayoutRate
	}
	if o.Platform != nil {
		v.Platform = *o.Platform
	}
	if o.TrustRating != nil {
		v.TrustRating = *o.TrustRating
	}
	if o.EvaluationRules != nil {
		v.EvaluationRules = *o.EvaluationRules
	}
	if o.Fee != nil {
		v.Fee = *o.Fee
	}
	if o.CouponCode != nil {
		v.CouponCode = *o.CouponCode
	}
	return v
}
