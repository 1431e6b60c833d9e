package core

import (
	"encoding/json"
	"strings"
)

// PropFirm represents a proprietary trading firm listing
type PropFirm struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID string `json:"category_id"`

	// Commercial attributes
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	CouponCode    string  `json:"coupon_code"`
	ProfitSplit   float64 `json:"profit_split"`
	PayoutRate    float64 `json:"payout_rate"`
	FundingAmount string  `json:"funding_amount"` // Display label, e.g. "10K"
	MaxFunding    string  `json:"max_funding"`
	StartingFee   float64 `json:"starting_fee"`

	// Quality signals
	ReviewScore     float64 `json:"review_score"`
	TrustRating     float64 `json:"trust_rating"`
	UserReviewCount int     `json:"user_review_count"`

	// Content
	Description     string   `json:"description"`
	Features        []string `json:"features"`
	Pros            []string `json:"pros"`
	Cons            []string `json:"cons"`
	LogoURL         string   `json:"logo_url"`
	AffiliateURL    string   `json:"affiliate_url"`
	Brand           string   `json:"brand"`
	Platform        string   `json:"platform"`
	EvaluationModel string   `json:"evaluation_model"`
	Regulation      string   `json:"regulation"`

	ShowOnHomepage bool `json:"show_on_homepage"`

	// Per-view overrides for the table-review page
	TableOverrides TableOverrides `json:"table_overrides"`

	// Timestamps (raw store format, consistent with the rest of the app)
	Created string `json:"created"`
	Updated string `json:"updated"`
}

// SectionFirm is a firm decorated with its membership row in a curated section.
type SectionFirm struct {
	MembershipID string    `json:"membership_id"`
	SortPriority int       `json:"sort_priority,omitempty"`
	Firm         *PropFirm `json:"firm"`
}

// Membership is the uniform projection shape the admin console consumes.
type Membership struct {
	ID     string    `json:"id"`
	FirmID string    `json:"firm_id"`
	Rank   int       `json:"rank"`
	Firm   *PropFirm `json:"firm"`
}

// Review represents a user review of a firm
type Review struct {
	ID           string `json:"id"`
	FirmID       string `json:"firm_id"`
	UserID       string `json:"user_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	IsVerified   bool   `json:"is_verified"`
	HelpfulCount int    `json:"helpful_count"`
	Created      string `json:"created"`
	Updated      string `json:"updated"`

	// Denormalized firm reference for display
	FirmName string `json:"firm_name,omitempty"`
	FirmSlug string `json:"firm_slug,omitempty"`
}

// Drama report enums. Values match the stored select options.
const (
	DramaTypePayoutDelay = "Payout Delay"
	DramaTypeAccountBan  = "Account Ban"
	DramaTypeRuleChange  = "Rule Change"
	DramaTypeSuspicious  = "Suspicious Activity"
	DramaTypeShutdown    = "Shutdown"
	DramaTypeOther       = "Other"

	SeverityLow       = "Low"
	SeverityMedium    = "Medium"
	SeverityHigh      = "High"
	SeverityScamAlert = "Scam Alert"

	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// DramaReport is a community-submitted incident report about a firm.
// FirmName is free text on purpose: reports may target firms not listed here.
type DramaReport struct {
	ID              string   `json:"id"`
	FirmName        string   `json:"firm_name"`
	DateReported    string   `json:"date_reported"`
	DramaType       string   `json:"drama_type"`
	Severity        string   `json:"severity"`
	Description     string   `json:"description"`
	SourceLinks     []string `json:"source_links"`
	Status          string   `json:"status"`
	SubmittedBy     string   `json:"submitted_by"`
	AdminApprovedBy string   `json:"admin_approved_by"`
	Created         string   `json:"created"`
	Updated         string   `json:"updated"`
}

// AccountSize is a purchasable account tier of a firm
type AccountSize struct {
	ID              string  `json:"id"`
	FirmID          string  `json:"firm_id"`
	Size            string  `json:"size"` // Label, e.g. "10K", "100K"
	DiscountedPrice float64 `json:"discounted_price"`
	OriginalPrice   float64 `json:"original_price"`
	PromoCode       string  `json:"promo_code"`
	BuyingLink      string  `json:"buying_link"`
	Created         string  `json:"created"`
	Updated         string  `json:"updated"`
}

// DashboardStats feeds the admin console header
type DashboardStats struct {
	TotalFirms        int64            `json:"total_firms"`
	TotalReviews      int64            `json:"total_reviews"`
	PendingDramaCount int64            `json:"pending_drama_count"`
	SectionCounts     map[string]int64 `json:"section_counts"`
}

// FirmRating is a per-firm review aggregate
type FirmRating struct {
	FirmID      string  `db:"firm_id" json:"firm_id"`
	FirmName    string  `db:"firm_name" json:"firm_name"`
	ReviewCount int64   `db:"review_count" json:"review_count"`
	AvgRating   float64 `db:"avg_rating" json:"avg_rating"`
}

// StringList decodes either a JSON array of strings or a single
// comma-separated string. Admin forms submit both shapes.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, ",")
	return nil
}
