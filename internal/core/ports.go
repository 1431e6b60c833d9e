package core

// Result is the structured outcome every admin-facing operation reports
// instead of propagating errors to the caller. Message carries the
// user-facing status text; Warning carries a non-fatal follow-up failure.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Warning string `json:"warning,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// FirmRepository defines data access for prop firm records
type FirmRepository interface {
	GetByID(id string) (*PropFirm, error)
	GetBySlug(slug string) (*PropFirm, error)
	List() ([]*PropFirm, error)
	ListHomepage() ([]*PropFirm, error)
	ListTopRated(limit int) ([]*PropFirm, error)
	Create(firm *PropFirm) error
	Update(firm *PropFirm) error
	Delete(id string) error
}

// SectionRepository defines data access for the four curated membership tables
type SectionRepository interface {
	// ListSection returns the section's membership rows joined with their
	// firms. Rows whose firm is missing are dropped. For table-review only
	// approved rows are returned, ordered ascending by sort priority.
	ListSection(section Section) ([]SectionFirm, error)

	// HasPublicListRule reports whether anonymous reads are allowed on the
	// section's table. A missing rule is the degraded-read condition.
	HasPublicListRule(section Section) (bool, error)

	// Insert adds a membership row. Rank is persisted only for
	// table-review (as sort_priority, with the row approved at insert).
	Insert(section Section, firmID string, rank int) error

	// Delete removes a membership row by id and reports how many rows
	// were actually deleted (0 or 1).
	Delete(section Section, membershipID string) (int, error)

	Count(section Section) (int64, error)
}

// ReviewRepository defines data access for reviews
type ReviewRepository interface {
	List(firmID string) ([]*Review, error) // firmID == "" lists all
	Create(review *Review) error
	Delete(id string) error
}

// DramaRepository defines data access for drama reports
type DramaRepository interface {
	ListApproved() ([]*DramaReport, error)
	ListBySubmitter(userID string) ([]*DramaReport, error)
	ListAll() ([]*DramaReport, error)
	Create(report *DramaReport) error
	SetStatus(id, status, approverID string) error
	Delete(id string) error
}

// AccountSizeRepository defines data access for account size tiers
type AccountSizeRepository interface {
	List(firmID string) ([]*AccountSize, error)
	Create(size *AccountSize) error
	Update(size *AccountSize) error
	Delete(id string) error
}

// StatsRepository aggregates counts for the admin dashboard
type StatsRepository interface {
	DashboardStats() (*DashboardStats, error)
	FirmRatings(limit int) ([]FirmRating, error)
}

// MembershipSnapshot holds the four curated lists plus any per-section
// degraded-read errors retained for display.
type MembershipSnapshot struct {
	Budget      []SectionFirm      `json:"budget_firms"`
	Top         []SectionFirm      `json:"top_firms"`
	TableReview []SectionFirm      `json:"table_review_firms"`
	Explore     []SectionFirm      `json:"explore_firms"`
	Errors      map[Section]string `json:"errors,omitempty"`
}

// SectionService presents the curated lists and membership mutations
type SectionService interface {
	FetchMemberships() (*MembershipSnapshot, error)
	MembershipsBySection(sectionKey string) []Membership
	AddFirmToSection(sectionKey, firmID string, rank int) Result
	RemoveFirmFromSection(sectionKey, membershipID string) Result
	RemoveFirmFromExplore(membershipID string) Result
	// RemoveLegacyMembership probes the three legacy tables in turn for
	// callers that do not know which table the id belongs to.
	RemoveLegacyMembership(membershipID string) Result
	LastError() string
}

// FirmInput carries admin form data for firm create/update
type FirmInput struct {
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	CategoryID      string     `json:"category_id"`
	Price           float64    `json:"price"`
	OriginalPrice   float64    `json:"original_price"`
	CouponCode      string     `json:"coupon_code"`
	ProfitSplit     float64    `json:"profit_split"`
	PayoutRate      float64    `json:"payout_rate"`
	FundingAmount   string     `json:"funding_amount"`
	MaxFunding      string     `json:"max_funding"`
	StartingFee     float64    `json:"starting_fee"`
	ReviewScore     float64    `json:"review_score"`
	TrustRating     float64    `json:"trust_rating"`
	UserReviewCount int        `json:"user_review_count"`
	Description     string     `json:"description"`
	Features        StringList `json:"features"`
	Pros            StringList `json:"pros"`
	Cons            StringList `json:"cons"`
	LogoURL         string     `json:"logo_url"`
	AffiliateURL    string     `json:"affiliate_url"`
	Brand           string     `json:"brand"`
	Platform        string     `json:"platform"`
	EvaluationModel string     `json:"evaluation_model"`
	Regulation      string     `json:"regulation"`
	ShowOnHomepage  bool       `json:"show_on_homepage"`

	TablePrice           *float64 `json:"table_price"`
	TableProfitSplit     *float64 `json:"table_profit_split"`
	TablePayoutRate      *float64 `json:"table_payout_rate"`
	TablePlatform        *string  `json:"table_platform"`
	TableTrustRating     *float64 `json:"table_trust_rating"`
	TableEvaluationRules *string  `json:"table_evaluation_rules"`
	TableFee             *float64 `json:"table_fee"`
	TableCouponCode      *string  `json:"table_coupon_code"`
}

// FirmService defines admin operations over firms
type FirmService interface {
	AddFirm(input *FirmInput) Result
	UpdateFirm(id string, input *FirmInput) Result
	DeleteFirm(id string) Result
}

// DramaInput carries a drama report submission
type DramaInput struct {
	FirmName     string     `json:"firm_name"`
	DateReported string     `json:"date_reported"`
	DramaType    string     `json:"drama_type"`
	Severity     string     `json:"severity"`
	Description  string     `json:"description"`
	SourceLinks  StringList `json:"source_links"`
	// Status is accepted but ignored: submissions are always Pending.
	Status string `json:"status"`
}

// DramaService defines the moderation workflow for drama reports
type DramaService interface {
	PublicReports() ([]*DramaReport, error)
	SubmitterReports(userID string) ([]*DramaReport, error)
	AllReports() ([]*DramaReport, error)
	Submit(input *DramaInput, submitterID string) Result
	UpdateStatus(id, status, approverID string) Result
	Delete(id string) Result
}

// ReviewInput carries a review submission
type ReviewInput struct {
	FirmID       string `json:"firm_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Title        string `json:"title"`
	Content      string `json:"content"`
}

// ReviewService defines review submission and moderation
type ReviewService interface {
	List(firmID string) ([]*Review, error)
	Submit(input *ReviewInput, userID string) Result
	Delete(id string) Result
}
