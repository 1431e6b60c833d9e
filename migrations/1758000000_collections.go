package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func timestamps() []core.Field {
	return []core.Field{
		&core.AutodateField{Name: "created", OnCreate: true},
		&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true},
	}
}

func init() {
	m.Register(func(app core.App) error {
		// Idempotent: skip if the schema already exists.
		if _, err := app.FindCollectionByNameOrId("prop_firms"); err == nil {
			return nil
		}

		users, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return err
		}

		// 1. Categories
		categories := core.NewBaseCollection("categories")
		categories.Fields.Add(&core.TextField{
			Name:     "name",
			Required: true,
		})
		categories.Fields.Add(&core.TextField{
			Name: "description",
		})
		categories.Fields.Add(timestamps()...)
		if err := app.Save(categories); err != nil {
			return err
		}

		// 2. Prop firms
		firms := core.NewBaseCollection("prop_firms")
		firms.Fields.Add(&core.TextField{
			Name:     "name",
			Required: true,
		})
		firms.Fields.Add(&core.TextField{
			Name: "slug",
		})
		firms.Fields.Add(&core.RelationField{
			Name:          "category_id",
			CollectionId:  categories.Id,
			MaxSelect:     1,
			CascadeDelete: false,
		})
		firms.Fields.Add(&core.NumberField{Name: "price"})
		firms.Fields.Add(&core.NumberField{Name: "original_price"})
		firms.Fields.Add(&core.TextField{Name: "coupon_code"})
		firms.Fields.Add(&core.NumberField{Name: "profit_split"})
		firms.Fields.Add(&core.NumberField{Name: "payout_rate"})
		firms.Fields.Add(&core.TextField{
			Name:     "funding_amount",
			Required: true,
		})
		firms.Fields.Add(&core.TextField{Name: "max_funding"})
		firms.Fields.Add(&core.NumberField{Name: "starting_fee"})
		firms.Fields.Add(&core.NumberField{Name: "review_score"})
		firms.Fields.Add(&core.NumberField{Name: "trust_rating"})
		firms.Fields.Add(&core.NumberField{Name: "user_review_count"})
		firms.Fields.Add(&core.TextField{Name: "description"})
		firms.Fields.Add(&core.JSONField{Name: "features"})
		firms.Fields.Add(&core.JSONField{Name: "pros"})
		firms.Fields.Add(&core.JSONField{Name: "cons"})
		firms.Fields.Add(&core.TextField{Name: "logo_url"})
		firms.Fields.Add(&core.URLField{Name: "affiliate_url"})
		firms.Fields.Add(&core.TextField{Name: "brand"})
		firms.Fields.Add(&core.TextField{Name: "platform"})
		firms.Fields.Add(&core.TextField{Name: "evaluation_model"})
		firms.Fields.Add(&core.TextField{Name: "regulation"})
		firms.Fields.Add(&core.BoolField{Name: "show_on_homepage"})

		// Comparison-table overrides. Zero/empty means "use the base
		// attribute"; the merge happens in the domain layer.
		firms.Fields.Add(&core.NumberField{Name: "table_price"})
		firms.Fields.Add(&core.NumberField{Name: "table_profit_split"})
		firms.Fields.Add(&core.NumberField{Name: "table_payout_rate"})
		firms.Fields.Add(&core.TextField{Name: "table_platform"})
		firms.Fields.Add(&core.NumberField{Name: "table_trust_rating"})
		firms.Fields.Add(&core.TextField{Name: "table_evaluation_rules"})
		firms.Fields.Add(&core.NumberField{Name: "table_fee"})
		firms.Fields.Add(&core.TextField{Name: "table_coupon_code"})

		firms.Fields.Add(timestamps()...)
		firms.Indexes = []string{
			"CREATE UNIQUE INDEX idx_prop_firms_slug ON prop_firms (slug)",
			"CREATE INDEX idx_prop_firms_review_score ON prop_firms (review_score)",
			"CREATE INDEX idx_prop_firms_homepage ON prop_firms (show_on_homepage)",
		}
		if err := app.Save(firms); err != nil {
			return err
		}

		// 3. Reviews
		reviews := core.NewBaseCollection("reviews")
		reviews.Fields.Add(&core.RelationField{
			Name:          "firm_id",
			CollectionId:  firms.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		reviews.Fields.Add(&core.RelationField{
			Name:         "user_id",
			CollectionId: users.Id,
			MaxSelect:    1,
		})
		reviews.Fields.Add(&core.TextField{Name: "reviewer_name"})
		minOne := float64(1)
		maxFive := float64(5)
		reviews.Fields.Add(&core.NumberField{
			Name:     "rating",
			Required: true,
			Min:      &minOne,
			Max:      &maxFive,
		})
		reviews.Fields.Add(&core.TextField{Name: "title"})
		reviews.Fields.Add(&core.TextField{
			Name:     "content",
			Required: true,
		})
		reviews.Fields.Add(&core.BoolField{Name: "is_verified"})
		reviews.Fields.Add(&core.NumberField{Name: "helpful_count"})
		reviews.Fields.Add(timestamps()...)
		reviews.Indexes = []string{
			"CREATE INDEX idx_reviews_firm ON reviews (firm_id)",
		}
		if err := app.Save(reviews); err != nil {
			return err
		}

		// 4. Curated section tables. budget_prop and top5_prop key the
		// firm as propfirm_id and carry no rank; the table-review list
		// alone persists ordering.
		budget := core.NewBaseCollection("budget_prop")
		budget.Fields.Add(&core.RelationField{
			Name:          "propfirm_id",
			CollectionId:  firms.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		budget.Fields.Add(timestamps()...)
		budget.Indexes = []string{
			"CREATE UNIQUE INDEX idx_budget_prop_firm ON budget_prop (propfirm_id)",
		}
		if err := app.Save(budget); err != nil {
			return err
		}

		top5 := core.NewBaseCollection("top5_prop")
		top5.Fields.Add(&core.RelationField{
			Name:          "propfirm_id",
			CollectionId:  firms.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		top5.Fields.Add(timestamps()...)
		top5.Indexes = []string{
			"CREATE UNIQUE INDEX idx_top5_prop_firm ON top5_prop (propfirm_id)",
		}
		if err := app.Save(top5); err != nil {
			return err
		}

		tableReview := core.NewBaseCollection("table_review_firms")
		tableReview.Fields.Add(&core.RelationField{
			Name:          "firm_id",
			CollectionId:  firms.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		tableReview.Fields.Add(&core.BoolField{Name: "is_approved"})
		tableReview.Fields.Add(&core.NumberField{Name: "sort_priority"})
		tableReview.Fields.Add(timestamps()...)
		tableReview.Indexes = []string{
			"CREATE UNIQUE INDEX idx_table_review_firm ON table_review_firms (firm_id)",
			"CREATE INDEX idx_table_review_priority ON table_review_firms (sort_priority)",
		}
		if err := app.Save(tableReview); err != nil {
			return err
		}

		explore := core.NewBaseCollection("explore_firms")
		explore.Fields.Add(&core.RelationField{
			Name:          "firm_id",
			CollectionId:  firms.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		explore.Fields.Add(timestamps()...)
		explore.Indexes = []string{
			"CREATE UNIQUE INDEX idx_explore_firms_firm ON explore_firms (firm_id)",
		}
		if err := app.Save(explore); err != nil {
			return err
		}

		// 5. Drama reports. firm_name is free text on purpose: reports
		// about firms not listed on the site are allowed.
		drama := core.NewBaseCollection("drama_reports")
		drama.Fields.Add(&core.TextField{
			Name:     "firm_name",
			Required: true,
		})
		drama.Fields.Add(&core.DateField{Name: "date_reported"})
		drama.Fields.Add(&core.SelectField{
			Name:     "drama_type",
			Required: true,
			Values: []string{
				"Payout Delay",
				"Account Ban",
				"Rule Change",
				"Suspicious Activity",
				"Shutdown",
				"Other",
			},
		})
		drama.Fields.Add(&core.SelectField{
			Name:     "severity",
			Required: true,
			Values:   []string{"Low", "Medium", "High", "Scam Alert"},
		})
		drama.Fields.Add(&core.TextField{
			Name:     "description",
			Required: true,
		})
		drama.Fields.Add(&core.JSONField{Name: "source_links"})
		drama.Fields.Add(&core.SelectField{
			Name:     "status",
			Required: true,
			Values:   []string{"Pending", "Approved", "Rejected"},
		})
		drama.Fields.Add(&core.RelationField{
			Name:         "submitted_by",
			CollectionId: users.Id,
			MaxSelect:    1,
		})
		drama.Fields.Add(&core.RelationField{
			Name:         "admin_approved_by",
			CollectionId: users.Id,
			MaxSelect:    1,
		})
		drama.Fields.Add(timestamps()...)
		drama.Indexes = []string{
			"CREATE INDEX idx_drama_status ON drama_reports (status)",
			"CREATE INDEX idx_drama_submitter ON drama_reports (submitted_by)",
		}
		if err := app.Save(drama); err != nil {
			return err
		}

		// 6. Account sizes
		sizes := core.NewBaseCollection("account_sizes")
		sizes.Fields.Add(&core.RelationField{
			Name:          "firm_id",
			CollectionId:  firms.Id,
			MaxSelect:     1,
			Required:      true,
			CascadeDelete: true,
		})
		sizes.Fields.Add(&core.TextField{
			Name:     "size",
			Required: true,
		})
		sizes.Fields.Add(&core.NumberField{Name: "discounted_price"})
		sizes.Fields.Add(&core.NumberField{Name: "original_price"})
		sizes.Fields.Add(&core.TextField{Name: "promo_code"})
		sizes.Fields.Add(&core.URLField{Name: "buying_link"})
		sizes.Fields.Add(timestamps()...)
		sizes.Indexes = []string{
			"CREATE INDEX idx_account_sizes_firm ON account_sizes (firm_id)",
		}
		return app.Save(sizes)

	}, func(app core.App) error {
		names := []string{
			"account_sizes",
			"drama_reports",
			"explore_firms",
			"table_review_firms",
			"top5_prop",
			"budget_prop",
			"reviews",
			"prop_firms",
			"categories",
		}
		for _, name := range names {
			if collection, err := app.FindCollectionByNameOrId(name); err == nil {
				if err := app.Delete(collection); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
