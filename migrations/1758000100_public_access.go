package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/types"
)

// Read rules the site depends on. The membership accessor treats a
// section table without a public list rule as a degraded read, so these
// rules are part of the contract, not cosmetics.
func init() {
	m.Register(func(app core.App) error {
		publicRead := []string{
			"budget_prop",
			"top5_prop",
			"table_review_firms",
			"explore_firms",
			"prop_firms",
			"reviews",
			"categories",
			"account_sizes",
		}
		for _, name := range publicRead {
			collection, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				return err
			}
			collection.ListRule = types.Pointer("")
			collection.ViewRule = types.Pointer("")
			if err := app.Save(collection); err != nil {
				return err
			}
		}

		// Anonymous review submission is allowed.
		reviews, err := app.FindCollectionByNameOrId("reviews")
		if err != nil {
			return err
		}
		reviews.CreateRule = types.Pointer("")
		if err := app.Save(reviews); err != nil {
			return err
		}

		// Drama reports: approved set is public, submitters see their
		// own, admins see everything. Creation needs auth; moderation
		// stays admin-only.
		drama, err := app.FindCollectionByNameOrId("drama_reports")
		if err != nil {
			return err
		}
		drama.ListRule = types.Pointer(`status = "Approved" || @request.auth.id = submitted_by || @request.auth.role = "admin"`)
		drama.ViewRule = drama.ListRule
		drama.CreateRule = types.Pointer(`@request.auth.id != ""`)
		drama.UpdateRule = types.Pointer(`@request.auth.role = "admin"`)
		drama.DeleteRule = types.Pointer(`@request.auth.role = "admin"`)
		if err := app.Save(drama); err != nil {
			return err
		}

		// Content writes are admin-only everywhere else.
		adminWrite := []string{
			"prop_firms",
			"categories",
			"account_sizes",
			"budget_prop",
			"top5_prop",
			"table_review_firms",
			"explore_firms",
		}
		for _, name := range adminWrite {
			collection, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				return err
			}
			rule := types.Pointer(`@request.auth.role = "admin"`)
			collection.CreateRule = rule
			collection.UpdateRule = rule
			collection.DeleteRule = rule
			if err := app.Save(collection); err != nil {
				return err
			}
		}

		return nil
	}, nil)
}
