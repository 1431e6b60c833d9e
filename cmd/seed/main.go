package main

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Seeds a demo firm and its table-review membership for local testing.
func main() {
	app := pocketbase.New()

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		firms, err := app.FindCollectionByNameOrId("prop_firms")
		if err != nil {
			return err
		}

		existing, _ := app.FindRecordsByFilter("prop_firms", "slug='demo-funding'", "", 1, 0, nil)
		if len(existing) > 0 {
			fmt.Printf("Demo firm already exists: %s\n", existing[0].Id)
			return nil
		}

		firm := core.NewRecord(firms)
		firm.Set("name", "Demo Funding")
		firm.Set("slug", "demo-funding")
		firm.Set("funding_amount", "100K")
		firm.Set("price", 199)
		firm.Set("original_price", 299)
		firm.Set("profit_split", 80)
		firm.Set("payout_rate", 95)
		firm.Set("review_score", 4.5)
		firm.Set("trust_rating", 9)
		firm.Set("logo_url", "/placeholder.svg")
		firm.Set("show_on_homepage", true)
		firm.Set("features", []string{"Instant funding", "No time limit"})

		if err := app.Save(firm); err != nil {
			return err
		}
		fmt.Printf("Created firm: %s\n", firm.Id)

		tableReview, err := app.FindCollectionByNameOrId("table_review_firms")
		if err != nil {
			return err
		}

		membership := core.NewRecord(tableReview)
		membership.Set("firm_id", firm.Id)
		membership.Set("is_approved", true)
		membership.Set("sort_priority", 1)

		if err := app.Save(membership); err != nil {
			return err
		}
		fmt.Printf("Created table-review membership: %s\n", membership.Id)
		return nil
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
