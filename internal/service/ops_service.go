package service

import (
	"fmt"
	"log"

	"github.com/akshay543210/propfirm143/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"
)

// publicReadCollections must allow anonymous list/view or the membership
// accessor's read path degrades to "empty list + warning".
var publicReadCollections = []string{
	core.ColBudgetProp,
	core.ColTop5Prop,
	core.ColTableReviewFirms,
	core.ColExploreFirms,
	"prop_firms",
	"reviews",
	"categories",
	"account_sizes",
}

// FixPublicAccessRules re-applies the public read rules on every
// collection the site surfaces. It is the repair path for a store whose
// rules were reset or misconfigured, callable from the fixrules command
// and the ops endpoint.
func FixPublicAccessRules(app pbCore.App) error {
	for _, name := range publicReadCollections {
		collection, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			return fmt.Errorf("collection %s: %w", name, err)
		}

		collection.ListRule = types.Pointer("")
		collection.ViewRule = types.Pointer("")

		if err := app.Save(collection); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
		log.Printf("✅ %s: public list/view rules restored", name)
	}

	// Approved drama reports stay publicly readable; writes remain gated.
	drama, err := app.FindCollectionByNameOrId("drama_reports")
	if err != nil {
		return fmt.Errorf("collection drama_reports: %w", err)
	}
	drama.ListRule = types.Pointer(`status = "Approved" || @request.auth.id = submitted_by || @request.auth.role = "admin"`)
	drama.ViewRule = drama.ListRule
	if err := app.Save(drama); err != nil {
		return fmt.Errorf("save drama_reports: %w", err)
	}
	log.Printf("✅ drama_reports: read rules restored")

	return nil
}
