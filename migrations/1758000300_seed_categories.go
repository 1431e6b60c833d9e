package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		categories, err := app.FindCollectionByNameOrId("categories")
		if err != nil {
			return err
		}

		existing, err := app.FindAllRecords(categories.Name)
		if err == nil && len(existing) > 0 {
			return nil
		}

		seed := []map[string]interface{}{
			{
				"name":        "Futures",
				"description": "Futures prop firms trading CME products",
			},
			{
				"name":        "Forex",
				"description": "Forex and CFD prop firms",
			},
			{
				"name":        "Crypto",
				"description": "Crypto-focused funding programs",
			},
			{
				"name":        "Stocks",
				"description": "Equity trading prop firms",
			},
		}

		for _, data := range seed {
			record := core.NewRecord(categories)
			for key, value := range data {
				record.Set(key, value)
			}
			if err := app.Save(record); err != nil {
				return err
			}
		}

		return nil
	}, func(app core.App) error {
		categories, err := app.FindCollectionByNameOrId("categories")
		if err != nil {
			return nil
		}
		records, err := app.FindAllRecords(categories.Name)
		if err != nil {
			return nil
		}
		for _, record := range records {
			app.Delete(record)
		}
		return nil
	})
}
