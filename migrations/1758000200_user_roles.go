package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Adds the role field that gates moderation. Admins are regular auth
// records with role=admin; there is no hard-coded admin account.
func init() {
	m.Register(func(app core.App) error {
		users, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return err
		}

		if users.Fields.GetByName("role") != nil {
			return nil
		}

		users.Fields.Add(&core.SelectField{
			Name:   "role",
			Values: []string{"user", "admin"},
		})

		return app.Save(users)
	}, func(app core.App) error {
		users, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return nil
		}
		users.Fields.RemoveByName("role")
		return app.Save(users)
	})
}
