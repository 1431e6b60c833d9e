package main

import (
	"log"

	internalApp "github.com/akshay543210/propfirm143/internal/app"
	"github.com/akshay543210/propfirm143/internal/service"
	"github.com/akshay543210/propfirm143/pkg/app"

	_ "github.com/akshay543210/propfirm143/migrations"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/spf13/cobra"
)

func main() {
	pb := pocketbase.New()

	// 1. Migrations
	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// 2. Dependency wiring
	c := internalApp.NewContainer(pb)

	// 3. Routes
	app.RegisterRoutes(pb, c)

	// 4. Maintenance command: restore the public read rules that section
	// reads depend on. Same repair as POST /api/ops/fix-access-rules but
	// runnable on the box without a token.
	pb.RootCmd.AddCommand(&cobra.Command{
		Use:   "fixrules",
		Short: "Restore public list/view rules on the read-facing collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pb.Bootstrap(); err != nil {
				return err
			}
			if err := service.FixPublicAccessRules(pb); err != nil {
				return err
			}
			log.Println("Public access rules restored")
			return nil
		},
	})

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}
