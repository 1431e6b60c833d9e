package app

import (
	internalApp "github.com/akshay543210/propfirm143/internal/app"
	"github.com/akshay543210/propfirm143/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// RegisterRoutes configures all application routes on top of PocketBase's
// own record API. Takes the Container instead of individual dependencies.
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {

		// Resolve the auth record (header or cookie) for every request
		// without rejecting anonymous ones. Route groups below decide
		// what level they actually require.
		se.Router.BindFunc(middleware.LoadAuth(pb))

		// ---------------------------------------------------------
		// 1. PUBLIC ROUTES
		// ---------------------------------------------------------
		se.Router.GET("/api/firms", c.FirmHandler.List)
		se.Router.GET("/api/firms/homepage", c.FirmHandler.Homepage)
		se.Router.GET("/api/firms/top-rated", c.FirmHandler.TopRated)
		se.Router.GET("/api/firms/{slug}", c.FirmHandler.GetBySlug)

		se.Router.GET("/api/sections/memberships", c.SectionHandler.Memberships)
		se.Router.GET("/api/sections/{section}", c.SectionHandler.BySection)

		se.Router.GET("/api/reviews", c.ReviewHandler.List)
		se.Router.POST("/api/reviews", c.ReviewHandler.Submit)

		se.Router.GET("/api/account-sizes", c.AccountSizeHandler.List)

		se.Router.GET("/api/drama", c.DramaHandler.PublicList)
		se.Router.GET("/api/drama/stream", c.StreamHandler.TrackerStream)

		// ---------------------------------------------------------
		// 2. AUTHENTICATED ROUTES (any signed-in user)
		// ---------------------------------------------------------
		authGroup := se.Router.Group("/api/drama")
		authGroup.BindFunc(middleware.RequireAuth(pb))

		authGroup.POST("", c.DramaHandler.Submit)
		authGroup.GET("/mine", c.DramaHandler.MyReports)
		authGroup.GET("/mine/stream", c.StreamHandler.SubmitterStream)

		// ---------------------------------------------------------
		// 3. ADMIN ROUTES (Protected)
		// ---------------------------------------------------------
		adminGroup := se.Router.Group("/api/admin")
		adminGroup.BindFunc(middleware.RequireAdmin(pb))

		adminGroup.GET("/stream", c.StreamHandler.AdminStream)
		adminGroup.GET("/stats", c.StatsHandler.Dashboard)
		adminGroup.GET("/stats/ratings", c.StatsHandler.FirmRatings)

		// Firm management
		adminGroup.POST("/firms", c.FirmHandler.Add)
		adminGroup.PATCH("/firms/{id}", c.FirmHandler.Update)
		adminGroup.DELETE("/firms/{id}", c.FirmHandler.Delete)

		// Curated section membership
		adminGroup.POST("/sections/{section}/firms", c.SectionHandler.Add)
		adminGroup.DELETE("/sections/{section}/memberships/{id}", c.SectionHandler.Remove)
		adminGroup.DELETE("/memberships/{id}", c.SectionHandler.RemoveLegacy)

		// Drama moderation
		adminGroup.GET("/drama", c.DramaHandler.AdminList)
		adminGroup.POST("/drama/{id}/status", c.DramaHandler.UpdateStatus)
		adminGroup.DELETE("/drama/{id}", c.DramaHandler.Delete)

		// Review moderation
		adminGroup.DELETE("/reviews/{id}", c.ReviewHandler.Delete)

		// Account size management
		adminGroup.POST("/account-sizes", c.AccountSizeHandler.Add)
		adminGroup.PATCH("/account-sizes/{id}", c.AccountSizeHandler.Update)
		adminGroup.DELETE("/account-sizes/{id}", c.AccountSizeHandler.Delete)

		// ---------------------------------------------------------
		// 4. OPS ROUTES (token gated, for deploy tooling)
		// ---------------------------------------------------------
		opsGroup := se.Router.Group("/api/ops")
		opsGroup.BindFunc(middleware.RequireOpsToken())

		opsGroup.POST("/fix-access-rules", c.OpsHandler.FixAccessRules)

		return se.Next()
	})
}
