// Package app provides the dependency injection container for the prop firm
// backend. This consolidates all service initialization in one place.
package app

import (
	"github.com/akshay543210/propfirm143/internal/adapter/repository"
	domain "github.com/akshay543210/propfirm143/internal/core"
	"github.com/akshay543210/propfirm143/internal/handler"
	"github.com/akshay543210/propfirm143/internal/service"
	"github.com/akshay543210/propfirm143/pkg/broker"

	"github.com/pocketbase/pocketbase"
)

// Container holds all application dependencies.
// This is the central place for Dependency Injection.
type Container struct {
	// PocketBase instance
	PB *pocketbase.PocketBase

	// Infrastructure
	Broker *broker.Broker

	// Repositories (Data Access Layer)
	FirmRepo        domain.FirmRepository
	SectionRepo     domain.SectionRepository
	ReviewRepo      domain.ReviewRepository
	DramaRepo       domain.DramaRepository
	AccountSizeRepo domain.AccountSizeRepository
	StatsRepo       domain.StatsRepository

	// Domain Services (Business Logic)
	SectionService     domain.SectionService
	FirmService        domain.FirmService
	DramaService       domain.DramaService
	ReviewService      domain.ReviewService
	AccountSizeService *service.AccountSizeService

	// Handlers
	SectionHandler     *handler.SectionHandler
	FirmHandler        *handler.FirmHandler
	DramaHandler       *handler.DramaHandler
	ReviewHandler      *handler.ReviewHandler
	AccountSizeHandler *handler.AccountSizeHandler
	StatsHandler       *handler.StatsHandler
	StreamHandler      *handler.StreamHandler
	OpsHandler         *handler.OpsHandler
}

// NewContainer creates and wires all dependencies.
func NewContainer(pb *pocketbase.PocketBase) *Container {
	c := &Container{
		PB: pb,
	}

	// 1. Event Broker
	c.Broker = broker.New()

	// 2. Repositories (Adapters)
	c.FirmRepo = repository.NewFirmRepo(pb)
	c.SectionRepo = repository.NewSectionRepo(pb)
	c.ReviewRepo = repository.NewReviewRepo(pb)
	c.DramaRepo = repository.NewDramaRepo(pb)
	c.AccountSizeRepo = repository.NewAccountSizeRepo(pb)
	c.StatsRepo = repository.NewStatsRepo(pb)

	// 3. Domain Services (inject repos + broker)
	logger := pb.Logger()
	c.SectionService = service.NewSectionService(c.SectionRepo, logger)
	c.FirmService = service.NewFirmService(c.FirmRepo, c.SectionRepo, logger)
	c.DramaService = service.NewDramaService(c.DramaRepo, c.Broker, logger)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, logger)
	c.AccountSizeService = service.NewAccountSizeService(c.AccountSizeRepo, logger)

	// 4. Handlers
	c.SectionHandler = handler.NewSectionHandler(c.SectionService)
	c.FirmHandler = handler.NewFirmHandler(c.FirmService, c.FirmRepo)
	c.DramaHandler = handler.NewDramaHandler(c.DramaService)
	c.ReviewHandler = handler.NewReviewHandler(c.ReviewService)
	c.AccountSizeHandler = handler.NewAccountSizeHandler(c.AccountSizeService)
	c.StatsHandler = handler.NewStatsHandler(c.StatsRepo)
	c.StreamHandler = handler.NewStreamHandler(c.Broker)
	c.OpsHandler = handler.NewOpsHandler(pb)

	return c
}
