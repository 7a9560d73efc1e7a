package bootstrap

import (
	"log"

	"sellerkit-be/internal/config"
	"sellerkit-be/internal/controller"
	"sellerkit-be/internal/pkg/logger"
	"sellerkit-be/internal/pkg/serverutils"
	"sellerkit-be/internal/repository/unitofwork"
	"sellerkit-be/internal/service"
	"sellerkit-be/pkg/admin/dashboard"

	pktNats "sellerkit-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	ToolController         controller.IToolController
	SubscriptionController controller.ISubscriptionController
	ResearchController     controller.IResearchController
	StatsController        controller.IStatsController
	CmsController          controller.ICmsController
	AdminController        controller.IAdminController

	// Shared infrastructure exposed for shutdown and middleware wiring
	Logger        logger.ILogger
	NatsPublisher *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// NATS is best effort: a failed connection downgrades event publishing
	// to no-ops rather than blocking startup.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Services
	authService := service.NewAuthService(uowFactory, natsPub)
	toolService := service.NewToolService(uowFactory)
	subscriptionService := service.NewSubscriptionService(uowFactory, natsPub)
	researchService := service.NewResearchService(uowFactory, natsPub)
	usageService := service.NewUsageService(uowFactory)
	cmsService := service.NewCmsService(uowFactory)

	aggregator := dashboard.NewAggregator(sysLogger)
	adminService := service.NewAdminService(uowFactory, aggregator, sysLogger)

	// One guard instance shared by every role-gated route.
	var adminGuard fiber.Handler = serverutils.AdminOnly(authService)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		ToolController:         controller.NewToolController(toolService, adminGuard),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		ResearchController:     controller.NewResearchController(researchService),
		StatsController:        controller.NewStatsController(usageService),
		CmsController:          controller.NewCmsController(cmsService, adminGuard),
		AdminController:        controller.NewAdminController(adminService, adminGuard),

		Logger:        sysLogger,
		NatsPublisher: natsPub,
	}
}
