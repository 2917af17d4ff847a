package bootstrap

import (
	"github.com/QTMarketing/lama-cms/internal/config"
	"github.com/QTMarketing/lama-cms/internal/controller"
	"github.com/QTMarketing/lama-cms/internal/pkg/logger"
	"github.com/QTMarketing/lama-cms/internal/pkg/mailer"
	"github.com/QTMarketing/lama-cms/internal/repository/memory"
	"github.com/QTMarketing/lama-cms/internal/repository/unitofwork"
	"github.com/QTMarketing/lama-cms/internal/service"
	"github.com/QTMarketing/lama-cms/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	PostController     controller.IPostController
	TaxonomyController controller.ITaxonomyController
	BuilderController  controller.IBuilderController
	EditorController   controller.IEditorController
	ContactController  controller.IContactController

	// Background services (exposed for main.go to run)
	AuthService      service.IAuthService
	SchedulerService service.ISchedulerService

	// Shared infrastructure
	Logger logger.ILogger
	Bus    *events.Bus
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// Event bus
	bus := events.NewBus(watermill.NewStdLogger(false, false))

	// In-memory store for drafts and editor sessions
	contentStore := memory.NewContentStore()

	// Services
	authService := service.NewAuthService(uowFactory, cfg, sysLogger)
	postService := service.NewPostService(uowFactory, bus, sysLogger)
	taxonomyService := service.NewTaxonomyService(uowFactory)
	builderService := service.NewBuilderService(uowFactory, contentStore, bus, sysLogger)
	editorService := service.NewEditorService(contentStore, bus, sysLogger)
	contactService := service.NewContactService(uowFactory, emailService, cfg, sysLogger)
	schedulerService := service.NewSchedulerService(postService, bus, contentStore, cfg.App.SchedulerInterval, sysLogger)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		PostController:     controller.NewPostController(postService),
		TaxonomyController: controller.NewTaxonomyController(taxonomyService),
		BuilderController:  controller.NewBuilderController(builderService),
		EditorController:   controller.NewEditorController(editorService),
		ContactController:  controller.NewContactController(contactService),

		AuthService:      authService,
		SchedulerService: schedulerService,

		Logger: sysLogger,
		Bus:    bus,
	}
}
