// Package container wires repositories, services and infrastructure
// into a single dependency graph for the HTTP layer.
package container

import (
	"context"

	"github.com/pearlatelier/pearlsite-go/internal/application/services"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/email"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/media"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/messaging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/performance"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/analytics"
	contentrepo "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/content"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/database"
	userrepo "github.com/pearlatelier/pearlsite-go/internal/infrastructure/persistence/user"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/translate"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

// Container holds every long-lived dependency of the application.
type Container struct {
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
	DB          *database.DB

	AdminRepo    *userrepo.SQLAdminRepository
	JewelryRepo  *contentrepo.SQLJewelryRepository
	ImageRepo    *contentrepo.SQLImageRepository
	GalleryRepo  *contentrepo.SQLGalleryRepository
	PageRepo     *contentrepo.SQLPageRepository
	PageViewRepo *analytics.SQLPageViewRepository

	AuthService      *services.AuthService
	CatalogService   *services.CatalogService
	ImageService     *services.ImageService
	GalleryService   *services.GalleryService
	PageService      *services.PageService
	AnalyticsService *services.AnalyticsService
	ContactService   *services.ContactService
	TranslateService *services.TranslateService

	StatsBroadcaster *messaging.StatsBroadcaster
}

// New builds the full dependency graph on top of an open database.
func New(db *database.DB, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *Container {
	c := &Container{
		Logger:      logger,
		PerfTracker: perfTracker,
		DB:          db,
	}

	c.AdminRepo = userrepo.NewSQLAdminRepository(db)
	c.ImageRepo = contentrepo.NewSQLImageRepository(db)
	c.JewelryRepo = contentrepo.NewSQLJewelryRepository(db, c.ImageRepo)
	c.GalleryRepo = contentrepo.NewSQLGalleryRepository(db)
	c.PageRepo = contentrepo.NewSQLPageRepository(db)
	c.PageViewRepo = analytics.NewSQLPageViewRepository(db)

	processor := media.NewImageProcessor(config.UploadDir)

	c.AuthService = services.NewAuthService(logger, perfTracker, c.AdminRepo)
	c.CatalogService = services.NewCatalogService(logger, perfTracker, c.JewelryRepo, c.ImageRepo)
	c.ImageService = services.NewImageService(logger, perfTracker, c.ImageRepo, processor)
	c.GalleryService = services.NewGalleryService(logger, perfTracker, c.GalleryRepo, processor)
	c.PageService = services.NewPageService(logger, c.PageRepo)
	c.AnalyticsService = services.NewAnalyticsService(logger, perfTracker, c.PageViewRepo)

	mailer, err := email.NewClient()
	if err != nil {
		logger.Startup().Warn("Contact email disabled", "reason", err.Error())
		mailer = nil
	}
	c.ContactService = services.NewContactService(logger, mailer)

	var translator translate.Translator
	if config.TranslateAPIKey != "" {
		gt, err := translate.NewGoogleTranslator(context.Background())
		if err != nil {
			logger.Startup().Warn("Translation disabled", "reason", err.Error())
		} else {
			translator = gt
		}
	} else {
		logger.Startup().Info("Translation disabled, no API key configured")
	}
	c.TranslateService = services.NewTranslateService(logger, translator)

	c.StatsBroadcaster = messaging.NewStatsBroadcaster(c.AnalyticsService, config.LiveStatsInterval, logger)

	return c
}
