// Package routes registers the public site, the public API and the
// authenticated admin API on a gin engine.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pearlatelier/pearlsite-go/internal/application/container"
	"github.com/pearlatelier/pearlsite-go/internal/presentation/http/handlers"
	"github.com/pearlatelier/pearlsite-go/internal/presentation/http/middleware"
	"github.com/pearlatelier/pearlsite-go/pkg/config"
)

// Setup wires all routes and middleware on the engine.
func Setup(router *gin.Engine, deps *container.Container) {
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.TrackVisits(deps.AnalyticsService, deps.Logger))

	authHandlers := handlers.NewAuthHandlers(deps.AuthService, deps.Logger, deps.PerfTracker)
	jewelryHandlers := handlers.NewJewelryHandlers(deps.CatalogService, deps.Logger, deps.PerfTracker)
	imageHandlers := handlers.NewImageHandlers(deps.ImageService, deps.Logger, deps.PerfTracker)
	galleryHandlers := handlers.NewGalleryHandlers(deps.GalleryService, deps.Logger, deps.PerfTracker)
	pageHandlers := handlers.NewPageHandlers(deps.PageService, deps.Logger)
	analyticsHandlers := handlers.NewAnalyticsHandlers(deps.AnalyticsService, deps.CatalogService, deps.StatsBroadcaster, deps.Logger, deps.PerfTracker)
	translateHandlers := handlers.NewTranslateHandlers(deps.TranslateService, deps.Logger)
	contactHandlers := handlers.NewContactHandlers(deps.ContactService, deps.Logger)
	healthHandlers := handlers.NewHealthHandlers()
	siteHandlers := handlers.NewSiteHandlers(deps.CatalogService, deps.GalleryService, deps.PageService, deps.ContactService, deps.Logger)

	// Server-rendered public pages
	router.GET("/", siteHandlers.GetHome)
	router.GET("/gallery", siteHandlers.GetGallery)
	router.GET("/about", siteHandlers.GetAbout)
	router.GET("/knowledge", siteHandlers.GetKnowledge)
	router.GET("/contact", siteHandlers.GetContact)
	router.POST("/contact", siteHandlers.PostContactForm)
	router.POST("/consent", siteHandlers.PostConsentForm)

	// Uploaded assets
	router.Static("/uploads", config.UploadDir)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandlers.GetHealth)
		api.GET("/placeholder/:name", healthHandlers.GetPlaceholder)

		api.POST("/auth/login", authHandlers.PostLogin)

		api.GET("/jewelry", jewelryHandlers.GetJewelry)
		api.GET("/jewelry/:id", jewelryHandlers.GetJewelryItem)

		api.GET("/gallery", galleryHandlers.GetGallery)
		api.GET("/pages/:key", pageHandlers.GetPage)

		api.POST("/analytics/track", analyticsHandlers.PostTrack)
		api.POST("/analytics/consent", analyticsHandlers.PostConsent)
		api.POST("/contact", contactHandlers.PostContact)
	}

	admin := router.Group("/api", middleware.RequireAdmin(deps.AuthService))
	{
		admin.POST("/auth/change-password", authHandlers.PostChangePassword)

		admin.POST("/jewelry", jewelryHandlers.PostJewelry)
		admin.PUT("/jewelry/:id", jewelryHandlers.PutJewelry)
		admin.DELETE("/jewelry/:id", jewelryHandlers.DeleteJewelry)

		admin.POST("/upload", imageHandlers.PostUpload)
		admin.GET("/images", imageHandlers.GetImages)
		admin.PUT("/images/:id", imageHandlers.PutImage)
		admin.DELETE("/images/:id", imageHandlers.DeleteImage)
		admin.POST("/images/reorder", imageHandlers.PostImagesReorder)

		admin.GET("/gallery/all", galleryHandlers.GetGalleryAll)
		admin.POST("/gallery/upload", galleryHandlers.PostGalleryUpload)
		admin.PUT("/gallery/:id", galleryHandlers.PutGalleryImage)
		admin.DELETE("/gallery/:id", galleryHandlers.DeleteGalleryImage)
		admin.POST("/gallery/reorder", galleryHandlers.PostGalleryReorder)

		admin.GET("/pages", pageHandlers.GetPages)
		admin.PUT("/pages/:key", pageHandlers.PutPage)

		admin.GET("/analytics/stats", analyticsHandlers.GetStats)
		admin.GET("/admin/stats", analyticsHandlers.GetAdminStats)
		admin.GET("/admin/stats/live", analyticsHandlers.GetLiveStats)

		admin.POST("/translate", translateHandlers.PostTranslate)
	}
}
