package routes

import (
	"net/http"

	"waymark/auth"
	"waymark/categories"
	"waymark/livemap"
	"waymark/locations"
	"waymark/media"
	"waymark/middleware"
	"waymark/ratelim"
	"waymark/settings"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.GET("/api/auth/me", middleware.Authenticate(auth.Me))
	router.POST("/api/auth/change-password", rateLimiter.Limit(middleware.Authenticate(auth.ChangePassword)))
}

func AddLocationRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/locations", locations.GetLocations)
	router.GET("/api/export/locations", locations.ExportPDF)
	router.GET("/api/locations/:locationid", locations.GetLocation)
	router.GET("/api/locations/:locationid/qr", locations.LocationQR)
	router.POST("/api/locations", middleware.Authenticate(locations.CreateLocation))
	router.PUT("/api/locations/:locationid", middleware.Authenticate(locations.UpdateLocation))
	router.DELETE("/api/locations/:locationid", middleware.Authenticate(locations.DeleteLocation))
	router.POST("/api/locations/bulk-upload", rateLimiter.Limit(middleware.Authenticate(locations.BulkUpload)))
}

func AddCategoryRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/categories", categories.GetCategories)
	router.GET("/api/categories/:categoryid", categories.GetCategory)
	router.POST("/api/categories", middleware.Authenticate(categories.CreateCategory))
	router.PUT("/api/categories/:categoryid", middleware.Authenticate(categories.UpdateCategory))
	router.DELETE("/api/categories/:categoryid", middleware.Authenticate(categories.DeleteCategory))
}

func AddMediaRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/media", media.GetMedias)
	router.GET("/api/media/:mediaid", media.GetMedia)
	router.POST("/api/media", rateLimiter.Limit(middleware.Authenticate(media.AddMedia)))
	router.PUT("/api/media/:mediaid", middleware.Authenticate(media.UpdateMedia))
	router.DELETE("/api/media/:mediaid", middleware.Authenticate(media.DeleteMedia))
	router.POST("/api/media/recover", middleware.Authenticate(middleware.RequireRole("admin", media.RecoverMedia)))
}

func AddSettingsRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/settings", settings.GetSettings)
	router.GET("/api/settings/:key", settings.GetSetting)
	router.PUT("/api/settings/:key", middleware.Authenticate(middleware.RequireRole("admin", settings.SetSetting)))
}

func AddLiveRoutes(router *httprouter.Router, hub *livemap.Hub) {
	router.GET("/ws/map", livemap.WebSocketHandler(hub))
}

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, rateLimiter)
	AddLocationRoutes(router, rateLimiter)
	AddCategoryRoutes(router, rateLimiter)
	AddMediaRoutes(router, rateLimiter)
	AddSettingsRoutes(router, rateLimiter)
	AddStaticRoutes(router)
}
