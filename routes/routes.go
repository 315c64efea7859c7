package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SallesND3V/Doceiria-Mockup-Site/config"
	"github.com/SallesND3V/Doceiria-Mockup-Site/controllers"
	"github.com/SallesND3V/Doceiria-Mockup-Site/middlewares"
	"github.com/SallesND3V/Doceiria-Mockup-Site/services"
)

// Services groups everything the router needs, built once in main.
type Services struct {
	Auth      *services.AuthService
	Catalog   *services.CatalogService
	Settings  *services.SettingsService
	Instagram *services.InstagramService
	Seed      *services.SeedService
}

func SetupRouter(cfg *config.Config, svcs Services) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(cfg))

	authCtrl := controllers.NewAuthController(svcs.Auth)
	categoryCtrl := controllers.NewCategoryController(svcs.Catalog)
	cakeCtrl := controllers.NewCakeController(svcs.Catalog)
	testimonialCtrl := controllers.NewTestimonialController(svcs.Catalog)
	settingsCtrl := controllers.NewSettingsController(svcs.Settings)
	uploadCtrl := controllers.NewUploadController()
	instagramCtrl := controllers.NewInstagramController(svcs.Instagram)
	statsCtrl := controllers.NewStatsController(svcs.Catalog)
	seedCtrl := controllers.NewSeedController(svcs.Seed)

	requireAuth := middlewares.AuthMiddleware(svcs.Auth)

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Paula Veiga Doces API"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", authCtrl.Register)
			auth.POST("/login", authCtrl.Login)
			auth.GET("/me", requireAuth, authCtrl.Me)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryCtrl.List)
			categories.POST("", requireAuth, categoryCtrl.Create)
			categories.DELETE("/:id", requireAuth, categoryCtrl.Delete)
		}

		cakes := api.Group("/cakes")
		{
			cakes.GET("", cakeCtrl.List)
			cakes.GET("/:id", cakeCtrl.Get)
			cakes.POST("", requireAuth, cakeCtrl.Create)
			cakes.PUT("/:id", requireAuth, cakeCtrl.Update)
			cakes.DELETE("/:id", requireAuth, cakeCtrl.Delete)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", testimonialCtrl.List)
			testimonials.POST("", requireAuth, testimonialCtrl.Create)
			testimonials.DELETE("/:id", requireAuth, testimonialCtrl.Delete)
		}

		api.GET("/settings", settingsCtrl.Get)
		api.GET("/settings/admin", requireAuth, settingsCtrl.GetAdmin)
		api.PUT("/settings", requireAuth, settingsCtrl.Update)

		api.POST("/upload", requireAuth, uploadCtrl.Upload)
		api.POST("/instagram/sync", requireAuth, instagramCtrl.Sync)
		api.GET("/stats", requireAuth, statsCtrl.Get)
		api.POST("/seed", seedCtrl.Run)
	}

	return r
}

// corsMiddleware allows the configured origins plus any https origin whose
// host ends with the configured suffix (preview deployments).
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "https://") &&
				strings.HasSuffix(origin, cfg.CORSOriginSuffix)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
