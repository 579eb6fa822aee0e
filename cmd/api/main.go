package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leadcrm/internal/config"
	"leadcrm/internal/database"
	"leadcrm/internal/domain"
	"leadcrm/internal/middleware"
	"leadcrm/internal/modules/auth"
	"leadcrm/internal/modules/lead"
	jwtsvc "leadcrm/internal/pkg/jwt"
	"leadcrm/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	// The unique email indexes must exist before the first write.
	if err := db.AutoMigrate(&domain.User{}, &domain.Lead{}); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, cfg)

	leadService := lead.NewService(leadRepo)
	leadHandler := lead.NewHandler(leadService)

	r := gin.New()
	r.Use(
		gin.Logger(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Metrics(),
	)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

		sessionRequired := middleware.Auth(j)

		authHandler.RegisterRoutes(api, sessionRequired)

		leads := api.Group("/leads")
		leads.Use(sessionRequired)
		leadHandler.RegisterRoutes(leads)
	}

	log.Println("Server running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
