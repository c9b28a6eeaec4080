package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"festhub/internal/auth"
	"festhub/internal/certificates"
	"festhub/internal/drive"
	"festhub/internal/events"
	"festhub/internal/export"
	"festhub/internal/live"
	"festhub/internal/mailer"
	"festhub/internal/registration"
	"festhub/internal/storage"
	"festhub/pkg/database"
	"festhub/pkg/utils"
)

// corsMiddleware mirrors the permissive headers the public site relies
// on; pre-flight OPTIONS gets an empty 200.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, content-type")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			c.Abort()
			return
		}
		c.Next()
	}
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": cfg.Path})
	})

	hub := live.NewHub()

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": hub.Count(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"ws_clients": hub.Count(),
		})
	})

	// Auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authRepo := auth.NewRepo(db)
	authHandler := auth.NewHandler(authRepo, tokenSvc)
	authHandler.RegisterRoutes(router.Group("/auth"))

	if err := auth.EnsureAdmin(context.Background(), authRepo,
		os.Getenv("FESTHUB_ADMIN_USERNAME"),
		os.Getenv("FESTHUB_ADMIN_EMAIL"),
		os.Getenv("FESTHUB_ADMIN_PASSWORD"),
	); err != nil {
		log.Fatalf("admin bootstrap failed: %v", err)
	}

	// Events and departments (public + admin CRUD)
	eventsRepo := events.NewRepo(db)
	eventsHandler := events.NewHandler(eventsRepo)
	eventsHandler.RegisterRoutes(router)

	// Registrations (public create)
	store := storage.NewClient(utils.LoadStorageConfig())
	regRepo := registration.NewRepo(db)
	regHandler := registration.NewHandler(regRepo, store, hub)
	regHandler.RegisterRoutes(router.Group("/registrations"))

	// Certificates: public lookup plus the Drive folder scrape
	certRepo := certificates.NewRepo(db)
	certHandler := certificates.NewHandler(certRepo)
	certGroup := router.Group("/certificates")
	certHandler.RegisterRoutes(certGroup)

	lister := drive.NewLister(utils.LoadDriveConfig())
	drive.NewHandler(lister).RegisterRoutes(certGroup)

	// Event-pass email (caller treats failure as non-fatal, always 200)
	mailClient := mailer.NewClient(utils.LoadMailConfig())
	mailer.NewHandler(mailClient).RegisterRoutes(router.Group("/mail"))

	// Admin console: valid token AND admin role on every route
	admin := router.Group("/admin")
	admin.Use(auth.AuthMiddleware(tokenSvc, authRepo), auth.RequireAdmin(authRepo))

	admin.GET("/ws", live.WSHandler(hub))
	eventsHandler.RegisterAdminRoutes(admin)
	regHandler.RegisterAdminRoutes(admin)
	certHandler.RegisterAdminRoutes(admin)
	export.NewHandler(regRepo).RegisterAdminRoutes(admin)

	httpSrv := &http.Server{
		Addr:    ":8080",
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Println("HTTP API server listening on :8080")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
