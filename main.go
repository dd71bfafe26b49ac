package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"cafeteria-yv/auth"
	"cafeteria-yv/cart"
	"cafeteria-yv/catalog"
	"cafeteria-yv/config"
	_ "cafeteria-yv/docs"
	"cafeteria-yv/middleware"
	"cafeteria-yv/models"
	"cafeteria-yv/routes"
	"cafeteria-yv/store"
)

// @title Cafetería Y&V API
// @version 1.0
// @description Device-local storefront service: cart, menu catalog, admin panel, and automation snapshots.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	dataStore := store.New(config.AppConfig.DataDir)

	cartModel := cart.New(dataStore)
	catalogModel := catalog.New(dataStore)
	catalogModel.Bootstrap(catalog.DefaultSeed)

	gate := auth.NewGate(buildIdentityProvider())

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, cartModel, catalogModel, gate)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildIdentityProvider picks the configured identity collaborator: the
// remote one when Supabase credentials are set, the bundled local one when an
// admin account is configured, otherwise none (offline mode, gate opens
// unconditionally).
func buildIdentityProvider() auth.IdentityProvider {
	cfg := config.AppConfig

	if p := auth.NewSupabaseProvider(cfg.SupabaseURL, cfg.SupabaseAnonKey); p != nil {
		log.Println("Identity provider: supabase")
		return p
	}
	if p := auth.NewLocalProvider(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiry); p != nil {
		log.Println("Identity provider: local admin account")
		return p
	}
	log.Println("Identity provider: none (offline mode)")
	return nil
}
