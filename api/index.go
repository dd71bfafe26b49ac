package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"cafeteria-yv/auth"
	"cafeteria-yv/cart"
	"cafeteria-yv/catalog"
	"cafeteria-yv/config"
	"cafeteria-yv/middleware"
	"cafeteria-yv/models"
	"cafeteria-yv/routes"
	"cafeteria-yv/store"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitRedis()

		dataStore := store.New(config.AppConfig.DataDir)
		cartModel := cart.New(dataStore)
		catalogModel := catalog.New(dataStore)
		catalogModel.Bootstrap(catalog.DefaultSeed)

		var provider auth.IdentityProvider
		if p := auth.NewSupabaseProvider(config.AppConfig.SupabaseURL, config.AppConfig.SupabaseAnonKey); p != nil {
			provider = p
		}
		gate := auth.NewGate(provider)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, cartModel, catalogModel, gate)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
