package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cafeteria-yv/auth"
	"cafeteria-yv/cart"
	"cafeteria-yv/catalog"
	"cafeteria-yv/controllers"
	"cafeteria-yv/middleware"
)

func SetupRoutes(router *gin.Engine, cartModel *cart.Cart, catalogModel *catalog.Catalog, gate *auth.Gate) {
	cartCtrl := controllers.NewCartController(cartModel)
	menuCtrl := controllers.NewMenuController(cartModel, catalogModel)
	adminCtrl := controllers.NewAdminController(catalogModel, gate)
	automationCtrl := controllers.NewAutomationController(cartModel, catalogModel)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/message", menuCtrl.GetMenuMessage)
	router.GET("/report", menuCtrl.GetReport)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.DELETE("/cart/items/:index", cartCtrl.RemoveItem)

	router.GET("/automation/cart", automationCtrl.GetCartSnapshot)
	router.GET("/automation/menu", automationCtrl.GetMenuSnapshot)

	router.POST("/admin/enter", adminCtrl.Enter)
	router.POST("/admin/login", adminCtrl.Login)
	router.POST("/admin/logout", adminCtrl.Logout)

	admin := router.Group("/admin")
	admin.Use(middleware.GateMiddleware(gate))
	{
		admin.GET("/products", adminCtrl.GetProducts)
		admin.POST("/products", adminCtrl.CreateProduct)
		admin.PATCH("/products/:id", adminCtrl.UpdateProduct)
		admin.DELETE("/products/:id", adminCtrl.DeleteProduct)

		admin.GET("/categories", adminCtrl.GetCategories)
		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.DELETE("/categories/:index", adminCtrl.DeleteCategory)
	}
}
