package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cafeteria-yv/cart"
	"cafeteria-yv/catalog"
	"cafeteria-yv/models"
	"cafeteria-yv/views"
)

const menuCacheKey = "menu_view"

type MenuController struct {
	Cart    *cart.Cart
	Catalog *catalog.Catalog
}

func NewMenuController(cartModel *cart.Cart, catalogModel *catalog.Catalog) *MenuController {
	return &MenuController{Cart: cartModel, Catalog: catalogModel}
}

func invalidateMenuCache() {
	if models.RedisClient == nil {
		return
	}
	models.RedisClient.Del(context.Background(), menuCacheKey)
}

// @Summary Get menu
// @Description Get the public product listing
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, menuCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	cards := views.ProjectMenu(ctrl.Catalog.Snapshot())
	response := gin.H{"success": true, "message": "Menu retrieved", "data": cards}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, menuCacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get menu broadcast message
// @Description Get the menu formatted as a plain-text message for messaging automation
// @Tags Menu
// @Produce plain
// @Success 200 {string} string
// @Router /menu/message [get]
func (ctrl *MenuController) GetMenuMessage(c *gin.Context) {
	snap := ctrl.Catalog.Snapshot()

	var b strings.Builder
	b.WriteString("*MENÚ DE CAFETERÍA*\n\n")
	b.WriteString("Productos disponibles:\n\n")
	for _, p := range snap.Products {
		b.WriteString(fmt.Sprintf("*%s*\n", p.Name))
		b.WriteString(fmt.Sprintf("Precio: $%s\n", views.FormatAmount(p.Price)))
		b.WriteString(strings.Repeat("-", 30) + "\n\n")
	}
	b.WriteString("\nPara pedidos, contáctanos!\n")

	c.String(200, b.String())
}

// @Summary Get report
// @Description Get the consolidated dashboard: cart summary plus the full menu listing
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /report [get]
func (ctrl *MenuController) GetReport(c *gin.Context) {
	report := views.ProjectReport(ctrl.Cart.Snapshot(), ctrl.Catalog.Snapshot())
	c.JSON(200, gin.H{"success": true, "message": "Report retrieved", "data": report})
}
