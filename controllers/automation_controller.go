package controllers

import (
	"github.com/gin-gonic/gin"

	"cafeteria-yv/cart"
	"cafeteria-yv/catalog"
	"cafeteria-yv/export"
	"cafeteria-yv/views"
)

// AutomationController serves the stable JSON snapshots the external test
// harness polls. Both endpoints are read-only and safe to call at any time.
type AutomationController struct {
	Cart    *cart.Cart
	Catalog *catalog.Catalog
}

func NewAutomationController(cartModel *cart.Cart, catalogModel *catalog.Catalog) *AutomationController {
	return &AutomationController{Cart: cartModel, Catalog: catalogModel}
}

// @Summary Cart snapshot for automation
// @Description Get the cart as {items, total, count} for test automation
// @Tags Automation
// @Produce json
// @Success 200 {object} models.CartSnapshot
// @Router /automation/cart [get]
func (ctrl *AutomationController) GetCartSnapshot(c *gin.Context) {
	c.Data(200, "application/json", []byte(export.CartJSON(ctrl.Cart.Snapshot())))
}

// @Summary Menu snapshot for automation
// @Description Get the rendered product listing as [{index, name, price, hasAddButton}]
// @Tags Automation
// @Produce json
// @Success 200 {array} object
// @Router /automation/menu [get]
func (ctrl *AutomationController) GetMenuSnapshot(c *gin.Context) {
	cards := views.ProjectMenu(ctrl.Catalog.Snapshot())
	c.Data(200, "application/json", []byte(export.MenuJSON(cards)))
}
