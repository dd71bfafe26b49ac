package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"cafeteria-yv/cart"
	"cafeteria-yv/models"
	"cafeteria-yv/views"
)

type CartController struct {
	Cart *cart.Cart
}

func NewCartController(c *cart.Cart) *CartController {
	return &CartController{Cart: c}
}

// @Summary Get cart
// @Description Get the current cart panel view
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	view := views.ProjectCart(ctrl.Cart.Snapshot())
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": view})
}

// @Summary Add item to cart
// @Description Add a product to the cart by name and displayed price text. Repeated adds of the same name increment the quantity.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	// Unparsable or non-positive prices leave the cart untouched; the
	// response still carries the current view.
	ctrl.Cart.Add(req.Name, req.PriceText)

	view := views.ProjectCart(ctrl.Cart.Snapshot())
	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": view})
}

// @Summary Remove item from cart
// @Description Remove the cart line at the given position. Out-of-range positions are ignored.
// @Tags Cart
// @Produce json
// @Param index path int true "Line position"
// @Success 200 {object} models.Response
// @Router /cart/items/{index} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid index"})
		return
	}

	ctrl.Cart.Remove(index)

	view := views.ProjectCart(ctrl.Cart.Snapshot())
	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": view})
}
