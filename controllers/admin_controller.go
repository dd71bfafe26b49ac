package controllers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cafeteria-yv/auth"
	"cafeteria-yv/catalog"
	"cafeteria-yv/libs"
	"cafeteria-yv/models"
	"cafeteria-yv/views"
)

type AdminController struct {
	Catalog *catalog.Catalog
	Gate    *auth.Gate
}

func NewAdminController(catalogModel *catalog.Catalog, gate *auth.Gate) *AdminController {
	return &AdminController{Catalog: catalogModel, Gate: gate}
}

// @Summary Enter admin panel
// @Description Attempt to open the admin panel. Unlocks directly when an authenticated session exists or no identity provider is configured.
// @Tags Admin
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/enter [post]
func (ctrl *AdminController) Enter(c *gin.Context) {
	unlocked := ctrl.Gate.Enter(c.Request.Context())
	message := "Credentials required"
	if unlocked {
		message = "Admin panel unlocked"
	}
	c.JSON(200, gin.H{"success": true, "message": message, "data": gin.H{"unlocked": unlocked}})
}

// @Summary Admin login
// @Description Submit admin credentials to the identity provider
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/login [post]
func (ctrl *AdminController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.Gate.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, auth.ErrSignInPending) {
			c.JSON(409, gin.H{"success": false, "message": err.Error()})
			return
		}
		// Provider errors are surfaced verbatim; the gate stays locked.
		c.JSON(401, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Admin panel unlocked", "data": gin.H{"unlocked": true}})
}

// @Summary Admin logout
// @Description Sign out and lock the admin panel
// @Tags Admin
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/logout [post]
func (ctrl *AdminController) Logout(c *gin.Context) {
	ctrl.Gate.Logout(c.Request.Context())
	c.JSON(200, gin.H{"success": true, "message": "Signed out"})
}

// @Summary Get admin tables
// @Description Get the admin product table
// @Tags Admin - Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/products [get]
func (ctrl *AdminController) GetProducts(c *gin.Context) {
	view := views.ProjectAdmin(ctrl.Catalog.Snapshot())
	c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": view.Products})
}

// @Summary Create product
// @Description Create a new product. The id is assigned as max(existing)+1.
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param price formData int true "Unit price"
// @Param category formData string false "Category name"
// @Param image_ref formData string false "Image reference"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	price, _ := strconv.Atoi(c.PostForm("price"))
	category := strings.TrimSpace(c.PostForm("category"))
	imageRef := strings.TrimSpace(c.PostForm("image_ref"))

	if uploaded, ok := ctrl.saveUploadedImage(c); ok {
		imageRef = uploaded
	}

	if !ctrl.Catalog.UpsertProduct(0, name, price, category, imageRef) {
		c.JSON(400, gin.H{"success": false, "message": "Name and a positive price are required"})
		return
	}

	invalidateMenuCache()
	c.JSON(201, gin.H{"success": true, "message": "Product created successfully"})
}

// @Summary Update product
// @Description Update an existing product in place by id
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param name formData string true "Product name"
// @Param price formData int true "Unit price"
// @Param category formData string false "Category name"
// @Param image_ref formData string false "Image reference"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *AdminController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	price, _ := strconv.Atoi(c.PostForm("price"))
	category := strings.TrimSpace(c.PostForm("category"))
	imageRef := strings.TrimSpace(c.PostForm("image_ref"))

	if uploaded, ok := ctrl.saveUploadedImage(c); ok {
		imageRef = uploaded
	}

	if !ctrl.Catalog.UpsertProduct(id, name, price, category, imageRef) {
		c.JSON(404, gin.H{"success": false, "message": "Product not found or invalid data"})
		return
	}

	invalidateMenuCache()
	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully"})
}

// @Summary Delete product
// @Description Delete a product by id
// @Tags Admin - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if !ctrl.Catalog.DeleteProduct(id) {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	invalidateMenuCache()
	c.JSON(200, gin.H{"success": true, "message": "Product deleted successfully"})
}

// @Summary Get categories
// @Description Get the category list. Index 0 is the non-deletable default.
// @Tags Admin - Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/categories [get]
func (ctrl *AdminController) GetCategories(c *gin.Context) {
	view := views.ProjectAdmin(ctrl.Catalog.Snapshot())
	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": view.Categories})
}

// @Summary Create category
// @Description Add a category. Duplicate or empty names are rejected.
// @Tags Admin - Categories
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Category name"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories [post]
func (ctrl *AdminController) CreateCategory(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))

	if !ctrl.Catalog.AddCategory(name) {
		c.JSON(400, gin.H{"success": false, "message": "Category name is empty or already exists"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Category created successfully"})
}

// @Summary Delete category
// @Description Delete the category at the given index. Products in it move to the default category. Index 0 cannot be deleted.
// @Tags Admin - Categories
// @Produce json
// @Param index path int true "Category index"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories/{index} [delete]
func (ctrl *AdminController) DeleteCategory(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category index"})
		return
	}

	if index == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Default category cannot be deleted"})
		return
	}

	if !ctrl.Catalog.DeleteCategory(index) {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	invalidateMenuCache()
	c.JSON(200, gin.H{"success": true, "message": "Category deleted successfully"})
}

// saveUploadedImage stores an optional multipart image locally and pushes it
// to Cloudinary, returning the hosted URL.
func (ctrl *AdminController) saveUploadedImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", false
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowedExts := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
	if !allowedExts[ext] || file.Size > 5*1024*1024 {
		return "", false
	}

	tmpDir := os.TempDir()
	localPath := filepath.Join(tmpDir, fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return "", false
	}

	url, err := libs.UploadProductImage(localPath)
	if err != nil {
		return "", false
	}
	return url, true
}
