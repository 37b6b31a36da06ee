package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/models"
)

// CatalogProvider is the slice of the catalog repository the browsing
// handlers need.
type CatalogProvider interface {
	GetAllCategories() ([]models.Category, error)
	GetAllProducts() ([]models.Product, error)
	GetProductsByCategory(slug string) (*models.Category, []models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
}

// GET /
func Home(repo CatalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := repo.GetAllCategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		products, err := repo.GetAllProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"categories": categories,
			"products":   products,
		})
	}
}

// GET /category/:slug/
func CategoryView(repo CatalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		category, products, err := repo.GetProductsByCategory(slug)
		if err != nil {
			if errors.Is(err, models.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"category": category,
			"products": products,
		})
	}
}

// GET /products/:id
func GetProductByID(repo CatalogProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		product, err := repo.GetProductByID(uint(id))
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
