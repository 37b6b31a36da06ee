package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category slug or id is unknown.
var ErrCategoryNotFound = errors.New("category not found")

// ErrProductNotFound is returned when a product id is unknown.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository serves catalog reads and the admin writes. Reads have no
// side effects; the store is seeded through the admin endpoints.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.Order("name").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) GetCategoryBySlug(slug string) (*Category, error) {
	var category Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetProductsByCategory lists the products of the category identified by
// slug. An unknown slug fails with ErrCategoryNotFound rather than returning
// an empty list.
func (r *CatalogRepository) GetProductsByCategory(slug string) (*Category, []Product, error) {
	category, err := r.GetCategoryBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	var products []Product
	if err := r.db.Where("category_id = ?", category.ID).Order("name").Find(&products).Error; err != nil {
		return nil, nil, err
	}
	return category, products, nil
}

func (r *CatalogRepository) GetProductByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepository) CreateCategory(category *Category) error {
	return r.db.Create(category).Error
}

// DeleteCategory removes the category and all of its products in one
// transaction. The cascade is explicit so it behaves the same on every
// backend regardless of how the foreign keys were migrated.
func (r *CatalogRepository) DeleteCategory(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

func (r *CatalogRepository) CreateProduct(product *Product) error {
	return r.db.Create(product).Error
}

func (r *CatalogRepository) DeleteProduct(id uint) error {
	result := r.db.Delete(&Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
