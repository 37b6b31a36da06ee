package models

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Category{}, &Product{}, &Order{}, &OrderItem{}))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (Category, Product, Product) {
	t.Helper()
	category := Category{Name: "Things", Slug: "things"}
	require.NoError(t, db.Create(&category).Error)

	alpha := Product{
		CategoryID: category.ID,
		Name:       "Alpha",
		Slug:       "alpha",
		Price:      decimal.RequireFromString("10.00"),
	}
	beta := Product{
		CategoryID: category.ID,
		Name:       "Beta",
		Slug:       "beta",
		Price:      decimal.RequireFromString("5.00"),
	}
	require.NoError(t, db.Create(&alpha).Error)
	require.NoError(t, db.Create(&beta).Error)
	return category, alpha, beta
}

func TestCatalogRepositoryReads(t *testing.T) {
	db := openTestDB(t)
	repo := NewCatalogRepository(db)
	category, alpha, _ := seedCatalog(t, db)

	categories, err := repo.GetAllCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 1)

	products, err := repo.GetAllProducts()
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	got, listed, err := repo.GetProductsByCategory("things")
	assert.NoError(t, err)
	assert.Equal(t, category.ID, got.ID)
	assert.Len(t, listed, 2)

	_, _, err = repo.GetProductsByCategory("nope")
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	product, err := repo.GetProductByID(alpha.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alpha", product.Name)

	_, err = repo.GetProductByID(9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteCategoryCascadesToProducts(t *testing.T) {
	db := openTestDB(t)
	repo := NewCatalogRepository(db)
	category, _, _ := seedCatalog(t, db)

	require.NoError(t, repo.DeleteCategory(category.ID))

	var productCount int64
	require.NoError(t, db.Model(&Product{}).Count(&productCount).Error)
	assert.Zero(t, productCount, "deleting a category must delete its products, not orphan them")

	var categoryCount int64
	require.NoError(t, db.Model(&Category{}).Count(&categoryCount).Error)
	assert.Zero(t, categoryCount)

	assert.ErrorIs(t, repo.DeleteCategory(category.ID), ErrCategoryNotFound)
}

func TestPlaceOrder(t *testing.T) {
	db := openTestDB(t)
	_, alpha, beta := seedCatalog(t, db)
	repo := NewOrderRepository(db)

	customer := CustomerInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		Address:  "12 Analytical Way",
	}

	order, err := repo.PlaceOrder(customer, Cart{alpha.ID: 2, beta.ID: 1})
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("25.00")),
		"total was %s", order.TotalAmount)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.ItemsTotal().Equal(order.TotalAmount),
		"order total must equal the sum of item subtotals")
	assert.False(t, order.CreatedAt.IsZero())

	// Items snapshot name and price at checkout time.
	fetched, err := repo.GetOrderByID(order.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 2)
	for _, item := range fetched.Items {
		assert.NotEmpty(t, item.ProductName)
		assert.False(t, item.UnitPrice.IsZero())
	}

	var itemCount int64
	require.NoError(t, db.Model(&OrderItem{}).Count(&itemCount).Error)
	assert.EqualValues(t, 2, itemCount)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.PlaceOrder(CustomerInfo{FullName: "x"}, NewCart())
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderAbortsWhenProductVanished(t *testing.T) {
	db := openTestDB(t)
	_, alpha, _ := seedCatalog(t, db)
	repo := NewOrderRepository(db)

	// Cart references a product that no longer exists.
	cart := Cart{alpha.ID: 1, 9999: 2}

	_, err := repo.PlaceOrder(CustomerInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		Address:  "12 Analytical Way",
	}, cart)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// The whole checkout rolls back: no order, no partial items.
	var orderCount, itemCount int64
	require.NoError(t, db.Model(&Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestOrderSurvivesProductDeletion(t *testing.T) {
	db := openTestDB(t)
	_, alpha, beta := seedCatalog(t, db)
	catalog := NewCatalogRepository(db)
	repo := NewOrderRepository(db)

	order, err := repo.PlaceOrder(CustomerInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		Address:  "12 Analytical Way",
	}, Cart{alpha.ID: 1, beta.ID: 1})
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(alpha.ID))

	fetched, err := repo.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Items, 2, "order history must survive product deletion")
	assert.True(t, fetched.TotalAmount.Equal(decimal.RequireFromString("15.00")))
}

func TestGetOrderByIDNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.GetOrderByID(123)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
