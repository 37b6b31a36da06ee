package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storely/storefront-api/models"
)

type mockOrders struct {
	orders []models.Order
	err    error
}

func (m *mockOrders) GetAllOrders() ([]models.Order, error) {
	return m.orders, m.err
}

func (m *mockOrders) GetOrderByID(id uint) (*models.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, o := range m.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, models.ErrOrderNotFound
}

func newRouter(repo OrderProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/orders", GetAllOrders(repo))
	r.GET("/admin/orders/export", ExportOrdersToExcel(repo))
	r.GET("/admin/orders/:orderID", GetOrderByID(repo))
	return r
}

func sampleOrders() []models.Order {
	return []models.Order{
		{
			ID:          1,
			FullName:    "Ada Lovelace",
			Email:       "ada@example.com",
			Phone:       "555-0100",
			Address:     "12 Analytical Way",
			TotalAmount: decimal.RequireFromString("25.00"),
			Items: []models.OrderItem{
				{OrderID: 1, ProductName: "Alpha", UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
				{OrderID: 1, ProductName: "Beta", UnitPrice: decimal.RequireFromString("5.00"), Quantity: 1},
			},
			CreatedAt: time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC),
		},
	}
}

func TestGetAllOrders(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	newRouter(&mockOrders{orders: sampleOrders()}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Len(t, resp[0].Items, 2)
}

func TestGetOrderByID(t *testing.T) {
	testCases := []struct {
		name               string
		url                string
		expectedStatusCode int
	}{
		{name: "found", url: "/admin/orders/1", expectedStatusCode: http.StatusOK},
		{name: "not found", url: "/admin/orders/99", expectedStatusCode: http.StatusNotFound},
		{name: "invalid id", url: "/admin/orders/abc", expectedStatusCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			newRouter(&mockOrders{orders: sampleOrders()}).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}

func TestExportOrdersToExcel(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders/export", nil)
	newRouter(&mockOrders{orders: sampleOrders()}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=orders.xlsx", rec.Header().Get("Content-Disposition"))
	assert.NotZero(t, rec.Body.Len())
}
