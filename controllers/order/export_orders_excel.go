package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /admin/orders/export
//
// One row per line item so quantities and unit prices stay visible; order
// fields repeat on each of the order's rows.
func ExportOrdersToExcel(repo OrderProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repo.GetAllOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "FullName", "Email", "Phone", "Address",
			"Product", "UnitPrice", "Quantity", "Subtotal",
			"OrderTotal", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			for _, item := range o.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(o.FullName)
				row.AddCell().SetValue(o.Email)
				row.AddCell().SetValue(o.Phone)
				row.AddCell().SetValue(o.Address)
				row.AddCell().SetValue(item.ProductName)
				row.AddCell().SetValue(item.UnitPrice.StringFixed(2))
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.Subtotal().StringFixed(2))
				row.AddCell().SetValue(o.TotalAmount.StringFixed(2))
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
