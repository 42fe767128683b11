// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"securetrack-backend/config"
	"securetrack-backend/models"
	"securetrack-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportInvoicesExcel streams an xlsx workbook of all invoices.
func ExportInvoicesExcel(c *gin.Context) {
	var invoices []models.Invoice
	if err := config.DB.Order("invoice_date DESC").Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	f := excelize.NewFile()
	sheet := "Invoices"
	if _, err := f.NewSheet(sheet); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build workbook")
		return
	}
	f.DeleteSheet("Sheet1")

	headers := []string{"Invoice No", "Date", "Customer", "Phone", "Subtotal", "Discount", "Tax", "Total", "Paid", "Remaining", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, inv := range invoices {
		values := []interface{}{
			inv.InvoiceNumber,
			inv.InvoiceDate.Format("2006-01-02"),
			inv.CustomerName,
			inv.CustomerPhone,
			inv.Subtotal,
			inv.Discount,
			inv.Tax,
			inv.Total,
			inv.PaidAmount,
			inv.RemainingAmount,
			inv.PaymentStatus,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=invoices.xlsx")
	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write file")
	}
}

// ExportPurchasesExcel streams an xlsx workbook of all purchases with their
// shops and serial counts.
func ExportPurchasesExcel(c *gin.Context) {
	var purchases []models.PurchasedItem
	if err := config.DB.Preload("Shop").Order("purchase_date DESC").Find(&purchases).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve purchases")
		return
	}

	f := excelize.NewFile()
	sheet := "Purchases"
	if _, err := f.NewSheet(sheet); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build workbook")
		return
	}
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Shop", "Product", "Category", "Brand", "Model", "Units", "Unit Price", "Total", "Paid", "Remaining", "Serials"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, p := range purchases {
		shopName := ""
		if p.Shop != nil {
			shopName = p.Shop.ShopName
		}
		values := []interface{}{
			p.PurchaseDate.Format("2006-01-02"),
			shopName,
			p.ProductName,
			p.Category,
			p.Brand,
			p.ModelCode,
			p.Quantity,
			p.UnitPrice,
			utils.LineTotal(p.UnitPrice, p.Quantity),
			p.PaidAmount,
			p.RemainingAmount,
			fmt.Sprintf("%d", len(p.SerialNumbers)),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=purchases.xlsx")
	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write file")
	}
}
