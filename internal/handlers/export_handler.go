package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"storefront-service/internal/models"
)

const exportSheetName = "Products"

type exportColumn struct {
	Name  string
	Width float64
	Value func(p *models.ProductView) interface{}
}

var exportColumns = []exportColumn{
	{Name: "SKU", Width: 18, Value: func(p *models.ProductView) interface{} { return p.SKU }},
	{Name: "Name (EN)", Width: 32, Value: func(p *models.ProductView) interface{} { return p.NameEn }},
	{Name: "Name (AR)", Width: 32, Value: func(p *models.ProductView) interface{} { return p.NameAr }},
	{Name: "Vendor", Width: 18, Value: func(p *models.ProductView) interface{} { return p.Vendor }},
	{Name: "Gender", Width: 10, Value: func(p *models.ProductView) interface{} { return string(p.Gender) }},
	{Name: "Type", Width: 16, Value: func(p *models.ProductView) interface{} { return p.Type }},
	{Name: "Base Price", Width: 12, Value: func(p *models.ProductView) interface{} { return p.BasePrice }},
	{Name: "Discount %", Width: 12, Value: func(p *models.ProductView) interface{} { return p.DiscountPercentage }},
	{Name: "Final Price", Width: 12, Value: func(p *models.ProductView) interface{} { return p.FinalPrice }},
	{Name: "Total Stock", Width: 12, Value: func(p *models.ProductView) interface{} { return p.TotalStock }},
	{Name: "Availability", Width: 14, Value: func(p *models.ProductView) interface{} { return string(p.Availability) }},
	{Name: "Colors", Width: 24, Value: func(p *models.ProductView) interface{} { return strings.Join(p.Colors, ", ") }},
	{Name: "Sizes", Width: 24, Value: func(p *models.ProductView) interface{} { return strings.Join(p.Sizes, ", ") }},
	{Name: "Views", Width: 10, Value: func(p *models.ProductView) interface{} { return p.ViewCount }},
	{Name: "Category", Width: 20, Value: func(p *models.ProductView) interface{} { return ancestorName(p.Category) }},
	{Name: "Sub-category", Width: 20, Value: func(p *models.ProductView) interface{} { return ancestorName(p.SubCategory) }},
	{Name: "Product List", Width: 20, Value: func(p *models.ProductView) interface{} { return ancestorName(p.ProductList) }},
	{Name: "Created At", Width: 22, Value: func(p *models.ProductView) interface{} { return p.CreatedAt.Format(time.RFC3339) }},
}

// ExportProducts downloads the filtered listing as an Excel workbook
// @Summary Export storefront products
// @Description Accepts the listing filters; pagination is ignored
// @Tags products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Router /storefront/products/export [get]
func (h *CatalogHandler) ExportProducts(c *gin.Context) {
	req, err := parseListRequest(c)
	if err != nil {
		h.handleError(c, err, "Failed to export products")
		return
	}

	products, err := h.service.ExportProducts(c.Request.Context(), req, h.exportMaxRows)
	if err != nil {
		h.handleError(c, err, "Failed to export products")
		return
	}

	f, err := buildProductWorkbook(products)
	if err != nil {
		h.handleError(c, err, "Failed to export products")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("products_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	if err := f.Write(c.Writer); err != nil {
		h.logger.WithError(err).Error("Failed to write export workbook")
	}
}

// buildProductWorkbook writes one row per product under a styled header row
func buildProductWorkbook(products []models.ProductView) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetCellValue(exportSheetName, cell, col.Name); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(exportSheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetColWidth(exportSheetName, colName, colName, col.Width); err != nil {
			f.Close()
			return nil, err
		}
	}

	for row := range products {
		for i, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(i+1, row+2)
			if err := f.SetCellValue(exportSheetName, cell, col.Value(&products[row])); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	err = f.SetPanes(exportSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func ancestorName(ref *models.AncestorRef) string {
	if ref == nil {
		return ""
	}
	return ref.NameEn
}
