package adminapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/menuboard/menuboard/internal/domain"
	"github.com/menuboard/menuboard/internal/webserver"
)

func registerExportRoutes() {
	webserver.ApiGET("/export/menu.csv", exportMenuCSV)
	webserver.ApiGET("/export/menu.xlsx", exportMenuXLSX)
}

// menuExportRow flattens food and alcohol into one sheet. Pour columns are
// blank for food rows; the price column is blank for alcohol rows.
type menuExportRow struct {
	Kind        string `csv:"kind"`
	Name        string `csv:"name"`
	Brand       string `csv:"brand"`
	Category    string `csv:"category"`
	Description string `csv:"description"`
	Price       string `csv:"price"`
	Price30ml   string `csv:"price_30ml"`
	Price60ml   string `csv:"price_60ml"`
	Price90ml   string `csv:"price_90ml"`
	Price180ml  string `csv:"price_180ml"`
	PriceBottle string `csv:"price_bottle"`
	Vegetarian  string `csv:"vegetarian"`
	Available   string `csv:"available"`
	Tags        string `csv:"tags"`
}

func fetchExportRows(c echo.Context) ([]menuExportRow, error) {
	var foods []domain.FoodItem
	if err := GetDB(c).Order("category, name").Find(&foods).Error; err != nil {
		return nil, err
	}
	var alcohols []domain.AlcoholItem
	if err := GetDB(c).Order("category, name").Find(&alcohols).Error; err != nil {
		return nil, err
	}

	rows := make([]menuExportRow, 0, len(foods)+len(alcohols))
	for _, item := range foods {
		rows = append(rows, menuExportRow{
			Kind:        "food",
			Name:        item.Name,
			Category:    item.Category,
			Description: item.Description,
			Price:       fmt.Sprintf("%.2f", item.Price),
			Vegetarian:  fmt.Sprintf("%v", item.Vegetarian),
			Available:   fmt.Sprintf("%v", item.Available),
			Tags:        item.Tags,
		})
	}
	for _, item := range alcohols {
		rows = append(rows, menuExportRow{
			Kind:        "alcohol",
			Name:        item.Name,
			Brand:       item.Brand,
			Category:    item.Category,
			Price30ml:   formatPour(item.Price30ml),
			Price60ml:   formatPour(item.Price60ml),
			Price90ml:   formatPour(item.Price90ml),
			Price180ml:  formatPour(item.Price180ml),
			PriceBottle: formatPour(item.PriceBottle),
			Available:   fmt.Sprintf("%v", item.Available),
			Tags:        item.Tags,
		})
	}
	return rows, nil
}

func formatPour(price *float64) string {
	if price == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *price)
}

func exportMenuCSV(c echo.Context) error {
	rows, err := fetchExportRows(c)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to export menu", err.Error())
	}
	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to encode CSV", err.Error())
	}
	writeAuditLog(c, "export.csv", fmt.Sprintf("exported %d menu rows to csv", len(rows)))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="menu.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}

func exportMenuXLSX(c echo.Context) error {
	rows, err := fetchExportRows(c)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to export menu", err.Error())
	}

	xlsx := excelize.NewFile()
	headers := []string{
		"kind", "name", "brand", "category", "description", "price",
		"price_30ml", "price_60ml", "price_90ml", "price_180ml",
		"price_bottle", "vegetarian", "available", "tags",
	}
	for col, header := range headers {
		xlsx.SetCellValue("Sheet1", cellAxis(col, 1), header)
	}
	for i, row := range rows {
		values := []string{
			row.Kind, row.Name, row.Brand, row.Category, row.Description,
			row.Price, row.Price30ml, row.Price60ml, row.Price90ml,
			row.Price180ml, row.PriceBottle, row.Vegetarian, row.Available,
			row.Tags,
		}
		for col, value := range values {
			xlsx.SetCellValue("Sheet1", cellAxis(col, i+2), value)
		}
	}

	var buf bytes.Buffer
	if err := xlsx.Write(&buf); err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to encode workbook", err.Error())
	}
	writeAuditLog(c, "export.xlsx", fmt.Sprintf("exported %d menu rows to xlsx", len(rows)))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="menu.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// cellAxis converts zero-based column and one-based row to an A1 axis.
func cellAxis(col, row int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return fmt.Sprintf("%s%d", name, row)
}
