package admin

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// mostSoldHeader: CSV/XLSX dışa aktarımının sabit başlık satırı.
// Frontend'deki indirme şablonu bu sıraya bağlı, değiştirme.
var mostSoldHeader = []string{"Item ID", "Item Name", "Category", "Total Sold", "Revenue", "Percentage of Sales"}

func mostSoldRecord(it MostSoldItem) []string {
	return []string{
		it.ItemID,
		it.ItemName,
		it.Category,
		strconv.FormatInt(it.TotalSold, 10),
		strconv.FormatFloat(it.Revenue, 'f', 2, 64),
		strconv.FormatFloat(it.PercentageOfSales, 'f', 2, 64),
	}
}

// buildMostSoldCSV: başlık + satır başına bir kayıt.
func buildMostSoldCSV(items []MostSoldItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(mostSoldHeader); err != nil {
		return nil, err
	}
	for _, it := range items {
		if err := w.Write(mostSoldRecord(it)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sendMostSoldCSV(c *fiber.Ctx, items []MostSoldItem) error {
	data, err := buildMostSoldCSV(items)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "CSV oluşturulamadı")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="most-sold-items.csv"`)
	return c.Send(data)
}

func sendMostSoldXLSX(c *fiber.Ctx, items []MostSoldItem) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Most Sold Items"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "XLSX oluşturulamadı")
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for col, h := range mostSoldHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, it := range items {
		values := []interface{}{it.ItemID, it.ItemName, it.Category, it.TotalSold, it.Revenue, it.PercentageOfSales}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "XLSX oluşturulamadı")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "most-sold-items.xlsx"))
	return c.Send(buf.Bytes())
}
