package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeCropSales(t *testing.T) {
	// Sürücü SUM kolonlarını numeric için string, COUNT için int64 döndürür
	rows := []map[string]interface{}{
		{
			"crop_id":        "CR001",
			"crop_type":      "buğday",
			"total_quantity": int64(80),
			"total_revenue":  "680.50",
		},
		{
			"crop_id":        []byte("CR002"),
			"crop_type":      []byte("mısır"),
			"total_quantity": "25",
			"total_revenue":  312.5,
		},
	}

	resp := shapeCropSales(rows)

	assert.Len(t, resp, 2)
	assert.Equal(t, "CR001", resp[0].CropID)
	assert.Equal(t, "buğday", resp[0].CropType)
	assert.Equal(t, int64(80), resp[0].TotalQuantity)
	assert.Equal(t, 680.5, resp[0].TotalRevenue)
	assert.Equal(t, "CR002", resp[1].CropID)
	assert.Equal(t, int64(25), resp[1].TotalQuantity)
	assert.Equal(t, 312.5, resp[1].TotalRevenue)
}

func TestShapeCropSales_Empty(t *testing.T) {
	assert.Empty(t, shapeCropSales(nil))
}

func TestApplySalesPercentages(t *testing.T) {
	items := applySalesPercentages([]MostSoldItem{
		{ItemID: "P001", TotalSold: 40},
		{ItemID: "P002", TotalSold: 30},
		{ItemID: "P003", TotalSold: 20},
		{ItemID: "P004", TotalSold: 10},
	})

	var sum float64
	for _, it := range items {
		sum += it.PercentageOfSales
	}
	// Yuvarlama payıyla birlikte yüzdeler 100'e toplanmalı
	assert.InDelta(t, 100.0, sum, 0.1)
	assert.Equal(t, 40.0, items[0].PercentageOfSales)
	assert.Equal(t, 10.0, items[3].PercentageOfSales)
}

func TestApplySalesPercentages_UnevenSplit(t *testing.T) {
	items := applySalesPercentages([]MostSoldItem{
		{TotalSold: 1},
		{TotalSold: 1},
		{TotalSold: 1},
	})

	var sum float64
	for _, it := range items {
		sum += it.PercentageOfSales
	}
	assert.InDelta(t, 100.0, sum, 0.1)
}

func TestApplySalesPercentages_Empty(t *testing.T) {
	assert.Empty(t, applySalesPercentages(nil))
	// Tek satır tüm payı alır
	one := applySalesPercentages([]MostSoldItem{{TotalSold: 7}})
	assert.Equal(t, 100.0, one[0].PercentageOfSales)
}
