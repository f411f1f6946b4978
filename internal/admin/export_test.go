package admin

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMostSoldCSV(t *testing.T) {
	items := []MostSoldItem{
		{ItemID: "P001", ItemName: "Buğday Tohumu 25kg", Category: "tohum", TotalSold: 40, Revenue: 18000, PercentageOfSales: 57.14},
		{ItemID: "P002", ItemName: "Azotlu Gübre 50kg", Category: "gübre", TotalSold: 30, Revenue: 23400, PercentageOfSales: 42.86},
	}

	data, err := buildMostSoldCSV(items)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t,
		[]string{"Item ID", "Item Name", "Category", "Total Sold", "Revenue", "Percentage of Sales"},
		records[0])
	assert.Equal(t, []string{"P001", "Buğday Tohumu 25kg", "tohum", "40", "18000.00", "57.14"}, records[1])
	assert.Equal(t, []string{"P002", "Azotlu Gübre 50kg", "gübre", "30", "23400.00", "42.86"}, records[2])
}

func TestBuildMostSoldCSV_Empty(t *testing.T) {
	data, err := buildMostSoldCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	// Boş sonuçta bile başlık satırı yazılır
	require.Len(t, records, 1)
}
