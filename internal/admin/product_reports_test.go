package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceRange(t *testing.T) {
	min, max, err := parsePriceRange("10", "50")
	require.NoError(t, err)
	assert.Equal(t, 10.0, min)
	assert.Equal(t, 50.0, max)

	min, max, err = parsePriceRange("10.5", "50.25")
	require.NoError(t, err)
	assert.Equal(t, 10.5, min)
	assert.Equal(t, 50.25, max)
}

func TestParsePriceRange_MinGreaterThanMax(t *testing.T) {
	// min > max doğrulama hatası değil; sorgu boş küme döndürür
	min, max, err := parsePriceRange("50", "10")
	require.NoError(t, err)
	assert.Equal(t, 50.0, min)
	assert.Equal(t, 10.0, max)
}

func TestParsePriceRange_Invalid(t *testing.T) {
	_, _, err := parsePriceRange("", "50")
	assert.Error(t, err)

	_, _, err = parsePriceRange("10", "")
	assert.Error(t, err)

	_, _, err = parsePriceRange("abc", "50")
	assert.Error(t, err)

	_, _, err = parsePriceRange("10", "xyz")
	assert.Error(t, err)

	_, _, err = parsePriceRange("-5", "50")
	assert.Error(t, err)

	// Kuyruklu girdiler sayı olarak kabul edilmemeli
	_, _, err = parsePriceRange("10abc", "50")
	assert.Error(t, err)

	_, _, err = parsePriceRange("10", "50xyz")
	assert.Error(t, err)
}
