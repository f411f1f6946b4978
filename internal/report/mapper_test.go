package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	// Sürücü decimal kolonları string döndürebilir
	assert.Equal(t, 12.5, ToFloat64("12.5"))
	assert.Equal(t, 12.5, ToFloat64([]byte("12.5")))
	assert.Equal(t, 12.5, ToFloat64(12.5))
	assert.Equal(t, 12.0, ToFloat64(int64(12)))
	assert.Equal(t, 12.0, ToFloat64(12))
	assert.Equal(t, 0.0, ToFloat64("abc"))
	assert.Equal(t, 0.0, ToFloat64(nil))
}

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(42), ToInt64("42"))
	assert.Equal(t, int64(42), ToInt64([]byte("42")))
	assert.Equal(t, int64(42), ToInt64(int64(42)))
	assert.Equal(t, int64(42), ToInt64(42))
	assert.Equal(t, int64(42), ToInt64(42.9))
	assert.Equal(t, int64(0), ToInt64("x"))
	assert.Equal(t, int64(0), ToInt64(nil))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "CR001", ToString("CR001"))
	assert.Equal(t, "CR001", ToString([]byte("CR001")))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "", ToString(42))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 18, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-18", FormatDate(d))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(33.333333))
	assert.Equal(t, 66.67, Round2(66.666666))
	assert.Equal(t, 0.0, Round2(0))
}

func TestPercentageOf(t *testing.T) {
	assert.Equal(t, 25.0, PercentageOf(1, 4))
	assert.Equal(t, 33.33, PercentageOf(1, 3))
	// Sıfır toplamda bölme hatası yerine 0
	assert.Equal(t, 0.0, PercentageOf(5, 0))
}
