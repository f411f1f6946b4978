// Package report: rapor endpoint'lerinin ortak satır dönüştürme yardımcıları.
// Sürücü decimal kolonları bazen string döndürdüğü için sayısal zorlama
// tek yerden yapılır; yüzde ve tarih biçimlendirme de burada.
package report

import (
	"math"
	"strconv"
	"time"
)

// ToFloat64: sürücüden gelen sayısal değeri float64'e zorlar.
// Desteklenmeyen tiplerde 0 döner.
func ToFloat64(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case string:
		f, _ := strconv.ParseFloat(x, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(x), 64)
		return f
	}
	return 0
}

// ToInt64: ToFloat64'ün tam sayı karşılığı.
func ToInt64(v interface{}) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case float64:
		return int64(x)
	case string:
		n, _ := strconv.ParseInt(x, 10, 64)
		return n
	case []byte:
		n, _ := strconv.ParseInt(string(x), 10, 64)
		return n
	}
	return 0
}

// ToString: sürücüden gelen metin değerini string'e zorlar.
func ToString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	}
	return ""
}

// FormatDate: rapor çıktılarındaki ortak tarih biçimi (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// Round2: iki ondalığa yuvarlar (yüzde alanları için).
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// PercentageOf: part'ın total içindeki payı, iki ondalık.
// total 0 ise 0 döner.
func PercentageOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round2(part / total * 100)
}
