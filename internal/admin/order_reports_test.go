package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearParam(t *testing.T) {
	// Parametre verilmezse varsayılan yıl
	year, err := parseYearParam("")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)

	year, err = parseYearParam("2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
}

func TestParseYearParam_Invalid(t *testing.T) {
	// "2024x" gibi kuyruklu girdiler de tam sayı olarak kabul edilmemeli
	for _, s := range []string{"abc", "20x5", "2024x", "2024 ", "1800", "3000", "-2024"} {
		_, err := parseYearParam(s)
		assert.Error(t, err, "reddedilmeliydi: %q", s)
	}
}
