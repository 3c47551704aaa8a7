package catalog_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/catalog"
	"github.com/jhoicas/menu-api/internal/domain"
)

func TestParsePrice_Validos(t *testing.T) {
	cases := map[string]string{
		"100":    "100",
		"0":      "0",
		" 12.5 ": "12.5",
		"12,50":  "12.5",
		"300.00": "300",
		"007,05": "7.05",
		"9999999999.99": "9999999999.99",
	}
	for in, want := range cases {
		got, err := catalog.ParsePrice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}
}

func TestParsePrice_Invalidos(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "-1", "-0.01", "1.234", "1e3x", "1,000.50", "10000000000", "12.", ".5", "+5", "1e5000000", "1e-20000000"} {
		_, err := catalog.ParsePrice(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%q debe rechazarse", in)
	}
}

func TestParsePrice_RechazaNotacionCientificaSinCalcular(t *testing.T) {
	for _, in := range []string{"1e5000000", "1e20000000", "1e-20000000", "1E5", "2.5e1", strings.Repeat("9", 5000)} {
		start := time.Now()
		_, err := catalog.ParsePrice(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%q debe rechazarse", in)
		assert.Less(t, time.Since(start), 100*time.Millisecond, "%.20q tardó demasiado", in)
	}
}
