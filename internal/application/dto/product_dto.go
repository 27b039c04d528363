package dto

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidPriceRange minPrice o maxPrice ausente o no numérico.
var ErrInvalidPriceRange = errors.New("minPrice and maxPrice must be valid numbers")

// PriceRangeQuery parámetros de GET /api/products/search.
type PriceRangeQuery struct {
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
}

// Bounds convierte ambos extremos a decimal. Se aceptan enteros, decimales y notación
// exponencial ("50", "49.99", "1e2"); cualquier otro valor, o un extremo vacío, es inválido.
func (q PriceRangeQuery) Bounds() (min, max decimal.Decimal, err error) {
	min, err = parsePrice(q.MinPrice)
	if err != nil {
		return decimal.Zero, decimal.Zero, ErrInvalidPriceRange
	}
	max, err = parsePrice(q.MaxPrice)
	if err != nil {
		return decimal.Zero, decimal.Zero, ErrInvalidPriceRange
	}
	return min, max, nil
}

// Límites de NUMERIC en PostgreSQL: hasta 131072 dígitos antes del punto decimal y
// hasta 16383 después.
const (
	maxNumericIntDigits = 131072
	maxNumericScale     = 16383
)

func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrInvalidPriceRange
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	// Un exponente fuera de rango ("1e-100000000") no cabe en NUMERIC y su codificación
	// binaria ocuparía la única conexión durante minutos.
	exp := int64(d.Exponent())
	if exp < -maxNumericScale || exp+int64(d.NumDigits()) > maxNumericIntDigits {
		return decimal.Zero, ErrInvalidPriceRange
	}
	return d, nil
}

// NameQuery parámetros de GET /api/products/find.
type NameQuery struct {
	Name string `query:"name"`
}
