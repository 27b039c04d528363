package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-api/internal/domain/entity"
)

func TestGenerateProductDetailsPDF(t *testing.T) {
	g := NewMarotoReportGenerator("Catálogo store-api")
	g.now = func() time.Time { return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC) }

	rows := []entity.Row{
		{"product_id": int32(1), "product_name": "Gaming Laptop Pro", "price": decimal.RequireFromString("1299.99"), "category_name": "Electronics"},
		{"product_id": int32(2), "product_name": "Desk Lamp", "price": decimal.NewFromInt(50), "category_name": "Office"},
	}

	out, err := g.GenerateProductDetailsPDF(context.Background(), rows)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un documento PDF")
}

func TestGenerateProductDetailsPDF_SinFilas(t *testing.T) {
	out, err := NewMarotoReportGenerator("Catálogo").GenerateProductDetailsPDF(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestCell(t *testing.T) {
	assert.Equal(t, "—", cell(nil))
	assert.Equal(t, "50.00", cell(decimal.NewFromInt(50)))
	assert.Equal(t, "1299.99", cell(decimal.RequireFromString("1299.99")))
	assert.Equal(t, "Office", cell("Office"))
	assert.Equal(t, "raw", cell([]byte("raw")))
	assert.Equal(t, "42", cell(int32(42)))
}
