package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-api/internal/infrastructure/postgres"
	"github.com/jhoicas/store-api/pkg/config"
)

// Las tablas se crean como TEMP: con una sola conexión en el pool todas las consultas
// ven el mismo esquema temporal y nada queda en la base al terminar.
const fixture = `
CREATE TEMP TABLE users (id INT PRIMARY KEY, name TEXT);
CREATE TEMP TABLE categories (category_id INT PRIMARY KEY, category_name TEXT NOT NULL);
CREATE TEMP TABLE suppliers (supplier_id INT PRIMARY KEY, supplier_name TEXT NOT NULL);
CREATE TEMP TABLE products (
	product_id   INT PRIMARY KEY,
	product_name TEXT NOT NULL,
	price        NUMERIC(10,2) NOT NULL,
	category_id  INT,
	supplier_id  INT
);
INSERT INTO users VALUES (1, 'Ana'), (2, 'Luis');
INSERT INTO categories VALUES (10, 'Electronics'), (20, 'Office');
INSERT INTO suppliers VALUES (1, 'Acme'), (2, 'Globex'), (3, 'Initech');
INSERT INTO products VALUES
	(1, 'Gaming Laptop Pro', 1299.99, 10, 1),
	(2, 'Desk Lamp',           50.00, 20, 1),
	(3, 'Stapler',            100.00, 20, 2),
	(4, 'Mystery Box',         75.50, NULL, 2),
	(5, 'laptop sleeve',      100.01, 99, 1);
`

func newIntegrationExecutor(t *testing.T) *postgres.Executor {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido; se omite la prueba de integración")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 1})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, fixture)
	require.NoError(t, err)
	return postgres.NewExecutor(pool)
}

func TestIntegration_Consultas(t *testing.T) {
	exec := newIntegrationExecutor(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(exec)
	products := postgres.NewProductRepository(exec)
	suppliers := postgres.NewSupplierRepository(exec)

	t.Run("usuario por id", func(t *testing.T) {
		row, err := users.GetByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "Luis", row["name"])

		row, err = users.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Nil(t, row, "un id no numérico es simplemente inexistente")
	})

	t.Run("rango de precio inclusivo", func(t *testing.T) {
		rows, err := products.ListByPriceRange(ctx, decimal.NewFromInt(50), decimal.NewFromInt(100))
		require.NoError(t, err)
		var names []string
		for _, r := range rows {
			names = append(names, r["product_name"].(string))
			price := r["price"].(decimal.Decimal)
			assert.True(t, price.GreaterThanOrEqual(decimal.NewFromInt(50)) && price.LessThanOrEqual(decimal.NewFromInt(100)))
		}
		assert.ElementsMatch(t, []string{"Desk Lamp", "Stapler", "Mystery Box"}, names)
	})

	t.Run("búsqueda por nombre sin distinguir mayúsculas", func(t *testing.T) {
		rows, err := products.SearchByName(ctx, "Laptop")
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("inner join excluye productos sin categoría", func(t *testing.T) {
		rows, err := products.ListWithCategory(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
		for _, r := range rows {
			assert.NotNil(t, r["category_name"])
		}
	})

	t.Run("left join incluye proveedores sin productos", func(t *testing.T) {
		rows, err := suppliers.ListWithProducts(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 6)
		last := rows[len(rows)-1]
		assert.EqualValues(t, 3, last["supplier_id"])
		assert.Nil(t, last["product_name"])
		for i := 1; i < len(rows); i++ {
			assert.LessOrEqual(t, rows[i-1]["supplier_id"].(int32), rows[i]["supplier_id"].(int32))
		}
	})
}
