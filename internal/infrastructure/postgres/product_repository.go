package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q RowQuerier
}

// NewProductRepository construye el adaptador de lectura para productos.
func NewProductRepository(q RowQuerier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve todas las filas de products.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Row, error) {
	rows, err := r.q.Query(ctx, `SELECT * FROM products`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return rows, nil
}

// GetByID obtiene un producto por product_id (comparado como texto, ver UserRepo.GetByID).
func (r *ProductRepo) GetByID(ctx context.Context, id string) (entity.Row, error) {
	rows, err := r.q.Query(ctx, `SELECT * FROM products WHERE product_id::text = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return first(rows), nil
}

// ListByPriceRange filtra por price BETWEEN min AND max (ambos extremos incluidos).
func (r *ProductRepo) ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]entity.Row, error) {
	rows, err := r.q.Query(ctx, `SELECT * FROM products WHERE price BETWEEN $1 AND $2`, min, max)
	if err != nil {
		return nil, fmt.Errorf("list products by price range: %w", err)
	}
	return rows, nil
}

// SearchByName busca name como subcadena literal de product_name, sin distinguir mayúsculas.
func (r *ProductRepo) SearchByName(ctx context.Context, name string) ([]entity.Row, error) {
	rows, err := r.q.Query(ctx,
		`SELECT * FROM products WHERE LOWER(product_name) LIKE $1 ESCAPE '\'`,
		containsPattern(name),
	)
	if err != nil {
		return nil, fmt.Errorf("search products by name: %w", err)
	}
	return rows, nil
}

// ListWithCategory une productos con su categoría (INNER JOIN): productos sin categoría
// o con category_id huérfano quedan fuera.
func (r *ProductRepo) ListWithCategory(ctx context.Context) ([]entity.Row, error) {
	const query = `
	SELECT p.product_id, p.product_name, p.price, c.category_name
	FROM products p
	INNER JOIN categories c ON p.category_id = c.category_id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products with category: %w", err)
	}
	return rows, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern arma el patrón LIKE '%name%' en minúsculas. Los comodines que traiga
// el usuario se escapan para que cuenten como caracteres literales. Los bytes que no son
// UTF-8 válido se sustituyen por U+FFFD: el store rechaza texto mal codificado.
func containsPattern(name string) string {
	name = strings.ToValidUTF8(name, "\uFFFD")
	lower := cases.Lower(language.Und).String(name)
	return "%" + likeEscaper.Replace(lower) + "%"
}

// first devuelve la primera fila o nil si no hay ninguna.
func first(rows []entity.Row) entity.Row {
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}
