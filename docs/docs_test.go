package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	Info struct {
		Title   string `json:"title"`
		Version string `json:"version"`
	} `json:"info"`
	Paths map[string]json.RawMessage `json:"paths"`
}

func TestReadDoc_Registrado(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), "la plantilla debe renderizar JSON válido")
	assert.Equal(t, "Store API", doc.Info.Title)
	assert.Equal(t, SwaggerInfo.Version, doc.Info.Version)

	for _, p := range []string{
		"/users", "/user/{id}", "/products", "/products/{id}", "/categories", "/suppliers",
		"/api/products", "/api/products/search", "/api/products/find", "/api/products/details",
		"/api/suppliers/products",
	} {
		assert.Contains(t, doc.Paths, p)
	}
}

// swagger.json es el archivo que sirve /docs; debe describir las mismas rutas.
func TestSwaggerJSON_CoincideConPlantilla(t *testing.T) {
	b, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	var file swaggerDoc
	require.NoError(t, json.Unmarshal(b, &file))

	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	var tmpl swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &tmpl))

	assert.Len(t, file.Paths, len(tmpl.Paths))
	for p := range tmpl.Paths {
		assert.Contains(t, file.Paths, p)
	}
}
