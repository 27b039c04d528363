package entity

// Row es una fila tal como la devuelve el store: nombre de columna -> valor.
// El servicio no modela usuarios, productos, categorías ni proveedores como tipos propios;
// las filas pasan sin transformar del driver a la respuesta JSON.
type Row map[string]any

// Columnas usadas fuera de la capa SQL (reportes).
const (
	ColProductID    = "product_id"
	ColProductName  = "product_name"
	ColPrice        = "price"
	ColCategoryName = "category_name"
	ColSupplierID   = "supplier_id"
	ColSupplierName = "supplier_name"
)
