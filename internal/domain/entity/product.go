package entity

import "time"

// ProductStatus estado derivado de un producto según su cantidad.
type ProductStatus string

const (
	StatusInStock    ProductStatus = "in_stock"
	StatusLowStock   ProductStatus = "low_stock"
	StatusOutOfStock ProductStatus = "out_of_stock"
	// StatusPending nunca lo asigna la regla de derivación; queda reservado
	// para marcado manual o flujos futuros.
	StatusPending ProductStatus = "pending"
)

// Product representa un producto del inventario local.
// Status siempre es consistente con Quantity según DeriveStatus; nunca se asigna por fuera de esa regla.
// ImageURL puede ser vacío, una ruta de archivo o un data URL base64.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Code        string        `json:"code"`
	Description string        `json:"description"`
	Status      ProductStatus `json:"status"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Quantity    int           `json:"quantity"`
	Category    string        `json:"category"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// DeriveStatus calcula el estado a partir de la cantidad.
// Regla: 0 -> OutOfStock; 1..10 -> LowStock (el límite 10 inclusive); >10 -> InStock.
func DeriveStatus(quantity int) ProductStatus {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= 10:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
