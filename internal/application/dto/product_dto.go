package dto

import (
	"time"

	"github.com/jhoicas/ScanInventario-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
// El código puede venir digitado o de un escaneo; no se exige único.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Code        string `json:"code" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	Category    string `json:"category" validate:"max=100"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateProductRequest actualización parcial: los campos nil no se tocan.
// No admite estado: el estado solo se deriva de la cantidad.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Code        *string `json:"code" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Quantity    *int    `json:"quantity" validate:"omitempty,gte=0"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	ImageURL    *string `json:"imageUrl"`
}

// ProductResponse salida de un producto (mismos nombres de campo que el formato persistido).
type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Code        string               `json:"code"`
	Description string               `json:"description"`
	Status      entity.ProductStatus `json:"status"`
	ImageURL    string               `json:"imageUrl,omitempty"`
	Quantity    int                  `json:"quantity"`
	Category    string               `json:"category"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// StatsResponse contadores por estado para la pantalla de listado.
type StatsResponse struct {
	Total      int `json:"total"`
	InStock    int `json:"inStock"`
	LowStock   int `json:"lowStock"`
	OutOfStock int `json:"outOfStock"`
	Pending    int `json:"pending"`
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		Status:      p.Status,
		ImageURL:    p.ImageURL,
		Quantity:    p.Quantity,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses convierte una lista de entidades.
func ToProductResponses(list []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}
