package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto del inventario.
type CreateProductoRequest struct {
	TipoID    string          `json:"tipo_id" validate:"required"`
	TallaID   string          `json:"talla_id" validate:"required"`
	ColorID   string          `json:"color_id" validate:"required"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock" validate:"min=0"`
	ImagenURL string          `json:"imagen_url"`
}

// UpdateProductoRequest entrada para actualizar precio/stock/imagen.
type UpdateProductoRequest struct {
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock" validate:"min=0"`
	ImagenURL string          `json:"imagen_url"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Talla       string          `json:"talla"`
	Color       string          `json:"color"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	ImagenURL   string          `json:"imagen_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CatalogoItemRequest entrada para crear un elemento de catálogo (tipo, talla o color).
type CatalogoItemRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

// CatalogoItemResponse elemento de catálogo.
type CatalogoItemResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
