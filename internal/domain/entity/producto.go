package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un uniforme del inventario, definido por la combinación
// tipo + talla + color. El stock nunca baja de cero; las solicitudes lo
// reservan y lo devuelven según su estado.
type Producto struct {
	ID             string
	TipoID         string
	TipoNombre     string
	TallaID        string
	TallaNombre    string
	ColorID        string
	ColorNombre    string
	Precio         decimal.Decimal
	Stock          int
	ImagenURL      string // opcional
	AlmacenistaID  string // usuario almacenista que lo creó
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Descripcion retorna la descripción legible del producto (tipo - talla - color).
func (p *Producto) Descripcion() string {
	return p.TipoNombre + " - " + p.TallaNombre + " - " + p.ColorNombre
}
