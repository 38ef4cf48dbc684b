package entity

// TipoProducto tipo de prenda del catálogo (camiseta, pantalón, chaqueta...).
type TipoProducto struct {
	ID     string
	Nombre string // único
}

// Talla talla disponible (S, M, L, XL...).
type Talla struct {
	ID     string
	Nombre string // único
}

// Color color disponible para los productos.
type Color struct {
	ID     string
	Nombre string // único
}
