package repository

import "github.com/joan632/DotappSena/internal/domain/entity"

// ProductoRepository puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	List(limit, offset int) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error
	// AjustarStock suma delta (puede ser negativo) al stock del producto.
	// Falla con domain.ErrStockInsuficiente si el resultado sería negativo.
	AjustarStock(id string, delta int) error
}

// CatalogoRepository puerto para los catálogos tipo/talla/color.
type CatalogoRepository interface {
	ListTipos() ([]*entity.TipoProducto, error)
	GetTipoByID(id string) (*entity.TipoProducto, error)
	CreateTipo(t *entity.TipoProducto) error
	ListTallas() ([]*entity.Talla, error)
	GetTallaByID(id string) (*entity.Talla, error)
	CreateTalla(t *entity.Talla) error
	ListColores() ([]*entity.Color, error)
	GetColorByID(id string) (*entity.Color, error)
	CreateColor(c *entity.Color) error
}
