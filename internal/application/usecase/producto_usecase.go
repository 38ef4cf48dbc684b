package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos del inventario.
type ProductoUseCase struct {
	productos repository.ProductoRepository
	catalogo  repository.CatalogoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productos repository.ProductoRepository, catalogo repository.CatalogoRepository) *ProductoUseCase {
	return &ProductoUseCase{productos: productos, catalogo: catalogo}
}

// Crear crea un producto resolviendo tipo/talla/color contra el catálogo y
// copiando sus nombres (el producto conserva la descripción aunque el
// catálogo cambie). El almacenista que lo crea queda registrado.
func (uc *ProductoUseCase) Crear(almacenistaID string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Precio.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	tipo, err := uc.catalogo.GetTipoByID(in.TipoID)
	if err != nil {
		return nil, err
	}
	talla, err := uc.catalogo.GetTallaByID(in.TallaID)
	if err != nil {
		return nil, err
	}
	color, err := uc.catalogo.GetColorByID(in.ColorID)
	if err != nil {
		return nil, err
	}
	if tipo == nil || talla == nil || color == nil {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:            uuid.New().String(),
		TipoID:        tipo.ID,
		TipoNombre:    tipo.Nombre,
		TallaID:       talla.ID,
		TallaNombre:   talla.Nombre,
		ColorID:       color.ID,
		ColorNombre:   color.Nombre,
		Precio:        in.Precio,
		Stock:         in.Stock,
		ImagenURL:     in.ImagenURL,
		AlmacenistaID: almacenistaID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productos.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// List lista productos con paginación.
func (uc *ProductoUseCase) List(page dto.PageRequest) ([]*dto.ProductoResponse, error) {
	page.DefaultPage()
	list, err := uc.productos.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// Actualizar modifica precio, stock e imagen de un producto.
func (uc *ProductoUseCase) Actualizar(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Precio.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	producto, err := uc.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	producto.Precio = in.Precio
	producto.Stock = in.Stock
	producto.ImagenURL = in.ImagenURL
	producto.UpdatedAt = time.Now()
	if err := uc.productos.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Eliminar borra un producto del inventario.
func (uc *ProductoUseCase) Eliminar(id string) error {
	producto, err := uc.productos.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.productos.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:          p.ID,
		Tipo:        p.TipoNombre,
		Talla:       p.TallaNombre,
		Color:       p.ColorNombre,
		Descripcion: p.Descripcion(),
		Precio:      p.Precio,
		Stock:       p.Stock,
		ImagenURL:   p.ImagenURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
