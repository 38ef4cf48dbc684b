package usecase

import (
	"github.com/google/uuid"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
)

// CatalogoUseCase administra los catálogos de tipos, tallas y colores.
type CatalogoUseCase struct {
	catalogo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(catalogo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{catalogo: catalogo}
}

// ListTipos lista los tipos de producto.
func (uc *CatalogoUseCase) ListTipos() ([]*dto.CatalogoItemResponse, error) {
	tipos, err := uc.catalogo.ListTipos()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoItemResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, &dto.CatalogoItemResponse{ID: t.ID, Nombre: t.Nombre})
	}
	return out, nil
}

// CrearTipo registra un nuevo tipo de producto.
func (uc *CatalogoUseCase) CrearTipo(in dto.CatalogoItemRequest) (*dto.CatalogoItemResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	t := &entity.TipoProducto{ID: uuid.New().String(), Nombre: in.Nombre}
	if err := uc.catalogo.CreateTipo(t); err != nil {
		return nil, err
	}
	return &dto.CatalogoItemResponse{ID: t.ID, Nombre: t.Nombre}, nil
}

// ListTallas lista las tallas.
func (uc *CatalogoUseCase) ListTallas() ([]*dto.CatalogoItemResponse, error) {
	tallas, err := uc.catalogo.ListTallas()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoItemResponse, 0, len(tallas))
	for _, t := range tallas {
		out = append(out, &dto.CatalogoItemResponse{ID: t.ID, Nombre: t.Nombre})
	}
	return out, nil
}

// CrearTalla registra una nueva talla.
func (uc *CatalogoUseCase) CrearTalla(in dto.CatalogoItemRequest) (*dto.CatalogoItemResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	t := &entity.Talla{ID: uuid.New().String(), Nombre: in.Nombre}
	if err := uc.catalogo.CreateTalla(t); err != nil {
		return nil, err
	}
	return &dto.CatalogoItemResponse{ID: t.ID, Nombre: t.Nombre}, nil
}

// ListColores lista los colores.
func (uc *CatalogoUseCase) ListColores() ([]*dto.CatalogoItemResponse, error) {
	colores, err := uc.catalogo.ListColores()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoItemResponse, 0, len(colores))
	for _, c := range colores {
		out = append(out, &dto.CatalogoItemResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}

// CrearColor registra un nuevo color.
func (uc *CatalogoUseCase) CrearColor(in dto.CatalogoItemRequest) (*dto.CatalogoItemResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	c := &entity.Color{ID: uuid.New().String(), Nombre: in.Nombre}
	if err := uc.catalogo.CreateColor(c); err != nil {
		return nil, err
	}
	return &dto.CatalogoItemResponse{ID: c.ID, Nombre: c.Nombre}, nil
}
