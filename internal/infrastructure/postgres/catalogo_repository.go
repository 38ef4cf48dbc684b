package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo implementación del puerto CatalogoRepository sobre PostgreSQL.
// Las tres tablas (tipos_producto, tallas, colores) comparten forma: id + nombre único.
type CatalogoRepo struct {
	db Querier
}

// NewCatalogoRepository construye el adaptador de catálogos.
func NewCatalogoRepository(db Querier) *CatalogoRepo {
	return &CatalogoRepo{db: db}
}

func (r *CatalogoRepo) crear(tabla, id, nombre string) error {
	_, err := r.db.Exec(context.Background(),
		`INSERT INTO `+tabla+` (id, nombre) VALUES ($1, $2)`, id, nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return mapStoreErr("insert "+tabla, err)
	}
	return nil
}

func (r *CatalogoRepo) porID(tabla, id string) (string, string, error) {
	var outID, nombre string
	err := r.db.QueryRow(context.Background(),
		`SELECT id, nombre FROM `+tabla+` WHERE id = $1`, id).Scan(&outID, &nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", nil
		}
		return "", "", mapStoreErr("get "+tabla, err)
	}
	return outID, nombre, nil
}

func (r *CatalogoRepo) listar(tabla string) ([][2]string, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT id, nombre FROM `+tabla+` ORDER BY nombre`)
	if err != nil {
		return nil, mapStoreErr("list "+tabla, err)
	}
	defer rows.Close()
	var out [][2]string
	for rows.Next() {
		var id, nombre string
		if err := rows.Scan(&id, &nombre); err != nil {
			return nil, mapStoreErr("scan "+tabla, err)
		}
		out = append(out, [2]string{id, nombre})
	}
	return out, rows.Err()
}

// ListTipos lista los tipos de producto ordenados por nombre.
func (r *CatalogoRepo) ListTipos() ([]*entity.TipoProducto, error) {
	filas, err := r.listar("tipos_producto")
	if err != nil {
		return nil, err
	}
	out := make([]*entity.TipoProducto, 0, len(filas))
	for _, f := range filas {
		out = append(out, &entity.TipoProducto{ID: f[0], Nombre: f[1]})
	}
	return out, nil
}

// GetTipoByID obtiene un tipo. Retorna (nil, nil) si no existe.
func (r *CatalogoRepo) GetTipoByID(id string) (*entity.TipoProducto, error) {
	outID, nombre, err := r.porID("tipos_producto", id)
	if err != nil || outID == "" {
		return nil, err
	}
	return &entity.TipoProducto{ID: outID, Nombre: nombre}, nil
}

// CreateTipo registra un tipo de producto.
func (r *CatalogoRepo) CreateTipo(t *entity.TipoProducto) error {
	return r.crear("tipos_producto", t.ID, t.Nombre)
}

// ListTallas lista las tallas ordenadas por nombre.
func (r *CatalogoRepo) ListTallas() ([]*entity.Talla, error) {
	filas, err := r.listar("tallas")
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Talla, 0, len(filas))
	for _, f := range filas {
		out = append(out, &entity.Talla{ID: f[0], Nombre: f[1]})
	}
	return out, nil
}

// GetTallaByID obtiene una talla. Retorna (nil, nil) si no existe.
func (r *CatalogoRepo) GetTallaByID(id string) (*entity.Talla, error) {
	outID, nombre, err := r.porID("tallas", id)
	if err != nil || outID == "" {
		return nil, err
	}
	return &entity.Talla{ID: outID, Nombre: nombre}, nil
}

// CreateTalla registra una talla.
func (r *CatalogoRepo) CreateTalla(t *entity.Talla) error {
	return r.crear("tallas", t.ID, t.Nombre)
}

// ListColores lista los colores ordenados por nombre.
func (r *CatalogoRepo) ListColores() ([]*entity.Color, error) {
	filas, err := r.listar("colores")
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Color, 0, len(filas))
	for _, f := range filas {
		out = append(out, &entity.Color{ID: f[0], Nombre: f[1]})
	}
	return out, nil
}

// GetColorByID obtiene un color. Retorna (nil, nil) si no existe.
func (r *CatalogoRepo) GetColorByID(id string) (*entity.Color, error) {
	outID, nombre, err := r.porID("colores", id)
	if err != nil || outID == "" {
		return nil, err
	}
	return &entity.Color{ID: outID, Nombre: nombre}, nil
}

// CreateColor registra un color.
func (r *CatalogoRepo) CreateColor(c *entity.Color) error {
	return r.crear("colores", c.ID, c.Nombre)
}
