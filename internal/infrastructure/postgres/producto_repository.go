package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	db Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(db Querier) *ProductoRepo {
	return &ProductoRepo{db: db}
}

const productoCols = `id, tipo_id, tipo_nombre, talla_id, talla_nombre, color_id, color_nombre,
	precio, stock, imagen_url, almacenista_id, created_at, updated_at`

// Create persiste un producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.TipoID, p.TipoNombre, p.TallaID, p.TallaNombre, p.ColorID, p.ColorNombre,
		p.Precio, p.Stock, p.ImagenURL, p.AlmacenistaID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return mapStoreErr("insert producto", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Retorna (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.TipoID, &p.TipoNombre, &p.TallaID, &p.TallaNombre, &p.ColorID, &p.ColorNombre,
		&p.Precio, &p.Stock, &p.ImagenURL, &p.AlmacenistaID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreErr("get producto", err)
	}
	return &p, nil
}

// List lista productos con paginación.
func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoCols + `
		FROM productos ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, mapStoreErr("list productos", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.TipoID, &p.TipoNombre, &p.TallaID, &p.TallaNombre, &p.ColorID, &p.ColorNombre,
			&p.Precio, &p.Stock, &p.ImagenURL, &p.AlmacenistaID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, mapStoreErr("scan producto", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza precio, stock e imagen.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET precio = $2, stock = $3, imagen_url = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.Precio, p.Stock, p.ImagenURL, p.UpdatedAt,
	)
	if err != nil {
		return mapStoreErr("update producto", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return mapStoreErr("delete producto", err)
	}
	return nil
}

// AjustarStock suma delta al stock de forma atómica. El guard `stock + delta >= 0`
// en el UPDATE evita stock negativo bajo concurrencia: si no afecta filas y el
// producto existe, es porque no había stock suficiente.
func (r *ProductoRepo) AjustarStock(id string, delta int) error {
	tag, err := r.db.Exec(context.Background(),
		`UPDATE productos SET stock = stock + $2, updated_at = now()
		 WHERE id = $1 AND stock + $2 >= 0`, id, delta)
	if err != nil {
		return mapStoreErr("ajustar stock", err)
	}
	if tag.RowsAffected() == 0 {
		existente, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if existente == nil {
			return domain.ErrNotFound
		}
		return domain.ErrStockInsuficiente
	}
	return nil
}
