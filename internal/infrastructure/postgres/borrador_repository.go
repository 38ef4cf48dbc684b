package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
)

var _ repository.BorradorRepository = (*BorradorRepo)(nil)

// BorradorRepo implementación del puerto BorradorRepository sobre PostgreSQL.
type BorradorRepo struct {
	db Querier
}

// NewBorradorRepository construye el adaptador de persistencia para borradores.
func NewBorradorRepository(db Querier) *BorradorRepo {
	return &BorradorRepo{db: db}
}

const borradorCols = `id, aprendiz_id, tipo, talla, color, cantidad, centro_id,
	programa_id, ficha, detalles, created_at, updated_at`

// Create persiste un borrador.
func (r *BorradorRepo) Create(b *entity.Borrador) error {
	query := `
		INSERT INTO borradores (` + borradorCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		b.ID, b.AprendizID, b.Tipo, b.Talla, b.Color, b.Cantidad, b.CentroID,
		b.ProgramaID, b.Ficha, b.Detalles, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return mapStoreErr("insert borrador", err)
	}
	return nil
}

// GetByID obtiene un borrador. Retorna (nil, nil) si no existe.
func (r *BorradorRepo) GetByID(id string) (*entity.Borrador, error) {
	query := `SELECT ` + borradorCols + ` FROM borradores WHERE id = $1`
	var b entity.Borrador
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.AprendizID, &b.Tipo, &b.Talla, &b.Color, &b.Cantidad, &b.CentroID,
		&b.ProgramaID, &b.Ficha, &b.Detalles, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreErr("get borrador", err)
	}
	return &b, nil
}

// ListByAprendiz lista los borradores de un aprendiz, recientes primero.
func (r *BorradorRepo) ListByAprendiz(aprendizID string) ([]*entity.Borrador, error) {
	query := `
		SELECT ` + borradorCols + `
		FROM borradores WHERE aprendiz_id = $1 ORDER BY updated_at DESC`
	rows, err := r.db.Query(context.Background(), query, aprendizID)
	if err != nil {
		return nil, mapStoreErr("list borradores", err)
	}
	defer rows.Close()
	var list []*entity.Borrador
	for rows.Next() {
		var b entity.Borrador
		if err := rows.Scan(
			&b.ID, &b.AprendizID, &b.Tipo, &b.Talla, &b.Color, &b.Cantidad, &b.CentroID,
			&b.ProgramaID, &b.Ficha, &b.Detalles, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, mapStoreErr("scan borrador", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza el contenido de un borrador.
func (r *BorradorRepo) Update(b *entity.Borrador) error {
	query := `
		UPDATE borradores
		SET tipo = $2, talla = $3, color = $4, cantidad = $5, centro_id = $6,
		    programa_id = $7, ficha = $8, detalles = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		b.ID, b.Tipo, b.Talla, b.Color, b.Cantidad, b.CentroID,
		b.ProgramaID, b.Ficha, b.Detalles, b.UpdatedAt,
	)
	if err != nil {
		return mapStoreErr("update borrador", err)
	}
	return nil
}

// Delete elimina un borrador.
func (r *BorradorRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM borradores WHERE id = $1`, id)
	if err != nil {
		return mapStoreErr("delete borrador", err)
	}
	return nil
}
