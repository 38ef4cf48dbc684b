package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
)

var _ repository.ProgramaRepository = (*ProgramaRepo)(nil)

// ProgramaRepo implementación del puerto ProgramaRepository sobre PostgreSQL.
type ProgramaRepo struct {
	db Querier
}

// NewProgramaRepository construye el adaptador para centros y programas.
func NewProgramaRepository(db Querier) *ProgramaRepo {
	return &ProgramaRepo{db: db}
}

// CreateCentro registra un centro de formación (nombre único).
func (r *ProgramaRepo) CreateCentro(c *entity.CentroFormacion) error {
	_, err := r.db.Exec(context.Background(),
		`INSERT INTO centros_formacion (id, nombre) VALUES ($1, $2)`, c.ID, c.Nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return mapStoreErr("insert centro", err)
	}
	return nil
}

// GetCentroByID obtiene un centro. Retorna (nil, nil) si no existe.
func (r *ProgramaRepo) GetCentroByID(id string) (*entity.CentroFormacion, error) {
	var c entity.CentroFormacion
	err := r.db.QueryRow(context.Background(),
		`SELECT id, nombre FROM centros_formacion WHERE id = $1`, id).Scan(&c.ID, &c.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreErr("get centro", err)
	}
	return &c, nil
}

// ListCentros lista los centros ordenados por nombre.
func (r *ProgramaRepo) ListCentros() ([]*entity.CentroFormacion, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT id, nombre FROM centros_formacion ORDER BY nombre`)
	if err != nil {
		return nil, mapStoreErr("list centros", err)
	}
	defer rows.Close()
	var list []*entity.CentroFormacion
	for rows.Next() {
		var c entity.CentroFormacion
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, mapStoreErr("scan centro", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CreatePrograma registra un programa (nombre único, pertenece a un centro).
func (r *ProgramaRepo) CreatePrograma(p *entity.Programa) error {
	_, err := r.db.Exec(context.Background(),
		`INSERT INTO programas (id, nombre, centro_id) VALUES ($1, $2, $3)`,
		p.ID, p.Nombre, p.CentroID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return mapStoreErr("insert programa", err)
	}
	return nil
}

// GetProgramaByID obtiene un programa. Retorna (nil, nil) si no existe.
func (r *ProgramaRepo) GetProgramaByID(id string) (*entity.Programa, error) {
	var p entity.Programa
	err := r.db.QueryRow(context.Background(),
		`SELECT id, nombre, centro_id FROM programas WHERE id = $1`, id).
		Scan(&p.ID, &p.Nombre, &p.CentroID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreErr("get programa", err)
	}
	return &p, nil
}

// ListProgramas lista programas; con centroID vacío lista todos.
func (r *ProgramaRepo) ListProgramas(centroID string) ([]*entity.Programa, error) {
	query := `SELECT id, nombre, centro_id FROM programas ORDER BY nombre`
	args := []any{}
	if centroID != "" {
		query = `SELECT id, nombre, centro_id FROM programas WHERE centro_id = $1 ORDER BY nombre`
		args = append(args, centroID)
	}
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, mapStoreErr("list programas", err)
	}
	defer rows.Close()
	var list []*entity.Programa
	for rows.Next() {
		var p entity.Programa
		if err := rows.Scan(&p.ID, &p.Nombre, &p.CentroID); err != nil {
			return nil, mapStoreErr("scan programa", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
