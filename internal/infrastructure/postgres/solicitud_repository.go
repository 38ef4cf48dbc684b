package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
)

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementación del puerto SolicitudRepository sobre PostgreSQL.
type SolicitudRepo struct {
	db Querier
}

// NewSolicitudRepository construye el adaptador de persistencia para solicitudes.
func NewSolicitudRepository(db Querier) *SolicitudRepo {
	return &SolicitudRepo{db: db}
}

const solicitudCols = `id, aprendiz_id, producto_id, cantidad, tipo_nombre, talla_nombre,
	color_nombre, centro_nombre, programa_nombre, ficha, detalles_adicionales,
	estado, fecha_solicitud, fecha_finalizacion`

// Create persiste una solicitud.
func (r *SolicitudRepo) Create(s *entity.Solicitud) error {
	query := `
		INSERT INTO solicitudes (` + solicitudCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.AprendizID, s.ProductoID, s.Cantidad, s.TipoNombre, s.TallaNombre,
		s.ColorNombre, s.CentroNombre, s.ProgramaNombre, s.Ficha, s.DetallesAdicionales,
		s.Estado, s.FechaSolicitud, s.FechaFinalizacion,
	)
	if err != nil {
		return mapStoreErr("insert solicitud", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID. Retorna (nil, nil) si no existe.
func (r *SolicitudRepo) GetByID(id string) (*entity.Solicitud, error) {
	query := `SELECT ` + solicitudCols + ` FROM solicitudes WHERE id = $1`
	var s entity.Solicitud
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.AprendizID, &s.ProductoID, &s.Cantidad, &s.TipoNombre, &s.TallaNombre,
		&s.ColorNombre, &s.CentroNombre, &s.ProgramaNombre, &s.Ficha, &s.DetallesAdicionales,
		&s.Estado, &s.FechaSolicitud, &s.FechaFinalizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreErr("get solicitud", err)
	}
	return &s, nil
}

// ListByAprendiz lista las solicitudes de un aprendiz, recientes primero.
func (r *SolicitudRepo) ListByAprendiz(aprendizID string, limit, offset int) ([]*entity.Solicitud, error) {
	query := `
		SELECT ` + solicitudCols + `
		FROM solicitudes WHERE aprendiz_id = $1
		ORDER BY fecha_solicitud DESC LIMIT $2 OFFSET $3`
	return r.listar(query, aprendizID, limit, offset)
}

// ListByEstado lista solicitudes por estado.
func (r *SolicitudRepo) ListByEstado(estado string, limit, offset int) ([]*entity.Solicitud, error) {
	query := `
		SELECT ` + solicitudCols + `
		FROM solicitudes WHERE estado = $1
		ORDER BY fecha_solicitud DESC LIMIT $2 OFFSET $3`
	return r.listar(query, estado, limit, offset)
}

// List lista todas las solicitudes.
func (r *SolicitudRepo) List(limit, offset int) ([]*entity.Solicitud, error) {
	query := `
		SELECT ` + solicitudCols + `
		FROM solicitudes ORDER BY fecha_solicitud DESC LIMIT $1 OFFSET $2`
	return r.listar(query, limit, offset)
}

func (r *SolicitudRepo) listar(query string, args ...any) ([]*entity.Solicitud, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, mapStoreErr("list solicitudes", err)
	}
	defer rows.Close()
	var list []*entity.Solicitud
	for rows.Next() {
		var s entity.Solicitud
		if err := rows.Scan(
			&s.ID, &s.AprendizID, &s.ProductoID, &s.Cantidad, &s.TipoNombre, &s.TallaNombre,
			&s.ColorNombre, &s.CentroNombre, &s.ProgramaNombre, &s.Ficha, &s.DetallesAdicionales,
			&s.Estado, &s.FechaSolicitud, &s.FechaFinalizacion,
		); err != nil {
			return nil, mapStoreErr("scan solicitud", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza estado y fecha de finalización.
func (r *SolicitudRepo) Update(s *entity.Solicitud) error {
	query := `
		UPDATE solicitudes SET estado = $2, fecha_finalizacion = $3, detalles_adicionales = $4
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.Estado, s.FechaFinalizacion, s.DetallesAdicionales,
	)
	if err != nil {
		return mapStoreErr("update solicitud", err)
	}
	return nil
}
