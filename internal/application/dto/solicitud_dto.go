package dto

import "time"

// CreateSolicitudRequest entrada para que un aprendiz cree una solicitud.
type CreateSolicitudRequest struct {
	ProductoID          string `json:"producto_id" validate:"required"`
	Cantidad            int    `json:"cantidad" validate:"required,min=1"`
	CentroID            string `json:"centro_id" validate:"required"`
	ProgramaID          string `json:"programa_id" validate:"required"`
	Ficha               int    `json:"ficha" validate:"required,min=1"`
	DetallesAdicionales string `json:"detalles_adicionales"`
}

// SolicitudResponse salida de una solicitud.
type SolicitudResponse struct {
	ID                  string     `json:"id"`
	AprendizID          string     `json:"aprendiz_id"`
	ProductoID          string     `json:"producto_id"`
	Cantidad            int        `json:"cantidad"`
	Tipo                string     `json:"tipo"`
	Talla               string     `json:"talla"`
	Color               string     `json:"color"`
	Centro              string     `json:"centro"`
	Programa            string     `json:"programa"`
	Ficha               int        `json:"ficha"`
	DetallesAdicionales string     `json:"detalles_adicionales,omitempty"`
	Estado              string     `json:"estado"`
	FechaSolicitud      time.Time  `json:"fecha_solicitud"`
	FechaFinalizacion   *time.Time `json:"fecha_finalizacion,omitempty"`
}

// BorradorRequest entrada para guardar o actualizar un borrador de solicitud.
type BorradorRequest struct {
	Tipo       string `json:"tipo"`
	Talla      string `json:"talla"`
	Color      string `json:"color"`
	Cantidad   int    `json:"cantidad" validate:"min=0"`
	CentroID   string `json:"centro_id"`
	ProgramaID string `json:"programa_id"`
	Ficha      int    `json:"ficha" validate:"min=0"`
	Detalles   string `json:"detalles"`
}

// BorradorResponse salida de un borrador.
type BorradorResponse struct {
	ID         string    `json:"id"`
	Tipo       string    `json:"tipo,omitempty"`
	Talla      string    `json:"talla,omitempty"`
	Color      string    `json:"color,omitempty"`
	Cantidad   int       `json:"cantidad"`
	CentroID   string    `json:"centro_id,omitempty"`
	ProgramaID string    `json:"programa_id,omitempty"`
	Ficha      int       `json:"ficha,omitempty"`
	Detalles   string    `json:"detalles,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
