package entity

import "time"

// Estados del ciclo de vida de una solicitud.
const (
	SolicitudPendiente  = "pendiente"
	SolicitudAprobada   = "aprobada"
	SolicitudRechazada  = "rechazada"
	SolicitudDespachada = "despachada"
	SolicitudEntregada  = "entregada"
	SolicitudCancelada  = "cancelada"
)

// Solicitud representa una petición de uniforme de un aprendiz.
//
// Los campos *Nombre son híbridos: copian el nombre del catálogo al momento
// de crear la solicitud, de modo que la información sobrevive aunque el
// elemento de catálogo se elimine después.
type Solicitud struct {
	ID                  string
	AprendizID          string
	ProductoID          string
	Cantidad            int
	TipoNombre          string
	TallaNombre         string
	ColorNombre         string
	CentroNombre        string
	ProgramaNombre      string
	Ficha               int
	DetallesAdicionales string
	Estado              string
	FechaSolicitud      time.Time
	FechaFinalizacion   *time.Time // nil mientras la solicitud siga abierta
}

// EsTerminal indica si el estado no admite más transiciones.
func (s *Solicitud) EsTerminal() bool {
	switch s.Estado {
	case SolicitudRechazada, SolicitudEntregada, SolicitudCancelada:
		return true
	}
	return false
}
