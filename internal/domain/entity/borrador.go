package entity

import "time"

// Borrador solicitud incompleta guardada por un aprendiz para retomarla
// después. Los campos de catálogo se guardan como texto libre.
type Borrador struct {
	ID          string
	AprendizID  string
	Tipo        string
	Talla       string
	Color       string
	Cantidad    int
	CentroID    string
	ProgramaID  string
	Ficha       int
	Detalles    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
