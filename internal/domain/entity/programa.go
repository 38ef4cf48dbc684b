package entity

// CentroFormacion centro de formación del SENA.
type CentroFormacion struct {
	ID     string
	Nombre string // único
}

// Programa programa de formación; pertenece a un centro.
type Programa struct {
	ID       string
	Nombre   string // único
	CentroID string
}
