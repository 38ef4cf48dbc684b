package dto

// CreateCentroRequest entrada para crear un centro de formación.
type CreateCentroRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=255"`
}

// CentroResponse centro de formación.
type CentroResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// CreateProgramaRequest entrada para crear un programa de formación.
type CreateProgramaRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=255"`
	CentroID string `json:"centro_id" validate:"required"`
}

// ProgramaResponse programa de formación con su centro.
type ProgramaResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	CentroID string `json:"centro_id"`
}
