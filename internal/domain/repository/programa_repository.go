package repository

import "github.com/joan632/DotappSena/internal/domain/entity"

// ProgramaRepository puerto para centros de formación y sus programas.
type ProgramaRepository interface {
	CreateCentro(centro *entity.CentroFormacion) error
	GetCentroByID(id string) (*entity.CentroFormacion, error)
	ListCentros() ([]*entity.CentroFormacion, error)
	CreatePrograma(programa *entity.Programa) error
	GetProgramaByID(id string) (*entity.Programa, error)
	ListProgramas(centroID string) ([]*entity.Programa, error)
}
