package usecase

import (
	"github.com/google/uuid"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
)

// ProgramaUseCase administra centros de formación y programas.
type ProgramaUseCase struct {
	programas repository.ProgramaRepository
}

// NewProgramaUseCase construye el caso de uso.
func NewProgramaUseCase(programas repository.ProgramaRepository) *ProgramaUseCase {
	return &ProgramaUseCase{programas: programas}
}

// CrearCentro registra un centro de formación.
func (uc *ProgramaUseCase) CrearCentro(in dto.CreateCentroRequest) (*dto.CentroResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	centro := &entity.CentroFormacion{ID: uuid.New().String(), Nombre: in.Nombre}
	if err := uc.programas.CreateCentro(centro); err != nil {
		return nil, err
	}
	return &dto.CentroResponse{ID: centro.ID, Nombre: centro.Nombre}, nil
}

// ListCentros lista los centros de formación.
func (uc *ProgramaUseCase) ListCentros() ([]*dto.CentroResponse, error) {
	centros, err := uc.programas.ListCentros()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CentroResponse, 0, len(centros))
	for _, c := range centros {
		out = append(out, &dto.CentroResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}

// CrearPrograma registra un programa perteneciente a un centro existente.
func (uc *ProgramaUseCase) CrearPrograma(in dto.CreateProgramaRequest) (*dto.ProgramaResponse, error) {
	if in.Nombre == "" || in.CentroID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	centro, err := uc.programas.GetCentroByID(in.CentroID)
	if err != nil {
		return nil, err
	}
	if centro == nil {
		return nil, domain.ErrNotFound
	}
	programa := &entity.Programa{ID: uuid.New().String(), Nombre: in.Nombre, CentroID: centro.ID}
	if err := uc.programas.CreatePrograma(programa); err != nil {
		return nil, err
	}
	return &dto.ProgramaResponse{ID: programa.ID, Nombre: programa.Nombre, CentroID: programa.CentroID}, nil
}

// ListProgramas lista programas, opcionalmente filtrados por centro.
func (uc *ProgramaUseCase) ListProgramas(centroID string) ([]*dto.ProgramaResponse, error) {
	programas, err := uc.programas.ListProgramas(centroID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProgramaResponse, 0, len(programas))
	for _, p := range programas {
		out = append(out, &dto.ProgramaResponse{ID: p.ID, Nombre: p.Nombre, CentroID: p.CentroID})
	}
	return out, nil
}
