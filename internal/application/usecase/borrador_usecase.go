package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
)

// BorradorUseCase maneja los borradores de solicitud de un aprendiz: permiten
// guardar una solicitud incompleta y retomarla después.
type BorradorUseCase struct {
	borradores repository.BorradorRepository
}

// NewBorradorUseCase construye el caso de uso.
func NewBorradorUseCase(borradores repository.BorradorRepository) *BorradorUseCase {
	return &BorradorUseCase{borradores: borradores}
}

// Guardar crea un borrador para el aprendiz.
func (uc *BorradorUseCase) Guardar(aprendizID string, in dto.BorradorRequest) (*dto.BorradorResponse, error) {
	now := time.Now()
	b := &entity.Borrador{
		ID:         uuid.New().String(),
		AprendizID: aprendizID,
		Tipo:       in.Tipo,
		Talla:      in.Talla,
		Color:      in.Color,
		Cantidad:   in.Cantidad,
		CentroID:   in.CentroID,
		ProgramaID: in.ProgramaID,
		Ficha:      in.Ficha,
		Detalles:   in.Detalles,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.borradores.Create(b); err != nil {
		return nil, err
	}
	return toBorradorResponse(b), nil
}

// Actualizar modifica un borrador existente. Solo el dueño puede tocarlo.
func (uc *BorradorUseCase) Actualizar(aprendizID, id string, in dto.BorradorRequest) (*dto.BorradorResponse, error) {
	b, err := uc.propio(aprendizID, id)
	if err != nil {
		return nil, err
	}
	b.Tipo = in.Tipo
	b.Talla = in.Talla
	b.Color = in.Color
	b.Cantidad = in.Cantidad
	b.CentroID = in.CentroID
	b.ProgramaID = in.ProgramaID
	b.Ficha = in.Ficha
	b.Detalles = in.Detalles
	b.UpdatedAt = time.Now()
	if err := uc.borradores.Update(b); err != nil {
		return nil, err
	}
	return toBorradorResponse(b), nil
}

// List lista los borradores del aprendiz.
func (uc *BorradorUseCase) List(aprendizID string) ([]*dto.BorradorResponse, error) {
	list, err := uc.borradores.ListByAprendiz(aprendizID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BorradorResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBorradorResponse(b))
	}
	return out, nil
}

// Eliminar borra un borrador del aprendiz.
func (uc *BorradorUseCase) Eliminar(aprendizID, id string) error {
	if _, err := uc.propio(aprendizID, id); err != nil {
		return err
	}
	return uc.borradores.Delete(id)
}

func (uc *BorradorUseCase) propio(aprendizID, id string) (*entity.Borrador, error) {
	b, err := uc.borradores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if b.AprendizID != aprendizID {
		return nil, domain.ErrForbidden
	}
	return b, nil
}

func toBorradorResponse(b *entity.Borrador) *dto.BorradorResponse {
	return &dto.BorradorResponse{
		ID:         b.ID,
		Tipo:       b.Tipo,
		Talla:      b.Talla,
		Color:      b.Color,
		Cantidad:   b.Cantidad,
		CentroID:   b.CentroID,
		ProgramaID: b.ProgramaID,
		Ficha:      b.Ficha,
		Detalles:   b.Detalles,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
