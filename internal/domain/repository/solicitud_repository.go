package repository

import "github.com/joan632/DotappSena/internal/domain/entity"

// SolicitudRepository puerto de persistencia para Solicitud.
type SolicitudRepository interface {
	Create(solicitud *entity.Solicitud) error
	GetByID(id string) (*entity.Solicitud, error)
	ListByAprendiz(aprendizID string, limit, offset int) ([]*entity.Solicitud, error)
	ListByEstado(estado string, limit, offset int) ([]*entity.Solicitud, error)
	List(limit, offset int) ([]*entity.Solicitud, error)
	Update(solicitud *entity.Solicitud) error
}

// BorradorRepository puerto de persistencia para Borrador.
type BorradorRepository interface {
	Create(borrador *entity.Borrador) error
	GetByID(id string) (*entity.Borrador, error)
	ListByAprendiz(aprendizID string) ([]*entity.Borrador, error)
	Update(borrador *entity.Borrador) error
	Delete(id string) error
}
