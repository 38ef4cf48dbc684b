package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
	"github.com/joan632/DotappSena/pkg/logger"
)

// SolicitudUseCase maneja el ciclo de vida de las solicitudes de uniforme:
// pendiente → aprobada → despachada → entregada, con rechazo y cancelación.
// La reserva de stock al crear y la devolución al rechazar/cancelar corren en
// la misma transacción que el cambio de estado.
type SolicitudUseCase struct {
	tx          TxRunner
	solicitudes repository.SolicitudRepository
	productos   repository.ProductoRepository
	programas   repository.ProgramaRepository
	log         *logger.Logger
}

// NewSolicitudUseCase construye el caso de uso.
func NewSolicitudUseCase(
	tx TxRunner,
	solicitudes repository.SolicitudRepository,
	productos repository.ProductoRepository,
	programas repository.ProgramaRepository,
	log *logger.Logger,
) *SolicitudUseCase {
	return &SolicitudUseCase{
		tx:          tx,
		solicitudes: solicitudes,
		productos:   productos,
		programas:   programas,
		log:         log,
	}
}

// Crear registra una solicitud de un aprendiz y reserva el stock del producto
// en la misma transacción. Copia los nombres del catálogo a la solicitud para
// que sobrevivan aunque el catálogo cambie después.
func (uc *SolicitudUseCase) Crear(ctx context.Context, aprendizID string, in dto.CreateSolicitudRequest) (*dto.SolicitudResponse, error) {
	if in.Cantidad < 1 {
		return nil, domain.ErrEntradaInvalida
	}
	centro, err := uc.programas.GetCentroByID(in.CentroID)
	if err != nil {
		return nil, err
	}
	programa, err := uc.programas.GetProgramaByID(in.ProgramaID)
	if err != nil {
		return nil, err
	}
	if centro == nil || programa == nil || programa.CentroID != centro.ID {
		return nil, domain.ErrEntradaInvalida
	}

	var creada *entity.Solicitud
	err = uc.tx.Run(ctx, func(solicitudes repository.SolicitudRepository, productos repository.ProductoRepository) error {
		producto, err := productos.GetByID(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		if err := productos.AjustarStock(producto.ID, -in.Cantidad); err != nil {
			return err
		}
		s := &entity.Solicitud{
			ID:                  uuid.New().String(),
			AprendizID:          aprendizID,
			ProductoID:          producto.ID,
			Cantidad:            in.Cantidad,
			TipoNombre:          producto.TipoNombre,
			TallaNombre:         producto.TallaNombre,
			ColorNombre:         producto.ColorNombre,
			CentroNombre:        centro.Nombre,
			ProgramaNombre:      programa.Nombre,
			Ficha:               in.Ficha,
			DetallesAdicionales: in.DetallesAdicionales,
			Estado:              entity.SolicitudPendiente,
			FechaSolicitud:      time.Now(),
		}
		if err := solicitudes.Create(s); err != nil {
			return err
		}
		creada = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("solicitud_id", creada.ID).Str("aprendiz_id", aprendizID).
		Int("cantidad", creada.Cantidad).Msg("solicitud creada")
	return toSolicitudResponse(creada), nil
}

// Aprobar pasa una solicitud pendiente a aprobada (almacenista).
func (uc *SolicitudUseCase) Aprobar(ctx context.Context, id string) (*dto.SolicitudResponse, error) {
	return uc.transicionSimple(ctx, id, entity.SolicitudPendiente, entity.SolicitudAprobada)
}

// Despachar pasa una solicitud aprobada a despachada (despachador).
func (uc *SolicitudUseCase) Despachar(ctx context.Context, id string) (*dto.SolicitudResponse, error) {
	return uc.transicionSimple(ctx, id, entity.SolicitudAprobada, entity.SolicitudDespachada)
}

// Entregar pasa una solicitud despachada a entregada (despachador).
func (uc *SolicitudUseCase) Entregar(ctx context.Context, id string) (*dto.SolicitudResponse, error) {
	return uc.transicionSimple(ctx, id, entity.SolicitudDespachada, entity.SolicitudEntregada)
}

// Rechazar pasa una solicitud pendiente a rechazada y devuelve el stock
// reservado al inventario, todo en una transacción.
func (uc *SolicitudUseCase) Rechazar(ctx context.Context, id string) (*dto.SolicitudResponse, error) {
	return uc.cerrarDevolviendoStock(ctx, id, "", entity.SolicitudRechazada)
}

// Cancelar permite al aprendiz dueño cancelar su solicitud pendiente,
// devolviendo el stock. Falla con domain.ErrForbidden si la solicitud es de
// otro aprendiz.
func (uc *SolicitudUseCase) Cancelar(ctx context.Context, id, aprendizID string) (*dto.SolicitudResponse, error) {
	return uc.cerrarDevolviendoStock(ctx, id, aprendizID, entity.SolicitudCancelada)
}

// GetByID obtiene una solicitud.
func (uc *SolicitudUseCase) GetByID(id string) (*dto.SolicitudResponse, error) {
	s, err := uc.solicitudes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSolicitudResponse(s), nil
}

// ListByAprendiz lista las solicitudes propias de un aprendiz.
func (uc *SolicitudUseCase) ListByAprendiz(aprendizID string, page dto.PageRequest) ([]*dto.SolicitudResponse, error) {
	page.DefaultPage()
	list, err := uc.solicitudes.ListByAprendiz(aprendizID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toSolicitudResponses(list), nil
}

// List lista solicitudes, opcionalmente filtradas por estado (vistas de
// almacenista y despachador).
func (uc *SolicitudUseCase) List(estado string, page dto.PageRequest) ([]*dto.SolicitudResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Solicitud
		err  error
	)
	if estado != "" {
		list, err = uc.solicitudes.ListByEstado(estado, page.Limit, page.Offset)
	} else {
		list, err = uc.solicitudes.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	return toSolicitudResponses(list), nil
}

// transicionSimple cambia de estado sin tocar stock, fijando la fecha de
// finalización en los estados que cierran etapas.
func (uc *SolicitudUseCase) transicionSimple(ctx context.Context, id, desde, hacia string) (*dto.SolicitudResponse, error) {
	var out *entity.Solicitud
	err := uc.tx.Run(ctx, func(solicitudes repository.SolicitudRepository, _ repository.ProductoRepository) error {
		s, err := solicitudes.GetByID(id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if s.Estado != desde {
			return domain.ErrEstadoSolicitud
		}
		s.Estado = hacia
		now := time.Now()
		s.FechaFinalizacion = &now
		if err := solicitudes.Update(s); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("solicitud_id", out.ID).Str("estado", out.Estado).Msg("solicitud actualizada")
	return toSolicitudResponse(out), nil
}

// cerrarDevolviendoStock rechaza o cancela una solicitud pendiente y devuelve
// la cantidad reservada al inventario en la misma transacción.
func (uc *SolicitudUseCase) cerrarDevolviendoStock(ctx context.Context, id, aprendizID, estadoFinal string) (*dto.SolicitudResponse, error) {
	var out *entity.Solicitud
	err := uc.tx.Run(ctx, func(solicitudes repository.SolicitudRepository, productos repository.ProductoRepository) error {
		s, err := solicitudes.GetByID(id)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if aprendizID != "" && s.AprendizID != aprendizID {
			return domain.ErrForbidden
		}
		if s.Estado != entity.SolicitudPendiente {
			return domain.ErrEstadoSolicitud
		}
		if err := productos.AjustarStock(s.ProductoID, s.Cantidad); err != nil {
			return err
		}
		s.Estado = estadoFinal
		now := time.Now()
		s.FechaFinalizacion = &now
		if err := solicitudes.Update(s); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("solicitud_id", out.ID).Str("estado", out.Estado).Msg("solicitud cerrada con devolución de stock")
	return toSolicitudResponse(out), nil
}

func toSolicitudResponse(s *entity.Solicitud) *dto.SolicitudResponse {
	if s == nil {
		return nil
	}
	return &dto.SolicitudResponse{
		ID:                  s.ID,
		AprendizID:          s.AprendizID,
		ProductoID:          s.ProductoID,
		Cantidad:            s.Cantidad,
		Tipo:                s.TipoNombre,
		Talla:               s.TallaNombre,
		Color:               s.ColorNombre,
		Centro:              s.CentroNombre,
		Programa:            s.ProgramaNombre,
		Ficha:               s.Ficha,
		DetallesAdicionales: s.DetallesAdicionales,
		Estado:              s.Estado,
		FechaSolicitud:      s.FechaSolicitud,
		FechaFinalizacion:   s.FechaFinalizacion,
	}
}

func toSolicitudResponses(list []*entity.Solicitud) []*dto.SolicitudResponse {
	out := make([]*dto.SolicitudResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSolicitudResponse(s))
	}
	return out
}
