package usecase

import (
	"context"

	"github.com/joan632/DotappSena/internal/domain/repository"
)

// TxRunner ejecuta el callback con repositorios atados a una misma
// transacción. Lo implementa infrastructure/postgres; las solicitudes lo usan
// para que la reserva/devolución de stock y el cambio de estado sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		solicitudes repository.SolicitudRepository,
		productos repository.ProductoRepository,
	) error) error
}
