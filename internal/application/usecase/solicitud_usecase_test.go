package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joan632/DotappSena/internal/application/dto"
	"github.com/joan632/DotappSena/internal/application/usecase"
	"github.com/joan632/DotappSena/internal/domain"
	"github.com/joan632/DotappSena/internal/domain/entity"
	"github.com/joan632/DotappSena/internal/domain/repository"
	"github.com/joan632/DotappSena/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) { return nil, nil }

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) Delete(id string) error {
	delete(r.productos, id)
	return nil
}

func (r *fakeProductoRepo) AjustarStock(id string, delta int) error {
	p, ok := r.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return domain.ErrStockInsuficiente
	}
	p.Stock += delta
	return nil
}

type fakeSolicitudRepo struct {
	solicitudes map[string]*entity.Solicitud
}

func (r *fakeSolicitudRepo) Create(s *entity.Solicitud) error {
	cp := *s
	r.solicitudes[s.ID] = &cp
	return nil
}

func (r *fakeSolicitudRepo) GetByID(id string) (*entity.Solicitud, error) {
	s, ok := r.solicitudes[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSolicitudRepo) ListByAprendiz(aprendizID string, limit, offset int) ([]*entity.Solicitud, error) {
	var out []*entity.Solicitud
	for _, s := range r.solicitudes {
		if s.AprendizID == aprendizID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSolicitudRepo) ListByEstado(estado string, limit, offset int) ([]*entity.Solicitud, error) {
	var out []*entity.Solicitud
	for _, s := range r.solicitudes {
		if s.Estado == estado {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSolicitudRepo) List(limit, offset int) ([]*entity.Solicitud, error) {
	var out []*entity.Solicitud
	for _, s := range r.solicitudes {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSolicitudRepo) Update(s *entity.Solicitud) error {
	if _, ok := r.solicitudes[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.solicitudes[s.ID] = &cp
	return nil
}

type fakeProgramaRepo struct {
	centros   map[string]*entity.CentroFormacion
	programas map[string]*entity.Programa
}

func (r *fakeProgramaRepo) CreateCentro(c *entity.CentroFormacion) error {
	r.centros[c.ID] = c
	return nil
}

func (r *fakeProgramaRepo) GetCentroByID(id string) (*entity.CentroFormacion, error) {
	c, ok := r.centros[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeProgramaRepo) ListCentros() ([]*entity.CentroFormacion, error) { return nil, nil }

func (r *fakeProgramaRepo) CreatePrograma(p *entity.Programa) error {
	r.programas[p.ID] = p
	return nil
}

func (r *fakeProgramaRepo) GetProgramaByID(id string) (*entity.Programa, error) {
	p, ok := r.programas[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProgramaRepo) ListProgramas(centroID string) ([]*entity.Programa, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin
// transacción real.
type fakeTxRunner struct {
	solicitudes repository.SolicitudRepository
	productos   repository.ProductoRepository
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	solicitudes repository.SolicitudRepository,
	productos repository.ProductoRepository,
) error) error {
	return fn(r.solicitudes, r.productos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testAprendizID = "aprendiz-1"
	testProductoID = "producto-1"
	testCentroID   = "centro-1"
	testProgramaID = "programa-1"
)

func newTestSolicitudUC(t *testing.T, stock int) (*usecase.SolicitudUseCase, *fakeProductoRepo, *fakeSolicitudRepo) {
	t.Helper()
	productos := &fakeProductoRepo{productos: map[string]*entity.Producto{
		testProductoID: {
			ID:          testProductoID,
			TipoNombre:  "Camiseta",
			TallaNombre: "M",
			ColorNombre: "Blanco",
			Precio:      decimal.NewFromInt(35000),
			Stock:       stock,
		},
	}}
	solicitudes := &fakeSolicitudRepo{solicitudes: make(map[string]*entity.Solicitud)}
	programas := &fakeProgramaRepo{
		centros: map[string]*entity.CentroFormacion{
			testCentroID: {ID: testCentroID, Nombre: "Centro de Comercio"},
		},
		programas: map[string]*entity.Programa{
			testProgramaID: {ID: testProgramaID, Nombre: "ADSO", CentroID: testCentroID},
		},
	}
	tx := &fakeTxRunner{solicitudes: solicitudes, productos: productos}
	uc := usecase.NewSolicitudUseCase(tx, solicitudes, productos, programas, logger.Nop())
	return uc, productos, solicitudes
}

func crearSolicitud(t *testing.T, uc *usecase.SolicitudUseCase, cantidad int) *dto.SolicitudResponse {
	t.Helper()
	out, err := uc.Crear(context.Background(), testAprendizID, dto.CreateSolicitudRequest{
		ProductoID: testProductoID,
		Cantidad:   cantidad,
		CentroID:   testCentroID,
		ProgramaID: testProgramaID,
		Ficha:      2863708,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_ReservaStockYCopiaNombres(t *testing.T) {
	uc, productos, _ := newTestSolicitudUC(t, 10)

	out := crearSolicitud(t, uc, 3)

	assert.Equal(t, entity.SolicitudPendiente, out.Estado)
	assert.Equal(t, "Camiseta", out.Tipo)
	assert.Equal(t, "M", out.Talla)
	assert.Equal(t, "Centro de Comercio", out.Centro)
	assert.Equal(t, "ADSO", out.Programa)

	p, _ := productos.GetByID(testProductoID)
	assert.Equal(t, 7, p.Stock, "la cantidad solicitada queda reservada")
}

func TestCrear_StockInsuficienteFalla(t *testing.T) {
	uc, productos, solicitudes := newTestSolicitudUC(t, 2)

	_, err := uc.Crear(context.Background(), testAprendizID, dto.CreateSolicitudRequest{
		ProductoID: testProductoID,
		Cantidad:   5,
		CentroID:   testCentroID,
		ProgramaID: testProgramaID,
		Ficha:      2863708,
	})
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	p, _ := productos.GetByID(testProductoID)
	assert.Equal(t, 2, p.Stock, "el stock no debe cambiar")
	assert.Empty(t, solicitudes.solicitudes, "no debe quedar solicitud creada")
}

func TestCrear_ProgramaDeOtroCentroFalla(t *testing.T) {
	uc, _, _ := newTestSolicitudUC(t, 10)

	_, err := uc.Crear(context.Background(), testAprendizID, dto.CreateSolicitudRequest{
		ProductoID: testProductoID,
		Cantidad:   1,
		CentroID:   testCentroID,
		ProgramaID: "programa-inexistente",
		Ficha:      2863708,
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCrear_CantidadInvalidaFalla(t *testing.T) {
	uc, _, _ := newTestSolicitudUC(t, 10)

	_, err := uc.Crear(context.Background(), testAprendizID, dto.CreateSolicitudRequest{
		ProductoID: testProductoID,
		Cantidad:   0,
		CentroID:   testCentroID,
		ProgramaID: testProgramaID,
		Ficha:      2863708,
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloCompleto_PendienteAprobadaDespachadaEntregada(t *testing.T) {
	uc, _, _ := newTestSolicitudUC(t, 10)
	ctx := context.Background()
	s := crearSolicitud(t, uc, 1)

	out, err := uc.Aprobar(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudAprobada, out.Estado)

	out, err = uc.Despachar(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudDespachada, out.Estado)

	out, err = uc.Entregar(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudEntregada, out.Estado)
	assert.NotNil(t, out.FechaFinalizacion)
}

func TestTransicionInvalida_Falla(t *testing.T) {
	uc, _, _ := newTestSolicitudUC(t, 10)
	ctx := context.Background()
	s := crearSolicitud(t, uc, 1)

	// Pendiente no se puede despachar ni entregar directamente.
	_, err := uc.Despachar(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrEstadoSolicitud)
	_, err = uc.Entregar(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrEstadoSolicitud)

	// Entregada es terminal.
	_, err = uc.Aprobar(ctx, s.ID)
	require.NoError(t, err)
	_, err = uc.Despachar(ctx, s.ID)
	require.NoError(t, err)
	_, err = uc.Entregar(ctx, s.ID)
	require.NoError(t, err)
	_, err = uc.Aprobar(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrEstadoSolicitud)
}

func TestTransicion_SolicitudInexistenteFalla(t *testing.T) {
	uc, _, _ := newTestSolicitudUC(t, 10)

	_, err := uc.Aprobar(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazo y cancelación: devuelven stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRechazar_DevuelveStock(t *testing.T) {
	uc, productos, _ := newTestSolicitudUC(t, 10)
	ctx := context.Background()
	s := crearSolicitud(t, uc, 4)

	out, err := uc.Rechazar(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudRechazada, out.Estado)

	p, _ := productos.GetByID(testProductoID)
	assert.Equal(t, 10, p.Stock, "el stock reservado vuelve al inventario")
}

func TestCancelar_DuenoDevuelveStock(t *testing.T) {
	uc, productos, _ := newTestSolicitudUC(t, 10)
	ctx := context.Background()
	s := crearSolicitud(t, uc, 4)

	out, err := uc.Cancelar(ctx, s.ID, testAprendizID)
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudCancelada, out.Estado)

	p, _ := productos.GetByID(testProductoID)
	assert.Equal(t, 10, p.Stock)
}

func TestCancelar_OtroAprendizBloqueado(t *testing.T) {
	uc, productos, _ := newTestSolicitudUC(t, 10)
	ctx := context.Background()
	s := crearSolicitud(t, uc, 4)

	_, err := uc.Cancelar(ctx, s.ID, "otro-aprendiz")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	p, _ := productos.GetByID(testProductoID)
	assert.Equal(t, 6, p.Stock, "la reserva sigue en pie")
}

func TestRechazar_SoloPendiente(t *testing.T) {
	uc, _, _ := newTestSolicitudUC(t, 10)
	ctx := context.Background()
	s := crearSolicitud(t, uc, 1)

	_, err := uc.Aprobar(ctx, s.ID)
	require.NoError(t, err)

	_, err = uc.Rechazar(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrEstadoSolicitud)
	_, err = uc.Cancelar(ctx, s.ID, testAprendizID)
	assert.ErrorIs(t, err, domain.ErrEstadoSolicitud)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraPorEstado(t *testing.T) {
	uc, _, _ := newTestSolicitudUC(t, 10)
	ctx := context.Background()
	s1 := crearSolicitud(t, uc, 1)
	crearSolicitud(t, uc, 1)

	_, err := uc.Aprobar(ctx, s1.ID)
	require.NoError(t, err)

	pendientes, err := uc.List(entity.SolicitudPendiente, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, pendientes, 1)

	todas, err := uc.List("", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}

func TestListByAprendiz_SoloPropias(t *testing.T) {
	uc, _, solicitudes := newTestSolicitudUC(t, 10)
	crearSolicitud(t, uc, 1)

	// Solicitud de otro aprendiz sembrada directamente.
	solicitudes.solicitudes["ajena"] = &entity.Solicitud{
		ID: "ajena", AprendizID: "otro-aprendiz", Estado: entity.SolicitudPendiente,
	}

	mias, err := uc.ListByAprendiz(testAprendizID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, mias, 1)
	assert.Equal(t, testAprendizID, mias[0].AprendizID)
}
