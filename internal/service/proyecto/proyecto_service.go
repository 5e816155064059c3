// Package proyecto implementa el ciclo de vida del formulario: creación del
// borrador, guardado por pasos y la conciliación de totales.
package proyecto

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/domain/dto"
	"github.com/dplaneacion/formularios-mga/internal/finanzas"
	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
	"github.com/dplaneacion/formularios-mga/internal/pkg/logger"
	"github.com/dplaneacion/formularios-mga/internal/pkg/money"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) CrearMinimo(ctx context.Context, req *dto.CrearMinimoRequest) (*domain.Formulario, error) {
	form, err := s.store.CreateFormularioMinimo(ctx, req.NombreProyecto, req.CodIDMGA, req.IDDependencia)
	if err != nil {
		return nil, fmt.Errorf("store.CreateFormularioMinimo: %w", err)
	}

	logger.Infof(ctx, "formulario %d creado para cod_id_mga %d", form.ID, form.CodIDMGA)
	return form, nil
}

// Obtener arma el formulario completo que consume el asistente, con la
// conciliación ya calculada.
func (s *Service) Obtener(ctx context.Context, id int64) (*dto.FormularioResponse, error) {
	form, err := s.store.GetFormulario(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetFormulario: %w", err)
	}

	metas, err := s.store.ListMetasPorFormulario(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.ListMetasPorFormulario: %w", err)
	}

	politicas, err := s.store.ListPoliticasPorFormulario(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.ListPoliticasPorFormulario: %w", err)
	}

	filas, err := s.store.ListEstructuraFinanciera(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.ListEstructuraFinanciera: %w", err)
	}

	conciliacion := conciliar(form, filas, politicas)

	return &dto.FormularioResponse{
		Formulario:           form,
		Metas:                metas,
		Politicas:            politicas,
		EstructuraFinanciera: filas,
		Conciliacion:         conciliacion,
	}, nil
}

func (s *Service) ActualizarBasicos(ctx context.Context, id int64, req *dto.BasicosRequest) (*domain.Formulario, error) {
	opts := store.UpdateBasicosOpts{
		NombreProyecto:        req.NombreProyecto,
		CodIDMGA:              req.CodIDMGA,
		IDDependencia:         req.IDDependencia,
		IDLineaEstrategica:    req.IDLineaEstrategica,
		IDSector:              req.IDSector,
		IDPrograma:            req.IDPrograma,
		NombreSecretario:      req.NombreSecretario,
		CargoResponsable:      req.CargoResponsable,
		Fuentes:               req.Fuentes,
		DuracionProyecto:      req.DuracionProyecto,
		CantidadBeneficiarios: req.CantidadBeneficiarios,
		AnioInicio:            req.AnioInicio,
	}

	if err := s.store.UpdateBasicos(ctx, id, opts); err != nil {
		return nil, fmt.Errorf("store.UpdateBasicos: %w", err)
	}

	return s.store.GetFormulario(ctx, id)
}

func (s *Service) GuardarMetas(ctx context.Context, id int64, req *dto.MetasRequest) error {
	if _, err := s.store.GetFormulario(ctx, id); err != nil {
		return err
	}

	metas := make([]domain.MetaSeleccionada, 0, len(req.Metas))
	for _, m := range req.Metas {
		metas = append(metas, domain.MetaSeleccionada{
			IDFormulario: id,
			IDMeta:       m.IDMeta,
			MetaProyecto: m.MetaProyecto,
		})
	}

	if err := s.store.ReplaceMetas(ctx, id, metas); err != nil {
		return fmt.Errorf("store.ReplaceMetas: %w", err)
	}
	return nil
}

// GuardarEstructuraFinanciera reemplaza la matriz completa. Las filas llegan
// con el monto como texto crudo; DEPARTAMENTO nunca se acepta del cliente,
// se recalcula aquí y se persiste al final de cada vigencia.
func (s *Service) GuardarEstructuraFinanciera(ctx context.Context, id int64, req *dto.EstructuraFinancieraRequest) ([]*domain.FilaFinanciera, error) {
	if _, err := s.store.GetFormulario(ctx, id); err != nil {
		return nil, err
	}

	if finanzas.Anios(req.AnioInicio) == nil {
		return nil, constants.ErrBadRequest
	}

	est := finanzas.NuevaEstructura()
	for _, fila := range req.Filas {
		ent, ok := finanzas.ParseEntidad(fila.Entidad)
		if !ok {
			logger.Warnf(ctx, "formulario %d: entidad desconocida %q descartada", id, fila.Entidad)
			continue
		}
		est = est.Con(fila.Anio, ent, fila.Valor)
	}

	planas := est.Filas(req.AnioInicio)
	filas := make([]domain.FilaFinanciera, 0, len(planas))
	for _, f := range planas {
		filas = append(filas, domain.FilaFinanciera{
			IDFormulario: id,
			Anio:         f.Anio,
			Entidad:      f.Entidad,
			Valor:        f.Valor,
		})
	}

	if err := s.store.ReplaceEstructuraFinanciera(ctx, id, filas); err != nil {
		return nil, fmt.Errorf("store.ReplaceEstructuraFinanciera: %w", err)
	}

	if err := s.store.SetAnioInicio(ctx, id, req.AnioInicio); err != nil {
		return nil, fmt.Errorf("store.SetAnioInicio: %w", err)
	}

	return s.store.ListEstructuraFinanciera(ctx, id)
}

func (s *Service) GuardarPoliticas(ctx context.Context, id int64, req *dto.PoliticasRequest) error {
	if len(req.Politicas) > finanzas.MaxPoliticas {
		return constants.ErrDemasiadasPoliticas
	}

	if _, err := s.store.GetFormulario(ctx, id); err != nil {
		return err
	}

	filas := make([]domain.PoliticaAsignada, 0, len(req.Politicas))
	for _, p := range req.Politicas {
		normalizada := finanzas.PoliticaFila{
			IDPolitica:     &p.IDPolitica,
			IDCategoria:    p.IDCategoria,
			IDSubcategoria: p.IDSubcategoria,
			ValorTexto:     p.ValorDestinado,
		}.Normalizada()

		filas = append(filas, domain.PoliticaAsignada{
			IDFormulario:   id,
			IDPolitica:     p.IDPolitica,
			IDCategoria:    normalizada.IDCategoria,
			IDSubcategoria: normalizada.IDSubcategoria,
			ValorDestinado: money.ParseOrZero(normalizada.ValorTexto),
		})
	}

	if err := s.store.ReplacePoliticas(ctx, id, filas); err != nil {
		return fmt.Errorf("store.ReplacePoliticas: %w", err)
	}
	return nil
}

// GuardarRespuestas persiste solo las respuestas marcadas; una respuesta
// vacía significa "sin contestar" y no deja fila.
func (s *Service) GuardarRespuestas(ctx context.Context, id int64, tabla store.RespuestaTabla, req *dto.RespuestasRequest) error {
	if _, err := s.store.GetFormulario(ctx, id); err != nil {
		return err
	}

	respuestas := make([]domain.RespuestaVariable, 0, len(req.Respuestas))
	for _, r := range req.Respuestas {
		respuesta := strings.ToUpper(strings.TrimSpace(r.Respuesta))
		if respuesta == "" {
			continue
		}
		respuestas = append(respuestas, domain.RespuestaVariable{
			IDFormulario: id,
			IDVariable:   r.ID,
			Respuesta:    respuesta,
		})
	}

	if err := s.store.ReplaceRespuestas(ctx, tabla, id, respuestas); err != nil {
		return fmt.Errorf("store.ReplaceRespuestas: %w", err)
	}
	return nil
}

func (s *Service) ListarRespuestas(ctx context.Context, id int64, tabla store.RespuestaTabla) ([]*domain.RespuestaVariable, error) {
	return s.store.ListRespuestas(ctx, tabla, id)
}

func (s *Service) Conciliacion(ctx context.Context, id int64) (*dto.ConciliacionResponse, error) {
	form, err := s.store.GetFormulario(ctx, id)
	if err != nil {
		return nil, err
	}

	filas, err := s.store.ListEstructuraFinanciera(ctx, id)
	if err != nil {
		return nil, err
	}

	politicas, err := s.store.ListPoliticasPorFormulario(ctx, id)
	if err != nil {
		return nil, err
	}

	return conciliar(form, filas, politicas), nil
}

func (s *Service) Listar(ctx context.Context, opts store.ListProyectosOpts) (*dto.ListaProyectosResponse, error) {
	items, total, err := s.store.ListProyectos(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.ListProyectos: %w", err)
	}

	return &dto.ListaProyectosResponse{
		Items:    items,
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}, nil
}

func (s *Service) CrearObservacion(ctx context.Context, id int64, req *dto.ObservacionRequest) (*domain.ObservacionEvaluacion, error) {
	if _, err := s.store.GetFormulario(ctx, id); err != nil {
		return nil, err
	}

	obs := &domain.ObservacionEvaluacion{
		IDFormulario:    id,
		TipoDocumento:   req.TipoDocumento,
		ContenidoHTML:   req.ContenidoHTML,
		NombreEvaluador: req.NombreEvaluador,
		CargoEvaluador:  req.CargoEvaluador,
	}

	return s.store.InsertObservacion(ctx, obs)
}

func (s *Service) ListarObservaciones(ctx context.Context, id int64, tipo string) ([]*domain.ObservacionEvaluacion, error) {
	return s.store.ListObservaciones(ctx, id, tipo)
}

// conciliar reconstruye el snapshot desde las filas persistidas y compara el
// total del proyecto contra el total destinado a políticas. Si el formulario
// aún no fijó la vigencia inicial se toma la menor vigencia guardada.
func conciliar(form *domain.Formulario, filas []*domain.FilaFinanciera, politicas []*domain.PoliticaAsignada) *dto.ConciliacionResponse {
	inicio := 0
	if form.AnioInicio != nil {
		inicio = *form.AnioInicio
	} else {
		for _, f := range filas {
			if inicio == 0 || f.Anio < inicio {
				inicio = f.Anio
			}
		}
	}

	planas := make([]finanzas.Fila, 0, len(filas))
	for _, f := range filas {
		planas = append(planas, finanzas.Fila{Anio: f.Anio, Entidad: f.Entidad, Valor: f.Valor})
	}
	est := finanzas.DesdeFilas(planas)

	totalPoliticas := decimal.Zero
	for _, p := range politicas {
		totalPoliticas = totalPoliticas.Add(p.ValorDestinado)
	}

	c := finanzas.Conciliar(est.TotalProyecto(inicio), money.Round2(totalPoliticas))

	return &dto.ConciliacionResponse{
		TotalProyecto:  c.TotalProyecto,
		TotalPoliticas: c.TotalPoliticas,
		Diferencia:     c.Diferencia,
		Coinciden:      c.Coinciden,
	}
}
