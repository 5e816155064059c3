package store

import (
	"context"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store es la única frontera hacia Postgres; los servicios dependen de esta
// interfaz y las pruebas la sustituyen por un doble en memoria.
type Store interface {
	// catálogos
	ListLineas(ctx context.Context) ([]*domain.LineaEstrategica, error)
	ListSectores(ctx context.Context, lineaID int64) ([]*domain.Sector, error)
	ListProgramas(ctx context.Context, sectorID int64) ([]*domain.Programa, error)
	ListMetas(ctx context.Context, programaID int64) ([]*domain.Meta, error)
	ListDependencias(ctx context.Context) ([]*domain.Dependencia, error)
	ListPoliticas(ctx context.Context) ([]*domain.Politica, error)
	ListCategorias(ctx context.Context, politicaID int64) ([]*domain.Categoria, error)
	ListSubcategorias(ctx context.Context, categoriaID int64) ([]*domain.Subcategoria, error)
	ListVariablesSectorial(ctx context.Context) ([]*domain.VariableSectorial, error)
	ListVariablesTecnico(ctx context.Context) ([]*domain.VariableTecnico, error)
	ListViabilidades(ctx context.Context) ([]*domain.Viabilidad, error)
	UpsertLinea(ctx context.Context, nombre string) (*domain.LineaEstrategica, error)
	UpsertSector(ctx context.Context, sector *domain.Sector) (*domain.Sector, error)
	UpsertPrograma(ctx context.Context, programa *domain.Programa) (*domain.Programa, error)

	// formularios
	CreateFormularioMinimo(ctx context.Context, nombre string, codMGA, idDependencia int64) (*domain.Formulario, error)
	GetFormulario(ctx context.Context, id int64) (*domain.Formulario, error)
	GetFormularioDetalle(ctx context.Context, id int64) (*domain.FormularioDetalle, error)
	UpdateBasicos(ctx context.Context, id int64, opts UpdateBasicosOpts) error
	SetAnioInicio(ctx context.Context, id int64, anio int) error
	ListProyectos(ctx context.Context, opts ListProyectosOpts) ([]*domain.ProyectoResumen, int64, error)

	ReplaceMetas(ctx context.Context, formID int64, metas []domain.MetaSeleccionada) error
	ListMetasPorFormulario(ctx context.Context, formID int64) ([]*domain.MetaSeleccionada, error)
	ListMetasDetalle(ctx context.Context, formID int64) ([]*domain.Meta, error)

	ReplaceEstructuraFinanciera(ctx context.Context, formID int64, filas []domain.FilaFinanciera) error
	ListEstructuraFinanciera(ctx context.Context, formID int64) ([]*domain.FilaFinanciera, error)

	ReplacePoliticas(ctx context.Context, formID int64, filas []domain.PoliticaAsignada) error
	ListPoliticasPorFormulario(ctx context.Context, formID int64) ([]*domain.PoliticaAsignada, error)
	ListPoliticasDetalle(ctx context.Context, formID int64) ([]*domain.PoliticaDetalle, error)

	ReplaceRespuestas(ctx context.Context, tabla RespuestaTabla, formID int64, respuestas []domain.RespuestaVariable) error
	ListRespuestas(ctx context.Context, tabla RespuestaTabla, formID int64) ([]*domain.RespuestaVariable, error)

	InsertObservacion(ctx context.Context, obs *domain.ObservacionEvaluacion) (*domain.ObservacionEvaluacion, error)
	ListObservaciones(ctx context.Context, formID int64, tipo string) ([]*domain.ObservacionEvaluacion, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
