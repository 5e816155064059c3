package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store/xpgx"
)

var formularioColumns = []string{
	"id", "nombre_proyecto", "cod_id_mga", "id_dependencia",
	"id_linea_estrategica", "id_programa", "id_sector",
	"nombre_secretario", "cargo_responsable", "fuentes",
	"duracion_proyecto", "cantidad_beneficiarios", "anio_inicio",
	"created_at", "updated_at",
}

// UpdateBasicosOpts son los campos del paso 1; los punteros distinguen
// "no enviado" de "enviar null".
type UpdateBasicosOpts struct {
	NombreProyecto        string
	CodIDMGA              int64
	IDDependencia         *int64
	IDLineaEstrategica    *int64
	IDPrograma            *int64
	IDSector              *int64
	NombreSecretario      string
	CargoResponsable      string
	Fuentes               string
	DuracionProyecto      int
	CantidadBeneficiarios int
	AnioInicio            *int
}

type ListProyectosOpts struct {
	Nombre        *string
	CodIDMGA      *int64
	IDDependencia *int64
	Page          int
	PageSize      int
}

func (s *store) CreateFormularioMinimo(ctx context.Context, nombre string, codMGA, idDependencia int64) (*domain.Formulario, error) {
	query := builder().Insert(tableFormularios).
		Columns("nombre_proyecto", "cod_id_mga", "id_dependencia").
		Values(nombre, codMGA, idDependencia).
		Suffix("RETURNING id")

	id, err := xpgx.GetValue[int64](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("insert formulario: %w", wrapErr(err))
	}

	return s.GetFormulario(ctx, id)
}

func (s *store) GetFormulario(ctx context.Context, id int64) (*domain.Formulario, error) {
	query := builder().Select(formularioColumns...).
		From(tableFormularios).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Formulario](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) UpdateBasicos(ctx context.Context, id int64, opts UpdateBasicosOpts) error {
	query := builder().Update(tableFormularios).
		Set("nombre_proyecto", opts.NombreProyecto).
		Set("cod_id_mga", opts.CodIDMGA).
		Set("nombre_secretario", opts.NombreSecretario).
		Set("cargo_responsable", opts.CargoResponsable).
		Set("fuentes", opts.Fuentes).
		Set("duracion_proyecto", opts.DuracionProyecto).
		Set("cantidad_beneficiarios", opts.CantidadBeneficiarios).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if opts.IDDependencia != nil {
		query = query.Set("id_dependencia", *opts.IDDependencia)
	}
	if opts.IDLineaEstrategica != nil {
		query = query.Set("id_linea_estrategica", *opts.IDLineaEstrategica)
	}
	if opts.IDPrograma != nil {
		query = query.Set("id_programa", *opts.IDPrograma)
	}
	if opts.IDSector != nil {
		query = query.Set("id_sector", *opts.IDSector)
	}
	if opts.AnioInicio != nil {
		query = query.Set("anio_inicio", *opts.AnioInicio)
	}

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrFormularioNotFound
	}
	return nil
}

func (s *store) SetAnioInicio(ctx context.Context, id int64, anio int) error {
	query := builder().Update(tableFormularios).
		Set("anio_inicio", anio).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrFormularioNotFound
	}
	return nil
}

// GetFormularioDetalle resuelve en un solo query los nombres de catálogo que
// necesita la generación de documentos.
func (s *store) GetFormularioDetalle(ctx context.Context, id int64) (*domain.FormularioDetalle, error) {
	query := builder().Select(
		"f.id", "f.nombre_proyecto", "f.cod_id_mga", "f.anio_inicio",
		"f.nombre_secretario", "f.duracion_proyecto", "f.cantidad_beneficiarios",
		"d.nombre_dependencia", "l.nombre_linea_estrategica",
		"s.codigo_sector", "s.nombre_sector",
		"p.codigo_programa", "p.nombre_programa").
		From(tableFormularios + " f").
		LeftJoin(tableDependencias + " d on d.id = f.id_dependencia").
		LeftJoin(tableLineas + " l on l.id = f.id_linea_estrategica").
		LeftJoin(tableSectores + " s on s.id = f.id_sector").
		LeftJoin(tableProgramas + " p on p.id = f.id_programa").
		Where(sq.Eq{"f.id": id})

	selected, err := xpgx.Getx[domain.FormularioDetalle](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListProyectos(ctx context.Context, opts ListProyectosOpts) ([]*domain.ProyectoResumen, int64, error) {
	base := builder().Select("id", "nombre_proyecto", "cod_id_mga", "id_dependencia").
		From(tableFormularios)
	countQuery := builder().Select("count(*)").From(tableFormularios)

	if opts.Nombre != nil && *opts.Nombre != "" {
		like := sq.ILike{"nombre_proyecto": "%" + *opts.Nombre + "%"}
		base = base.Where(like)
		countQuery = countQuery.Where(like)
	}
	if opts.CodIDMGA != nil {
		eq := sq.Eq{"cod_id_mga": *opts.CodIDMGA}
		base = base.Where(eq)
		countQuery = countQuery.Where(eq)
	}
	if opts.IDDependencia != nil {
		eq := sq.Eq{"id_dependencia": *opts.IDDependencia}
		base = base.Where(eq)
		countQuery = countQuery.Where(eq)
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	base = base.OrderBy("id desc").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))

	selected, err := xpgx.Selectx[domain.ProyectoResumen](ctx, s.pool, base)
	if err != nil {
		return nil, 0, wrapErr(err)
	}

	total, err := xpgx.GetValue[int64](ctx, s.pool, countQuery)
	if err != nil {
		return nil, 0, wrapErr(err)
	}

	return selected, total, nil
}
