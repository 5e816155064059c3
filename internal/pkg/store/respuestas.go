package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store/xpgx"
)

// RespuestaTabla selecciona la tabla de respuestas; las tres comparten
// esquema (id_formulario, id_variable, respuesta).
type RespuestaTabla string

const (
	RespuestasSectorial  RespuestaTabla = "respuesta_sectorial"
	RespuestasTecnico    RespuestaTabla = "respuesta_tecnico"
	RespuestasViabilidad RespuestaTabla = "respuesta_viabilidad"
)

func (t RespuestaTabla) valida() bool {
	switch t {
	case RespuestasSectorial, RespuestasTecnico, RespuestasViabilidad:
		return true
	}
	return false
}

func (s *store) ReplaceMetas(ctx context.Context, formID int64, metas []domain.MetaSeleccionada) error {
	deleteQuery := builder().Delete(tableFormularioMetas).
		Where(sq.Eq{"id_formulario": formID})

	if _, err := xpgx.Execx(ctx, s.pool, deleteQuery); err != nil {
		return fmt.Errorf("delete metas, form-%d: %w", formID, wrapErr(err))
	}

	if len(metas) == 0 {
		return nil
	}

	query := builder().Insert(tableFormularioMetas).
		Columns("id_formulario", "id_meta", "meta_proyecto")
	for _, m := range metas {
		query = query.Values(formID, m.IDMeta, m.MetaProyecto)
	}

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("insert metas, form-%d: %w", formID, wrapErr(err))
	}

	return nil
}

func (s *store) ListMetasPorFormulario(ctx context.Context, formID int64) ([]*domain.MetaSeleccionada, error) {
	query := builder().Select("fm.id_formulario", "fm.id_meta", "fm.meta_proyecto").
		From(tableFormularioMetas + " fm").
		Join(tableMetas + " m on m.id = fm.id_meta").
		Where(sq.Eq{"fm.id_formulario": formID}).
		OrderBy("m.numero_meta")

	selected, err := xpgx.Selectx[domain.MetaSeleccionada](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListMetasDetalle(ctx context.Context, formID int64) ([]*domain.Meta, error) {
	query := builder().Select(
		"m.id", "m.id_programa", "m.numero_meta", "m.nombre_meta",
		"m.codigo_producto", "m.nombre_producto",
		"m.codigo_indicador_producto", "m.nombre_indicador_producto").
		From(tableFormularioMetas + " fm").
		Join(tableMetas + " m on m.id = fm.id_meta").
		Where(sq.Eq{"fm.id_formulario": formID}).
		OrderBy("m.numero_meta")

	selected, err := xpgx.Selectx[domain.Meta](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ReplaceRespuestas(ctx context.Context, tabla RespuestaTabla, formID int64, respuestas []domain.RespuestaVariable) error {
	if !tabla.valida() {
		return fmt.Errorf("tabla de respuestas desconocida: %s", tabla)
	}

	deleteQuery := builder().Delete(string(tabla)).
		Where(sq.Eq{"id_formulario": formID})

	if _, err := xpgx.Execx(ctx, s.pool, deleteQuery); err != nil {
		return fmt.Errorf("delete %s, form-%d: %w", tabla, formID, wrapErr(err))
	}

	if len(respuestas) == 0 {
		return nil
	}

	query := builder().Insert(string(tabla)).
		Columns("id_formulario", "id_variable", "respuesta")
	for _, r := range respuestas {
		query = query.Values(formID, r.IDVariable, r.Respuesta)
	}

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("insert %s, form-%d: %w", tabla, formID, wrapErr(err))
	}

	return nil
}

func (s *store) ListRespuestas(ctx context.Context, tabla RespuestaTabla, formID int64) ([]*domain.RespuestaVariable, error) {
	if !tabla.valida() {
		return nil, fmt.Errorf("tabla de respuestas desconocida: %s", tabla)
	}

	query := builder().Select("id_formulario", "id_variable", "respuesta").
		From(string(tabla)).
		Where(sq.Eq{"id_formulario": formID}).
		OrderBy("id_variable")

	selected, err := xpgx.Selectx[domain.RespuestaVariable](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}
