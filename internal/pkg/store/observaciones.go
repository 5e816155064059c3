package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store/xpgx"
)

var observacionesColumns = []string{"id", "id_formulario", "tipo_documento", "contenido_html", "nombre_evaluador", "cargo_evaluador", "created_at"}

func (s *store) InsertObservacion(ctx context.Context, obs *domain.ObservacionEvaluacion) (*domain.ObservacionEvaluacion, error) {
	query := builder().Insert(tableObservaciones).
		Columns("id_formulario", "tipo_documento", "contenido_html", "nombre_evaluador", "cargo_evaluador").
		Values(obs.IDFormulario, obs.TipoDocumento, obs.ContenidoHTML, obs.NombreEvaluador, obs.CargoEvaluador).
		Suffix("RETURNING id")

	id, err := xpgx.GetValue[int64](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("insert observacion, form-%d: %w", obs.IDFormulario, wrapErr(err))
	}

	selectQuery := builder().Select(observacionesColumns...).
		From(tableObservaciones).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.ObservacionEvaluacion](ctx, s.pool, selectQuery)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListObservaciones(ctx context.Context, formID int64, tipo string) ([]*domain.ObservacionEvaluacion, error) {
	query := builder().Select(observacionesColumns...).
		From(tableObservaciones).
		Where(sq.Eq{"id_formulario": formID}).
		OrderBy("created_at desc")

	if tipo != "" {
		query = query.Where(sq.Eq{"tipo_documento": tipo})
	}

	selected, err := xpgx.Selectx[domain.ObservacionEvaluacion](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}
