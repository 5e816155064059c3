package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store/xpgx"
)

var politicasAsigColumns = []string{"id", "id_formulario", "id_politica", "id_categoria", "id_subcategoria", "valor_destinado"}

func (s *store) ReplacePoliticas(ctx context.Context, formID int64, filas []domain.PoliticaAsignada) error {
	deleteQuery := builder().Delete(tablePoliticasAsig).
		Where(sq.Eq{"id_formulario": formID})

	if _, err := xpgx.Execx(ctx, s.pool, deleteQuery); err != nil {
		return fmt.Errorf("delete politicas, form-%d: %w", formID, wrapErr(err))
	}

	if len(filas) == 0 {
		return nil
	}

	query := builder().Insert(tablePoliticasAsig).
		Columns("id_formulario", "id_politica", "id_categoria", "id_subcategoria", "valor_destinado")
	for _, f := range filas {
		query = query.Values(formID, f.IDPolitica, f.IDCategoria, f.IDSubcategoria, f.ValorDestinado)
	}

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return fmt.Errorf("insert politicas, form-%d: %w", formID, wrapErr(err))
	}

	return nil
}

func (s *store) ListPoliticasPorFormulario(ctx context.Context, formID int64) ([]*domain.PoliticaAsignada, error) {
	query := builder().Select(politicasAsigColumns...).
		From(tablePoliticasAsig).
		Where(sq.Eq{"id_formulario": formID}).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.PoliticaAsignada](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListPoliticasDetalle(ctx context.Context, formID int64) ([]*domain.PoliticaDetalle, error) {
	query := builder().Select(
		"p.nombre_politica", "c.nombre_categoria", "sc.nombre_subcategoria", "fp.valor_destinado").
		From(tablePoliticasAsig + " fp").
		Join(tablePoliticas + " p on p.id = fp.id_politica").
		LeftJoin(tableCategorias + " c on c.id = fp.id_categoria").
		LeftJoin(tableSubcategorias + " sc on sc.id = fp.id_subcategoria").
		Where(sq.Eq{"fp.id_formulario": formID}).
		OrderBy("fp.id")

	selected, err := xpgx.Selectx[domain.PoliticaDetalle](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}
