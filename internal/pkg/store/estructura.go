package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/pkg/logger"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store/xpgx"
)

var estructuraColumns = []string{"id", "id_formulario", "anio", "entidad", "valor"}

// ReplaceEstructuraFinanciera reemplaza la estructura completa del
// formulario: cada guardado del paso financiero borra e inserta todas las
// filas, incluida la DEPARTAMENTO ya recalculada por el servicio.
func (s *store) ReplaceEstructuraFinanciera(ctx context.Context, formID int64, filas []domain.FilaFinanciera) error {
	deleteQuery := builder().Delete(tableEstructuraFin).
		Where(sq.Eq{"id_formulario": formID})

	if _, err := xpgx.Execx(ctx, s.pool, deleteQuery); err != nil {
		logger.Errorf(ctx, "delete estructura_financiera: %s", err.Error())
		return fmt.Errorf("delete estructura_financiera: %w", wrapErr(err))
	}

	if len(filas) == 0 {
		return nil
	}

	query := builder().Insert(tableEstructuraFin).
		Columns("id_formulario", "anio", "entidad", "valor")
	for _, f := range filas {
		query = query.Values(formID, f.Anio, string(f.Entidad), f.Valor)
	}

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		logger.Errorf(ctx, "insert estructura_financiera: %s", err.Error())
		return fmt.Errorf("insert estructura_financiera, form-%d: %w", formID, wrapErr(err))
	}

	return nil
}

func (s *store) ListEstructuraFinanciera(ctx context.Context, formID int64) ([]*domain.FilaFinanciera, error) {
	query := builder().Select(estructuraColumns...).
		From(tableEstructuraFin).
		Where(sq.Eq{"id_formulario": formID}).
		OrderBy("anio, entidad")

	selected, err := xpgx.Selectx[domain.FilaFinanciera](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}
