package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store/xpgx"
)

var (
	lineasColumns    = []string{"id", "nombre_linea_estrategica", "created_at", "updated_at"}
	sectoresColumns  = []string{"id", "id_linea_estrategica", "codigo_sector", "nombre_sector", "created_at", "updated_at"}
	programasColumns = []string{"id", "id_sector", "codigo_programa", "nombre_programa", "created_at", "updated_at"}
	metasColumns     = []string{"id", "id_programa", "numero_meta", "nombre_meta", "codigo_producto", "nombre_producto", "codigo_indicador_producto", "nombre_indicador_producto"}
)

func (s *store) ListLineas(ctx context.Context) ([]*domain.LineaEstrategica, error) {
	query := builder().Select(lineasColumns...).
		From(tableLineas).
		OrderBy("nombre_linea_estrategica")

	selected, err := xpgx.Selectx[domain.LineaEstrategica](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListSectores(ctx context.Context, lineaID int64) ([]*domain.Sector, error) {
	query := builder().Select(sectoresColumns...).
		From(tableSectores).
		Where(sq.Eq{"id_linea_estrategica": lineaID}).
		OrderBy("codigo_sector")

	selected, err := xpgx.Selectx[domain.Sector](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListProgramas(ctx context.Context, sectorID int64) ([]*domain.Programa, error) {
	query := builder().Select(programasColumns...).
		From(tableProgramas).
		Where(sq.Eq{"id_sector": sectorID}).
		OrderBy("codigo_programa")

	selected, err := xpgx.Selectx[domain.Programa](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListMetas(ctx context.Context, programaID int64) ([]*domain.Meta, error) {
	query := builder().Select(metasColumns...).
		From(tableMetas).
		Where(sq.Eq{"id_programa": programaID}).
		OrderBy("numero_meta")

	selected, err := xpgx.Selectx[domain.Meta](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListDependencias(ctx context.Context) ([]*domain.Dependencia, error) {
	query := builder().Select("id", "nombre_dependencia").
		From(tableDependencias).
		OrderBy("nombre_dependencia")

	selected, err := xpgx.Selectx[domain.Dependencia](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListPoliticas(ctx context.Context) ([]*domain.Politica, error) {
	query := builder().Select("id", "nombre_politica").
		From(tablePoliticas).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.Politica](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListCategorias(ctx context.Context, politicaID int64) ([]*domain.Categoria, error) {
	query := builder().Select("id", "id_politica", "nombre_categoria").
		From(tableCategorias).
		Where(sq.Eq{"id_politica": politicaID}).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.Categoria](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListSubcategorias(ctx context.Context, categoriaID int64) ([]*domain.Subcategoria, error) {
	query := builder().Select("id", "id_categoria", "nombre_subcategoria").
		From(tableSubcategorias).
		Where(sq.Eq{"id_categoria": categoriaID}).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.Subcategoria](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListVariablesSectorial(ctx context.Context) ([]*domain.VariableSectorial, error) {
	query := builder().Select("id", "nombre_variable", "no_aplica").
		From(tableVariablesSec).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.VariableSectorial](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListVariablesTecnico(ctx context.Context) ([]*domain.VariableTecnico, error) {
	query := builder().Select("id", "nombre_variable", "no_aplica").
		From(tableVariablesTec).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.VariableTecnico](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) ListViabilidades(ctx context.Context) ([]*domain.Viabilidad, error) {
	query := builder().Select("id", "nombre", "no_aplica").
		From(tableViabilidades).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.Viabilidad](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

// Los Upsert* insertan o actualizan por clave natural; los usa el backfill
// del catálogo MGA.
func (s *store) UpsertLinea(ctx context.Context, nombre string) (*domain.LineaEstrategica, error) {
	query := builder().Insert(tableLineas).
		Columns("nombre_linea_estrategica").
		Values(nombre).
		Suffix(`on conflict (nombre_linea_estrategica) do update set updated_at=now()`)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return nil, fmt.Errorf("upsert linea %q: %w", nombre, wrapErr(err))
	}

	selectQuery := builder().Select(lineasColumns...).
		From(tableLineas).
		Where(sq.Eq{"nombre_linea_estrategica": nombre})

	selected, err := xpgx.Getx[domain.LineaEstrategica](ctx, s.pool, selectQuery)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) UpsertSector(ctx context.Context, sector *domain.Sector) (*domain.Sector, error) {
	query := builder().Insert(tableSectores).
		Columns("id_linea_estrategica", "codigo_sector", "nombre_sector").
		Values(sector.IDLineaEstrategica, sector.CodigoSector, sector.NombreSector).
		Suffix(`on conflict (codigo_sector) do update set nombre_sector=excluded.nombre_sector, updated_at=now()`)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return nil, fmt.Errorf("upsert sector %d: %w", sector.CodigoSector, wrapErr(err))
	}

	selectQuery := builder().Select(sectoresColumns...).
		From(tableSectores).
		Where(sq.Eq{"codigo_sector": sector.CodigoSector})

	selected, err := xpgx.Getx[domain.Sector](ctx, s.pool, selectQuery)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) UpsertPrograma(ctx context.Context, programa *domain.Programa) (*domain.Programa, error) {
	query := builder().Insert(tableProgramas).
		Columns("id_sector", "codigo_programa", "nombre_programa").
		Values(programa.IDSector, programa.CodigoPrograma, programa.NombrePrograma).
		Suffix(`on conflict (codigo_programa) do update set nombre_programa=excluded.nombre_programa, id_sector=excluded.id_sector, updated_at=now()`)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return nil, fmt.Errorf("upsert programa %d: %w", programa.CodigoPrograma, wrapErr(err))
	}

	selectQuery := builder().Select(programasColumns...).
		From(tableProgramas).
		Where(sq.Eq{"codigo_programa": programa.CodigoPrograma})

	selected, err := xpgx.Getx[domain.Programa](ctx, s.pool, selectQuery)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}
