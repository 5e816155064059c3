package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
)

const (
	tableLineas          = "linea_estrategica"
	tableSectores        = "sector"
	tableProgramas       = "programa"
	tableMetas           = "meta"
	tableDependencias    = "dependencia"
	tablePoliticas       = "politica"
	tableCategorias      = "categoria"
	tableSubcategorias   = "subcategoria"
	tableVariablesSec    = "variable_sectorial"
	tableVariablesTec    = "variable_tecnico"
	tableViabilidades    = "viabilidad"
	tableFormularios     = "formulario"
	tableFormularioMetas = "formulario_meta"
	tableEstructuraFin   = "estructura_financiera"
	tablePoliticasAsig   = "formulario_politica"
	tableObservaciones   = "observacion_evaluacion"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder devuelve el SQL builder de squirrel con placeholders de Postgres.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
