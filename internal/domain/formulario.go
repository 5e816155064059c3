package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dplaneacion/formularios-mga/internal/finanzas"
)

// Formulario es la cabecera del proyecto; los hijos (metas, políticas,
// estructura financiera, respuestas) viven en sus propias tablas y se
// reemplazan completos en cada guardado de paso.
type Formulario struct {
	ID                    int64     `db:"id" json:"id"`
	NombreProyecto        string    `db:"nombre_proyecto" json:"nombre_proyecto"`
	CodIDMGA              int64     `db:"cod_id_mga" json:"cod_id_mga"`
	IDDependencia         *int64    `db:"id_dependencia" json:"id_dependencia"`
	IDLineaEstrategica    *int64    `db:"id_linea_estrategica" json:"id_linea_estrategica"`
	IDPrograma            *int64    `db:"id_programa" json:"id_programa"`
	IDSector              *int64    `db:"id_sector" json:"id_sector"`
	NombreSecretario      string    `db:"nombre_secretario" json:"nombre_secretario"`
	CargoResponsable      string    `db:"cargo_responsable" json:"cargo_responsable"`
	Fuentes               string    `db:"fuentes" json:"fuentes"`
	DuracionProyecto      int       `db:"duracion_proyecto" json:"duracion_proyecto"`
	CantidadBeneficiarios int       `db:"cantidad_beneficiarios" json:"cantidad_beneficiarios"`
	AnioInicio            *int      `db:"anio_inicio" json:"anio_inicio"`
	CreatedAt             time.Time `db:"created_at" json:"-"`
	UpdatedAt             time.Time `db:"updated_at" json:"-"`
}

// FormularioDetalle agrega a la cabecera los nombres de catálogo resueltos,
// tal como los necesita la generación de documentos.
type FormularioDetalle struct {
	ID                    int64   `db:"id"`
	NombreProyecto        string  `db:"nombre_proyecto"`
	CodIDMGA              int64   `db:"cod_id_mga"`
	AnioInicio            *int    `db:"anio_inicio"`
	NombreSecretario      string  `db:"nombre_secretario"`
	DuracionProyecto      int     `db:"duracion_proyecto"`
	CantidadBeneficiarios int     `db:"cantidad_beneficiarios"`
	NombreDependencia     *string `db:"nombre_dependencia"`
	NombreLinea           *string `db:"nombre_linea_estrategica"`
	CodigoSector          *int    `db:"codigo_sector"`
	NombreSector          *string `db:"nombre_sector"`
	CodigoPrograma        *int    `db:"codigo_programa"`
	NombrePrograma        *string `db:"nombre_programa"`
}

// FilaFinanciera es la fila persistida {vigencia, entidad, valor}; incluye
// la fila DEPARTAMENTO que el servicio recalcula en cada guardado.
type FilaFinanciera struct {
	ID           int64            `db:"id" json:"id"`
	IDFormulario int64            `db:"id_formulario" json:"-"`
	Anio         int              `db:"anio" json:"anio"`
	Entidad      finanzas.Entidad `db:"entidad" json:"entidad"`
	Valor        decimal.Decimal  `db:"valor" json:"valor"`
}

// PoliticaAsignada es una fila de política del formulario con su monto y la
// terna dependiente ya normalizada.
type PoliticaAsignada struct {
	ID             int64           `db:"id" json:"id"`
	IDFormulario   int64           `db:"id_formulario" json:"-"`
	IDPolitica     int64           `db:"id_politica" json:"id_politica"`
	IDCategoria    *int64          `db:"id_categoria" json:"id_categoria"`
	IDSubcategoria *int64          `db:"id_subcategoria" json:"id_subcategoria"`
	ValorDestinado decimal.Decimal `db:"valor_destinado" json:"valor_destinado"`
}

// MetaSeleccionada vincula una meta de catálogo al formulario, con la meta
// proyecto redactada por la dependencia.
type MetaSeleccionada struct {
	IDFormulario int64   `db:"id_formulario" json:"-"`
	IDMeta       int64   `db:"id_meta" json:"id_meta"`
	MetaProyecto *string `db:"meta_proyecto" json:"meta_proyecto"`
}

// RespuestaVariable es la respuesta SI/NO (o vacía) a una variable de
// concepto sectorial, técnico o de viabilidad.
type RespuestaVariable struct {
	IDFormulario int64  `db:"id_formulario" json:"-"`
	IDVariable   int64  `db:"id_variable" json:"id"`
	Respuesta    string `db:"respuesta" json:"respuesta"`
}

// PoliticaDetalle es una política asignada con los nombres de catálogo ya
// resueltos, tal como los pinta el concepto descargable.
type PoliticaDetalle struct {
	NombrePolitica     string          `db:"nombre_politica"`
	NombreCategoria    *string         `db:"nombre_categoria"`
	NombreSubcategoria *string         `db:"nombre_subcategoria"`
	ValorDestinado     decimal.Decimal `db:"valor_destinado"`
}

// Tipos de documento del evaluador.
const (
	DocObservaciones      = "OBSERVACIONES"
	DocViabilidad         = "VIABILIDAD"
	DocViabilidadAjustada = "VIABILIDAD_AJUSTADA"
)

// ObservacionEvaluacion es un documento de evaluación compuesto por el
// evaluador; el contenido llega como HTML del editor embebido.
type ObservacionEvaluacion struct {
	ID              int64     `db:"id" json:"id"`
	IDFormulario    int64     `db:"id_formulario" json:"id_formulario"`
	TipoDocumento   string    `db:"tipo_documento" json:"tipo_documento"`
	ContenidoHTML   string    `db:"contenido_html" json:"contenido_html"`
	NombreEvaluador string    `db:"nombre_evaluador" json:"nombre_evaluador"`
	CargoEvaluador  *string   `db:"cargo_evaluador" json:"cargo_evaluador"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// ProyectoResumen es un renglón del listado paginado de proyectos.
type ProyectoResumen struct {
	ID            int64  `db:"id" json:"id"`
	Nombre        string `db:"nombre_proyecto" json:"nombre"`
	CodIDMGA      int64  `db:"cod_id_mga" json:"cod_id_mga"`
	IDDependencia *int64 `db:"id_dependencia" json:"id_dependencia"`
}
