// Package dto define los cuerpos de petición y respuesta de la API.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dplaneacion/formularios-mga/internal/domain"
)

// CrearMinimoRequest crea el borrador con los mínimos del paso 1.
type CrearMinimoRequest struct {
	NombreProyecto string `json:"nombre_proyecto" validate:"required"`
	CodIDMGA       int64  `json:"cod_id_mga" validate:"required,gt=0"`
	IDDependencia  int64  `json:"id_dependencia" validate:"required,gt=0"`
}

// BasicosRequest actualiza los datos básicos; los ids encadenados son
// opcionales mientras el usuario avanza.
type BasicosRequest struct {
	NombreProyecto        string `json:"nombre_proyecto" validate:"required"`
	CodIDMGA              int64  `json:"cod_id_mga" validate:"required,gt=0"`
	IDDependencia         *int64 `json:"id_dependencia" validate:"omitempty,gt=0"`
	IDLineaEstrategica    *int64 `json:"id_linea_estrategica" validate:"omitempty,gt=0"`
	IDSector              *int64 `json:"id_sector" validate:"omitempty,gt=0"`
	IDPrograma            *int64 `json:"id_programa" validate:"omitempty,gt=0"`
	NombreSecretario      string `json:"nombre_secretario"`
	CargoResponsable      string `json:"cargo_responsable"`
	Fuentes               string `json:"fuentes"`
	DuracionProyecto      int    `json:"duracion_proyecto" validate:"gte=0"`
	CantidadBeneficiarios int    `json:"cantidad_beneficiarios" validate:"gte=0"`
	AnioInicio            *int   `json:"anio_inicio" validate:"omitempty,gt=1900,lt=3000"`
}

type MetaIn struct {
	IDMeta       int64   `json:"id_meta" validate:"required,gt=0"`
	MetaProyecto *string `json:"meta_proyecto"`
}

type MetasRequest struct {
	Metas []MetaIn `json:"metas" validate:"dive"`
}

// FilaFinancieraIn llega con el monto como texto crudo es-CO, tal como lo
// dejó el campo de captura; el servidor lo parsea con el fallback a 0.
type FilaFinancieraIn struct {
	Anio    int    `json:"anio" validate:"required,gt=1900,lt=3004"`
	Entidad string `json:"entidad" validate:"required"`
	Valor   string `json:"valor"`
}

type EstructuraFinancieraRequest struct {
	AnioInicio int                `json:"anio_inicio" validate:"required,gt=1900,lt=3000"`
	Filas      []FilaFinancieraIn `json:"filas" validate:"dive"`
}

type PoliticaIn struct {
	IDPolitica     int64  `json:"id_politica" validate:"required,gt=0"`
	IDCategoria    *int64 `json:"id_categoria" validate:"omitempty,gt=0"`
	IDSubcategoria *int64 `json:"id_subcategoria" validate:"omitempty,gt=0"`
	ValorDestinado string `json:"valor_destinado"`
}

type PoliticasRequest struct {
	Politicas []PoliticaIn `json:"politicas" validate:"max=2,dive"`
}

type RespuestaIn struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	Respuesta string `json:"respuesta" validate:"omitempty,oneof=SI NO si no Si No"`
}

type RespuestasRequest struct {
	Respuestas []RespuestaIn `json:"respuestas" validate:"dive"`
}

type ObservacionRequest struct {
	TipoDocumento   string  `json:"tipo_documento" validate:"required,oneof=OBSERVACIONES VIABILIDAD VIABILIDAD_AJUSTADA"`
	ContenidoHTML   string  `json:"contenido_html" validate:"required"`
	NombreEvaluador string  `json:"nombre_evaluador" validate:"required"`
	CargoEvaluador  *string `json:"cargo_evaluador"`
}

type RolRequest struct {
	Rol string `json:"rol" validate:"required,oneof=dependencia radicador evaluador"`
}

// FormularioResponse es el formulario completo que consume el asistente.
type FormularioResponse struct {
	Formulario           *domain.Formulario         `json:"formulario"`
	Metas                []*domain.MetaSeleccionada `json:"metas"`
	Politicas            []*domain.PoliticaAsignada `json:"politicas"`
	EstructuraFinanciera []*domain.FilaFinanciera   `json:"estructura_financiera"`
	Conciliacion         *ConciliacionResponse      `json:"conciliacion"`
}

// ConciliacionResponse es la señal consultiva que pinta la alerta de
// totales; nunca bloquea nada.
type ConciliacionResponse struct {
	TotalProyecto  decimal.Decimal `json:"total_proyecto"`
	TotalPoliticas decimal.Decimal `json:"total_politicas"`
	Diferencia     decimal.Decimal `json:"diferencia"`
	Coinciden      bool            `json:"coinciden"`
}

type ListaProyectosResponse struct {
	Items    []*domain.ProyectoResumen `json:"items"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

type BackfillResponse struct {
	Sectores  int `json:"sectores"`
	Programas int `json:"programas"`
}
