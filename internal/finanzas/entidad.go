package finanzas

import "strings"

// Entidad es una fuente de financiación de la estructura financiera.
// Es una enumeración cerrada: ninguna entidad se crea ni destruye en
// runtime. DEPARTAMENTO es derivada: siempre se calcula, nunca se edita.
type Entidad string

const (
	EntidadDepartamento        Entidad = "DEPARTAMENTO"
	EntidadPropios             Entidad = "PROPIOS"
	EntidadSGPLibreInversion   Entidad = "SGP_LIBRE_INVERSION"
	EntidadSGPLibreDestinacion Entidad = "SGP_LIBRE_DESTINACION"
	EntidadSGPAPSB             Entidad = "SGP_APSB"
	EntidadSGPEducacion        Entidad = "SGP_EDUCACION"
	EntidadSGPAlimentacion     Entidad = "SGP_ALIMENTACION_ESCOLAR"
	EntidadSGPCultura          Entidad = "SGP_CULTURA"
	EntidadSGPDeporte          Entidad = "SGP_DEPORTE"
	EntidadSGPSalud            Entidad = "SGP_SALUD"
	EntidadMunicipio           Entidad = "MUNICIPIO"
	EntidadNacion              Entidad = "NACION"
	EntidadOtros               Entidad = "OTROS"
)

// Entidades en el orden en que se capturan y se persisten.
var Entidades = []Entidad{
	EntidadDepartamento,
	EntidadPropios,
	EntidadSGPLibreInversion,
	EntidadSGPLibreDestinacion,
	EntidadSGPAPSB,
	EntidadSGPEducacion,
	EntidadSGPAlimentacion,
	EntidadSGPCultura,
	EntidadSGPDeporte,
	EntidadSGPSalud,
	EntidadMunicipio,
	EntidadNacion,
	EntidadOtros,
}

// FuentesDepartamento son los sumandos del valor derivado DEPARTAMENTO:
// recursos propios más las ocho transferencias SGP.
var FuentesDepartamento = []Entidad{
	EntidadPropios,
	EntidadSGPLibreInversion,
	EntidadSGPLibreDestinacion,
	EntidadSGPAPSB,
	EntidadSGPEducacion,
	EntidadSGPAlimentacion,
	EntidadSGPCultura,
	EntidadSGPDeporte,
	EntidadSGPSalud,
}

func (e Entidad) EsSGP() bool {
	return strings.HasPrefix(string(e), "SGP_")
}

func (e Entidad) EsDerivada() bool {
	return e == EntidadDepartamento
}

func (e Entidad) Valida() bool {
	for _, ent := range Entidades {
		if e == ent {
			return true
		}
	}
	return false
}

// ParseEntidad normaliza el texto que llega del backend o de un import
// (espacios, minúsculas) contra la enumeración.
func ParseEntidad(s string) (Entidad, bool) {
	n := strings.ToUpper(strings.TrimSpace(s))
	n = strings.ReplaceAll(n, " ", "_")
	e := Entidad(n)
	return e, e.Valida()
}
