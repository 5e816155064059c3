// Package finanzas calcula la estructura financiera de un proyecto:
// el valor derivado DEPARTAMENTO, los totales por año y de proyecto, y la
// conciliación contra el total de políticas.
//
// Todas las operaciones son funciones puras de un snapshot inmutable; se
// pueden recalcular en cada tecla sin memoización.
package finanzas

import (
	"github.com/shopspring/decimal"

	"github.com/dplaneacion/formularios-mga/internal/pkg/money"
)

// AniosProyecto: la estructura cubre siempre cuatro vigencias consecutivas.
const AniosProyecto = 4

// Anios deriva el rango de vigencias del año de inicio: exactamente cuatro
// años consecutivos, o vacío si el inicio falta o está fuera de rango
// (1900–3000 exclusivo).
func Anios(inicio int) []int {
	if inicio <= 1900 || inicio >= 3000 {
		return nil
	}
	return []int{inicio, inicio + 1, inicio + 2, inicio + 3}
}

// Celda identifica un monto por (vigencia, entidad).
type Celda struct {
	Anio    int
	Entidad Entidad
}

// Estructura es el snapshot inmutable de texto crudo por celda. DEPARTAMENTO
// no tiene texto propio: su valor se deriva siempre de sus fuentes, así el
// valor mostrado no puede divergir de ellas.
type Estructura struct {
	celdas map[Celda]string
}

func NuevaEstructura() Estructura {
	return Estructura{}
}

// Con devuelve un snapshot nuevo con la celda escrita; el receptor no se
// modifica. Escribir la entidad derivada no tiene efecto.
func (e Estructura) Con(anio int, ent Entidad, texto string) Estructura {
	if ent.EsDerivada() {
		return e
	}

	celdas := make(map[Celda]string, len(e.celdas)+1)
	for k, v := range e.celdas {
		celdas[k] = v
	}
	celdas[Celda{Anio: anio, Entidad: ent}] = texto

	return Estructura{celdas: celdas}
}

func (e Estructura) Texto(anio int, ent Entidad) string {
	return e.celdas[Celda{Anio: anio, Entidad: ent}]
}

// Valor es el valor canónico de la celda; lo imparseable cuenta como 0.
func (e Estructura) Valor(anio int, ent Entidad) decimal.Decimal {
	return money.ParseOrZero(e.Texto(anio, ent))
}

// Departamento calcula la entidad derivada para una vigencia: la suma de
// PROPIOS y todas las transferencias SGP, redondeada a 2 decimales.
func (e Estructura) Departamento(anio int) decimal.Decimal {
	total := decimal.Zero
	for _, ent := range FuentesDepartamento {
		total = total.Add(e.Valor(anio, ent))
	}
	return money.Round2(total)
}

// TotalAnio suma la vigencia completa. La entidad derivada reemplaza a sus
// fuentes en la suma: total = DEPARTAMENTO + MUNICIPIO + NACION + OTROS,
// nunca las fuentes y el derivado como sumandos separados.
func (e Estructura) TotalAnio(anio int) decimal.Decimal {
	total := e.Departamento(anio)
	for _, ent := range []Entidad{EntidadMunicipio, EntidadNacion, EntidadOtros} {
		total = total.Add(e.Valor(anio, ent))
	}
	return money.Round2(total)
}

// TotalProyecto suma TotalAnio sobre el rango de vigencias; 0 si el año de
// inicio no define un rango.
func (e Estructura) TotalProyecto(inicio int) decimal.Decimal {
	total := decimal.Zero
	for _, anio := range Anios(inicio) {
		total = total.Add(e.TotalAnio(anio))
	}
	return money.Round2(total)
}

// Fila es el registro plano {vigencia, entidad, valor} que viaja hacia y
// desde persistencia.
type Fila struct {
	Anio    int
	Entidad Entidad
	Valor   decimal.Decimal
}

// Filas aplana el snapshot para guardar: una fila por entidad no derivada
// (imparseable → 0) y al final de cada vigencia la fila DEPARTAMENTO
// recalculada.
func (e Estructura) Filas(inicio int) []Fila {
	anios := Anios(inicio)
	filas := make([]Fila, 0, len(anios)*len(Entidades))

	for _, anio := range anios {
		for _, ent := range Entidades {
			if ent.EsDerivada() {
				continue
			}
			filas = append(filas, Fila{Anio: anio, Entidad: ent, Valor: e.Valor(anio, ent)})
		}
		filas = append(filas, Fila{Anio: anio, Entidad: EntidadDepartamento, Valor: e.Departamento(anio)})
	}

	return filas
}

// DesdeFilas reconstruye el snapshot al cargar un formulario: cada monto se
// formatea de vuelta a texto es-CO y los ceros quedan como texto vacío. Las
// filas DEPARTAMENTO persistidas se descartan; el valor se deriva de nuevo.
func DesdeFilas(filas []Fila) Estructura {
	e := NuevaEstructura()
	for _, f := range filas {
		if f.Entidad.EsDerivada() || !f.Entidad.Valida() {
			continue
		}

		texto := ""
		if !f.Valor.IsZero() {
			texto = money.Format(f.Valor)
		}
		e = e.Con(f.Anio, f.Entidad, texto)
	}
	return e
}
