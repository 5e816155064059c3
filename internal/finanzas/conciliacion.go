package finanzas

import (
	"github.com/shopspring/decimal"

	"github.com/dplaneacion/formularios-mga/internal/pkg/money"
)

// MaxPoliticas: un formulario lleva a lo sumo dos filas de política.
const MaxPoliticas = 2

// PoliticaFila es una asignación de política transversal: la terna
// (política, categoría, subcategoría) se estrecha hacia abajo y el monto
// destina recursos del proyecto a esa política.
type PoliticaFila struct {
	IDPolitica     *int64
	IDCategoria    *int64
	IDSubcategoria *int64
	ValorTexto     string
}

// Normalizada limpia las selecciones dependientes: una categoría solo tiene
// sentido bajo su política y una subcategoría bajo su categoría.
func (f PoliticaFila) Normalizada() PoliticaFila {
	if f.IDPolitica == nil {
		f.IDCategoria = nil
	}
	if f.IDCategoria == nil {
		f.IDSubcategoria = nil
	}
	return f
}

// TotalPoliticas suma los montos de las filas de política.
func TotalPoliticas(filas []PoliticaFila) decimal.Decimal {
	total := decimal.Zero
	for _, f := range filas {
		total = total.Add(money.ParseOrZero(f.ValorTexto))
	}
	return money.Round2(total)
}

// Conciliacion compara el total del proyecto contra el total de políticas.
// Es solo una señal para la interfaz: un desacuerdo muestra una alerta y
// jamás bloquea guardar ni descargar.
type Conciliacion struct {
	TotalProyecto  decimal.Decimal
	TotalPoliticas decimal.Decimal
	Diferencia     decimal.Decimal
	Coinciden      bool
}

// Conciliar reporta igualdad al nivel del centavo y la diferencia con signo,
// que se muestra aunque los totales "coincidan" bajo tolerancia.
func Conciliar(totalProyecto, totalPoliticas decimal.Decimal) Conciliacion {
	return Conciliacion{
		TotalProyecto:  totalProyecto,
		TotalPoliticas: totalPoliticas,
		Diferencia:     money.Round2(totalProyecto.Sub(totalPoliticas)),
		Coinciden:      money.Equal(totalProyecto, totalPoliticas),
	}
}
