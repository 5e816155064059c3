// Package descarga genera los documentos descargables del formulario. El
// concepto técnico y sectorial sale como un libro xlsx armado celda a celda.
package descarga

import (
	"bytes"
	"context"
	"fmt"

	"github.com/labstack/gommon/random"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/finanzas"
	"github.com/dplaneacion/formularios-mga/internal/pkg/money"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store"
)

const (
	hojaConcepto   = "Concepto"
	hojaEstructura = "Estructura financiera"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// ExcelConceptoTecnicoSectorial arma el libro del concepto: una hoja con los
// datos del proyecto, metas, variables y políticas, y otra con la matriz de
// la estructura financiera y la conciliación. Devuelve el contenido y el
// nombre de archivo sugerido.
func (s *Service) ExcelConceptoTecnicoSectorial(ctx context.Context, formID int64) (*bytes.Buffer, string, error) {
	detalle, err := s.store.GetFormularioDetalle(ctx, formID)
	if err != nil {
		return nil, "", fmt.Errorf("store.GetFormularioDetalle: %w", err)
	}

	metas, err := s.store.ListMetasDetalle(ctx, formID)
	if err != nil {
		return nil, "", fmt.Errorf("store.ListMetasDetalle: %w", err)
	}

	politicas, err := s.store.ListPoliticasDetalle(ctx, formID)
	if err != nil {
		return nil, "", fmt.Errorf("store.ListPoliticasDetalle: %w", err)
	}

	filas, err := s.store.ListEstructuraFinanciera(ctx, formID)
	if err != nil {
		return nil, "", fmt.Errorf("store.ListEstructuraFinanciera: %w", err)
	}

	flagsSectorial, err := s.flagsVariables(ctx, formID, store.RespuestasSectorial)
	if err != nil {
		return nil, "", err
	}
	flagsTecnico, err := s.flagsVariables(ctx, formID, store.RespuestasTecnico)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	indice, err := f.NewSheet(hojaConcepto)
	if err != nil {
		return nil, "", fmt.Errorf("excelize.NewSheet: %w", err)
	}
	f.SetActiveSheet(indice)
	_ = f.DeleteSheet("Sheet1")

	if err := s.llenarConcepto(f, detalle, metas, politicas, flagsSectorial, flagsTecnico); err != nil {
		return nil, "", err
	}
	if err := s.llenarEstructura(f, detalle, filas, politicas); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("excelize.WriteToBuffer: %w", err)
	}

	nombre := fmt.Sprintf("%d_concepto_tecnico_y_sectorial_%s.xlsx", formID, random.String(6))
	return buf, nombre, nil
}

// flagsVariables recorre el catálogo de variables en orden y marca las que
// el formulario respondió con SI.
func (s *Service) flagsVariables(ctx context.Context, formID int64, tabla store.RespuestaTabla) ([]bool, error) {
	respuestas, err := s.store.ListRespuestas(ctx, tabla, formID)
	if err != nil {
		return nil, fmt.Errorf("store.ListRespuestas(%s): %w", tabla, err)
	}

	afirmativas := make(map[int64]bool, len(respuestas))
	for _, r := range respuestas {
		afirmativas[r.IDVariable] = r.Respuesta == "SI"
	}

	var ids []int64
	switch tabla {
	case store.RespuestasSectorial:
		variables, err := s.store.ListVariablesSectorial(ctx)
		if err != nil {
			return nil, fmt.Errorf("store.ListVariablesSectorial: %w", err)
		}
		for _, v := range variables {
			ids = append(ids, v.ID)
		}
	case store.RespuestasTecnico:
		variables, err := s.store.ListVariablesTecnico(ctx)
		if err != nil {
			return nil, fmt.Errorf("store.ListVariablesTecnico: %w", err)
		}
		for _, v := range variables {
			ids = append(ids, v.ID)
		}
	}

	flags := make([]bool, 0, len(ids))
	for _, id := range ids {
		flags = append(flags, afirmativas[id])
	}
	return flags, nil
}

func (s *Service) llenarConcepto(f *excelize.File, detalle *domain.FormularioDetalle, metas []*domain.Meta, politicas []*domain.PoliticaDetalle, flagsSectorial, flagsTecnico []bool) error {
	set := func(celda string, valor interface{}) {
		_ = f.SetCellValue(hojaConcepto, celda, valor)
	}
	texto := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	set("B3", "Nombre del proyecto")
	set("D3", detalle.NombreProyecto)
	set("B5", "Código MGA")
	set("C5", detalle.CodIDMGA)
	set("E5", "Dependencia")
	set("F5", texto(detalle.NombreDependencia))
	set("B8", "Código sector")
	if detalle.CodigoSector != nil {
		set("C8", *detalle.CodigoSector)
	}
	set("E8", "Sector")
	set("F8", texto(detalle.NombreSector))
	set("B9", "Código programa")
	if detalle.CodigoPrograma != nil {
		set("C9", *detalle.CodigoPrograma)
	}
	set("E9", "Programa")
	set("F9", texto(detalle.NombrePrograma))
	set("B10", "Línea estratégica")
	set("C10", texto(detalle.NombreLinea))

	// tres metas a lo sumo, cada una ocupa un bloque de tres filas
	celdasNumero := []string{"C12", "C15", "C18"}
	celdasNombre := []string{"C13", "C16", "C19"}
	for i, celda := range celdasNumero {
		if i < len(metas) {
			set(celda, metas[i].NumeroMeta)
		}
	}
	for i, celda := range celdasNombre {
		if i < len(metas) {
			set(celda, metas[i].NombreMeta)
		}
	}

	siNo := func(b bool) string {
		if b {
			return "Sí"
		}
		return "No"
	}
	for i := 0; i < 9; i++ {
		marcado := i < len(flagsSectorial) && flagsSectorial[i]
		set(fmt.Sprintf("H%d", 31+i), siNo(marcado))
	}
	for i := 0; i < 13; i++ {
		marcado := i < len(flagsTecnico) && flagsTecnico[i]
		set(fmt.Sprintf("J%d", 31+i), siNo(marcado))
	}

	// dos políticas a lo sumo, en columnas E y G
	columnas := []string{"E", "G"}
	for i, col := range columnas {
		if i >= len(politicas) {
			continue
		}
		p := politicas[i]
		set(col+"43", p.NombrePolitica)
		set(col+"44", texto(p.NombreCategoria))
		set(col+"45", texto(p.NombreSubcategoria))
		set(col+"46", money.Format(p.ValorDestinado))
	}

	return nil
}

func (s *Service) llenarEstructura(f *excelize.File, detalle *domain.FormularioDetalle, filas []*domain.FilaFinanciera, politicas []*domain.PoliticaDetalle) error {
	if _, err := f.NewSheet(hojaEstructura); err != nil {
		return fmt.Errorf("excelize.NewSheet: %w", err)
	}

	inicio := 0
	if detalle.AnioInicio != nil {
		inicio = *detalle.AnioInicio
	} else {
		for _, fila := range filas {
			if inicio == 0 || fila.Anio < inicio {
				inicio = fila.Anio
			}
		}
	}

	anios := finanzas.Anios(inicio)
	if anios == nil {
		_ = f.SetCellValue(hojaEstructura, "A1", "Sin estructura financiera registrada")
		return nil
	}

	planas := make([]finanzas.Fila, 0, len(filas))
	for _, fila := range filas {
		planas = append(planas, finanzas.Fila{Anio: fila.Anio, Entidad: fila.Entidad, Valor: fila.Valor})
	}
	est := finanzas.DesdeFilas(planas)

	set := func(col, row int, valor interface{}) {
		celda, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(hojaEstructura, celda, valor)
	}

	estilo, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err == nil {
		_ = f.SetCellStyle(hojaEstructura, "A1", fmt.Sprintf("%c1", 'A'+len(anios)+1), estilo)
	}

	set(1, 1, "ENTIDAD")
	for i, anio := range anios {
		set(2+i, 1, anio)
	}
	set(2+len(anios), 1, "TOTAL")

	row := 2
	for _, ent := range finanzas.Entidades {
		set(1, row, string(ent))
		total := decimal.Zero
		for i, anio := range anios {
			valor := est.Valor(anio, ent)
			if ent.EsDerivada() {
				valor = est.Departamento(anio)
			}
			total = total.Add(valor)
			set(2+i, row, money.Format(valor))
		}
		set(2+len(anios), row, money.Format(money.Round2(total)))
		row++
	}

	set(1, row, "TOTAL VIGENCIA")
	for i, anio := range anios {
		set(2+i, row, money.Format(est.TotalAnio(anio)))
	}
	totalProyecto := est.TotalProyecto(inicio)
	set(2+len(anios), row, money.Format(totalProyecto))
	row += 2

	totalPoliticas := money.Round2(sumaPoliticas(politicas))
	conciliacion := finanzas.Conciliar(totalProyecto, totalPoliticas)

	set(1, row, "TOTAL PROYECTO")
	set(2, row, money.Format(conciliacion.TotalProyecto))
	row++
	set(1, row, "TOTAL POLÍTICAS")
	set(2, row, money.Format(conciliacion.TotalPoliticas))
	row++
	set(1, row, "DIFERENCIA")
	set(2, row, money.Format(conciliacion.Diferencia))
	row++
	set(1, row, "COINCIDEN")
	if conciliacion.Coinciden {
		set(2, row, "SÍ")
	} else {
		set(2, row, "NO")
	}

	_ = f.SetColWidth(hojaEstructura, "A", "A", 28)

	return nil
}

func sumaPoliticas(politicas []*domain.PoliticaDetalle) (total decimal.Decimal) {
	for _, p := range politicas {
		total = total.Add(p.ValorDestinado)
	}
	return total
}
