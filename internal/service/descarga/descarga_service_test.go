package descarga

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/finanzas"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store"
)

type fakeStore struct {
	store.Store

	detalle    *domain.FormularioDetalle
	metas      []*domain.Meta
	politicas  []*domain.PoliticaDetalle
	estructura []*domain.FilaFinanciera
	respuestas map[store.RespuestaTabla][]*domain.RespuestaVariable
	sectorial  []*domain.VariableSectorial
	tecnico    []*domain.VariableTecnico
}

func (f *fakeStore) GetFormularioDetalle(_ context.Context, _ int64) (*domain.FormularioDetalle, error) {
	return f.detalle, nil
}

func (f *fakeStore) ListMetasDetalle(_ context.Context, _ int64) ([]*domain.Meta, error) {
	return f.metas, nil
}

func (f *fakeStore) ListPoliticasDetalle(_ context.Context, _ int64) ([]*domain.PoliticaDetalle, error) {
	return f.politicas, nil
}

func (f *fakeStore) ListEstructuraFinanciera(_ context.Context, _ int64) ([]*domain.FilaFinanciera, error) {
	return f.estructura, nil
}

func (f *fakeStore) ListRespuestas(_ context.Context, tabla store.RespuestaTabla, _ int64) ([]*domain.RespuestaVariable, error) {
	return f.respuestas[tabla], nil
}

func (f *fakeStore) ListVariablesSectorial(_ context.Context) ([]*domain.VariableSectorial, error) {
	return f.sectorial, nil
}

func (f *fakeStore) ListVariablesTecnico(_ context.Context) ([]*domain.VariableTecnico, error) {
	return f.tecnico, nil
}

func testStore() *fakeStore {
	dependencia := "Secretaría de Planeación"
	linea := "Línea 2. Infraestructura"
	sector := "Transporte"
	programa := "Infraestructura red vial regional"
	codSector := 24
	codPrograma := 2402
	inicio := 2024

	return &fakeStore{
		detalle: &domain.FormularioDetalle{
			ID:                1,
			NombreProyecto:    "Mejoramiento de vías terciarias",
			CodIDMGA:          202401,
			AnioInicio:        &inicio,
			NombreDependencia: &dependencia,
			NombreLinea:       &linea,
			CodigoSector:      &codSector,
			NombreSector:      &sector,
			CodigoPrograma:    &codPrograma,
			NombrePrograma:    &programa,
		},
		metas: []*domain.Meta{
			{NumeroMeta: 101, NombreMeta: "Kilómetros mejorados"},
			{NumeroMeta: 102, NombreMeta: "Puentes intervenidos"},
		},
		politicas: []*domain.PoliticaDetalle{
			{NombrePolitica: "Primera infancia", ValorDestinado: decimal.RequireFromString("1234.56")},
		},
		estructura: []*domain.FilaFinanciera{
			{Anio: 2024, Entidad: finanzas.EntidadPropios, Valor: decimal.RequireFromString("1000")},
			{Anio: 2024, Entidad: finanzas.EntidadMunicipio, Valor: decimal.RequireFromString("500.50")},
		},
		respuestas: map[store.RespuestaTabla][]*domain.RespuestaVariable{
			store.RespuestasSectorial: {
				{IDVariable: 1, Respuesta: "SI"},
				{IDVariable: 2, Respuesta: "NO"},
			},
		},
		sectorial: []*domain.VariableSectorial{{ID: 1}, {ID: 2}, {ID: 3}},
		tecnico:   []*domain.VariableTecnico{{ID: 10}},
	}
}

func TestExcelConceptoTecnicoSectorial(t *testing.T) {
	svc := NewService(testStore())

	buf, nombre, err := svc.ExcelConceptoTecnicoSectorial(context.Background(), 1)
	if err != nil {
		t.Fatalf("ExcelConceptoTecnicoSectorial: %v", err)
	}
	if !strings.HasPrefix(nombre, "1_concepto_tecnico_y_sectorial_") || !strings.HasSuffix(nombre, ".xlsx") {
		t.Errorf("nombre = %q", nombre)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("excelize.OpenReader: %v", err)
	}
	defer func() { _ = f.Close() }()

	leer := func(hoja, celda string) string {
		t.Helper()
		v, err := f.GetCellValue(hoja, celda)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s): %v", hoja, celda, err)
		}
		return v
	}

	if got := leer("Concepto", "D3"); got != "Mejoramiento de vías terciarias" {
		t.Errorf("D3 = %q", got)
	}
	if got := leer("Concepto", "C5"); got != "202401" {
		t.Errorf("C5 = %q", got)
	}
	if got := leer("Concepto", "F8"); got != "Transporte" {
		t.Errorf("F8 = %q", got)
	}
	if got := leer("Concepto", "C12"); got != "101" {
		t.Errorf("C12 = %q", got)
	}
	if got := leer("Concepto", "C18"); got != "" {
		t.Errorf("C18 = %q, want vacío (solo dos metas)", got)
	}
	// variable sectorial 1 contestada SI, la 3 sin contestar
	if got := leer("Concepto", "H31"); got != "Sí" {
		t.Errorf("H31 = %q", got)
	}
	if got := leer("Concepto", "H33"); got != "No" {
		t.Errorf("H33 = %q", got)
	}
	if got := leer("Concepto", "E43"); got != "Primera infancia" {
		t.Errorf("E43 = %q", got)
	}
	if got := leer("Concepto", "E46"); got != "1.234,56" {
		t.Errorf("E46 = %q", got)
	}

	// la matriz arranca con el encabezado y DEPARTAMENTO en la fila 2
	if got := leer("Estructura financiera", "A2"); got != "DEPARTAMENTO" {
		t.Errorf("A2 = %q", got)
	}
	if got := leer("Estructura financiera", "B2"); got != "1.000" {
		t.Errorf("B2 = %q (DEPARTAMENTO 2024)", got)
	}
	if got := leer("Estructura financiera", "B1"); got != "2024" {
		t.Errorf("B1 = %q", got)
	}
}

func TestExcelSinEstructura(t *testing.T) {
	st := testStore()
	st.detalle.AnioInicio = nil
	st.estructura = nil
	svc := NewService(st)

	buf, _, err := svc.ExcelConceptoTecnicoSectorial(context.Background(), 1)
	if err != nil {
		t.Fatalf("ExcelConceptoTecnicoSectorial: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	got, err := f.GetCellValue("Estructura financiera", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Sin estructura financiera registrada" {
		t.Errorf("A1 = %q", got)
	}
}
