package proyecto

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/domain/dto"
	"github.com/dplaneacion/formularios-mga/internal/finanzas"
	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store"
)

// fakeStore es el doble en memoria de store.Store para las pruebas del
// servicio; solo implementa con sustancia lo que estas pruebas tocan.
type fakeStore struct {
	store.Store

	formularios map[int64]*domain.Formulario
	estructura  map[int64][]domain.FilaFinanciera
	politicas   map[int64][]domain.PoliticaAsignada
	metas       map[int64][]domain.MetaSeleccionada
	nextID      int64

	replaceRespuestas func(tabla store.RespuestaTabla, formID int64, respuestas []domain.RespuestaVariable) error
}

func (f *fakeStore) ReplaceRespuestas(_ context.Context, tabla store.RespuestaTabla, formID int64, respuestas []domain.RespuestaVariable) error {
	if f.replaceRespuestas != nil {
		return f.replaceRespuestas(tabla, formID, respuestas)
	}
	return nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		formularios: make(map[int64]*domain.Formulario),
		estructura:  make(map[int64][]domain.FilaFinanciera),
		politicas:   make(map[int64][]domain.PoliticaAsignada),
		metas:       make(map[int64][]domain.MetaSeleccionada),
		nextID:      1,
	}
}

func (f *fakeStore) CreateFormularioMinimo(_ context.Context, nombre string, codMGA, idDependencia int64) (*domain.Formulario, error) {
	form := &domain.Formulario{
		ID:             f.nextID,
		NombreProyecto: nombre,
		CodIDMGA:       codMGA,
		IDDependencia:  &idDependencia,
	}
	f.formularios[form.ID] = form
	f.nextID++
	return form, nil
}

func (f *fakeStore) GetFormulario(_ context.Context, id int64) (*domain.Formulario, error) {
	form, ok := f.formularios[id]
	if !ok {
		return nil, constants.ErrFormularioNotFound
	}
	return form, nil
}

func (f *fakeStore) SetAnioInicio(_ context.Context, id int64, anio int) error {
	form, ok := f.formularios[id]
	if !ok {
		return constants.ErrFormularioNotFound
	}
	form.AnioInicio = &anio
	return nil
}

func (f *fakeStore) ReplaceEstructuraFinanciera(_ context.Context, formID int64, filas []domain.FilaFinanciera) error {
	f.estructura[formID] = filas
	return nil
}

func (f *fakeStore) ListEstructuraFinanciera(_ context.Context, formID int64) ([]*domain.FilaFinanciera, error) {
	filas := f.estructura[formID]
	out := make([]*domain.FilaFinanciera, 0, len(filas))
	for i := range filas {
		out = append(out, &filas[i])
	}
	return out, nil
}

func (f *fakeStore) ReplacePoliticas(_ context.Context, formID int64, filas []domain.PoliticaAsignada) error {
	f.politicas[formID] = filas
	return nil
}

func (f *fakeStore) ListPoliticasPorFormulario(_ context.Context, formID int64) ([]*domain.PoliticaAsignada, error) {
	filas := f.politicas[formID]
	out := make([]*domain.PoliticaAsignada, 0, len(filas))
	for i := range filas {
		out = append(out, &filas[i])
	}
	return out, nil
}

func (f *fakeStore) ReplaceMetas(_ context.Context, formID int64, metas []domain.MetaSeleccionada) error {
	f.metas[formID] = metas
	return nil
}

func (f *fakeStore) ListMetasPorFormulario(_ context.Context, formID int64) ([]*domain.MetaSeleccionada, error) {
	metas := f.metas[formID]
	out := make([]*domain.MetaSeleccionada, 0, len(metas))
	for i := range metas {
		out = append(out, &metas[i])
	}
	return out, nil
}

func crearFormulario(t *testing.T, svc *Service) *domain.Formulario {
	t.Helper()
	form, err := svc.CrearMinimo(context.Background(), &dto.CrearMinimoRequest{
		NombreProyecto: "Mejoramiento de vías terciarias",
		CodIDMGA:       202401,
		IDDependencia:  3,
	})
	if err != nil {
		t.Fatalf("CrearMinimo: %v", err)
	}
	return form
}

func TestGuardarEstructuraFinancieraRecalculaDepartamento(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st)
	form := crearFormulario(t, svc)

	filas, err := svc.GuardarEstructuraFinanciera(context.Background(), form.ID, &dto.EstructuraFinancieraRequest{
		AnioInicio: 2024,
		Filas: []dto.FilaFinancieraIn{
			{Anio: 2024, Entidad: "PROPIOS", Valor: "1.000,00"},
			{Anio: 2024, Entidad: "SGP EDUCACION", Valor: "500,50"},
			{Anio: 2024, Entidad: "MUNICIPIO", Valor: "200"},
			// la fila DEPARTAMENTO del cliente se descarta siempre
			{Anio: 2024, Entidad: "DEPARTAMENTO", Valor: "9.999.999"},
		},
	})
	if err != nil {
		t.Fatalf("GuardarEstructuraFinanciera: %v", err)
	}

	// 12 entidades no derivadas + DEPARTAMENTO, por 4 vigencias
	if got, want := len(filas), 13*finanzas.AniosProyecto; got != want {
		t.Fatalf("len(filas) = %d, want %d", got, want)
	}

	var depto *domain.FilaFinanciera
	for _, fila := range filas {
		if fila.Anio == 2024 && fila.Entidad == finanzas.EntidadDepartamento {
			depto = fila
		}
	}
	if depto == nil {
		t.Fatal("no se persistió la fila DEPARTAMENTO de 2024")
	}
	if want := decimal.RequireFromString("1500.50"); !depto.Valor.Equal(want) {
		t.Errorf("DEPARTAMENTO 2024 = %s, want %s", depto.Valor, want)
	}

	actualizado, err := st.GetFormulario(context.Background(), form.ID)
	if err != nil {
		t.Fatal(err)
	}
	if actualizado.AnioInicio == nil || *actualizado.AnioInicio != 2024 {
		t.Errorf("anio_inicio = %v, want 2024", actualizado.AnioInicio)
	}
}

func TestGuardarEstructuraFinancieraAnioInvalido(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st)
	form := crearFormulario(t, svc)

	_, err := svc.GuardarEstructuraFinanciera(context.Background(), form.ID, &dto.EstructuraFinancieraRequest{
		AnioInicio: 1900,
	})
	if !errors.Is(err, constants.ErrBadRequest) {
		t.Fatalf("err = %v, want ErrBadRequest", err)
	}
}

func TestGuardarEstructuraFinancieraFormularioInexistente(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.GuardarEstructuraFinanciera(context.Background(), 99, &dto.EstructuraFinancieraRequest{AnioInicio: 2024})
	if !errors.Is(err, constants.ErrFormularioNotFound) {
		t.Fatalf("err = %v, want ErrFormularioNotFound", err)
	}
}

func TestGuardarPoliticasMaximoDos(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st)
	form := crearFormulario(t, svc)

	req := &dto.PoliticasRequest{Politicas: []dto.PoliticaIn{
		{IDPolitica: 1}, {IDPolitica: 2}, {IDPolitica: 3},
	}}
	if err := svc.GuardarPoliticas(context.Background(), form.ID, req); !errors.Is(err, constants.ErrDemasiadasPoliticas) {
		t.Fatalf("err = %v, want ErrDemasiadasPoliticas", err)
	}
}

func TestGuardarPoliticasNormalizaYParsea(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st)
	form := crearFormulario(t, svc)

	categoria := int64(7)
	subcategoria := int64(9)
	err := svc.GuardarPoliticas(context.Background(), form.ID, &dto.PoliticasRequest{
		Politicas: []dto.PoliticaIn{
			{IDPolitica: 4, IDSubcategoria: &subcategoria, ValorDestinado: "1.234,56"},
			{IDPolitica: 5, IDCategoria: &categoria, ValorDestinado: "no es un número"},
		},
	})
	if err != nil {
		t.Fatalf("GuardarPoliticas: %v", err)
	}

	guardadas := st.politicas[form.ID]
	if len(guardadas) != 2 {
		t.Fatalf("len(politicas) = %d, want 2", len(guardadas))
	}
	// subcategoría sin categoría se descarta
	if guardadas[0].IDSubcategoria != nil {
		t.Errorf("IDSubcategoria = %v, want nil", *guardadas[0].IDSubcategoria)
	}
	if want := decimal.RequireFromString("1234.56"); !guardadas[0].ValorDestinado.Equal(want) {
		t.Errorf("ValorDestinado = %s, want %s", guardadas[0].ValorDestinado, want)
	}
	// monto imparseable se guarda como 0
	if !guardadas[1].ValorDestinado.IsZero() {
		t.Errorf("ValorDestinado = %s, want 0", guardadas[1].ValorDestinado)
	}
}

func TestConciliacion(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st)
	form := crearFormulario(t, svc)

	ctx := context.Background()
	_, err := svc.GuardarEstructuraFinanciera(ctx, form.ID, &dto.EstructuraFinancieraRequest{
		AnioInicio: 2024,
		Filas: []dto.FilaFinancieraIn{
			{Anio: 2024, Entidad: "PROPIOS", Valor: "600,00"},
			{Anio: 2025, Entidad: "MUNICIPIO", Valor: "400,00"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.GuardarPoliticas(ctx, form.ID, &dto.PoliticasRequest{
		Politicas: []dto.PoliticaIn{
			{IDPolitica: 1, ValorDestinado: "500,00"},
			{IDPolitica: 2, ValorDestinado: "500,00"},
		},
	}); err != nil {
		t.Fatal(err)
	}

	c, err := svc.Conciliacion(ctx, form.ID)
	if err != nil {
		t.Fatalf("Conciliacion: %v", err)
	}

	if want := decimal.RequireFromString("1000"); !c.TotalProyecto.Equal(want) {
		t.Errorf("TotalProyecto = %s, want %s", c.TotalProyecto, want)
	}
	if want := decimal.RequireFromString("1000"); !c.TotalPoliticas.Equal(want) {
		t.Errorf("TotalPoliticas = %s, want %s", c.TotalPoliticas, want)
	}
	if !c.Coinciden {
		t.Error("Coinciden = false, want true")
	}
	if !c.Diferencia.IsZero() {
		t.Errorf("Diferencia = %s, want 0", c.Diferencia)
	}
}

func TestConciliacionDesacuerdo(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st)
	form := crearFormulario(t, svc)

	ctx := context.Background()
	if _, err := svc.GuardarEstructuraFinanciera(ctx, form.ID, &dto.EstructuraFinancieraRequest{
		AnioInicio: 2024,
		Filas:      []dto.FilaFinancieraIn{{Anio: 2024, Entidad: "NACION", Valor: "100,00"}},
	}); err != nil {
		t.Fatal(err)
	}

	if err := svc.GuardarPoliticas(ctx, form.ID, &dto.PoliticasRequest{
		Politicas: []dto.PoliticaIn{{IDPolitica: 1, ValorDestinado: "90,00"}},
	}); err != nil {
		t.Fatal(err)
	}

	c, err := svc.Conciliacion(ctx, form.ID)
	if err != nil {
		t.Fatal(err)
	}
	if c.Coinciden {
		t.Error("Coinciden = true, want false")
	}
	if want := decimal.RequireFromString("10"); !c.Diferencia.Equal(want) {
		t.Errorf("Diferencia = %s, want %s", c.Diferencia, want)
	}
}

func TestGuardarRespuestasNormaliza(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st)
	form := crearFormulario(t, svc)

	guardadas := make([]domain.RespuestaVariable, 0)
	st.replaceRespuestas = func(tabla store.RespuestaTabla, formID int64, respuestas []domain.RespuestaVariable) error {
		guardadas = respuestas
		return nil
	}

	err := svc.GuardarRespuestas(context.Background(), form.ID, store.RespuestasSectorial, &dto.RespuestasRequest{
		Respuestas: []dto.RespuestaIn{
			{ID: 1, Respuesta: "si"},
			{ID: 2, Respuesta: ""},
			{ID: 3, Respuesta: " No "},
		},
	})
	if err != nil {
		t.Fatalf("GuardarRespuestas: %v", err)
	}

	if len(guardadas) != 2 {
		t.Fatalf("len(respuestas) = %d, want 2", len(guardadas))
	}
	if guardadas[0].Respuesta != "SI" || guardadas[1].Respuesta != "NO" {
		t.Errorf("respuestas = %q, %q; want SI, NO", guardadas[0].Respuesta, guardadas[1].Respuesta)
	}
}
