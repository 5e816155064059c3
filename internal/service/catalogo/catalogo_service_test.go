package catalogo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store"
)

type fakeStore struct {
	store.Store

	mx        sync.Mutex
	lineas    []string
	sectores  []*domain.Sector
	programas []*domain.Programa
	nextID    int64
}

func (f *fakeStore) UpsertLinea(_ context.Context, nombre string) (*domain.LineaEstrategica, error) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.lineas = append(f.lineas, nombre)
	f.nextID++
	return &domain.LineaEstrategica{ID: f.nextID, Nombre: nombre}, nil
}

func (f *fakeStore) UpsertSector(_ context.Context, sector *domain.Sector) (*domain.Sector, error) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.nextID++
	sector.ID = f.nextID
	f.sectores = append(f.sectores, sector)
	return sector, nil
}

func (f *fakeStore) UpsertPrograma(_ context.Context, programa *domain.Programa) (*domain.Programa, error) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.nextID++
	programa.ID = f.nextID
	f.programas = append(f.programas, programa)
	return programa, nil
}

const paginaIndice = `<html><body><article>
<table>
  <caption>Línea 1. Desarrollo social</caption>
  <tbody>
    <tr><td>40</td><td><a href="/sector/40">Vivienda</a></td></tr>
    <tr><td>43</td><td><a href="/sector/43">Deporte y recreación</a></td></tr>
  </tbody>
</table>
<table>
  <caption>Línea 2. Infraestructura</caption>
  <tbody>
    <tr><td>24</td><td><a href="/sector/24">Transporte</a></td></tr>
  </tbody>
</table>
</article></body></html>`

const paginaProgramas = `<html><body>
<table><tbody>
  <tr><td>4001</td><td>Acceso a soluciones de vivienda</td></tr>
  <tr><td>4002</td><td>Ordenamiento territorial</td></tr>
</tbody></table>
</body></html>`

func TestBackfillCatalogoMGA(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			_, _ = w.Write([]byte(paginaIndice))
			return
		}
		_, _ = w.Write([]byte(paginaProgramas))
	}))
	defer srv.Close()

	st := &fakeStore{}
	svc := NewService(st)

	resumen, err := svc.BackfillCatalogoMGA(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("BackfillCatalogoMGA: %v", err)
	}

	if resumen.Sectores != 3 {
		t.Errorf("Sectores = %d, want 3", resumen.Sectores)
	}
	if resumen.Programas != 6 {
		t.Errorf("Programas = %d, want 6", resumen.Programas)
	}

	if len(st.lineas) != 2 {
		t.Fatalf("len(lineas) = %d, want 2", len(st.lineas))
	}
	if st.lineas[0] != "Línea 1. Desarrollo social" {
		t.Errorf("linea = %q", st.lineas[0])
	}

	var transporte *domain.Sector
	for _, s := range st.sectores {
		if s.CodigoSector == 24 {
			transporte = s
		}
	}
	if transporte == nil {
		t.Fatal("no se importó el sector 24")
	}
	if transporte.NombreSector != "Transporte" {
		t.Errorf("NombreSector = %q, want Transporte", transporte.NombreSector)
	}

	for _, p := range st.programas {
		if p.IDSector == 0 {
			t.Errorf("programa %d sin sector asignado", p.CodigoPrograma)
		}
	}
}

func TestBackfillCatalogoMGAErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "mantenimiento", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewService(&fakeStore{})
	if _, err := svc.BackfillCatalogoMGA(context.Background(), srv.URL); err == nil {
		t.Fatal("err = nil, want error de status")
	}
}
