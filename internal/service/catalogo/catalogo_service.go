// Package catalogo importa el catálogo MGA publicado (líneas estratégicas,
// sectores y programas presupuestales) hacia las tablas de catálogo.
package catalogo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/dplaneacion/formularios-mga/internal/domain"
	"github.com/dplaneacion/formularios-mga/internal/domain/dto"
	"github.com/dplaneacion/formularios-mga/internal/pkg/logger"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// Los listados normalizan cada registro de catálogo a domain.Opcion, la
// forma única que consumen los desplegables del asistente.

func (s *Service) Lineas(ctx context.Context) ([]domain.Opcion, error) {
	lineas, err := s.store.ListLineas(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListLineas: %w", err)
	}

	opciones := make([]domain.Opcion, 0, len(lineas))
	for _, l := range lineas {
		opciones = append(opciones, domain.OpcionDesdeLinea(l))
	}
	return opciones, nil
}

func (s *Service) Sectores(ctx context.Context, lineaID int64) ([]domain.Opcion, error) {
	sectores, err := s.store.ListSectores(ctx, lineaID)
	if err != nil {
		return nil, fmt.Errorf("store.ListSectores: %w", err)
	}

	opciones := make([]domain.Opcion, 0, len(sectores))
	for _, sec := range sectores {
		opciones = append(opciones, domain.OpcionDesdeSector(sec))
	}
	return opciones, nil
}

func (s *Service) Programas(ctx context.Context, sectorID int64) ([]domain.Opcion, error) {
	programas, err := s.store.ListProgramas(ctx, sectorID)
	if err != nil {
		return nil, fmt.Errorf("store.ListProgramas: %w", err)
	}

	opciones := make([]domain.Opcion, 0, len(programas))
	for _, p := range programas {
		opciones = append(opciones, domain.OpcionDesdePrograma(p))
	}
	return opciones, nil
}

func (s *Service) Metas(ctx context.Context, programaID int64) ([]domain.Opcion, error) {
	metas, err := s.store.ListMetas(ctx, programaID)
	if err != nil {
		return nil, fmt.Errorf("store.ListMetas: %w", err)
	}

	opciones := make([]domain.Opcion, 0, len(metas))
	for _, m := range metas {
		opciones = append(opciones, domain.OpcionDesdeMeta(m))
	}
	return opciones, nil
}

func (s *Service) Dependencias(ctx context.Context) ([]domain.Opcion, error) {
	dependencias, err := s.store.ListDependencias(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListDependencias: %w", err)
	}

	opciones := make([]domain.Opcion, 0, len(dependencias))
	for _, d := range dependencias {
		opciones = append(opciones, domain.OpcionDesdeDependencia(d))
	}
	return opciones, nil
}

func (s *Service) Politicas(ctx context.Context) ([]domain.Opcion, error) {
	politicas, err := s.store.ListPoliticas(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListPoliticas: %w", err)
	}

	opciones := make([]domain.Opcion, 0, len(politicas))
	for _, p := range politicas {
		opciones = append(opciones, domain.OpcionDesdePolitica(p))
	}
	return opciones, nil
}

func (s *Service) Categorias(ctx context.Context, politicaID int64) ([]domain.Opcion, error) {
	categorias, err := s.store.ListCategorias(ctx, politicaID)
	if err != nil {
		return nil, fmt.Errorf("store.ListCategorias: %w", err)
	}

	opciones := make([]domain.Opcion, 0, len(categorias))
	for _, c := range categorias {
		opciones = append(opciones, domain.OpcionDesdeCategoria(c))
	}
	return opciones, nil
}

func (s *Service) Subcategorias(ctx context.Context, categoriaID int64) ([]domain.Opcion, error) {
	subcategorias, err := s.store.ListSubcategorias(ctx, categoriaID)
	if err != nil {
		return nil, fmt.Errorf("store.ListSubcategorias: %w", err)
	}

	opciones := make([]domain.Opcion, 0, len(subcategorias))
	for _, sc := range subcategorias {
		opciones = append(opciones, domain.OpcionDesdeSubcategoria(sc))
	}
	return opciones, nil
}

func (s *Service) VariablesSectorial(ctx context.Context) ([]*domain.VariableSectorial, error) {
	return s.store.ListVariablesSectorial(ctx)
}

func (s *Service) VariablesTecnico(ctx context.Context) ([]*domain.VariableTecnico, error) {
	return s.store.ListVariablesTecnico(ctx)
}

func (s *Service) Viabilidades(ctx context.Context) ([]*domain.Viabilidad, error) {
	return s.store.ListViabilidades(ctx)
}

// BackfillCatalogoMGA descarga la página índice del catálogo y la recorre:
// una tabla por línea estratégica con el nombre en el caption, una fila por
// sector con el enlace a su página de programas. Las páginas de programas se
// bajan en paralelo.
func (s *Service) BackfillCatalogoMGA(ctx context.Context, mainURL string) (*dto.BackfillResponse, error) {
	resp, err := http.Get(mainURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get main page: %w", err)
	}
	defer func() {
		err = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	var (
		resumen   dto.BackfillResponse
		resumenMx sync.Mutex
	)
	eg, egCtx := errgroup.WithContext(ctx)

	doc.Find("article table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		nombreLinea := strings.TrimSpace(table.Find("caption").Text())
		if nombreLinea == "" {
			return true
		}

		linea, upsertErr := s.store.UpsertLinea(ctx, nombreLinea)
		if upsertErr != nil {
			err = fmt.Errorf("store.UpsertLinea, linea-%s: %w", nombreLinea, upsertErr)
			return false
		}

		table.Find("tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
			tds := tr.Find("td")
			codigo, parseErr := strconv.Atoi(strings.TrimSpace(tds.Eq(0).Text()))
			if parseErr != nil {
				err = fmt.Errorf("failed to parse codigo_sector: %w", parseErr)
				return false
			}
			nombreSector := strings.TrimSpace(tds.Eq(1).Text())

			href, ok := tr.Find("td a").Attr("href")
			if !ok {
				err = fmt.Errorf("couldn't find href for sector %s", nombreSector)
				return false
			}

			sector, upsertErr := s.store.UpsertSector(ctx, &domain.Sector{
				IDLineaEstrategica: linea.ID,
				CodigoSector:       codigo,
				NombreSector:       nombreSector,
			})
			if upsertErr != nil {
				err = fmt.Errorf("store.UpsertSector, sector-%s: %w", nombreSector, upsertErr)
				return false
			}

			resumenMx.Lock()
			resumen.Sectores++
			resumenMx.Unlock()

			programasURL := resolverURL(mainURL, href)
			eg.Go(func() error {
				n, fillErr := s.importarProgramas(egCtx, sector, programasURL)
				if fillErr != nil {
					return fmt.Errorf("importarProgramas, sector-%d: %w", sector.CodigoSector, fillErr)
				}

				logger.Infof(egCtx, "catálogo: sector %d con %d programas", sector.CodigoSector, n)

				resumenMx.Lock()
				resumen.Programas += n
				resumenMx.Unlock()
				return nil
			})

			return true
		})

		return err == nil
	})
	if err != nil {
		return nil, err
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return &resumen, nil
}

// importarProgramas baja la página de programas de un sector con reintentos
// y persiste una fila por programa.
func (s *Service) importarProgramas(ctx context.Context, sector *domain.Sector, url string) (n int, err error) {
	var resp *http.Response
	err = backoff.Retry(
		func() error {
			var httpErr error

			resp, httpErr = http.Get(url)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(100*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		return 0, err
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			err = fmt.Errorf("failed to close reader: %w", closeErr)
		}
	}()

	doc, parseErr := goquery.NewDocumentFromReader(resp.Body)
	if parseErr != nil {
		return 0, fmt.Errorf("goquery.NewDocumentFromReader: %w", parseErr)
	}

	doc.Find("table tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		tds := tr.Find("td")
		codigo, atoiErr := strconv.Atoi(strings.TrimSpace(tds.Eq(0).Text()))
		if atoiErr != nil {
			err = fmt.Errorf("failed to parse codigo_programa: %w", atoiErr)
			return false
		}
		nombre := strings.TrimSpace(tds.Eq(1).Text())

		if _, upsertErr := s.store.UpsertPrograma(ctx, &domain.Programa{
			IDSector:       sector.ID,
			CodigoPrograma: codigo,
			NombrePrograma: nombre,
		}); upsertErr != nil {
			err = fmt.Errorf("store.UpsertPrograma, programa-%d: %w", codigo, upsertErr)
			return false
		}

		n++
		return true
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

func resolverURL(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(href, "/")
}
