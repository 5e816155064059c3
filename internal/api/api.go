package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/dplaneacion/formularios-mga/internal/api/controller"
	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
	"github.com/dplaneacion/formularios-mga/internal/pkg/logger"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store"
	"github.com/dplaneacion/formularios-mga/internal/service/auth"
	"github.com/dplaneacion/formularios-mga/internal/service/catalogo"
	"github.com/dplaneacion/formularios-mga/internal/service/descarga"
	"github.com/dplaneacion/formularios-mga/internal/service/proyecto"
)

type APIService struct {
	router *echo.Echo

	proyectoService *proyecto.Service
	catalogoService *catalogo.Service
	descargaService *descarga.Service
	authService     *auth.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     viper.GetStringSlice(constants.ViperKeyCORSOrigins),
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	svc.proyectoService = proyecto.NewService(st)
	svc.catalogoService = catalogo.NewService(st)
	svc.descargaService = descarga.NewService(st)
	svc.authService = auth.NewService()

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.proyectoService, svc.catalogoService, svc.descargaService, svc.authService)

	catalogos := api.Group("/catalogos")
	catalogos.GET("/lineas", cntrl.GetLineas)
	catalogos.GET("/lineas/:id/sectores", cntrl.GetSectores)
	catalogos.GET("/sectores/:id/programas", cntrl.GetProgramas)
	catalogos.GET("/programas/:id/metas", cntrl.GetMetas)
	catalogos.GET("/dependencias", cntrl.GetDependencias)
	catalogos.GET("/politicas", cntrl.GetPoliticas)
	catalogos.GET("/politicas/:id/categorias", cntrl.GetCategorias)
	catalogos.GET("/categorias/:id/subcategorias", cntrl.GetSubcategorias)
	catalogos.GET("/variables/sectorial", cntrl.GetVariablesSectorial)
	catalogos.GET("/variables/tecnico", cntrl.GetVariablesTecnico)
	catalogos.GET("/viabilidades", cntrl.GetViabilidades)
	catalogos.POST("/mga/backfill", cntrl.BackfillCatalogoMGA, svc.AdminMiddleware)

	proyectos := api.Group("/proyectos")
	proyectos.POST("", cntrl.CrearProyecto)
	proyectos.GET("", cntrl.ListarProyectos)
	proyectos.GET("/:id", cntrl.GetProyecto)
	proyectos.PUT("/:id/basicos", cntrl.GuardarBasicos)
	proyectos.PUT("/:id/metas", cntrl.GuardarMetas)
	proyectos.PUT("/:id/estructura-financiera", cntrl.GuardarEstructuraFinanciera)
	proyectos.PUT("/:id/politicas", cntrl.GuardarPoliticas)
	proyectos.PUT("/:id/respuestas/:tabla", cntrl.GuardarRespuestas)
	proyectos.GET("/:id/respuestas/:tabla", cntrl.GetRespuestas)
	proyectos.GET("/:id/conciliacion", cntrl.GetConciliacion)

	proyectos.POST("/:id/observaciones", cntrl.CrearObservacion, svc.EvaluadorMiddleware)
	proyectos.GET("/:id/observaciones", cntrl.GetObservaciones, svc.EvaluadorMiddleware)

	descargas := api.Group("/descarga")
	descargas.GET("/excel/concepto-tecnico-sectorial/:id", cntrl.DescargarExcelConcepto)

	authGroup := api.Group("/auth")
	authGroup.POST("/rol", cntrl.ElegirRol)

	return svc, nil
}
