package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/martinuzal/pharmind-api/internal/application/auth"
	"github.com/martinuzal/pharmind-api/internal/application/crm"
	"github.com/martinuzal/pharmind-api/internal/application/esquema"
	"github.com/martinuzal/pharmind-api/internal/application/usecase"
	"github.com/martinuzal/pharmind-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	EmpresaUC     *usecase.EmpresaUseCase
	CatalogoUC    *usecase.CatalogoUseCase
	EsquemaUC     *esquema.UseCase
	ClienteUC     *crm.ClienteUseCase
	AgenteUC      *crm.AgenteUseCase
	RelacionUC    *crm.RelacionUseCase
	InteraccionUC *crm.InteraccionUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", MetricsMiddleware())

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Empresas (público por ahora; el registro de usuario necesita una empresa previa)
	empresas := api.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/:id", empresaHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloGestion := RequireRole(entity.RoleAdmin, entity.RoleGerente)

	// Esquemas personalizados (escritura solo admin/gerente)
	esquemas := protected.Group("/esquemas")
	esquemaHandler := NewEsquemaHandler(deps.EsquemaUC)
	esquemas.Post("/", soloGestion, esquemaHandler.Create)
	esquemas.Get("/", esquemaHandler.List)
	esquemas.Get("/activo", esquemaHandler.GetActivo)
	esquemas.Get("/:id", esquemaHandler.GetByID)
	esquemas.Put("/:id", soloGestion, esquemaHandler.Update)
	esquemas.Delete("/:id", soloGestion, esquemaHandler.Delete)

	// Catálogos (escritura solo admin/gerente)
	catalogos := protected.Group("/catalogos")
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	catalogos.Post("/regiones", soloGestion, catalogoHandler.CreateRegion)
	catalogos.Get("/regiones", catalogoHandler.ListRegiones)
	catalogos.Get("/regiones/:id/distritos", catalogoHandler.ListDistritos)
	catalogos.Post("/distritos", soloGestion, catalogoHandler.CreateDistrito)
	catalogos.Post("/managers", soloGestion, catalogoHandler.CreateManager)
	catalogos.Get("/managers", catalogoHandler.ListManagers)
	catalogos.Post("/productos", soloGestion, catalogoHandler.CreateProducto)
	catalogos.Get("/productos", catalogoHandler.ListProductos)

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Agentes
	agentes := protected.Group("/agentes")
	agenteHandler := NewAgenteHandler(deps.AgenteUC)
	agentes.Post("/", soloGestion, agenteHandler.Create)
	agentes.Get("/", agenteHandler.List)
	agentes.Get("/:id", agenteHandler.GetByID)
	agentes.Put("/:id", soloGestion, agenteHandler.Update)
	agentes.Delete("/:id", soloGestion, agenteHandler.Delete)

	// Relaciones + interacciones anidadas
	relaciones := protected.Group("/relaciones")
	relacionHandler := NewRelacionHandler(deps.RelacionUC)
	interaccionHandler := NewInteraccionHandler(deps.InteraccionUC)
	relaciones.Post("/", relacionHandler.Create)
	relaciones.Get("/", relacionHandler.List)
	relaciones.Get("/:id", relacionHandler.GetByID)
	relaciones.Put("/:id", relacionHandler.Update)
	relaciones.Delete("/:id", relacionHandler.Delete)
	relaciones.Get("/:id/interacciones", interaccionHandler.ListByRelacion)

	// Interacciones
	interacciones := protected.Group("/interacciones")
	interacciones.Post("/", interaccionHandler.Create)
	interacciones.Get("/:id", interaccionHandler.GetByID)
	interacciones.Put("/:id", interaccionHandler.Update)
	interacciones.Delete("/:id", interaccionHandler.Delete)
}
