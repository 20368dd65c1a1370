package http

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ServerConfig opciones del shell HTTP.
type ServerConfig struct {
	AppName      string
	AllowOrigins string // separado por comas; vacío = "*"
	DocsEnabled  bool
	DocsFile     string
}

// NewServer construye la app Fiber con middlewares, documentación opcional y rutas.
func NewServer(cfg ServerConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		ErrorHandler:          ErrorHandler(deps.Log),
		DisableStartupMessage: true,
	})

	app.Use(RequestLogger(deps.Log, deps.Metrics))
	app.Use(recover.New())

	origins := strings.TrimSpace(cfg.AllowOrigins)
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + HeaderRequestID,
		ExposeHeaders: HeaderRequestID,
	}))

	// Swagger UI en /docs; contrib/swagger entra en pánico si el archivo no existe.
	if cfg.DocsEnabled {
		if _, err := os.Stat(cfg.DocsFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsFile,
				Path:     "docs",
				Title:    cfg.AppName + " docs",
			}))
		} else {
			deps.Log.Warn().Str("file", cfg.DocsFile).Msg("DOCS_ENABLED sin archivo swagger, /docs deshabilitado")
		}
	}

	Router(app, deps)
	return app
}
