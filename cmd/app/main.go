package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"travelplanner/cmd/fx/config_fx"
	"travelplanner/cmd/fx/controllers_fx"
	"travelplanner/cmd/fx/prompt_fx"
	"travelplanner/internal/api/controllers"
	"travelplanner/internal/config"
	"travelplanner/internal/form"
	"travelplanner/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		prompt_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.ModelConfig.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}
			log.Info("Starting HTTP server", zap.String("port", cfg.Port))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	itineraryController *controllers.ItineraryController,
	formController *controllers.FormController) (*gin.Engine, error) {

	gin.SetMode(gin.ReleaseMode)
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	}

	r, err := NewRouter(cfg, log)
	if err != nil {
		return nil, err
	}

	// Registers /metrics; must run before the routes it instruments.
	p := ginprometheus.NewPrometheus("gin")
	p.Use(r)

	RegisterRoutes(r, cfg, itineraryController, formController)

	return r, nil
}

// NewRouter builds the engine with the shared middleware chain and page template.
func NewRouter(cfg *config.Config, log *zap.Logger) (*gin.Engine, error) {
	tmpl, err := form.PageTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger(log))
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	return r, nil
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	itineraryController *controllers.ItineraryController,
	formController *controllers.FormController) {

	r.GET("/", formController.ShowFormHandler)
	r.POST("/", formController.SubmitFormHandler)
	r.GET("/health", controllers.HealthHandler)
	r.HEAD("/health", controllers.HealthHandler)

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))
	apiGroup.POST("/message", itineraryController.CreateItineraryHandler)
	apiGroup.OPTIONS("/message", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}
