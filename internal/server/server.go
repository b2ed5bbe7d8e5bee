package server

import (
	"context"
	"net/http"
	"time"

	"github.com/flusio/soutenir/internal/account"
	accountdomain "github.com/flusio/soutenir/internal/account/domain"
	"github.com/flusio/soutenir/internal/auth/session"
	"github.com/flusio/soutenir/internal/config"
	"github.com/flusio/soutenir/internal/invoice"
	invoicedomain "github.com/flusio/soutenir/internal/invoice/domain"
	"github.com/flusio/soutenir/internal/payment"
	"github.com/flusio/soutenir/internal/pot"
	potdomain "github.com/flusio/soutenir/internal/pot/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	session.Module,
	account.Module,
	payment.Module,
	pot.Module,
	invoice.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(run),
)

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	log        *zap.Logger
	sessions   *session.Manager
	accountSvc accountdomain.Service
	potSvc     potdomain.Service
	invoiceSvc invoicedomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Log        *zap.Logger
	Sessions   *session.Manager
	AccountSvc accountdomain.Service
	PotSvc     potdomain.Service
	InvoiceSvc invoicedomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		log:        p.Log.Named("server"),
		sessions:   p.Sessions,
		accountSvc: p.AccountSvc,
		potSvc:     p.PotSvc,
		invoiceSvc: p.InvoiceSvc,
	}

	s.registerAccountRoutes()
	s.registerAPIRoutes()
	s.registerAdminRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAccountRoutes() {
	s.engine.GET("/account", s.ShowAccount)
	s.engine.GET("/account/login", s.Login)
	s.engine.POST("/account/login", s.Login)
	s.engine.POST("/account/pot-usages", s.CreatePotUsage)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/countries", s.ListCountries)
	api.GET("/pot", s.ShowPotAmount)

	// Internal provisioning endpoint, gated by the private key header.
	api.GET("/accounts", s.APIShowAccount)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin", s.AdminRequired())

	admin.POST("/pot-usages/move", s.MovePotUsages)
	admin.POST("/payments/:id/invoice", s.RenderInvoice)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
