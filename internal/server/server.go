package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turingco/quotation/internal/config"
	"github.com/turingco/quotation/internal/observability"
	quotationdomain "github.com/turingco/quotation/internal/quotation/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	log    *zap.Logger
	db     *gorm.DB

	quotationSvc quotationdomain.Service
	metrics      *observability.Metrics
}

type ServerParam struct {
	fx.In

	Engine *gin.Engine
	Log    *zap.Logger
	DB     *gorm.DB

	QuotationSvc quotationdomain.Service
	Metrics      *observability.Metrics `optional:"true"`
}

func NewServer(p ServerParam) *Server {
	return &Server{
		engine: p.Engine,
		log:    p.Log.Named("server"),
		db:     p.DB,

		quotationSvc: p.QuotationSvc,
		metrics:      p.Metrics,
	}
}

func NewEngine(cfg *config.Config, log *zap.Logger, metrics *observability.Metrics) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		accessLogMiddleware(log.Named("http")),
		metricsMiddleware(metrics),
	)
	return engine
}

func (s *Server) RegisterRoutes() {
	s.engine.GET("/healthz", s.GetHealthz)
	s.engine.GET("/readyz", s.GetReadyz)
	s.registerMetricsRoute()

	v1 := s.engine.Group("/v1")
	{
		v1.POST("/quotations", s.CreateQuotation)
		v1.GET("/quotations", s.ListQuotations)
		v1.GET("/quotations/:id", s.GetQuotation)
		v1.GET("/quotations/:id/amounts", s.GetQuotationAmounts)
		v1.POST("/quotations/:id/issue", s.IssueQuotation)
	}
}

func RunHTTP(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.Server.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
