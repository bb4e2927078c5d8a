// Package server exposes an index over HTTP for inspection and manual
// testing.
package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-bptree/pkg/common/http/handler"
	"github.com/huynhanx03/go-bptree/pkg/datastructs/btree"
	"github.com/huynhanx03/go-bptree/pkg/settings"
)

// Server serves one SyncTree.
type Server struct {
	cfg    settings.Server
	index  *btree.SyncTree[int64, string]
	logger *zap.Logger
	engine *gin.Engine
}

// New builds the router. The server does not listen until Run.
func New(cfg settings.Server, index *btree.SyncTree[int64, string], logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(cfg.Mode)

	s := &Server{
		cfg:    cfg,
		index:  index,
		logger: logger,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), requestLogger(logger))
	s.routes()
	return s
}

func (s *Server) routes() {
	v1 := s.engine.Group("/v1")
	{
		v1.POST("/records", handler.Wrap(s.insert))
		v1.GET("/records", handler.Wrap(s.list))
		v1.GET("/records/:key", handler.Wrap(s.get))
		v1.PUT("/records/:key", handler.Wrap(s.update))
		v1.DELETE("/records/:key", handler.Wrap(s.delete))
		v1.GET("/stats", handler.Wrap(s.stats))
	}
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeout)*time.Second)
		defer cancel()

		s.logger.Info("http server shutting down")
		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
	})
	return g.Wait()
}

// requestLogger logs one entry per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
