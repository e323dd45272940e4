package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsSource is the read-only slice of the ledger the status surface
// needs. It must be safe for concurrent use.
type StatsSource interface {
	Len() int
	Owners() int
}

// Server exposes unauthenticated liveness endpoints for the hosting
// platform: a human-readable banner, /health and /stats.
type Server struct {
	http *http.Server
	log  *zap.Logger
}

func New(addr string, trades StatsSource, log *zap.Logger) *Server {
	return &Server{
		log: log,
		http: &http.Server{
			Addr:         addr,
			Handler:      newEngine(trades),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

func newEngine(trades StatsSource) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "🚀 CFJournal bot is running!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
	r.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"trades_logged": trades.Len(),
			"users":         trades.Owners(),
			"server_time":   time.Now().Format(time.RFC3339),
		})
	})

	return r
}

// Start serves in the background and shuts down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) {
	go func() {
		s.log.Info("health server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("health server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			s.log.Error("health server shutdown", zap.Error(err))
		}
	}()
}
