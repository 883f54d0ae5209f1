// Package server exposes the optimizer as an HTTP JSON API.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/piwi3910/guillocut/internal/engine"
	"github.com/piwi3910/guillocut/internal/model"
)

// DefaultMaxCells caps the value table of a single request when the
// configured settings leave it unlimited.
const DefaultMaxCells = 25_000_000

// SolveRequest is the body of /api/solve and /api/value. Settings are
// optional and replace the server defaults as a whole. Missing pieces are an
// empty catalog.
type SolveRequest struct {
	Board    model.Board     `json:"board"`
	Pieces   model.Catalog   `json:"pieces"`
	Settings *model.Settings `json:"settings,omitempty"`
}

// SweepRequest is the body of /api/sweep.
type SweepRequest struct {
	From     int             `json:"from"`
	To       int             `json:"to"`
	Height   int             `json:"height"`
	Pieces   model.Catalog   `json:"pieces"`
	Settings *model.Settings `json:"settings,omitempty"`
}

// Server routes HTTP requests to the optimizer.
type Server struct {
	settings model.Settings
	router   *gin.Engine
}

// New builds a server whose requests default to the given settings.
func New(settings model.Settings) *Server {
	if settings.MaxCells <= 0 {
		settings.MaxCells = DefaultMaxCells
	}
	s := &Server{settings: settings}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.POST("/solve", s.handleSolve)
	api.POST("/value", s.handleValue)
	api.POST("/sweep", s.handleSweep)
	api.GET("/profiles", s.handleProfiles)

	s.router = r
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until the server fails.
func (s *Server) Run(addr string) error {
	log.Info().Str("addr", addr).Msg("serving optimizer API")
	return s.router.Run(addr)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) optimizer(override *model.Settings) *engine.Optimizer {
	settings := s.settings
	if override != nil {
		settings = *override
		if settings.NegativeValues == "" {
			settings.NegativeValues = model.NegativeReject
		}
		if settings.MaxCells <= 0 || settings.MaxCells > s.settings.MaxCells {
			settings.MaxCells = s.settings.MaxCells
		}
	}
	return engine.New(settings)
}

// withIDs gives pieces posted without an ID a positional one so plans can
// tell piece types apart.
func withIDs(pieces model.Catalog) model.Catalog {
	out := make(model.Catalog, len(pieces))
	for i, p := range pieces {
		if p.ID == "" {
			p.ID = fmt.Sprintf("p%d", i+1)
		}
		if p.Label == "" {
			p.Label = p.ID
		}
		out[i] = p
	}
	return out
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSolve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := s.optimizer(req.Settings).Solve(req.Board, withIDs(req.Pieces))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) handleValue(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value, err := s.optimizer(req.Settings).Value(req.Board, req.Pieces)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": value})
}

func (s *Server) handleSweep(c *gin.Context) {
	var req SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points, err := s.optimizer(req.Settings).SweepWidths(req.From, req.To, req.Height, req.Pieces)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

func (s *Server) handleProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": model.GetProfileNames()})
}

// respondError maps optimizer errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrTableTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, engine.ErrInvalidDimension),
		errors.Is(err, engine.ErrNegativeValue),
		errors.Is(err, engine.ErrInvalidValue):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
