package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

// ErrGridTooLarge is returned when a maze exceeds server.max_grid_cells.
var ErrGridTooLarge = errors.New("api: grid too large")

// SearchRequest is the body of POST /api/v1/search. Zero-valued optional
// fields fall back to the search section of the configuration.
type SearchRequest struct {
	Algorithm      string  `json:"algorithm"`
	Maze           string  `json:"maze" binding:"required"`
	Conn           int     `json:"conn"`
	OrthogonalCost float64 `json:"orthogonalCost"`
	DiagonalCost   float64 `json:"diagonalCost"`
	Render         bool    `json:"render"`
}

// SearchResponse is the body of a successful search. Cells are [row, col].
type SearchResponse struct {
	Algorithm     string   `json:"algorithm"`
	Found         bool     `json:"found"`
	Cost          float64  `json:"cost"`
	Hops          int      `json:"hops"`
	Path          [][2]int `json:"path"`
	Expanded      [][2]int `json:"expanded"`
	Rendered      string   `json:"rendered,omitempty"`
	ExecutionTime float64  `json:"executionTimeMs"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"algorithms": algorithms.Names(),
		"default":    s.cfg.Search.Algorithm,
	})
}

func (s *Server) search(c *gin.Context) {
	// a maze costs at most two bytes per cell (symbol + newline)
	limit := int64(2*s.cfg.Server.MaxGridCells) + 4096
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	name := req.Algorithm
	if name == "" {
		name = s.cfg.Search.Algorithm
	}
	run, err := algorithms.Lookup(name)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	g, err := s.buildGrid(req)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	res, err := run(c.Request.Context(), g)
	elapsed := time.Since(start)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		s.fail(c, status, err)
		return
	}
	s.metrics.Observe(name, res, elapsed)

	s.logger.Debug().
		Str("rid", RequestID(c)).
		Str("algorithm", name).
		Bool("found", res.Found).
		Int("expanded", len(res.ExpandedNodes)).
		Int("path_len", len(res.Path)).
		Dur("duration", elapsed).
		Msg("search")

	resp := SearchResponse{
		Algorithm:     name,
		Found:         res.Found,
		Cost:          res.Cost,
		Hops:          res.Hops(),
		Path:          toPairs(res.Path),
		Expanded:      toPairs(res.ExpandedNodes),
		ExecutionTime: float64(elapsed.Microseconds()) / 1000.0,
	}
	if req.Render {
		resp.Rendered = render.ASCII(g, res)
	}
	c.JSON(http.StatusOK, resp)
}

// buildGrid parses req.Maze with the request's overrides applied on top of
// the configured search options.
func (s *Server) buildGrid(req SearchRequest) (*gridgraph.GridGraph, error) {
	opts := s.cfg.GridOptions()
	switch req.Conn {
	case 0:
	case 4:
		opts.Conn = gridgraph.Conn4
	case 8:
		opts.Conn = gridgraph.Conn8
	default:
		return nil, fmt.Errorf("conn must be 4 or 8, got %d", req.Conn)
	}
	if req.OrthogonalCost != 0 {
		opts.OrthogonalCost = req.OrthogonalCost
	}
	if req.DiagonalCost != 0 {
		opts.DiagonalCost = req.DiagonalCost
	}

	g, err := gridgraph.Parse(req.Maze, opts)
	if err != nil {
		return nil, err
	}
	if cells := g.Rows * g.Cols; cells > s.cfg.Server.MaxGridCells {
		return nil, fmt.Errorf("%w: %d cells, limit %d", ErrGridTooLarge, cells, s.cfg.Server.MaxGridCells)
	}

	return g, nil
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	ev := s.logger.Warn()
	if status >= 500 {
		ev = s.logger.Error()
	}
	ev.Str("rid", RequestID(c)).Int("status", status).Err(err).Msg("search rejected")
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}

func toPairs(cells []core.Cell) [][2]int {
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.Row, c.Col}
	}

	return out
}
