// Command gridpath runs grid searches from the command line or serves them
// over HTTP.
//
// Usage:
//
//	gridpath search -maze maze.txt [-algo bfs] [-conn 8]
//	gridpath serve [-addr :8080]
//
// Configuration is read from GRIDPATH_CONFIG and GRIDPATH_* environment
// variables; flags override it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/api"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/render"
)

const usage = `usage:
  gridpath search -maze FILE [-algo NAME] [-conn 4|8]
  gridpath serve [-addr HOST:PORT]`

var errUsage = errors.New(usage)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// run dispatches a subcommand; it returns instead of exiting so tests can
// drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	var cmd func(config.Config) error
	switch args[0] {
	case "search":
		cmd = func(cfg config.Config) error { return runSearch(cfg, args[1:], stdin, stdout, stderr) }
	case "serve":
		cmd = func(cfg config.Config) error { return runServe(cfg, args[1:], stderr) }
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}

	// Validation waits until the subcommand has applied its flags.
	cfg, err := config.Read()
	if err != nil {
		return err
	}

	return cmd(cfg)
}

func runSearch(cfg config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algo := fs.String("algo", cfg.Search.Algorithm, "search algorithm: "+strings.Join(algorithms.Names(), ", "))
	mazePath := fs.String("maze", "", "maze file ('-' for stdin, '.br' for brotli-compressed)")
	conn := fs.Int("conn", cfg.Search.Conn, "connectivity: 4 or 8")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mazePath == "" {
		return fmt.Errorf("search: -maze is required\n%w", errUsage)
	}
	cfg.Search.Algorithm = *algo
	cfg.Search.Conn = *conn
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := readMaze(*mazePath, stdin)
	if err != nil {
		return err
	}
	g, err := gridgraph.Parse(text, cfg.GridOptions())
	if err != nil {
		return err
	}

	logger := logging.New(stderr, cfg.Logging.Level, cfg.Logging.Pretty)
	start := time.Now()
	res, err := algorithms.Search(context.Background(), cfg.Search.Algorithm, g)
	if err != nil {
		return err
	}
	logger.Info().
		Str("algorithm", cfg.Search.Algorithm).
		Bool("found", res.Found).
		Int("expanded", len(res.ExpandedNodes)).
		Int("path_len", len(res.Path)).
		Dur("duration", time.Since(start)).
		Msg("search")

	fmt.Fprintln(stdout, render.ASCII(g, res))
	fmt.Fprintln(stdout, render.Summary(res))

	return nil
}

// readMaze loads maze text from path; "-" reads stdin and a ".br" suffix
// is inflated with brotli.
func readMaze(path string, stdin io.Reader) (string, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("search: %w", err)
		}
		defer f.Close()
		r = f
	}
	if strings.HasSuffix(path, ".br") {
		r = brotli.NewReader(r)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("search: read %s: %w", path, err)
	}

	return string(b), nil
}

func runServe(cfg config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", cfg.Server.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Server.Addr = *addr
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewLogger(cfg)
	if logger.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	reg, m := metrics.Init(logger)
	server := api.NewServer(cfg, logger, reg, m).HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	logger.Info().Str("addr", cfg.Server.Addr).Str("algorithm", cfg.Search.Algorithm).Msg("gridpath server started")

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("http server error")
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	logger.Info().Msg("shutdown complete")

	return nil
}
