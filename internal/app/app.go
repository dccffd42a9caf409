package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/charmbracelet/lipgloss"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordlens/internal/adapter/provider/datamuse"
	"github.com/heartmarshall/wordlens/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordlens/internal/config"
	"github.com/heartmarshall/wordlens/internal/service/analysis"
	"github.com/heartmarshall/wordlens/internal/transport/mcptools"
	"github.com/heartmarshall/wordlens/internal/transport/middleware"
	"github.com/heartmarshall/wordlens/internal/transport/rest"
	"github.com/heartmarshall/wordlens/internal/transport/terminal"
)

// App holds the analysis service and the configuration shared by every
// front end.
type App struct {
	cfg *config.Config
	log *slog.Logger
	svc *analysis.Service
}

// New builds the providers and the analysis service. Logs go to logOut.
func New(cfg *config.Config, logOut io.Writer) *App {
	logger := NewLogger(cfg.Log, logOut)

	svc := analysis.NewService(
		logger,
		datamuse.NewProvider(cfg.Providers.Frequency, logger),
		freedict.NewProvider(cfg.Providers.Dictionary, logger),
		analysis.ThresholdsFromConfig(cfg.Difficulty),
	)

	return &App{cfg: cfg, log: logger, svc: svc}
}

// Handler builds the HTTP handler with its middleware stack. The returned
// stop func releases the rate limiter.
func (a *App) Handler(registry *analysis.Registry) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(a.cfg.RateLimit)

	router := rest.NewRouter(
		rest.NewAnalysisHandler(a.svc, registry, a.log),
		rest.NewHealthHandler(registry, BuildVersion()),
	)

	h := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS),
		limiter.Middleware(),
	)(router)

	return h, limiter.Stop
}

// Serve runs the HTTP API until ctx is done, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	registry := analysis.NewRegistry(a.cfg.Session)
	handler, stop := a.Handler(registry)
	defer stop()

	srv := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	a.log.Info("starting http server",
		slog.String("version", BuildVersion()),
		slog.String("addr", srv.Addr),
		slog.String("log_level", a.cfg.Log.Level),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		registry.Run(gctx, a.cfg.Session.SweepInterval)
		return nil
	})

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// REPL runs the interactive terminal front end until the user quits.
func (a *App) REPL(ctx context.Context, out io.Writer) error {
	theme := terminal.NewTheme(lipgloss.NewRenderer(out))
	repl := terminal.NewREPL(a.svc, terminal.NewRenderer(theme), out, a.log)
	repl.Run(ctx, BuildVersion())
	return nil
}

// MCP serves the MCP tools over stdin and stdout until ctx is done or
// stdin is closed.
func (a *App) MCP(ctx context.Context, in io.Reader, out io.Writer) error {
	srv := mcptools.NewServer(mcptools.New(a.svc, a.log), Version)

	a.log.Info("starting mcp stdio server", slog.String("version", BuildVersion()))

	err := server.NewStdioServer(srv).Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp stdio: %w", err)
	}
	return nil
}
