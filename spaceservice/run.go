// Package spaceservice boots the YouSpace HTTP server: configuration,
// store selection, story generator and object storage, wired into the
// REST router.
package spaceservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/youspace/youspace/internal/api/httpapi"
	"github.com/youspace/youspace/internal/config"
	"github.com/youspace/youspace/internal/factory"
	"github.com/youspace/youspace/internal/health"
	"github.com/youspace/youspace/internal/objectstore"
	"github.com/youspace/youspace/internal/platform/logger"
	"github.com/youspace/youspace/internal/services"
	"github.com/youspace/youspace/internal/store"
	"github.com/youspace/youspace/internal/story"
)

// Run starts the space service HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("space-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Str("story_model", cfg.StoryModel).
		Msg("Space service starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, gen, objects, err := initDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}

	var uploader objectstore.SignedUploader
	if cfg.SupabaseURL != "" && cfg.SupabaseServiceKey != "" {
		uploader = objects
	} else {
		log.Warn().Msg("Object storage not configured, upload endpoint disabled")
	}

	var healthy func() bool
	if pinger, ok := st.(store.HealthPinger); ok {
		checker := health.NewStoreChecker(pinger, log, 2*time.Second)
		go checker.Start(ctx, 30*time.Second)
		healthy = checker.IsHealthy
	}

	svc := services.NewSpaceService(st, gen, objects, log)
	router := httpapi.NewRouter(svc, st, uploader, gen, healthy, log)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies constructs the store, the story generator and the
// object storage client. The generator is always built: without an API
// key every completion fails over to the deterministic fallback.
func initDependencies(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, *story.Generator, *objectstore.Client, error) {
	st, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return nil, nil, nil, err
	}

	llm := story.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.StoryModel, cfg.CaptionModel)
	gen := story.New(llm, llm, log,
		story.WithTimeout(time.Duration(cfg.GenerationTimeoutSeconds)*time.Second),
		story.WithMaxTokens(cfg.StoryMaxTokens, cfg.CaptionMaxTokens),
	)

	objects := objectstore.New(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseBucket)
	return st, gen, objects, nil
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
