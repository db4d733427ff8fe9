// Package bootstrap wires the service together: configuration, logging,
// provider construction and the HTTP server lifecycle.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
	"golang.org/x/sync/errgroup"

	"visionvoice-server-go/internal/domain/describe"
	"visionvoice-server-go/internal/domain/eventbus"
	"visionvoice-server-go/internal/domain/speech"
	"visionvoice-server-go/internal/domain/vision"
	platformconfig "visionvoice-server-go/internal/platform/config"
	platformerrors "visionvoice-server-go/internal/platform/errors"
	platformlogging "visionvoice-server-go/internal/platform/logging"
	httptransport "visionvoice-server-go/internal/transport/http"
	httpanalyze "visionvoice-server-go/internal/transport/http/analyze"
	httpstatus "visionvoice-server-go/internal/transport/http/status"

	_ "visionvoice-server-go/internal/domain/speech/edge"
	_ "visionvoice-server-go/internal/domain/speech/polly"
	_ "visionvoice-server-go/internal/domain/vision/rekognition"
)

type stepFn func(context.Context, *appState) error

type initStep struct {
	ID        string
	Title     string
	DependsOn []string
	Kind      platformerrors.Kind
	Execute   stepFn
}

type appState struct {
	config         *platformconfig.Config
	configPath     string
	logger         *platformlogging.Logger
	analyzer       *vision.Analyzer
	generator      *describe.Generator
	speechProvider speech.Provider
}

// Run starts the full service lifecycle: init steps, HTTP server, and
// graceful shutdown on SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	state := &appState{}

	steps := InitGraph()
	if err := executeInitSteps(ctx, steps, state); err != nil {
		return err
	}

	config := state.config
	logger := state.logger
	if config == nil || logger == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"bootstrap state validation",
			"config/logger not initialised",
		)
	}

	rootCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCtx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)

	if _, err := startHTTPServer(state, group, groupCtx); err != nil {
		cancel()
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	if err := waitForShutdown(signalCtx, cancel, logger, group); err != nil {
		return err
	}

	logger.InfoTag("BOOT", "server stopped")
	logger.Close()
	return nil
}

func InitGraph() []initStep {
	return []initStep{
		{
			ID:      "config:load",
			Title:   "Load configuration",
			Kind:    platformerrors.KindConfig,
			Execute: loadConfigStep,
		},
		{
			ID:        "logging:init",
			Title:     "Initialise logging",
			DependsOn: []string{"config:load"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initLoggingStep,
		},
		{
			ID:        "events:setup",
			Title:     "Install event handlers",
			DependsOn: []string{"logging:init"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   setupEventsStep,
		},
		{
			ID:        "vision:init-provider",
			Title:     "Initialise vision provider",
			DependsOn: []string{"logging:init"},
			Kind:      platformerrors.KindVision,
			Execute:   initVisionStep,
		},
		{
			ID:        "describe:init-generator",
			Title:     "Initialise description generator",
			DependsOn: []string{"logging:init"},
			Kind:      platformerrors.KindDescribe,
			Execute:   initDescribeStep,
		},
		{
			ID:        "speech:init-provider",
			Title:     "Initialise speech provider",
			DependsOn: []string{"logging:init"},
			Kind:      platformerrors.KindSpeech,
			Execute:   initSpeechStep,
		},
	}
}

func executeInitSteps(ctx context.Context, steps []initStep, state *appState) error {
	if state == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"execute init steps",
			"nil bootstrap state",
		)
	}

	completed := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		for _, dep := range step.DependsOn {
			if _, ok := completed[dep]; !ok {
				return platformerrors.New(
					platformerrors.KindBootstrap,
					step.ID,
					fmt.Sprintf("dependency %s not satisfied", dep),
				)
			}
		}
		if step.Execute == nil {
			return platformerrors.New(
				platformerrors.KindBootstrap,
				step.ID,
				"missing execute function",
			)
		}
		if err := step.Execute(ctx, state); err != nil {
			var typed *platformerrors.Error
			if errors.As(err, &typed) {
				return err
			}

			kind := step.Kind
			if kind == "" {
				kind = platformerrors.KindBootstrap
			}
			return platformerrors.Wrap(kind, step.ID, "bootstrap step failed", err)
		}
		completed[step.ID] = struct{}{}
	}
	return nil
}

func loadConfigStep(_ context.Context, state *appState) error {
	result, err := platformconfig.NewLoader().Load()
	if err != nil {
		return err
	}
	state.config = result.Config
	state.configPath = result.Path
	return nil
}

func initLoggingStep(_ context.Context, state *appState) error {
	if state == nil || state.config == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"logging:init",
			"config not loaded",
		)
	}

	logger, err := platformlogging.New(platformlogging.Config{
		Level:    state.config.Log.Level,
		Dir:      state.config.Log.Dir,
		Filename: state.config.Log.File,
	})
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindBootstrap, "logging:init",
			"failed to initialise logging", err)
	}

	state.logger = logger
	platformlogging.DefaultLogger = logger

	logger.InfoTag("BOOT", "logging ready [%s], config from %s",
		state.config.Log.Level, state.configPath)
	return nil
}

func setupEventsStep(_ context.Context, state *appState) error {
	return eventbus.SetupEventHandlers(state.logger)
}

func initVisionStep(_ context.Context, state *appState) error {
	provider, err := vision.Create(state.config.Vision.Provider, state.config, state.logger)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindVision, "vision:init-provider",
			"failed to create vision provider", err)
	}
	state.analyzer = vision.NewAnalyzer(provider, state.logger)
	state.logger.InfoTag("BOOT", "vision provider ready: %s", state.config.Vision.Provider)
	return nil
}

func initDescribeStep(_ context.Context, state *appState) error {
	state.generator = describe.NewGenerator(
		state.config.Describe,
		thresholdsFromConfig(state.config),
		state.logger,
	)
	return nil
}

func initSpeechStep(_ context.Context, state *appState) error {
	provider, err := speech.Create(state.config.Speech.Provider, state.config, state.logger)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindSpeech, "speech:init-provider",
			"failed to create speech provider", err)
	}
	state.speechProvider = provider
	state.logger.InfoTag("BOOT", "speech provider ready: %s (default voice %s)",
		state.config.Speech.Provider, state.config.Speech.DefaultVoice)
	return nil
}

func thresholdsFromConfig(cfg *platformconfig.Config) describe.Thresholds {
	t := describe.DefaultThresholds()
	if cfg.Shaping.MinLabelConfidence > 0 {
		t.MinLabelConfidence = cfg.Shaping.MinLabelConfidence
	}
	if cfg.Shaping.MaxLabels > 0 {
		t.MaxLabels = cfg.Shaping.MaxLabels
	}
	if cfg.Shaping.MinAttributeConfidence > 0 {
		t.MinAttributeConfidence = cfg.Shaping.MinAttributeConfidence
	}
	if cfg.Shaping.MinCelebrityConfidence > 0 {
		t.MinCelebrityConfidence = cfg.Shaping.MinCelebrityConfidence
	}
	return t
}

func startHTTPServer(state *appState, g *errgroup.Group, groupCtx context.Context) (*http.Server, error) {
	config := state.config
	logger := state.logger

	httpRouter, err := httptransport.Build(httptransport.Options{
		Config: config,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	router := httpRouter.Engine
	apiGroup := httpRouter.API

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "rota não encontrada"})
			return
		}
		c.File(config.Web.StaticDir + "/index.html")
	})

	analyzeService := httpanalyze.NewService(config, logger, state.analyzer, state.generator, state.speechProvider)
	analyzeService.Register(router, apiGroup)

	statusService := httpstatus.NewService(config, logger, state.generator)
	statusService.Register(apiGroup)

	router.GET("/openapi.json", func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			logger.ErrorTag("HTTP", "failed to read OpenAPI doc: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "documentação indisponível"})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	})

	httpServer := &http.Server{
		Addr:    ":" + strconv.Itoa(config.Server.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.InfoTag("HTTP", "server listening on http://localhost:%d", config.Server.Port)

		go func() {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.ErrorTag("HTTP", "shutdown failed: %v", err)
			} else {
				logger.InfoTag("HTTP", "server shut down cleanly")
			}
		}()

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorTag("HTTP", "server failed: %v", err)
			return err
		}
		return nil
	})

	return httpServer, nil
}

func waitForShutdown(
	ctx context.Context,
	cancel context.CancelFunc,
	logger *platformlogging.Logger,
	g *errgroup.Group,
) error {
	<-ctx.Done()
	logger.InfoTag("BOOT", "received signal %v, shutting down", context.Cause(ctx))

	cancel()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.ErrorTag("BOOT", "error during shutdown: %v", err)
			return err
		}
		logger.InfoTag("BOOT", "all services stopped")
	case <-time.After(15 * time.Second):
		timeoutErr := errors.New("shutdown timed out")
		logger.ErrorTag("BOOT", "shutdown timed out, forcing exit")
		return timeoutErr
	}
	return nil
}
