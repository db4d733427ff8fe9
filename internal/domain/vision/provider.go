package vision

import (
	"context"
	"fmt"

	"visionvoice-server-go/internal/platform/config"
	"visionvoice-server-go/internal/platform/logging"
)

// Provider performs the three detector calls against an external vision
// service. Each call is a single attempt; retries are the caller's problem
// and none are configured.
type Provider interface {
	DetectLabels(ctx context.Context, image []byte) ([]Label, error)
	DetectFaces(ctx context.Context, image []byte) ([]Face, error)
	RecognizeCelebrities(ctx context.Context, image []byte) ([]Celebrity, error)
}

// Factory builds a named vision provider from configuration.
type Factory func(cfg *config.Config, logger *logging.Logger) (Provider, error)

var factories = make(map[string]Factory)

// Register registers a vision provider factory under a name.
func Register(name string, factory Factory) {
	factories[name] = factory
}

// Create instantiates the vision provider selected by configuration.
func Create(name string, cfg *config.Config, logger *logging.Logger) (Provider, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown vision provider: %s", name)
	}
	provider, err := factory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create vision provider %s: %w", name, err)
	}
	return provider, nil
}
