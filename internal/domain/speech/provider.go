package speech

import (
	"context"
	"fmt"

	"visionvoice-server-go/internal/platform/config"
	"visionvoice-server-go/internal/platform/logging"
)

// Provider converts text to speech audio using a named voice. Failure
// propagates: speech synthesis has no fallback.
type Provider interface {
	Synthesize(ctx context.Context, text, voice string) (*Result, error)
}

// Factory builds a named speech provider from configuration.
type Factory func(cfg *config.Config, logger *logging.Logger) (Provider, error)

var factories = make(map[string]Factory)

// Register registers a speech provider factory under a name.
func Register(name string, factory Factory) {
	factories[name] = factory
}

// Create instantiates the speech provider selected by configuration.
func Create(name string, cfg *config.Config, logger *logging.Logger) (Provider, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown speech provider: %s", name)
	}
	provider, err := factory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create speech provider %s: %w", name, err)
	}
	return provider, nil
}
