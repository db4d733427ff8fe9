// Package edge adapts Microsoft Edge TTS to the speech provider
// interface. It is the no-credential alternative to Polly; voices are
// Edge voice names (e.g. pt-BR-FranciscaNeural).
package edge

import (
	"context"

	"github.com/wujunwei928/edge-tts-go/edge_tts"

	"visionvoice-server-go/internal/domain/speech"
	"visionvoice-server-go/internal/platform/config"
	platformerrors "visionvoice-server-go/internal/platform/errors"
	"visionvoice-server-go/internal/platform/logging"
)

func init() {
	speech.Register("edge", NewProvider)
}

type Provider struct {
	defaultVoice string
	logger       *logging.Logger
}

func NewProvider(cfg *config.Config, logger *logging.Logger) (speech.Provider, error) {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	return &Provider{
		defaultVoice: cfg.Speech.DefaultVoice,
		logger:       logger,
	}, nil
}

func (p *Provider) Synthesize(_ context.Context, text, voice string) (*speech.Result, error) {
	if voice == "" {
		voice = p.defaultVoice
	}
	p.logger.DebugTag("TTS", "edge synthesis, voice %s", voice)

	communicate, err := edge_tts.NewCommunicate(text, edge_tts.SetVoice(voice))
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindSpeech, "edge.synthesize",
			"failed to create edge tts communicator", err)
	}

	audio, err := communicate.Stream()
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindSpeech, "edge.synthesize",
			"speech synthesis failed", err)
	}

	return speech.NewResult(audio), nil
}
