// Package polly adapts AWS Polly to the speech provider interface:
// neural MP3 synthesis in a fixed spoken language, drained fully into
// memory before returning.
package polly

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	pollytypes "github.com/aws/aws-sdk-go-v2/service/polly/types"

	"visionvoice-server-go/internal/domain/speech"
	"visionvoice-server-go/internal/platform/config"
	platformerrors "visionvoice-server-go/internal/platform/errors"
	"visionvoice-server-go/internal/platform/logging"
)

func init() {
	speech.Register("polly", NewProvider)
}

type Provider struct {
	client   *polly.Client
	language pollytypes.LanguageCode
	engine   pollytypes.Engine
	logger   *logging.Logger
}

func NewProvider(cfg *config.Config, logger *logging.Logger) (speech.Provider, error) {
	if logger == nil {
		logger = logging.DefaultLogger
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if cfg.AWS.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindSpeech, "polly.new",
			"failed to load AWS configuration", err)
	}

	language := pollytypes.LanguageCode(cfg.Speech.Language)
	if language == "" {
		language = pollytypes.LanguageCodePtBr
	}
	engine := pollytypes.Engine(cfg.Speech.Engine)
	if engine == "" {
		engine = pollytypes.EngineNeural
	}

	return &Provider{
		client:   polly.NewFromConfig(awsCfg),
		language: language,
		engine:   engine,
		logger:   logger,
	}, nil
}

func (p *Provider) Synthesize(ctx context.Context, text, voice string) (*speech.Result, error) {
	p.logger.DebugTag("TTS", "synthesizing %d chars with voice %s", len(text), voice)

	out, err := p.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(text),
		OutputFormat: pollytypes.OutputFormatMp3,
		VoiceId:      pollytypes.VoiceId(voice),
		LanguageCode: p.language,
		Engine:       p.engine,
	})
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindSpeech, "polly.synthesize",
			"speech synthesis failed", err)
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, platformerrors.Wrap(platformerrors.KindSpeech, "polly.synthesize",
			"failed to drain audio stream", err)
	}

	return speech.NewResult(audio), nil
}
