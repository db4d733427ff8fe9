package eventbus

import (
	"visionvoice-server-go/internal/platform/logging"
)

// SetupEventHandlers installs the logging subscribers for pipeline events.
// Called once from bootstrap, after logging is ready.
func SetupEventHandlers(logger *logging.Logger) error {
	if logger == nil {
		logger = logging.DefaultLogger
	}

	if err := Subscribe(EventVisionAnalyzed, func(data VisionEventData) {
		logger.InfoTag("EVENT", "vision analyzed: request=%s image=%dB labels=%d faces=%d",
			data.RequestID, data.ImageBytes, data.Labels, data.Faces)
	}); err != nil {
		return err
	}

	if err := Subscribe(EventDescriptionGenerated, func(data DescriptionEventData) {
		source := "llm"
		if !data.Generated {
			source = "fallback"
		}
		logger.InfoTag("EVENT", "description ready (%s): request=%s %q",
			source, data.RequestID, data.Description)
	}); err != nil {
		return err
	}

	return Subscribe(EventSpeechSynthesized, func(data SpeechEventData) {
		logger.InfoTag("EVENT", "speech synthesized: request=%s voice=%s audio=%dB",
			data.RequestID, data.Voice, data.AudioBytes)
	})
}
