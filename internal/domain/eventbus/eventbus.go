// Package eventbus carries pipeline lifecycle events. Handlers are
// installed once at bootstrap; publishers fire and forget.
package eventbus

import (
	"sync"

	evbus "github.com/asaskevich/EventBus"
)

const (
	EventVisionAnalyzed       = "vision.analyzed"
	EventDescriptionGenerated = "description.generated"
	EventSpeechSynthesized    = "speech.synthesized"
)

// VisionEventData describes one completed image analysis.
type VisionEventData struct {
	RequestID  string
	ImageBytes int
	Labels     int
	Faces      int
}

// DescriptionEventData describes one generated description.
type DescriptionEventData struct {
	RequestID   string
	Description string
	Generated   bool // false when the deterministic fallback was used
}

// SpeechEventData describes one synthesized utterance.
type SpeechEventData struct {
	RequestID  string
	Voice      string
	AudioBytes int
}

var (
	instance evbus.Bus
	once     sync.Once
)

// Get returns the process-wide event bus instance.
func Get() evbus.Bus {
	once.Do(func() {
		instance = evbus.New()
	})
	return instance
}

// Publish publishes a synchronous event.
func Publish(topic string, args ...interface{}) {
	Get().Publish(topic, args...)
}

// Subscribe subscribes a handler to a topic.
func Subscribe(topic string, fn interface{}) error {
	return Get().Subscribe(topic, fn)
}
