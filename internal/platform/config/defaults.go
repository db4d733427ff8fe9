package config

const (
	// DefaultVoice is the Polly voice used when a request names none.
	DefaultVoice = "Camila"

	// DefaultModel is the Groq model used for description generation.
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// MaxUploadBytes caps the accepted image payload at 5 MiB.
	MaxUploadBytes = 5 * 1024 * 1024
)

// Default returns the configuration the server runs with when nothing else
// is provided. Every field can be overridden by config.yaml or environment
// variables, see Loader.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    3000,
			Version: "2.0",
		},
		Log: LogConfig{
			Level: "info",
		},
		Web: WebConfig{
			StaticDir:      "./web",
			MaxUploadBytes: MaxUploadBytes,
		},
		AWS: AWSConfig{
			Region: "us-east-2",
		},
		Vision: VisionConfig{
			Provider:           "rekognition",
			MaxLabels:          50,
			MinLabelConfidence: 60,
		},
		Describe: DescribeConfig{
			BaseURL:     DefaultBaseURL,
			Model:       DefaultModel,
			Temperature: 0.3,
			TopP:        0.9,
			MaxTokens:   250,
		},
		Speech: SpeechConfig{
			Provider:     "polly",
			DefaultVoice: DefaultVoice,
			Language:     "pt-BR",
			Engine:       "neural",
		},
		Shaping: ShapingConfig{
			MinLabelConfidence:     70,
			MaxLabels:              20,
			MinAttributeConfidence: 80,
			MinCelebrityConfidence: 95,
		},
	}
}
