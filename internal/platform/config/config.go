package config

// Config is the full server configuration. It is read once at startup and
// treated as read-only afterwards.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Web      WebConfig      `yaml:"web"`
	AWS      AWSConfig      `yaml:"aws"`
	Vision   VisionConfig   `yaml:"vision"`
	Describe DescribeConfig `yaml:"describe"`
	Speech   SpeechConfig   `yaml:"speech"`
	Shaping  ShapingConfig  `yaml:"shaping"`
}

type ServerConfig struct {
	Port    int    `yaml:"port"`
	Version string `yaml:"version"`
}

type LogConfig struct {
	Level string `yaml:"log_level"`
	Dir   string `yaml:"log_dir"`
	File  string `yaml:"log_file"`
}

type WebConfig struct {
	StaticDir      string `yaml:"static_dir"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

type AWSConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// VisionConfig controls the detector provider and the raw label request.
type VisionConfig struct {
	Provider           string  `yaml:"provider"`
	MaxLabels          int32   `yaml:"max_labels"`
	MinLabelConfidence float32 `yaml:"min_label_confidence"`
}

// DescribeConfig points the description generator at an OpenAI-compatible
// endpoint. An empty APIKey disables generation and activates the
// deterministic fallback.
type DescribeConfig struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"url"`
	Model       string  `yaml:"model_name"`
	Temperature float32 `yaml:"temperature"`
	TopP        float32 `yaml:"top_p"`
	MaxTokens   int     `yaml:"max_tokens"`
}

type SpeechConfig struct {
	Provider     string `yaml:"provider"`
	DefaultVoice string `yaml:"default_voice"`
	Language     string `yaml:"language"`
	Engine       string `yaml:"engine"`
}

// ShapingConfig holds the confidence thresholds applied when reducing raw
// detector output to prompt-ready summaries.
type ShapingConfig struct {
	MinLabelConfidence     float64 `yaml:"min_label_confidence"`
	MaxLabels              int     `yaml:"max_labels"`
	MinAttributeConfidence float64 `yaml:"min_attribute_confidence"`
	MinCelebrityConfidence float64 `yaml:"min_celebrity_confidence"`
}
