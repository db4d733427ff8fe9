package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	platformerrors "visionvoice-server-go/internal/platform/errors"
)

// Loader assembles the runtime configuration. Precedence, lowest first:
// built-in defaults, config.yaml (when present), environment variables.
// A .env file is folded into the environment before reading it.
type Loader struct {
	useDotEnv bool
	path      string
}

func NewLoader() *Loader {
	return &Loader{
		useDotEnv: true,
		path:      "config.yaml",
	}
}

// WithDotEnv toggles loading variables from a .env file before reading config.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// WithPath overrides the YAML config file location (useful for tests).
func (l *Loader) WithPath(path string) *Loader {
	if path != "" {
		l.path = path
	}
	return l
}

// Result captures the loaded configuration and its origin.
type Result struct {
	Config *Config
	Path   string
}

func (l *Loader) Load() (*Result, error) {
	if l.useDotEnv {
		if err := godotenv.Load(); err != nil {
			fmt.Println(".env file not found, using system environment variables")
		}
	}

	cfg := Default()
	path := "defaults"

	if data, err := os.ReadFile(l.path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, platformerrors.Wrap(platformerrors.KindConfig, "config.load",
				fmt.Sprintf("invalid yaml in %s", l.path), err)
		}
		path = l.path
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Path: path}, nil
}

// applyEnv overlays environment variables onto the configuration. The
// variable names mirror the ones the service has always been deployed with.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.Web.StaticDir = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.AWS.Region = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		cfg.AWS.AccessKeyID = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		cfg.AWS.SecretAccessKey = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.Describe.APIKey = v
	}
	if v := os.Getenv("GROQ_MODEL"); v != "" {
		cfg.Describe.Model = v
	}
	if v := os.Getenv("GROQ_BASE_URL"); v != "" {
		cfg.Describe.BaseURL = v
	}
	if v := os.Getenv("TTS_PROVIDER"); v != "" {
		cfg.Speech.Provider = v
	}
	if v := os.Getenv("DEFAULT_VOICE"); v != "" {
		cfg.Speech.DefaultVoice = v
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return platformerrors.New(platformerrors.KindConfig, "config.validate",
			fmt.Sprintf("invalid port %d", cfg.Server.Port))
	}
	if cfg.Web.MaxUploadBytes <= 0 {
		cfg.Web.MaxUploadBytes = MaxUploadBytes
	}
	if cfg.Speech.DefaultVoice == "" {
		cfg.Speech.DefaultVoice = DefaultVoice
	}
	if cfg.Shaping.MaxLabels <= 0 {
		cfg.Shaping.MaxLabels = 20
	}
	return nil
}
