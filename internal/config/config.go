package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ProviderMultipart = "multipart"
	ProviderOpenAI    = "openai"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Server   ServerConfig
	Provider ProviderConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
	StaticDir       string        `env:"STATIC_DIR"`
}

// ProviderConfig describes the external generation provider. An empty URL
// switches the service into demo mode with a placeholder image.
type ProviderConfig struct {
	Kind           string        `env:"PROVIDER_KIND" envDefault:"multipart"`
	URL            string        `env:"NANOBANANA_API_URL"`
	APIKey         string        `env:"NANOBANANA_API_KEY"`
	NegativePrompt string        `env:"NANOBANANA_API_NEGATIVE_PROMPT"`
	Timeout        time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"90s"`
	OpenAIModel    string        `env:"OPENAI_MODEL" envDefault:"gpt-image-1"`
}

func (p ProviderConfig) Configured() bool {
	return p.URL != ""
}

// Load reads an optional .env file and then parses the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	switch cfg.Provider.Kind {
	case ProviderMultipart, ProviderOpenAI:
	default:
		return nil, errors.New("PROVIDER_KIND must be one of: multipart, openai")
	}
	return cfg, nil
}
