package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// Optional read-only question bank. Empty means the builtin topic
	// pools serve every round.
	PostgresDSN       string `env:"POSTGRES_DSN"`
	KeywordSampleSize int    `env:"KEYWORD_SAMPLE_SIZE" envDefault:"80"`

	MaxDisplayNameLen int `env:"MAX_DISPLAY_NAME_LEN" envDefault:"32"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
