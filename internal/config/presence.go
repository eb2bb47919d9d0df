package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// PresenceConfig holds the liveness timing knobs. A user who misses
// heartbeats for DisconnectedThreshold is flagged unresponsive; one who
// misses them for MaxTimeToLive is evicted.
type PresenceConfig struct {
	StepInterval          time.Duration `env:"STEP_INTERVAL" envDefault:"500ms"`
	MaxTimeToLive         time.Duration `env:"MAX_TIME_TO_LIVE" envDefault:"10s"`
	DisconnectedThreshold time.Duration `env:"DISCONNECTED_THRESHOLD" envDefault:"3s"`
}

func LoadPresence() (PresenceConfig, error) {
	var cfg PresenceConfig
	err := env.Parse(&cfg)
	return cfg, err
}
