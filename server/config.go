package server

import (
	"time"

	"github.com/joeshaw/envdecode"
)

// Config is the server's environment configuration
type Config struct {
	Port      int    `env:"PORT,default=8000"`
	StaticDir string `env:"STATIC_DIR,default=./build"`

	// AIDelay paces the computer opponent so its moves read as
	// deliberate. The engine itself decides instantly.
	AIDelay time.Duration `env:"AI_DELAY,default=1500ms"`

	AllowedOrigin string `env:"ALLOWED_ORIGIN,default=*"`
}

// ConfigFromEnv decodes a Config from the environment
func ConfigFromEnv() (Config, error) {
	var c Config
	err := envdecode.Decode(&c)
	return c, err
}
