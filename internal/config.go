package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

// Config of the chat server binary, read from the environment.
type Config struct {
	Host              string        `env:"HOST,default=localhost" validate:"required"`
	BasePort          int           `env:"BASE_PORT,default=12345" validate:"min=1,max=65535"`
	PortAttempts      int           `env:"PORT_ATTEMPTS,default=10" validate:"min=1,max=100"`
	MaxConnections    int64         `env:"MAX_CONNECTIONS,default=256" validate:"min=1"`
	HandshakeTimeout  time.Duration `env:"HANDSHAKE_TIMEOUT,default=10s" validate:"gt=0"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT,default=5s" validate:"gt=0"`
	OutboundBuffer    int           `env:"OUTBOUND_BUFFER,default=64" validate:"min=1"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	HealthPort        int           `env:"HEALTH_PORT,default=0" validate:"min=0,max=65535"`
	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=30s" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	TokenSecret       string        `env:"TOKEN_SECRET" validate:"omitempty,min=16"`
	TokenDuration     time.Duration `env:"TOKEN_DURATION,default=12h" validate:"gt=0"`
	RequireKnownUser  bool          `env:"REQUIRE_KNOWN_USER,default=false"`
	EnforceContacts   bool          `env:"ENFORCE_CONTACTS,default=false"`
}

// LoadConfig decodes the environment and validates ranges.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.BasePort+c.PortAttempts-1 > 65535 {
		return fmt.Errorf("invalid config: port range %d-%d exceeds 65535", c.BasePort, c.BasePort+c.PortAttempts-1)
	}
	return nil
}

// TokenMode reports whether handshakes must carry a signed token.
func (c Config) TokenMode() bool {
	return c.TokenSecret != ""
}
