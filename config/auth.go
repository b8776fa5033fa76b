package config

import (
	"fmt"
	"strings"
	"time"
)

// TokenStoreMode selects where the bearer token is persisted between runs.
type TokenStoreMode string

const (
	// TokenStoreFile keeps the token in a local file (default).
	TokenStoreFile TokenStoreMode = "file"
	// TokenStoreRedis keeps the token in Redis, for shared/kiosk terminals.
	TokenStoreRedis TokenStoreMode = "redis"
	// TokenStoreMemory keeps the token in memory only (no persistence).
	TokenStoreMemory TokenStoreMode = "memory"
)

// UnmarshalText implements encoding.TextUnmarshaler for TokenStoreMode.
func (m *TokenStoreMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "redis", "memory":
		*m = TokenStoreMode(v)
		return nil
	default:
		return fmt.Errorf("invalid TokenStoreMode: %q (valid options: file, redis, memory)", v)
	}
}

// AuthConfig groups token persistence configuration.
type AuthConfig struct {
	// TokenStore determines which token store backend to use.
	TokenStore TokenStoreMode `env:"TOKEN_STORE" envDefault:"file"`

	// TokenFile is the path of the file token store. A leading "~/" is
	// expanded against the user home directory at wiring time.
	TokenFile string `env:"TOKEN_FILE" envDefault:"~/.eduportal/token"`

	// RedisKey is the Redis key of the redis token store.
	RedisKey string `env:"REDIS_KEY" envDefault:"eduportal:token"`

	// RedisTTL bounds the lifetime of a token held in Redis. Zero keeps the
	// token until sign-out; the bootstrap probes still decide validity.
	RedisTTL time.Duration `env:"REDIS_TTL" envDefault:"0"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.RedisTTL < 0 {
		a.RedisTTL = 0
	}
	if strings.TrimSpace(a.TokenFile) == "" {
		a.TokenFile = "~/.eduportal/token"
	}
}
