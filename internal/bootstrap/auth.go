package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/eduportal/eduportal-mobile/config"
	"github.com/eduportal/eduportal-mobile/internal/adapters/memtoken"
	redisadapter "github.com/eduportal/eduportal-mobile/internal/adapters/redis"
	"github.com/eduportal/eduportal-mobile/internal/adapters/restapi"
	"github.com/eduportal/eduportal-mobile/internal/adapters/tokenfile"
	"github.com/eduportal/eduportal-mobile/internal/ports"
	"github.com/eduportal/eduportal-mobile/internal/service"
)

// BuildAPIClient creates the shared backend client from configuration.
func BuildAPIClient(cfg config.APIConfig) (*restapi.Client, error) {
	client, err := restapi.NewClient(restapi.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}
	return client, nil
}

// BuildTokenStore creates the persisted token store for the configured mode.
// When the redis mode is selected but Redis is misconfigured, it degrades to
// the in-memory store with a logged warning rather than failing the launch.
func BuildTokenStore(cfg config.AppConfig, logger *slog.Logger) ports.TokenStore {
	switch cfg.Auth.TokenStore {
	case config.TokenStoreRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store, err := redisadapter.NewTokenStore(client, cfg.Auth.RedisKey, cfg.Auth.RedisTTL)
		if err != nil {
			if logger != nil {
				logger.Warn("redis token store unavailable, falling back to memory", "error", err)
			}
			return memtoken.NewStore()
		}
		return store

	case config.TokenStoreMemory:
		return memtoken.NewStore()

	default:
		path := expandHome(cfg.Auth.TokenFile)
		store, err := tokenfile.NewStore(path)
		if err != nil {
			if logger != nil {
				logger.Warn("file token store unavailable, falling back to memory", "error", err, "path", path)
			}
			return memtoken.NewStore()
		}
		return store
	}
}

// BuildSessionManager wires the API client and token store into the session
// manager.
func BuildSessionManager(cfg config.AppConfig, api ports.AuthAPI, logger *slog.Logger) *service.SessionManager {
	return service.NewSessionManager(service.SessionManagerOptions{
		API:    api,
		Tokens: BuildTokenStore(cfg, logger),
		Logger: logger,
	})
}

// expandHome resolves a leading "~/" against the user home directory. Paths
// without the prefix pass through untouched.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
