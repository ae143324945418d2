package config

import (
	"fmt"
	"log/slog"
)

const minJWTSecretLen = 32

// Validate checks invariants that cleanenv tags cannot express.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("auth.jwt_secret must be at least %d characters", minJWTSecretLen)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be at least 1")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns %d exceeds max_conns %d", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Drive.ListTimeout <= 0 {
		return fmt.Errorf("drive.list_timeout must be positive")
	}
	if c.Drive.DailyLimit < 0 {
		return fmt.Errorf("drive.daily_limit must not be negative")
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis is enabled")
	}

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format %q is not supported", c.Log.Format)
	}

	return nil
}

// ParseLogLevel maps a config level string to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level %q is not supported", level)
	}
}
