package config

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/service/settings"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

// Validate проверяет конфигурацию после применения всех источников
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must be positive", ErrInvalidConfig)
	}
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		return fmt.Errorf("%w: logs.level: %v", ErrInvalidConfig, err)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	hours, err := c.Scheduling.DefaultHours()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := settings.Validate(hours); err != nil {
		return fmt.Errorf("%w: scheduling: %v", ErrInvalidConfig, err)
	}
	if c.Scheduling.CallTimeout <= 0 {
		return fmt.Errorf("%w: scheduling.call_timeout must be positive", ErrInvalidConfig)
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("%w: client.timeout must be positive", ErrInvalidConfig)
	}

	return nil
}
