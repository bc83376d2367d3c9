package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/leandrodaf/hui/sdk/contracts"
)

// Config is the huimon configuration file.
type Config struct {
	Logger LogConf  // Logger configuration.
	Link   LinkConf // HUI link configuration.
}

// LogConf configures the logger.
type LogConf struct {
	Level string `toml:"log-level"` // Level of logging: debug, info, warn, error.
}

// LinkConf configures one HUI link.
type LinkConf struct {
	Role           string `toml:"role"`             // Peer to act as: host or surface.
	InPort         string `toml:"in-port"`          // Name of the MIDI input port.
	OutPort        string `toml:"out-port"`         // Name of the MIDI output port.
	PingIntervalMS int    `toml:"ping-interval-ms"` // Ping cadence in milliseconds.
	PingTimeoutMS  int    `toml:"ping-timeout-ms"`  // Staleness window in milliseconds.
}

// NewConfig loads the configuration from a TOML file.
func NewConfig(path string) (*Config, error) {
	// default values
	cfg := Config{
		Logger: LogConf{Level: "info"},
		Link: LinkConf{
			Role:           "surface",
			PingIntervalMS: 1000,
			PingTimeoutMS:  4000,
		},
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return &cfg, err
	}
	return &cfg, nil
}

// ParseRole maps the configured role string to a contracts.Role.
func (c *LinkConf) ParseRole() (contracts.Role, error) {
	switch c.Role {
	case "host":
		return contracts.RoleHost, nil
	case "surface", "":
		return contracts.RoleSurface, nil
	}
	return 0, fmt.Errorf("config: unknown role %q", c.Role)
}

// PingInterval returns the configured ping cadence.
func (c *LinkConf) PingInterval() time.Duration {
	return time.Duration(c.PingIntervalMS) * time.Millisecond
}

// PingTimeout returns the configured staleness window.
func (c *LinkConf) PingTimeout() time.Duration {
	return time.Duration(c.PingTimeoutMS) * time.Millisecond
}

// ParseLevel maps the configured log level to a contracts.LogLevel.
func (c *LogConf) ParseLevel() (contracts.LogLevel, error) {
	switch c.Level {
	case "debug":
		return contracts.DebugLevel, nil
	case "info", "":
		return contracts.InfoLevel, nil
	case "warn":
		return contracts.WarnLevel, nil
	case "error":
		return contracts.ErrorLevel, nil
	}
	return 0, fmt.Errorf("config: unknown log level %q", c.Level)
}
