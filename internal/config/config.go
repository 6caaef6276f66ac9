package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerCfg holds the listen addresses.
type ServerCfg struct {
	GRPCAddr    string `yaml:"grpcAddr"`    // gRPC listen address, e.g. ":50051"
	MetricsAddr string `yaml:"metricsAddr"` // Prometheus /metrics address, empty disables
}

// CoreCfg tunes the sorted-sequence core.
type CoreCfg struct {
	GraceMs    int `yaml:"graceMs"`    // reclamation grace interval (ms)
	Prewarm    int `yaml:"prewarm"`    // buffers parked in the bank at startup
	OutboxSize int `yaml:"outboxSize"` // event outbox capacity
}

// KafkaCfg configures the event and stats streams.
type KafkaCfg struct {
	Enabled         bool     `yaml:"enabled"`
	Brokers         []string `yaml:"brokers"`
	EventsTopic     string   `yaml:"eventsTopic"`
	StatsTopic      string   `yaml:"statsTopic"`
	StatsIntervalMs int      `yaml:"statsIntervalMs"`
}

type Config struct {
	Server ServerCfg `yaml:"server"`
	Core   CoreCfg   `yaml:"core"`
	Kafka  KafkaCfg  `yaml:"kafka"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerCfg{
			GRPCAddr:    ":50051",
			MetricsAddr: ":9100",
		},
		Core: CoreCfg{
			GraceMs:    40,
			Prewarm:    64,
			OutboxSize: 1 << 14,
		},
		Kafka: KafkaCfg{
			Enabled:         false,
			EventsTopic:     "lfss.events",
			StatsTopic:      "lfss.stats",
			StatsIntervalMs: 2000,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("config: kafka enabled but no brokers")
	}
	return cfg, nil
}

// Grace returns the grace interval as a duration.
func (c *Config) Grace() time.Duration {
	return time.Duration(c.Core.GraceMs) * time.Millisecond
}

// StatsInterval returns the stats publish interval as a duration.
func (c *Config) StatsInterval() time.Duration {
	return time.Duration(c.Kafka.StatsIntervalMs) * time.Millisecond
}
