package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service *svcConfig
	Planner *plannerConfig
}

type svcConfig struct {
	Address        string   `envconfig:"CAPACITY_PLANNER_ADDRESS" default:":8080"`
	MetricsAddress string   `envconfig:"CAPACITY_PLANNER_METRICS_ADDRESS" default:":8081"`
	BaseUrl        string   `envconfig:"CAPACITY_PLANNER_BASE_URL" default:"http://localhost:8080"`
	LogLevel       string   `envconfig:"CAPACITY_PLANNER_LOG_LEVEL" default:"info"`
	CorsOrigins    []string `envconfig:"CAPACITY_PLANNER_CORS_ORIGINS" default:"*"`
}

// plannerConfig carries the tunable placement constants. The thresholds
// were stated inconsistently across product documents, so they stay
// configurable rather than hardcoded.
type plannerConfig struct {
	MemoryWeight         float64 `envconfig:"CAPACITY_PLANNER_MEMORY_WEIGHT" default:"0.5"`
	WarningThresholdPct  float64 `envconfig:"CAPACITY_PLANNER_WARNING_THRESHOLD_PCT" default:"80"`
	CriticalThresholdPct float64 `envconfig:"CAPACITY_PLANNER_CRITICAL_THRESHOLD_PCT" default:"95"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}
