package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger    `mapstructure:"logger"`
	API       API       `mapstructure:"api"`
	Cache     Cache     `mapstructure:"cache"`
	RateLimit RateLimit `mapstructure:"rate_limit"`
	Risk      Risk      `mapstructure:"risk"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
	SnapshotTTL       time.Duration `mapstructure:"snapshot_ttl"`
}

type RateLimit struct {
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	ExpiresIn         time.Duration `mapstructure:"expires_in"`
}

// Risk holds the default dashboard parameters used when a request
// omits them.
type Risk struct {
	InitialPortfolio float64 `mapstructure:"initial_portfolio"`
	RiskPercentage   float64 `mapstructure:"risk_percentage"`
	MaxDrawdown      float64 `mapstructure:"max_drawdown"`
	BestCase         float64 `mapstructure:"best_case"`
	NormalCase       float64 `mapstructure:"normal_case"`
	WorstCase        float64 `mapstructure:"worst_case"`
}

func Load() (*Config, error) {
	// .env is optional, env vars win either way.
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")

	viper.SetDefault("api.port", 8080)

	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("cache.snapshot_ttl", time.Minute)

	viper.SetDefault("rate_limit.requests_per_second", 10)
	viper.SetDefault("rate_limit.burst", 30)
	viper.SetDefault("rate_limit.expires_in", 3*time.Minute)

	viper.SetDefault("risk.initial_portfolio", 75000)
	viper.SetDefault("risk.risk_percentage", 2.0)
	viper.SetDefault("risk.max_drawdown", 32.6)
	viper.SetDefault("risk.best_case", 66)
	viper.SetDefault("risk.normal_case", 32)
	viper.SetDefault("risk.worst_case", 21)
}
