package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pricestream/price-history/pkg/postgresql"
)

// Config represents the application configuration.
type Config struct {
	App          AppConfig          `envPrefix:"APP_"`
	Postgres     postgresql.Config  `envPrefix:"POSTGRES_"`
	PriceKafka   PriceKafkaConfig   `envPrefix:"PRICE_KAFKA_"`
	HistoryKafka HistoryKafkaConfig `envPrefix:"HISTORY_KAFKA_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name         string `env:"NAME" envDefault:"price-history"`
	Environment  string `env:"ENVIRONMENT" envDefault:"development"`
	Port         int    `env:"PORT" envDefault:"8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	MigrationDir string `env:"MIGRATION_DIR" envDefault:"migrations"`
}

// PriceKafkaConfig represents the Kafka configuration for the price update feed.
type PriceKafkaConfig struct {
	Brokers       []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string   `env:"TOPIC" envDefault:"price-updates"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"price-history"`
	MaxRetries    int      `env:"MAX_RETRIES" envDefault:"3"`
}

// HistoryKafkaConfig represents the Kafka configuration for created record notifications.
type HistoryKafkaConfig struct {
	Brokers []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"price-history-created"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
