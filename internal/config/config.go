package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type AppConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	InfluencerDB `yaml:"influencer_db"`
	LogConfig    `yaml:"log_config"`
	SMTP         `yaml:"smtp"`
	KafkaService `yaml:"kafka-service"`
	Scheduler    `yaml:"scheduler"`
	JWT          `yaml:"jwt"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type InfluencerDB struct {
	Dsn           string `yaml:"dsn" env:"INFLUENCER_DB_DSN"`
	MigrationPath string `yaml:"migration_path" env-default:"db/migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"text"`
}

type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" env-default:"587"`
	Username string `yaml:"username"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	// Sender is the fixed from-address on finance digests.
	Sender string `yaml:"sender" env-default:"techops@arabyads.com"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"entity-events"`
}

type Scheduler struct {
	// CronSpec fires both reconciliation jobs; the original schedule is
	// 09:00 local every day.
	CronSpec string `yaml:"cron_spec" env-default:"0 9 * * *"`
	// WindowDays is N in the [today-N, today+N] reconciliation window.
	WindowDays int    `yaml:"window_days" env-default:"5"`
	Timezone   string `yaml:"timezone" env-default:"Local"`
}

type JWT struct {
	Secret    string        `yaml:"secret" env:"JWT_SECRET"`
	AccessTTL time.Duration `yaml:"access_ttl" env-default:"24h"`
}

func MustLoad() *AppConfig {
	configPath := os.Getenv("INFLUENCER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("INFLUENCER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg AppConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
