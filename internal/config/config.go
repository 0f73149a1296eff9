package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Stripe     Stripe     `yaml:"stripe"`
	SMTP       SMTP       `yaml:"smtp"`
	Gemini     Gemini     `yaml:"gemini"`
	Reminder   Reminder   `yaml:"reminder"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-required:"true"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-required:"true"`
	DBName   string `yaml:"dbname" env-default:"stagedeck"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Stripe is optional: an empty secret key leaves the payment gateway
// unconfigured and every payment operation fails fast without touching
// the network.
type Stripe struct {
	SecretKey string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
}

// SMTP is checked at send time only; a missing transport degrades every
// notification into a logged failure rather than an error.
type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	User     string `yaml:"user" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
}

// Gemini is optional: without an API key the AI adapter serves its
// deterministic fallbacks.
type Gemini struct {
	APIKey  string        `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model   string        `yaml:"model" env-default:"gemini-1.5-flash"`
	Timeout time.Duration `yaml:"timeout" env-default:"15s"`
}

type Reminder struct {
	Interval time.Duration `yaml:"interval" env-default:"1m"`
	Window   time.Duration `yaml:"window" env-default:"24h"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
