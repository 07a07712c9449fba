package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	PostgresConfig PostgresConfig     `yaml:"postgres"`
	ServerConfig   ServerConfig       `yaml:"server"`
	SMTPConfig     SMTPConfig         `yaml:"smtp"`
	Notifications  NotificationConfig `yaml:"notifications"`
}

type PostgresConfig struct {
	Host     string        `yaml:"host" env:"POSTGRES_HOST"`
	Port     string        `yaml:"port" env:"POSTGRES_PORT"`
	DBName   string        `yaml:"dbname" env:"POSTGRES_DB"`
	User     string        `yaml:"user" env:"POSTGRES_USER"`
	Password string        `yaml:"password" env:"POSTGRES_PASSWORD"`
	Timeout  time.Duration `yaml:"timeout" env-default:"30s"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
}

type SMTPConfig struct {
	Host     string `yaml:"host" env:"SMTP_HOST"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM"`
}

// NotificationConfig carries the fixed notification targets and the
// dispatcher sizing. The admin address receives a copy of every task
// creation, the manager address a copy of every full approval.
type NotificationConfig struct {
	AdminEmail   string `yaml:"admin_email" env:"NOTIFY_ADMIN_EMAIL"`
	ManagerEmail string `yaml:"manager_email" env:"NOTIFY_MANAGER_EMAIL"`
	QueueSize    int    `yaml:"queue_size" env-default:"256"`
	Workers      int    `yaml:"workers" env-default:"2"`
}

func MustLoad() Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	var config Config
	err := cleanenv.ReadConfig(configPath, &config)
	if err != nil {
		log.Fatalf("config not read: %v", err)
	}
	return config
}
