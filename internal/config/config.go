package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/oparantho/saakwa-laundry-platform/internal/pricing"
	"github.com/oparantho/saakwa-laundry-platform/internal/scheduling"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15m"`
}

type SendGrid struct {
	APIKey           string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail        string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@saakwa.com"`
	FromName         string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Saakwa Laundry"`
	OrderNotifyEmail string `yaml:"ORDER_NOTIFY_EMAIL" env:"ORDER_NOTIFY_EMAIL" env-default:""`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
}

type Session struct {
	TTL time.Duration `yaml:"TTL" env:"SESSION_TTL" env-default:"24h"`
}

// Schedule and Pricing carry the booking policy. These values have
// changed between deployments (service weekdays, fee structure), so
// they are configuration rather than code.
type Schedule struct {
	ServiceDays []string `yaml:"SERVICE_DAYS" env:"SERVICE_DAYS" env-default:"Tuesday,Saturday"`
	CutoffHour  int      `yaml:"CUTOFF_HOUR" env:"CUTOFF_HOUR" env-default:"17"`
	MinLeadDays int      `yaml:"MIN_LEAD_DAYS" env:"MIN_LEAD_DAYS" env-default:"2"`
}

type Pricing struct {
	ServiceFeeBps int64 `yaml:"SERVICE_FEE_BPS" env:"SERVICE_FEE_BPS" env-default:"1000"`
	SavingsBps    int64 `yaml:"SAVINGS_BPS" env:"SAVINGS_BPS" env-default:"2500"`
}

type Telemetry struct {
	Enabled      bool   `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	OTLPEndpoint string `yaml:"OTLP_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4318"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	StoragePath  string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"./storage"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Security     Security     `yaml:"security"`
	Session      Session      `yaml:"session"`
	Schedule     Schedule     `yaml:"schedule"`
	Pricing      Pricing      `yaml:"pricing"`
	Telemetry    Telemetry    `yaml:"telemetry"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the config file")
		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d",
		r.Username, r.Password, r.Host, r.Port, r.DB)
}

// SchedulePolicy translates the config section into engine policy,
// failing on unknown weekday names.
func (s *Schedule) SchedulePolicy() (scheduling.Policy, error) {
	days, err := scheduling.ParseWeekdays(s.ServiceDays)
	if err != nil {
		return scheduling.Policy{}, fmt.Errorf("invalid SERVICE_DAYS: %w", err)
	}

	if s.CutoffHour < 0 || s.CutoffHour > 23 {
		return scheduling.Policy{}, fmt.Errorf("CUTOFF_HOUR out of range: %d", s.CutoffHour)
	}

	return scheduling.Policy{
		EligibleWeekdays: days,
		CutoffHour:       s.CutoffHour,
		MinLeadDays:      s.MinLeadDays,
	}, nil
}

func (p *Pricing) PricingPolicy() pricing.Policy {
	return pricing.Policy{
		ServiceFeeBps: p.ServiceFeeBps,
		SavingsBps:    p.SavingsBps,
	}
}
