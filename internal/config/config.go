package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB           DBConfig
	Server       ServerConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Logger       LoggerConfig
	Quiz         QuizConfig
	Appointment  AppointmentConfig
	Notification NotificationConfig
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey string
	AccessTTL time.Duration
	Issuer    string
}

type LoggerConfig struct {
	Env   string
	Level string
}

type QuizConfig struct {
	// ActiveQuizID pins the quiz served to customers. Empty falls back to
	// the earliest-created active quiz.
	ActiveQuizID string
}

type AppointmentConfig struct {
	// Timezone is the zone appointment dates and times are written in.
	Timezone string
}

type NotificationConfig struct {
	// Transport is one of smtp, redis, amqp or log.
	Transport string
	From      string
	SMTP      SMTPConfig
	Queue     QueueConfig
	AMQP      AMQPConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type QueueConfig struct {
	// Key overrides the Redis list name; empty uses the default notification queue.
	Key     string
	Workers int
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

const (
	TransportSMTP  = "smtp"
	TransportRedis = "redis"
	TransportAMQP  = "amqp"
	TransportLog   = "log"

	DriverGoOra  = "oracle"
	DriverGodror = "godror"
)

const envPrefix = "APP"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("db.driver", DriverGoOra)
	v.SetDefault("db.port", 1521)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("jwt.access_ttl", "24h")
	v.SetDefault("jwt.issuer", "lets-heal")
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("notification.transport", TransportLog)
	v.SetDefault("notification.from", "no-reply@letsheal.local")
	v.SetDefault("appointment.timezone", "UTC")
	v.SetDefault("notification.smtp.port", 587)
	v.SetDefault("notification.queue.workers", 2)
	v.SetDefault("notification.amqp.exchange", "letsheal.notifications")
}

// LoadConfig reads config.yaml from the usual search paths, an optional .env
// file, and APP_-prefixed environment variables (APP_DB_HOST overrides db.host).
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../configs")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DB: DBConfig{
			Driver:   v.GetString("db.driver"),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			SecretKey: v.GetString("jwt.secret_key"),
			AccessTTL: v.GetDuration("jwt.access_ttl"),
			Issuer:    v.GetString("jwt.issuer"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Quiz: QuizConfig{
			ActiveQuizID: v.GetString("quiz.active_quiz_id"),
		},
		Appointment: AppointmentConfig{
			Timezone: v.GetString("appointment.timezone"),
		},
		Notification: NotificationConfig{
			Transport: strings.ToLower(v.GetString("notification.transport")),
			From:      v.GetString("notification.from"),
			SMTP: SMTPConfig{
				Host:     v.GetString("notification.smtp.host"),
				Port:     v.GetInt("notification.smtp.port"),
				Username: v.GetString("notification.smtp.username"),
				Password: v.GetString("notification.smtp.password"),
			},
			Queue: QueueConfig{
				Key:     v.GetString("notification.queue.key"),
				Workers: v.GetInt("notification.queue.workers"),
			},
			AMQP: AMQPConfig{
				URL:      v.GetString("notification.amqp.url"),
				Exchange: v.GetString("notification.amqp.exchange"),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the services cannot start with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverGoOra, DriverGodror:
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	switch c.Notification.Transport {
	case TransportSMTP, TransportRedis, TransportAMQP, TransportLog:
	default:
		return fmt.Errorf("unsupported notification.transport %q", c.Notification.Transport)
	}
	if c.Notification.Transport == TransportAMQP && c.Notification.AMQP.URL == "" {
		return fmt.Errorf("notification.amqp.url is required for the amqp transport")
	}
	if c.JWT.AccessTTL <= 0 {
		return fmt.Errorf("jwt.access_ttl must be positive")
	}
	return nil
}

// GetDSN returns the connection string for the configured driver.
func (c *Config) GetDSN() string {
	if c.DB.Driver == DriverGodror {
		return fmt.Sprintf(`user="%s" password="%s" connectString="%s:%d/%s"`,
			c.DB.User,
			c.DB.Password,
			c.DB.Host,
			c.DB.Port,
			c.DB.DBName,
		)
	}
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}

// Location returns the zone appointment dates and times are interpreted in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Appointment.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
