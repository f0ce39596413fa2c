package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

const defaultMinAge = 18

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		JWTSecret string
	}
	User struct {
		MinAge int
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}

	Config struct {
		App  APP
		User User
		DB   DB
		MQ   MQ
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func Load() (Config, error) {
	app := APP{
		Name:      getEnv("SERVICE_NAME", "userregistry"),
		Host:      getEnv("SERVICE_HOST", ""),
		Port:      getEnv("SERVICE_PORT", "8080"),
		Env:       getEnv("SERVICE_ENV", ""),
		JWTSecret: getEnv("SERVICE_JWT_SECRET", ""),
	}
	minAge, err := getEnvInt("USER_MIN_AGE", defaultMinAge)
	if err != nil {
		return Config{}, err
	}
	if minAge < 0 {
		return Config{}, fmt.Errorf("USER_MIN_AGE must not be negative, got %d", minAge)
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", "5432"),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", "5672"),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "users"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "user-events"),
	}

	return Config{
		App:  app,
		User: User{MinAge: minAge},
		DB:   db,
		MQ:   mq,
	}, nil
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s",
		url.UserPassword(c.DB.User, c.DB.Password).String(),
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

// MQEnabled reports whether user events should go to RabbitMQ.
func (c Config) MQEnabled() bool { return c.MQ.Host != "" }

// AuthEnabled reports whether mutating routes require a bearer token.
func (c Config) AuthEnabled() bool { return c.App.JWTSecret != "" }

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
