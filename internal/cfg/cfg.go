package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/takara-tech/product-api/pkg/e"
	"github.com/takara-tech/product-api/pkg/logger"
)

// Config — конфигурация процесса. Собирается один раз при старте
// и передаётся вниз явно, без глобального состояния.
type Config struct {
	App  *AppCfg
	Http *HTTPConfig
	Db   *PGDBCfg
}

type AppCfg struct {
	ServiceName string
	Version     string
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type PGDBCfg struct {
	DatabaseURL string // строка подключения к хранилищу
	MaxConns    int32
	MinConns    int32
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		App:  loadAppCfg(),
		Http: http,
		Db:   db,
	}, nil
}

func loadAppCfg() *AppCfg {
	const (
		defaultServiceName = "Product Management API"
		defaultVersion     = "1.0.0"
	)

	return &AppCfg{
		ServiceName: getEnvOrDefault("SERVICE_NAME", defaultServiceName),
		Version:     getEnvOrDefault("SERVICE_VERSION", defaultVersion),
	}
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost     = "localhost"
		defaultPort     = "5432"
		defaultSSLMode  = "disable"
		defaultMaxConns = 10
		defaultMinConns = 2
	)

	dsn := getEnv("DATABASE_URL")
	if dsn == "" {
		// Составная конфигурация, как в docker-окружении
		user := getEnv("POSTGRES_USER")
		if user == "" {
			err := fmt.Errorf("DATABASE_URL or POSTGRES_USER is required")
			log.Errorf(err, "missing database configuration")
			return nil, err
		}

		password := getEnv("POSTGRES_PASSWORD")
		if password == "" {
			err := fmt.Errorf("POSTGRES_PASSWORD is required")
			log.Errorf(err, "missing POSTGRES_PASSWORD")
			return nil, err
		}

		dbName := getEnv("POSTGRES_DB")
		if dbName == "" {
			err := fmt.Errorf("POSTGRES_DB is required")
			log.Errorf(err, "missing POSTGRES_DB")
			return nil, err
		}

		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s",
			user,
			password,
			getEnvOrDefault("POSTGRES_HOST", defaultHost),
			getEnvOrDefault("POSTGRES_PORT", defaultPort),
			dbName,
			getEnvOrDefault("SSL_MODE", defaultSSLMode),
		)
	}

	maxConns, err := parseIntEnv("DB_MAX_CONNS", defaultMaxConns)
	if err != nil {
		log.Errorf(err, "invalid DB_MAX_CONNS")
		return nil, err
	}

	minConns, err := parseIntEnv("DB_MIN_CONNS", defaultMinConns)
	if err != nil {
		log.Errorf(err, "invalid DB_MIN_CONNS")
		return nil, err
	}

	return &PGDBCfg{
		DatabaseURL: dsn,
		MaxConns:    int32(maxConns),
		MinConns:    int32(minConns),
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
