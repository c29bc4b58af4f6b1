package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress   string // Адрес и порт встроенного burger API
	APIBaseURL   string // Базовый URL удаленного API; пустой — использовать встроенный
	JWTSecret    string // Секретный ключ встроенного API
	LogLevel     string // Уровень логирования

	AccessTokenTTL   time.Duration // Время жизни access токена
	RefreshTokenTTL  time.Duration // Время жизни refresh токена
	RefreshTokenFile string        // Файл долгоживущего хранилища refresh токена

	HTTPTimeout time.Duration // Таймаут одного HTTP запроса
	RetryMax    int           // Максимум повторов HTTP запроса
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:         "info",
		AccessTokenTTL:   20 * time.Minute,
		RefreshTokenTTL:  30 * 24 * time.Hour,
		RefreshTokenFile: ".stellar-burger/refresh.token",
		HTTPTimeout:      10 * time.Second,
		RetryMax:         2,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run the embedded burger API")
	flag.StringVar(&cfg.APIBaseURL, "r", "", "remote burger API base URL (empty: use the embedded API)")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envBaseURL, ok := os.LookupEnv("API_BASE_URL"); ok {
		cfg.APIBaseURL = envBaseURL
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	if envTokenFile, ok := os.LookupEnv("REFRESH_TOKEN_FILE"); ok {
		cfg.RefreshTokenFile = envTokenFile
	}

	if envAccessTTL, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		if ttl, err := time.ParseDuration(envAccessTTL); err == nil && ttl > 0 {
			cfg.AccessTokenTTL = ttl
		}
	}

	if envRefreshTTL, ok := os.LookupEnv("REFRESH_TOKEN_TTL"); ok {
		if ttl, err := time.ParseDuration(envRefreshTTL); err == nil && ttl > 0 {
			cfg.RefreshTokenTTL = ttl
		}
	}

	if envTimeout, ok := os.LookupEnv("HTTP_TIMEOUT"); ok {
		if timeout, err := time.ParseDuration(envTimeout); err == nil && timeout > 0 {
			cfg.HTTPTimeout = timeout
		}
	}

	if envRetryMax, ok := os.LookupEnv("HTTP_RETRY_MAX"); ok {
		if retries, err := strconv.Atoi(envRetryMax); err == nil && retries >= 0 {
			cfg.RetryMax = retries
		}
	}

	return cfg, nil
}
