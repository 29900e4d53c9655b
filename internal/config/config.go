package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Statutory StatutoryConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	StorageTimeout time.Duration
	BuildTimeout   time.Duration
}

// StatutoryConfig holds the organization-level statutory defaults: the EPF
// rates applied when an employee record carries none, and the flat-percentage
// fallbacks applied when a contribution bracket table is empty. These are
// deployment configuration, never constants at the computation sites.
type StatutoryConfig struct {
	EPFDefaultEmployeeRate    decimal.Decimal
	EPFDefaultEmployerRate    decimal.Decimal
	SocsoFallbackEmployeeRate decimal.Decimal
	SocsoFallbackEmployerRate decimal.Decimal
	EISFallbackEmployeeRate   decimal.Decimal
	EISFallbackEmployerRate   decimal.Decimal
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "gajihub-payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	storageTimeout, err := time.ParseDuration(getEnv("STORAGE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORAGE_TIMEOUT: %w", err)
	}
	buildTimeout, err := time.ParseDuration(getEnv("BUILD_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BUILD_TIMEOUT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		StorageTimeout: storageTimeout,
		BuildTimeout:   buildTimeout,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Statutory defaults. The SOCSO/EIS fallback percentages only apply when
	// a bracket table has no rows at all.
	statutory, err := loadStatutory()
	if err != nil {
		return nil, err
	}
	config.Statutory = statutory

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadStatutory() (StatutoryConfig, error) {
	var s StatutoryConfig
	var err error

	if s.EPFDefaultEmployeeRate, err = getEnvDecimal("STATUTORY_EPF_EMPLOYEE_RATE", "0.11"); err != nil {
		return s, err
	}
	if s.EPFDefaultEmployerRate, err = getEnvDecimal("STATUTORY_EPF_EMPLOYER_RATE", "0.13"); err != nil {
		return s, err
	}
	if s.SocsoFallbackEmployeeRate, err = getEnvDecimal("STATUTORY_SOCSO_FALLBACK_EMPLOYEE_RATE", "0.005"); err != nil {
		return s, err
	}
	if s.SocsoFallbackEmployerRate, err = getEnvDecimal("STATUTORY_SOCSO_FALLBACK_EMPLOYER_RATE", "0.0175"); err != nil {
		return s, err
	}
	if s.EISFallbackEmployeeRate, err = getEnvDecimal("STATUTORY_EIS_FALLBACK_EMPLOYEE_RATE", "0.002"); err != nil {
		return s, err
	}
	if s.EISFallbackEmployerRate, err = getEnvDecimal("STATUTORY_EIS_FALLBACK_EMPLOYER_RATE", "0.002"); err != nil {
		return s, err
	}

	return s, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Statutory.EPFDefaultEmployeeRate.IsNegative() || c.Statutory.EPFDefaultEmployerRate.IsNegative() {
		return fmt.Errorf("STATUTORY_EPF rates must be non-negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
