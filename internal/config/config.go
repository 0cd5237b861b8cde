package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/salary"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Payroll    PayrollConfig
	Welfare    WelfareConfig
	Attendance AttendanceConfig
	Import     ImportConfig
	Archive    ArchiveConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port      int
	Env       string
	LogLevel  string
	LogFormat string
}

// DatabaseConfig is optional; without DB_HOST the engine runs in memory.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Enabled reports whether a PostgreSQL store is configured.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// PayrollConfig holds the shared default rates and batch fan-out
type PayrollConfig struct {
	Rates   salary.Rates
	Workers int
}

// WelfareConfig parameterises the built-in welfare providers
type WelfareConfig struct {
	SocialInsuranceRate      decimal.Decimal
	SocialInsuranceMinMonths int
	BonusAmount              decimal.Decimal
	TransportRatePerKm       decimal.Decimal
	// TransportRoutes holds "region=km;..." overrides for the route table
	TransportRoutes string
}

type AttendanceConfig struct {
	Holidays []string
}

// ImportConfig names CSV files loaded at startup when no database is configured
type ImportConfig struct {
	EmployeesFile  string
	AttendanceFile string
}

// ArchiveConfig enables the scheduled payroll register archive when Dir is set
type ArchiveConfig struct {
	Dir      string
	Interval time.Duration
}

// Load reads the given .env files (default ".env"), then the environment.
// Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}
	var err error

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	config.App = AppConfig{
		Port:      appPort,
		Env:       getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Database configuration
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Payroll configuration
	workers, err := getEnvInt("PAYROLL_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	config.Payroll.Workers = workers
	if config.Payroll.Rates.Hourly, err = getEnvDecimal("PAYROLL_HOURLY_RATE", "50000"); err != nil {
		return nil, err
	}
	if config.Payroll.Rates.Overtime, err = getEnvDecimal("PAYROLL_OVERTIME_RATE", "75000"); err != nil {
		return nil, err
	}
	if config.Payroll.Rates.Holiday, err = getEnvDecimal("PAYROLL_HOLIDAY_RATE", "100000"); err != nil {
		return nil, err
	}

	// Welfare configuration
	if config.Welfare.SocialInsuranceRate, err = getEnvDecimal("WELFARE_SOCIAL_INSURANCE_RATE", "0.105"); err != nil {
		return nil, err
	}
	if config.Welfare.SocialInsuranceMinMonths, err = getEnvInt("WELFARE_SOCIAL_INSURANCE_MIN_MONTHS", 6); err != nil {
		return nil, err
	}
	if config.Welfare.BonusAmount, err = getEnvDecimal("WELFARE_BONUS_AMOUNT", "500000"); err != nil {
		return nil, err
	}
	if config.Welfare.TransportRatePerKm, err = getEnvDecimal("WELFARE_TRANSPORT_RATE_PER_KM", "4000"); err != nil {
		return nil, err
	}
	config.Welfare.TransportRoutes = getEnv("WELFARE_TRANSPORT_ROUTES", "")

	// Attendance configuration
	config.Attendance.Holidays = getEnvSlice("ATTENDANCE_HOLIDAYS")
	if len(config.Attendance.Holidays) == 0 {
		config.Attendance.Holidays = append([]string(nil), attendance.DefaultHolidays...)
	}

	config.Import = ImportConfig{
		EmployeesFile:  getEnv("IMPORT_EMPLOYEES_FILE", ""),
		AttendanceFile: getEnv("IMPORT_ATTENDANCE_FILE", ""),
	}

	config.Archive.Dir = getEnv("REGISTER_ARCHIVE_DIR", "")
	if config.Archive.Interval, err = time.ParseDuration(getEnv("REGISTER_ARCHIVE_INTERVAL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid REGISTER_ARCHIVE_INTERVAL: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.App.LogFormat != "json" && c.App.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be json or text")
	}
	if c.Database.Enabled() && c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required when DB_HOST is set")
	}
	if err := c.Payroll.Rates.Validate(); err != nil {
		return fmt.Errorf("PAYROLL_*_RATE: %w", err)
	}
	if c.Payroll.Workers < 1 {
		return fmt.Errorf("PAYROLL_WORKERS must be at least 1")
	}
	if c.Welfare.SocialInsuranceRate.IsNegative() {
		return fmt.Errorf("WELFARE_SOCIAL_INSURANCE_RATE must not be negative")
	}
	if c.Welfare.SocialInsuranceMinMonths < 0 {
		return fmt.Errorf("WELFARE_SOCIAL_INSURANCE_MIN_MONTHS must not be negative")
	}
	if c.Welfare.BonusAmount.IsNegative() {
		return fmt.Errorf("WELFARE_BONUS_AMOUNT must not be negative")
	}
	if c.Welfare.TransportRatePerKm.IsNegative() {
		return fmt.Errorf("WELFARE_TRANSPORT_RATE_PER_KM must not be negative")
	}
	if c.Archive.Dir != "" && c.Archive.Interval <= 0 {
		return fmt.Errorf("REGISTER_ARCHIVE_INTERVAL must be positive")
	}
	if _, err := attendance.NewHolidayCalendar(c.Attendance.Holidays); err != nil {
		return fmt.Errorf("ATTENDANCE_HOLIDAYS: %w", err)
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

func getEnvInt(key string, fallback int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
