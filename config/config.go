package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Grading rules and input bounds
	Grading GradingConfig

	// Report feature toggles
	Features *FeatureFlags

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string
}

// GradingConfig holds the calculation settings.
type GradingConfig struct {
	// InputMode is "marks" or "letter".
	InputMode string

	// ScaleFile points to a JSON grading scale. Empty uses the built-in scale.
	ScaleFile string

	// Precision is the number of decimals shown for averages.
	Precision int

	// Limits on transcript size
	MaxSemesters int
	MaxSubjects  int

	// Bounds applied to inputs before calculation
	CreditMin float64
	CreditMax float64
	MarksMin  float64
	MarksMax  float64

	// ZeroMarksAbsent treats a mark of exactly 0 as "not entered".
	ZeroMarksAbsent bool
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, logfmt
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment variables win.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("dotenv: %w", err)
	}

	cfg := &Config{
		App:           loadAppConfig(),
		Grading:       loadGradingConfig(),
		Features:      LoadFeatureFlags(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "gradecalc",
			Environment: EnvDevelopment,
			Version:     "0.1.0",
		},
		Grading: GradingConfig{
			InputMode:    "marks",
			Precision:    2,
			MaxSemesters: 8,
			MaxSubjects:  10,
			CreditMin:    1,
			CreditMax:    10,
			MarksMin:     0,
			MarksMax:     100,
		},
		Features: DefaultFeatureFlags(),
		Observability: ObservabilityConfig{
			LogLevel:  "warn",
			LogFormat: "json",
		},
	}
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func loadAppConfig() AppConfig {
	env := Environment(getEnv("APP_ENV", string(EnvDevelopment)))

	return AppConfig{
		Name:        getEnv("APP_NAME", "gradecalc"),
		Environment: env,
		Debug:       getEnvBool("APP_DEBUG", false),
		Version:     getEnv("APP_VERSION", "0.1.0"),
	}
}

func loadGradingConfig() GradingConfig {
	return GradingConfig{
		InputMode:       getEnv("GRADING_INPUT_MODE", "marks"),
		ScaleFile:       getEnv("GRADING_SCALE_FILE", ""),
		Precision:       getEnvInt("GRADING_PRECISION", 2),
		MaxSemesters:    getEnvInt("GRADING_MAX_SEMESTERS", 8),
		MaxSubjects:     getEnvInt("GRADING_MAX_SUBJECTS", 10),
		CreditMin:       getEnvFloat("GRADING_CREDIT_MIN", 1),
		CreditMax:       getEnvFloat("GRADING_CREDIT_MAX", 10),
		MarksMin:        getEnvFloat("GRADING_MARKS_MIN", 0),
		MarksMax:        getEnvFloat("GRADING_MARKS_MAX", 100),
		ZeroMarksAbsent: getEnvBool("GRADING_ZERO_MARKS_ABSENT", false),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Grading.InputMode) {
	case "marks", "letter":
	default:
		errs = append(errs, "GRADING_INPUT_MODE must be marks or letter")
	}

	if c.Grading.Precision < 0 || c.Grading.Precision > 6 {
		errs = append(errs, "GRADING_PRECISION must be 0-6")
	}

	if c.Grading.MaxSemesters < 1 {
		errs = append(errs, "GRADING_MAX_SEMESTERS must be at least 1")
	}

	if c.Grading.MaxSubjects < 1 {
		errs = append(errs, "GRADING_MAX_SUBJECTS must be at least 1")
	}

	if c.Grading.CreditMin <= 0 || c.Grading.CreditMax < c.Grading.CreditMin {
		errs = append(errs, "GRADING_CREDIT_MIN must be positive and not above GRADING_CREDIT_MAX")
	}

	if c.Grading.MarksMax <= c.Grading.MarksMin {
		errs = append(errs, "GRADING_MARKS_MAX must be above GRADING_MARKS_MIN")
	}

	if c.Grading.ScaleFile != "" {
		if _, err := os.Stat(c.Grading.ScaleFile); err != nil {
			errs = append(errs, fmt.Sprintf("GRADING_SCALE_FILE: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
