package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// FirebaseConfig holds identity provider settings.
// CredentialsFile and CredentialsJSON are mutually optional; when both are empty
// application default credentials are used.
type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
	CredentialsJSON string
	WebAPIKey       string
	AuthEndpoint    string
}

// RedisConfig holds cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTLSec   int
}

// RateLimitConfig controls the per-IP limiter applied to /auth endpoints.
type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

// JobsConfig holds cron specs for background maintenance.
type JobsConfig struct {
	Enabled           bool
	BookingSweepSpec  string
	RequestExpirySpec string
	RequestExpiryDays int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	Port      string
	TimeZone  string
	LogLevel  string
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Firebase  FirebaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Jobs      JobsConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		TimeZone: getEnv("APP_TIMEZONE", "UTC"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Firebase: FirebaseConfig{
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
			CredentialsJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
			WebAPIKey:       getEnv("FIREBASE_WEB_API_KEY", ""),
			AuthEndpoint:    getEnv("FIREBASE_AUTH_ENDPOINT", "https://identitytoolkit.googleapis.com/v1"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTLSec:   getEnvInt("REDIS_TTL_SEC", 300),
		},
		RateLimit: RateLimitConfig{
			PerSecond: getEnvFloat("AUTH_RATE_PER_SEC", 1),
			Burst:     getEnvInt("AUTH_RATE_BURST", 5),
		},
		Jobs: JobsConfig{
			Enabled:           getEnvBool("JOBS_ENABLED", true),
			BookingSweepSpec:  getEnv("JOBS_BOOKING_SWEEP", "@every 10m"),
			RequestExpirySpec: getEnv("JOBS_REQUEST_EXPIRY", "@hourly"),
			RequestExpiryDays: getEnvInt("JOBS_REQUEST_EXPIRY_DAYS", 30),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
