package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// It is constructed once at startup and treated as immutable afterwards.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURL       string
	DBName         string
	UserCollection string
	TaskCollection string

	// Redis (rate limiting only; empty addr disables it)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Token signing
	JWTSecret    string
	JWTAlgorithm string
	AccessTTL    time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "taskhive"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURL:       getenv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:         getenv("DB_NAME", "taskhive"),
		UserCollection: getenv("USER_COLLECTION", "users"),
		TaskCollection: getenv("TASK_COLLECTION", "tasks"),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		JWTSecret:    os.Getenv("JWT_ACCESS_TOKEN_SECRET_KEY"),
		JWTAlgorithm: getenv("JWT_ALGORITHM", "HS256"),
		AccessTTL:    time.Duration(getint("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// Validate checks the settings the auth core cannot run without.
// The signing secret has no default on purpose.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_ACCESS_TOKEN_SECRET_KEY is required")
	}
	if len(c.JWTSecret) < 16 {
		return errors.New("JWT_ACCESS_TOKEN_SECRET_KEY must be at least 16 bytes")
	}
	switch c.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return errors.New("JWT_ALGORITHM must be one of HS256, HS384, HS512")
	}
	if c.AccessTTL <= 0 {
		return errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	return nil
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
