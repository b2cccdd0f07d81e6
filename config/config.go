package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Product/User store selection: "postgres" or "memory".
	StoreDriver string

	DBUrl             string
	DBMaxConns        int32
	DBMinConns        int32
	DBMaxConnIdleTime time.Duration

	JWTSecret   string
	TokenExpiry time.Duration

	AllowedOrigin string

	// Search policy. Country participation in substring matching is an
	// explicit configuration decision, not an implicit behavior.
	SearchMatchCountry bool

	// Asset origin for product image keys.
	AssetBaseURL string

	// Cache TTLs
	SuggestionCacheTTL time.Duration
	ProductCacheTTL    time.Duration

	// R2 Storage (image uploads)
	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2BucketName      string
	R2PublicURL       string
	R2UploadTimeout   time.Duration
	MaxUploadSizeMB   int64
}

func LoadConfig() *Config {
	// A specific config file can be requested via env var; otherwise fall
	// back to .env. Neither is required: docker/prod environments rely on
	// system env vars.
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StoreDriver: getEnv("STORE_DRIVER", "postgres"),

		DBUrl:             getEnv("DB_DSN", ""),
		DBMaxConns:        getInt32Env("DB_MAX_CONNS", 50),
		DBMinConns:        getInt32Env("DB_MIN_CONNS", 10),
		DBMaxConnIdleTime: getDurationEnv("DB_MAX_CONN_IDLE_TIME", time.Minute*15),

		JWTSecret:   getEnv("JWT_SECRET", "default_secret_CHANGE_ME"),
		TokenExpiry: getDurationEnv("TOKEN_EXPIRY", time.Hour*24*7), // 7d

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		SearchMatchCountry: getBoolEnv("SEARCH_MATCH_COUNTRY", false),

		AssetBaseURL: getEnv("ASSET_BASE_URL", "https://images.unsplash.com"),

		SuggestionCacheTTL: getDurationEnv("CACHE_SUGGESTION_TTL", 30*time.Second),
		ProductCacheTTL:    getDurationEnv("CACHE_PRODUCT_TTL", 10*time.Minute),

		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2AccessKeySecret: getEnv("R2_ACCESS_KEY_SECRET", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),
		R2UploadTimeout:   getDurationEnv("R2_UPLOAD_TIMEOUT", 30*time.Second),
		MaxUploadSizeMB:   getInt64Env("MAX_UPLOAD_SIZE_MB", 10),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.StoreDriver != "postgres" && c.StoreDriver != "memory" {
		log.Fatalf("CRITICAL: unknown STORE_DRIVER %q (want postgres or memory)", c.StoreDriver)
	}
	if c.StoreDriver == "postgres" && c.DBUrl == "" {
		log.Fatal("CRITICAL: DB_DSN environment variable is required with the postgres store")
	}
	if c.JWTSecret == "default_secret_CHANGE_ME" {
		log.Println("WARNING: Using default JWT secret. Setting up for failure in production.")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
		log.Printf("Invalid int64 for %s, using fallback", key)
	}
	return fallback
}
