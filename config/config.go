package config

import (
	"brandia_server/structs"
	"fmt"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "Brandia"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8083"),
				ServerURL:      getEnvAsString("SERVER_URL", "http://localhost:8083"),
				FrontendURL:    getEnvAsString("FRONTEND_URL", "http://localhost:3000"),
				CookieDomain:   getEnvAsString("COOKIE_DOMAIN", ""),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIMEOUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
				AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
				AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Database: &structs.DatabaseConfig{
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", ""),
				Name:         getEnvAsString("DB_NAME", "brandia_db"),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
				MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			},
			Auth: &structs.AuthConfig{
				AccessTokenSecret: getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
				AccessTokenExpiry: getEnvAsTimeDuration("AUTH_ACCESS_TOKEN_EXPIRY", 15*time.Minute),
				CacheUserTTL:      getEnvAsTimeDuration("AUTH_CACHE_USER_TTL", 10*time.Minute),
			},
			Cache: &structs.CacheConfig{
				Address:         getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
				Username:        getEnvAsString("REDIS_USERNAME", ""),
				Password:        getEnvAsString("REDIS_PASSWORD", ""),
				DB:              getEnvAsInt("REDIS_DB", 0),
				PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				MaxIdleConns:    getEnvAsInt("REDIS_MAX_IDLE_CONNS", 5),
				PoolTimeout:     getEnvAsTimeDuration("REDIS_POOL_TIMEOUT", 30*time.Second),
				IdleTimeout:     getEnvAsTimeDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
				DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
				MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 100*time.Millisecond),
				MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 2*time.Second),
				ProductListTTL:  getEnvAsTimeDuration("REDIS_PRODUCT_LIST_TTL", 5*time.Minute),
			},
			Email: &structs.EmailConfig{
				ApiKey:       getEnvAsString("RESEND_API_KEY", ""),
				From:         getEnvAsString("EMAIL_FROM", "Brandia <orders@brandia.example>"),
				SupportEmail: getEnvAsString("EMAIL_SUPPORT", "support@brandia.example"),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:         getEnvAsBool("RATELIMIT_ENABLED", true),
				GeneralLimit:    getEnvAsInt("RATELIMIT_GENERAL_LIMIT", 120),
				GeneralWindow:   getEnvAsTimeDuration("RATELIMIT_GENERAL_WINDOW", time.Minute),
				SupplierLimit:   getEnvAsInt("RATELIMIT_SUPPLIER_LIMIT", 240),
				SupplierWindow:  getEnvAsTimeDuration("RATELIMIT_SUPPLIER_WINDOW", time.Minute),
				ExpensiveLimit:  getEnvAsInt("RATELIMIT_EXPENSIVE_LIMIT", 60),
				ExpensiveWindow: getEnvAsTimeDuration("RATELIMIT_EXPENSIVE_WINDOW", time.Minute),
			},
		}
	})
	return configInstance
}

// Validate checks for configuration that must be supplied externally.
// A missing email key or database password has to fail loudly at startup,
// not surface as a silent no-op deep in a send path.
func Validate(cfg *structs.Config) error {
	if cfg.Email.ApiKey == "" {
		return fmt.Errorf("RESEND_API_KEY is not set; transactional email cannot be delivered without it")
	}
	if IsProduction() {
		if cfg.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is not set; refusing to start in production without database credentials")
		}
		if cfg.Auth.AccessTokenSecret == "default_access_secret" {
			return fmt.Errorf("AUTH_ACCESS_TOKEN_SECRET is the built-in default; set a real secret in production")
		}
	}
	return nil
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
