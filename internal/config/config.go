// Package config reads settings from the environment, an optional config
// file and command flags, all through viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Setting keys. Environment variables use the same names.
const (
	KeyCatalogBaseURL    = "CATALOG_BASE_URL"
	KeyProductPageSize   = "PRODUCT_PAGE_SIZE"
	KeyBrandPageSize     = "BRAND_PAGE_SIZE"
	KeyDatabaseURL       = "DATABASE_URL"
	KeyCommentStore      = "COMMENT_STORE"
	KeyNickname          = "NICKNAME"
	KeyLogLevel          = "LOG_LEVEL"
	KeyLogFormat         = "LOG_FORMAT"
	KeyHost              = "HOST"
	KeyPort              = "PORT"
	KeyReadRPS           = "RATE_LIMIT_READ_RPS"
	KeyWriteRPS          = "RATE_LIMIT_WRITE_RPS"
	KeyMaxBodyBytes      = "MAX_REQUEST_BODY_BYTES"
	KeyCORSAllowedOrigin = "CORS_ALLOWED_ORIGINS"
)

const (
	CommentStorePostgres = "postgres"
	CommentStoreMemory   = "memory"
)

// HTTPTimeout bounds every catalog request. It is not configurable.
const HTTPTimeout = 60 * time.Second

type Config struct {
	CatalogBaseURL  string
	HTTPTimeout     time.Duration
	ProductPageSize int
	BrandPageSize   int

	DatabaseURL  string
	CommentStore string
	Nickname     string

	LogLevel  string
	LogFormat string

	Host           string
	Port           int
	ReadRPS        int
	WriteRPS       int
	MaxBodyBytes   int64
	AllowedOrigins []string
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCatalogBaseURL, "http://localhost:8080")
	v.SetDefault(KeyProductPageSize, 20)
	v.SetDefault(KeyBrandPageSize, 40)
	v.SetDefault(KeyCommentStore, CommentStorePostgres)
	v.SetDefault(KeyNickname, "Tester")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyHost, "0.0.0.0")
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyReadRPS, 100)
	v.SetDefault(KeyWriteRPS, 20)
	v.SetDefault(KeyMaxBodyBytes, 1048576)
	v.SetDefault(KeyCORSAllowedOrigin, "http://localhost:5173")
}

// Load builds a Config from v after applying defaults.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		CatalogBaseURL:  strings.TrimRight(v.GetString(KeyCatalogBaseURL), "/"),
		HTTPTimeout:     HTTPTimeout,
		ProductPageSize: v.GetInt(KeyProductPageSize),
		BrandPageSize:   v.GetInt(KeyBrandPageSize),
		DatabaseURL:     v.GetString(KeyDatabaseURL),
		CommentStore:    strings.ToLower(v.GetString(KeyCommentStore)),
		Nickname:        v.GetString(KeyNickname),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		Host:            v.GetString(KeyHost),
		Port:            v.GetInt(KeyPort),
		ReadRPS:         v.GetInt(KeyReadRPS),
		WriteRPS:        v.GetInt(KeyWriteRPS),
		MaxBodyBytes:    v.GetInt64(KeyMaxBodyBytes),
		AllowedOrigins:  ParseAllowedOrigins(v.GetString(KeyCORSAllowedOrigin)),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.CatalogBaseURL == "" {
		return fmt.Errorf("%s is required", KeyCatalogBaseURL)
	}
	if c.ProductPageSize < 1 || c.ProductPageSize > 100 {
		return fmt.Errorf("%s must be between 1 and 100", KeyProductPageSize)
	}
	if c.BrandPageSize < 1 || c.BrandPageSize > 100 {
		return fmt.Errorf("%s must be between 1 and 100", KeyBrandPageSize)
	}
	switch c.CommentStore {
	case CommentStorePostgres, CommentStoreMemory:
	default:
		return fmt.Errorf("%s must be %q or %q", KeyCommentStore, CommentStorePostgres, CommentStoreMemory)
	}
	return nil
}

// RequireDatabase reports a missing DATABASE_URL.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%s is required", KeyDatabaseURL)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func ParseAllowedOrigins(originsStr string) []string {
	if originsStr == "" {
		return []string{"http://localhost:5173"}
	}
	origins := strings.Split(originsStr, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
