package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Sitemap  SitemapConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
	// BaseURL is the public origin used when building absolute URLs
	// (redirect Location headers, sitemap entries).
	BaseURL string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// DegradedModeAllowed keeps the service running with no-op
	// repositories when the database is unreachable at startup.
	DegradedModeAllowed bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	PageCacheTTL    time.Duration
	ContentCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type SitemapConfig struct {
	Enabled    bool
	Interval   time.Duration
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:    viper.GetString("API_HOST"),
			Port:    viper.GetInt("API_PORT"),
			Env:     viper.GetString("API_ENV"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:                viper.GetString("DB_HOST"),
			Port:                viper.GetInt("DB_PORT"),
			User:                viper.GetString("DB_USER"),
			Password:            viper.GetString("DB_PASSWORD"),
			DBName:              viper.GetString("DB_NAME"),
			SSLMode:             viper.GetString("DB_SSLMODE"),
			MaxConns:            viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:        viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime:     time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime:     time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			DegradedModeAllowed: viper.GetBool("DB_DEGRADED_MODE_ALLOWED"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			PageCacheTTL:    time.Duration(viper.GetInt("PAGE_CACHE_TTL")) * time.Second,
			ContentCacheTTL: time.Duration(viper.GetInt("CONTENT_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Sitemap: SitemapConfig{
			Enabled:    viper.GetBool("SITEMAP_ENABLED"),
			Interval:   time.Duration(viper.GetInt("SITEMAP_INTERVAL")) * time.Second,
			OutputPath: viper.GetString("SITEMAP_OUTPUT_PATH"),
		},
	}

	// Set default values if not provided
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "https://www.fostercare.uk"
	}
	if cfg.Cache.PageCacheTTL == 0 {
		cfg.Cache.PageCacheTTL = 5 * time.Minute
	}
	if cfg.Cache.ContentCacheTTL == 0 {
		cfg.Cache.ContentCacheTTL = 15 * time.Minute
	}
	if cfg.Sitemap.Interval == 0 {
		cfg.Sitemap.Interval = 24 * time.Hour
	}
	if cfg.Sitemap.OutputPath == "" {
		cfg.Sitemap.OutputPath = "./static/sitemap.xml"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
