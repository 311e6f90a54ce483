package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Source SourceConfig
	Log    LogConfig
	CORS   CORSConfig
	Report ReportConfig
}

// ReportConfig toggles optional listing columns. It never affects classification.
type ReportConfig struct {
	EnableReverseCharge bool `mapstructure:"enable_reverse_charge"`
	EnableOverseas      bool `mapstructure:"enable_overseas"`
}

// SourceConfig selects where invoice rows are fetched from.
type SourceConfig struct {
	Provider string `mapstructure:"provider"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`

	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// S3Config holds settings for the S3 invoice export source.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the GSTR1_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTR1")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstr1")
	v.SetDefault("db.password", "gstr1_secret")
	v.SetDefault("db.name", "gstr1_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.connect_timeout", "10s")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "1h")
	v.SetDefault("jwt.issuer", "gstr1")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "gstr1-exports")
	v.SetDefault("s3.prefix", "sales-invoices")
	v.SetDefault("s3.endpoint", "")

	v.SetDefault("source.provider", "postgres")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("report.enable_reverse_charge", true)
	v.SetDefault("report.enable_overseas", true)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "GSTR1_SERVER_PORT",
		"server.read_timeout":          "GSTR1_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "GSTR1_SERVER_WRITE_TIMEOUT",
		"server.environment":           "GSTR1_SERVER_ENVIRONMENT",
		"db.host":                      "GSTR1_DB_HOST",
		"db.port":                      "GSTR1_DB_PORT",
		"db.user":                      "GSTR1_DB_USER",
		"db.password":                  "GSTR1_DB_PASSWORD",
		"db.name":                      "GSTR1_DB_NAME",
		"db.sslmode":                   "GSTR1_DB_SSLMODE",
		"db.max_open":                  "GSTR1_DB_MAX_OPEN",
		"db.max_idle":                  "GSTR1_DB_MAX_IDLE",
		"db.conn_max_lifetime":         "GSTR1_DB_CONN_MAX_LIFETIME",
		"db.connect_timeout":           "GSTR1_DB_CONNECT_TIMEOUT",
		"jwt.secret":                   "GSTR1_JWT_SECRET",
		"jwt.access_expiry":            "GSTR1_JWT_ACCESS_EXPIRY",
		"jwt.issuer":                   "GSTR1_JWT_ISSUER",
		"s3.region":                    "GSTR1_S3_REGION",
		"s3.bucket":                    "GSTR1_S3_BUCKET",
		"s3.prefix":                    "GSTR1_S3_PREFIX",
		"s3.endpoint":                  "GSTR1_S3_ENDPOINT",
		"s3.access_key":                "GSTR1_S3_ACCESS_KEY",
		"s3.secret_key":                "GSTR1_S3_SECRET_KEY",
		"source.provider":              "GSTR1_SOURCE_PROVIDER",
		"log.level":                    "GSTR1_LOG_LEVEL",
		"log.format":                   "GSTR1_LOG_FORMAT",
		"cors.allowed_origins":         "GSTR1_CORS_ALLOWED_ORIGINS",
		"report.enable_reverse_charge": "GSTR1_REPORT_ENABLE_REVERSE_CHARGE",
		"report.enable_overseas":       "GSTR1_REPORT_ENABLE_OVERSEAS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTR1_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTR1_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),

		ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
		ConnectTimeout:  v.GetDuration("db.connect_timeout"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Prefix:    strings.Trim(v.GetString("s3.prefix"), "/"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Source = SourceConfig{
		Provider: strings.ToLower(v.GetString("source.provider")),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Report = ReportConfig{
		EnableReverseCharge: v.GetBool("report.enable_reverse_charge"),
		EnableOverseas:      v.GetBool("report.enable_overseas"),
	}

	switch cfg.Source.Provider {
	case "postgres", "s3":
	default:
		return nil, fmt.Errorf("unsupported source provider %q: must be postgres or s3", cfg.Source.Provider)
	}

	return cfg, nil
}
