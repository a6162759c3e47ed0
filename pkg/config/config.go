package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configPathEnv = "CONTENT_API_CONFIG"

// Config holds process settings. Values come from defaults, then the optional
// YAML file named by CONTENT_API_CONFIG, then environment variables.
type Config struct {
	ServerPort           string        `yaml:"serverPort"`
	StaticDir            string        `yaml:"staticDir"`
	LogLevel             string        `yaml:"logLevel"`
	AllowedOrigin        string        `yaml:"allowedOrigin"`
	ServiceName          string        `yaml:"serviceName"`
	TracingEnabled       bool          `yaml:"tracingEnabled"`
	OTLPEndpoint         string        `yaml:"otlpEndpoint"`
	AssetMissLogInterval int           `yaml:"assetMissLogInterval"`
	ShutdownTimeout      time.Duration `yaml:"shutdownTimeout"`
}

func defaultConfig() Config {
	return Config{
		ServerPort:           "5050",
		StaticDir:            "static",
		LogLevel:             "info",
		AllowedOrigin:        "*",
		ServiceName:          "content-api",
		TracingEnabled:       false,
		OTLPEndpoint:         "localhost:4317",
		AssetMissLogInterval: 10,
		ShutdownTimeout:      10 * time.Second,
	}
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := defaultConfig()
	if path := os.Getenv(configPathEnv); path != "" {
		loadFile(path, &cfg)
	}

	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.StaticDir = getEnv("STATIC_DIR", cfg.StaticDir)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.AllowedOrigin = getEnv("CORS_ALLOWED_ORIGIN", cfg.AllowedOrigin)
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName)
	cfg.TracingEnabled = getBoolEnv("TRACING_ENABLED", cfg.TracingEnabled)
	cfg.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.OTLPEndpoint)
	cfg.AssetMissLogInterval = getIntEnv("ASSET_MISS_LOG_INTERVAL", cfg.AssetMissLogInterval)
	cfg.ShutdownTimeout = getDurationEnv("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	return &cfg
}

// loadFile overlays non-zero values from a YAML file onto cfg.
func loadFile(path string, cfg *Config) {
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Could not read config file, using defaults", "path", path, "error", err)
		return
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		slog.Error("Error decoding config file", "path", path, "error", err)
		return
	}

	if fileCfg.ServerPort != "" {
		cfg.ServerPort = fileCfg.ServerPort
	}
	if fileCfg.StaticDir != "" {
		cfg.StaticDir = fileCfg.StaticDir
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.AllowedOrigin != "" {
		cfg.AllowedOrigin = fileCfg.AllowedOrigin
	}
	if fileCfg.ServiceName != "" {
		cfg.ServiceName = fileCfg.ServiceName
	}
	if fileCfg.TracingEnabled {
		cfg.TracingEnabled = true
	}
	if fileCfg.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = fileCfg.OTLPEndpoint
	}
	if fileCfg.AssetMissLogInterval > 0 {
		cfg.AssetMissLogInterval = fileCfg.AssetMissLogInterval
	}
	if fileCfg.ShutdownTimeout > 0 {
		cfg.ShutdownTimeout = fileCfg.ShutdownTimeout
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		// Try parsing as duration string (e.g. "1m", "60s")
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Try parsing as integer seconds
		if i, err := strconv.Atoi(value); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
