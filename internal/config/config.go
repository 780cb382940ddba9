// Package config provides application configuration.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/foundationagents/manus-webui/internal/i18n"
)

// Config holds all application configuration. Environment variables
// provide the values; command-line flags may overlay Host, Port, Share
// and Language afterwards.
type Config struct {
	Host           string
	Port           int
	Share          bool
	Language       string
	AgentAddr      string
	ConnectTimeout time.Duration
	DBEnabled      bool
	DBPath         string
	ConfigPath     string
	LogDir         string
	AllowedOrigins []string
	TranscriptLog  TranscriptLogConfig
}

// TranscriptLogConfig controls NDJSON transcript logging.
type TranscriptLogConfig struct {
	Enabled       bool
	Dir           string
	GlobalEnabled bool
	GlobalPath    string
	QueueSize     int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	queueSize := getEnvInt("TRANSCRIPT_LOG_QUEUE_SIZE", 1000)
	if queueSize <= 0 {
		queueSize = 1000
	}

	cfg := &Config{
		Host:           getEnv("WEBUI_HOST", "127.0.0.1"),
		Port:           getEnvInt("WEBUI_PORT", 7860),
		Share:          getEnvBool("WEBUI_SHARE", false),
		Language:       getEnv("WEBUI_LANG", i18n.DefaultLanguage),
		AgentAddr:      getEnv("MANUS_AGENT_ADDR", "localhost:50051"),
		ConnectTimeout: getEnvDuration("MANUS_CONNECT_TIMEOUT", 5*time.Second),
		DBEnabled:      getEnvBool("DB_ENABLED", true),
		DBPath:         getEnv("DB_PATH", "./data/webui.db"),
		ConfigPath:     getEnv("CONFIG_PATH", "./config/config.toml"),
		LogDir:         getEnv("LOG_DIR", "./data/logs"),
		AllowedOrigins: splitOrigins(getEnv("WEBUI_ALLOWED_ORIGINS", "")),
		TranscriptLog: TranscriptLogConfig{
			Enabled:       getEnvBool("TRANSCRIPT_LOG_ENABLED", true),
			Dir:           getEnv("TRANSCRIPT_LOG_DIR", "./data/logs/transcripts"),
			GlobalEnabled: getEnvBool("TRANSCRIPT_LOG_GLOBAL_ENABLED", false),
			GlobalPath:    getEnv("TRANSCRIPT_LOG_GLOBAL_PATH", "./data/logs/transcripts/all.ndjson"),
			QueueSize:     queueSize,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("WEBUI_HOST cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("WEBUI_PORT must be between 1 and 65535, got %d", c.Port)
	}
	if !i18n.Supported(c.Language) {
		return fmt.Errorf("WEBUI_LANG must be one of: %s", strings.Join(languageCodes(), ", "))
	}
	if c.AgentAddr == "" {
		return fmt.Errorf("MANUS_AGENT_ADDR cannot be empty")
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("MANUS_CONNECT_TIMEOUT must be > 0")
	}
	if c.DBEnabled && c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty when the archive is enabled")
	}
	if c.TranscriptLog.Dir == "" {
		return fmt.Errorf("TRANSCRIPT_LOG_DIR cannot be empty")
	}
	if c.TranscriptLog.GlobalPath == "" {
		return fmt.Errorf("TRANSCRIPT_LOG_GLOBAL_PATH cannot be empty")
	}
	if c.TranscriptLog.QueueSize <= 0 {
		return fmt.Errorf("TRANSCRIPT_LOG_QUEUE_SIZE must be > 0")
	}
	return nil
}

// Addr returns the listen address. Share publishes the UI on all
// interfaces regardless of Host.
func (c *Config) Addr() string {
	host := c.Host
	if c.Share {
		host = "0.0.0.0"
	}
	return net.JoinHostPort(host, strconv.Itoa(c.Port))
}

// Origins returns the allowed CORS origins. With no explicit override the
// UI only trusts its own loopback addresses.
func (c *Config) Origins() []string {
	if len(c.AllowedOrigins) > 0 {
		return c.AllowedOrigins
	}
	port := strconv.Itoa(c.Port)
	return []string{
		"http://localhost:" + port,
		"http://127.0.0.1:" + port,
		"http://" + net.JoinHostPort(c.Host, port),
	}
}

func languageCodes() []string {
	opts := i18n.Languages()
	codes := make([]string, len(opts))
	for i, o := range opts {
		codes[i] = o.Code
	}
	return codes
}

func splitOrigins(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
