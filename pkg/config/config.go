package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int    `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Redis struct {
		Enabled     bool   `yaml:"enabled"`
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		Password    string `yaml:"password"`
		DB          int    `yaml:"db"`
		TLSEnabled  bool   `yaml:"tls_enabled"`
		TLSCertFile string `yaml:"tls_cert_file"`
	} `yaml:"redis"`
	MLService struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"ml_service"`
	Cache struct {
		PredictionTTLMinutes int `yaml:"prediction_ttl_minutes"`
	} `yaml:"cache"`
	RateLimit struct {
		RequestsPerMinute int `yaml:"requests_per_minute"`
		Burst             int `yaml:"burst"`
	} `yaml:"rate_limit"`
	ReferenceData struct {
		Path string `yaml:"path"`
	} `yaml:"reference_data"`
}

// LoadConfig reads the YAML file at path, applies environment overrides and
// defaults, and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse is LoadConfig without the file read.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value: %w", err)
		}
		cfg.Server.Port = n
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if enabled := os.Getenv("REDIS_ENABLED"); enabled != "" {
		cfg.Redis.Enabled = enabled == "true"
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid REDIS_PORT value: %w", err)
		}
		cfg.Redis.Port = n
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %w", err)
		}
		cfg.Redis.DB = n
	}
	if tlsEnabled := os.Getenv("REDIS_TLS_ENABLED"); tlsEnabled != "" {
		cfg.Redis.TLSEnabled = tlsEnabled == "true"
	}
	if tlsCertFile := os.Getenv("REDIS_TLS_CERT_FILE"); tlsCertFile != "" {
		cfg.Redis.TLSCertFile = tlsCertFile
	}
	if url := os.Getenv("ML_SERVICE_URL"); url != "" {
		cfg.MLService.BaseURL = url
	}
	if timeout := os.Getenv("ML_SERVICE_TIMEOUT_SECONDS"); timeout != "" {
		n, err := strconv.Atoi(timeout)
		if err != nil {
			return fmt.Errorf("invalid ML_SERVICE_TIMEOUT_SECONDS value: %w", err)
		}
		cfg.MLService.TimeoutSeconds = n
	}
	if ttl := os.Getenv("PREDICTION_CACHE_TTL_MINUTES"); ttl != "" {
		n, err := strconv.Atoi(ttl)
		if err != nil {
			return fmt.Errorf("invalid PREDICTION_CACHE_TTL_MINUTES value: %w", err)
		}
		cfg.Cache.PredictionTTLMinutes = n
	}
	if rpm := os.Getenv("RATE_LIMIT_PER_MINUTE"); rpm != "" {
		n, err := strconv.Atoi(rpm)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE value: %w", err)
		}
		cfg.RateLimit.RequestsPerMinute = n
	}
	if path := os.Getenv("REFERENCE_DATA_PATH"); path != "" {
		cfg.ReferenceData.Path = path
	}
	return nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.MLService.BaseURL == "" {
		cfg.MLService.BaseURL = "http://localhost:5000"
	}
	if cfg.MLService.TimeoutSeconds == 0 {
		cfg.MLService.TimeoutSeconds = 10
	}
	if cfg.Cache.PredictionTTLMinutes == 0 {
		cfg.Cache.PredictionTTLMinutes = 60
	}
	if cfg.RateLimit.RequestsPerMinute == 0 {
		cfg.RateLimit.RequestsPerMinute = 100
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
}

// Validate reports the first invalid setting.
func (cfg *Config) Validate() error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.Server.Mode)
	}
	if cfg.Redis.Enabled {
		if cfg.Redis.Port <= 0 || cfg.Redis.Port > 65535 {
			return fmt.Errorf("REDIS_PORT must be between 1 and 65535")
		}
		if cfg.Redis.DB < 0 {
			return fmt.Errorf("REDIS_DB must be non-negative")
		}
		if cfg.Redis.TLSEnabled && cfg.Redis.TLSCertFile != "" {
			if _, err := os.Stat(cfg.Redis.TLSCertFile); os.IsNotExist(err) {
				return fmt.Errorf("TLS certificate file does not exist: %s", cfg.Redis.TLSCertFile)
			}
		}
	}
	if cfg.MLService.TimeoutSeconds < 0 {
		return fmt.Errorf("ML_SERVICE_TIMEOUT_SECONDS must be positive")
	}
	if cfg.Cache.PredictionTTLMinutes < 0 {
		return fmt.Errorf("PREDICTION_CACHE_TTL_MINUTES must be positive")
	}
	if cfg.RateLimit.RequestsPerMinute < 0 || cfg.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}
	return nil
}

// MLTimeout is the per-request deadline for the model server.
func (cfg *Config) MLTimeout() time.Duration {
	return time.Duration(cfg.MLService.TimeoutSeconds) * time.Second
}

// PredictionTTL is how long a cached price stays valid.
func (cfg *Config) PredictionTTL() time.Duration {
	return time.Duration(cfg.Cache.PredictionTTLMinutes) * time.Minute
}

// RedisAddr returns host:port.
func (cfg *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
}
