package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Extractor  ExtractorConfig  `yaml:"extractor" mapstructure:"extractor"`
	Transform  TransformConfig  `yaml:"transform" mapstructure:"transform"`
	Coordinate CoordinateConfig `yaml:"coordinate" mapstructure:"coordinate"`
	FTP        FTPConfig        `yaml:"ftp" mapstructure:"ftp"`
	Ingest     IngestConfig     `yaml:"ingest" mapstructure:"ingest"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the Postgres backend.
type StoreConfig struct {
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// ExtractorConfig configures the metadata extraction gateway client.
type ExtractorConfig struct {
	BaseURL          string  `yaml:"base_url" mapstructure:"base_url"`
	RateLimit        float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	TimeoutSecs      int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	BreakerThreshold int     `yaml:"breaker_threshold" mapstructure:"breaker_threshold"`
	BreakerResetSecs int     `yaml:"breaker_reset_secs" mapstructure:"breaker_reset_secs"`
}

// TransformConfig configures the coordinate transform service client.
type TransformConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// CoordinateConfig holds the active coordinate reference system.
type CoordinateConfig struct {
	SRID  int    `yaml:"srid" mapstructure:"srid"`
	Proj4 string `yaml:"proj4" mapstructure:"proj4"`
}

// FTPConfig configures the remote file store.
type FTPConfig struct {
	Host        string `yaml:"host" mapstructure:"host"`
	User        string `yaml:"user" mapstructure:"user"`
	Password    string `yaml:"password" mapstructure:"password"`
	RemoteDir   string `yaml:"remote_dir" mapstructure:"remote_dir"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxAttempts int    `yaml:"max_attempts" mapstructure:"max_attempts"`
	BackoffMs   int    `yaml:"backoff_ms" mapstructure:"backoff_ms"`
}

// IngestConfig configures the QC preview and orchestration passes.
type IngestConfig struct {
	QCCachePath        string `yaml:"qc_cache_path" mapstructure:"qc_cache_path"`
	PreviewConcurrency int    `yaml:"preview_concurrency" mapstructure:"preview_concurrency"`
}

// ServerConfig configures the upload webhook server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("INGEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.max_conns", 10)
	v.SetDefault("store.min_conns", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("extractor.base_url", "http://localhost:9090")
	v.SetDefault("extractor.rate_limit", 10)
	v.SetDefault("extractor.timeout_secs", 300)
	v.SetDefault("extractor.breaker_threshold", 5)
	v.SetDefault("extractor.breaker_reset_secs", 30)
	v.SetDefault("transform.base_url", "http://localhost:9091")
	v.SetDefault("transform.timeout_secs", 600)
	v.SetDefault("coordinate.srid", 4326)
	v.SetDefault("ftp.timeout_secs", 30)
	v.SetDefault("ftp.max_attempts", 3)
	v.SetDefault("ftp.backoff_ms", 500)
	v.SetDefault("ftp.remote_dir", "/incoming")
	v.SetDefault("ingest.qc_cache_path", "qc-cache.db")
	v.SetDefault("ingest.preview_concurrency", 4)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
