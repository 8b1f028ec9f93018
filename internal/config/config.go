package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration. It is constructed once at
// process start and passed by reference into the pipeline and clients.
type Config struct {
	Serper SerperConfig `yaml:"serper" mapstructure:"serper"`
	Hunter HunterConfig `yaml:"hunter" mapstructure:"hunter"`
	Sheets SheetsConfig `yaml:"sheets" mapstructure:"sheets"`
	Titles TitlesConfig `yaml:"titles" mapstructure:"titles"`
	Search SearchConfig `yaml:"search" mapstructure:"search"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SerperConfig holds Serper search API settings.
type SerperConfig struct {
	Key       string  `yaml:"key" mapstructure:"key"`
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// HunterConfig holds Hunter.io API settings.
type HunterConfig struct {
	Key       string  `yaml:"key" mapstructure:"key"`
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// SheetsConfig identifies the spreadsheet and the service-account
// credentials. Credentials may be inline JSON (CredentialsJSON, typically
// from an env var) or a file path; inline wins when both are set.
type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheet_id" mapstructure:"spreadsheet_id"`
	CredentialsJSON string `yaml:"credentials_json" mapstructure:"credentials_json"`
	CredentialsFile string `yaml:"credentials_file" mapstructure:"credentials_file"`
	InputWorksheet  string `yaml:"input_worksheet" mapstructure:"input_worksheet"`
	OutputWorksheet string `yaml:"output_worksheet" mapstructure:"output_worksheet"`
}

// TitlesConfig locates the job-title allowlist file.
type TitlesConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// SearchConfig tunes profile discovery and the domain fallback.
type SearchConfig struct {
	MaxResults  int `yaml:"max_results" mapstructure:"max_results"`
	PerPage     int `yaml:"per_page" mapstructure:"per_page"`
	MaxPages    int `yaml:"max_pages" mapstructure:"max_pages"`
	DomainLimit int `yaml:"domain_limit" mapstructure:"domain_limit"`
}

// StoreConfig configures the local run-history database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the trigger server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
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
	v.SetEnvPrefix("LEADHUNTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Keys without a meaningful default still need to be
	// registered: AutomaticEnv only resolves keys viper already knows, so an
	// unregistered env-only key would never reach Unmarshal.
	v.SetDefault("serper.key", "")
	v.SetDefault("hunter.key", "")
	v.SetDefault("sheets.spreadsheet_id", "")
	v.SetDefault("sheets.credentials_json", "")
	v.SetDefault("sheets.credentials_file", "")
	v.SetDefault("serper.base_url", "https://google.serper.dev")
	v.SetDefault("serper.rate_limit", 5.0)
	v.SetDefault("hunter.base_url", "https://api.hunter.io/v2")
	v.SetDefault("hunter.rate_limit", 10.0)
	v.SetDefault("sheets.input_worksheet", "Partners")
	v.SetDefault("sheets.output_worksheet", "Output")
	v.SetDefault("titles.file", "job_titles.txt")
	v.SetDefault("search.max_results", 3)
	v.SetDefault("search.per_page", 10)
	v.SetDefault("search.max_pages", 2)
	v.SetDefault("search.domain_limit", 3)
	v.SetDefault("store.path", "lead-hunter.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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
