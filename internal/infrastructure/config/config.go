package config

import (
	"strings"

	"levantamiento_service/internal/domain/auth"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
)

// Config holds the full application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	DynamoDB  DynamoDBConfig  `yaml:"dynamodb" mapstructure:"dynamodb"`
	Backend   BackendConfig   `yaml:"backend" mapstructure:"backend"`
	Principal PrincipalConfig `yaml:"principal" mapstructure:"principal"`
}

// ServerConfig configures the REST API.
type ServerConfig struct {
	Port    int    `yaml:"port" mapstructure:"port"`
	GinMode string `yaml:"gin_mode" mapstructure:"gin_mode"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// StoreConfig selects the storage adapter behind the API.
type StoreConfig struct {
	Driver     string `yaml:"driver" mapstructure:"driver"`
	SQLitePath string `yaml:"sqlite_path" mapstructure:"sqlite_path"`
}

// DynamoDBConfig keeps the AWS variable names used by local DynamoDB setups.
type DynamoDBConfig struct {
	Region            string `yaml:"region" mapstructure:"region"`
	Endpoint          string `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKeyID       string `yaml:"access_key_id" mapstructure:"access_key_id"`
	SecretAccessKey   string `yaml:"secret_access_key" mapstructure:"secret_access_key"`
	SurveysTable      string `yaml:"surveys_table" mapstructure:"surveys_table"`
	ReviewEventsTable string `yaml:"review_events_table" mapstructure:"review_events_table"`
}

// BackendConfig points the CLI at a remote survey backend.
type BackendConfig struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	Token       string `yaml:"token" mapstructure:"token"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// PrincipalConfig is the identity the CLI acts as.
type PrincipalConfig struct {
	UserID string `yaml:"user_id" mapstructure:"user_id"`
	Role   string `yaml:"role" mapstructure:"role"`
}

// ToPrincipal converts the configured identity. An unknown role yields a principal
// that is allowed nothing.
func (p PrincipalConfig) ToPrincipal() auth.Principal {
	role, _ := auth.ParseRole(p.Role)
	return auth.Principal{UserID: strings.TrimSpace(p.UserID), Role: role}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SURVEYS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names shared with the AWS tooling.
	bindings := map[string][]string{
		"dynamodb.region":              {"SURVEYS_DYNAMODB_REGION", "AWS_REGION"},
		"dynamodb.endpoint":            {"SURVEYS_DYNAMODB_ENDPOINT", "DYNAMODB_ENDPOINT"},
		"dynamodb.access_key_id":       {"SURVEYS_DYNAMODB_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID"},
		"dynamodb.secret_access_key":   {"SURVEYS_DYNAMODB_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY"},
		"dynamodb.surveys_table":       {"SURVEYS_DYNAMODB_SURVEYS_TABLE", "SURVEYS_TABLE"},
		"dynamodb.review_events_table": {"SURVEYS_DYNAMODB_REVIEW_EVENTS_TABLE", "REVIEW_EVENTS_TABLE"},
		"server.port":                  {"SURVEYS_SERVER_PORT", "PORT"},
		"server.gin_mode":              {"SURVEYS_SERVER_GIN_MODE", "GIN_MODE"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, eris.Wrapf(err, "config: bind env %s", key)
		}
	}

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("store.driver", StoreDynamoDB)
	v.SetDefault("store.sqlite_path", "levantamiento.db")
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.surveys_table", "surveys")
	v.SetDefault("dynamodb.review_events_table", "review_events")
	v.SetDefault("backend.base_url", "http://localhost:8080/v1")
	v.SetDefault("backend.token", "")
	v.SetDefault("backend.timeout_secs", 30)
	v.SetDefault("principal.user_id", "")
	v.SetDefault("principal.role", "reviewer")

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

	switch cfg.Store.Driver {
	case StoreDynamoDB, StoreSQLite:
	default:
		return nil, eris.Errorf("config: unknown store driver %q", cfg.Store.Driver)
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
