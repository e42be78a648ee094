package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	ShortenRest     ShortenRest     `mapstructure:",squash"`
	Properties      Properties      `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	CredentialAudit CredentialAudit `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	URL       string `mapstructure:"redis_url"`
	DB        *int   `mapstructure:"redis_db"` // nil mantém o banco da URL
	KeyPrefix string `mapstructure:"redis_key_prefix"`
}

type ShortenRest struct {
	URL          string        `mapstructure:"shorten_rest_url"`
	HelpURL      string        `mapstructure:"shorten_rest_help_url"`
	Timeout      time.Duration `mapstructure:"shorten_rest_timeout"`
	HourTimezone string        `mapstructure:"shorten_rest_hour_timezone"`
}

// Properties configura o armazenamento da chave de API de cada usuário
type Properties struct {
	Driver           string `mapstructure:"property_store_driver"`
	KeyName          string `mapstructure:"property_key_name"`
	EncryptionSecret string `mapstructure:"property_encryption_secret"`
}

type App struct {
	LogLevel      string `mapstructure:"log_level"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type CredentialAudit struct {
	CronSchedule string `mapstructure:"credential_audit_cron"`
	Enabled      bool   `mapstructure:"credential_audit_enabled"`
}

const (
	PropertyDriverMemory   = "memory"
	PropertyDriverPostgres = "postgres"
	PropertyDriverRedis    = "redis"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "https://lookerstudio.google.com,https://datastudio.google.com")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_MAX_SIZE_MB", 50)
	viper.SetDefault("LOG_MAX_BACKUPS", 3)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 28)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/connector?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	_ = viper.BindEnv("REDIS_DB") // sem padrão
	viper.SetDefault("REDIS_KEY_PREFIX", "connector")

	viper.SetDefault("SHORTEN_REST_URL", "https://api.shorten.rest")
	viper.SetDefault("SHORTEN_REST_HELP_URL", "https://docs.shorten.rest/#section/Authentication")
	viper.SetDefault("SHORTEN_REST_TIMEOUT", "10s")
	viper.SetDefault("SHORTEN_REST_HOUR_TIMEZONE", "") // vazio = fuso local do processo

	viper.SetDefault("PROPERTY_STORE_DRIVER", PropertyDriverMemory)
	viper.SetDefault("PROPERTY_KEY_NAME", "dscc.key")
	viper.SetDefault("PROPERTY_ENCRYPTION_SECRET", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "720h")

	viper.SetDefault("CREDENTIAL_AUDIT_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("CREDENTIAL_AUDIT_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	switch c.Properties.Driver {
	case PropertyDriverMemory, PropertyDriverPostgres, PropertyDriverRedis:
	default:
		return fmt.Errorf("config: driver de propriedades inválido: %q", c.Properties.Driver)
	}

	if c.Properties.KeyName == "" {
		return fmt.Errorf("config: PROPERTY_KEY_NAME não pode ser vazio")
	}

	if c.ShortenRest.Timeout <= 0 {
		return fmt.Errorf("config: SHORTEN_REST_TIMEOUT deve ser positivo")
	}

	if _, err := c.HourLocation(); err != nil {
		return fmt.Errorf("config: SHORTEN_REST_HOUR_TIMEZONE inválido: %w", err)
	}

	return nil
}

// HourLocation retorna o fuso usado para derivar a hora de cada clique.
// Sem configuração explícita, usa o fuso local do processo.
func (c *Config) HourLocation() (*time.Location, error) {
	if c.ShortenRest.HourTimezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.ShortenRest.HourTimezone)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
