package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Petpooja   Petpooja   `mapstructure:",squash"`
	Fetch      Fetch      `mapstructure:",squash"`
	SalesRange SalesRange `mapstructure:",squash"`
	SalesSync  SalesSync  `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	Driver   string `mapstructure:"database_driver"`
	Name     string `mapstructure:"database_name"`
	Host     string `mapstructure:"database_host"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

// Petpooja guarda as credenciais da API de vendas
type Petpooja struct {
	URL         string `mapstructure:"petpooja_url"`
	AppKey      string `mapstructure:"app_key"`
	AppSecret   string `mapstructure:"app_secret"`
	AccessToken string `mapstructure:"access_token"`
	RestID      string `mapstructure:"rest_id"`
}

type Fetch struct {
	MaxAttempts int           `mapstructure:"fetch_max_attempts"`
	RetryDelay  time.Duration `mapstructure:"fetch_retry_delay"`
	Timeout     time.Duration `mapstructure:"fetch_timeout"`
}

// SalesRange é o período informado explicitamente para a execução avulsa.
// Não existe valor padrão: o chamador precisa informar as duas pontas.
type SalesRange struct {
	FromDate string `mapstructure:"sales_from_date"`
	ToDate   string `mapstructure:"sales_to_date"`
}

type SalesSync struct {
	CronSchedule string `mapstructure:"sales_sync_cron"`
	LookbackDays int    `mapstructure:"sales_sync_lookback_days"`
	Enabled      bool   `mapstructure:"sales_sync_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_NAME", "sales_data.db")
	viper.SetDefault("DATABASE_HOST", "localhost:5432")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("PETPOOJA_URL", "http://api.petpooja.com/V1/orders/get_sales_data")
	viper.SetDefault("APP_KEY", "default_app_key")
	viper.SetDefault("APP_SECRET", "default_app_secret")
	viper.SetDefault("ACCESS_TOKEN", "default_access_token")
	viper.SetDefault("REST_ID", "default_rest_id")

	viper.SetDefault("FETCH_MAX_ATTEMPTS", 3)
	viper.SetDefault("FETCH_RETRY_DELAY", "2s")
	viper.SetDefault("FETCH_TIMEOUT", "0s") // sem deadline por requisição

	// Sem valor padrão, apenas registra as chaves para o AutomaticEnv
	viper.SetDefault("SALES_FROM_DATE", "")
	viper.SetDefault("SALES_TO_DATE", "")

	viper.SetDefault("SALES_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("SALES_SYNC_LOOKBACK_DAYS", 1)  // Dia anterior completo
	viper.SetDefault("SALES_SYNC_ENABLED", false)    // Habilitar sincronização agendada

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica os valores que não podem ser corrigidos com defaults
func (c *Config) Validate() error {
	if c.Fetch.MaxAttempts < 1 {
		return fmt.Errorf("config: FETCH_MAX_ATTEMPTS deve ser positivo, recebido %d", c.Fetch.MaxAttempts)
	}

	if c.Fetch.RetryDelay < 0 {
		return fmt.Errorf("config: FETCH_RETRY_DELAY não pode ser negativo")
	}

	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("config: driver de banco não suportado: %s", c.Database.Driver)
	}

	return nil
}

// DSN monta a string de conexão para o destino informado.
// No SQLite o destino é o caminho do arquivo, no Postgres é o nome do banco.
func (d Database) DSN(destination string) string {
	if destination == "" {
		destination = d.Name
	}

	if d.Driver != DriverPostgres {
		return destination
	}

	dsn := url.URL{
		Scheme: DriverPostgres,
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host,
		Path:   destination,
	}

	if d.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{d.SSLMode}}.Encode()
	}

	return dsn.String()
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de: ", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
