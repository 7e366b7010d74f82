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
	Meta            Meta            `mapstructure:",squash"`
	OpenAI          OpenAI          `mapstructure:",squash"`
	AutomationRun   AutomationRun   `mapstructure:",squash"`
	OptimizationRun OptimizationRun `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"meta_url"`
	Version        string    `mapstructure:"meta_version"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

type OpenAI struct {
	URL            string `mapstructure:"openai_url"`
	APIKey         string `mapstructure:"openai_api_key"`
	Model          string `mapstructure:"openai_model"`
	TimeoutSeconds int    `mapstructure:"openai_timeout_seconds"`
}

type AutomationRun struct {
	CronSchedule       string `mapstructure:"automation_run_cron"`
	Enabled            bool   `mapstructure:"automation_run_enabled"`
	MaxConcurrentRules int    `mapstructure:"automation_run_max_concurrent_rules"`
	RunTimeoutSeconds  int    `mapstructure:"automation_run_timeout_seconds"`
	SyncTimeoutSeconds int    `mapstructure:"automation_platform_sync_timeout_seconds"`
}

type OptimizationRun struct {
	CronSchedule  string `mapstructure:"optimization_run_cron"`
	Enabled       bool   `mapstructure:"optimization_run_enabled"`
	LookbackDays  int    `mapstructure:"optimization_run_lookback_days"`
	StoreResults  bool   `mapstructure:"optimization_run_store_results"`
	RetentionDays int    `mapstructure:"optimization_run_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_automation")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("OPENAI_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para a execução periódica de automação
	viper.SetDefault("AUTOMATION_RUN_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("AUTOMATION_RUN_ENABLED", false)
	viper.SetDefault("AUTOMATION_RUN_MAX_CONCURRENT_RULES", 5)
	viper.SetDefault("AUTOMATION_RUN_TIMEOUT_SECONDS", 300)
	viper.SetDefault("AUTOMATION_PLATFORM_SYNC_TIMEOUT_SECONDS", 10)

	// Defaults para a varredura de otimização
	viper.SetDefault("OPTIMIZATION_RUN_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("OPTIMIZATION_RUN_ENABLED", false)
	viper.SetDefault("OPTIMIZATION_RUN_LOOKBACK_DAYS", 30)
	viper.SetDefault("OPTIMIZATION_RUN_STORE_RESULTS", true)
	viper.SetDefault("OPTIMIZATION_RUN_RETENTION_DAYS", 90)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
