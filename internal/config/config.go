package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	SweetSpot           SweetSpot           `mapstructure:",squash"`
	PublicationReminder PublicationReminder `mapstructure:",squash"`
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

// SweetSpot concentra as constantes de negócio da projeção de receita.
// A origem do produto tratava esses valores como literais espalhados;
// aqui todos são configuráveis por variável de ambiente.
type SweetSpot struct {
	KeyNicheLabel        string  `mapstructure:"sweetspot_key_niche"`
	KeyNicheRate         float64 `mapstructure:"sweetspot_key_niche_rate"`
	DefaultNicheRate     float64 `mapstructure:"sweetspot_default_niche_rate"`
	ConversionRate       float64 `mapstructure:"sweetspot_conversion_rate"`
	SalesRate            float64 `mapstructure:"sweetspot_sales_rate"`
	DefaultTargetRevenue int64   `mapstructure:"sweetspot_default_target_revenue"`
}

type PublicationReminder struct {
	CronSchedule  string `mapstructure:"publication_reminder_cron"`
	LookaheadDays int    `mapstructure:"publication_reminder_lookahead_days"`
	Enabled       bool   `mapstructure:"publication_reminder_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/kontenflow")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Constantes de negócio do sweet spot. SWEETSPOT_SALES_RATE usa o valor
	// exibido na interface do produto original (4%); a automação de testes
	// daquele produto usava 10%, então o valor é configurável.
	viper.SetDefault("SWEETSPOT_KEY_NICHE", "KEY NICHE")
	viper.SetDefault("SWEETSPOT_KEY_NICHE_RATE", 0.10)
	viper.SetDefault("SWEETSPOT_DEFAULT_NICHE_RATE", 0.05)
	viper.SetDefault("SWEETSPOT_CONVERSION_RATE", 0.01)
	viper.SetDefault("SWEETSPOT_SALES_RATE", 0.04)
	viper.SetDefault("SWEETSPOT_DEFAULT_TARGET_REVENUE", 10000)

	viper.SetDefault("PUBLICATION_REMINDER_CRON", "0 8 * * *") // Todos os dias às 8h da manhã
	viper.SetDefault("PUBLICATION_REMINDER_LOOKAHEAD_DAYS", 1)
	viper.SetDefault("PUBLICATION_REMINDER_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

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
