package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Email    EmailConfig
	Notify   NotifyConfig
	Assets   AssetsConfig
	Sweeper  SweeperConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	MigrationsPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type NotifyConfig struct {
	Enabled bool
	// Admin recipients notified on create/approve/cancel,
	// on top of the reservation owner.
	AdminEmails []string
}

type AssetsConfig struct {
	// Public base URL prepended to storage-relative image paths.
	BaseURL string
}

type SweeperConfig struct {
	IntervalMinutes int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("NOTIFY_ENABLED", true)
	viper.SetDefault("ASSET_BASE_URL", "http://localhost:8080/")
	viper.SetDefault("SWEEPER_INTERVAL_MINUTES", 30)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Notify: NotifyConfig{
			Enabled:     viper.GetBool("NOTIFY_ENABLED"),
			AdminEmails: viper.GetStringSlice("NOTIFY_ADMIN_EMAILS"),
		},
		Assets: AssetsConfig{
			BaseURL: viper.GetString("ASSET_BASE_URL"),
		},
		Sweeper: SweeperConfig{
			IntervalMinutes: viper.GetInt("SWEEPER_INTERVAL_MINUTES"),
		},
	}

	return config, nil
}
