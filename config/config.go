package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	Media MediaConfig
	Mail  MailConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// MediaConfig controls how stored image paths are turned into public URLs.
type MediaConfig struct {
	BaseURL string
}

type MailConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	OwnerEmail string
	UseTLS     bool
	SSLVerify  bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine when everything comes from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("MAIL_HOST", "smtp.gmail.com")
	viper.SetDefault("MAIL_PORT", 587)
	viper.SetDefault("MAIL_USE_TLS", true)
	viper.SetDefault("MAIL_SSL_VERIFY", false)

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Media: MediaConfig{
			BaseURL: viper.GetString("MEDIA_BASE_URL"),
		},
		Mail: MailConfig{
			Host:       viper.GetString("MAIL_HOST"),
			Port:       viper.GetInt("MAIL_PORT"),
			Username:   viper.GetString("MAIL_USERNAME"),
			Password:   viper.GetString("MAIL_PASSWORD"),
			From:       viper.GetString("MAIL_FROM"),
			OwnerEmail: viper.GetString("MAIL_OWNER_EMAIL"),
			UseTLS:     viper.GetBool("MAIL_USE_TLS"),
			SSLVerify:  viper.GetBool("MAIL_SSL_VERIFY"),
		},
	}

	if config.Mail.From == "" {
		config.Mail.From = config.Mail.Username
	}

	return config, nil
}
