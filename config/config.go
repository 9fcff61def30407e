package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const insecureDefaultSecret = "change-this-secret-key"

type Config struct {
	Server      Server
	Database    Database
	Session     Session
	Admin       Admin
	Certificate Certificate
}

type Server struct {
	Port string
}

type Database struct {
	Path string
}

type Session struct {
	Secret string
}

type Admin struct {
	Username string
	Password string
}

type Certificate struct {
	OutputDir string
	LogoPath  string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "teilnahmen.db")
	viper.SetDefault("SESSION_SECRET", insecureDefaultSecret)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("CERTIFICATE_DIR", "zertifikate")
	viper.SetDefault("CERTIFICATE_LOGO", "static/logo2.png")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Path = viper.GetString("DATABASE_PATH")
	config.Session.Secret = viper.GetString("SESSION_SECRET")
	config.Admin.Username = viper.GetString("ADMIN_USERNAME")
	config.Admin.Password = viper.GetString("ADMIN_PASSWORD")
	config.Certificate.OutputDir = viper.GetString("CERTIFICATE_DIR")
	config.Certificate.LogoPath = viper.GetString("CERTIFICATE_LOGO")

	if config.Session.Secret == insecureDefaultSecret {
		log.Warn().Msg("SESSION_SECRET is not set, using the insecure default")
	}

	log.Info().Str("port", config.Server.Port).Str("database", config.Database.Path).Msg("Config loaded")
	return &config, nil
}
