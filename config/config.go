package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
}

type Server struct {
	Port string
}
type Database struct {
	URL  string
	Name string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MONGODB_URL", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "ztrack_db")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, using environment and defaults")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.URL = viper.GetString("MONGODB_URL")
	config.Database.Name = viper.GetString("DB_NAME")

	log.Info().Str("database", config.Database.Name).Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}
