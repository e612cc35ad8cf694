package main

import "github.com/ilyakaznacheev/cleanenv"

// Config holds all server settings, read from the environment
// (optionally primed from a .env file in main).
type Config struct {
	Port         string `env:"PORT" env-default:"5175"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info"`
	DBPath       string `env:"DB_PATH" env-default:"./data/hexaword.db"`
	GridRadius   int    `env:"GRID_RADIUS" env-default:"10"`
	DailySalt    string `env:"DAILY_SALT" env-default:"local_dev_salt"`
	ClientOrigin string `env:"CLIENT_ORIGIN" env-default:"http://localhost:5173"`
}

// loadConfig reads Config from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	return cfg, err
}
