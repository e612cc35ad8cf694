package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mclardy/hexaword/internal/httpserver"
	"github.com/mclardy/hexaword/internal/levels"
)

func main() {
	_ = godotenv.Load()
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := levels.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load level pack")
	}
	log.Info().Int("levels", levels.Count()).Msg("level pack loaded")

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	srv := httpserver.New(levels.NewSQLStore(db), httpserver.Config{
		DefaultRadius: cfg.GridRadius,
		DailySalt:     cfg.DailySalt,
		ClientOrigin:  cfg.ClientOrigin,
	})
	log.Info().Str("port", cfg.Port).Msg("starting hexaword server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
