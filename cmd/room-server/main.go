package main

import (
	"context"
	"net/http"
	"time"

	approoms "spy-room/internal/app/rooms"
	"spy-room/internal/config"
	"spy-room/internal/logging"
	"spy-room/internal/pool"
	"spy-room/internal/room"
	httptransport "spy-room/internal/transport/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	app, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(app.Log)
	cfg := app.Server
	presence := app.Presence

	var pools pool.Source = pool.Builtin()
	if cfg.PostgresDSN != "" {
		pg, err := pool.NewPostgresSource(cfg.PostgresDSN, cfg.KeywordSampleSize)
		if err != nil {
			log.Fatal().Err(err).Msg("question bank init failed")
		}
		if err := pg.Ping(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("question bank ping failed")
		}
		defer pg.Close()
		pools = pg
		log.Info().Msg("question bank: postgres")
	} else {
		log.Info().Msg("question bank: builtin topics")
	}

	store := room.NewStore(presence)
	room.NewSweeper(store, presence.StepInterval).Start(context.Background())

	svc := approoms.NewService(store, pools, cfg)
	r := httptransport.NewRouter(svc)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).
		Dur("step_interval", presence.StepInterval).
		Dur("max_time_to_live", presence.MaxTimeToLive).
		Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
