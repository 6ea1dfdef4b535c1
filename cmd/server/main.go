package main

import (
	"net/http"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/dkries/ghrelay/internal/api"
	"github.com/dkries/ghrelay/internal/config"
)

func main() {
	_ = godotenv.Load(".env")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[relay] %v", err)
	}
	handler := api.NewHandler(cfg)
	router := api.NewRouter(handler)

	log.Infof("[relay] listening on :%s, relaying to %s/%s/%s@%s", cfg.Port, cfg.Owner, cfg.Repo, cfg.FilePath, cfg.Branch)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
