package main

import (
	"log"
	"net/http"

	"cloud-architect/api/internal/config"
	"cloud-architect/api/internal/gen"
	"cloud-architect/api/internal/gen/demo"
	"cloud-architect/api/internal/gen/gemini"
	"cloud-architect/api/internal/handle"
)

func main() {
	cfg := config.Load()

	var gw gen.Gateway
	if cfg.DemoMode {
		gw = demo.New()
	} else {
		gw = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	h := handle.New(gw, cfg.GeminiAPIKey != "", cfg.DemoMode)

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.Home)
	mux.HandleFunc("/healthz", h.Healthz)
	mux.HandleFunc("/generate", h.Generate)

	addr := ":" + cfg.Port
	if cfg.DemoMode {
		log.Printf("cloud-architect listening on %s (demo mode)", addr)
	} else {
		log.Printf("cloud-architect listening on %s (model=%s)", addr, cfg.GeminiModel)
	}
	log.Fatal(http.ListenAndServe(addr, mux))
}
