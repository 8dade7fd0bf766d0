package main

import (
	"log"
	"net/http"
	"time"

	"github.com/wavefinderapp/payments-api/api/bootstrap"
	"github.com/wavefinderapp/payments-api/api/config"
	"github.com/wavefinderapp/payments-api/api/router"
)

func main() {
	if err := bootstrap.Ensure(); err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.HTTPPort,
		Handler:           router.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("payments API listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
