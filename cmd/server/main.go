// Command server runs the HTTP render service: POST an appraisal JSON
// document to /api/v1/appraisals/render and get the PDF back.
package main

import (
	"log"
	"net/http"

	"appraisalgen/internal/app/server"
	"appraisalgen/internal/platform/config"
)

func main() {
	cfg := config.Load()

	app, err := server.New(cfg)
	if err != nil {
		log.Fatalf("server setup failed: %v", err)
	}

	log.Printf("appraisal render service listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
