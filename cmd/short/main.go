// Command short appends short-answer questions scraped from saved chapter
// pages to csv/<class>/short/<book>.csv.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/qextract/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	os.Exit(app.Main(context.Background(), app.KindShort, os.Args[1:], os.Stderr))
}
