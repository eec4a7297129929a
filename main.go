package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/finvue/backend/internal/cache"
	"github.com/finvue/backend/internal/config"
	"github.com/finvue/backend/internal/facade"
	"github.com/finvue/backend/internal/insight"
	"github.com/finvue/backend/internal/models"
	"github.com/finvue/backend/internal/router"
	"github.com/finvue/backend/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.FromEnv()

	// Create the directory the database lives in
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	insights := insight.New(cfg.InsightServiceURL, cfg.InsightTimeout)
	f := facade.New(cache.New(), insights, cfg)
	pool := worker.New(cfg.WorkerRetries, cfg.WorkerBackoff)

	r, err := router.New(cfg, f, pool)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
