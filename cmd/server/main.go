package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"tarneeb-server/internal/config"
	"tarneeb-server/internal/jwt"
	"tarneeb-server/internal/mux"
	"tarneeb-server/pkg/db"
	"tarneeb-server/pkg/history"
	"tarneeb-server/pkg/playable/tarneeb"
	"tarneeb-server/pkg/room"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	// fail fast
	jwt.LoadKeys()

	cfg := config.Instance()
	pitBoss := room.NewPitBoss(setupRecorder(cfg), tarneeb.Options{
		SettleDelay: cfg.SettleDelay(),
		RoundPause:  cfg.RoundPause(),
	})
	pitBoss.StartShift()
	defer pitBoss.EndShift()

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, pitBoss))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

// setupRecorder records rounds in postgres when a DSN is configured
func setupRecorder(cfg config.Config) history.Recorder {
	if cfg.PGDSN == "" {
		logrus.Info("no pgDsn configured, round history is not recorded")
		return history.NopRecorder{}
	}

	dbh, err := db.Instance()
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}

	// run the db migrations
	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	return history.NewPostgresRecorder(dbh)
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
