package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"pokermaster-server/internal/config"
	"pokermaster-server/internal/mux"
	"pokermaster-server/pkg/db"
	"pokermaster-server/pkg/spectator"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address, overrides the configuration")
var bots = flag.Int("bots", 0, "seat this many house players at a table that spectators can watch")
var handInterval = flag.Duration("hand-interval", time.Second*5, "how long the house table waits between hands")

func main() {
	flag.Parse()
	setupLogger()

	// run the db migrations
	if err := db.Migrate(); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	feed := spectator.NewFeed(logrus.StandardLogger())
	if *bots > 0 {
		go runHouseTable(context.Background(), feed, *bots, *handInterval)
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet},
	})

	listen := config.Instance().Addr
	if *addr != "" {
		listen = *addr
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, feed))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
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
