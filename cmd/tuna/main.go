//nolint:forbidigo
package main

import (
	"context"
	"errors"
	"expvar"
	"flag"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/oklog/run"
	"github.com/peterbourgon/ff"
	"github.com/sirupsen/logrus"

	"github.com/tunaapi/tuna"
	"github.com/tunaapi/tuna/db"
	"github.com/tunaapi/tuna/server/ctrlapi"
	"github.com/tunaapi/tuna/server/ctrlbase"
)

func main() {
	set := flag.NewFlagSet(tuna.Name, flag.ExitOnError)
	confListenAddr := set.String("listen-addr", "0.0.0.0:4848", "listen address (optional)")

	confDBDialect := set.String("db-dialect", db.DialectSQLite, "database dialect, one of sqlite3, mysql, postgres (optional)")
	confDBPath := set.String("db-path", "tuna.db", "path to sqlite database, or dsn for mysql and postgres (optional)")

	confProxyPrefix := set.String("proxy-prefix", "", "url path prefix to use if behind proxy. eg '/tuna' (optional)")
	confHTTPLog := set.Bool("http-log", true, "http request logging (optional)")

	confLogLevel := set.String("log-level", "info", "log level, one of debug, info, warn, error (optional)")
	confLogFormat := set.String("log-format", "text", "log format, one of text, json (optional)")

	confExpvar := set.Bool("expvar", false, "enable the /debug/vars endpoint (optional)")

	confShowVersion := set.Bool("version", false, "show tuna version")
	_ = set.String("config-path", "", "path to config (optional)")

	if err := ff.Parse(set, os.Args[1:],
		ff.WithConfigFileFlag("config-path"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix(tuna.NameUpper),
	); err != nil {
		logrus.Fatalf("error parsing args: %v", err)
	}

	if *confShowVersion {
		fmt.Printf("v%s\n", tuna.Version)
		os.Exit(0)
	}

	if err := setupLogging(*confLogLevel, *confLogFormat); err != nil {
		logrus.Fatalf("error setting up logging: %v", err)
	}

	proxyPrefixExpr := regexp.MustCompile(`^\/*(.*?)\/*$`)
	*confProxyPrefix = proxyPrefixExpr.ReplaceAllString(*confProxyPrefix, `/$1`)

	logrus.Infof("starting %s v%s", tuna.Name, tuna.Version)
	logrus.Info("provided config")
	set.VisitAll(func(f *flag.Flag) {
		value := strings.ReplaceAll(f.Value.String(), "\n", "")
		if f.Name == "db-path" && *confDBDialect != db.DialectSQLite {
			value = "<redacted>"
		}
		logrus.Infof("    %-25s %s", f.Name, value)
	})

	dbc, err := db.New(*confDBDialect, *confDBPath, db.DefaultOptions())
	if err != nil {
		logrus.Fatalf("error opening database: %v", err)
	}
	defer dbc.Close()

	if err := dbc.Migrate(); err != nil {
		logrus.Panicf("error migrating database: %v", err)
	}

	ctrlBase := ctrlbase.New(dbc, *confProxyPrefix)
	ctrlAPI := ctrlapi.New(ctrlBase)

	mux := mux.NewRouter()
	ctrlbase.AddRoutes(ctrlBase, mux, *confHTTPLog)

	if *confExpvar {
		mux.Handle("/debug/vars", expvar.Handler())
		expvar.Publish("stats", expvar.Func(func() any {
			stats, err := dbc.Stats()
			if err != nil {
				logrus.WithError(err).Error("counting stats")
			}
			return stats
		}))
	}

	ctrlapi.AddRoutes(ctrlAPI, mux)

	server := &http.Server{
		Addr:              *confListenAddr,
		Handler:           mux,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var g run.Group
	g.Add(func() error {
		logrus.Infof("starting job 'http' on %s", *confListenAddr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}, func(_ error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("shutting down http server")
		}
	})

	g.Add(run.SignalHandler(context.Background(), os.Interrupt, syscall.SIGTERM))

	err = g.Run()
	var sigErr run.SignalError
	if errors.As(err, &sigErr) {
		logrus.Infof("received %v, stopped", sigErr.Signal)
		return
	}
	if err != nil {
		logrus.Panicf("error in job: %v", err)
	}
}

func setupLogging(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	switch format {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}
