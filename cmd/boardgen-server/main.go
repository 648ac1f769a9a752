// The boardgen-server command serves freshly generated boards over HTTP.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/hbiede/Codenames-Board-Generator/config"
	"github.com/hbiede/Codenames-Board-Generator/cryptorand"
	"github.com/hbiede/Codenames-Board-Generator/web"
	"github.com/hbiede/Codenames-Board-Generator/wordlist"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml config file. Unset means environment only.")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(conf)

	words := wordlist.Default()
	if conf.WordsFile != "" {
		if words, err = wordlist.FromFile(conf.WordsFile); err != nil {
			logger.Error("failed to load word list", "error", err)
			os.Exit(1)
		}
	}

	srv := web.New(words, cryptorand.New(), logger)

	addr := ":" + conf.HTTPPort
	logger.Info("server is running", "addr", addr)
	if err := http.ListenAndServe(addr, srv); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func initLogger(conf *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if conf.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
