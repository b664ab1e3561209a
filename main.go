package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"FreehandBoard/internal/config"
	"FreehandBoard/internal/logging"
	"FreehandBoard/internal/ui"
)

type cliOpts struct {
	configPath string
	logLevel   string
}

func parseCLIOpts() cliOpts {
	var opt cliOpts
	flag.StringVar(&opt.configPath, "config", config.Path(), "Path to the TOML config file")
	flag.StringVar(&opt.logLevel, "log", "", "Override the log level (debug, info, warn, error)")
	flag.Parse()
	return opt
}

func main() {
	opt := parseCLIOpts()

	// Config errors are reported through the default-level logger, before
	// the configured level is known.
	logging.SetLogger(logging.New(os.Stderr, slog.LevelInfo))

	conf, err := config.LoadOrInit(opt.configPath)
	if err != nil {
		logging.Logger().Error("[CONFIG] using defaults", "err", err)
	}

	levelName := conf.Log.Level
	if opt.logLevel != "" {
		levelName = opt.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	logging.SetLogger(logging.New(os.Stderr, level))

	logging.Logger().Info("[UI] starting board",
		"config", opt.configPath,
		"thickness", conf.Brush.Thickness,
		"undo", conf.Undo.Key)
	ui.RunApp(conf)
}
