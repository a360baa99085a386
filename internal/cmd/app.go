package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/rustcheat/internal/browser"
	"github.com/harrison/rustcheat/internal/config"
	"github.com/harrison/rustcheat/internal/highlight"
	"github.com/harrison/rustcheat/internal/logger"
	"github.com/harrison/rustcheat/internal/sheets"
)

// app is the wiring shared by every command: the sheet index is built once
// from bundled and user sheets and handed to the browser.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	index    *sheets.Index
	renderer highlight.Renderer
	browser  *browser.Browser
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to config file (default: $RUSTCHEAT_HOME/config.yaml)")
	cmd.PersistentFlags().String("color", "", "Color output: auto, always or never")
	cmd.PersistentFlags().String("style", "", "Syntax highlighting style (e.g. solarized-dark, monokai)")
	cmd.PersistentFlags().String("sheets-dir", "", "Directory of extra sheets listed after the bundled ones")
	cmd.PersistentFlags().String("log-level", "", "Diagnostic log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().Bool("recursive", false, "Also load sheets from subdirectories of --sheets-dir")
	cmd.PersistentFlags().Bool("no-cache", false, "Re-parse sheets on every lookup")
}

// loadConfig reads the config file and applies flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigFromHome()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var logLevel, color, style, sheetsDir *string
	var recursive, cache *bool
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		logLevel = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		color = &v
	}
	if flags.Changed("style") {
		v, _ := flags.GetString("style")
		style = &v
	}
	if flags.Changed("sheets-dir") {
		v, _ := flags.GetString("sheets-dir")
		sheetsDir = &v
	}
	if flags.Changed("recursive") {
		v, _ := flags.GetBool("recursive")
		recursive = &v
	}
	if flags.Changed("no-cache") {
		noCache, _ := flags.GetBool("no-cache")
		v := !noCache
		cache = &v
	}
	cfg.MergeWithFlags(logLevel, color, style, sheetsDir, recursive, cache)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	enabled, err := highlight.ConfigureColor(cfg.Color, asFile(cmd.OutOrStdout()))
	if err != nil {
		return nil, err
	}
	renderer, err := highlight.NewRenderer(enabled, cfg.Style)
	if err != nil {
		return nil, err
	}

	docs := sheets.Bundled()
	if cfg.SheetsDir != "" {
		extra, err := sheets.LoadDir(cfg.SheetsDir, cfg.SheetsRecursive)
		if err != nil {
			return nil, err
		}
		log.LogDebug(fmt.Sprintf("loaded %d sheets from %s", len(extra), cfg.SheetsDir))
		docs = append(docs, extra...)
	}

	opts := []sheets.IndexOption{sheets.WithLogger(log)}
	if cfg.Cache {
		opts = append(opts, sheets.WithCache())
	}
	index := sheets.NewIndex(docs, opts...)

	return &app{
		cfg:      cfg,
		log:      log,
		index:    index,
		renderer: renderer,
		browser:  browser.New(index, renderer, cmd.OutOrStdout(), log),
	}, nil
}

// asFile returns w as a file when it is one, for terminal detection
func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
