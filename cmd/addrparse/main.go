package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/address-parsing/internal/config"
	"github.com/address-parsing/internal/debug"
	"github.com/address-parsing/internal/engine"
	"github.com/address-parsing/internal/logger"
)

// globalFlags override the environment configuration
type globalFlags struct {
	dict       string
	dictFormat string
	dictTable  string
	priority   []string
	maxLevel   int
	cacheSize  int
	debug      bool
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "addrparse",
		Short: "Chinese postal address region parser",
		Long: `Recognises the province, city and district of free-form Chinese postal
addresses against an administrative region dictionary, and finds regions
by their pinyin initials.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.dict, "dict", "", "dictionary file (DICT_PATH)")
	pf.StringVar(&flags.dictFormat, "dict-format", "", "dictionary format: sample, json, csv or postgres (DICT_FORMAT)")
	pf.StringVar(&flags.dictTable, "dict-table", "", "region table for the postgres format (DICT_TABLE)")
	pf.StringSliceVar(&flags.priority, "priority", nil, "level-1 region names to scan first (ROOT_PRIORITY)")
	pf.IntVar(&flags.maxLevel, "max-level", 0, "required dictionary depth (DICT_MAX_LEVEL)")
	pf.IntVar(&flags.cacheSize, "cache-size", 0, "parse cache entries, 0 keeps ENGINE_CACHE_SIZE")
	pf.BoolVar(&flags.debug, "debug", false, "log parse internals")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (LOG_LEVEL)")

	rootCmd.AddCommand(createParseCmd(flags))
	rootCmd.AddCommand(createFormatCmd(flags))
	rootCmd.AddCommand(createSearchCmd(flags))
	rootCmd.AddCommand(createBulkCmd(flags))
	rootCmd.AddCommand(createRegionsCmd(flags))
	rootCmd.AddCommand(createServeCmd(flags))

	return rootCmd
}

// loadConfig reads .env and the environment, then applies the flags
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg := config.FromEnv()

	pf := cmd.Flags()
	if pf.Changed("dict") {
		cfg.DictPath = flags.dict
		if !pf.Changed("dict-format") && cfg.DictFormat == config.FormatSample {
			cfg.DictFormat = formatFromPath(flags.dict)
		}
	}
	if pf.Changed("dict-format") {
		cfg.DictFormat = flags.dictFormat
	}
	if pf.Changed("dict-table") {
		cfg.DictTable = flags.dictTable
	}
	if pf.Changed("priority") {
		cfg.RootPriority = flags.priority
	}
	if pf.Changed("max-level") {
		cfg.MaxLevel = flags.maxLevel
	}
	if pf.Changed("cache-size") {
		cfg.CacheSize = flags.cacheSize
	}
	if flags.debug {
		cfg.Debug = true
	}

	level := config.GetEnv("LOG_LEVEL", "info")
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if cfg.Debug {
		level = "debug"
	}
	logger.SetupWriter(cmd.ErrOrStderr(), level, config.GetEnv("LOG_FORMAT", "text"))

	return cfg, cfg.Validate()
}

// loadEngine builds the engine for a command
func loadEngine(cmd *cobra.Command, flags *globalFlags) (*engine.Engine, *config.Config, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, nil, err
	}
	done := debug.DebugTiming(cfg.Debug, "loading dictionary")
	eng, err := engine.Open(cmd.Context(), cfg)
	done()
	if err != nil {
		return nil, nil, err
	}
	return eng, cfg, nil
}

func formatFromPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return config.FormatCSV
	}
	return config.FormatJSON
}
