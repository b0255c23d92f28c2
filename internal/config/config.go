package config

import (
	"fmt"
	"strings"

	"github.com/address-parsing/internal/normalize"
)

// Dictionary source formats accepted by DICT_FORMAT.
const (
	FormatSample   = "sample"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatPostgres = "postgres"
)

// Config is the runtime configuration shared by the CLI and the server.
type Config struct {
	// DictPath is the dictionary file for the json and csv formats.
	DictPath string
	// DictFormat is one of sample, json, csv or postgres.
	DictFormat string
	// DictTable is the region table read by the postgres format.
	DictTable string
	// MaxLevel, when positive, is the deepest level the dictionary must have.
	MaxLevel int
	// RootPriority lists level-1 region names to scan first, in order.
	RootPriority []string
	// MaxInputLength bounds the runes of an address considered by the parser.
	MaxInputLength int
	// CacheSize is the engine's parse cache capacity; 0 disables caching.
	CacheSize int
	// BulkWorkers is the default worker count for bulk processing.
	BulkWorkers int
	// Debug enables the debug helpers.
	Debug bool
}

// FromEnv reads the configuration from environment variables.
func FromEnv() *Config {
	return &Config{
		DictPath:       GetEnv("DICT_PATH", ""),
		DictFormat:     strings.ToLower(GetEnv("DICT_FORMAT", FormatSample)),
		DictTable:      GetEnv("DICT_TABLE", "china_regions"),
		MaxLevel:       GetEnvInt("DICT_MAX_LEVEL", 0),
		RootPriority:   GetEnvList("ROOT_PRIORITY"),
		MaxInputLength: GetEnvInt("PARSER_MAX_INPUT", normalize.DefaultMaxInputLength),
		CacheSize:      GetEnvInt("ENGINE_CACHE_SIZE", 4096),
		BulkWorkers:    GetEnvInt("BULK_WORKERS", 4),
		Debug:          GetEnvBool("DEBUG", false),
	}
}

// Validate checks the combination of settings.
func (c *Config) Validate() error {
	switch c.DictFormat {
	case FormatSample, FormatPostgres:
	case FormatJSON, FormatCSV:
		if c.DictPath == "" {
			return fmt.Errorf("DICT_PATH is required for dictionary format %q", c.DictFormat)
		}
	default:
		return fmt.Errorf("unknown dictionary format %q", c.DictFormat)
	}
	if c.MaxLevel < 0 {
		return fmt.Errorf("DICT_MAX_LEVEL must not be negative, got %d", c.MaxLevel)
	}
	if c.BulkWorkers < 1 {
		return fmt.Errorf("BULK_WORKERS must be at least 1, got %d", c.BulkWorkers)
	}
	return nil
}
