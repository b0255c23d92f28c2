package dictionary

import (
	"context"
	"fmt"

	"github.com/address-parsing/internal/config"
	"github.com/address-parsing/internal/db"
	"github.com/address-parsing/internal/logger"
	"github.com/address-parsing/internal/region"
)

// SourceFor returns the file-backed or embedded source cfg names. The
// postgres format needs a live connection and is handled by Load.
func SourceFor(cfg *config.Config) (Source, error) {
	switch cfg.DictFormat {
	case config.FormatSample, "":
		return SampleSource{}, nil
	case config.FormatJSON:
		return JSONFile{Path: cfg.DictPath}, nil
	case config.FormatCSV:
		return CSVFile{Path: cfg.DictPath}, nil
	default:
		return nil, fmt.Errorf("dictionary format %q has no file source", cfg.DictFormat)
	}
}

// Load reads the records of the dictionary cfg describes. For the postgres
// format a connection is opened from the PG* environment and closed again
// once the table has been read.
func Load(ctx context.Context, cfg *config.Config) ([]region.Record, error) {
	var (
		records []region.Record
		err     error
	)

	if cfg.DictFormat == config.FormatPostgres {
		conn, cerr := db.NewConnection(ctx)
		if cerr != nil {
			return nil, cerr
		}
		defer conn.Close()
		records, err = PostgresSource{DB: conn.DB, Table: cfg.DictTable}.Load(ctx)
	} else {
		src, serr := SourceFor(cfg)
		if serr != nil {
			return nil, serr
		}
		records, err = src.Load(ctx)
	}
	if err != nil {
		return nil, err
	}

	logger.L().Info("dictionary loaded", "format", cfg.DictFormat, "records", len(records))
	return records, nil
}
