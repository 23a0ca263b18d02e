package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	DatasetSourceFile     = "file"
	DatasetSourceHTTP     = "http"
	DatasetSourcePostgres = "postgres"
)

type Dataset struct {
	Source      string        `env:"DATASET_SOURCE" envDefault:"file"`
	Path        string        `env:"DATASET_PATH" envDefault:"spacex_launch_dash.csv"`
	URL         string        `env:"DATASET_URL"`
	HTTPTimeout time.Duration `env:"DATASET_HTTP_TIMEOUT" envDefault:"30s"`
}

func (d Dataset) validate(pg Postgres) error {
	switch d.Source {
	case DatasetSourceFile:
		if d.Path == "" {
			return errors.New("DATASET_PATH is required for file source")
		}
	case DatasetSourceHTTP:
		if d.URL == "" {
			return errors.New("DATASET_URL is required for http source")
		}
	case DatasetSourcePostgres:
		if pg.DSN == "" {
			return errors.New("PG_DSN is required for postgres source")
		}
	default:
		return fmt.Errorf("DATASET_SOURCE %q: want file, http or postgres", d.Source)
	}

	return nil
}
