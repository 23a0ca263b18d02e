// Package dataset loads the launch table once at startup from a local file,
// an HTTP URL or a Postgres table.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"launchdash/internal/domain"
	"launchdash/internal/domain/entity"
	"launchdash/pkg/contextx"
	"launchdash/pkg/errcodes"
	"launchdash/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Source yields every launch record in source order.
type Source interface {
	Name() string
	Launches(ctx context.Context) ([]entity.Launch, error)
}

// Load reads the whole source into an immutable table.
func Load(ctx context.Context, src Source) (entity.Table, error) {
	launches, err := src.Launches(ctx)
	if err != nil {
		return entity.Table{}, fmt.Errorf("%s: %w", src.Name(), err)
	}

	table := entity.NewTable(launches)
	low, high := table.PayloadBounds()

	logger(ctx).Info(
		"launch table loaded",
		slog.String(logx.FieldDatasetSource, src.Name()),
		slog.Int(logx.FieldRecords, table.Len()),
		slog.Int(logx.FieldSites, len(table.Sites())),
		slog.Float64("payload-min-kg", low),
		slog.Float64("payload-max-kg", high),
	)

	return table, nil
}

// FileSource reads a launch file from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return "file " + s.Path
}

func (s FileSource) Launches(context.Context) ([]entity.Launch, error) {
	fh, err := os.Open(s.Path)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnavailable, "os.Open")
	}
	defer fh.Close()

	return ReadLaunches(fh)
}

// HTTPSource downloads a launch file. Client defaults to http.DefaultClient.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Name() string {
	return "url " + s.URL
}

func (s HTTPSource) Launches(ctx context.Context) ([]entity.Launch, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnavailable, "client.Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewError(errcodes.DatasetUnavailable, fmt.Sprintf("unexpected status %s", resp.Status))
	}

	return ReadLaunches(resp.Body)
}
