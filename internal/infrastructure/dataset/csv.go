package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"launchdash/internal/domain"
	"launchdash/internal/domain/entity"
	"launchdash/internal/domain/value"
	"launchdash/pkg/errcodes"
)

// Column headers of the launch file. The file also carries an unnamed index
// column and may carry others; those are ignored.
const (
	ColumnFlightNumber           = "Flight Number"
	ColumnLaunchSite             = "Launch Site"
	ColumnClass                  = "class"
	ColumnPayloadMass            = "Payload Mass (kg)"
	ColumnBoosterVersion         = "Booster Version"
	ColumnBoosterVersionCategory = "Booster Version Category"
)

var requiredColumns = []string{ //nolint:gochecknoglobals
	ColumnLaunchSite,
	ColumnClass,
	ColumnPayloadMass,
	ColumnBoosterVersionCategory,
}

// row maps header name to cell value.
type row map[string]string

type rowReader struct {
	csvReader *csv.Reader
	headers   []string
}

func newRowReader(r io.Reader) (*rowReader, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	for i := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(headers[i], "\ufeff"))
	}

	for _, column := range requiredColumns {
		if !containsColumn(headers, column) {
			return nil, fmt.Errorf("missing column %q", column)
		}
	}

	// Row length is checked against the header in read.
	csvReader.FieldsPerRecord = -1

	return &rowReader{csvReader: csvReader, headers: headers}, nil
}

func (r *rowReader) read() (row, error) {
	vals, err := r.csvReader.Read()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if len(vals) != len(r.headers) {
		return nil, fmt.Errorf("header/val mismatch (%d/%d)", len(r.headers), len(vals))
	}

	m := make(row, len(vals))
	for i := range vals {
		m[r.headers[i]] = strings.TrimSpace(vals[i])
	}

	return m, nil
}

func containsColumn(headers []string, column string) bool {
	for _, h := range headers {
		if h == column {
			return true
		}
	}

	return false
}

// ReadLaunches parses a launch file with a header row. Any malformed row
// fails the whole read; a file with no data rows is an error too.
func ReadLaunches(r io.Reader) ([]entity.Launch, error) {
	rdr, err := newRowReader(r)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidDataset, "launch file")
	}

	var launches []entity.Launch

	// Line 1 is the header.
	for line := 2; ; line++ {
		rec, err := rdr.read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, domain.WrapError(err, errcodes.InvalidDataset, fmt.Sprintf("line %d", line))
		}

		l, err := rec.launch()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InvalidDataset, fmt.Sprintf("line %d", line))
		}

		launches = append(launches, l)
	}

	if len(launches) == 0 {
		return nil, domain.NewError(errcodes.InvalidDataset, "launch file has no rows")
	}

	return launches, nil
}

func (r row) launch() (entity.Launch, error) {
	site := r[ColumnLaunchSite]
	if site == "" {
		return entity.Launch{}, fmt.Errorf("empty %q", ColumnLaunchSite)
	}

	payload, err := strconv.ParseFloat(r[ColumnPayloadMass], 64)
	if err != nil {
		return entity.Launch{}, fmt.Errorf("%q: %w", ColumnPayloadMass, err)
	}

	if payload < 0 || math.IsNaN(payload) || math.IsInf(payload, 0) {
		return entity.Launch{}, fmt.Errorf("%q: invalid mass %v", ColumnPayloadMass, payload)
	}

	class, err := value.ParseOutcomeClass(r[ColumnClass])
	if err != nil {
		return entity.Launch{}, fmt.Errorf("%q: %w", ColumnClass, err)
	}

	var flightNumber int

	if raw := r[ColumnFlightNumber]; raw != "" {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return entity.Launch{}, fmt.Errorf("%q: %w", ColumnFlightNumber, err)
		}

		flightNumber = int(n)
	}

	return entity.Launch{
		FlightNumber:           flightNumber,
		Site:                   value.Site(site),
		PayloadMassKg:          payload,
		BoosterVersion:         r[ColumnBoosterVersion],
		BoosterVersionCategory: r[ColumnBoosterVersionCategory],
		Class:                  class,
	}, nil
}
