package server

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"launchdash/internal/dashboard"
	"launchdash/pkg/contextx"
	"launchdash/pkg/errcodes"
	"launchdash/pkg/httpx/reply"
	"launchdash/pkg/logx"
)

//go:embed templates/*.html
var templates embed.FS

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type ChartSize struct {
	Width  int
	Height int
}

type PageServer struct {
	app  *dashboard.App
	size ChartSize
	page *template.Template
}

func NewPageServer(app *dashboard.App, size ChartSize) (PageServer, error) {
	page, err := template.New("index.html").Funcs(template.FuncMap{
		"chartURL": chartURL,
	}).ParseFS(templates, "templates/index.html")
	if err != nil {
		return PageServer{}, fmt.Errorf("template.ParseFS: %w", err)
	}

	return PageServer{
		app:  app,
		size: size,
		page: page,
	}, nil
}

type pageData struct {
	Layout dashboard.Layout
	Site   string
	Low    float64
	High   float64
	Query  url.Values
}

func (s PageServer) getPage(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	state, err := s.state(r)
	if err != nil {
		return err
	}

	payload, err := state.Range(dashboard.PayloadSliderID)
	if err != nil {
		return invalidInput(fmt.Errorf("state.Range: %w", err))
	}

	var buf bytes.Buffer

	if err = s.page.Execute(&buf, pageData{
		Layout: s.app.Layout(),
		Site:   state.Value(dashboard.SiteDropdownID),
		Low:    payload[0],
		High:   payload[1],
		Query:  state.Query(),
	}); err != nil {
		return fmt.Errorf("page.Execute: %w", err)
	}

	reply.Bytes(ctx, w, "text/html; charset=utf-8", buf.Bytes())

	return nil
}

func (s PageServer) getChart(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	format, err := dashboard.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("dashboard.ParseFormat: %w", err),
			failure.WithCode(errcodes.InvalidChartFormat),
			failure.WithDescription("chart format must be svg or png"),
		)
	}

	state, err := s.state(r)
	if err != nil {
		return err
	}

	output := chi.URLParam(r, "output")

	fig, err := s.app.Invoke(output, state)
	if err != nil {
		if errors.Is(err, dashboard.ErrUnknownOutput) {
			return failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("app.Invoke: %w", err),
				failure.WithCode(errcodes.InvalidChartOutput),
				failure.WithDescription(fmt.Sprintf("unknown chart %q", output)),
			)
		}

		return fmt.Errorf("app.Invoke: %w", err)
	}

	var buf bytes.Buffer

	if err = fig.Render(&buf, format, s.size.Width, s.size.Height); err != nil {
		return fmt.Errorf("fig.Render: %w", err)
	}

	logger(ctx).Debug(
		"chart rendered",
		slog.String(logx.FieldChartOutput, output),
		slog.String("format", string(format)),
		slog.Int("bytes", buf.Len()),
	)

	w.Header().Set("Cache-Control", "no-store")
	reply.Bytes(ctx, w, format.ContentType(), buf.Bytes())

	return nil
}

func (s PageServer) state(r *http.Request) (dashboard.State, error) {
	state, err := s.app.StateFromQuery(r.URL.Query())
	if err != nil {
		return dashboard.State{}, invalidInput(fmt.Errorf("app.StateFromQuery: %w", err))
	}

	return state, nil
}

func invalidInput(err error) error {
	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(errcodes.ValidationError),
		failure.WithDescription(err.Error()),
	)
}

func chartURL(output string, query url.Values) string {
	return "/charts/" + url.PathEscape(output) + ".svg?" + query.Encode()
}
