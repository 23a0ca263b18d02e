package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

//nolint:gochecknoglobals
var (
	namedColors = map[string]drawing.Color{
		"red":   drawing.ColorFromHex("d62728"),
		"green": drawing.ColorFromHex("2ca02c"),
	}
	seriesPalette = []drawing.Color{
		drawing.ColorFromHex("636efa"),
		drawing.ColorFromHex("ef553b"),
		drawing.ColorFromHex("00cc96"),
		drawing.ColorFromHex("ab63fa"),
		drawing.ColorFromHex("ffa15a"),
		drawing.ColorFromHex("19d3f3"),
		drawing.ColorFromHex("ff6692"),
		drawing.ColorFromHex("b6e880"),
	}
)

// Render draws the figure. Figures with nothing to draw become a titled empty
// canvas so the page still shows which selection produced no data.
func (f Figure) Render(w io.Writer, format Format, width, height int) error {
	provider := chart.SVG
	if format == FormatPNG {
		provider = chart.PNG
	}

	if f.Empty() {
		return renderEmpty(w, provider, f.Title, width, height)
	}

	switch f.Kind {
	case KindPie:
		return f.renderPie(w, provider, width, height)
	case KindScatter:
		return f.renderScatter(w, provider, width, height)
	default:
		return fmt.Errorf("%w: figure kind %q", ErrInvalidInput, f.Kind)
	}
}

func (f Figure) renderPie(w io.Writer, provider chart.RendererProvider, width, height int) error {
	var total float64
	for _, s := range f.Slices {
		total += s.Value
	}

	values := make([]chart.Value, 0, len(f.Slices))

	for _, s := range f.Slices {
		// Zero shares have no area; they still appear in the JSON API.
		if s.Value <= 0 {
			continue
		}

		v := chart.Value{
			Label: fmt.Sprintf("%s: %s (%.1f%%)", s.Label, formatFloat(s.Value), 100*s.Value/total),
			Value: s.Value,
		}

		if c, ok := resolveColor(s.Color); ok {
			v.Style = chart.Style{FillColor: c, StrokeColor: drawing.ColorWhite}
		}

		values = append(values, v)
	}

	pie := chart.PieChart{
		Title:  f.Title,
		Width:  width,
		Height: height,
		Values: values,
	}

	if err := pie.Render(provider, w); err != nil {
		return fmt.Errorf("pie.Render: %w", err)
	}

	return nil
}

func (f Figure) renderScatter(w io.Writer, provider chart.RendererProvider, width, height int) error {
	series := make([]chart.Series, 0, len(f.Series))

	for i, s := range f.Series {
		if len(s.X) == 0 {
			continue
		}

		col := seriesPalette[i%len(seriesPalette)]

		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.X,
			YValues: s.Y,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				StrokeColor: col,
				DotWidth:    5,
				DotColor:    col,
			},
		})
	}

	xMin, xMax := f.XRange[0], f.XRange[1]
	if xMax <= xMin {
		xMin, xMax = xMin-1, xMin+1
	}

	ticks := make([]chart.Tick, 0, len(f.YTicks))
	for _, t := range f.YTicks {
		ticks = append(ticks, chart.Tick{Value: t, Label: formatFloat(t)})
	}

	ch := chart.Chart{
		Title:      f.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  f.XLabel,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  f.YLabel,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: ticks,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("chart.Render: %w", err)
	}

	return nil
}

func renderEmpty(w io.Writer, provider chart.RendererProvider, title string, width, height int) error {
	hidden := chart.Style{Hidden: true}

	ch := chart.Chart{
		Title:  title + " (no data)",
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Style: hidden, Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		YAxis:  chart.YAxis{Style: hidden, Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
				Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: chart.Disabled},
			},
		},
	}

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("chart.Render: %w", err)
	}

	return nil
}

func resolveColor(name string) (drawing.Color, bool) {
	if name == "" {
		return drawing.Color{}, false
	}

	if c, ok := namedColors[strings.ToLower(name)]; ok {
		return c, true
	}

	hex := strings.TrimPrefix(name, "#")
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil || (len(hex) != 6 && len(hex) != 3) {
		return drawing.Color{}, false
	}

	return drawing.ColorFromHex(hex), true
}
