package main

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"launchdash/internal/application"
	"launchdash/internal/dashboard"
	"launchdash/internal/domain/value"
)

var renderFlags struct {
	site   string
	low    float64
	high   float64
	format string
	out    string
}

var renderCmd = &cobra.Command{
	Use:   "render <output>",
	Short: "Render one dashboard chart to a file",
	Long: "Render computes a chart the way the dashboard would for the given selection\n" +
		"and writes it as SVG or PNG. Outputs: " +
		dashboard.SuccessPieID + ", " + dashboard.SuccessScatterID + ".",
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderFlags.site, "site", value.AllSites.String(), "Launch site, or ALL")
	f.Float64Var(&renderFlags.low, "low", -1, "Lowest payload mass in kg (default: data minimum)")
	f.Float64Var(&renderFlags.high, "high", -1, "Highest payload mass in kg (default: data maximum)")
	f.StringVar(&renderFlags.format, "format", string(dashboard.FormatSVG), "Image format: svg or png")
	f.StringVarP(&renderFlags.out, "out", "o", "-", "Destination file, - for stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	format, err := dashboard.ParseFormat(renderFlags.format)
	if err != nil {
		return fmt.Errorf("dashboard.ParseFormat: %w", err)
	}

	_, app, err := application.NewDashboard(cmd.Context(), cfg, prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("application.NewDashboard: %w", err)
	}

	query := url.Values{dashboard.SiteDropdownID: {renderFlags.site}}

	// Negative flags mean "use the slider default" for that end.
	if renderFlags.low >= 0 || renderFlags.high >= 0 {
		low, high := app.Layout().Slider.Value[0], app.Layout().Slider.Value[1]
		if renderFlags.low >= 0 {
			low = renderFlags.low
		}

		if renderFlags.high >= 0 {
			high = renderFlags.high
		}

		query[dashboard.PayloadSliderID] = []string{formatFloat(low), formatFloat(high)}
	}

	state, err := app.StateFromQuery(query)
	if err != nil {
		return fmt.Errorf("app.StateFromQuery: %w", err)
	}

	fig, err := app.Invoke(args[0], state)
	if err != nil {
		return fmt.Errorf("app.Invoke: %w", err)
	}

	var buf bytes.Buffer

	if err = fig.Render(&buf, format, cfg.Dashboard.ChartWidth, cfg.Dashboard.ChartHeight); err != nil {
		return fmt.Errorf("fig.Render: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), renderFlags.out, buf.Bytes())
}

func writeOutput(stdout io.Writer, path string, body []byte) error {
	if path == "-" {
		if _, err := stdout.Write(body); err != nil {
			return fmt.Errorf("stdout.Write: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(path, body, 0o644); err != nil { //nolint:gosec,mnd
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
