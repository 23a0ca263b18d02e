package dashboard

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"

	"launchdash/internal/domain/entity"
	"launchdash/internal/domain/service/launch"
	"launchdash/internal/domain/value"
)

const (
	PageTitle = "SpaceX Launch Records Dashboard"

	SiteDropdownID   = "site-dropdown"
	PayloadSliderID  = "payload-slider"
	SuccessPieID     = "success-pie-chart"
	SuccessScatterID = "success-payload-scatter-chart"

	allSitesLabel   = "All Sites"
	sitePlaceholder = "Select a Launch Site here"
	payloadAxis     = "Payload Mass (kg)"
	classAxis       = "class"
)

// SliderBounds are the fixed limits of the payload slider.
type SliderBounds struct {
	Min  float64
	Max  float64
	Step float64
}

// NewLaunchApp builds the launch dashboard over svc: a site dropdown with one
// option per distinct site, a payload slider preset to the data bounds and
// the two charts.
func NewLaunchApp(
	svc *launch.Service,
	bounds SliderBounds,
	registerer prometheus.Registerer,
	namespace string,
) (*App, error) {
	options := []Option{{Label: allSitesLabel, Value: value.AllSites.String()}}
	for _, site := range svc.Sites() {
		options = append(options, Option{Label: site.String(), Value: site.String()})
	}

	low, high := svc.Table().PayloadBounds()

	app := NewApp(Layout{
		Title: PageTitle,
		Dropdown: Dropdown{
			ID:          SiteDropdownID,
			Options:     options,
			Value:       value.AllSites.String(),
			Placeholder: sitePlaceholder,
		},
		Slider: RangeSlider{
			ID:    PayloadSliderID,
			Min:   bounds.Min,
			Max:   bounds.Max,
			Step:  bounds.Step,
			Value: [2]float64{low, high},
		},
	}, registerer, namespace)

	callbacks := []Callback{
		{
			Output: SuccessPieID,
			Inputs: []string{SiteDropdownID},
			Handle: func(s State) (Figure, error) {
				return PieFigure(svc.SuccessDistribution(value.Site(s.Value(SiteDropdownID)))), nil
			},
		},
		{
			Output: SuccessScatterID,
			Inputs: []string{SiteDropdownID, PayloadSliderID},
			Handle: func(s State) (Figure, error) {
				r, err := s.Range(PayloadSliderID)
				if err != nil {
					return Figure{}, err
				}

				payload := value.PayloadRange{Low: r[0], High: r[1]}
				scatter := svc.FilteredLaunches(value.Site(s.Value(SiteDropdownID)), payload)

				return ScatterFigure(scatter, payload), nil
			},
		},
	}

	for _, cb := range callbacks {
		if err := app.Register(cb); err != nil {
			return nil, fmt.Errorf("app.Register: %w", err)
		}
	}

	return app, nil
}

func PieFigure(d launch.Distribution) Figure {
	slices := make([]Slice, 0, len(d.Labels))

	for i, label := range d.Labels {
		s := Slice{Label: label, Value: d.Values[i]}
		if i < len(d.Colors) {
			s.Color = d.Colors[i]
		}

		slices = append(slices, s)
	}

	return Figure{Kind: KindPie, Title: d.Title, Slices: slices}
}

// ScatterFigure plots payload against class with one series per booster
// version category, in order of first appearance.
func ScatterFigure(sc launch.Scatter, payload value.PayloadRange) Figure {
	category := func(l entity.Launch) string { return l.BoosterVersionCategory }
	groups := lo.GroupBy(sc.Rows, category)

	series := lo.Map(lo.Uniq(lo.Map(sc.Rows, func(l entity.Launch, _ int) string { return category(l) })),
		func(name string, _ int) Series {
			rows := groups[name]

			return Series{
				Name: name,
				X:    lo.Map(rows, func(l entity.Launch, _ int) float64 { return l.PayloadMassKg }),
				Y:    lo.Map(rows, func(l entity.Launch, _ int) float64 { return float64(l.Class) }),
			}
		})

	return Figure{
		Kind:   KindScatter,
		Title:  sc.Title,
		Series: series,
		XLabel: payloadAxis,
		YLabel: classAxis,
		XRange: [2]float64{payload.Low, payload.High},
		YTicks: lo.Map(value.OutcomeClasses, func(c value.OutcomeClass, _ int) float64 { return float64(c) }),
	}
}
