package server

import (
	"launchdash/internal/domain/entity"
	"launchdash/internal/domain/service/launch"
	"launchdash/internal/domain/value"
	"launchdash/pkg/lox"
	"launchdash/pkg/rest"
)

func newRESTSites(sites []value.Site) rest.Sites {
	return rest.Sites{
		All:   value.AllSites.String(),
		Sites: lox.Map(sites, value.Site.String),
	}
}

func newRESTSummary(table entity.Table, slider rest.Slider) rest.Summary {
	minKg, maxKg := table.PayloadBounds()

	return rest.Summary{
		Records:      table.Len(),
		Sites:        len(table.Sites()),
		PayloadMinKg: minKg,
		PayloadMaxKg: maxKg,
		Slider:       slider,
	}
}

func newRESTSuccessDistribution(site value.Site, d launch.Distribution) rest.SuccessDistribution {
	slices := make([]rest.Slice, 0, len(d.Labels))

	for i, label := range d.Labels {
		s := rest.Slice{Label: label, Value: d.Values[i]}
		if i < len(d.Colors) {
			s.Color = d.Colors[i]
		}

		slices = append(slices, s)
	}

	return rest.SuccessDistribution{
		Site:   site.String(),
		Title:  d.Title,
		Slices: slices,
	}
}

func newRESTLaunch(l entity.Launch) rest.Launch {
	return rest.Launch{
		FlightNumber:           l.FlightNumber,
		Site:                   l.Site.String(),
		PayloadMassKg:          l.PayloadMassKg,
		BoosterVersion:         l.BoosterVersion,
		BoosterVersionCategory: l.BoosterVersionCategory,
		Class:                  int(l.Class),
	}
}

func newRESTLaunches(site value.Site, payload value.PayloadRange, sc launch.Scatter) rest.Launches {
	return rest.Launches{
		Site:  site.String(),
		Title: sc.Title,
		Low:   payload.Low,
		High:  payload.High,
		Rows:  lox.Map(sc.Rows, newRESTLaunch),
	}
}
